package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"group-deal-engine/internal/domain/notification"
	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/pkg/config"
	"group-deal-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

// Publisher is satisfied by *nats.Conn.
type Publisher interface {
	Publish(subject string, data []byte) error
}

type Event struct {
	DealID  uuid.UUID `json:"deal_id"`
	UserID  uuid.UUID `json:"user_id"`
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	SentAt  time.Time `json:"sent_at"`
}

// NATSSink publishes each notification as a JSON event on <prefix>.<kind>.
type NATSSink struct {
	pub    Publisher
	prefix string
	clock  clock.Clock
}

func NewNATSSink(pub Publisher, prefix string, clk clock.Clock) *NATSSink {
	return &NATSSink{pub: pub, prefix: strings.TrimSuffix(prefix, "."), clock: clk}
}

func (s *NATSSink) Notify(_ context.Context, dealID uuid.UUID, msg notification.Message) error {
	data, err := json.Marshal(Event{
		DealID:  dealID,
		UserID:  msg.UserID,
		Kind:    msg.Kind.String(),
		Message: msg.Body,
		SentAt:  s.clock.Now().UTC(),
	})
	if err != nil {
		return errs.Wrap(err, "marshal notification event")
	}
	if err := s.pub.Publish(s.Subject(msg.Kind), data); err != nil {
		return errs.Wrap(err, "publish notification event")
	}
	return nil
}

func (s *NATSSink) Subject(kind notification.Kind) string {
	return s.prefix + "." + strings.ToLower(kind.String())
}

// ConnectNATS returns nil when no URL is configured.
func ConnectNATS(cfg config.NATSConfig) (*nats.Conn, error) {
	if cfg.URL == "" {
		return nil, nil
	}
	conn, err := nats.Connect(cfg.URL,
		nats.Name("group-deal-engine"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("nats disconnected", "error", err.Error())
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			slog.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, errs.Wrap(err, "connect to nats")
	}
	return conn, nil
}
