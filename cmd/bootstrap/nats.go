package bootstrap

import (
	"context"
	"log/slog"

	"group-deal-engine/internal/infra/notify"
	"group-deal-engine/internal/pkg/config"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"
)

var NATSModule = fx.Module("nats",
	fx.Provide(
		NewNATSConn,
	),
)

// NewNATSConn yields a nil connection when NATS_URL is unset.
func NewNATSConn(lc fx.Lifecycle, cfg config.Config) (*nats.Conn, error) {
	conn, err := notify.ConnectNATS(cfg.NATS)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		slog.Info("NATS_URL not set, notification events are not published")
		return nil, nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return conn.Drain()
		},
	})
	return conn, nil
}
