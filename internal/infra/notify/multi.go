package notify

import (
	"context"
	"errors"

	"group-deal-engine/internal/domain/notification"
	"group-deal-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// MultiSink delivers to every sink and joins their failures.
type MultiSink struct {
	sinks []shared.NotificationSink
}

func NewMultiSink(sinks ...shared.NotificationSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) Notify(ctx context.Context, dealID uuid.UUID, msg notification.Message) error {
	var failures []error
	for _, s := range m.sinks {
		if err := s.Notify(ctx, dealID, msg); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
