package fanout

import (
	"context"
	"log/slog"
	"sync"

	"group-deal-engine/internal/domain/notification"
	"group-deal-engine/internal/pkg/errs"
	"group-deal-engine/internal/pkg/metrics"
	"group-deal-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 8

var ErrListMembers = errs.New("failed to list deal members")

// Fanout delivers one notification per current member. Deliveries run concurrently,
// a failing member never blocks the others, and nothing is retried within a call.
type Fanout struct {
	members     shared.MembershipReader
	sink        shared.NotificationSink
	concurrency int
	metrics     *metrics.Metrics
}

func New(members shared.MembershipReader, sink shared.NotificationSink, concurrency int, m *metrics.Metrics) *Fanout {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Fanout{
		members:     members,
		sink:        sink,
		concurrency: concurrency,
		metrics:     m,
	}
}

func (f *Fanout) Deliver(ctx context.Context, dealID uuid.UUID, kind notification.Kind, body string) (shared.FanoutReport, error) {
	memberIDs, err := f.members.ListMemberIDs(ctx, dealID)
	if err != nil {
		return shared.FanoutReport{}, errs.Mark(errs.Wrap(err, "fan-out"), ErrListMembers)
	}

	report := shared.FanoutReport{Recipients: len(memberIDs)}
	if len(memberIDs) == 0 {
		return report, nil
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(f.concurrency)

	for _, userID := range memberIDs {
		g.Go(func() error {
			err := f.sink.Notify(ctx, dealID, notification.Message{UserID: userID, Kind: kind, Body: body})
			f.metrics.NotificationObserved(kind.String(), err == nil)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Warn("notification delivery failed",
					"deal_id", dealID.String(),
					"user_id", userID.String(),
					"kind", kind.String(),
					"error", err.Error())
				report.Failures = append(report.Failures, shared.DeliveryFailure{UserID: userID, Err: err})
				return nil
			}
			report.Delivered++
			return nil
		})
	}
	_ = g.Wait()

	return report, nil
}
