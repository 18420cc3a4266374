//go:build unit

package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"group-deal-engine/internal/domain/notification"
	"group-deal-engine/internal/infra"
	"group-deal-engine/internal/infra/notify"
	sqlc "group-deal-engine/internal/infra/sqlc/generated"
	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) Publish(subject string, data []byte) error {
	return m.Called(subject, data).Error(0)
}

type queriesMock struct {
	mock.Mock
}

func (m *queriesMock) CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) error {
	return m.Called(ctx, db, arg).Error(0)
}

type sinkFunc func(ctx context.Context, dealID uuid.UUID, msg notification.Message) error

func (f sinkFunc) Notify(ctx context.Context, dealID uuid.UUID, msg notification.Message) error {
	return f(ctx, dealID, msg)
}

func TestNATSSink_Notify(t *testing.T) {
	ctx := context.Background()
	sentAt := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	dealID, userID := uuid.New(), uuid.New()
	msg := notification.Message{UserID: userID, Kind: notification.KindNearThreshold, Body: "Just 1 more"}

	t.Run("publishes a JSON event on the kind subject", func(t *testing.T) {
		pub := &publisherMock{}
		var payload []byte
		pub.On("Publish", "deals.notifications.near_threshold", mock.Anything).
			Run(func(args mock.Arguments) { payload = args.Get(1).([]byte) }).
			Return(nil).Once()

		sink := notify.NewNATSSink(pub, "deals.notifications.", clock.NewMockClock(sentAt))
		require.NoError(t, sink.Notify(ctx, dealID, msg))
		pub.AssertExpectations(t)

		var event notify.Event
		require.NoError(t, json.Unmarshal(payload, &event))
		assert.Equal(t, notify.Event{
			DealID:  dealID,
			UserID:  userID,
			Kind:    "NEAR_THRESHOLD",
			Message: "Just 1 more",
			SentAt:  sentAt,
		}, event)
	})

	t.Run("publish failure is returned", func(t *testing.T) {
		pub := &publisherMock{}
		pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("nats: connection closed")).Once()

		sink := notify.NewNATSSink(pub, "deals.notifications", clock.NewMockClock(sentAt))
		err := sink.Notify(ctx, dealID, msg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection closed")
	})
}

func TestNATSSink_Subject(t *testing.T) {
	sink := notify.NewNATSSink(&publisherMock{}, "deals", clock.NewRealClock())
	assert.Equal(t, "deals.join", sink.Subject(notification.KindJoin))
	assert.Equal(t, "deals.completed", sink.Subject(notification.KindCompleted))
	assert.Equal(t, "deals.left", sink.Subject(notification.KindLeft))
}

func TestPostgresSink_Notify(t *testing.T) {
	ctx := context.Background()
	dealID, userID := uuid.New(), uuid.New()
	msg := notification.Message{UserID: userID, Kind: notification.KindJoin, Body: "You joined"}
	params := sqlc.CreateNotificationParams{
		UserID:  userID,
		DealID:  pgconv.UUIDToPgtype(dealID),
		Kind:    "JOIN",
		Message: "You joined",
	}

	q := &queriesMock{}
	q.On("CreateNotification", ctx, nil, params).Return(nil).Once()
	q.On("CreateNotification", ctx, nil, params).Return(errors.New("connection reset")).Once()
	sink := notify.NewPostgresSink(q, nil)

	require.NoError(t, sink.Notify(ctx, dealID, msg))

	err := sink.Notify(ctx, dealID, msg)
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	q.AssertExpectations(t)
}

func TestMultiSink_Notify(t *testing.T) {
	ctx := context.Background()
	dealID := uuid.New()
	msg := notification.Message{UserID: uuid.New(), Kind: notification.KindCompleted, Body: "done"}

	errInbox := errors.New("inbox down")
	var delivered []string
	record := func(name string, err error) sinkFunc {
		return func(context.Context, uuid.UUID, notification.Message) error {
			delivered = append(delivered, name)
			return err
		}
	}

	t.Run("all sinks run even when one fails", func(t *testing.T) {
		delivered = nil
		multi := notify.NewMultiSink(record("inbox", errInbox), record("bus", nil))

		err := multi.Notify(ctx, dealID, msg)
		assert.ErrorIs(t, err, errInbox)
		assert.Equal(t, []string{"inbox", "bus"}, delivered)
	})

	t.Run("no failures", func(t *testing.T) {
		delivered = nil
		multi := notify.NewMultiSink(record("inbox", nil), record("bus", nil))

		assert.NoError(t, multi.Notify(ctx, dealID, msg))
		assert.Len(t, delivered, 2)
	})
}
