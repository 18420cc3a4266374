//go:build unit

package tasks_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"group-deal-engine/internal/domain/notification"
	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/pkg/errs"
	"group-deal-engine/internal/usecase/fanout"
	"group-deal-engine/internal/usecase/shared"
	"group-deal-engine/internal/usecase/tasks"
	"group-deal-engine/tests/common/memstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*memstore.Store, *clock.MockClock, *tasks.Runner) {
	t.Helper()
	store := memstore.New()
	clk := clock.NewMockClock(now)
	fan := fanout.New(store, store, 2, nil)
	return store, clk, tasks.NewRunner(store, store, fan, clk, 30*time.Second, nil)
}

func TestNewCompletionTasks(t *testing.T) {
	dealID := uuid.New()
	list, err := tasks.NewCompletionTasks(dealID, "Tea", now)
	require.NoError(t, err)
	require.Len(t, list, 2)

	kinds := []shared.TaskKind{list[0].Kind, list[1].Kind}
	if diff := cmp.Diff([]shared.TaskKind{shared.TaskFinalizeReservations, shared.TaskNotifyCompleted}, kinds); diff != "" {
		t.Errorf("task kinds mismatch (-want +got):\n%s", diff)
	}
	for _, task := range list {
		assert.Equal(t, dealID, task.DealID)
		assert.Equal(t, shared.TaskQueued, task.Status)
		assert.Equal(t, now, task.RunAt)
	}

	var payload tasks.CompletionPayload
	require.NoError(t, json.Unmarshal(list[1].Payload, &payload))
	assert.Equal(t, "Tea", payload.DealName)
}

func TestRunner_RunNow(t *testing.T) {
	ctx := context.Background()

	t.Run("runs queued tasks and marks them done", func(t *testing.T) {
		store, _, runner := setup(t)
		dealID := uuid.New()
		member := uuid.New()
		store.AddMember(dealID, member, now)
		_, err := store.CreatePendingReservation(ctx, member, dealID, uuid.New(), 1)
		require.NoError(t, err)

		list, err := tasks.NewCompletionTasks(dealID, "Tea", now)
		require.NoError(t, err)
		ids := make([]uuid.UUID, 0, len(list))
		for _, task := range list {
			store.PutTask(task, now)
			ids = append(ids, task.ID)
		}

		results := runner.RunNow(ctx, ids)
		require.Len(t, results, 2)
		for _, r := range results {
			assert.NoError(t, r.Err)
		}
		for _, task := range store.Tasks(dealID) {
			assert.Equal(t, shared.TaskDone, task.Status)
			assert.Equal(t, int32(1), task.Attempts)
		}

		order, ok := store.Order(member, dealID)
		require.True(t, ok)
		assert.Equal(t, "finalized", order.Status)
		assert.Len(t, store.NotificationsOf(notification.KindCompleted), 1)
	})

	t.Run("skips tasks claimed elsewhere", func(t *testing.T) {
		store, _, runner := setup(t)
		task := shared.DealTask{ID: uuid.New(), DealID: uuid.New(), Kind: shared.TaskFinalizeReservations, Payload: []byte("{}"), Status: shared.TaskRunning, RunAt: now}
		store.PutTask(task, now)

		assert.Empty(t, runner.RunNow(ctx, []uuid.UUID{task.ID}))
	})

	t.Run("failure schedules a retry with linear backoff", func(t *testing.T) {
		store, _, runner := setup(t)
		store.SetFinalizeErr(errors.New("ledger unavailable"))
		task := shared.DealTask{ID: uuid.New(), DealID: uuid.New(), Kind: shared.TaskFinalizeReservations, Payload: []byte("{}"), Status: shared.TaskFailed, Attempts: 1, RunAt: now}
		store.PutTask(task, now)

		results := runner.RunNow(ctx, []uuid.UUID{task.ID})
		require.Len(t, results, 1)
		require.Error(t, results[0].Err)

		got := store.Tasks(task.DealID)[0]
		assert.Equal(t, shared.TaskFailed, got.Status)
		assert.Equal(t, int32(2), got.Attempts)
		assert.Equal(t, now.Add(60*time.Second), got.RunAt)
		require.NotNil(t, got.LastError)
		assert.Contains(t, *got.LastError, "ledger unavailable")
	})

	t.Run("invalid payload fails the task", func(t *testing.T) {
		store, _, runner := setup(t)
		task := shared.DealTask{ID: uuid.New(), DealID: uuid.New(), Kind: shared.TaskNotifyCompleted, Payload: []byte("not json"), Status: shared.TaskQueued, RunAt: now}
		store.PutTask(task, now)

		results := runner.RunNow(ctx, []uuid.UUID{task.ID})
		require.Len(t, results, 1)
		assert.True(t, errs.Is(results[0].Err, tasks.ErrInvalidPayload))
	})

	t.Run("unknown kind fails the task", func(t *testing.T) {
		store, _, runner := setup(t)
		task := shared.DealTask{ID: uuid.New(), DealID: uuid.New(), Kind: shared.TaskKind("refund"), Status: shared.TaskQueued, RunAt: now}
		store.PutTask(task, now)

		results := runner.RunNow(ctx, []uuid.UUID{task.ID})
		require.Len(t, results, 1)
		assert.True(t, errs.Is(results[0].Err, tasks.ErrUnknownTaskKind))
	})
}

func TestDispatcher_Tick(t *testing.T) {
	ctx := context.Background()

	t.Run("re-runs due failed tasks until they succeed", func(t *testing.T) {
		store, clk, runner := setup(t)
		dispatcher := tasks.NewDispatcher(store, runner, clk, tasks.DispatcherOptions{BatchSize: 10, MaxAttempts: 3, StaleAfter: time.Minute})

		store.SetFinalizeErr(errors.New("ledger unavailable"))
		task := shared.DealTask{ID: uuid.New(), DealID: uuid.New(), Kind: shared.TaskFinalizeReservations, Payload: []byte("{}"), Status: shared.TaskQueued, RunAt: now}
		store.PutTask(task, now)

		n, err := dispatcher.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, shared.TaskFailed, store.Tasks(task.DealID)[0].Status)

		n, err = dispatcher.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n, "retry is not due yet")

		store.SetFinalizeErr(nil)
		clk.Set(now.Add(31 * time.Second))
		n, err = dispatcher.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, shared.TaskDone, store.Tasks(task.DealID)[0].Status)
	})

	t.Run("stops after max attempts", func(t *testing.T) {
		store, clk, runner := setup(t)
		dispatcher := tasks.NewDispatcher(store, runner, clk, tasks.DispatcherOptions{BatchSize: 10, MaxAttempts: 2, StaleAfter: time.Minute})
		task := shared.DealTask{ID: uuid.New(), DealID: uuid.New(), Kind: shared.TaskFinalizeReservations, Payload: []byte("{}"), Status: shared.TaskFailed, Attempts: 2, RunAt: now}
		store.PutTask(task, now)

		n, err := dispatcher.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("reclaims stale running tasks", func(t *testing.T) {
		store, clk, runner := setup(t)
		dispatcher := tasks.NewDispatcher(store, runner, clk, tasks.DispatcherOptions{BatchSize: 10, MaxAttempts: 5, StaleAfter: time.Minute})
		stale := shared.DealTask{ID: uuid.New(), DealID: uuid.New(), Kind: shared.TaskFinalizeReservations, Payload: []byte("{}"), Status: shared.TaskRunning, Attempts: 1, RunAt: now.Add(-time.Hour)}
		fresh := shared.DealTask{ID: uuid.New(), DealID: uuid.New(), Kind: shared.TaskFinalizeReservations, Payload: []byte("{}"), Status: shared.TaskRunning, Attempts: 1, RunAt: now.Add(-time.Hour)}
		store.PutTask(stale, now.Add(-2*time.Minute))
		store.PutTask(fresh, now.Add(-10*time.Second))

		n, err := dispatcher.Tick(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, shared.TaskDone, store.Tasks(stale.DealID)[0].Status)
		assert.Equal(t, shared.TaskRunning, store.Tasks(fresh.DealID)[0].Status)
	})
}
