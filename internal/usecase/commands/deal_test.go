//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"group-deal-engine/internal/domain/deal"
	"group-deal-engine/internal/domain/notification"
	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/pkg/errs"
	"group-deal-engine/internal/usecase/commands"
	"group-deal-engine/internal/usecase/fanout"
	"group-deal-engine/internal/usecase/shared"
	"group-deal-engine/internal/usecase/tasks"
	"group-deal-engine/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type DealCommandsTestSuite struct {
	suite.Suite
	ctx       context.Context
	store     *memstore.Store
	clock     *clock.MockClock
	completer commands.Completer
	cmds      commands.DealCommands
	now       time.Time
}

func (s *DealCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.now = time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	s.store = memstore.New()
	s.clock = clock.NewMockClock(s.now)

	fan := fanout.New(s.store, s.store, 4, nil)
	runner := tasks.NewRunner(s.store, s.store, fan, s.clock, time.Minute, nil)
	s.completer = commands.NewCompleter(s.store, runner, s.clock, nil)
	s.cmds = commands.NewDealUseCase(s.store, s.store, s.store, s.store, s.store, fan, s.completer, s.clock,
		commands.DealOptions{NearThresholdWindow: 3, ReservationQuantity: 1}, nil)
}

func TestDealCommandsSuite(t *testing.T) {
	suite.Run(t, new(DealCommandsTestSuite))
}

func (s *DealCommandsTestSuite) seedDeal(minParticipants int, mutate ...func(*memstore.Deal)) uuid.UUID {
	deadline := s.now.Add(24 * time.Hour)
	d := memstore.Deal{
		ID:              uuid.New(),
		ProductID:       uuid.New(),
		Name:            "Coffee Beans Group Buy",
		MinParticipants: minParticipants,
		Deadline:        &deadline,
		IsActive:        true,
		CreatedAt:       s.now.Add(-time.Hour),
	}
	for _, m := range mutate {
		m(&d)
	}
	s.store.AddDeal(d)
	return d.ID
}

func (s *DealCommandsTestSuite) newUser() uuid.UUID {
	id := uuid.New()
	s.store.AddUser(id)
	return id
}

// ================================================================================
// Join
// ================================================================================

func (s *DealCommandsTestSuite) TestJoin_ThresholdScenario() {
	dealID := s.seedDeal(3)
	a, b, c := s.newUser(), s.newUser(), s.newUser()

	resA, err := s.cmds.Join(s.ctx, dealID, a)
	s.Require().NoError(err)
	s.True(resA.Joined)
	s.Equal(1, resA.CurrentParticipants)
	s.Equal(33, resA.Progress)
	s.Len(s.store.NotificationsOf(notification.KindNearThreshold), 1, "remaining=2 is inside the window")

	nearBefore := len(s.store.NotificationsOf(notification.KindNearThreshold))
	resB, err := s.cmds.Join(s.ctx, dealID, b)
	s.Require().NoError(err)
	s.Equal(2, resB.CurrentParticipants)
	s.Equal(67, resB.Progress)
	s.False(resB.Completed)
	near := s.store.NotificationsOf(notification.KindNearThreshold)
	s.Len(near[nearBefore:], 2, "near-threshold alert goes to every current member")
	s.Contains(near[len(near)-1].Message, "Just 1 more participant")

	resC, err := s.cmds.Join(s.ctx, dealID, c)
	s.Require().NoError(err)
	s.Equal(3, resC.CurrentParticipants)
	s.Equal(100, resC.Progress)
	s.True(resC.Completed)
	s.True(resC.CompletionClaimed)

	d, ok := s.store.Deal(dealID)
	s.Require().True(ok)
	s.True(d.IsCompleted)
	s.Require().NotNil(d.CompletedAt)
	s.Equal(s.now, *d.CompletedAt)

	for _, u := range []uuid.UUID{a, b, c} {
		o, ok := s.store.Order(u, dealID)
		s.Require().True(ok, "reservation exists for %s", u)
		s.Equal("finalized", o.Status)
	}

	completed := s.store.NotificationsOf(notification.KindCompleted)
	s.Len(completed, 3)
	recipients := map[uuid.UUID]bool{}
	for _, n := range completed {
		recipients[n.UserID] = true
	}
	s.Equal(map[uuid.UUID]bool{a: true, b: true, c: true}, recipients)

	for _, task := range s.store.Tasks(dealID) {
		s.Equal(shared.TaskDone, task.Status, string(task.Kind))
	}
	s.Len(s.store.NotificationsOf(notification.KindJoin), 3)
}

func (s *DealCommandsTestSuite) TestJoin_Twice() {
	dealID := s.seedDeal(5)
	u := s.newUser()

	_, err := s.cmds.Join(s.ctx, dealID, u)
	s.Require().NoError(err)

	res, err := s.cmds.Join(s.ctx, dealID, u)
	s.Require().NoError(err)
	s.True(res.AlreadyMember)
	s.False(res.Joined)
	s.Equal(1, res.CurrentParticipants)
	s.Equal(1, s.store.MemberCount(dealID))
	s.Len(s.store.NotificationsOf(notification.KindJoin), 1, "no side effects on a repeated join")
}

func (s *DealCommandsTestSuite) TestJoin_Rejected() {
	past := s.now.Add(-time.Minute)

	cases := []struct {
		name   string
		mutate func(*memstore.Deal)
		errIs  error
	}{
		{name: "expired deadline", mutate: func(d *memstore.Deal) { d.Deadline = &past }, errIs: deal.ErrDeadlineExpired},
		{name: "deadline equal to now", mutate: func(d *memstore.Deal) { d.Deadline = &s.now }, errIs: deal.ErrDeadlineExpired},
		{name: "completed", mutate: func(d *memstore.Deal) { d.IsCompleted = true; d.CompletedAt = &past }, errIs: deal.ErrDealCompleted},
		{name: "inactive", mutate: func(d *memstore.Deal) { d.IsActive = false }, errIs: deal.ErrDealInactive},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			dealID := s.seedDeal(3, tc.mutate)

			res, err := s.cmds.Join(s.ctx, dealID, s.newUser())
			s.Nil(res)
			s.Require().Error(err)
			s.True(errors.Is(err, tc.errIs), "got %v", err)
			s.True(errs.Is(err, errs.ErrPreconditionFailed))
			s.Equal(0, s.store.MemberCount(dealID), "count unchanged")
		})
	}
}

func (s *DealCommandsTestSuite) TestJoin_NotFound() {
	s.Run("unknown deal", func() {
		_, err := s.cmds.Join(s.ctx, uuid.New(), s.newUser())
		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrDealNotFound))
		s.True(errs.Is(err, errs.ErrNotFound))
	})

	s.Run("unknown user", func() {
		dealID := s.seedDeal(3)
		_, err := s.cmds.Join(s.ctx, dealID, uuid.New())
		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrUserNotFound))
		s.True(errs.Is(err, errs.ErrNotFound))
		s.Equal(0, s.store.MemberCount(dealID))
	})
}

func (s *DealCommandsTestSuite) TestJoin_ReservationFailureKeepsMembership() {
	dealID := s.seedDeal(1)
	u := s.newUser()
	s.store.SetReservationErr(errors.New("ledger unavailable"))

	res, err := s.cmds.Join(s.ctx, dealID, u)
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrReservationFailed))
	s.True(errs.Is(err, errs.ErrSideEffectFailure))

	s.Require().NotNil(res)
	s.True(res.Joined)
	s.True(s.store.IsMember(dealID, u))
	s.Require().Len(res.SideEffectErrors, 1)
	s.Equal(commands.EffectReservation, res.SideEffectErrors[0].Effect)

	// the rest of the pipeline still ran
	s.True(res.CompletionClaimed)
	s.Len(s.store.NotificationsOf(notification.KindJoin), 1)
	_, hasOrder := s.store.Order(u, dealID)
	s.False(hasOrder)
}

func (s *DealCommandsTestSuite) TestJoin_NotificationFailureIsNotAnError() {
	dealID := s.seedDeal(5)
	u := s.newUser()
	s.store.NotifyErr[u] = errors.New("sink down")

	res, err := s.cmds.Join(s.ctx, dealID, u)
	s.Require().NoError(err)
	s.True(res.Joined)
	s.Require().Len(res.SideEffectErrors, 1)
	s.Equal(commands.EffectNotifyJoin, res.SideEffectErrors[0].Effect)
}

// memstore serializes transactions, so this checks that one claim and one task batch come out of
// concurrent joins. Row-lock contention on the claim itself is covered by the e2e suite.
func (s *DealCommandsTestSuite) TestJoin_ConcurrentThresholdCrossing() {
	// every joiner is needed to reach the threshold, so no join can observe a completed deal
	const joiners = 8
	dealID := s.seedDeal(joiners)

	users := make([]uuid.UUID, joiners)
	for i := range users {
		users[i] = s.newUser()
	}

	results := make([]*commands.JoinResult, joiners)
	errsOut := make([]error, joiners)
	var wg sync.WaitGroup
	for i, u := range users {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], errsOut[i] = s.cmds.Join(s.ctx, dealID, u)
		}()
	}
	wg.Wait()

	claimed := 0
	for i := range users {
		s.Require().NoError(errsOut[i])
		s.True(results[i].Joined)
		if results[i].CompletionClaimed {
			claimed++
		}
	}
	s.Equal(1, claimed, "exactly one join wins the completion claim")
	s.Equal(joiners, s.store.MemberCount(dealID))
	s.Len(s.store.Tasks(dealID), 2, "one completion batch")
}

func (s *DealCommandsTestSuite) TestJoin_ReservationAfterQuickLeave() {
	dealID := s.seedDeal(3)
	u := s.newUser()

	ledger := &hookedLedger{OrderLedger: s.store}
	cmds := s.cmdsWithLedger(ledger)
	ledger.beforeReserve = func() {
		_, err := cmds.Leave(s.ctx, dealID, u)
		s.Require().NoError(err)
	}

	res, err := cmds.Join(s.ctx, dealID, u)
	s.Require().Error(err)
	s.True(errs.Is(err, commands.ErrReservationFailed))
	s.Require().NotNil(res)
	s.True(res.Joined)

	s.False(s.store.IsMember(dealID, u))
	_, hasOrder := s.store.Order(u, dealID)
	s.False(hasOrder, "no order outlives the membership")
}

// ================================================================================
// Leave
// ================================================================================

func (s *DealCommandsTestSuite) TestLeave_CompletionBetweenCommitAndCancel() {
	dealID := s.seedDeal(3)
	stayer, leaver := s.newUser(), s.newUser()

	ledger := &hookedLedger{OrderLedger: s.store}
	cmds := s.cmdsWithLedger(ledger)
	for _, u := range []uuid.UUID{stayer, leaver} {
		_, err := cmds.Join(s.ctx, dealID, u)
		s.Require().NoError(err)
	}

	latecomers := []uuid.UUID{s.newUser(), s.newUser()}
	ledger.beforeCancel = func() {
		for _, u := range latecomers {
			_, err := cmds.Join(s.ctx, dealID, u)
			s.Require().NoError(err)
		}
	}

	_, err := cmds.Leave(s.ctx, dealID, leaver)
	s.Require().NoError(err)

	d, _ := s.store.Deal(dealID)
	s.Require().True(d.IsCompleted)
	s.False(s.store.IsMember(dealID, leaver))
	_, hasOrder := s.store.Order(leaver, dealID)
	s.False(hasOrder, "the leaver's reservation is cancelled, not finalized")

	for _, u := range append(latecomers, stayer) {
		order, ok := s.store.Order(u, dealID)
		s.Require().True(ok)
		s.Equal("finalized", order.Status)
	}
	s.Len(s.store.NotificationsOf(notification.KindCompleted), 3)
}

func (s *DealCommandsTestSuite) TestLeave_AfterJoin() {
	dealID := s.seedDeal(3)
	u := s.newUser()

	_, err := s.cmds.Join(s.ctx, dealID, u)
	s.Require().NoError(err)
	_, hasOrder := s.store.Order(u, dealID)
	s.Require().True(hasOrder)

	res, err := s.cmds.Leave(s.ctx, dealID, u)
	s.Require().NoError(err)
	s.Equal(0, res.CurrentParticipants)
	s.Equal(3, res.MinParticipants)
	s.Equal(0, res.Progress)
	s.Empty(res.SideEffectErrors)

	s.False(s.store.IsMember(dealID, u))
	_, hasOrder = s.store.Order(u, dealID)
	s.False(hasOrder, "pending reservation cancelled")
	s.Len(s.store.NotificationsOf(notification.KindLeft), 1)
	s.Empty(s.store.NotificationsOf(notification.KindCompleted))
	s.Empty(s.store.Tasks(dealID))
}

func (s *DealCommandsTestSuite) TestLeave_NotMember() {
	dealID := s.seedDeal(3)

	res, err := s.cmds.Leave(s.ctx, dealID, s.newUser())
	s.Nil(res)
	s.ErrorIs(err, deal.ErrNotMember)
	s.Empty(s.store.Notifications())
}

func (s *DealCommandsTestSuite) TestLeave_CompletedDeal() {
	past := s.now.Add(-time.Hour)
	dealID := s.seedDeal(1, func(d *memstore.Deal) { d.IsCompleted = true; d.CompletedAt = &past })
	u := s.newUser()
	s.store.AddMember(dealID, u, past)

	_, err := s.cmds.Leave(s.ctx, dealID, u)
	s.Require().Error(err)
	s.True(errors.Is(err, deal.ErrDealCompleted))
	s.True(errs.Is(err, errs.ErrPreconditionFailed))
	s.True(s.store.IsMember(dealID, u))
}

func (s *DealCommandsTestSuite) TestLeave_ExpiredDealAllowed() {
	past := s.now.Add(-time.Hour)
	dealID := s.seedDeal(3, func(d *memstore.Deal) { d.Deadline = &past })
	u := s.newUser()
	s.store.AddMember(dealID, u, past.Add(-time.Hour))

	res, err := s.cmds.Leave(s.ctx, dealID, u)
	s.Require().NoError(err)
	s.Equal(0, res.CurrentParticipants)
}

func (s *DealCommandsTestSuite) TestLeave_CancelFailureReported() {
	dealID := s.seedDeal(3)
	u := s.newUser()
	s.store.AddMember(dealID, u, s.now)
	s.store.CancelErr = errors.New("ledger unavailable")

	res, err := s.cmds.Leave(s.ctx, dealID, u)
	s.Require().NoError(err)
	s.False(s.store.IsMember(dealID, u))
	s.Require().Len(res.SideEffectErrors, 1)
	s.Equal(commands.EffectCancelReservation, res.SideEffectErrors[0].Effect)
}

// ================================================================================
// Completion
// ================================================================================

func TestCompleter_TryComplete(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)

	setup := func(t *testing.T, minParticipants, members int) (*memstore.Store, commands.Completer, uuid.UUID) {
		t.Helper()
		store := memstore.New()
		clk := clock.NewMockClock(now)
		fan := fanout.New(store, store, 2, nil)
		runner := tasks.NewRunner(store, store, fan, clk, time.Minute, nil)
		completer := commands.NewCompleter(store, runner, clk, nil)

		dealID := uuid.New()
		store.AddDeal(memstore.Deal{ID: dealID, ProductID: uuid.New(), Name: "Tea", MinParticipants: minParticipants, IsActive: true, CreatedAt: now})
		for range members {
			store.AddMember(dealID, uuid.New(), now)
		}
		return store, completer, dealID
	}

	t.Run("below threshold leaves the deal open", func(t *testing.T) {
		store, completer, dealID := setup(t, 3, 2)

		outcome, err := completer.TryComplete(ctx, dealID)
		require.NoError(t, err)
		assert.False(t, outcome.Completed)
		assert.False(t, outcome.Claimed)
		assert.Equal(t, 2, outcome.Participants)
		assert.Empty(t, store.Tasks(dealID))
	})

	t.Run("second attempt loses the claim", func(t *testing.T) {
		store, completer, dealID := setup(t, 2, 2)

		first, err := completer.TryComplete(ctx, dealID)
		require.NoError(t, err)
		assert.True(t, first.Claimed)
		require.Len(t, first.TaskResults, 2)
		for _, r := range first.TaskResults {
			assert.NoError(t, r.Err)
		}

		second, err := completer.TryComplete(ctx, dealID)
		require.NoError(t, err)
		assert.True(t, second.Completed)
		assert.False(t, second.Claimed)
		assert.Len(t, store.Tasks(dealID), 2)
		assert.Len(t, store.NotificationsOf(notification.KindCompleted), 2)
	})

	t.Run("caller cancelling after the claim commits does not abort the tasks", func(t *testing.T) {
		store := memstore.New()
		clk := clock.NewMockClock(now)
		strict := ctxCheckingStore{store}
		fan := fanout.New(store, strict, 2, nil)
		runner := tasks.NewRunner(strict, store, fan, clk, time.Minute, nil)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		completer := commands.NewCompleter(cancelOnCommit{store, cancel}, runner, clk, nil)

		dealID := uuid.New()
		store.AddDeal(memstore.Deal{ID: dealID, ProductID: uuid.New(), Name: "Tea", MinParticipants: 2, IsActive: true, CreatedAt: now})
		store.AddMember(dealID, uuid.New(), now)
		store.AddMember(dealID, uuid.New(), now)

		outcome, err := completer.TryComplete(ctx, dealID)
		require.NoError(t, err)
		require.True(t, outcome.Claimed)
		require.Error(t, ctx.Err())

		for _, r := range outcome.TaskResults {
			assert.NoError(t, r.Err)
		}
		for _, task := range store.Tasks(dealID) {
			assert.Equal(t, shared.TaskDone, task.Status, string(task.Kind))
		}
		assert.Len(t, store.NotificationsOf(notification.KindCompleted), 2)
	})

	t.Run("unknown deal", func(t *testing.T) {
		_, completer, _ := setup(t, 1, 0)

		_, err := completer.TryComplete(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})

	t.Run("failed task stays queued for the dispatcher", func(t *testing.T) {
		store, completer, dealID := setup(t, 1, 1)
		store.SetFinalizeErr(errors.New("ledger unavailable"))

		outcome, err := completer.TryComplete(ctx, dealID)
		require.NoError(t, err)
		assert.True(t, outcome.Claimed)

		d, _ := store.Deal(dealID)
		assert.True(t, d.IsCompleted, "the claim commits even when a side effect fails")

		byKind := map[shared.TaskKind]shared.DealTask{}
		for _, task := range store.Tasks(dealID) {
			byKind[task.Kind] = task
		}
		assert.Equal(t, shared.TaskFailed, byKind[shared.TaskFinalizeReservations].Status)
		assert.Equal(t, now.Add(time.Minute), byKind[shared.TaskFinalizeReservations].RunAt)
		assert.Equal(t, shared.TaskDone, byKind[shared.TaskNotifyCompleted].Status)
	})
}

// ================================================================================
// Sweep
// ================================================================================

func TestCompletionSweeper_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	store := memstore.New()
	clk := clock.NewMockClock(now)
	fan := fanout.New(store, store, 2, nil)
	runner := tasks.NewRunner(store, store, fan, clk, time.Minute, nil)
	completer := commands.NewCompleter(store, runner, clk, nil)
	sweeper := commands.NewCompletionSweeper(store, completer, clk, 0)

	missed := uuid.New()
	below := uuid.New()
	expired := uuid.New()
	store.AddDeal(memstore.Deal{ID: missed, ProductID: uuid.New(), Name: "missed", MinParticipants: 2, IsActive: true, CreatedAt: past})
	store.AddDeal(memstore.Deal{ID: below, ProductID: uuid.New(), Name: "below", MinParticipants: 3, IsActive: true, CreatedAt: past})
	store.AddDeal(memstore.Deal{ID: expired, ProductID: uuid.New(), Name: "expired", MinParticipants: 1, Deadline: &past, IsActive: true, CreatedAt: past})
	for range 2 {
		store.AddMember(missed, uuid.New(), past)
		store.AddMember(below, uuid.New(), past)
	}
	store.AddMember(expired, uuid.New(), past)

	report, err := sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, commands.SweepReport{Candidates: 1, Claimed: 1}, report)

	d, _ := store.Deal(missed)
	assert.True(t, d.IsCompleted)
	d, _ = store.Deal(expired)
	assert.False(t, d.IsCompleted, "expired deals are never completed by the sweeper")

	report, err = sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, commands.SweepReport{}, report)
}

// ================================================================================
// Helpers
// ================================================================================

func (s *DealCommandsTestSuite) cmdsWithLedger(ledger shared.OrderLedger) commands.DealCommands {
	fan := fanout.New(s.store, s.store, 4, nil)
	return commands.NewDealUseCase(s.store, s.store, s.store, ledger, s.store, fan, s.completer, s.clock,
		commands.DealOptions{NearThresholdWindow: 3, ReservationQuantity: 1}, nil)
}

// hookedLedger runs a one-shot hook right before the reservation write it wraps,
// standing in for a request that lands between commit and side effect.
type hookedLedger struct {
	shared.OrderLedger
	beforeReserve func()
	beforeCancel  func()
}

func (l *hookedLedger) CreatePendingReservation(ctx context.Context, userID, dealID, productID uuid.UUID, quantity int) (uuid.UUID, error) {
	if hook := l.beforeReserve; hook != nil {
		l.beforeReserve = nil
		hook()
	}
	return l.OrderLedger.CreatePendingReservation(ctx, userID, dealID, productID, quantity)
}

func (l *hookedLedger) CancelPendingReservation(ctx context.Context, userID, dealID uuid.UUID) (bool, error) {
	if hook := l.beforeCancel; hook != nil {
		l.beforeCancel = nil
		hook()
	}
	return l.OrderLedger.CancelPendingReservation(ctx, userID, dealID)
}

// cancelOnCommit cancels the caller's context as soon as a transaction commits.
type cancelOnCommit struct {
	*memstore.Store
	cancel context.CancelFunc
}

func (u cancelOnCommit) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := u.Store.Within(ctx, fn); err != nil {
		return err
	}
	u.cancel()
	return nil
}

// ctxCheckingStore fails task bookkeeping and deliveries on a done context, like the pgx adapters do.
type ctxCheckingStore struct {
	*memstore.Store
}

func (s ctxCheckingStore) Notify(ctx context.Context, dealID uuid.UUID, msg notification.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Store.Notify(ctx, dealID, msg)
}

func (s ctxCheckingStore) Claim(ctx context.Context, id uuid.UUID, now time.Time) (*shared.DealTask, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	return s.Store.Claim(ctx, id, now)
}

func (s ctxCheckingStore) MarkDone(ctx context.Context, id uuid.UUID, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Store.MarkDone(ctx, id, now)
}

func (s ctxCheckingStore) MarkFailed(ctx context.Context, id uuid.UUID, lastErr string, retryAt, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.Store.MarkFailed(ctx, id, lastErr, retryAt, now)
}
