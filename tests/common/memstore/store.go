//go:build unit || e2e

// Package memstore is an in-memory stand-in for the Postgres adapters used by usecase tests.
// Transactions are serialized, which models the deal row lock every write path takes.
package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"group-deal-engine/internal/domain/deal"
	"group-deal-engine/internal/domain/notification"
	"group-deal-engine/internal/infra"
	"group-deal-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrDuplicateTask = errors.New("duplicate deal task")

type Deal struct {
	ID              uuid.UUID
	ProductID       uuid.UUID
	Name            string
	MinParticipants int
	Deadline        *time.Time
	IsActive        bool
	IsCompleted     bool
	CompletedAt     *time.Time
	CreatedAt       time.Time
}

type Order struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	DealID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Status    string
}

type Notification struct {
	DealID  uuid.UUID
	UserID  uuid.UUID
	Kind    notification.Kind
	Message string
}

type task struct {
	shared.DealTask
	updatedAt time.Time
}

type orderKey struct {
	userID uuid.UUID
	dealID uuid.UUID
}

type state struct {
	deals   map[uuid.UUID]Deal
	members map[uuid.UUID]map[uuid.UUID]time.Time
	tasks   map[uuid.UUID]*task
	orders  map[orderKey]*Order
}

type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex

	state
	users         map[uuid.UUID]bool
	notifications []Notification

	// Failure injection, read under mu.
	ReservationErr error
	FinalizeErr    error
	CancelErr      error
	NotifyErr      map[uuid.UUID]error
	// NotifyKindErr fails every delivery of one kind.
	NotifyKindErr map[notification.Kind]error
	CountErr      error
	TxCalls       int
}

func New() *Store {
	return &Store{
		state: state{
			deals:   map[uuid.UUID]Deal{},
			members: map[uuid.UUID]map[uuid.UUID]time.Time{},
			tasks:   map[uuid.UUID]*task{},
			orders:  map[orderKey]*Order{},
		},
		users:         map[uuid.UUID]bool{},
		NotifyErr:     map[uuid.UUID]error{},
		NotifyKindErr: map[notification.Kind]error{},
	}
}

// Seeding and inspection helpers

func (s *Store) AddDeal(d Deal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	s.deals[d.ID] = d
}

func (s *Store) AddUser(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = true
}

func (s *Store) AddMember(dealID, userID uuid.UUID, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[userID] = true
	if s.members[dealID] == nil {
		s.members[dealID] = map[uuid.UUID]time.Time{}
	}
	s.members[dealID][userID] = at
}

func (s *Store) Deal(id uuid.UUID) (Deal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.deals[id]
	return d, ok
}

func (s *Store) MemberCount(dealID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.members[dealID])
}

func (s *Store) IsMember(dealID, userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.members[dealID][userID]
	return ok
}

func (s *Store) Order(userID, dealID uuid.UUID) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderKey{userID: userID, dealID: dealID}]
	if !ok {
		return Order{}, false
	}
	return *o, true
}

func (s *Store) Tasks(dealID uuid.UUID) []shared.DealTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []shared.DealTask
	for _, t := range s.tasks {
		if t.DealID == dealID {
			out = append(out, t.DealTask)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out
}

func (s *Store) PutTask(t shared.DealTask, updatedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[t.ID] = &task{DealTask: t, updatedAt: updatedAt}
}

func (s *Store) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notification(nil), s.notifications...)
}

func (s *Store) NotificationsOf(kind notification.Kind) []Notification {
	var out []Notification
	for _, n := range s.Notifications() {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func (s *Store) SetReservationErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ReservationErr = err
}

func (s *Store) SetFinalizeErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FinalizeErr = err
}

// UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	s.TxCalls++
	snapshot := s.state.clone()
	s.mu.Unlock()

	if err := fn(ctx, storeTx{s}); err != nil {
		s.mu.Lock()
		s.state = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (st state) clone() state {
	out := state{
		deals:   make(map[uuid.UUID]Deal, len(st.deals)),
		members: make(map[uuid.UUID]map[uuid.UUID]time.Time, len(st.members)),
		tasks:   make(map[uuid.UUID]*task, len(st.tasks)),
		orders:  make(map[orderKey]*Order, len(st.orders)),
	}
	for k, v := range st.deals {
		out.deals[k] = v
	}
	for k, m := range st.members {
		cp := make(map[uuid.UUID]time.Time, len(m))
		for u, at := range m {
			cp[u] = at
		}
		out.members[k] = cp
	}
	for k, t := range st.tasks {
		cp := *t
		out.tasks[k] = &cp
	}
	for k, o := range st.orders {
		cp := *o
		out.orders[k] = &cp
	}
	return out
}

type storeTx struct{ s *Store }

func (t storeTx) Deals() shared.DealRepository             { return dealRepo{t.s} }
func (t storeTx) Memberships() shared.MembershipRepository { return membershipRepo{t.s} }
func (t storeTx) Tasks() shared.TaskRepository             { return taskRepo{t.s} }

type dealRepo struct{ s *Store }

func (r dealRepo) FindByID(_ context.Context, id uuid.UUID, _ shared.LockMode) (*deal.Deal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.deals[id]
	if !ok {
		return nil, infra.NewNotFound("deal")
	}
	minParticipants, err := deal.NewMinParticipants(d.MinParticipants)
	if err != nil {
		return nil, err
	}
	return deal.ReconstructDeal(d.ID, d.ProductID, d.Name, minParticipants, d.Deadline,
		d.IsActive, d.IsCompleted, d.CompletedAt, d.CreatedAt, d.CreatedAt), nil
}

func (r dealRepo) ClaimCompletion(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	d, ok := r.s.deals[id]
	if !ok || d.IsCompleted {
		return false, nil
	}
	d.IsCompleted = true
	d.CompletedAt = &at
	r.s.deals[id] = d
	return true, nil
}

type membershipRepo struct{ s *Store }

func (r membershipRepo) Count(ctx context.Context, dealID uuid.UUID) (int, error) {
	return r.s.Count(ctx, dealID)
}

func (r membershipRepo) Exists(_ context.Context, dealID, userID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.members[dealID][userID]
	return ok, nil
}

func (r membershipRepo) Insert(_ context.Context, dealID, userID uuid.UUID, joinedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.members[dealID] == nil {
		r.s.members[dealID] = map[uuid.UUID]time.Time{}
	}
	if _, ok := r.s.members[dealID][userID]; ok {
		return deal.ErrAlreadyMember
	}
	r.s.members[dealID][userID] = joinedAt
	return nil
}

func (r membershipRepo) Remove(_ context.Context, dealID, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.members[dealID][userID]; !ok {
		return deal.ErrNotMember
	}
	delete(r.s.members[dealID], userID)
	return nil
}

type taskRepo struct{ s *Store }

func (r taskRepo) Enqueue(_ context.Context, t shared.DealTask) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.tasks {
		if existing.DealID == t.DealID && existing.Kind == t.Kind {
			return ErrDuplicateTask
		}
	}
	r.s.tasks[t.ID] = &task{DealTask: t, updatedAt: t.RunAt}
	return nil
}

// MembershipReader and CompletionCandidateReader

func (s *Store) Count(_ context.Context, dealID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CountErr != nil {
		return 0, s.CountErr
	}
	return len(s.members[dealID]), nil
}

func (s *Store) ListMemberIDs(_ context.Context, dealID uuid.UUID) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]uuid.UUID, 0, len(s.members[dealID]))
	for id := range s.members[dealID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids, nil
}

func (s *Store) ListCompletionCandidates(_ context.Context, now time.Time, limit int32) ([]uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []uuid.UUID
	for id, d := range s.deals {
		if !d.IsActive || d.IsCompleted {
			continue
		}
		if d.Deadline != nil && !now.Before(*d.Deadline) {
			continue
		}
		if len(s.members[id]) >= d.MinParticipants {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	if int32(len(ids)) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// UserDirectory

func (s *Store) Exists(_ context.Context, userID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[userID], nil
}

// OrderLedger

func (s *Store) CreatePendingReservation(_ context.Context, userID, dealID, productID uuid.UUID, quantity int) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ReservationErr != nil {
		return uuid.Nil, s.ReservationErr
	}
	key := orderKey{userID: userID, dealID: dealID}
	if _, member := s.members[dealID][userID]; !member {
		return uuid.Nil, infra.WrapRepoErr("order finalized or membership gone", nil, infra.KindDuplicateKey)
	}
	if o, ok := s.orders[key]; ok {
		if o.Status != "pending" {
			return uuid.Nil, infra.WrapRepoErr("order finalized or membership gone", nil, infra.KindDuplicateKey)
		}
		o.Quantity = quantity
		return o.ID, nil
	}
	status := "pending"
	if d, ok := s.deals[dealID]; ok && d.IsCompleted {
		status = "finalized"
	}
	o := &Order{ID: uuid.New(), UserID: userID, DealID: dealID, ProductID: productID, Quantity: quantity, Status: status}
	s.orders[key] = o
	return o.ID, nil
}

func (s *Store) FinalizeReservations(_ context.Context, dealID uuid.UUID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FinalizeErr != nil {
		return 0, s.FinalizeErr
	}
	var n int64
	for _, o := range s.orders {
		if o.DealID != dealID || o.Status != "pending" {
			continue
		}
		if _, member := s.members[dealID][o.UserID]; member {
			o.Status = "finalized"
			n++
		}
	}
	return n, nil
}

func (s *Store) CancelPendingReservation(_ context.Context, userID, dealID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CancelErr != nil {
		return false, s.CancelErr
	}
	key := orderKey{userID: userID, dealID: dealID}
	o, ok := s.orders[key]
	if !ok || o.Status != "pending" {
		return false, nil
	}
	delete(s.orders, key)
	return true, nil
}

// NotificationSink

func (s *Store) Notify(_ context.Context, dealID uuid.UUID, msg notification.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.NotifyErr[msg.UserID]; err != nil {
		return err
	}
	if err := s.NotifyKindErr[msg.Kind]; err != nil {
		return err
	}
	s.notifications = append(s.notifications, Notification{
		DealID:  dealID,
		UserID:  msg.UserID,
		Kind:    msg.Kind,
		Message: msg.Body,
	})
	return nil
}

// TaskStore

func (s *Store) Claim(_ context.Context, id uuid.UUID, now time.Time) (*shared.DealTask, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok || (t.Status != shared.TaskQueued && t.Status != shared.TaskFailed) {
		return nil, false, nil
	}
	s.claimLocked(t, now)
	out := t.DealTask
	return &out, true, nil
}

func (s *Store) ClaimDue(_ context.Context, now, staleBefore time.Time, maxAttempts, limit int32) ([]shared.DealTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var due []*task
	for _, t := range s.tasks {
		if t.Attempts >= maxAttempts {
			continue
		}
		switch {
		case (t.Status == shared.TaskQueued || t.Status == shared.TaskFailed) && !t.RunAt.After(now):
			due = append(due, t)
		case t.Status == shared.TaskRunning && t.updatedAt.Before(staleBefore):
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].RunAt.Before(due[j].RunAt) })
	if int32(len(due)) > limit {
		due = due[:limit]
	}
	out := make([]shared.DealTask, 0, len(due))
	for _, t := range due {
		s.claimLocked(t, now)
		out = append(out, t.DealTask)
	}
	return out, nil
}

func (s *Store) claimLocked(t *task, now time.Time) {
	t.Status = shared.TaskRunning
	t.Attempts++
	t.updatedAt = now
}

func (s *Store) MarkDone(_ context.Context, id uuid.UUID, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok {
		t.Status = shared.TaskDone
		t.LastError = nil
		t.updatedAt = now
	}
	return nil
}

func (s *Store) MarkFailed(_ context.Context, id uuid.UUID, lastErr string, retryAt, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tasks[id]; ok {
		t.Status = shared.TaskFailed
		t.LastError = &lastErr
		t.RunAt = retryAt
		t.updatedAt = now
	}
	return nil
}
