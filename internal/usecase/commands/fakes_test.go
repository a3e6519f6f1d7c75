//go:build unit

package commands_test

import (
	"context"
	"sort"
	"time"

	"circulation/internal/domain/borrow"
	"circulation/internal/domain/item"
	"circulation/internal/domain/reservation"
	"circulation/internal/infra"
	"circulation/internal/infra/db"
	"circulation/internal/usecase/shared"

	"github.com/google/uuid"
)

// In-memory doubles for the unit-of-work surface. Each fake keeps just
// enough state to observe the transaction's effects from the outside.

func notFoundErr() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

type fakeUoW struct {
	tx    *fakeTx
	reads shared.CommandReads
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{tx: newFakeTx()}
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.tx)
}

func (u *fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return u.reads
}

type fakeTx struct {
	items         *fakeItemRepo
	borrows       *fakeBorrowRepo
	reservations  *fakeReservationRepo
	patrons       *fakePatronRepo
	notifications *fakeNotificationRepo
}

func newFakeTx() *fakeTx {
	return &fakeTx{
		items:         &fakeItemRepo{items: map[uuid.UUID]*item.Item{}},
		borrows:       &fakeBorrowRepo{borrows: map[uuid.UUID]*borrow.Borrow{}},
		reservations:  &fakeReservationRepo{reservations: map[uuid.UUID]*reservation.Reservation{}},
		patrons:       &fakePatronRepo{counts: map[uuid.UUID]int{}},
		notifications: &fakeNotificationRepo{},
	}
}

func (t *fakeTx) Items() shared.ItemRepository                 { return t.items }
func (t *fakeTx) Borrows() shared.BorrowRepository             { return t.borrows }
func (t *fakeTx) Reservations() shared.ReservationRepository   { return t.reservations }
func (t *fakeTx) Patrons() shared.PatronRepository             { return t.patrons }
func (t *fakeTx) Notifications() shared.NotificationRepository { return t.notifications }
func (t *fakeTx) DB() db.DBTX                                  { return nil }

type fakeItemRepo struct {
	items map[uuid.UUID]*item.Item
}

func (r *fakeItemRepo) put(it *item.Item) {
	r.items[it.ID] = it
}

func (r *fakeItemRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*item.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, notFoundErr()
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) Claim(_ context.Context, itemID, patronID uuid.UUID) (bool, error) {
	it, ok := r.items[itemID]
	if !ok || !it.Available {
		return false, nil
	}
	p := patronID
	it.Available = false
	it.HeldBy = &p
	return true, nil
}

func (r *fakeItemRepo) Release(_ context.Context, itemID uuid.UUID) error {
	it, ok := r.items[itemID]
	if !ok {
		return notFoundErr()
	}
	it.Available = true
	it.HeldBy = nil
	return nil
}

func (r *fakeItemRepo) UpdateMetadata(_ context.Context, itemID uuid.UUID, title, author string) (bool, error) {
	it, ok := r.items[itemID]
	if !ok {
		return false, nil
	}
	it.Title = title
	it.Author = author
	return true, nil
}

type fakeBorrowRepo struct {
	borrows   map[uuid.UUID]*borrow.Borrow
	createErr error
	syncRuns  []int64
}

func (r *fakeBorrowRepo) Create(_ context.Context, b *borrow.Borrow) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.borrows[b.ID()] = b
	return nil
}

func (r *fakeBorrowRepo) Update(_ context.Context, b *borrow.Borrow) error {
	r.borrows[b.ID()] = b
	return nil
}

func (r *fakeBorrowRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*borrow.Borrow, error) {
	b, ok := r.borrows[id]
	if !ok {
		return nil, notFoundErr()
	}
	return b, nil
}

func (r *fakeBorrowRepo) SyncItemSnapshot(_ context.Context, _ uuid.UUID, _, _ string, _ int) (int64, error) {
	if len(r.syncRuns) == 0 {
		return 0, nil
	}
	n := r.syncRuns[0]
	r.syncRuns = r.syncRuns[1:]
	return n, nil
}

type fakeReservationRepo struct {
	reservations map[uuid.UUID]*reservation.Reservation
	syncRuns     []int64
}

func (r *fakeReservationRepo) put(res *reservation.Reservation) {
	r.reservations[res.ID()] = res
}

func (r *fakeReservationRepo) Create(_ context.Context, res *reservation.Reservation) error {
	r.reservations[res.ID()] = res
	return nil
}

func (r *fakeReservationRepo) Update(_ context.Context, res *reservation.Reservation) error {
	r.reservations[res.ID()] = res
	return nil
}

func (r *fakeReservationRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.reservations[id]
	if !ok {
		return nil, notFoundErr()
	}
	return res, nil
}

func (r *fakeReservationRepo) OldestActiveByItemForUpdate(_ context.Context, itemID uuid.UUID) (*reservation.Reservation, error) {
	var active []*reservation.Reservation
	for _, res := range r.reservations {
		if res.ItemID() == itemID && res.IsActive() {
			active = append(active, res)
		}
	}
	if len(active) == 0 {
		return nil, notFoundErr()
	}
	sort.Slice(active, func(i, j int) bool {
		if !active[i].ReservedAt().Equal(active[j].ReservedAt()) {
			return active[i].ReservedAt().Before(active[j].ReservedAt())
		}
		return active[i].ID().String() < active[j].ID().String()
	})
	return active[0], nil
}

func (r *fakeReservationRepo) FindActiveByPatronAndItemForUpdate(_ context.Context, patronID, itemID uuid.UUID) (*reservation.Reservation, error) {
	for _, res := range r.reservations {
		if res.PatronID() == patronID && res.ItemID() == itemID && res.IsActive() {
			return res, nil
		}
	}
	return nil, notFoundErr()
}

func (r *fakeReservationRepo) HasActiveByItem(_ context.Context, itemID uuid.UUID) (bool, error) {
	for _, res := range r.reservations {
		if res.ItemID() == itemID && res.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReservationRepo) SyncItemSnapshot(_ context.Context, _ uuid.UUID, _, _ string, _ int) (int64, error) {
	if len(r.syncRuns) == 0 {
		return 0, nil
	}
	n := r.syncRuns[0]
	r.syncRuns = r.syncRuns[1:]
	return n, nil
}

type fakePatronRepo struct {
	counts map[uuid.UUID]int
}

func (r *fakePatronRepo) ActiveCountForUpdate(_ context.Context, patronID uuid.UUID) (int, error) {
	return r.counts[patronID], nil
}

func (r *fakePatronRepo) IncrementActive(_ context.Context, patronID uuid.UUID) error {
	r.counts[patronID]++
	return nil
}

func (r *fakePatronRepo) DecrementActive(_ context.Context, patronID uuid.UUID) error {
	r.counts[patronID]--
	return nil
}

type notificationJob struct {
	kind    string
	topic   string
	payload []byte
	runAt   time.Time
}

type fakeNotificationRepo struct {
	jobs []notificationJob
}

func (r *fakeNotificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.jobs = append(r.jobs, notificationJob{kind: kind, topic: topic, payload: payload, runAt: runAt})
	return nil
}

type fakeOverdueScanner struct {
	ids []uuid.UUID
	err error
}

func (s *fakeOverdueScanner) OverdueCandidateIDs(_ context.Context, _ time.Time) ([]uuid.UUID, error) {
	return s.ids, s.err
}

type fakeExpiryScanner struct {
	ids []uuid.UUID
	err error
}

func (s *fakeExpiryScanner) LapsedActiveIDs(_ context.Context, _ time.Time) ([]uuid.UUID, error) {
	return s.ids, s.err
}

type fakePromoter struct {
	calls []uuid.UUID
	err   error
}

func (p *fakePromoter) PromoteNext(_ context.Context, itemID uuid.UUID) error {
	p.calls = append(p.calls, itemID)
	return p.err
}

type fakeCommandReads struct {
	items map[uuid.UUID]*item.Item
}

func (r *fakeCommandReads) ItemByID(_ context.Context, id uuid.UUID) (*item.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, notFoundErr()
	}
	cp := *it
	return &cp, nil
}
