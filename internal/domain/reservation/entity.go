package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid reservation status")
	ErrNotActive        = errors.New("reservation is not active")
	ErrAlreadyCancelled = errors.New("reservation is already cancelled")
	ErrNotPromoted      = errors.New("reservation has not been promoted")
)

// Reservation is a queued claim on an unavailable item. Among active
// reservations for one item, (reservedAt, id) ordering defines the queue.
type Reservation struct {
	id         uuid.UUID
	patronID   uuid.UUID
	itemID     uuid.UUID
	itemTitle  string
	itemAuthor string
	reservedAt time.Time
	expiresAt  time.Time
	promotedAt *time.Time
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

type ItemSnapshot struct {
	ID     uuid.UUID
	Title  string
	Author string
}

func NewReservation(patronID uuid.UUID, item ItemSnapshot, now time.Time, queueWindow time.Duration) *Reservation {
	return &Reservation{
		id:         uuid.New(),
		patronID:   patronID,
		itemID:     item.ID,
		itemTitle:  item.Title,
		itemAuthor: item.Author,
		reservedAt: now,
		expiresAt:  now.Add(queueWindow),
		status:     StatusActive,
	}
}

func Reconstruct(
	id, patronID, itemID uuid.UUID,
	itemTitle, itemAuthor string,
	reservedAt, expiresAt time.Time,
	promotedAt *time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		patronID:   patronID,
		itemID:     itemID,
		itemTitle:  itemTitle,
		itemAuthor: itemAuthor,
		reservedAt: reservedAt,
		expiresAt:  expiresAt,
		promotedAt: promotedAt,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Promote narrows the expiry to the pickup window. The reservation stays
// active: the patron must still borrow the item to fulfil it.
func (r *Reservation) Promote(now time.Time, pickupWindow time.Duration) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	t := now
	r.promotedAt = &t
	r.expiresAt = now.Add(pickupWindow)
	return nil
}

func (r *Reservation) Fulfill() error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.status = StatusFulfilled
	return nil
}

// Cancel is idempotent on an already-cancelled reservation.
func (r *Reservation) Cancel() error {
	switch r.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusActive:
		r.status = StatusCancelled
		return nil
	default:
		return ErrNotActive
	}
}

func (r *Reservation) Expire() error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.status = StatusExpired
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

// IsPromoted reports whether the reservation currently holds a pickup window.
func (r *Reservation) IsPromoted() bool {
	return r.status == StatusActive && r.promotedAt != nil
}

func (r *Reservation) HasLapsedAt(now time.Time) bool {
	return r.status == StatusActive && now.After(r.expiresAt)
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) PatronID() uuid.UUID    { return r.patronID }
func (r *Reservation) ItemID() uuid.UUID      { return r.itemID }
func (r *Reservation) ItemTitle() string      { return r.itemTitle }
func (r *Reservation) ItemAuthor() string     { return r.itemAuthor }
func (r *Reservation) ReservedAt() time.Time  { return r.reservedAt }
func (r *Reservation) ExpiresAt() time.Time   { return r.expiresAt }
func (r *Reservation) PromotedAt() *time.Time { return r.promotedAt }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time   { return r.updatedAt }
