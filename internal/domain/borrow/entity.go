package borrow

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDuration = errors.New("loan duration must be positive")
	ErrInvalidStatus   = errors.New("invalid borrow status")
	ErrAlreadyReturned = errors.New("borrow is already returned")
	ErrNegativeFine    = errors.New("fine amount cannot be negative")
)

// Borrow is the ledger record of one patron holding one item. Records are
// append-only: a returned borrow stays around as audit trail.
type Borrow struct {
	id           uuid.UUID
	patronID     uuid.UUID
	itemID       uuid.UUID
	itemTitle    string
	itemAuthor   string
	borrowedAt   time.Time
	dueDate      time.Time
	returnedAt   *time.Time
	status       Status
	fineAmount   decimal.Decimal
	renewalCount int
	createdAt    time.Time
	updatedAt    time.Time
}

// ItemSnapshot is the denormalized display data captured at borrow time.
type ItemSnapshot struct {
	ID     uuid.UUID
	Title  string
	Author string
}

func NewBorrow(patronID uuid.UUID, item ItemSnapshot, now time.Time, durationDays int) (*Borrow, error) {
	if durationDays <= 0 {
		return nil, ErrInvalidDuration
	}

	return &Borrow{
		id:         uuid.New(),
		patronID:   patronID,
		itemID:     item.ID,
		itemTitle:  item.Title,
		itemAuthor: item.Author,
		borrowedAt: now,
		dueDate:    now.AddDate(0, 0, durationDays),
		status:     StatusActive,
		fineAmount: decimal.Zero,
	}, nil
}

func Reconstruct(
	id, patronID, itemID uuid.UUID,
	itemTitle, itemAuthor string,
	borrowedAt, dueDate time.Time,
	returnedAt *time.Time,
	status Status,
	fineAmount decimal.Decimal,
	renewalCount int,
	createdAt, updatedAt time.Time,
) *Borrow {
	return &Borrow{
		id:           id,
		patronID:     patronID,
		itemID:       itemID,
		itemTitle:    itemTitle,
		itemAuthor:   itemAuthor,
		borrowedAt:   borrowedAt,
		dueDate:      dueDate,
		returnedAt:   returnedAt,
		status:       status,
		fineAmount:   fineAmount,
		renewalCount: renewalCount,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Return transitions the borrow to its terminal state. Callers treat
// ErrAlreadyReturned as a no-op success to tolerate duplicate retries.
func (b *Borrow) Return(now time.Time) error {
	if b.status == StatusReturned {
		return ErrAlreadyReturned
	}
	b.status = StatusReturned
	t := now
	b.returnedAt = &t
	return nil
}

func (b *Borrow) Renew(extraDays int) error {
	if b.status != StatusActive {
		return ErrAlreadyReturned
	}
	if extraDays <= 0 {
		return ErrInvalidDuration
	}
	b.dueDate = b.dueDate.AddDate(0, 0, extraDays)
	b.renewalCount++
	return nil
}

// ApplyFine overwrites the fine with a freshly computed amount. Overwriting
// rather than accumulating keeps the overdue sweep idempotent.
func (b *Borrow) ApplyFine(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeFine
	}
	b.fineAmount = amount
	return nil
}

// IsOverdueAt is a computed predicate, not a status transition: a concurrent
// return never races with an "overdue" state because there is none.
func (b *Borrow) IsOverdueAt(now time.Time) bool {
	return b.status == StatusActive && now.After(b.dueDate)
}

func (b *Borrow) IsActive() bool {
	return b.status == StatusActive
}

func (b *Borrow) ID() uuid.UUID               { return b.id }
func (b *Borrow) PatronID() uuid.UUID         { return b.patronID }
func (b *Borrow) ItemID() uuid.UUID           { return b.itemID }
func (b *Borrow) ItemTitle() string           { return b.itemTitle }
func (b *Borrow) ItemAuthor() string          { return b.itemAuthor }
func (b *Borrow) BorrowedAt() time.Time       { return b.borrowedAt }
func (b *Borrow) DueDate() time.Time          { return b.dueDate }
func (b *Borrow) ReturnedAt() *time.Time      { return b.returnedAt }
func (b *Borrow) Status() Status              { return b.status }
func (b *Borrow) FineAmount() decimal.Decimal { return b.fineAmount }
func (b *Borrow) RenewalCount() int           { return b.renewalCount }
func (b *Borrow) CreatedAt() time.Time        { return b.createdAt }
func (b *Borrow) UpdatedAt() time.Time        { return b.updatedAt }
