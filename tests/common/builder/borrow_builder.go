//go:build unit || e2e

package builder

import (
	"time"

	domborrow "circulation/internal/domain/borrow"
	reqdto "circulation/internal/handler/dto/request"
	"circulation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type BorrowBuilder struct {
	ID           uuid.UUID
	PatronID     uuid.UUID
	ItemID       uuid.UUID
	ItemTitle    string
	ItemAuthor   string
	BorrowedAt   time.Time
	DueDate      time.Time
	ReturnedAt   *time.Time
	Status       string
	FineAmount   decimal.Decimal
	RenewalCount int
	DurationDays int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewBorrowBuilder() *BorrowBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &BorrowBuilder{
		ID:           uuid.New(),
		PatronID:     uuid.New(),
		ItemID:       uuid.New(),
		ItemTitle:    "The Go Programming Language",
		ItemAuthor:   "Alan A. A. Donovan",
		BorrowedAt:   now,
		DueDate:      now.AddDate(0, 0, 14),
		Status:       domborrow.StatusActive.String(),
		FineAmount:   decimal.Zero,
		RenewalCount: 0,
		DurationDays: 14,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *BorrowBuilder) With(mutate func(*BorrowBuilder)) *BorrowBuilder {
	mutate(b)
	return b
}

// Build methods

func (b *BorrowBuilder) BuildDomain() (*domborrow.Borrow, error) {
	snap := domborrow.ItemSnapshot{ID: b.ItemID, Title: b.ItemTitle, Author: b.ItemAuthor}
	return domborrow.NewBorrow(b.PatronID, snap, b.BorrowedAt, b.DurationDays)
}

// BuildReconstructed bypasses NewBorrow so tests can stage returned or
// overdue records directly.
func (b *BorrowBuilder) BuildReconstructed() *domborrow.Borrow {
	status, _ := domborrow.NewStatus(b.Status)
	return domborrow.Reconstruct(
		b.ID, b.PatronID, b.ItemID,
		b.ItemTitle, b.ItemAuthor,
		b.BorrowedAt, b.DueDate,
		b.ReturnedAt,
		status,
		b.FineAmount,
		b.RenewalCount,
		b.CreatedAt, b.UpdatedAt,
	)
}

func (b *BorrowBuilder) BuildView() *queries.BorrowView {
	var view queries.BorrowView
	// Field names line up with the builder, so a struct copy covers
	// everything except the computed flag.
	_ = copier.Copy(&view, b)
	view.Overdue = b.Status == domborrow.StatusActive.String() && time.Now().After(b.DueDate)
	return &view
}

func (b *BorrowBuilder) BuildBorrowRequestDTO() reqdto.BorrowBookRequest {
	return reqdto.BorrowBookRequest{
		ItemID:       b.ItemID,
		DurationDays: b.DurationDays,
	}
}

func (b *BorrowBuilder) BuildRenewRequestDTO() reqdto.RenewBorrowRequest {
	return reqdto.RenewBorrowRequest{
		ExtraDays: b.DurationDays,
	}
}

// Fluent builder methods

func (b *BorrowBuilder) WithPatronID(patronID uuid.UUID) *BorrowBuilder {
	b.PatronID = patronID
	return b
}

func (b *BorrowBuilder) WithItemID(itemID uuid.UUID) *BorrowBuilder {
	b.ItemID = itemID
	return b
}

func (b *BorrowBuilder) WithDurationDays(days int) *BorrowBuilder {
	b.DurationDays = days
	return b
}

func (b *BorrowBuilder) WithBorrowedAt(t time.Time) *BorrowBuilder {
	b.BorrowedAt = t
	return b
}

func (b *BorrowBuilder) WithDueDate(t time.Time) *BorrowBuilder {
	b.DueDate = t
	return b
}

func (b *BorrowBuilder) WithRenewalCount(n int) *BorrowBuilder {
	b.RenewalCount = n
	return b
}

func (b *BorrowBuilder) AsReturned(returnedAt time.Time) *BorrowBuilder {
	b.Status = domborrow.StatusReturned.String()
	t := returnedAt
	b.ReturnedAt = &t
	return b
}

func (b *BorrowBuilder) AsOverdue(daysPast int) *BorrowBuilder {
	b.DueDate = time.Now().UTC().AddDate(0, 0, -daysPast)
	b.BorrowedAt = b.DueDate.AddDate(0, 0, -b.DurationDays)
	return b
}
