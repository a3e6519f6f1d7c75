package response

import (
	"time"

	"circulation/internal/domain/borrow"
	"circulation/internal/usecase/queries"

	"github.com/google/uuid"
)

type BorrowResponse struct {
	ID           uuid.UUID  `json:"id"`
	PatronID     uuid.UUID  `json:"patronId"`
	ItemID       uuid.UUID  `json:"itemId"`
	ItemTitle    string     `json:"itemTitle"`
	ItemAuthor   string     `json:"itemAuthor"`
	BorrowedAt   time.Time  `json:"borrowedAt"`
	DueDate      time.Time  `json:"dueDate"`
	ReturnedAt   *time.Time `json:"returnedAt,omitempty"`
	Status       string     `json:"status"`
	FineAmount   string     `json:"fineAmount"`
	RenewalCount int        `json:"renewalCount"`
	Overdue      bool       `json:"overdue"`
}

func FromBorrowView(rm *queries.BorrowView) *BorrowResponse {
	return &BorrowResponse{
		ID:           rm.ID,
		PatronID:     rm.PatronID,
		ItemID:       rm.ItemID,
		ItemTitle:    rm.ItemTitle,
		ItemAuthor:   rm.ItemAuthor,
		BorrowedAt:   rm.BorrowedAt,
		DueDate:      rm.DueDate,
		ReturnedAt:   rm.ReturnedAt,
		Status:       rm.Status,
		FineAmount:   rm.FineAmount.StringFixed(2),
		RenewalCount: rm.RenewalCount,
		Overdue:      rm.Overdue,
	}
}

func FromBorrow(b *borrow.Borrow, now time.Time) *BorrowResponse {
	return &BorrowResponse{
		ID:           b.ID(),
		PatronID:     b.PatronID(),
		ItemID:       b.ItemID(),
		ItemTitle:    b.ItemTitle(),
		ItemAuthor:   b.ItemAuthor(),
		BorrowedAt:   b.BorrowedAt(),
		DueDate:      b.DueDate(),
		ReturnedAt:   b.ReturnedAt(),
		Status:       b.Status().String(),
		FineAmount:   b.FineAmount().StringFixed(2),
		RenewalCount: b.RenewalCount(),
		Overdue:      b.IsOverdueAt(now),
	}
}
