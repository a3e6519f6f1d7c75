package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type BorrowView struct {
	ID           uuid.UUID       `json:"id"`
	PatronID     uuid.UUID       `json:"patron_id"`
	ItemID       uuid.UUID       `json:"item_id"`
	ItemTitle    string          `json:"item_title"`
	ItemAuthor   string          `json:"item_author"`
	BorrowedAt   time.Time       `json:"borrowed_at"`
	DueDate      time.Time       `json:"due_date"`
	ReturnedAt   *time.Time      `json:"returned_at,omitempty"`
	Status       string          `json:"status"`
	FineAmount   decimal.Decimal `json:"fine_amount"`
	RenewalCount int             `json:"renewal_count"`
	Overdue      bool            `json:"overdue"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type ReservationView struct {
	ID         uuid.UUID  `json:"id"`
	PatronID   uuid.UUID  `json:"patron_id"`
	ItemID     uuid.UUID  `json:"item_id"`
	ItemTitle  string     `json:"item_title"`
	ItemAuthor string     `json:"item_author"`
	ReservedAt time.Time  `json:"reserved_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
	PromotedAt *time.Time `json:"promoted_at,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type ItemView struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Available bool       `json:"available"`
	HeldBy    *uuid.UUID `json:"held_by,omitempty"`
}

// QueuePositionView is the 1-based rank among active reservations for one
// item, ordered by (reserved_at, id).
type QueuePositionView struct {
	ItemID   uuid.UUID `json:"item_id"`
	PatronID uuid.UUID `json:"patron_id"`
	Position int       `json:"position"`
}
