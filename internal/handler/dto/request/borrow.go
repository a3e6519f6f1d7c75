package request

import (
	"github.com/google/uuid"
)

type BorrowBookRequest struct {
	ItemID       uuid.UUID `json:"item_id" binding:"required"`
	DurationDays int       `json:"duration_days" binding:"omitempty,min=1,max=365"`
}

type RenewBorrowRequest struct {
	ExtraDays int `json:"extra_days" binding:"omitempty,min=1,max=365"`
}
