package request

import (
	"github.com/google/uuid"
)

type ReserveBookRequest struct {
	ItemID uuid.UUID `json:"item_id" binding:"required"`
}
