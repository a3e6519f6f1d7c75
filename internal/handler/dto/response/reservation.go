package response

import (
	"time"

	"circulation/internal/domain/reservation"
	"circulation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID         uuid.UUID  `json:"id"`
	PatronID   uuid.UUID  `json:"patronId"`
	ItemID     uuid.UUID  `json:"itemId"`
	ItemTitle  string     `json:"itemTitle"`
	ItemAuthor string     `json:"itemAuthor"`
	ReservedAt time.Time  `json:"reservedAt"`
	ExpiresAt  time.Time  `json:"expiresAt"`
	PromotedAt *time.Time `json:"promotedAt,omitempty"`
	Status     string     `json:"status"`
}

type QueuePositionResponse struct {
	ItemID   uuid.UUID `json:"itemId"`
	Position int       `json:"position"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:         rm.ID,
		PatronID:   rm.PatronID,
		ItemID:     rm.ItemID,
		ItemTitle:  rm.ItemTitle,
		ItemAuthor: rm.ItemAuthor,
		ReservedAt: rm.ReservedAt,
		ExpiresAt:  rm.ExpiresAt,
		PromotedAt: rm.PromotedAt,
		Status:     rm.Status,
	}
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:         r.ID(),
		PatronID:   r.PatronID(),
		ItemID:     r.ItemID(),
		ItemTitle:  r.ItemTitle(),
		ItemAuthor: r.ItemAuthor(),
		ReservedAt: r.ReservedAt(),
		ExpiresAt:  r.ExpiresAt(),
		PromotedAt: r.PromotedAt(),
		Status:     r.Status().String(),
	}
}

func FromQueuePosition(rm *queries.QueuePositionView) *QueuePositionResponse {
	return &QueuePositionResponse{
		ItemID:   rm.ItemID,
		Position: rm.Position,
	}
}
