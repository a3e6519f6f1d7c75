//go:build unit || e2e

package builder

import (
	"time"

	domreservation "circulation/internal/domain/reservation"
	reqdto "circulation/internal/handler/dto/request"
	"circulation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationBuilder struct {
	ID          uuid.UUID
	PatronID    uuid.UUID
	ItemID      uuid.UUID
	ItemTitle   string
	ItemAuthor  string
	ReservedAt  time.Time
	ExpiresAt   time.Time
	PromotedAt  *time.Time
	Status      string
	QueueWindow time.Duration
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &ReservationBuilder{
		ID:          uuid.New(),
		PatronID:    uuid.New(),
		ItemID:      uuid.New(),
		ItemTitle:   "The Go Programming Language",
		ItemAuthor:  "Alan A. A. Donovan",
		ReservedAt:  now,
		ExpiresAt:   now.Add(720 * time.Hour),
		Status:      domreservation.StatusActive.String(),
		QueueWindow: 720 * time.Hour,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods

func (r *ReservationBuilder) BuildDomain() *domreservation.Reservation {
	snap := domreservation.ItemSnapshot{ID: r.ItemID, Title: r.ItemTitle, Author: r.ItemAuthor}
	return domreservation.NewReservation(r.PatronID, snap, r.ReservedAt, r.QueueWindow)
}

// BuildReconstructed stages cancelled, promoted, or lapsed records that the
// constructor cannot produce directly.
func (r *ReservationBuilder) BuildReconstructed() *domreservation.Reservation {
	status, _ := domreservation.NewStatus(r.Status)
	return domreservation.Reconstruct(
		r.ID, r.PatronID, r.ItemID,
		r.ItemTitle, r.ItemAuthor,
		r.ReservedAt, r.ExpiresAt,
		r.PromotedAt,
		status,
		r.CreatedAt, r.UpdatedAt,
	)
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	var view queries.ReservationView
	_ = copier.Copy(&view, r)
	return &view
}

func (r *ReservationBuilder) BuildQueuePositionView(position int) *queries.QueuePositionView {
	return &queries.QueuePositionView{
		ItemID:   r.ItemID,
		PatronID: r.PatronID,
		Position: position,
	}
}

func (r *ReservationBuilder) BuildReserveRequestDTO() reqdto.ReserveBookRequest {
	return reqdto.ReserveBookRequest{
		ItemID: r.ItemID,
	}
}

// Fluent builder methods

func (r *ReservationBuilder) WithPatronID(patronID uuid.UUID) *ReservationBuilder {
	r.PatronID = patronID
	return r
}

func (r *ReservationBuilder) WithItemID(itemID uuid.UUID) *ReservationBuilder {
	r.ItemID = itemID
	return r
}

func (r *ReservationBuilder) WithReservedAt(t time.Time) *ReservationBuilder {
	r.ReservedAt = t
	return r
}

func (r *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) AsPromoted(promotedAt time.Time, pickupWindow time.Duration) *ReservationBuilder {
	t := promotedAt
	r.PromotedAt = &t
	r.ExpiresAt = promotedAt.Add(pickupWindow)
	return r
}

func (r *ReservationBuilder) AsLapsed() *ReservationBuilder {
	r.ExpiresAt = time.Now().UTC().Add(-time.Hour)
	return r
}

func (r *ReservationBuilder) AsCancelled() *ReservationBuilder {
	r.Status = domreservation.StatusCancelled.String()
	return r
}
