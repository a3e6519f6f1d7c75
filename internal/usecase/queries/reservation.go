package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByPatron(ctx context.Context, patronID uuid.UUID) ([]*ReservationView, error)
	// QueuePosition returns the 1-based rank of the patron's active
	// reservation in the item's FIFO queue.
	QueuePosition(ctx context.Context, itemID, patronID uuid.UUID) (*QueuePositionView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByPatron(ctx context.Context, patronID uuid.UUID) ([]*ReservationView, error)
	QueuePosition(ctx context.Context, itemID, patronID uuid.UUID) (int, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) ListByPatron(ctx context.Context, patronID uuid.UUID) ([]*ReservationView, error) {
	return q.store.FindByPatron(ctx, patronID)
}

func (q *reservationQueriesImpl) QueuePosition(ctx context.Context, itemID, patronID uuid.UUID) (*QueuePositionView, error) {
	position, err := q.store.QueuePosition(ctx, itemID, patronID)
	if err != nil {
		return nil, err
	}

	return &QueuePositionView{
		ItemID:   itemID,
		PatronID: patronID,
		Position: position,
	}, nil
}
