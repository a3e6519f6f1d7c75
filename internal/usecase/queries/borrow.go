package queries

import (
	"context"

	"github.com/google/uuid"
)

type BorrowQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BorrowView, error)
	// ActiveByPatron returns the patron's live loan list, overdue items
	// first, then by soonest due date.
	ActiveByPatron(ctx context.Context, patronID uuid.UUID) ([]*BorrowView, error)
}

type BorrowReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BorrowView, error)
	FindActiveByPatron(ctx context.Context, patronID uuid.UUID) ([]*BorrowView, error)
}

type borrowQueriesImpl struct {
	store BorrowReadStore
}

func NewBorrowQueries(store BorrowReadStore) BorrowQueries {
	return &borrowQueriesImpl{store: store}
}

func (q *borrowQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BorrowView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *borrowQueriesImpl) ActiveByPatron(ctx context.Context, patronID uuid.UUID) ([]*BorrowView, error) {
	return q.store.FindActiveByPatron(ctx, patronID)
}
