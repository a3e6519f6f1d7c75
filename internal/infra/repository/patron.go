package repository

import (
	"context"

	"circulation/internal/infra"
	"circulation/internal/infra/db"

	"github.com/google/uuid"
)

// PatronRepository maintains the per-patron active-borrow counter. The
// counter is mutated in the same transaction as the borrow write, never
// recomputed by a scan, so limit checks stay O(1) and race-free.
type PatronRepository struct {
	db db.DBTX
}

func NewPatronRepository(dbtx db.DBTX) *PatronRepository {
	return &PatronRepository{db: dbtx}
}

func (r *PatronRepository) ActiveCountForUpdate(ctx context.Context, patronID uuid.UUID) (int, error) {
	// First contact with an unknown patron creates their counter row.
	const upsert = `
		INSERT INTO patrons (id) VALUES ($1)
		ON CONFLICT (id) DO NOTHING`

	if _, err := r.db.Exec(ctx, upsert, patronID); err != nil {
		return 0, infra.WrapRepoErr("failed to ensure patron counter", err)
	}

	const query = `
		SELECT active_borrows FROM patrons
		WHERE id = $1
		FOR UPDATE`

	var count int
	if err := r.db.QueryRow(ctx, query, patronID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to lock patron counter", err)
	}

	return count, nil
}

func (r *PatronRepository) IncrementActive(ctx context.Context, patronID uuid.UUID) error {
	const query = `
		UPDATE patrons
		SET active_borrows = active_borrows + 1, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, patronID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment patron counter", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("patron not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *PatronRepository) DecrementActive(ctx context.Context, patronID uuid.UUID) error {
	// GREATEST guards the counter against drift from replayed returns; the
	// CHECK constraint would otherwise abort the whole transaction.
	const query = `
		UPDATE patrons
		SET active_borrows = GREATEST(active_borrows - 1, 0), updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, patronID)
	if err != nil {
		return infra.WrapRepoErr("failed to decrement patron counter", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("patron not found", nil, infra.KindNotFound)
	}

	return nil
}
