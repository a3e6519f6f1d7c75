package repository

import (
	"context"
	"errors"

	"circulation/internal/domain/item"
	"circulation/internal/infra"
	"circulation/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(dbtx db.DBTX) *ItemRepository {
	return &ItemRepository{db: dbtx}
}

func (r *ItemRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*item.Item, error) {
	const query = `
		SELECT id, title, author, available, held_by
		FROM items
		WHERE id = $1
		FOR UPDATE`

	var it item.Item
	err := r.db.QueryRow(ctx, query, id).Scan(
		&it.ID, &it.Title, &it.Author, &it.Available, &it.HeldBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock item", err)
	}

	if !it.ConsistentWith() {
		return nil, infra.WrapRepoErr("item availability disagrees with holder", nil, infra.KindDBFailure)
	}

	return &it, nil
}

// Claim is the availability race: the conditional WHERE makes losing it a
// zero-row update, not an error.
func (r *ItemRepository) Claim(ctx context.Context, itemID, patronID uuid.UUID) (bool, error) {
	const query = `
		UPDATE items
		SET available = false, held_by = $2, updated_at = now()
		WHERE id = $1 AND available`

	tag, err := r.db.Exec(ctx, query, itemID, patronID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim item", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *ItemRepository) Release(ctx context.Context, itemID uuid.UUID) error {
	const query = `
		UPDATE items
		SET available = true, held_by = NULL, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, itemID)
	if err != nil {
		return infra.WrapRepoErr("failed to release item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ItemRepository) UpdateMetadata(ctx context.Context, itemID uuid.UUID, title, author string) (bool, error) {
	const query = `
		UPDATE items
		SET title = $2, author = $3, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, itemID, title, author)
	if err != nil {
		return false, infra.WrapRepoErr("failed to update item metadata", err)
	}

	return tag.RowsAffected() == 1, nil
}
