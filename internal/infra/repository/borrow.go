package repository

import (
	"context"
	"errors"
	"time"

	"circulation/internal/domain/borrow"
	"circulation/internal/infra"
	"circulation/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type BorrowRepository struct {
	db db.DBTX
}

func NewBorrowRepository(dbtx db.DBTX) *BorrowRepository {
	return &BorrowRepository{db: dbtx}
}

func (r *BorrowRepository) Create(ctx context.Context, b *borrow.Borrow) error {
	const query = `
		INSERT INTO borrows (
			id, patron_id, item_id, item_title, item_author,
			borrowed_at, due_date, returned_at, status,
			fine_amount, renewal_count
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::numeric, $11)`

	_, err := r.db.Exec(ctx, query,
		b.ID(), b.PatronID(), b.ItemID(), b.ItemTitle(), b.ItemAuthor(),
		b.BorrowedAt(), b.DueDate(), b.ReturnedAt(), b.Status().String(),
		b.FineAmount().String(), b.RenewalCount(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			// The partial unique index on (item_id) WHERE status='active'
			// is the mutual-exclusion backstop.
			return infra.WrapRepoErr("item already has an active borrow", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("referenced item does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create borrow", err)
	}

	return nil
}

func (r *BorrowRepository) Update(ctx context.Context, b *borrow.Borrow) error {
	const query = `
		UPDATE borrows
		SET due_date = $2, returned_at = $3, status = $4,
			fine_amount = $5::numeric, renewal_count = $6, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		b.ID(), b.DueDate(), b.ReturnedAt(), b.Status().String(),
		b.FineAmount().String(), b.RenewalCount(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update borrow", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("borrow not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *BorrowRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*borrow.Borrow, error) {
	const query = `
		SELECT id, patron_id, item_id, item_title, item_author,
			borrowed_at, due_date, returned_at, status,
			fine_amount::text, renewal_count, created_at, updated_at
		FROM borrows
		WHERE id = $1
		FOR UPDATE`

	row := r.db.QueryRow(ctx, query, id)
	b, err := scanBorrow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("borrow not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock borrow", err)
	}

	return b, nil
}

func (r *BorrowRepository) SyncItemSnapshot(ctx context.Context, itemID uuid.UUID, title, author string, limit int) (int64, error) {
	const query = `
		UPDATE borrows
		SET item_title = $2, item_author = $3, updated_at = now()
		WHERE id IN (
			SELECT id FROM borrows
			WHERE item_id = $1
				AND (item_title IS DISTINCT FROM $2 OR item_author IS DISTINCT FROM $3)
			LIMIT $4
		)`

	tag, err := r.db.Exec(ctx, query, itemID, title, author, limit)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sync borrow item snapshot", err)
	}

	return tag.RowsAffected(), nil
}

func scanBorrow(row pgx.Row) (*borrow.Borrow, error) {
	var (
		id, patronID, itemID  uuid.UUID
		itemTitle, itemAuthor string
		borrowedAt, dueDate   time.Time
		returnedAt            *time.Time
		statusStr, fineStr    string
		renewalCount          int
		createdAt, updatedAt  time.Time
	)

	err := row.Scan(
		&id, &patronID, &itemID, &itemTitle, &itemAuthor,
		&borrowedAt, &dueDate, &returnedAt, &statusStr,
		&fineStr, &renewalCount, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	status, err := borrow.NewStatus(statusStr)
	if err != nil {
		return nil, err
	}

	fine, err := decimal.NewFromString(fineStr)
	if err != nil {
		return nil, err
	}

	return borrow.Reconstruct(
		id, patronID, itemID, itemTitle, itemAuthor,
		borrowedAt, dueDate, returnedAt, status,
		fine, renewalCount, createdAt, updatedAt,
	), nil
}
