package readstore

import (
	"context"
	"errors"
	"time"

	"circulation/internal/infra"
	"circulation/internal/infra/db"
	"circulation/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type BorrowReadStore struct {
	db db.DBTX
}

func NewBorrowReadStore(dbtx db.DBTX) *BorrowReadStore {
	return &BorrowReadStore{db: dbtx}
}

func borrowDataset() *goqu.SelectDataset {
	return dialect.From("borrows").Select(
		"id", "patron_id", "item_id", "item_title", "item_author",
		"borrowed_at", "due_date", "returned_at", "status",
		goqu.L("fine_amount::text"), "renewal_count",
		goqu.L("(status = 'active' AND due_date < now())").As("overdue"),
		"created_at", "updated_at",
	)
}

func (r *BorrowReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BorrowView, error) {
	query, args, err := borrowDataset().
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build borrow query", err)
	}

	view, err := scanBorrowView(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("borrow not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find borrow by ID", err)
	}

	return view, nil
}

// FindActiveByPatron lists a patron's active borrows overdue-first, then by
// soonest due date.
func (r *BorrowReadStore) FindActiveByPatron(ctx context.Context, patronID uuid.UUID) ([]*queries.BorrowView, error) {
	query, args, err := borrowDataset().
		Where(
			goqu.C("patron_id").Eq(patronID),
			goqu.C("status").Eq("active"),
		).
		Order(
			goqu.L("due_date < now()").Desc(),
			goqu.C("due_date").Asc(),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build active borrows query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active borrows", err)
	}
	defer rows.Close()

	var result []*queries.BorrowView
	for rows.Next() {
		view, err := scanBorrowView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan borrow row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate borrow rows", err)
	}

	return result, nil
}

// OverdueCandidateIDs is the sweep's candidate scan. It runs outside any
// transaction; each candidate is re-verified under its own row lock before
// a fine is written.
func (r *BorrowReadStore) OverdueCandidateIDs(ctx context.Context, asOf time.Time) ([]uuid.UUID, error) {
	query, args, err := dialect.From("borrows").
		Select("id").
		Where(
			goqu.C("status").Eq("active"),
			goqu.C("due_date").Lt(asOf),
		).
		Order(goqu.C("due_date").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build overdue candidates query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overdue candidates", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan overdue candidate", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate overdue candidates", err)
	}

	return ids, nil
}

func scanBorrowView(row pgx.Row) (*queries.BorrowView, error) {
	var (
		view    queries.BorrowView
		fineStr string
	)

	err := row.Scan(
		&view.ID, &view.PatronID, &view.ItemID, &view.ItemTitle, &view.ItemAuthor,
		&view.BorrowedAt, &view.DueDate, &view.ReturnedAt, &view.Status,
		&fineStr, &view.RenewalCount, &view.Overdue,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	fine, err := decimal.NewFromString(fineStr)
	if err != nil {
		return nil, err
	}
	view.FineAmount = fine

	return &view, nil
}
