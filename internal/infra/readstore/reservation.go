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
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func reservationDataset() *goqu.SelectDataset {
	return dialect.From("reservations").Select(
		"id", "patron_id", "item_id", "item_title", "item_author",
		"reserved_at", "expires_at", "promoted_at", "status",
		"created_at", "updated_at",
	)
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query, args, err := reservationDataset().
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation query", err)
	}

	view, err := scanReservationView(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return view, nil
}

func (r *ReservationReadStore) FindByPatron(ctx context.Context, patronID uuid.UUID) ([]*queries.ReservationView, error) {
	query, args, err := reservationDataset().
		Where(goqu.C("patron_id").Eq(patronID)).
		Order(goqu.C("reserved_at").Desc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build patron reservations query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list patron reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

// QueuePosition ranks the patron's active reservation among the item's
// active reservations by (reserved_at, id).
func (r *ReservationReadStore) QueuePosition(ctx context.Context, itemID, patronID uuid.UUID) (int, error) {
	query, args, err := dialect.From("reservations").
		Select("reserved_at", "id").
		Where(
			goqu.C("item_id").Eq(itemID),
			goqu.C("patron_id").Eq(patronID),
			goqu.C("status").Eq("active"),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build queue position query", err)
	}

	var (
		reservedAt time.Time
		id         uuid.UUID
	)
	if err := r.db.QueryRow(ctx, query, args...).Scan(&reservedAt, &id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.WrapRepoErr("no active reservation for patron and item", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to find patron reservation", err)
	}

	countQuery, countArgs, err := dialect.From("reservations").
		Select(goqu.COUNT("*")).
		Where(
			goqu.C("item_id").Eq(itemID),
			goqu.C("status").Eq("active"),
			goqu.L("(reserved_at, id) < (?, ?)", reservedAt, id),
		).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build queue rank query", err)
	}

	var ahead int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&ahead); err != nil {
		return 0, infra.WrapRepoErr("failed to rank reservation", err)
	}

	return ahead + 1, nil
}

// LapsedActiveIDs lists active reservations whose expiry has passed, the
// expiry sweep's candidate scan.
func (r *ReservationReadStore) LapsedActiveIDs(ctx context.Context, asOf time.Time) ([]uuid.UUID, error) {
	query, args, err := dialect.From("reservations").
		Select("id").
		Where(
			goqu.C("status").Eq("active"),
			goqu.C("expires_at").Lt(asOf),
		).
		Order(goqu.C("expires_at").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build lapsed reservations query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lapsed reservations", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lapsed reservation", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate lapsed reservations", err)
	}

	return ids, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var view queries.ReservationView

	err := row.Scan(
		&view.ID, &view.PatronID, &view.ItemID, &view.ItemTitle, &view.ItemAuthor,
		&view.ReservedAt, &view.ExpiresAt, &view.PromotedAt, &view.Status,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &view, nil
}
