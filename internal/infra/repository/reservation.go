package repository

import (
	"context"
	"errors"
	"time"

	"circulation/internal/domain/reservation"
	"circulation/internal/infra"
	"circulation/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		INSERT INTO reservations (
			id, patron_id, item_id, item_title, item_author,
			reserved_at, expires_at, promoted_at, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		res.ID(), res.PatronID(), res.ItemID(), res.ItemTitle(), res.ItemAuthor(),
		res.ReservedAt(), res.ExpiresAt(), res.PromotedAt(), res.Status().String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("patron already has an active reservation for this item", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("referenced item does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		UPDATE reservations
		SET expires_at = $2, promoted_at = $3, status = $4, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		res.ID(), res.ExpiresAt(), res.PromotedAt(), res.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	query := selectReservation + ` WHERE id = $1 FOR UPDATE`

	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	return res, nil
}

// OldestActiveByItemForUpdate locks the head of the FIFO queue. Ties on
// reserved_at break by id, so the order is total.
func (r *ReservationRepository) OldestActiveByItemForUpdate(ctx context.Context, itemID uuid.UUID) (*reservation.Reservation, error) {
	query := selectReservation + `
		WHERE item_id = $1 AND status = 'active'
		ORDER BY reserved_at, id
		LIMIT 1
		FOR UPDATE`

	res, err := scanReservation(r.db.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no active reservation for item", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock queue head", err)
	}

	return res, nil
}

func (r *ReservationRepository) FindActiveByPatronAndItemForUpdate(ctx context.Context, patronID, itemID uuid.UUID) (*reservation.Reservation, error) {
	query := selectReservation + `
		WHERE patron_id = $1 AND item_id = $2 AND status = 'active'
		FOR UPDATE`

	res, err := scanReservation(r.db.QueryRow(ctx, query, patronID, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("no active reservation for patron and item", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}

	return res, nil
}

func (r *ReservationRepository) HasActiveByItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE item_id = $1 AND status = 'active'
		)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, itemID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check waiting reservations", err)
	}

	return exists, nil
}

func (r *ReservationRepository) SyncItemSnapshot(ctx context.Context, itemID uuid.UUID, title, author string, limit int) (int64, error) {
	const query = `
		UPDATE reservations
		SET item_title = $2, item_author = $3, updated_at = now()
		WHERE id IN (
			SELECT id FROM reservations
			WHERE item_id = $1
				AND (item_title IS DISTINCT FROM $2 OR item_author IS DISTINCT FROM $3)
			LIMIT $4
		)`

	tag, err := r.db.Exec(ctx, query, itemID, title, author, limit)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sync reservation item snapshot", err)
	}

	return tag.RowsAffected(), nil
}

const selectReservation = `
	SELECT id, patron_id, item_id, item_title, item_author,
		reserved_at, expires_at, promoted_at, status, created_at, updated_at
	FROM reservations`

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, patronID, itemID  uuid.UUID
		itemTitle, itemAuthor string
		reservedAt, expiresAt time.Time
		promotedAt            *time.Time
		statusStr             string
		createdAt, updatedAt  time.Time
	)

	err := row.Scan(
		&id, &patronID, &itemID, &itemTitle, &itemAuthor,
		&reservedAt, &expiresAt, &promotedAt, &statusStr,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	status, err := reservation.NewStatus(statusStr)
	if err != nil {
		return nil, err
	}

	return reservation.Reconstruct(
		id, patronID, itemID, itemTitle, itemAuthor,
		reservedAt, expiresAt, promotedAt, status,
		createdAt, updatedAt,
	), nil
}
