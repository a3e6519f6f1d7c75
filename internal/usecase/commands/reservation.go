package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"circulation/internal/domain/policy"
	"circulation/internal/domain/reservation"
	"circulation/internal/infra"
	"circulation/internal/pkg/clock"
	"circulation/internal/pkg/errs"
	"circulation/internal/usecase/shared"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var (
	ErrReservationNotFound  = errs.New("reservation not found")
	ErrItemAvailable        = errs.New("item is available, borrow it instead")
	ErrAlreadyHoldingItem   = errs.New("patron already holds the item")
	ErrDuplicateReservation = errs.New("active reservation already exists")
	ErrReservationNotActive = errs.New("reservation is not active")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ReservationCommands interface {
	ReserveBook(ctx context.Context, patronID, itemID uuid.UUID) (*reservation.Reservation, error)
	CancelReservation(ctx context.Context, reservationID uuid.UUID) (*reservation.Reservation, error)
	PromoteNext(ctx context.Context, itemID uuid.UUID) error
	ExpirePickups(ctx context.Context, asOf time.Time) (*Report, error)
}

type reservationUseCaseImpl struct {
	uow     shared.UnitOfWork
	policy  policy.Policy
	scanner ExpiryScanner
	clock   clock.Clock
}

func NewReservationUseCase(
	uow shared.UnitOfWork,
	pol policy.Policy,
	scanner ExpiryScanner,
	clk clock.Clock,
) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:     uow,
		policy:  pol,
		scanner: scanner,
		clock:   clk,
	}
}

func (r *reservationUseCaseImpl) ReserveBook(ctx context.Context, patronID, itemID uuid.UUID) (*reservation.Reservation, error) {
	var created *reservation.Reservation
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Items().FindByIDForUpdate(ctx, itemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrItemNotFound)
			}
			return err
		}
		if item.Available {
			return ErrItemAvailable
		}
		if item.IsHeldBy(patronID) {
			return ErrAlreadyHoldingItem
		}

		_, err = tx.Reservations().FindActiveByPatronAndItemForUpdate(ctx, patronID, itemID)
		if err == nil {
			return ErrDuplicateReservation
		}
		if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		snap := reservation.ItemSnapshot{ID: item.ID, Title: item.Title, Author: item.Author}
		res := reservation.NewReservation(patronID, snap, r.clock.Now(), r.policy.QueueWindow)
		if err := tx.Reservations().Create(ctx, res); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrDuplicateReservation)
			}
			return err
		}

		created = res
		return nil
	})
	if err != nil {
		return nil, markTransient(err)
	}
	return created, nil
}

func (r *reservationUseCaseImpl) CancelReservation(ctx context.Context, reservationID uuid.UUID) (*reservation.Reservation, error) {
	var cancelled *reservation.Reservation
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrReservationNotFound)
			}
			return err
		}

		if err := res.Cancel(); err != nil {
			if errors.Is(err, reservation.ErrAlreadyCancelled) {
				cancelled = res
				return nil
			}
			return errs.Mark(err, ErrReservationNotActive)
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}

		cancelled = res
		return nil
	})
	if err != nil {
		return nil, markTransient(err)
	}
	return cancelled, nil
}

// PromoteNext advances the queue head after a return. It runs in its own
// transaction and no-ops when a walk-in borrow already claimed the item,
// when the queue is empty, or when the head already has a pickup window.
func (r *reservationUseCaseImpl) PromoteNext(ctx context.Context, itemID uuid.UUID) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return r.promoteInTx(ctx, tx, itemID)
	})
	return markTransient(err)
}

func (r *reservationUseCaseImpl) promoteInTx(ctx context.Context, tx shared.Tx, itemID uuid.UUID) error {
	item, err := tx.Items().FindByIDForUpdate(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if !item.Available {
		return nil
	}

	head, err := tx.Reservations().OldestActiveByItemForUpdate(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if head.IsPromoted() {
		return nil
	}

	now := r.clock.Now()
	if err := head.Promote(now, r.policy.PickupWindow); err != nil {
		return err
	}
	if err := tx.Reservations().Update(ctx, head); err != nil {
		return err
	}

	payload, err := json.Marshal(map[string]any{
		"reservation_id": head.ID(),
		"patron_id":      head.PatronID(),
		"item_id":        head.ItemID(),
		"item_title":     head.ItemTitle(),
		"expires_at":     head.ExpiresAt(),
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal pickup notification")
	}
	return tx.Notifications().CreateJob(ctx, "email", "reservation_ready", payload, now)
}

// ExpirePickups sweeps lapsed reservations. An expired head that held a
// pickup window hands the item to the next in line.
func (r *reservationUseCaseImpl) ExpirePickups(ctx context.Context, asOf time.Time) (*Report, error) {
	ids, err := r.scanner.LapsedActiveIDs(ctx, asOf)
	if err != nil {
		return nil, errs.Wrap(err, "failed to scan lapsed reservations")
	}

	report := &Report{}
	for _, id := range ids {
		processed, err := r.expireOne(ctx, id, asOf)
		if err != nil {
			report.Failed++
			slog.Error("reservation expiry failed", "reservation_id", id, "error", err)
			continue
		}
		if processed {
			report.Processed++
		} else {
			report.Skipped++
		}
	}
	return report, nil
}

func (r *reservationUseCaseImpl) expireOne(ctx context.Context, id uuid.UUID, asOf time.Time) (bool, error) {
	var processed bool
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		processed = false
		res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		// Re-verify under the lock: a concurrent borrow or cancel wins.
		if !res.IsActive() || !res.HasLapsedAt(asOf) {
			return nil
		}

		wasPromoted := res.IsPromoted()
		if err := res.Expire(); err != nil {
			return err
		}
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return err
		}

		processed = true
		if wasPromoted {
			return r.promoteInTx(ctx, tx, res.ItemID())
		}
		return nil
	})
	return processed, err
}
