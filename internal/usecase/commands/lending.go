package commands

import (
	"context"
	"errors"
	"log/slog"

	"circulation/internal/domain/borrow"
	"circulation/internal/domain/policy"
	"circulation/internal/infra"
	"circulation/internal/pkg/clock"
	"circulation/internal/pkg/errs"
	"circulation/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound        = errs.New("item not found")
	ErrBorrowNotFound      = errs.New("borrow not found")
	ErrItemUnavailable     = errs.New("item unavailable")
	ErrBorrowLimitExceeded = errs.New("borrow limit exceeded")
	ErrReservationPending  = errs.New("reservation pending for item")
	ErrRenewalLimitReached = errs.New("renewal limit reached")
	ErrInvalidDuration     = errs.New("invalid duration")
)

type LendingCommands interface {
	BorrowBook(ctx context.Context, patronID, itemID uuid.UUID, durationDays int) (*borrow.Borrow, error)
	ReturnBook(ctx context.Context, borrowID uuid.UUID) (*borrow.Borrow, error)
	RenewBorrow(ctx context.Context, borrowID uuid.UUID, extraDays int) (*borrow.Borrow, error)
}

type lendingUseCaseImpl struct {
	uow      shared.UnitOfWork
	policy   policy.Policy
	promoter Promoter
	clock    clock.Clock
}

// Promoter is the queue-advancement step invoked after a return commits.
type Promoter interface {
	PromoteNext(ctx context.Context, itemID uuid.UUID) error
}

func NewLendingUseCase(
	uow shared.UnitOfWork,
	pol policy.Policy,
	promoter Promoter,
	clk clock.Clock,
) LendingCommands {
	return &lendingUseCaseImpl{
		uow:      uow,
		policy:   pol,
		promoter: promoter,
		clock:    clk,
	}
}

func (l *lendingUseCaseImpl) BorrowBook(ctx context.Context, patronID, itemID uuid.UUID, durationDays int) (*borrow.Borrow, error) {
	if durationDays == 0 {
		durationDays = l.policy.DefaultLoanDays
	}
	if durationDays < 0 {
		return nil, ErrInvalidDuration
	}

	var created *borrow.Borrow
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		item, err := tx.Items().FindByIDForUpdate(ctx, itemID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrItemNotFound)
			}
			return err
		}
		if !item.Available {
			return ErrItemUnavailable
		}

		activeCount, err := tx.Patrons().ActiveCountForUpdate(ctx, patronID)
		if err != nil {
			return err
		}
		if !l.policy.CanBorrow(activeCount) {
			return ErrBorrowLimitExceeded
		}

		claimed, err := tx.Items().Claim(ctx, itemID, patronID)
		if err != nil {
			return err
		}
		if !claimed {
			// Lost the availability race between the lock and the claim.
			return ErrItemUnavailable
		}

		snap := borrow.ItemSnapshot{ID: item.ID, Title: item.Title, Author: item.Author}
		b, err := borrow.NewBorrow(patronID, snap, l.clock.Now(), durationDays)
		if err != nil {
			return errs.Mark(err, ErrInvalidDuration)
		}
		if err := tx.Borrows().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, ErrItemUnavailable)
			}
			return err
		}
		if err := tx.Patrons().IncrementActive(ctx, patronID); err != nil {
			return err
		}
		if err := l.fulfilReservation(ctx, tx, patronID, itemID); err != nil {
			return err
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, markTransient(err)
	}
	return created, nil
}

// fulfilReservation consumes the patron's own active reservation for the
// item, if one exists, as part of the borrow transaction.
func (l *lendingUseCaseImpl) fulfilReservation(ctx context.Context, tx shared.Tx, patronID, itemID uuid.UUID) error {
	res, err := tx.Reservations().FindActiveByPatronAndItemForUpdate(ctx, patronID, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if err := res.Fulfill(); err != nil {
		return err
	}
	return tx.Reservations().Update(ctx, res)
}

func (l *lendingUseCaseImpl) ReturnBook(ctx context.Context, borrowID uuid.UUID) (*borrow.Borrow, error) {
	var (
		returned    *borrow.Borrow
		needPromote bool
	)
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		needPromote = false
		b, err := tx.Borrows().FindByIDForUpdate(ctx, borrowID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBorrowNotFound)
			}
			return err
		}

		if err := b.Return(l.clock.Now()); err != nil {
			if errors.Is(err, borrow.ErrAlreadyReturned) {
				// Duplicate client retry: hand back the terminal state.
				returned = b
				return nil
			}
			return err
		}

		if err := tx.Borrows().Update(ctx, b); err != nil {
			return err
		}
		if err := tx.Items().Release(ctx, b.ItemID()); err != nil {
			return err
		}
		if err := tx.Patrons().DecrementActive(ctx, b.PatronID()); err != nil {
			return err
		}

		returned = b
		needPromote = true
		return nil
	})
	if err != nil {
		return nil, markTransient(err)
	}

	if needPromote {
		// Promotion runs in its own transaction; a failure here must not
		// undo a committed return.
		if err := l.promoter.PromoteNext(ctx, returned.ItemID()); err != nil {
			slog.Warn("queue promotion after return failed",
				"item_id", returned.ItemID(), "error", err)
		}
	}
	return returned, nil
}

func (l *lendingUseCaseImpl) RenewBorrow(ctx context.Context, borrowID uuid.UUID, extraDays int) (*borrow.Borrow, error) {
	if extraDays == 0 {
		extraDays = l.policy.DefaultRenewDays
	}
	if extraDays < 0 {
		return nil, ErrInvalidDuration
	}

	var renewed *borrow.Borrow
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Borrows().FindByIDForUpdate(ctx, borrowID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrBorrowNotFound)
			}
			return err
		}
		if b.Status() != borrow.StatusActive {
			return errs.Mark(borrow.ErrAlreadyReturned, ErrBorrowNotFound)
		}

		waiting, err := tx.Reservations().HasActiveByItem(ctx, b.ItemID())
		if err != nil {
			return err
		}
		if !l.policy.CanRenew(b.RenewalCount(), waiting) {
			if waiting {
				return ErrReservationPending
			}
			return ErrRenewalLimitReached
		}

		if err := b.Renew(extraDays); err != nil {
			return errs.Mark(err, ErrInvalidDuration)
		}
		if err := tx.Borrows().Update(ctx, b); err != nil {
			return err
		}

		renewed = b
		return nil
	})
	if err != nil {
		return nil, markTransient(err)
	}
	return renewed, nil
}
