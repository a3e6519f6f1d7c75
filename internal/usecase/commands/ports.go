package commands

import (
	"context"
	"errors"
	"time"

	"circulation/internal/infra/uow"
	"circulation/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTransientConflict surfaces when the optimistic retry budget is spent.
// Safe for the caller to retry at a higher level.
var ErrTransientConflict = errs.New("transient conflict, retry")

// OverdueScanner feeds the fine sweep its candidate borrow ids.
type OverdueScanner interface {
	OverdueCandidateIDs(ctx context.Context, asOf time.Time) ([]uuid.UUID, error)
}

// ExpiryScanner feeds the reservation sweep the active reservations whose
// window has lapsed.
type ExpiryScanner interface {
	LapsedActiveIDs(ctx context.Context, asOf time.Time) ([]uuid.UUID, error)
}

func markTransient(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, uow.ErrMaxRetriesExceeded) {
		return errs.Mark(err, ErrTransientConflict)
	}
	return err
}
