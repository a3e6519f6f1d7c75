package commands

import (
	"context"
	"log/slog"
	"time"

	"circulation/internal/domain/policy"
	"circulation/internal/infra"
	"circulation/internal/pkg/errs"
	"circulation/internal/usecase/shared"

	"github.com/google/uuid"
)

// Report summarizes one sweep run. Failed records are logged and skipped,
// never fatal to the sweep.
type Report struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

type OverdueCommands interface {
	ProcessOverdue(ctx context.Context, asOf time.Time) (*Report, error)
}

type overdueUseCaseImpl struct {
	uow     shared.UnitOfWork
	policy  policy.Policy
	scanner OverdueScanner
}

func NewOverdueUseCase(uow shared.UnitOfWork, pol policy.Policy, scanner OverdueScanner) OverdueCommands {
	return &overdueUseCaseImpl{
		uow:     uow,
		policy:  pol,
		scanner: scanner,
	}
}

// ProcessOverdue recomputes fines for every active borrow past due as of the
// given instant. The candidate scan runs outside any transaction; each
// record is then re-verified and written in its own transaction, so a borrow
// returned mid-sweep is skipped rather than fined.
func (o *overdueUseCaseImpl) ProcessOverdue(ctx context.Context, asOf time.Time) (*Report, error) {
	ids, err := o.scanner.OverdueCandidateIDs(ctx, asOf)
	if err != nil {
		return nil, errs.Wrap(err, "failed to scan overdue candidates")
	}

	report := &Report{}
	for _, id := range ids {
		processed, err := o.fineOne(ctx, id, asOf)
		if err != nil {
			report.Failed++
			slog.Error("fine recomputation failed", "borrow_id", id, "error", err)
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

func (o *overdueUseCaseImpl) fineOne(ctx context.Context, id uuid.UUID, asOf time.Time) (bool, error) {
	var processed bool
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		processed = false
		b, err := tx.Borrows().FindByIDForUpdate(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return err
		}
		// Re-verify under the lock: a concurrent return ends liability.
		if !b.IsActive() || !b.IsOverdueAt(asOf) {
			return nil
		}

		fine := o.policy.FineFor(b.DueDate(), asOf)
		if err := b.ApplyFine(fine); err != nil {
			return err
		}
		if err := tx.Borrows().Update(ctx, b); err != nil {
			return err
		}

		processed = true
		return nil
	})
	return processed, err
}
