package commands

import (
	"context"

	"circulation/internal/infra"
	"circulation/internal/pkg/errs"
	"circulation/internal/usecase/shared"

	"github.com/google/uuid"
)

type SyncResult struct {
	BorrowsTouched      int64 `json:"borrows_touched"`
	ReservationsTouched int64 `json:"reservations_touched"`
}

type CatalogCommands interface {
	SyncItemMetadata(ctx context.Context, itemID uuid.UUID, title, author string) (*SyncResult, error)
}

type catalogUseCaseImpl struct {
	uow       shared.UnitOfWork
	reads     shared.CommandReads
	batchSize int
}

func NewCatalogUseCase(uow shared.UnitOfWork, reads shared.CommandReads, batchSize int) CatalogCommands {
	return &catalogUseCaseImpl{
		uow:       uow,
		reads:     reads,
		batchSize: batchSize,
	}
}

// SyncItemMetadata rewrites the item row, then fans the new title/author out
// to every borrow and reservation that still carries a stale snapshot. The
// fan-out runs in bounded batches, one transaction each, so a large history
// never holds a long-lived lock; a sweep that loses a record to a concurrent
// writer simply picks it up on the next batch.
func (c *catalogUseCaseImpl) SyncItemMetadata(ctx context.Context, itemID uuid.UUID, title, author string) (*SyncResult, error) {
	if _, err := c.reads.ItemByID(ctx, itemID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrItemNotFound)
		}
		return nil, err
	}

	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Items().UpdateMetadata(ctx, itemID, title, author)
		if err != nil {
			return err
		}
		if !found {
			return ErrItemNotFound
		}
		return nil
	})
	if err != nil {
		return nil, markTransient(err)
	}

	result := &SyncResult{}
	for {
		var n int64
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			n, err = tx.Borrows().SyncItemSnapshot(ctx, itemID, title, author, c.batchSize)
			return err
		})
		if err != nil {
			return nil, markTransient(err)
		}
		result.BorrowsTouched += n
		if n < int64(c.batchSize) {
			break
		}
	}
	for {
		var n int64
		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			n, err = tx.Reservations().SyncItemSnapshot(ctx, itemID, title, author, c.batchSize)
			return err
		})
		if err != nil {
			return nil, markTransient(err)
		}
		result.ReservationsTouched += n
		if n < int64(c.batchSize) {
			break
		}
	}
	return result, nil
}
