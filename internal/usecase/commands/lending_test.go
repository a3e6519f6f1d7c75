//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domborrow "circulation/internal/domain/borrow"
	"circulation/internal/domain/policy"
	domreservation "circulation/internal/domain/reservation"
	"circulation/internal/infra"
	"circulation/internal/pkg/clock"
	"circulation/internal/usecase/commands"
	"circulation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)

func newLendingFixture() (*fakeUoW, *fakePromoter, commands.LendingCommands) {
	uow := newFakeUoW()
	promoter := &fakePromoter{}
	uc := commands.NewLendingUseCase(uow, policy.Default(), promoter, clock.NewMockClock(fixedNow))
	return uow, promoter, uc
}

func TestLending_BorrowBook(t *testing.T) {
	ctx := context.Background()
	patronID := uuid.New()

	t.Run("success claims the item and opens a ledger record", func(t *testing.T) {
		uow, _, uc := newLendingFixture()
		it := builder.NewItemBuilder().BuildDomain()
		uow.tx.items.put(it)

		b, err := uc.BorrowBook(ctx, patronID, it.ID, 0)
		require.NoError(t, err)
		require.NotNil(t, b)

		assert.Equal(t, patronID, b.PatronID())
		assert.Equal(t, it.Title, b.ItemTitle())
		assert.Equal(t, fixedNow, b.BorrowedAt())
		assert.Equal(t, fixedNow.AddDate(0, 0, 14), b.DueDate(), "zero duration falls back to the default loan period")

		assert.False(t, it.Available)
		require.NotNil(t, it.HeldBy)
		assert.Equal(t, patronID, *it.HeldBy)
		assert.Equal(t, 1, uow.tx.patrons.counts[patronID])
	})

	t.Run("explicit duration drives the due date", func(t *testing.T) {
		uow, _, uc := newLendingFixture()
		it := builder.NewItemBuilder().BuildDomain()
		uow.tx.items.put(it)

		b, err := uc.BorrowBook(ctx, patronID, it.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, fixedNow.AddDate(0, 0, 3), b.DueDate())
	})

	t.Run("negative duration is rejected up front", func(t *testing.T) {
		_, _, uc := newLendingFixture()
		_, err := uc.BorrowBook(ctx, patronID, uuid.New(), -1)
		require.ErrorIs(t, err, commands.ErrInvalidDuration)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, _, uc := newLendingFixture()
		_, err := uc.BorrowBook(ctx, patronID, uuid.New(), 0)
		require.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("held item is unavailable", func(t *testing.T) {
		uow, _, uc := newLendingFixture()
		it := builder.NewItemBuilder().AsHeldBy(uuid.New()).BuildDomain()
		uow.tx.items.put(it)

		_, err := uc.BorrowBook(ctx, patronID, it.ID, 0)
		require.ErrorIs(t, err, commands.ErrItemUnavailable)
	})

	t.Run("borrow limit blocks a sixth loan", func(t *testing.T) {
		uow, _, uc := newLendingFixture()
		it := builder.NewItemBuilder().BuildDomain()
		uow.tx.items.put(it)
		uow.tx.patrons.counts[patronID] = 5

		_, err := uc.BorrowBook(ctx, patronID, it.ID, 0)
		require.ErrorIs(t, err, commands.ErrBorrowLimitExceeded)
		assert.True(t, it.Available, "denied borrow must not claim the item")
	})

	t.Run("duplicate active record maps to unavailable", func(t *testing.T) {
		uow, _, uc := newLendingFixture()
		it := builder.NewItemBuilder().BuildDomain()
		uow.tx.items.put(it)
		uow.tx.borrows.createErr = infra.WrapRepoErr("duplicate", nil, infra.KindDuplicateKey)

		_, err := uc.BorrowBook(ctx, patronID, it.ID, 0)
		require.ErrorIs(t, err, commands.ErrItemUnavailable)
	})

	t.Run("borrow fulfils the patron's own reservation", func(t *testing.T) {
		uow, _, uc := newLendingFixture()
		it := builder.NewItemBuilder().BuildDomain()
		uow.tx.items.put(it)
		res := builder.NewReservationBuilder().
			WithPatronID(patronID).
			WithItemID(it.ID).
			BuildDomain()
		uow.tx.reservations.put(res)

		_, err := uc.BorrowBook(ctx, patronID, it.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, domreservation.StatusFulfilled, res.Status())
	})

	t.Run("someone else's reservation is left alone", func(t *testing.T) {
		uow, _, uc := newLendingFixture()
		it := builder.NewItemBuilder().BuildDomain()
		uow.tx.items.put(it)
		res := builder.NewReservationBuilder().WithItemID(it.ID).BuildDomain()
		uow.tx.reservations.put(res)

		_, err := uc.BorrowBook(ctx, patronID, it.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, domreservation.StatusActive, res.Status())
	})
}

func TestLending_ReturnBook(t *testing.T) {
	ctx := context.Background()
	patronID := uuid.New()

	seedActiveLoan := func(uow *fakeUoW) *domborrow.Borrow {
		it := builder.NewItemBuilder().AsHeldBy(patronID).BuildDomain()
		uow.tx.items.put(it)
		b := builder.NewBorrowBuilder().
			WithPatronID(patronID).
			WithItemID(it.ID).
			BuildReconstructed()
		uow.tx.borrows.borrows[b.ID()] = b
		uow.tx.patrons.counts[patronID] = 1
		return b
	}

	t.Run("success releases the item and triggers promotion", func(t *testing.T) {
		uow, promoter, uc := newLendingFixture()
		b := seedActiveLoan(uow)

		returned, err := uc.ReturnBook(ctx, b.ID())
		require.NoError(t, err)

		assert.Equal(t, domborrow.StatusReturned, returned.Status())
		require.NotNil(t, returned.ReturnedAt())
		assert.Equal(t, fixedNow, *returned.ReturnedAt())

		it := uow.tx.items.items[b.ItemID()]
		assert.True(t, it.Available)
		assert.Nil(t, it.HeldBy)
		assert.Equal(t, 0, uow.tx.patrons.counts[patronID])

		require.Len(t, promoter.calls, 1)
		assert.Equal(t, b.ItemID(), promoter.calls[0])
	})

	t.Run("second return is a no-op success", func(t *testing.T) {
		uow, promoter, uc := newLendingFixture()
		b := seedActiveLoan(uow)

		_, err := uc.ReturnBook(ctx, b.ID())
		require.NoError(t, err)

		again, err := uc.ReturnBook(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, domborrow.StatusReturned, again.Status())
		assert.Len(t, promoter.calls, 1, "duplicate return must not promote again")
	})

	t.Run("promotion failure does not fail the return", func(t *testing.T) {
		uow, promoter, uc := newLendingFixture()
		promoter.err = assert.AnError
		b := seedActiveLoan(uow)

		returned, err := uc.ReturnBook(ctx, b.ID())
		require.NoError(t, err)
		assert.Equal(t, domborrow.StatusReturned, returned.Status())
	})

	t.Run("unknown borrow", func(t *testing.T) {
		_, _, uc := newLendingFixture()
		_, err := uc.ReturnBook(ctx, uuid.New())
		require.ErrorIs(t, err, commands.ErrBorrowNotFound)
	})
}

func TestLending_RenewBorrow(t *testing.T) {
	ctx := context.Background()
	patronID := uuid.New()

	seedLoan := func(uow *fakeUoW, mutate func(*builder.BorrowBuilder)) *domborrow.Borrow {
		bb := builder.NewBorrowBuilder().WithPatronID(patronID)
		if mutate != nil {
			mutate(bb)
		}
		b := bb.BuildReconstructed()
		uow.tx.borrows.borrows[b.ID()] = b
		return b
	}

	t.Run("success extends the due date", func(t *testing.T) {
		uow, _, uc := newLendingFixture()
		b := seedLoan(uow, nil)
		due := b.DueDate()

		renewed, err := uc.RenewBorrow(ctx, b.ID(), 0)
		require.NoError(t, err)
		assert.Equal(t, due.AddDate(0, 0, 14), renewed.DueDate(), "zero extension falls back to the default")
		assert.Equal(t, 1, renewed.RenewalCount())
	})

	t.Run("waiting reservation blocks renewal", func(t *testing.T) {
		uow, _, uc := newLendingFixture()
		b := seedLoan(uow, nil)
		res := builder.NewReservationBuilder().WithItemID(b.ItemID()).BuildDomain()
		uow.tx.reservations.put(res)

		_, err := uc.RenewBorrow(ctx, b.ID(), 7)
		require.ErrorIs(t, err, commands.ErrReservationPending)
	})

	t.Run("renewal cap", func(t *testing.T) {
		uow, _, uc := newLendingFixture()
		b := seedLoan(uow, func(bb *builder.BorrowBuilder) { bb.WithRenewalCount(2) })

		_, err := uc.RenewBorrow(ctx, b.ID(), 7)
		require.ErrorIs(t, err, commands.ErrRenewalLimitReached)
	})

	t.Run("returned borrow cannot renew", func(t *testing.T) {
		uow, _, uc := newLendingFixture()
		b := seedLoan(uow, func(bb *builder.BorrowBuilder) { bb.AsReturned(fixedNow) })

		_, err := uc.RenewBorrow(ctx, b.ID(), 7)
		require.ErrorIs(t, err, commands.ErrBorrowNotFound)
	})

	t.Run("negative extension", func(t *testing.T) {
		_, _, uc := newLendingFixture()
		_, err := uc.RenewBorrow(ctx, uuid.New(), -3)
		require.ErrorIs(t, err, commands.ErrInvalidDuration)
	})
}
