//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"circulation/internal/domain/policy"
	"circulation/internal/usecase/commands"
	"circulation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverdue_ProcessOverdue(t *testing.T) {
	ctx := context.Background()
	asOf := time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC)

	newFixture := func() (*fakeUoW, *fakeOverdueScanner, commands.OverdueCommands) {
		uow := newFakeUoW()
		scanner := &fakeOverdueScanner{}
		uc := commands.NewOverdueUseCase(uow, policy.Default(), scanner)
		return uow, scanner, uc
	}

	t.Run("three days overdue charges three days of fines", func(t *testing.T) {
		uow, scanner, uc := newFixture()
		b := builder.NewBorrowBuilder().
			WithDueDate(asOf.AddDate(0, 0, -3)).
			BuildReconstructed()
		uow.tx.borrows.borrows[b.ID()] = b
		scanner.ids = []uuid.UUID{b.ID()}

		report, err := uc.ProcessOverdue(ctx, asOf)
		require.NoError(t, err)
		assert.Equal(t, 1, report.Processed)
		assert.Equal(t, 0, report.Skipped)
		assert.Equal(t, 0, report.Failed)
		assert.True(t, b.FineAmount().Equal(decimal.RequireFromString("1.50")), b.FineAmount().String())
	})

	t.Run("re-running the sweep recomputes, never accumulates", func(t *testing.T) {
		uow, scanner, uc := newFixture()
		b := builder.NewBorrowBuilder().
			WithDueDate(asOf.AddDate(0, 0, -3)).
			BuildReconstructed()
		uow.tx.borrows.borrows[b.ID()] = b
		scanner.ids = []uuid.UUID{b.ID()}

		_, err := uc.ProcessOverdue(ctx, asOf)
		require.NoError(t, err)
		report, err := uc.ProcessOverdue(ctx, asOf)
		require.NoError(t, err)

		assert.Equal(t, 1, report.Processed)
		assert.True(t, b.FineAmount().Equal(decimal.RequireFromString("1.50")), b.FineAmount().String())
	})

	t.Run("borrow returned mid-sweep is skipped", func(t *testing.T) {
		uow, scanner, uc := newFixture()
		b := builder.NewBorrowBuilder().
			WithDueDate(asOf.AddDate(0, 0, -3)).
			AsReturned(asOf).
			BuildReconstructed()
		uow.tx.borrows.borrows[b.ID()] = b
		scanner.ids = []uuid.UUID{b.ID()}

		report, err := uc.ProcessOverdue(ctx, asOf)
		require.NoError(t, err)
		assert.Equal(t, 0, report.Processed)
		assert.Equal(t, 1, report.Skipped)
		assert.True(t, b.FineAmount().IsZero())
	})

	t.Run("candidate deleted between scan and lock is skipped", func(t *testing.T) {
		_, scanner, uc := newFixture()
		scanner.ids = []uuid.UUID{uuid.New()}

		report, err := uc.ProcessOverdue(ctx, asOf)
		require.NoError(t, err)
		assert.Equal(t, 0, report.Processed)
		assert.Equal(t, 1, report.Skipped)
	})

	t.Run("scanner failure aborts the sweep", func(t *testing.T) {
		_, scanner, uc := newFixture()
		scanner.err = assert.AnError

		_, err := uc.ProcessOverdue(ctx, asOf)
		require.Error(t, err)
	})
}
