//go:build unit

package borrow_test

import (
	"testing"
	"time"

	"circulation/internal/domain/borrow"
	"circulation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BorrowBuilder)
	errIs  error
}

func TestNewBorrow(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		actual, err := builder.NewBorrowBuilder().WithBorrowedAt(now).BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, borrow.StatusActive, actual.Status())
		assert.Equal(t, now, actual.BorrowedAt())
		assert.Equal(t, now.AddDate(0, 0, 14), actual.DueDate())
		assert.Nil(t, actual.ReturnedAt())
		assert.True(t, actual.FineAmount().IsZero())
		assert.Equal(t, 0, actual.RenewalCount())
	})

	t.Run("duration validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "one day loan",
				mutate: func(b *builder.BorrowBuilder) { b.WithDurationDays(1) },
			},
			{
				name:   "zero duration",
				mutate: func(b *builder.BorrowBuilder) { b.WithDurationDays(0) },
				errIs:  borrow.ErrInvalidDuration,
			},
			{
				name:   "negative duration",
				mutate: func(b *builder.BorrowBuilder) { b.WithDurationDays(-7) },
				errIs:  borrow.ErrInvalidDuration,
			},
		})
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b1, err1 := builder.NewBorrowBuilder().BuildDomain()
		b2, err2 := builder.NewBorrowBuilder().BuildDomain()
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.NotEqual(t, b1.ID(), b2.ID())
	})
}

func TestBorrow_Return(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("active borrow returns cleanly", func(t *testing.T) {
		b, err := builder.NewBorrowBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Return(now))
		assert.Equal(t, borrow.StatusReturned, b.Status())
		require.NotNil(t, b.ReturnedAt())
		assert.Equal(t, now, *b.ReturnedAt())
	})

	t.Run("second return reports already returned", func(t *testing.T) {
		b, err := builder.NewBorrowBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Return(now))

		first := *b.ReturnedAt()
		err = b.Return(now.Add(time.Hour))
		require.ErrorIs(t, err, borrow.ErrAlreadyReturned)
		assert.Equal(t, first, *b.ReturnedAt(), "returned timestamp must not move")
	})
}

func TestBorrow_Renew(t *testing.T) {
	t.Run("extends due date and bumps counter", func(t *testing.T) {
		b, err := builder.NewBorrowBuilder().BuildDomain()
		require.NoError(t, err)
		due := b.DueDate()

		require.NoError(t, b.Renew(7))
		assert.Equal(t, due.AddDate(0, 0, 7), b.DueDate())
		assert.Equal(t, 1, b.RenewalCount())
	})

	t.Run("rejects non-positive extension", func(t *testing.T) {
		b, err := builder.NewBorrowBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, b.Renew(0), borrow.ErrInvalidDuration)
		require.ErrorIs(t, b.Renew(-1), borrow.ErrInvalidDuration)
		assert.Equal(t, 0, b.RenewalCount())
	})

	t.Run("rejects renewal of returned borrow", func(t *testing.T) {
		b, err := builder.NewBorrowBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, b.Return(time.Now()))

		require.ErrorIs(t, b.Renew(7), borrow.ErrAlreadyReturned)
	})
}

func TestBorrow_ApplyFine(t *testing.T) {
	t.Run("overwrites rather than accumulates", func(t *testing.T) {
		b, err := builder.NewBorrowBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.ApplyFine(decimal.RequireFromString("1.50")))
		require.NoError(t, b.ApplyFine(decimal.RequireFromString("1.50")))
		assert.True(t, b.FineAmount().Equal(decimal.RequireFromString("1.50")))
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		b, err := builder.NewBorrowBuilder().BuildDomain()
		require.NoError(t, err)

		require.ErrorIs(t, b.ApplyFine(decimal.RequireFromString("-0.01")), borrow.ErrNegativeFine)
	})
}

func TestBorrow_IsOverdueAt(t *testing.T) {
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("active and past due", func(t *testing.T) {
		b := builder.NewBorrowBuilder().WithDueDate(due).BuildReconstructed()
		assert.True(t, b.IsOverdueAt(due.Add(time.Minute)))
	})

	t.Run("exactly at due date is not overdue", func(t *testing.T) {
		b := builder.NewBorrowBuilder().WithDueDate(due).BuildReconstructed()
		assert.False(t, b.IsOverdueAt(due))
	})

	t.Run("returned borrow is never overdue", func(t *testing.T) {
		b := builder.NewBorrowBuilder().
			WithDueDate(due).
			AsReturned(due.AddDate(0, 0, 2)).
			BuildReconstructed()
		assert.False(t, b.IsOverdueAt(due.AddDate(0, 0, 5)))
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewBorrowBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
