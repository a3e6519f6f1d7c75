//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"circulation/internal/domain/reservation"
	"circulation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	reservedAt := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	r := builder.NewReservationBuilder().WithReservedAt(reservedAt).BuildDomain()
	require.NotNil(t, r)

	assert.NotEqual(t, uuid.Nil, r.ID())
	assert.Equal(t, reservation.StatusActive, r.Status())
	assert.Equal(t, reservedAt, r.ReservedAt())
	assert.Equal(t, reservedAt.Add(720*time.Hour), r.ExpiresAt())
	assert.Nil(t, r.PromotedAt())
	assert.True(t, r.IsActive())
	assert.False(t, r.IsPromoted())
}

func TestReservation_Promote(t *testing.T) {
	now := time.Date(2026, 4, 5, 15, 0, 0, 0, time.UTC)

	t.Run("narrows expiry to pickup window", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()

		require.NoError(t, r.Promote(now, 48*time.Hour))
		assert.True(t, r.IsActive(), "promotion keeps the reservation active")
		assert.True(t, r.IsPromoted())
		require.NotNil(t, r.PromotedAt())
		assert.Equal(t, now, *r.PromotedAt())
		assert.Equal(t, now.Add(48*time.Hour), r.ExpiresAt())
	})

	t.Run("rejects promotion of cancelled reservation", func(t *testing.T) {
		r := builder.NewReservationBuilder().AsCancelled().BuildReconstructed()
		require.ErrorIs(t, r.Promote(now, 48*time.Hour), reservation.ErrNotActive)
	})
}

func TestReservation_Fulfill(t *testing.T) {
	t.Run("active reservation fulfills", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, r.Fulfill())
		assert.Equal(t, reservation.StatusFulfilled, r.Status())
	})

	t.Run("terminal states refuse fulfillment", func(t *testing.T) {
		for _, status := range []string{"fulfilled", "cancelled", "expired"} {
			r := builder.NewReservationBuilder().WithStatus(status).BuildReconstructed()
			require.ErrorIs(t, r.Fulfill(), reservation.ErrNotActive, status)
		}
	})
}

func TestReservation_Cancel(t *testing.T) {
	t.Run("active reservation cancels", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, r.Cancel())
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("cancel twice reports already cancelled", func(t *testing.T) {
		r := builder.NewReservationBuilder().BuildDomain()
		require.NoError(t, r.Cancel())
		require.ErrorIs(t, r.Cancel(), reservation.ErrAlreadyCancelled)
	})

	t.Run("fulfilled reservation cannot cancel", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus("fulfilled").BuildReconstructed()
		require.ErrorIs(t, r.Cancel(), reservation.ErrNotActive)
	})
}

func TestReservation_Expire(t *testing.T) {
	r := builder.NewReservationBuilder().BuildDomain()
	require.NoError(t, r.Expire())
	assert.Equal(t, reservation.StatusExpired, r.Status())

	require.ErrorIs(t, r.Expire(), reservation.ErrNotActive)
}

func TestReservation_HasLapsedAt(t *testing.T) {
	reservedAt := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	expiresAt := reservedAt.Add(720 * time.Hour)

	t.Run("active past expiry", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithReservedAt(reservedAt).BuildDomain()
		assert.False(t, r.HasLapsedAt(expiresAt))
		assert.True(t, r.HasLapsedAt(expiresAt.Add(time.Second)))
	})

	t.Run("cancelled reservation never lapses", func(t *testing.T) {
		r := builder.NewReservationBuilder().AsCancelled().AsLapsed().BuildReconstructed()
		assert.False(t, r.HasLapsedAt(time.Now().Add(time.Hour)))
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, reservation.StatusActive.IsTerminal())
	assert.True(t, reservation.StatusFulfilled.IsTerminal())
	assert.True(t, reservation.StatusCancelled.IsTerminal())
	assert.True(t, reservation.StatusExpired.IsTerminal())
}
