//go:build unit

package reservation_test

import (
	"errors"
	"testing"
	"time"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/reservation"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConflict(t *testing.T) {
	existing := reservation.Occupant{Kind: reservation.KindLease, ID: uuid.New(), Slot: window(t, 50, 60)}

	t.Run("overlapping candidate conflicts", func(t *testing.T) {
		got, found := reservation.FindConflict(window(t, 45, 55), []reservation.Occupant{existing}, uuid.Nil)
		require.True(t, found)
		assert.Equal(t, existing.ID, got.ID)
	})

	t.Run("touching candidate does not conflict", func(t *testing.T) {
		_, found := reservation.FindConflict(window(t, 30, 50), []reservation.Occupant{existing}, uuid.Nil)
		assert.False(t, found)
	})

	t.Run("excluded occupant is skipped", func(t *testing.T) {
		_, found := reservation.FindConflict(window(t, 45, 55), []reservation.Occupant{existing}, existing.ID)
		assert.False(t, found)
	})

	t.Run("first conflict in order is reported", func(t *testing.T) {
		other := reservation.Occupant{Kind: reservation.KindOffer, ID: uuid.New(), Slot: window(t, 40, 47)}
		got, found := reservation.FindConflict(window(t, 45, 55), []reservation.Occupant{other, existing}, uuid.Nil)
		require.True(t, found)
		assert.Equal(t, reservation.KindOffer, got.Kind)
	})
}

func TestCheckOfferWindow(t *testing.T) {
	offer := window(t, 0, 100)
	siblings := []reservation.Occupant{
		{Kind: reservation.KindLease, ID: uuid.New(), Slot: window(t, 10, 20)},
	}

	assert.True(t, reservation.CheckOfferWindow(offer, window(t, 20, 30), siblings, uuid.Nil))
	assert.False(t, reservation.CheckOfferWindow(offer, window(t, 15, 30), siblings, uuid.Nil))
	assert.False(t, reservation.CheckOfferWindow(offer, window(t, 90, 110), nil, uuid.Nil), "window leaving the offer")
	assert.True(t, reservation.CheckOfferWindow(offer, window(t, 15, 30), siblings, siblings[0].ID))
}

func TestFirstBoundary(t *testing.T) {
	occupied := []interval.Interval{window(t, 10, 20), window(t, 50, 60)}

	b, ok := reservation.FirstBoundary(occupied, at(25))
	require.True(t, ok)
	assert.Equal(t, at(50), b)

	b, ok = reservation.FirstBoundary(occupied, at(0))
	require.True(t, ok)
	assert.Equal(t, at(10), b)

	_, ok = reservation.FirstBoundary(occupied, at(61))
	assert.False(t, ok)

	// touching the end of a lease leaves the claim free until the next one
	b, ok = reservation.FirstBoundary(occupied, at(20))
	require.True(t, ok)
	assert.Equal(t, at(50), b)

	// starting inside a lease yields a boundary before start
	b, ok = reservation.FirstBoundary(occupied, at(15))
	require.True(t, ok)
	assert.Equal(t, at(10), b)
}

func TestErrorsMatchSentinels(t *testing.T) {
	ref := resource.Ref{Type: resource.TypeDummyNode, ID: "node-1"}
	conflict := reservation.NewConflictError(ref, window(t, 1, 2), reservation.Occupant{Kind: reservation.KindLease, ID: uuid.New()})
	assert.True(t, errors.Is(conflict, errs.ErrResourceTimeConflict))
	assert.False(t, errors.Is(conflict, errs.ErrOfferNoTimeAvailabilities))

	wrapped := errs.Wrap(conflict, "create lease")
	var target *reservation.ConflictError
	require.True(t, errors.As(wrapped, &target))
	assert.Equal(t, ref, target.Resource)

	unavailable := reservation.NewOfferUnavailableError(uuid.New(), window(t, 1, 2))
	assert.True(t, errors.Is(unavailable, errs.ErrOfferNoTimeAvailabilities))

	from := reservation.NewOfferUnavailableFrom(uuid.New(), time.Date(2030, 1, 1, 15, 0, 0, 0, time.UTC))
	assert.True(t, errors.Is(from, errs.ErrOfferNoTimeAvailabilities))
	assert.Contains(t, from.Error(), "from 2030-01-01T15:00:00Z")
}
