//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/offer"
	"lease-engine/internal/domain/reservation"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/pkg/props"
	"lease-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("success: admin offers a free window", func(t *testing.T) {
		f := newFixture()
		id, err := f.offers.CreateOffer(ctx, f.offerReq(10, 20), ownerProject)
		require.NoError(t, err)

		stored := f.store.Offer(id)
		require.NotNil(t, stored)
		assert.Equal(t, offer.StatusAvailable, stored.Status())
		assert.Equal(t, ownerProject, stored.ProjectID())
		assert.True(t, stored.Slot().Start().Equal(*at(10)))
		assert.Equal(t, recorded{"offer", "create", "ok"}, f.rec.last())
	})

	t.Run("success: resource named instead of uuid", func(t *testing.T) {
		f := newFixture()
		req := f.offerReq(10, 20)
		req.ResourceID = "rack-a-01"
		id, err := f.offers.CreateOffer(ctx, req, ownerProject)
		require.NoError(t, err)
		assert.Equal(t, f.ref, f.store.Offer(id).Resource())
	})

	t.Run("success: touching windows do not conflict", func(t *testing.T) {
		f := newFixture()
		_, err := f.offers.CreateOffer(ctx, f.offerReq(10, 20), ownerProject)
		require.NoError(t, err)
		_, err = f.offers.CreateOffer(ctx, f.offerReq(20, 30), ownerProject)
		require.NoError(t, err)
		_, err = f.offers.CreateOffer(ctx, f.offerReq(0, 10), ownerProject)
		require.NoError(t, err)
	})

	t.Run("error: overlapping offer reports the occupant", func(t *testing.T) {
		f := newFixture()
		first, err := f.offers.CreateOffer(ctx, f.offerReq(10, 20), ownerProject)
		require.NoError(t, err)

		_, err = f.offers.CreateOffer(ctx, f.offerReq(15, 25), ownerProject)
		require.ErrorIs(t, err, errs.ErrResourceTimeConflict)

		var conflict *reservation.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, reservation.KindOffer, conflict.Occupant.Kind)
		assert.Equal(t, first, conflict.Occupant.ID)
		assert.Equal(t, f.ref, conflict.Resource)
		assert.Equal(t, recorded{"offer", "create", "conflict"}, f.rec.last())
	})

	t.Run("error: overlapping holding lease conflicts", func(t *testing.T) {
		f := newFixture()
		_, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
		require.NoError(t, err)

		_, err = f.offers.CreateOffer(ctx, f.offerReq(5, 12), ownerProject)
		var conflict *reservation.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, reservation.KindLease, conflict.Occupant.Kind)
	})

	t.Run("error: non admin is denied", func(t *testing.T) {
		f := newFixture()
		_, err := f.offers.CreateOffer(ctx, f.offerReq(10, 20), otherProject)
		assert.ErrorIs(t, err, errs.ErrNotResourceAdmin)
		assert.Equal(t, recorded{"offer", "create", "denied"}, f.rec.last())
	})

	t.Run("error: unknown resource", func(t *testing.T) {
		f := newFixture()
		req := f.offerReq(10, 20)
		req.ResourceID = "missing"
		_, err := f.offers.CreateOffer(ctx, req, ownerProject)
		assert.ErrorIs(t, err, errs.ErrResourceNotFound)
	})

	t.Run("error: end before start", func(t *testing.T) {
		f := newFixture()
		_, err := f.offers.CreateOffer(ctx, f.offerReq(20, 10), ownerProject)
		assert.ErrorIs(t, err, errs.ErrInvalidTimeRange)
		assert.Equal(t, recorded{"offer", "create", "invalid"}, f.rec.last())
	})

	t.Run("error: unknown lessee project", func(t *testing.T) {
		f := newFixture()
		req := f.offerReq(10, 20)
		lessee := "nobody"
		req.LesseeID = &lessee
		_, err := f.offers.CreateOffer(ctx, req, ownerProject)
		assert.ErrorIs(t, err, errs.ErrProjectNotFound)
	})
}

func TestClaimOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("success: claim carves a lease out of the offer", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		require.NoError(t, err)

		leaseID, err := f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{
			Name:      "mine",
			StartTime: at(10),
			EndTime:   at(20),
		}, lesseeProject)
		require.NoError(t, err)

		l := f.store.Lease(leaseID)
		require.NotNil(t, l)
		assert.Equal(t, lesseeProject, l.ProjectID())
		assert.Equal(t, ownerProject, l.OwnerID())
		require.NotNil(t, l.OfferID())
		assert.Equal(t, offerID, *l.OfferID())
		assert.Equal(t, lease.StatusCreated, l.Status())
		assert.Equal(t, offer.StatusAvailable, f.store.Offer(offerID).Status())
	})

	t.Run("success: open end stops at the next lease on the offer", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		require.NoError(t, err)
		_, err = f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(30), EndTime: at(40)}, lesseeProject)
		require.NoError(t, err)

		leaseID, err := f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(12)}, otherProject)
		require.NoError(t, err)
		slot := f.store.Lease(leaseID).Slot()
		assert.True(t, slot.Start().Equal(*at(12)))
		assert.True(t, slot.End().Equal(*at(30)))
	})

	t.Run("success: open end runs to the offer end", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		require.NoError(t, err)
		_, err = f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(10), EndTime: at(20)}, lesseeProject)
		require.NoError(t, err)

		leaseID, err := f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(20)}, otherProject)
		require.NoError(t, err)
		assert.True(t, f.store.Lease(leaseID).Slot().End().Equal(*at(50)))
	})

	t.Run("error: overlapping claim is unavailable", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		require.NoError(t, err)
		_, err = f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(10), EndTime: at(20)}, lesseeProject)
		require.NoError(t, err)

		_, err = f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(15), EndTime: at(25)}, otherProject)
		require.ErrorIs(t, err, errs.ErrOfferNoTimeAvailabilities)
		var unavailable *reservation.OfferUnavailableError
		require.True(t, errors.As(err, &unavailable))
		assert.Equal(t, offerID, unavailable.OfferID)
		assert.Equal(t, recorded{"offer", "claim", "unavailable"}, f.rec.last())
	})

	t.Run("error: window outside the offer is unavailable", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		require.NoError(t, err)
		_, err = f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(45), EndTime: at(55)}, lesseeProject)
		assert.ErrorIs(t, err, errs.ErrOfferNoTimeAvailabilities)
	})

	t.Run("error: open end inside an existing lease is unavailable", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		require.NoError(t, err)
		_, err = f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(10), EndTime: at(20)}, lesseeProject)
		require.NoError(t, err)

		_, err = f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(15)}, otherProject)
		require.ErrorIs(t, err, errs.ErrOfferNoTimeAvailabilities)
		var unavailable *reservation.OfferUnavailableError
		require.True(t, errors.As(err, &unavailable))
		assert.True(t, unavailable.Start.Equal(*at(15)), "error names the requested start, not the offer window")
		assert.True(t, unavailable.Window.IsZero())
	})

	t.Run("restricted offers follow the project hierarchy", func(t *testing.T) {
		f := newFixture()
		req := f.offerReq(10, 50)
		lessee := lesseeProject
		req.LesseeID = &lessee
		offerID, err := f.offers.CreateOffer(ctx, req, ownerProject)
		require.NoError(t, err)

		_, err = f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(10), EndTime: at(20)}, otherProject)
		assert.ErrorIs(t, err, errs.ErrOfferNotClaimable)

		_, err = f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(10), EndTime: at(20)}, childProject)
		assert.NoError(t, err)
	})

	t.Run("error: cancelled offer cannot be claimed", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		require.NoError(t, err)
		require.NoError(t, f.offers.CancelOffer(ctx, offerID, ownerProject))

		_, err = f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(10), EndTime: at(20)}, lesseeProject)
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})

	t.Run("error: unknown offer", func(t *testing.T) {
		f := newFixture()
		_, err := f.offers.ClaimOffer(ctx, uuid.New(), commands.ClaimOfferRequest{}, lesseeProject)
		assert.ErrorIs(t, err, errs.ErrOfferNotFound)
	})
}

func TestUpdateOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("success: widening keeps the carved leases", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		require.NoError(t, err)
		_, err = f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(10), EndTime: at(20)}, lesseeProject)
		require.NoError(t, err)

		name := "renamed"
		err = f.offers.UpdateOffer(ctx, offerID, commands.UpdateOfferRequest{Name: &name, EndTime: at(60)}, ownerProject)
		require.NoError(t, err)

		o := f.store.Offer(offerID)
		assert.Equal(t, "renamed", o.Name())
		assert.True(t, o.Slot().End().Equal(*at(60)))
	})

	t.Run("error: shrinking past a carved lease conflicts", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		require.NoError(t, err)
		leaseID, err := f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(30), EndTime: at(40)}, lesseeProject)
		require.NoError(t, err)

		err = f.offers.UpdateOffer(ctx, offerID, commands.UpdateOfferRequest{EndTime: at(35)}, ownerProject)
		var conflict *reservation.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, leaseID, conflict.Occupant.ID)
		assert.True(t, f.store.Offer(offerID).Slot().End().Equal(*at(50)), "failed update must leave the offer untouched")
	})

	t.Run("error: moving onto another offer conflicts", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 20), ownerProject)
		require.NoError(t, err)
		_, err = f.offers.CreateOffer(ctx, f.offerReq(30, 40), ownerProject)
		require.NoError(t, err)

		err = f.offers.UpdateOffer(ctx, offerID, commands.UpdateOfferRequest{EndTime: at(35)}, ownerProject)
		assert.ErrorIs(t, err, errs.ErrResourceTimeConflict)
	})

	t.Run("error: only the offering project may update", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 20), ownerProject)
		require.NoError(t, err)

		err = f.offers.UpdateOffer(ctx, offerID, commands.UpdateOfferRequest{EndTime: at(30)}, lesseeProject)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("error: invalid range", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 20), ownerProject)
		require.NoError(t, err)

		err = f.offers.UpdateOffer(ctx, offerID, commands.UpdateOfferRequest{EndTime: at(5)}, ownerProject)
		assert.ErrorIs(t, err, errs.ErrInvalidTimeRange)
	})

	t.Run("error: start moved past the current end", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 20), ownerProject)
		require.NoError(t, err)

		err = f.offers.UpdateOffer(ctx, offerID, commands.UpdateOfferRequest{StartTime: at(25)}, ownerProject)
		assert.ErrorIs(t, err, errs.ErrInvalidTimeRange)
		assert.True(t, f.store.Offer(offerID).Slot().Start().Equal(*at(10)))
	})

	t.Run("success: properties only leaves the window alone", func(t *testing.T) {
		f := newFixture()
		req := f.offerReq(10, 20)
		req.Properties = props.Properties{"cpu": "x86", "tier": "gold"}
		offerID, err := f.offers.CreateOffer(ctx, req, ownerProject)
		require.NoError(t, err)

		patch := commands.UpdateOfferRequest{Properties: props.Properties{"tier": nil, "floor": float64(3)}}
		require.NoError(t, f.offers.UpdateOffer(ctx, offerID, patch, ownerProject))

		stored := f.store.Offer(offerID)
		assert.True(t, stored.Slot().Start().Equal(*at(10)))
		assert.True(t, stored.Slot().End().Equal(*at(20)))
		assert.Equal(t, offer.StatusAvailable, stored.Status())
		assert.Equal(t, props.Properties{"cpu": "x86", "floor": float64(3)}, stored.Properties())
	})

	t.Run("error: a cancelled offer cannot be made available again", func(t *testing.T) {
		f := newFixture()
		first, err := f.offers.CreateOffer(ctx, f.offerReq(10, 20), ownerProject)
		require.NoError(t, err)
		require.NoError(t, f.offers.CancelOffer(ctx, first, ownerProject))
		_, err = f.offers.CreateOffer(ctx, f.offerReq(10, 20), ownerProject)
		require.NoError(t, err)

		available := offer.StatusAvailable
		err = f.offers.UpdateOffer(ctx, first, commands.UpdateOfferRequest{Status: &available}, ownerProject)
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
		assert.Equal(t, offer.StatusCancelled, f.store.Offer(first).Status())
	})

	t.Run("error: returning to available re-checks the window", func(t *testing.T) {
		f := newFixture()
		first, err := f.offers.CreateOffer(ctx, f.offerReq(10, 20), ownerProject)
		require.NoError(t, err)
		claimed := offer.StatusClaimed
		require.NoError(t, f.offers.UpdateOffer(ctx, first, commands.UpdateOfferRequest{Status: &claimed}, ownerProject))
		second, err := f.offers.CreateOffer(ctx, f.offerReq(15, 25), ownerProject)
		require.NoError(t, err)

		available := offer.StatusAvailable
		err = f.offers.UpdateOffer(ctx, first, commands.UpdateOfferRequest{Status: &available}, ownerProject)
		require.ErrorIs(t, err, errs.ErrResourceTimeConflict)
		var conflict *reservation.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, second, conflict.Occupant.ID)
		assert.Equal(t, offer.StatusClaimed, f.store.Offer(first).Status())
	})
}

func TestCancelAndDestroyOffer(t *testing.T) {
	ctx := context.Background()

	t.Run("cancel also cancels holding leases", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		require.NoError(t, err)
		leaseID, err := f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(10), EndTime: at(20)}, lesseeProject)
		require.NoError(t, err)

		require.NoError(t, f.offers.CancelOffer(ctx, offerID, ownerProject))
		assert.Equal(t, offer.StatusCancelled, f.store.Offer(offerID).Status())
		assert.Equal(t, lease.StatusCancelled, f.store.Lease(leaseID).Status())

		err = f.offers.CancelOffer(ctx, offerID, ownerProject)
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})

	t.Run("cancelled offer frees the window", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		require.NoError(t, err)
		require.NoError(t, f.offers.CancelOffer(ctx, offerID, ownerProject))

		_, err = f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		assert.NoError(t, err)
	})

	t.Run("destroy refuses while leases hold the offer", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		require.NoError(t, err)
		leaseID, err := f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(10), EndTime: at(20)}, lesseeProject)
		require.NoError(t, err)

		err = f.offers.DestroyOffer(ctx, offerID, ownerProject)
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)

		require.NoError(t, f.leases.CancelLease(ctx, leaseID, lesseeProject))
		require.NoError(t, f.offers.DestroyOffer(ctx, offerID, ownerProject))
		assert.Nil(t, f.store.Offer(offerID))
	})

	t.Run("destroy by another project is forbidden", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		require.NoError(t, err)

		assert.ErrorIs(t, f.offers.DestroyOffer(ctx, offerID, otherProject), errs.ErrForbidden)
		assert.ErrorIs(t, f.offers.DestroyOffer(ctx, uuid.New(), ownerProject), errs.ErrOfferNotFound)
	})
}
