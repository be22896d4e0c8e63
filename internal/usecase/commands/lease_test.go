//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/reservation"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/pkg/props"
	"lease-engine/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestCreateLease(t *testing.T) {
	ctx := context.Background()

	t.Run("success: admin grants a direct lease", func(t *testing.T) {
		f := newFixture()
		id, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
		require.NoError(t, err)

		l := f.store.Lease(id)
		require.NotNil(t, l)
		assert.Equal(t, lesseeProject, l.ProjectID())
		assert.Equal(t, ownerProject, l.OwnerID())
		assert.Nil(t, l.OfferID())
		assert.Equal(t, lease.StatusCreated, l.Status())
	})

	t.Run("error: overlapping lease conflicts", func(t *testing.T) {
		f := newFixture()
		first, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
		require.NoError(t, err)

		_, err = f.leases.CreateLease(ctx, f.leaseReq(otherProject, 19, 30), ownerProject)
		var conflict *reservation.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, first, conflict.Occupant.ID)
		assert.Equal(t, reservation.KindLease, conflict.Occupant.Kind)
	})

	t.Run("cancelled lease no longer blocks", func(t *testing.T) {
		f := newFixture()
		first, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
		require.NoError(t, err)
		require.NoError(t, f.leases.CancelLease(ctx, first, lesseeProject))

		_, err = f.leases.CreateLease(ctx, f.leaseReq(otherProject, 10, 20), ownerProject)
		assert.NoError(t, err)
	})

	t.Run("error: lessee cannot grant itself a lease", func(t *testing.T) {
		f := newFixture()
		_, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), lesseeProject)
		assert.ErrorIs(t, err, errs.ErrNotResourceAdmin)
	})

	t.Run("error: unknown lessee project", func(t *testing.T) {
		f := newFixture()
		_, err := f.leases.CreateLease(ctx, f.leaseReq("nobody", 10, 20), ownerProject)
		assert.ErrorIs(t, err, errs.ErrProjectNotFound)
	})
}

func TestCreateLease_ConcurrentRequestsHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	const contenders = 16
	var won, lost atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < contenders; i++ {
		g.Go(func() error {
			_, err := f.leases.CreateLease(gctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
			switch {
			case err == nil:
				won.Add(1)
			case errs.Is(err, errs.ErrResourceTimeConflict):
				lost.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, int32(1), won.Load())
	assert.Equal(t, int32(contenders-1), lost.Load())
	assert.Len(t, f.store.Leases(), 1)
}

func TestClaimOffer_ConcurrentClaimsHaveOneWinner(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	offerID, err := f.offers.CreateOffer(ctx, f.offerReq(0, 100), ownerProject)
	require.NoError(t, err)

	const contenders = 16
	var won atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < contenders; i++ {
		g.Go(func() error {
			_, err := f.offers.ClaimOffer(gctx, offerID, commands.ClaimOfferRequest{StartTime: at(40), EndTime: at(60)}, lesseeProject)
			if err == nil {
				won.Add(1)
				return nil
			}
			if errs.Is(err, errs.ErrOfferNoTimeAvailabilities) {
				return nil
			}
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), won.Load())
}

func TestUpdateLease(t *testing.T) {
	ctx := context.Background()

	t.Run("success: owner extends a direct lease", func(t *testing.T) {
		f := newFixture()
		id, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
		require.NoError(t, err)

		require.NoError(t, f.leases.UpdateLease(ctx, id, commands.UpdateLeaseRequest{EndTime: at(30)}, ownerProject))
		assert.True(t, f.store.Lease(id).Slot().End().Equal(*at(30)))
	})

	t.Run("error: lessee may not update", func(t *testing.T) {
		f := newFixture()
		id, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
		require.NoError(t, err)

		err = f.leases.UpdateLease(ctx, id, commands.UpdateLeaseRequest{EndTime: at(30)}, lesseeProject)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("error: extending into a neighbour conflicts", func(t *testing.T) {
		f := newFixture()
		id, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
		require.NoError(t, err)
		_, err = f.leases.CreateLease(ctx, f.leaseReq(otherProject, 25, 35), ownerProject)
		require.NoError(t, err)

		err = f.leases.UpdateLease(ctx, id, commands.UpdateLeaseRequest{EndTime: at(30)}, ownerProject)
		assert.ErrorIs(t, err, errs.ErrResourceTimeConflict)
		assert.True(t, f.store.Lease(id).Slot().End().Equal(*at(20)))
	})

	t.Run("error: claimed lease must stay inside its offer", func(t *testing.T) {
		f := newFixture()
		offerID, err := f.offers.CreateOffer(ctx, f.offerReq(10, 50), ownerProject)
		require.NoError(t, err)
		id, err := f.offers.ClaimOffer(ctx, offerID, commands.ClaimOfferRequest{StartTime: at(10), EndTime: at(20)}, lesseeProject)
		require.NoError(t, err)

		err = f.leases.UpdateLease(ctx, id, commands.UpdateLeaseRequest{EndTime: at(60)}, ownerProject)
		assert.ErrorIs(t, err, errs.ErrOfferNoTimeAvailabilities)

		require.NoError(t, f.leases.UpdateLease(ctx, id, commands.UpdateLeaseRequest{EndTime: at(40)}, ownerProject))
	})

	t.Run("error: unknown status", func(t *testing.T) {
		f := newFixture()
		id, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
		require.NoError(t, err)

		status := lease.Status("bogus")
		err = f.leases.UpdateLease(ctx, id, commands.UpdateLeaseRequest{Status: &status}, ownerProject)
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
	})

	t.Run("error: start moved past the current end", func(t *testing.T) {
		f := newFixture()
		id, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
		require.NoError(t, err)

		err = f.leases.UpdateLease(ctx, id, commands.UpdateLeaseRequest{StartTime: at(20)}, ownerProject)
		assert.ErrorIs(t, err, errs.ErrInvalidTimeRange)
	})

	t.Run("success: properties only leaves the window alone", func(t *testing.T) {
		f := newFixture()
		req := f.leaseReq(lesseeProject, 10, 20)
		req.Properties = props.Properties{"image": "ubuntu"}
		id, err := f.leases.CreateLease(ctx, req, ownerProject)
		require.NoError(t, err)

		patch := commands.UpdateLeaseRequest{Properties: props.Properties{"image": "debian"}}
		require.NoError(t, f.leases.UpdateLease(ctx, id, patch, ownerProject))

		stored := f.store.Lease(id)
		assert.True(t, stored.Slot().Start().Equal(*at(10)))
		assert.True(t, stored.Slot().End().Equal(*at(20)))
		assert.Equal(t, props.Properties{"image": "debian"}, stored.Properties())
	})

	t.Run("error: a cancelled lease cannot be reactivated", func(t *testing.T) {
		f := newFixture()
		first, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
		require.NoError(t, err)
		require.NoError(t, f.leases.CancelLease(ctx, first, ownerProject))
		_, err = f.leases.CreateLease(ctx, f.leaseReq(otherProject, 10, 20), ownerProject)
		require.NoError(t, err)

		active := lease.StatusActive
		err = f.leases.UpdateLease(ctx, first, commands.UpdateLeaseRequest{Status: &active}, ownerProject)
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
		assert.Equal(t, lease.StatusCancelled, f.store.Lease(first).Status())
	})

	t.Run("error: leaving the error status re-checks the window", func(t *testing.T) {
		f := newFixture()
		first, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
		require.NoError(t, err)
		failed := lease.StatusError
		require.NoError(t, f.leases.UpdateLease(ctx, first, commands.UpdateLeaseRequest{Status: &failed}, ownerProject))
		_, err = f.leases.CreateLease(ctx, f.leaseReq(otherProject, 12, 18), ownerProject)
		require.NoError(t, err)

		active := lease.StatusActive
		err = f.leases.UpdateLease(ctx, first, commands.UpdateLeaseRequest{Status: &active}, ownerProject)
		assert.ErrorIs(t, err, errs.ErrResourceTimeConflict)
		assert.Equal(t, lease.StatusError, f.store.Lease(first).Status())
	})
}

func TestCancelAndDestroyLease(t *testing.T) {
	ctx := context.Background()

	t.Run("both parties may cancel, but only once", func(t *testing.T) {
		f := newFixture()
		id, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
		require.NoError(t, err)

		require.NoError(t, f.leases.CancelLease(ctx, id, ownerProject))
		assert.Equal(t, lease.StatusCancelled, f.store.Lease(id).Status())

		err = f.leases.CancelLease(ctx, id, lesseeProject)
		assert.ErrorIs(t, err, errs.ErrInvalidStatus)
		assert.Equal(t, recorded{"lease", "cancel", "invalid"}, f.rec.last())
	})

	t.Run("outsiders are forbidden", func(t *testing.T) {
		f := newFixture()
		id, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
		require.NoError(t, err)

		assert.ErrorIs(t, f.leases.CancelLease(ctx, id, otherProject), errs.ErrForbidden)
		assert.ErrorIs(t, f.leases.DestroyLease(ctx, id, otherProject), errs.ErrForbidden)
	})

	t.Run("destroy removes the row", func(t *testing.T) {
		f := newFixture()
		id, err := f.leases.CreateLease(ctx, f.leaseReq(lesseeProject, 10, 20), ownerProject)
		require.NoError(t, err)

		require.NoError(t, f.leases.DestroyLease(ctx, id, lesseeProject))
		assert.Nil(t, f.store.Lease(id))
		assert.ErrorIs(t, f.leases.DestroyLease(ctx, id, lesseeProject), errs.ErrLeaseNotFound)
		assert.ErrorIs(t, f.leases.CancelLease(ctx, uuid.New(), lesseeProject), errs.ErrLeaseNotFound)
	})
}
