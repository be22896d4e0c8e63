package commands

import (
	"context"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/offer"
	"lease-engine/internal/domain/ownerchange"
	"lease-engine/internal/domain/reservation"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckOptions struct {
	// OwnerChange adds pending owner changes to the populations checked.
	OwnerChange bool
	// Exclude skips the reservation being updated.
	Exclude uuid.UUID
	// OwnLeasesOf skips leases carved out of this offer.
	OwnLeasesOf uuid.UUID
}

// CheckResource reports the first reservation on ref that overlaps window as
// a *reservation.ConflictError. Callers must hold the resource lock.
func CheckResource(ctx context.Context, tx shared.Tx, ref resource.Ref, window interval.Interval, opts CheckOptions) error {
	offers, err := tx.Offers().List(ctx, shared.OfferFilter{
		Resource:    &ref,
		Statuses:    []offer.Status{offer.StatusAvailable},
		Overlapping: &window,
	})
	if err != nil {
		return err
	}
	leases, err := tx.Leases().List(ctx, shared.LeaseFilter{
		Resource:    &ref,
		Statuses:    lease.HoldingStatuses,
		Overlapping: &window,
	})
	if err != nil {
		return err
	}

	occupants := make([]reservation.Occupant, 0, len(offers)+len(leases))
	for _, o := range offers {
		occupants = append(occupants, reservation.Occupant{Kind: reservation.KindOffer, ID: o.ID(), Slot: o.Slot()})
	}
	for _, l := range leases {
		if opts.OwnLeasesOf != uuid.Nil && l.OfferID() != nil && *l.OfferID() == opts.OwnLeasesOf {
			continue
		}
		occupants = append(occupants, reservation.Occupant{Kind: reservation.KindLease, ID: l.ID(), Slot: l.Slot()})
	}

	if opts.OwnerChange {
		changes, err := tx.OwnerChanges().List(ctx, shared.OwnerChangeFilter{
			Resource:    &ref,
			Statuses:    ownerchange.PendingStatuses,
			Overlapping: &window,
		})
		if err != nil {
			return err
		}
		for _, c := range changes {
			occupants = append(occupants, reservation.Occupant{Kind: reservation.KindOwnerChange, ID: c.ID(), Slot: c.Slot()})
		}
	}

	if occupant, found := reservation.FindConflict(window, occupants, opts.Exclude); found {
		return reservation.NewConflictError(ref, window, occupant)
	}
	return nil
}

// CheckOffer verifies window fits inside o and misses every lease already
// carved out of it.
func CheckOffer(ctx context.Context, tx shared.Tx, o *offer.Offer, window interval.Interval, exclude uuid.UUID) error {
	offerID := o.ID()
	siblings, err := tx.Leases().List(ctx, shared.LeaseFilter{
		OfferID:  &offerID,
		Statuses: lease.HoldingStatuses,
	})
	if err != nil {
		return err
	}
	if !reservation.CheckOfferWindow(o.Slot(), window, leaseOccupants(siblings), exclude) {
		return reservation.NewOfferUnavailableError(o.ID(), window)
	}
	return nil
}

// CheckAdmin fails with ErrNotResourceAdmin unless projectID administers res
// for the whole window.
func CheckAdmin(ctx context.Context, tx shared.Tx, res *resource.Resource, window interval.Interval, projectID string) error {
	return checkAdminExcluding(ctx, tx, res, window, projectID, uuid.Nil)
}

// checkAdminExcluding ignores the owner change exclude, so a change being
// moved is not judged against its own previous window.
func checkAdminExcluding(ctx context.Context, tx shared.Tx, res *resource.Resource, window interval.Interval, projectID string, exclude uuid.UUID) error {
	ok, err := isResourceAdmin(ctx, tx, res, window, projectID, exclude)
	if err != nil {
		return err
	}
	if !ok {
		return errs.Wrapf(errs.ErrNotResourceAdmin, "project %s on %s during %s", projectID, res.Ref(), window)
	}
	return nil
}

func isResourceAdmin(ctx context.Context, tx shared.Tx, res *resource.Resource, window interval.Interval, projectID string, exclude uuid.UUID) (bool, error) {
	ref := res.Ref()
	changes, err := tx.OwnerChanges().List(ctx, shared.OwnerChangeFilter{
		Resource: &ref,
		Statuses: ownerchange.PendingStatuses,
	})
	if err != nil {
		return false, err
	}
	transfers := make([]reservation.Transfer, 0, len(changes))
	for _, c := range changes {
		if c.ID() == exclude {
			continue
		}
		transfers = append(transfers, c.Transfer())
	}
	return reservation.IsAdmin(window, transfers, res.OwnerProjectID(), projectID), nil
}

func leaseOccupants(leases []*lease.Lease) []reservation.Occupant {
	out := make([]reservation.Occupant, len(leases))
	for i, l := range leases {
		out[i] = reservation.Occupant{Kind: reservation.KindLease, ID: l.ID(), Slot: l.Slot()}
	}
	return out
}
