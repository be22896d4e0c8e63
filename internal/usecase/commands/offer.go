package commands

import (
	"context"
	"log/slog"
	"time"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/offer"
	"lease-engine/internal/domain/reservation"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/pkg/clock"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/pkg/props"
	"lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateOfferRequest struct {
	Name         string
	ResourceType string
	ResourceID   string
	LesseeID     *string
	StartTime    *time.Time
	EndTime      *time.Time
	Properties   props.Properties
}

type UpdateOfferRequest struct {
	Name       *string
	StartTime  *time.Time
	EndTime    *time.Time
	Status     *offer.Status
	Properties props.Properties
}

type ClaimOfferRequest struct {
	Name       string
	StartTime  *time.Time
	EndTime    *time.Time
	Properties props.Properties
}

type OfferCommands interface {
	CreateOffer(ctx context.Context, req CreateOfferRequest, projectID string) (uuid.UUID, error)
	UpdateOffer(ctx context.Context, offerID uuid.UUID, req UpdateOfferRequest, projectID string) error
	CancelOffer(ctx context.Context, offerID uuid.UUID, projectID string) error
	DestroyOffer(ctx context.Context, offerID uuid.UUID, projectID string) error
	ClaimOffer(ctx context.Context, offerID uuid.UUID, req ClaimOfferRequest, projectID string) (uuid.UUID, error)
}

type offerCommandsImpl struct {
	uow       shared.UnitOfWork
	resources shared.ResourceResolver
	projects  shared.ProjectResolver
	recorder  shared.Recorder
	clock     clock.Clock
}

func NewOfferCommands(
	uow shared.UnitOfWork,
	resources shared.ResourceResolver,
	projects shared.ProjectResolver,
	recorder shared.Recorder,
	clk clock.Clock,
) OfferCommands {
	return &offerCommandsImpl{
		uow:       uow,
		resources: resources,
		projects:  projects,
		recorder:  recorder,
		clock:     clk,
	}
}

func (uc *offerCommandsImpl) CreateOffer(ctx context.Context, req CreateOfferRequest, projectID string) (uuid.UUID, error) {
	o, err := uc.createOffer(ctx, req, projectID)
	uc.recorder.Reservation(reservation.KindOffer.String(), "create", outcome(err))
	if err != nil {
		return uuid.Nil, err
	}
	slog.Info("offer created",
		"offer_id", o.ID(),
		"project_id", projectID,
		"resource", o.Resource().String(),
		"slot", o.Slot().String())
	return o.ID(), nil
}

func (uc *offerCommandsImpl) createOffer(ctx context.Context, req CreateOfferRequest, projectID string) (*offer.Offer, error) {
	resourceType := req.ResourceType
	if resourceType == "" {
		resourceType = resource.DefaultType
	}
	res, err := uc.resources.Resolve(ctx, resourceType, req.ResourceID)
	if err != nil {
		return nil, err
	}
	lesseeID, err := canonicalProject(ctx, uc.projects, req.LesseeID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	slot, err := requestedSlot(req.StartTime, req.EndTime, now)
	if err != nil {
		return nil, err
	}
	o, err := offer.New(offer.NewParams{
		Name:       req.Name,
		ProjectID:  projectID,
		LesseeID:   lesseeID,
		Resource:   res.Ref(),
		Slot:       slot,
		Properties: req.Properties,
	}, now)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockResource(ctx, res.Ref()); err != nil {
			return err
		}
		if err := CheckAdmin(ctx, tx, res, slot, projectID); err != nil {
			return err
		}
		if err := CheckResource(ctx, tx, res.Ref(), slot, CheckOptions{}); err != nil {
			return err
		}
		return tx.Offers().Create(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (uc *offerCommandsImpl) UpdateOffer(ctx context.Context, offerID uuid.UUID, req UpdateOfferRequest, projectID string) error {
	err := uc.withOwnedOffer(ctx, offerID, projectID, func(ctx context.Context, tx shared.Tx, o *offer.Offer) error {
		recheck, err := o.Apply(offer.Patch{
			Name:       req.Name,
			Start:      req.StartTime,
			End:        req.EndTime,
			Status:     req.Status,
			Properties: req.Properties,
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		if recheck {
			if err := uc.checkMovedOffer(ctx, tx, o, projectID); err != nil {
				return err
			}
		}
		return tx.Offers().Update(ctx, o)
	})
	uc.recorder.Reservation(reservation.KindOffer.String(), "update", outcome(err))
	if err != nil {
		return err
	}
	slog.Info("offer updated", "offer_id", offerID, "project_id", projectID)
	return nil
}

// checkMovedOffer re-validates an offer that holds a new or moved window. Leases carved
// out of the offer must still fit in it; everything else on the resource must
// stay clear of the new window.
func (uc *offerCommandsImpl) checkMovedOffer(ctx context.Context, tx shared.Tx, o *offer.Offer, projectID string) error {
	res, err := uc.resources.Resolve(ctx, o.Resource().Type, o.Resource().ID)
	if err != nil {
		return err
	}
	if err := CheckAdmin(ctx, tx, res, o.Slot(), projectID); err != nil {
		return err
	}
	if err := CheckResource(ctx, tx, o.Resource(), o.Slot(), CheckOptions{Exclude: o.ID(), OwnLeasesOf: o.ID()}); err != nil {
		return err
	}

	offerID := o.ID()
	own, err := tx.Leases().List(ctx, shared.LeaseFilter{OfferID: &offerID, Statuses: lease.HoldingStatuses})
	if err != nil {
		return err
	}
	for _, l := range own {
		if !interval.Within(l.Slot(), o.Slot()) {
			return reservation.NewConflictError(o.Resource(), o.Slot(), reservation.Occupant{
				Kind: reservation.KindLease,
				ID:   l.ID(),
				Slot: l.Slot(),
			})
		}
	}
	return nil
}

// CancelOffer moves an AVAILABLE offer to CANCELLED and cancels the leases
// still holding windows carved out of it.
func (uc *offerCommandsImpl) CancelOffer(ctx context.Context, offerID uuid.UUID, projectID string) error {
	var cancelled int
	err := uc.withOwnedOffer(ctx, offerID, projectID, func(ctx context.Context, tx shared.Tx, o *offer.Offer) error {
		now := uc.clock.Now()
		if err := o.Cancel(now); err != nil {
			return err
		}
		leases, err := tx.Leases().List(ctx, shared.LeaseFilter{OfferID: &offerID, Statuses: lease.HoldingStatuses})
		if err != nil {
			return err
		}
		for _, l := range leases {
			if err := l.Cancel(now); err != nil {
				return err
			}
			if err := tx.Leases().Update(ctx, l); err != nil {
				return err
			}
		}
		cancelled = len(leases)
		return tx.Offers().Update(ctx, o)
	})
	uc.recorder.Reservation(reservation.KindOffer.String(), "cancel", outcome(err))
	if err != nil {
		return err
	}
	slog.Info("offer cancelled", "offer_id", offerID, "project_id", projectID, "leases_cancelled", cancelled)
	return nil
}

// DestroyOffer removes an AVAILABLE offer that no lease holds any more.
func (uc *offerCommandsImpl) DestroyOffer(ctx context.Context, offerID uuid.UUID, projectID string) error {
	err := uc.withOwnedOffer(ctx, offerID, projectID, func(ctx context.Context, tx shared.Tx, o *offer.Offer) error {
		if !o.IsAvailable() {
			return errs.Mark(errs.Newf("offer %s is %s", o.ID(), o.Status()), errs.ErrInvalidStatus)
		}
		holding, err := tx.Leases().List(ctx, shared.LeaseFilter{OfferID: &offerID, Statuses: lease.HoldingStatuses})
		if err != nil {
			return err
		}
		if len(holding) > 0 {
			return errs.Mark(errs.Newf("offer %s still has %d holding leases", o.ID(), len(holding)), errs.ErrInvalidStatus)
		}
		return notFoundAs(tx.Offers().Delete(ctx, offerID), errs.ErrOfferNotFound)
	})
	uc.recorder.Reservation(reservation.KindOffer.String(), "destroy", outcome(err))
	if err != nil {
		return err
	}
	slog.Info("offer destroyed", "offer_id", offerID, "project_id", projectID)
	return nil
}

func (uc *offerCommandsImpl) ClaimOffer(ctx context.Context, offerID uuid.UUID, req ClaimOfferRequest, projectID string) (uuid.UUID, error) {
	l, err := uc.claimOffer(ctx, offerID, req, projectID)
	uc.recorder.Reservation(reservation.KindOffer.String(), "claim", outcome(err))
	if err != nil {
		return uuid.Nil, err
	}
	slog.Info("offer claimed",
		"offer_id", offerID,
		"lease_id", l.ID(),
		"project_id", projectID,
		"slot", l.Slot().String())
	return l.ID(), nil
}

func (uc *offerCommandsImpl) claimOffer(ctx context.Context, offerID uuid.UUID, req ClaimOfferRequest, projectID string) (*lease.Lease, error) {
	lineage, err := uc.projects.Lineage(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var created *lease.Lease
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Offers().FindByID(ctx, offerID)
		if err != nil {
			return notFoundAs(err, errs.ErrOfferNotFound)
		}
		if err := tx.LockResource(ctx, o.Resource()); err != nil {
			return err
		}
		// The offer may have changed while this transaction waited for the lock.
		if o, err = tx.Offers().FindByID(ctx, offerID); err != nil {
			return notFoundAs(err, errs.ErrOfferNotFound)
		}
		if !o.IsAvailable() {
			return errs.Mark(errs.Newf("offer %s is %s", o.ID(), o.Status()), errs.ErrInvalidStatus)
		}
		if !o.ClaimableBy(projectID, lineage) {
			return errs.Wrapf(errs.ErrOfferNotClaimable, "offer %s for project %s", o.ID(), projectID)
		}

		slot, err := uc.claimSlot(ctx, tx, o, req)
		if err != nil {
			return err
		}
		if err := CheckOffer(ctx, tx, o, slot, uuid.Nil); err != nil {
			return err
		}

		l, err := lease.New(lease.NewParams{
			Name:       req.Name,
			OfferID:    &offerID,
			ProjectID:  projectID,
			OwnerID:    o.ProjectID(),
			Resource:   o.Resource(),
			Slot:       slot,
			Properties: req.Properties,
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Leases().Create(ctx, l); err != nil {
			return err
		}
		created = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// claimSlot resolves the requested window. Without an explicit end the lease
// runs until the next lease on the offer starts, or until the offer ends.
func (uc *offerCommandsImpl) claimSlot(ctx context.Context, tx shared.Tx, o *offer.Offer, req ClaimOfferRequest) (interval.Interval, error) {
	start := uc.clock.Now()
	if req.StartTime != nil {
		start = *req.StartTime
	}
	if req.EndTime != nil {
		return interval.New(start, *req.EndTime)
	}

	offerID := o.ID()
	siblings, err := tx.Leases().List(ctx, shared.LeaseFilter{OfferID: &offerID, Statuses: lease.HoldingStatuses})
	if err != nil {
		return interval.Interval{}, err
	}
	end := o.Slot().End()
	if boundary, ok := reservation.FirstBoundary(reservation.Slots(leaseOccupants(siblings)), start); ok {
		end = boundary
	}
	if !start.Before(end) {
		return interval.Interval{}, reservation.NewOfferUnavailableFrom(o.ID(), start)
	}
	return interval.New(start, end)
}

func (uc *offerCommandsImpl) withOwnedOffer(
	ctx context.Context,
	offerID uuid.UUID,
	projectID string,
	fn func(ctx context.Context, tx shared.Tx, o *offer.Offer) error,
) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Offers().FindByID(ctx, offerID)
		if err != nil {
			return notFoundAs(err, errs.ErrOfferNotFound)
		}
		if o.ProjectID() != projectID {
			return errs.Wrapf(errs.ErrForbidden, "offer %s is owned by another project", offerID)
		}
		if err := tx.LockResource(ctx, o.Resource()); err != nil {
			return err
		}
		if o, err = tx.Offers().FindByID(ctx, offerID); err != nil {
			return notFoundAs(err, errs.ErrOfferNotFound)
		}
		return fn(ctx, tx, o)
	})
}
