package commands

import (
	"context"
	"log/slog"
	"time"

	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/reservation"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/pkg/clock"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/pkg/props"
	"lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// CreateLeaseRequest grants a lease directly, without an offer. ProjectID is
// the consuming project; the caller becomes the lease owner.
type CreateLeaseRequest struct {
	Name         string
	ProjectID    string
	ResourceType string
	ResourceID   string
	StartTime    *time.Time
	EndTime      *time.Time
	Properties   props.Properties
}

type UpdateLeaseRequest struct {
	Name       *string
	StartTime  *time.Time
	EndTime    *time.Time
	Status     *lease.Status
	Properties props.Properties
}

type LeaseCommands interface {
	CreateLease(ctx context.Context, req CreateLeaseRequest, ownerID string) (uuid.UUID, error)
	UpdateLease(ctx context.Context, leaseID uuid.UUID, req UpdateLeaseRequest, projectID string) error
	CancelLease(ctx context.Context, leaseID uuid.UUID, projectID string) error
	DestroyLease(ctx context.Context, leaseID uuid.UUID, projectID string) error
}

type leaseCommandsImpl struct {
	uow       shared.UnitOfWork
	resources shared.ResourceResolver
	projects  shared.ProjectResolver
	recorder  shared.Recorder
	clock     clock.Clock
}

func NewLeaseCommands(
	uow shared.UnitOfWork,
	resources shared.ResourceResolver,
	projects shared.ProjectResolver,
	recorder shared.Recorder,
	clk clock.Clock,
) LeaseCommands {
	return &leaseCommandsImpl{
		uow:       uow,
		resources: resources,
		projects:  projects,
		recorder:  recorder,
		clock:     clk,
	}
}

func (uc *leaseCommandsImpl) CreateLease(ctx context.Context, req CreateLeaseRequest, ownerID string) (uuid.UUID, error) {
	l, err := uc.createLease(ctx, req, ownerID)
	uc.recorder.Reservation(reservation.KindLease.String(), "create", outcome(err))
	if err != nil {
		return uuid.Nil, err
	}
	slog.Info("lease created",
		"lease_id", l.ID(),
		"owner_id", ownerID,
		"project_id", l.ProjectID(),
		"resource", l.Resource().String(),
		"slot", l.Slot().String())
	return l.ID(), nil
}

func (uc *leaseCommandsImpl) createLease(ctx context.Context, req CreateLeaseRequest, ownerID string) (*lease.Lease, error) {
	resourceType := req.ResourceType
	if resourceType == "" {
		resourceType = resource.DefaultType
	}
	res, err := uc.resources.Resolve(ctx, resourceType, req.ResourceID)
	if err != nil {
		return nil, err
	}
	lesseeID, err := uc.projects.Canonical(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	slot, err := requestedSlot(req.StartTime, req.EndTime, now)
	if err != nil {
		return nil, err
	}
	l, err := lease.New(lease.NewParams{
		Name:       req.Name,
		ProjectID:  lesseeID,
		OwnerID:    ownerID,
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
		if err := CheckAdmin(ctx, tx, res, slot, ownerID); err != nil {
			return err
		}
		if err := CheckResource(ctx, tx, res.Ref(), slot, CheckOptions{}); err != nil {
			return err
		}
		return tx.Leases().Create(ctx, l)
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (uc *leaseCommandsImpl) UpdateLease(ctx context.Context, leaseID uuid.UUID, req UpdateLeaseRequest, projectID string) error {
	err := uc.withLease(ctx, leaseID, func(ctx context.Context, tx shared.Tx, l *lease.Lease) error {
		if l.OwnerID() != projectID {
			return errs.Wrapf(errs.ErrForbidden, "lease %s is owned by another project", leaseID)
		}
		recheck, err := l.Apply(lease.Patch{
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
			if err := uc.checkMovedLease(ctx, tx, l); err != nil {
				return err
			}
		}
		return tx.Leases().Update(ctx, l)
	})
	uc.recorder.Reservation(reservation.KindLease.String(), "update", outcome(err))
	if err != nil {
		return err
	}
	slog.Info("lease updated", "lease_id", leaseID, "project_id", projectID)
	return nil
}

// checkMovedLease re-runs the check that admitted the lease: the offer check
// for claimed leases, the resource check for direct ones.
func (uc *leaseCommandsImpl) checkMovedLease(ctx context.Context, tx shared.Tx, l *lease.Lease) error {
	if l.OfferID() != nil {
		o, err := tx.Offers().FindByID(ctx, *l.OfferID())
		if err != nil {
			return notFoundAs(err, errs.ErrOfferNotFound)
		}
		return CheckOffer(ctx, tx, o, l.Slot(), l.ID())
	}

	res, err := uc.resources.Resolve(ctx, l.Resource().Type, l.Resource().ID)
	if err != nil {
		return err
	}
	if err := CheckAdmin(ctx, tx, res, l.Slot(), l.OwnerID()); err != nil {
		return err
	}
	return CheckResource(ctx, tx, l.Resource(), l.Slot(), CheckOptions{Exclude: l.ID()})
}

func (uc *leaseCommandsImpl) CancelLease(ctx context.Context, leaseID uuid.UUID, projectID string) error {
	err := uc.withLease(ctx, leaseID, func(ctx context.Context, tx shared.Tx, l *lease.Lease) error {
		if !l.InvolvedProject(projectID) {
			return errs.Wrapf(errs.ErrForbidden, "project %s is not part of lease %s", projectID, leaseID)
		}
		if err := l.Cancel(uc.clock.Now()); err != nil {
			return err
		}
		return tx.Leases().Update(ctx, l)
	})
	uc.recorder.Reservation(reservation.KindLease.String(), "cancel", outcome(err))
	if err != nil {
		return err
	}
	slog.Info("lease cancelled", "lease_id", leaseID, "project_id", projectID)
	return nil
}

func (uc *leaseCommandsImpl) DestroyLease(ctx context.Context, leaseID uuid.UUID, projectID string) error {
	err := uc.withLease(ctx, leaseID, func(ctx context.Context, tx shared.Tx, l *lease.Lease) error {
		if !l.InvolvedProject(projectID) {
			return errs.Wrapf(errs.ErrForbidden, "project %s is not part of lease %s", projectID, leaseID)
		}
		return notFoundAs(tx.Leases().Delete(ctx, leaseID), errs.ErrLeaseNotFound)
	})
	uc.recorder.Reservation(reservation.KindLease.String(), "destroy", outcome(err))
	if err != nil {
		return err
	}
	slog.Info("lease destroyed", "lease_id", leaseID, "project_id", projectID)
	return nil
}

// withLease loads the lease, takes its resource lock and reloads it so fn
// sees the state no other writer can change any more.
func (uc *leaseCommandsImpl) withLease(
	ctx context.Context,
	leaseID uuid.UUID,
	fn func(ctx context.Context, tx shared.Tx, l *lease.Lease) error,
) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Leases().FindByID(ctx, leaseID)
		if err != nil {
			return notFoundAs(err, errs.ErrLeaseNotFound)
		}
		if err := tx.LockResource(ctx, l.Resource()); err != nil {
			return err
		}
		if l, err = tx.Leases().FindByID(ctx, leaseID); err != nil {
			return notFoundAs(err, errs.ErrLeaseNotFound)
		}
		return fn(ctx, tx, l)
	})
}
