package commands

import (
	"context"
	"log/slog"
	"time"

	"lease-engine/internal/domain/ownerchange"
	"lease-engine/internal/domain/reservation"
	"lease-engine/internal/domain/resource"
	"lease-engine/internal/pkg/clock"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// CreateOwnerChangeRequest hands administration of a resource from the
// caller to ToOwnerID for a window.
type CreateOwnerChangeRequest struct {
	ResourceType string
	ResourceID   string
	ToOwnerID    string
	StartTime    *time.Time
	EndTime      *time.Time
}

type UpdateOwnerChangeRequest struct {
	StartTime *time.Time
	EndTime   *time.Time
	Status    *ownerchange.Status
}

type OwnerChangeCommands interface {
	CreateOwnerChange(ctx context.Context, req CreateOwnerChangeRequest, projectID string) (uuid.UUID, error)
	UpdateOwnerChange(ctx context.Context, changeID uuid.UUID, req UpdateOwnerChangeRequest, projectID string) error
	CancelOwnerChange(ctx context.Context, changeID uuid.UUID, projectID string) error
	DestroyOwnerChange(ctx context.Context, changeID uuid.UUID, projectID string) error
}

type ownerChangeCommandsImpl struct {
	uow       shared.UnitOfWork
	resources shared.ResourceResolver
	projects  shared.ProjectResolver
	recorder  shared.Recorder
	clock     clock.Clock
}

func NewOwnerChangeCommands(
	uow shared.UnitOfWork,
	resources shared.ResourceResolver,
	projects shared.ProjectResolver,
	recorder shared.Recorder,
	clk clock.Clock,
) OwnerChangeCommands {
	return &ownerChangeCommandsImpl{
		uow:       uow,
		resources: resources,
		projects:  projects,
		recorder:  recorder,
		clock:     clk,
	}
}

func (uc *ownerChangeCommandsImpl) CreateOwnerChange(ctx context.Context, req CreateOwnerChangeRequest, projectID string) (uuid.UUID, error) {
	c, err := uc.createOwnerChange(ctx, req, projectID)
	uc.recorder.Reservation(reservation.KindOwnerChange.String(), "create", outcome(err))
	if err != nil {
		return uuid.Nil, err
	}
	slog.Info("owner change created",
		"owner_change_id", c.ID(),
		"from_owner_id", c.FromOwnerID(),
		"to_owner_id", c.ToOwnerID(),
		"resource", c.Resource().String(),
		"slot", c.Slot().String())
	return c.ID(), nil
}

func (uc *ownerChangeCommandsImpl) createOwnerChange(ctx context.Context, req CreateOwnerChangeRequest, projectID string) (*ownerchange.OwnerChange, error) {
	resourceType := req.ResourceType
	if resourceType == "" {
		resourceType = resource.DefaultType
	}
	res, err := uc.resources.Resolve(ctx, resourceType, req.ResourceID)
	if err != nil {
		return nil, err
	}
	toOwnerID, err := uc.projects.Canonical(ctx, req.ToOwnerID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	slot, err := requestedSlot(req.StartTime, req.EndTime, now)
	if err != nil {
		return nil, err
	}
	c, err := ownerchange.New(ownerchange.NewParams{
		Resource:    res.Ref(),
		FromOwnerID: projectID,
		ToOwnerID:   toOwnerID,
		Slot:        slot,
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
		if err := CheckResource(ctx, tx, res.Ref(), slot, CheckOptions{OwnerChange: true}); err != nil {
			return err
		}
		return tx.OwnerChanges().Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *ownerChangeCommandsImpl) UpdateOwnerChange(ctx context.Context, changeID uuid.UUID, req UpdateOwnerChangeRequest, projectID string) error {
	err := uc.withOwnedChange(ctx, changeID, projectID, func(ctx context.Context, tx shared.Tx, c *ownerchange.OwnerChange) error {
		recheck, err := c.Apply(ownerchange.Patch{
			Start:  req.StartTime,
			End:    req.EndTime,
			Status: req.Status,
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		if recheck {
			res, err := uc.resources.Resolve(ctx, c.Resource().Type, c.Resource().ID)
			if err != nil {
				return err
			}
			if err := checkAdminExcluding(ctx, tx, res, c.Slot(), projectID, c.ID()); err != nil {
				return err
			}
			if err := CheckResource(ctx, tx, c.Resource(), c.Slot(), CheckOptions{OwnerChange: true, Exclude: c.ID()}); err != nil {
				return err
			}
		}
		return tx.OwnerChanges().Update(ctx, c)
	})
	uc.recorder.Reservation(reservation.KindOwnerChange.String(), "update", outcome(err))
	if err != nil {
		return err
	}
	slog.Info("owner change updated", "owner_change_id", changeID, "project_id", projectID)
	return nil
}

func (uc *ownerChangeCommandsImpl) CancelOwnerChange(ctx context.Context, changeID uuid.UUID, projectID string) error {
	err := uc.withOwnedChange(ctx, changeID, projectID, func(ctx context.Context, tx shared.Tx, c *ownerchange.OwnerChange) error {
		if err := c.Cancel(uc.clock.Now()); err != nil {
			return err
		}
		return tx.OwnerChanges().Update(ctx, c)
	})
	uc.recorder.Reservation(reservation.KindOwnerChange.String(), "cancel", outcome(err))
	if err != nil {
		return err
	}
	slog.Info("owner change cancelled", "owner_change_id", changeID, "project_id", projectID)
	return nil
}

func (uc *ownerChangeCommandsImpl) DestroyOwnerChange(ctx context.Context, changeID uuid.UUID, projectID string) error {
	err := uc.withOwnedChange(ctx, changeID, projectID, func(ctx context.Context, tx shared.Tx, c *ownerchange.OwnerChange) error {
		return notFoundAs(tx.OwnerChanges().Delete(ctx, changeID), errs.ErrOwnerChangeNotFound)
	})
	uc.recorder.Reservation(reservation.KindOwnerChange.String(), "destroy", outcome(err))
	if err != nil {
		return err
	}
	slog.Info("owner change destroyed", "owner_change_id", changeID, "project_id", projectID)
	return nil
}

// withOwnedChange only admits the project that gave the resource away.
func (uc *ownerChangeCommandsImpl) withOwnedChange(
	ctx context.Context,
	changeID uuid.UUID,
	projectID string,
	fn func(ctx context.Context, tx shared.Tx, c *ownerchange.OwnerChange) error,
) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.OwnerChanges().FindByID(ctx, changeID)
		if err != nil {
			return notFoundAs(err, errs.ErrOwnerChangeNotFound)
		}
		if c.FromOwnerID() != projectID {
			return errs.Wrapf(errs.ErrForbidden, "owner change %s was created by another project", changeID)
		}
		if err := tx.LockResource(ctx, c.Resource()); err != nil {
			return err
		}
		if c, err = tx.OwnerChanges().FindByID(ctx, changeID); err != nil {
			return notFoundAs(err, errs.ErrOwnerChangeNotFound)
		}
		return fn(ctx, tx, c)
	})
}
