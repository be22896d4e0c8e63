package queries

import (
	"context"

	"lease-engine/internal/domain/ownerchange"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type OwnerChangeQueries interface {
	Get(ctx context.Context, id uuid.UUID, projectID string) (*OwnerChangeView, error)
	// List only returns changes the project gives or receives.
	List(ctx context.Context, params OwnerChangeListParams, projectID string) ([]*OwnerChangeView, error)
}

type ownerChangeQueriesImpl struct {
	uow       shared.UnitOfWork
	resources shared.ResourceResolver
}

func NewOwnerChangeQueries(uow shared.UnitOfWork, resources shared.ResourceResolver) OwnerChangeQueries {
	return &ownerChangeQueriesImpl{uow: uow, resources: resources}
}

func (q *ownerChangeQueriesImpl) Get(ctx context.Context, id uuid.UUID, projectID string) (*OwnerChangeView, error) {
	var view *OwnerChangeView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.OwnerChanges().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, errs.ErrOwnerChangeNotFound)
		}
		if !c.Involves(projectID) {
			return errs.Wrapf(errs.ErrForbidden, "project %s is not part of owner change %s", projectID, id)
		}
		view = toOwnerChangeView(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *ownerChangeQueriesImpl) List(ctx context.Context, params OwnerChangeListParams, projectID string) ([]*OwnerChangeView, error) {
	containing, err := params.Time.window()
	if err != nil {
		return nil, err
	}
	statuses, err := parseStatuses(params.Status, ownerchange.PendingStatuses, ownerchange.Status.IsValid)
	if err != nil {
		return nil, err
	}
	ref, err := resolveRef(ctx, q.resources, params.ResourceType, params.ResourceID)
	if err != nil {
		return nil, err
	}

	filter := shared.OwnerChangeFilter{
		Resource:        ref,
		FromOrToOwnerID: &projectID,
		Statuses:        statuses,
		Containing:      containing,
	}

	views := make([]*OwnerChangeView, 0)
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		changes, err := tx.OwnerChanges().List(ctx, filter)
		if err != nil {
			return err
		}
		for _, c := range changes {
			views = append(views, toOwnerChangeView(c))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func toOwnerChangeView(c *ownerchange.OwnerChange) *OwnerChangeView {
	return &OwnerChangeView{
		ID:           c.ID(),
		ResourceType: c.Resource().Type,
		ResourceID:   c.Resource().ID,
		FromOwnerID:  c.FromOwnerID(),
		ToOwnerID:    c.ToOwnerID(),
		StartTime:    c.Slot().Start(),
		EndTime:      c.Slot().End(),
		Status:       c.Status().String(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}
