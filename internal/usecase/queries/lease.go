package queries

import (
	"context"

	"lease-engine/internal/domain/lease"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type LeaseQueries interface {
	Get(ctx context.Context, ident string, projectID string) (*LeaseView, error)
	// List only returns leases the project consumes or owns.
	List(ctx context.Context, params LeaseListParams, projectID string) ([]*LeaseView, error)
}

type leaseQueriesImpl struct {
	uow       shared.UnitOfWork
	resources shared.ResourceResolver
	projects  shared.ProjectResolver
}

func NewLeaseQueries(uow shared.UnitOfWork, resources shared.ResourceResolver, projects shared.ProjectResolver) LeaseQueries {
	return &leaseQueriesImpl{uow: uow, resources: resources, projects: projects}
}

func (q *leaseQueriesImpl) Get(ctx context.Context, ident string, projectID string) (*LeaseView, error) {
	var view *LeaseView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := q.find(ctx, tx, ident, projectID)
		if err != nil {
			return err
		}
		view = toLeaseView(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *leaseQueriesImpl) find(ctx context.Context, tx shared.Tx, ident, projectID string) (*lease.Lease, error) {
	if id, perr := uuid.Parse(ident); perr == nil {
		l, err := tx.Leases().FindByID(ctx, id)
		if err != nil {
			return nil, notFoundAs(err, errs.ErrLeaseNotFound)
		}
		if !l.InvolvedProject(projectID) {
			return nil, errs.Wrapf(errs.ErrForbidden, "project %s is not part of lease %s", projectID, id)
		}
		return l, nil
	}

	candidates, err := tx.Leases().FindByName(ctx, ident)
	if err != nil {
		return nil, err
	}
	var visible []*lease.Lease
	for _, l := range candidates {
		if l.InvolvedProject(projectID) {
			visible = append(visible, l)
		}
	}
	switch len(visible) {
	case 0:
		return nil, errs.Wrapf(errs.ErrLeaseNotFound, "lease %q", ident)
	case 1:
		return visible[0], nil
	default:
		return nil, errs.Wrapf(errs.ErrAmbiguousName, "%d leases named %q", len(visible), ident)
	}
}

func (q *leaseQueriesImpl) List(ctx context.Context, params LeaseListParams, projectID string) ([]*LeaseView, error) {
	tf, err := timeFilter(params.Time, params.TimeMode)
	if err != nil {
		return nil, err
	}
	statuses, err := parseStatuses(params.Status, lease.HoldingStatuses, lease.Status.IsValid)
	if err != nil {
		return nil, err
	}
	ref, err := resolveRef(ctx, q.resources, params.ResourceType, params.ResourceID)
	if err != nil {
		return nil, err
	}

	filter := shared.LeaseFilter{
		Resource:         ref,
		OfferID:          params.OfferID,
		ProjectOrOwnerID: &projectID,
		Statuses:         statuses,
		Time:             tf,
	}
	if ref == nil && params.ResourceType != nil && *params.ResourceType != "" {
		filter.ResourceType = params.ResourceType
	}
	if params.ProjectID != nil {
		id, err := q.projects.Canonical(ctx, *params.ProjectID)
		if err != nil {
			return nil, err
		}
		filter.ProjectID = &id
	}
	if params.OwnerID != nil {
		id, err := q.projects.Canonical(ctx, *params.OwnerID)
		if err != nil {
			return nil, err
		}
		filter.OwnerID = &id
	}

	views := make([]*LeaseView, 0)
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		leases, err := tx.Leases().List(ctx, filter)
		if err != nil {
			return err
		}
		for _, l := range leases {
			views = append(views, toLeaseView(l))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func toLeaseView(l *lease.Lease) *LeaseView {
	return &LeaseView{
		ID:           l.ID(),
		Name:         l.Name(),
		OfferID:      l.OfferID(),
		ProjectID:    l.ProjectID(),
		OwnerID:      l.OwnerID(),
		ResourceType: l.Resource().Type,
		ResourceID:   l.Resource().ID,
		StartTime:    l.Slot().Start(),
		EndTime:      l.Slot().End(),
		Status:       l.Status().String(),
		Properties:   l.Properties(),
		CreatedAt:    l.CreatedAt(),
		UpdatedAt:    l.UpdatedAt(),
	}
}
