package queries

import (
	"context"
	"time"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/ownerchange"
	"lease-engine/internal/domain/reservation"
	"lease-engine/internal/pkg/clock"
	"lease-engine/internal/pkg/patch"
	"lease-engine/internal/usecase/shared"
)

type ResourceQueries interface {
	// CheckAdmin reports whether projectID administers the resource for the
	// whole window. Missing bounds default to now and Forever.
	CheckAdmin(ctx context.Context, resourceType, ident string, start, end *time.Time, projectID string) (*AdminView, error)
}

type resourceQueriesImpl struct {
	uow       shared.UnitOfWork
	resources shared.ResourceResolver
	clock     clock.Clock
}

func NewResourceQueries(uow shared.UnitOfWork, resources shared.ResourceResolver, clk clock.Clock) ResourceQueries {
	return &resourceQueriesImpl{uow: uow, resources: resources, clock: clk}
}

func (q *resourceQueriesImpl) CheckAdmin(ctx context.Context, resourceType, ident string, start, end *time.Time, projectID string) (*AdminView, error) {
	res, err := q.resources.Resolve(ctx, resourceType, ident)
	if err != nil {
		return nil, err
	}
	window, err := interval.New(patch.Coalesce(start, q.clock.Now()), patch.Coalesce(end, interval.Forever))
	if err != nil {
		return nil, err
	}

	var isAdmin bool
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		ref := res.Ref()
		changes, err := tx.OwnerChanges().List(ctx, shared.OwnerChangeFilter{
			Resource: &ref,
			Statuses: ownerchange.PendingStatuses,
		})
		if err != nil {
			return err
		}
		transfers := make([]reservation.Transfer, len(changes))
		for i, c := range changes {
			transfers[i] = c.Transfer()
		}
		isAdmin = reservation.IsAdmin(window, transfers, res.OwnerProjectID(), projectID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AdminView{
		ResourceType: res.Ref().Type,
		ResourceID:   res.Ref().ID,
		ProjectID:    projectID,
		StartTime:    window.Start(),
		EndTime:      window.End(),
		IsAdmin:      isAdmin,
	}, nil
}
