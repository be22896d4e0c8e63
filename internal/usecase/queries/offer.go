package queries

import (
	"context"
	"time"

	"lease-engine/internal/domain/interval"
	"lease-engine/internal/domain/lease"
	"lease-engine/internal/domain/offer"
	"lease-engine/internal/domain/reservation"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferQueries interface {
	// Get accepts an offer uuid or name.
	Get(ctx context.Context, ident string, projectID string) (*OfferView, error)
	List(ctx context.Context, params OfferListParams, projectID string) ([]*OfferView, error)
}

type offerQueriesImpl struct {
	uow       shared.UnitOfWork
	resources shared.ResourceResolver
	projects  shared.ProjectResolver
}

func NewOfferQueries(uow shared.UnitOfWork, resources shared.ResourceResolver, projects shared.ProjectResolver) OfferQueries {
	return &offerQueriesImpl{uow: uow, resources: resources, projects: projects}
}

func (q *offerQueriesImpl) Get(ctx context.Context, ident string, projectID string) (*OfferView, error) {
	lineage, err := q.projects.Lineage(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var view *OfferView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := q.find(ctx, tx, ident, projectID, lineage)
		if err != nil {
			return err
		}
		view, err = offerView(ctx, tx, o)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *offerQueriesImpl) find(ctx context.Context, tx shared.Tx, ident, projectID string, lineage []string) (*offer.Offer, error) {
	if id, perr := uuid.Parse(ident); perr == nil {
		o, err := tx.Offers().FindByID(ctx, id)
		if err != nil {
			return nil, notFoundAs(err, errs.ErrOfferNotFound)
		}
		if !o.ClaimableBy(projectID, lineage) {
			return nil, errs.Wrapf(errs.ErrForbidden, "offer %s is restricted to another project", id)
		}
		return o, nil
	}

	candidates, err := tx.Offers().FindByName(ctx, ident)
	if err != nil {
		return nil, err
	}
	var visible []*offer.Offer
	for _, o := range candidates {
		if o.ClaimableBy(projectID, lineage) {
			visible = append(visible, o)
		}
	}
	switch len(visible) {
	case 0:
		return nil, errs.Wrapf(errs.ErrOfferNotFound, "offer %q", ident)
	case 1:
		return visible[0], nil
	default:
		return nil, errs.Wrapf(errs.ErrAmbiguousName, "%d offers named %q", len(visible), ident)
	}
}

func (q *offerQueriesImpl) List(ctx context.Context, params OfferListParams, projectID string) ([]*OfferView, error) {
	filter, available, err := q.buildFilter(ctx, params, projectID)
	if err != nil {
		return nil, err
	}

	views := make([]*OfferView, 0)
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		offers, err := tx.Offers().List(ctx, filter)
		if err != nil {
			return err
		}
		for _, o := range offers {
			siblings, err := holdingLeases(ctx, tx, o.ID())
			if err != nil {
				return err
			}
			if available != nil && !reservation.CheckOfferWindow(o.Slot(), *available, siblings, uuid.Nil) {
				continue
			}
			views = append(views, toOfferView(o, siblings))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *offerQueriesImpl) buildFilter(ctx context.Context, params OfferListParams, projectID string) (shared.OfferFilter, *interval.Interval, error) {
	var filter shared.OfferFilter

	tf, err := timeFilter(params.Time, params.TimeMode)
	if err != nil {
		return filter, nil, err
	}
	available, err := params.Available.window()
	if err != nil {
		return filter, nil, err
	}
	statuses, err := parseStatuses(params.Status, []offer.Status{offer.StatusAvailable}, offer.Status.IsValid)
	if err != nil {
		return filter, nil, err
	}
	ref, err := resolveRef(ctx, q.resources, params.ResourceType, params.ResourceID)
	if err != nil {
		return filter, nil, err
	}
	if params.ProjectID != nil {
		owner, err := q.projects.Canonical(ctx, *params.ProjectID)
		if err != nil {
			return filter, nil, err
		}
		filter.ProjectID = &owner
	}
	lineage, err := q.projects.Lineage(ctx, projectID)
	if err != nil {
		return filter, nil, err
	}

	filter.Resource = ref
	if ref == nil && params.ResourceType != nil && *params.ResourceType != "" {
		filter.ResourceType = params.ResourceType
	}
	filter.Statuses = statuses
	filter.Time = tf
	filter.Lessee = &shared.LesseeFilter{ProjectID: projectID, Lineage: lineage}
	return filter, available, nil
}

func holdingLeases(ctx context.Context, tx shared.Tx, offerID uuid.UUID) ([]reservation.Occupant, error) {
	leases, err := tx.Leases().List(ctx, shared.LeaseFilter{OfferID: &offerID, Statuses: lease.HoldingStatuses})
	if err != nil {
		return nil, err
	}
	out := make([]reservation.Occupant, len(leases))
	for i, l := range leases {
		out[i] = reservation.Occupant{Kind: reservation.KindLease, ID: l.ID(), Slot: l.Slot()}
	}
	return out, nil
}

func offerView(ctx context.Context, tx shared.Tx, o *offer.Offer) (*OfferView, error) {
	siblings, err := holdingLeases(ctx, tx, o.ID())
	if err != nil {
		return nil, err
	}
	return toOfferView(o, siblings), nil
}

func toOfferView(o *offer.Offer, siblings []reservation.Occupant) *OfferView {
	gaps := interval.Gaps(o.Slot(), reservation.Slots(siblings))
	availabilities := make([][2]time.Time, len(gaps))
	for i, g := range gaps {
		availabilities[i] = [2]time.Time{g.Start(), g.End()}
	}
	return &OfferView{
		ID:             o.ID(),
		Name:           o.Name(),
		ProjectID:      o.ProjectID(),
		LesseeID:       o.LesseeID(),
		ResourceType:   o.Resource().Type,
		ResourceID:     o.Resource().ID,
		StartTime:      o.Slot().Start(),
		EndTime:        o.Slot().End(),
		Status:         o.Status().String(),
		Properties:     o.Properties(),
		Availabilities: availabilities,
		CreatedAt:      o.CreatedAt(),
		UpdatedAt:      o.UpdatedAt(),
	}
}
