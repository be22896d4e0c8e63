package repository

import (
	"context"

	"lease-engine/internal/domain/offer"
	"lease-engine/internal/infra"
	"lease-engine/internal/infra/query"
	"lease-engine/internal/infra/repository/converter"
	"lease-engine/internal/pkg/pgconv"
	"lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferQueries interface {
	GetOffer(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Offer, error)
	ListOffersByName(ctx context.Context, db query.DBTX, name string) ([]query.Offer, error)
	ListOffers(ctx context.Context, db query.DBTX, arg query.ListOffersParams) ([]query.Offer, error)
	CreateOffer(ctx context.Context, db query.DBTX, arg query.Offer) error
	UpdateOffer(ctx context.Context, db query.DBTX, arg query.UpdateOfferParams) (int64, error)
	DeleteOffer(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type OfferRepository struct {
	queries OfferQueries
	db      query.DBTX
}

var _ shared.OfferRepository = (*OfferRepository)(nil)

func NewOfferRepository(queries OfferQueries, db query.DBTX) *OfferRepository {
	return &OfferRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OfferRepository) FindByID(ctx context.Context, id uuid.UUID) (*offer.Offer, error) {
	row, err := r.queries.GetOffer(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get offer", err)
	}
	o, err := converter.OfferFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert offer", err, infra.KindDBFailure)
	}
	return o, nil
}

func (r *OfferRepository) FindByName(ctx context.Context, name string) ([]*offer.Offer, error) {
	rows, err := r.queries.ListOffersByName(ctx, r.db, name)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers by name", err)
	}
	return r.convert(rows)
}

func (r *OfferRepository) List(ctx context.Context, filter shared.OfferFilter) ([]*offer.Offer, error) {
	rows, err := r.queries.ListOffers(ctx, r.db, converter.OfferFilterToParams(filter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list offers", err)
	}
	return r.convert(rows)
}

func (r *OfferRepository) Create(ctx context.Context, o *offer.Offer) error {
	row, err := converter.OfferToRow(o)
	if err != nil {
		return infra.WrapRepoErr("failed to encode offer", err, infra.KindDBFailure)
	}
	if err := r.queries.CreateOffer(ctx, r.db, row); err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}
	return nil
}

func (r *OfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	properties, err := o.Properties().Marshal()
	if err != nil {
		return infra.WrapRepoErr("failed to encode offer properties", err, infra.KindDBFailure)
	}
	n, err := r.queries.UpdateOffer(ctx, r.db, query.UpdateOfferParams{
		ID:         o.ID(),
		Name:       o.Name(),
		StartTime:  pgconv.TimeToPgtype(o.Slot().Start()),
		EndTime:    pgconv.TimeToPgtype(o.Slot().End()),
		Status:     o.Status().String(),
		Properties: properties,
		UpdatedAt:  pgconv.TimeToPgtype(o.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update offer", err)
	}
	if n == 0 {
		return infra.NotFound("offer not found")
	}
	return nil
}

func (r *OfferRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteOffer(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete offer", err)
	}
	if n == 0 {
		return infra.NotFound("offer not found")
	}
	return nil
}

func (r *OfferRepository) convert(rows []query.Offer) ([]*offer.Offer, error) {
	out, err := converter.OffersFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert offers", err, infra.KindDBFailure)
	}
	return out, nil
}
