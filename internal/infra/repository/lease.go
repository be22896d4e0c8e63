package repository

import (
	"context"

	"lease-engine/internal/domain/lease"
	"lease-engine/internal/infra"
	"lease-engine/internal/infra/query"
	"lease-engine/internal/infra/repository/converter"
	"lease-engine/internal/pkg/pgconv"
	"lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type LeaseQueries interface {
	GetLease(ctx context.Context, db query.DBTX, id uuid.UUID) (query.Lease, error)
	ListLeasesByName(ctx context.Context, db query.DBTX, name string) ([]query.Lease, error)
	ListLeases(ctx context.Context, db query.DBTX, arg query.ListLeasesParams) ([]query.Lease, error)
	CreateLease(ctx context.Context, db query.DBTX, arg query.Lease) error
	UpdateLease(ctx context.Context, db query.DBTX, arg query.UpdateLeaseParams) (int64, error)
	DeleteLease(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type LeaseRepository struct {
	queries LeaseQueries
	db      query.DBTX
}

var _ shared.LeaseRepository = (*LeaseRepository)(nil)

func NewLeaseRepository(queries LeaseQueries, db query.DBTX) *LeaseRepository {
	return &LeaseRepository{
		queries: queries,
		db:      db,
	}
}

func (r *LeaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*lease.Lease, error) {
	row, err := r.queries.GetLease(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get lease", err)
	}
	l, err := converter.LeaseFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert lease", err, infra.KindDBFailure)
	}
	return l, nil
}

func (r *LeaseRepository) FindByName(ctx context.Context, name string) ([]*lease.Lease, error) {
	rows, err := r.queries.ListLeasesByName(ctx, r.db, name)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list leases by name", err)
	}
	return r.convert(rows)
}

func (r *LeaseRepository) List(ctx context.Context, filter shared.LeaseFilter) ([]*lease.Lease, error) {
	rows, err := r.queries.ListLeases(ctx, r.db, converter.LeaseFilterToParams(filter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list leases", err)
	}
	return r.convert(rows)
}

func (r *LeaseRepository) Create(ctx context.Context, l *lease.Lease) error {
	row, err := converter.LeaseToRow(l)
	if err != nil {
		return infra.WrapRepoErr("failed to encode lease", err, infra.KindDBFailure)
	}
	if err := r.queries.CreateLease(ctx, r.db, row); err != nil {
		return infra.WrapRepoErr("failed to create lease", err)
	}
	return nil
}

func (r *LeaseRepository) Update(ctx context.Context, l *lease.Lease) error {
	properties, err := l.Properties().Marshal()
	if err != nil {
		return infra.WrapRepoErr("failed to encode lease properties", err, infra.KindDBFailure)
	}
	n, err := r.queries.UpdateLease(ctx, r.db, query.UpdateLeaseParams{
		ID:         l.ID(),
		Name:       l.Name(),
		StartTime:  pgconv.TimeToPgtype(l.Slot().Start()),
		EndTime:    pgconv.TimeToPgtype(l.Slot().End()),
		Status:     l.Status().String(),
		Properties: properties,
		UpdatedAt:  pgconv.TimeToPgtype(l.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update lease", err)
	}
	if n == 0 {
		return infra.NotFound("lease not found")
	}
	return nil
}

func (r *LeaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteLease(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete lease", err)
	}
	if n == 0 {
		return infra.NotFound("lease not found")
	}
	return nil
}

func (r *LeaseRepository) convert(rows []query.Lease) ([]*lease.Lease, error) {
	out, err := converter.LeasesFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert leases", err, infra.KindDBFailure)
	}
	return out, nil
}
