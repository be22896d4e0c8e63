package repository

import (
	"context"

	"lease-engine/internal/domain/ownerchange"
	"lease-engine/internal/infra"
	"lease-engine/internal/infra/query"
	"lease-engine/internal/infra/repository/converter"
	"lease-engine/internal/pkg/pgconv"
	"lease-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type OwnerChangeQueries interface {
	GetOwnerChange(ctx context.Context, db query.DBTX, id uuid.UUID) (query.OwnerChange, error)
	ListOwnerChanges(ctx context.Context, db query.DBTX, arg query.ListOwnerChangesParams) ([]query.OwnerChange, error)
	CreateOwnerChange(ctx context.Context, db query.DBTX, arg query.OwnerChange) error
	UpdateOwnerChange(ctx context.Context, db query.DBTX, arg query.UpdateOwnerChangeParams) (int64, error)
	DeleteOwnerChange(ctx context.Context, db query.DBTX, id uuid.UUID) (int64, error)
}

type OwnerChangeRepository struct {
	queries OwnerChangeQueries
	db      query.DBTX
}

var _ shared.OwnerChangeRepository = (*OwnerChangeRepository)(nil)

func NewOwnerChangeRepository(queries OwnerChangeQueries, db query.DBTX) *OwnerChangeRepository {
	return &OwnerChangeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OwnerChangeRepository) FindByID(ctx context.Context, id uuid.UUID) (*ownerchange.OwnerChange, error) {
	row, err := r.queries.GetOwnerChange(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get owner change", err)
	}
	c, err := converter.OwnerChangeFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert owner change", err, infra.KindDBFailure)
	}
	return c, nil
}

func (r *OwnerChangeRepository) List(ctx context.Context, filter shared.OwnerChangeFilter) ([]*ownerchange.OwnerChange, error) {
	rows, err := r.queries.ListOwnerChanges(ctx, r.db, converter.OwnerChangeFilterToParams(filter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner changes", err)
	}
	out := make([]*ownerchange.OwnerChange, 0, len(rows))
	for _, row := range rows {
		c, err := converter.OwnerChangeFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert owner change", err, infra.KindDBFailure)
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *OwnerChangeRepository) Create(ctx context.Context, c *ownerchange.OwnerChange) error {
	if err := r.queries.CreateOwnerChange(ctx, r.db, converter.OwnerChangeToRow(c)); err != nil {
		return infra.WrapRepoErr("failed to create owner change", err)
	}
	return nil
}

func (r *OwnerChangeRepository) Update(ctx context.Context, c *ownerchange.OwnerChange) error {
	n, err := r.queries.UpdateOwnerChange(ctx, r.db, query.UpdateOwnerChangeParams{
		ID:        c.ID(),
		StartTime: pgconv.TimeToPgtype(c.Slot().Start()),
		EndTime:   pgconv.TimeToPgtype(c.Slot().End()),
		Status:    c.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(c.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update owner change", err)
	}
	if n == 0 {
		return infra.NotFound("owner change not found")
	}
	return nil
}

func (r *OwnerChangeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteOwnerChange(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete owner change", err)
	}
	if n == 0 {
		return infra.NotFound("owner change not found")
	}
	return nil
}
