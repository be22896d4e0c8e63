package readstore

import (
	"context"

	"lease-engine/internal/domain/resource"
	"lease-engine/internal/infra"
	"lease-engine/internal/infra/query"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/pkg/pgconv"
	"lease-engine/internal/usecase/shared"
)

type ResourceReadQueries interface {
	GetResource(ctx context.Context, db query.DBTX, resourceType, ident string) (query.Resource, error)
}

// ResourceReadStore resolves resources against the local inventory table.
type ResourceReadStore struct {
	queries ResourceReadQueries
	db      query.DBTX
}

var _ shared.ResourceResolver = (*ResourceReadStore)(nil)

func NewResourceReadStore(queries ResourceReadQueries, db query.DBTX) *ResourceReadStore {
	return &ResourceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResourceReadStore) Resolve(ctx context.Context, resourceType, ident string) (*resource.Resource, error) {
	if _, err := resource.NewRef(resourceType, ident); err != nil {
		return nil, err
	}
	row, err := r.queries.GetResource(ctx, r.db, resourceType, ident)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(
				infra.WrapRepoErr("resource "+resourceType+"/"+ident+" not found", err, infra.KindNotFound),
				errs.ErrResourceNotFound,
			)
		}
		return nil, infra.WrapRepoErr("failed to resolve resource", err)
	}
	ref := resource.Ref{Type: row.ResourceType, ID: row.ResourceID}
	return resource.NewResource(ref, row.Name, row.OwnerProjectID), nil
}
