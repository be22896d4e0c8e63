package readstore

import (
	"context"

	"lease-engine/internal/infra"
	"lease-engine/internal/infra/query"
	"lease-engine/internal/pkg/errs"
	"lease-engine/internal/pkg/pgconv"
	"lease-engine/internal/usecase/shared"
)

type ProjectReadQueries interface {
	GetProject(ctx context.Context, db query.DBTX, ident string) (query.Project, error)
	ListProjectLineage(ctx context.Context, db query.DBTX, projectID string) ([]string, error)
}

type ProjectReadStore struct {
	queries ProjectReadQueries
	db      query.DBTX
}

var _ shared.ProjectResolver = (*ProjectReadStore)(nil)

func NewProjectReadStore(queries ProjectReadQueries, db query.DBTX) *ProjectReadStore {
	return &ProjectReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProjectReadStore) Canonical(ctx context.Context, ident string) (string, error) {
	row, err := r.queries.GetProject(ctx, r.db, ident)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", errs.Mark(
				infra.WrapRepoErr("project "+ident+" not found", err, infra.KindNotFound),
				errs.ErrProjectNotFound,
			)
		}
		return "", infra.WrapRepoErr("failed to resolve project", err)
	}
	return row.ID, nil
}

func (r *ProjectReadStore) Lineage(ctx context.Context, projectID string) ([]string, error) {
	ids, err := r.queries.ListProjectLineage(ctx, r.db, projectID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list project lineage", err)
	}
	if len(ids) == 0 {
		return nil, errs.Mark(infra.NotFound("project "+projectID+" not found"), errs.ErrProjectNotFound)
	}
	return ids, nil
}
