package components

import (
	"lease-engine/internal/infra/query"
	"lease-engine/internal/infra/readstore"
	"lease-engine/internal/infra/uow"
	"lease-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Resource inventory
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ResourceReadQueries)),
		),
		fx.Annotate(
			readstore.NewResourceReadStore,
			fx.As(new(shared.ResourceResolver)),
		),
		// Project hierarchy
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProjectReadQueries)),
		),
		fx.Annotate(
			readstore.NewProjectReadStore,
			fx.As(new(shared.ProjectResolver)),
		),
	),
)

// The unit of work builds the offer, lease and owner change repositories
// per transaction.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
