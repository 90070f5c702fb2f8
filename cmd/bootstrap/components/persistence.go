package components

import (
	"casegate/internal/infra/db"
	"casegate/internal/infra/readstore"
	"casegate/internal/infra/repository"
	"casegate/internal/usecase/commands"
	"casegate/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUnlockReadStore,
			fx.As(new(queries.UnlockReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUnlockRepository,
			fx.As(new(commands.UnlockRepository)),
		),
		fx.Annotate(
			repository.NewContactRepository,
			fx.As(new(commands.ContactRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
