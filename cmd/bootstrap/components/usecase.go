package components

import (
	"crypto/rand"

	"casegate/internal/pkg/clock"
	"casegate/internal/pkg/config"
	"casegate/internal/usecase/commands"
	"casegate/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewUnlockSettings,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewUnlockUseCase,
		commands.NewContactUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUnlockQueries,
	),
)

func NewUnlockSettings(cfg config.Config) commands.UnlockSettings {
	return commands.UnlockSettings{
		BaseURL: cfg.Site.BaseURL,
		Random:  rand.Reader,
	}
}
