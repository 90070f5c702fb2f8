package components

import (
	"casegate/internal/handler"
	"casegate/internal/handler/api"
	"casegate/internal/handler/middleware"
	"casegate/internal/pkg/config"
	"casegate/internal/pkg/unlockcache"
	"casegate/internal/usecase/commands"
	"casegate/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewUnlockHandler,
		api.NewContactHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewUnlockHandler(cmds commands.UnlockCommands, q queries.UnlockQueries, cache *unlockcache.Cache, cfg config.Config) *api.UnlockHandler {
	return api.NewUnlockHandler(cmds, q, cache, cfg.Unlock.MarkRedeemed)
}

func NewHandlers(unlock *api.UnlockHandler, contact *api.ContactHandler, admin *api.AdminHandler) handler.Handlers {
	return handler.Handlers{Unlock: unlock, Contact: contact, Admin: admin}
}
