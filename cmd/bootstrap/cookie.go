package bootstrap

import (
	"casegate/internal/pkg/config"
	"casegate/internal/pkg/unlockcache"

	"go.uber.org/fx"
)

var CookieModule = fx.Module("cookie",
	fx.Provide(
		NewUnlockCache,
	),
)

func NewUnlockCache(cfg config.Config) (*unlockcache.Cache, error) {
	return unlockcache.New(cfg.Cookie)
}
