package bootstrap

import (
	"casegate/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Infra wires every external dependency except configuration and the database
// pool, which tests replace.
var Infra = fx.Options(
	LoggerModule,
	JWTModule,
	MailerModule,
	RateLimitModule,
	CookieModule,
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	Infra,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
