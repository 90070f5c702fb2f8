package bootstrap

import (
	"casegate/internal/infra/mailer"
	"casegate/internal/pkg/config"
	"casegate/internal/usecase/commands"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewMailSender,
		fx.Annotate(
			NewMailService,
			fx.As(new(commands.Mailer)),
		),
	),
)

func NewMailSender(cfg config.Config) (mailer.Sender, error) {
	return mailer.NewSender(cfg.Mail)
}

func NewMailService(sender mailer.Sender, cfg config.Config) *mailer.Service {
	return mailer.NewService(sender, cfg.Mail, cfg.Site)
}
