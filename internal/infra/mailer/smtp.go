package mailer

import (
	"context"

	"casegate/internal/pkg/config"
	"casegate/internal/pkg/errs"

	"github.com/wneessen/go-mail"
)

type SMTPSender struct {
	cfg config.MailConfig
}

func NewSMTPSender(cfg config.MailConfig) (*SMTPSender, error) {
	if cfg.SMTPHost == "" {
		return nil, errs.New("SMTP_HOST is required for the smtp mail driver")
	}
	return &SMTPSender{cfg: cfg}, nil
}

// Send returns the generated Message-ID as the message id.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	m := mail.NewMsg()

	if s.cfg.FromName != "" {
		if err := m.FromFormat(s.cfg.FromName, s.cfg.From); err != nil {
			return "", errs.Wrap(err, "setting from address")
		}
	} else if err := m.From(s.cfg.From); err != nil {
		return "", errs.Wrap(err, "setting from address")
	}
	if err := m.To(msg.To...); err != nil {
		return "", errs.Wrap(err, "setting to address")
	}

	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	m.SetMessageID()

	client, err := mail.NewClient(s.cfg.SMTPHost, s.clientOptions()...)
	if err != nil {
		return "", errs.Wrap(err, "creating mail client")
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return "", errs.Wrap(err, "sending email")
	}
	return m.GetMessageID(), nil
}

func (s *SMTPSender) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.cfg.SMTPPort),
	}
	if s.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.cfg.Timeout))
	}

	if s.cfg.SMTPTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
		// 465 is implicit TLS, everything else negotiates STARTTLS
		if s.cfg.SMTPPort == 465 {
			opts = append(opts, mail.WithSSL())
		}
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if s.cfg.SMTPUsername != "" && s.cfg.SMTPPassword != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.SMTPUsername),
			mail.WithPassword(s.cfg.SMTPPassword),
		)
	}
	return opts
}
