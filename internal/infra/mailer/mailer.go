package mailer

import (
	"context"
	"fmt"

	"casegate/internal/pkg/config"
	"casegate/internal/pkg/errs"
	"casegate/internal/usecase/commands"
)

// Message is a rendered HTML email ready for a driver.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Sender delivers one message and returns the provider's message id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

const (
	DriverResend = "resend"
	DriverSMTP   = "smtp"
)

func NewSender(cfg config.MailConfig) (Sender, error) {
	switch cfg.Driver {
	case DriverResend, "":
		return NewResendSender(cfg)
	case DriverSMTP:
		return NewSMTPSender(cfg)
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Driver)
	}
}

// Service renders the site's transactional emails and hands them to a Sender.
type Service struct {
	sender       Sender
	from         string
	siteName     string
	contactEmail string
}

var _ commands.Mailer = (*Service)(nil)

func NewService(sender Sender, mailCfg config.MailConfig, siteCfg config.SiteConfig) *Service {
	from := mailCfg.From
	if mailCfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", mailCfg.FromName, mailCfg.From)
	}
	return &Service{
		sender:       sender,
		from:         from,
		siteName:     siteCfg.Name,
		contactEmail: siteCfg.ContactEmail,
	}
}

func (s *Service) SendUnlockLink(ctx context.Context, mail commands.UnlockLinkMail) (string, error) {
	html, err := renderUnlockLink(unlockLinkData{
		SiteName:       s.siteName,
		Name:           mail.Name,
		CaseStudyTitle: mail.CaseStudyTitle,
		RedemptionURL:  mail.RedemptionURL,
	})
	if err != nil {
		return "", err
	}

	id, err := s.sender.Send(ctx, Message{
		From:    s.from,
		To:      []string{mail.To},
		Subject: fmt.Sprintf("Your access to %q", mail.CaseStudyTitle),
		HTML:    html,
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to send unlock link")
	}
	return id, nil
}

func (s *Service) SendContactNotice(ctx context.Context, mail commands.ContactNoticeMail) (string, error) {
	html, err := renderContactNotice(contactNoticeData{
		SiteName:     s.siteName,
		Name:         mail.Name,
		Email:        mail.Email,
		Organization: mail.Organization,
		Phone:        mail.Phone,
		Message:      mail.Message,
	})
	if err != nil {
		return "", err
	}

	id, err := s.sender.Send(ctx, Message{
		From:    s.from,
		To:      []string{s.contactEmail},
		Subject: "New contact request from " + mail.Name,
		HTML:    html,
	})
	if err != nil {
		return "", errs.Wrap(err, "failed to send contact notice")
	}
	return id, nil
}
