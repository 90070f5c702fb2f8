package commands

import (
	"context"
	"log/slog"
	"strings"

	"casegate/internal/domain/contact"
	"casegate/internal/domain/unlock"
	"casegate/internal/pkg/clock"
	"casegate/internal/pkg/errs"

	"github.com/google/uuid"
)

type ContactInput struct {
	Name         string
	Email        string
	Organization string
	Phone        string
	Message      string
}

type ContactResult struct {
	RequestID uuid.UUID
}

//go:generate mockgen -source=contact.go -destination=../../../tests/mock/commands/contact.go -package=commandsmock
type ContactCommands interface {
	Submit(ctx context.Context, input ContactInput, clientKey string) (*ContactResult, error)
}

type contactUseCaseImpl struct {
	contacts ContactRepository
	mailer   Mailer
	limiter  RateLimiter
	clock    clock.Clock
}

func NewContactUseCase(contacts ContactRepository, mailer Mailer, limiter RateLimiter, clk clock.Clock) ContactCommands {
	return &contactUseCaseImpl{
		contacts: contacts,
		mailer:   mailer,
		limiter:  limiter,
		clock:    clk,
	}
}

// Submit stores the request first; the owner notification is best-effort
// because the stored row is already visible to the admin.
func (uc *contactUseCaseImpl) Submit(ctx context.Context, input ContactInput, clientKey string) (*ContactResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Message) == "" {
		return nil, errs.Mark(unlock.ErrMissingField, errs.ErrValidation)
	}
	requester, err := unlock.NewRequester(input.Email, input.Name, input.Organization)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	req, err := contact.NewFormRequest(requester, input.Phone, input.Message, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if err := checkRateLimit(ctx, uc.limiter, "contact:"+clientKey); err != nil {
		return nil, err
	}

	if err := uc.contacts.Insert(ctx, req); err != nil {
		slog.Error("failed to store contact request",
			slog.String("email", requester.Email.Value()),
			slog.String("error", err.Error()))
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if _, err := uc.mailer.SendContactNotice(ctx, ContactNoticeMail{
		Name:         req.Name(),
		Email:        req.Email().Value(),
		Organization: req.Organization(),
		Phone:        req.Phone(),
		Message:      req.Message(),
	}); err != nil {
		slog.Warn("failed to send contact notification",
			slog.String("request_id", req.ID().String()),
			slog.String("error", err.Error()))
	}

	return &ContactResult{RequestID: req.ID()}, nil
}
