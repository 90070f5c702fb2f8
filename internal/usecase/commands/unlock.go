package commands

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"casegate/internal/domain/contact"
	"casegate/internal/domain/unlock"
	"casegate/internal/infra"
	"casegate/internal/pkg/clock"
	"casegate/internal/pkg/errs"
)

type RequestUnlockInput struct {
	Email          string
	Name           string
	Organization   string
	CaseStudyID    string
	CaseStudyTitle string
}

type RequestUnlockResult struct {
	AlreadyUnlocked bool
	MessageID       string
}

//go:generate mockgen -source=unlock.go -destination=../../../tests/mock/commands/unlock.go -package=commandsmock
type UnlockCommands interface {
	RequestUnlock(ctx context.Context, input RequestUnlockInput) (*RequestUnlockResult, error)
	MarkRedeemed(ctx context.Context, caseStudyID, rawToken string) (bool, error)
}

type UnlockSettings struct {
	BaseURL string
	// Random feeds token generation; crypto/rand.Reader in production.
	Random io.Reader
}

type unlockUseCaseImpl struct {
	unlocks  UnlockRepository
	contacts ContactRepository
	mailer   Mailer
	limiter  RateLimiter
	clock    clock.Clock
	settings UnlockSettings
}

func NewUnlockUseCase(
	unlocks UnlockRepository,
	contacts ContactRepository,
	mailer Mailer,
	limiter RateLimiter,
	clk clock.Clock,
	settings UnlockSettings,
) UnlockCommands {
	return &unlockUseCaseImpl{
		unlocks:  unlocks,
		contacts: contacts,
		mailer:   mailer,
		limiter:  limiter,
		clock:    clk,
		settings: settings,
	}
}

func (uc *unlockUseCaseImpl) RequestUnlock(ctx context.Context, input RequestUnlockInput) (*RequestUnlockResult, error) {
	requester, contentID, err := validateUnlockInput(input)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	logArgs := []any{
		slog.String("email", requester.Email.Value()),
		slog.String("content_id", contentID.Value()),
	}

	rec, err := uc.unlocks.FindByEmailAndContent(ctx, requester.Email, contentID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		slog.Error("failed to load unlock record", append(logArgs, slog.String("error", err.Error()))...)
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if rec != nil && rec.IsUnlocked() {
		slog.Info("case study already unlocked", logArgs...)
		return &RequestUnlockResult{AlreadyUnlocked: true}, nil
	}

	// only requests that end in an email count against the limit
	if err := checkRateLimit(ctx, uc.limiter, "unlock:"+requester.Email.Value()); err != nil {
		return nil, err
	}

	if rec == nil {
		rec, err = uc.create(ctx, requester.Email, contentID)
		if err != nil {
			slog.Error("failed to create unlock record", append(logArgs, slog.String("error", err.Error()))...)
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if rec.IsUnlocked() {
			slog.Info("case study already unlocked", logArgs...)
			return &RequestUnlockResult{AlreadyUnlocked: true}, nil
		}
	}

	title := strings.TrimSpace(input.CaseStudyTitle)
	if title == "" {
		title = contentID.Value()
	}

	audit := contact.NewUnlockAudit(requester, title, uc.clock.Now())
	if err := uc.contacts.Insert(ctx, audit); err != nil {
		slog.Warn("failed to write unlock audit entry", append(logArgs, slog.String("error", err.Error()))...)
	}

	messageID, err := uc.mailer.SendUnlockLink(ctx, UnlockLinkMail{
		To:             requester.Email.Value(),
		Name:           requester.Name,
		CaseStudyTitle: title,
		RedemptionURL:  rec.RedemptionURL(uc.settings.BaseURL),
	})
	if err != nil {
		slog.Error("failed to send unlock email", append(logArgs, slog.String("error", err.Error()))...)
		return nil, errs.Mark(err, errs.ErrEmailDeliveryFailed)
	}

	slog.Info("unlock link sent", append(logArgs, slog.String("message_id", messageID))...)
	return &RequestUnlockResult{MessageID: messageID}, nil
}

// create inserts a record with a fresh token. Losing the insert race re-reads
// the winner's record once.
func (uc *unlockUseCaseImpl) create(ctx context.Context, email unlock.Email, contentID unlock.ContentID) (*unlock.Record, error) {
	token, err := unlock.NewToken(uc.settings.Random)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate unlock token")
	}

	rec := unlock.NewRecord(email, contentID, token, uc.clock.Now())
	err = uc.unlocks.Insert(ctx, rec)
	if err == nil {
		return rec, nil
	}
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return nil, err
	}

	return uc.unlocks.FindByEmailAndContent(ctx, email, contentID)
}

func (uc *unlockUseCaseImpl) MarkRedeemed(ctx context.Context, caseStudyID, rawToken string) (bool, error) {
	contentID, err := unlock.NewContentID(caseStudyID)
	if err != nil {
		return false, errs.Mark(err, errs.ErrValidation)
	}
	token, err := unlock.ParseToken(rawToken)
	if err != nil {
		return false, errs.Mark(err, errs.ErrValidation)
	}

	marked, err := uc.unlocks.MarkUnlocked(ctx, contentID, token, uc.clock.Now())
	if err != nil {
		slog.Error("failed to mark unlock redeemed",
			slog.String("content_id", contentID.Value()),
			slog.String("error", err.Error()))
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return marked, nil
}

func validateUnlockInput(input RequestUnlockInput) (unlock.Requester, unlock.ContentID, error) {
	// Presence of every required field is checked before any format rule.
	if strings.TrimSpace(input.Email) == "" ||
		strings.TrimSpace(input.Name) == "" ||
		strings.TrimSpace(input.CaseStudyID) == "" {
		return unlock.Requester{}, unlock.ContentID{}, unlock.ErrMissingField
	}

	requester, err := unlock.NewRequester(input.Email, input.Name, input.Organization)
	if err != nil {
		return unlock.Requester{}, unlock.ContentID{}, err
	}
	contentID, err := unlock.NewContentID(input.CaseStudyID)
	if err != nil {
		return unlock.Requester{}, unlock.ContentID{}, err
	}
	return requester, contentID, nil
}

// checkRateLimit fails open when the limiter itself is unavailable.
func checkRateLimit(ctx context.Context, limiter RateLimiter, key string) error {
	if limiter == nil {
		return nil
	}
	allowed, err := limiter.Allow(ctx, key)
	if err != nil {
		slog.Warn("rate limiter unavailable", slog.String("error", err.Error()))
		return nil
	}
	if !allowed {
		return errs.ErrRateLimited
	}
	return nil
}
