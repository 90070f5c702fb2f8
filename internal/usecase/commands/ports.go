package commands

import (
	"context"
	"time"

	"casegate/internal/domain/contact"
	"casegate/internal/domain/unlock"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock
type UnlockRepository interface {
	FindByEmailAndContent(ctx context.Context, email unlock.Email, contentID unlock.ContentID) (*unlock.Record, error)
	Insert(ctx context.Context, rec *unlock.Record) error
	MarkUnlocked(ctx context.Context, contentID unlock.ContentID, token unlock.Token, at time.Time) (bool, error)
}

type ContactRepository interface {
	Insert(ctx context.Context, req *contact.Request) error
}

// UnlockLinkMail is everything the mailer needs to render the redemption email.
type UnlockLinkMail struct {
	To             string
	Name           string
	CaseStudyTitle string
	RedemptionURL  string
}

// ContactNoticeMail notifies the site owner about a contact form submission.
type ContactNoticeMail struct {
	Name         string
	Email        string
	Organization string
	Phone        string
	Message      string
}

type Mailer interface {
	SendUnlockLink(ctx context.Context, mail UnlockLinkMail) (messageID string, err error)
	SendContactNotice(ctx context.Context, mail ContactNoticeMail) (messageID string, err error)
}

// RateLimiter answers whether the caller identified by key may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
