package unlock

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record grants one requester access to one gated content item. At most one
// exists per (email, content id) and its token never changes.
type Record struct {
	id         uuid.UUID
	email      Email
	contentID  ContentID
	token      Token
	unlockedAt *time.Time
	createdAt  time.Time
}

func NewRecord(email Email, contentID ContentID, token Token, now time.Time) *Record {
	return &Record{
		id:        uuid.New(),
		email:     email,
		contentID: contentID,
		token:     token,
		createdAt: now,
	}
}

func ReconstructRecord(id uuid.UUID, email Email, contentID ContentID, token Token, unlockedAt *time.Time, createdAt time.Time) *Record {
	return &Record{
		id:         id,
		email:      email,
		contentID:  contentID,
		token:      token,
		unlockedAt: unlockedAt,
		createdAt:  createdAt,
	}
}

func (r *Record) ID() uuid.UUID          { return r.id }
func (r *Record) Email() Email           { return r.email }
func (r *Record) ContentID() ContentID   { return r.contentID }
func (r *Record) Token() Token           { return r.token }
func (r *Record) UnlockedAt() *time.Time { return r.unlockedAt }
func (r *Record) CreatedAt() time.Time   { return r.createdAt }
func (r *Record) IsUnlocked() bool       { return r.unlockedAt != nil }

// RedemptionURL is <base>/case-studies/{contentId}?unlock={token}.
func (r *Record) RedemptionURL(baseURL string) string {
	q := url.Values{}
	q.Set("unlock", r.token.Value())
	return strings.TrimSuffix(baseURL, "/") + "/case-studies/" + url.PathEscape(r.contentID.Value()) + "?" + q.Encode()
}
