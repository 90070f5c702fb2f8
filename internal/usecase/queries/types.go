package queries

import (
	"time"

	"github.com/google/uuid"
)

// RedemptionView is the record a redemption link resolved to.
type RedemptionView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	CaseStudyID string     `json:"case_study_id"`
	Token       string     `json:"-"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// UnlockView is the admin listing row. It never carries the token.
type UnlockView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	CaseStudyID string     `json:"case_study_id"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type UnlockListFilter struct {
	CaseStudyID string
	Limit       int
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

// Normalize clamps the limit to 1..MaxListLimit, defaulting when unset.
func (f UnlockListFilter) Normalize() UnlockListFilter {
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultListLimit
	case f.Limit > MaxListLimit:
		f.Limit = MaxListLimit
	}
	return f
}
