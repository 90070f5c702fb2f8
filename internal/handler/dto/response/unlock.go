package response

import (
	"time"

	"casegate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const (
	MessageUnlockSent      = "Unlock link sent to your email"
	MessageAlreadyUnlocked = "Case study already unlocked"
	MessageContactReceived = "Thanks, we will be in touch shortly"
)

type UnlockResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	AlreadyUnlocked bool   `json:"alreadyUnlocked,omitempty"`
	EmailID         string `json:"emailId,omitempty"`
}

type AccessResponse struct {
	Unlocked bool `json:"unlocked"`
}

type ContactResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

type UnlockListItem struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	CaseStudyID string     `json:"caseStudyId"`
	UnlockedAt  *time.Time `json:"unlockedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type UnlockListResponse struct {
	Items []UnlockListItem `json:"items"`
	Count int              `json:"count"`
}

func FromUnlockViews(views []queries.UnlockView) (UnlockListResponse, error) {
	items := make([]UnlockListItem, 0, len(views))
	if err := copier.Copy(&items, &views); err != nil {
		return UnlockListResponse{}, err
	}
	return UnlockListResponse{Items: items, Count: len(items)}, nil
}
