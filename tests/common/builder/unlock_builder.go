//go:build unit || e2e

package builder

import (
	"strings"
	"time"

	"casegate/internal/domain/unlock"
	reqdto "casegate/internal/handler/dto/request"
	"casegate/internal/usecase/queries"

	"github.com/google/uuid"
)

type UnlockBuilder struct {
	ID             uuid.UUID
	Email          string
	Name           string
	Organization   string
	CaseStudyID    string
	CaseStudyTitle string
	Token          string
	UnlockedAt     *time.Time
	CreatedAt      time.Time
}

func NewUnlockBuilder() *UnlockBuilder {
	return &UnlockBuilder{
		ID:             uuid.New(),
		Email:          "a@b.de",
		Name:           "A",
		CaseStudyID:    "cs1",
		CaseStudyTitle: "T",
		Token:          strings.Repeat("0123456789abcdef", 4),
		CreatedAt:      time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (b *UnlockBuilder) With(mutate func(*UnlockBuilder)) *UnlockBuilder {
	mutate(b)
	return b
}

func (b *UnlockBuilder) Unlocked(at time.Time) *UnlockBuilder {
	b.UnlockedAt = &at
	return b
}

func (b *UnlockBuilder) BuildRequest() reqdto.UnlockRequest {
	return reqdto.UnlockRequest{
		Email:          b.Email,
		Name:           b.Name,
		Organization:   b.Organization,
		CaseStudyID:    b.CaseStudyID,
		CaseStudyTitle: b.CaseStudyTitle,
	}
}

// BuildDomain panics on invalid builder state; tests construct valid records only.
func (b *UnlockBuilder) BuildDomain() *unlock.Record {
	email, err := unlock.NewEmail(b.Email)
	if err != nil {
		panic(err)
	}
	contentID, err := unlock.NewContentID(b.CaseStudyID)
	if err != nil {
		panic(err)
	}
	token, err := unlock.ParseToken(b.Token)
	if err != nil {
		panic(err)
	}
	return unlock.ReconstructRecord(b.ID, email, contentID, token, b.UnlockedAt, b.CreatedAt)
}

func (b *UnlockBuilder) BuildRedemptionView() *queries.RedemptionView {
	return &queries.RedemptionView{
		ID:          b.ID,
		Email:       b.Email,
		CaseStudyID: b.CaseStudyID,
		Token:       b.Token,
		UnlockedAt:  b.UnlockedAt,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *UnlockBuilder) BuildView() queries.UnlockView {
	return queries.UnlockView{
		ID:          b.ID,
		Email:       b.Email,
		CaseStudyID: b.CaseStudyID,
		UnlockedAt:  b.UnlockedAt,
		CreatedAt:   b.CreatedAt,
	}
}
