package request

import (
	"casegate/internal/usecase/commands"
)

type UnlockRequest struct {
	Email          string `json:"email" binding:"required,max=320"`
	Name           string `json:"name" binding:"required,max=200"`
	Organization   string `json:"organization" binding:"max=200"`
	CaseStudyID    string `json:"caseStudyId" binding:"required,contentid"`
	CaseStudyTitle string `json:"caseStudyTitle" binding:"max=300"`
}

func (r *UnlockRequest) ToInput() commands.RequestUnlockInput {
	return commands.RequestUnlockInput{
		Email:          r.Email,
		Name:           r.Name,
		Organization:   r.Organization,
		CaseStudyID:    r.CaseStudyID,
		CaseStudyTitle: r.CaseStudyTitle,
	}
}
