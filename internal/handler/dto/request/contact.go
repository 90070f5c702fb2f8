package request

import (
	"casegate/internal/usecase/commands"
)

type ContactRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	Email        string `json:"email" binding:"required,max=320"`
	Organization string `json:"organization" binding:"max=200"`
	Phone        string `json:"phone" binding:"max=50"`
	Message      string `json:"message" binding:"required,max=5000"`
}

func (r *ContactRequest) ToInput() commands.ContactInput {
	return commands.ContactInput{
		Name:         r.Name,
		Email:        r.Email,
		Organization: r.Organization,
		Phone:        r.Phone,
		Message:      r.Message,
	}
}
