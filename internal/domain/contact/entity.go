package contact

import (
	"errors"
	"strings"
	"time"

	"casegate/internal/domain/unlock"

	"github.com/google/uuid"
)

var (
	ErrMessageTooLong = errors.New("message exceeds maximum length")
)

const MaxMessageLength = 5000

type Source string

const (
	SourceContactForm     Source = "contact_form"
	SourceCaseStudyUnlock Source = "case_study_unlock"
)

// Request is one inbound lead: either a contact form submission or the audit
// trail entry written next to every case-study unlock request.
type Request struct {
	id           uuid.UUID
	name         string
	email        unlock.Email
	organization string
	phone        string
	message      string
	source       Source
	createdAt    time.Time
}

func NewFormRequest(requester unlock.Requester, phone, message string, now time.Time) (*Request, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, unlock.ErrMissingField
	}
	if len([]rune(message)) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}
	return &Request{
		id:           uuid.New(),
		name:         requester.Name,
		email:        requester.Email,
		organization: requester.Organization,
		phone:        strings.TrimSpace(phone),
		message:      message,
		source:       SourceContactForm,
		createdAt:    now,
	}, nil
}

func NewUnlockAudit(requester unlock.Requester, contentTitle string, now time.Time) *Request {
	return &Request{
		id:           uuid.New(),
		name:         requester.Name,
		email:        requester.Email,
		organization: requester.Organization,
		message:      "Requested access to case study: " + strings.TrimSpace(contentTitle),
		source:       SourceCaseStudyUnlock,
		createdAt:    now,
	}
}

func (r *Request) ID() uuid.UUID        { return r.id }
func (r *Request) Name() string         { return r.name }
func (r *Request) Email() unlock.Email  { return r.email }
func (r *Request) Organization() string { return r.organization }
func (r *Request) Phone() string        { return r.phone }
func (r *Request) Message() string      { return r.message }
func (r *Request) Source() Source       { return r.source }
func (r *Request) CreatedAt() time.Time { return r.createdAt }
