package unlock

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrInvalidContentID = errors.New("invalid content id")
	ErrInvalidToken     = errors.New("invalid unlock token")
)

// TokenBytes is the amount of randomness behind a token.
const TokenBytes = 32

var (
	emailRegex     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	contentIDRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{0,127}$`)
	tokenRegex     = regexp.MustCompile(`^[0-9a-f]{64}$`)
)

type Email struct {
	value string
}

// NewEmail trims and lower-cases the address so one person maps to one
// unlock record per content item regardless of how they type it.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Email{}, ErrMissingField
	}
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

func (e Email) String() string {
	return e.value
}

type ContentID struct {
	value string
}

func NewContentID(s string) (ContentID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ContentID{}, ErrMissingField
	}
	if !contentIDRegex.MatchString(s) {
		return ContentID{}, ErrInvalidContentID
	}
	return ContentID{value: s}, nil
}

func IsValidContentID(s string) bool {
	return contentIDRegex.MatchString(s)
}

func (c ContentID) Value() string {
	return c.value
}

func (c ContentID) String() string {
	return c.value
}

// Token is the bearer secret mailed to a requester. 64 lowercase hex chars.
type Token struct {
	value string
}

func NewToken(random io.Reader) (Token, error) {
	buf := make([]byte, TokenBytes)
	if _, err := io.ReadFull(random, buf); err != nil {
		return Token{}, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return Token{value: hex.EncodeToString(buf)}, nil
}

// ParseToken accepts only the exact canonical form; no trimming or case folding.
func ParseToken(s string) (Token, error) {
	if !tokenRegex.MatchString(s) {
		return Token{}, ErrInvalidToken
	}
	return Token{value: s}, nil
}

func (t Token) Value() string {
	return t.value
}

func (t Token) IsZero() bool {
	return t.value == ""
}

func (t Token) Equal(other Token) bool {
	return subtle.ConstantTimeCompare([]byte(t.value), []byte(other.value)) == 1
}

// String never exposes the secret so tokens can't leak through %v in logs.
func (t Token) String() string {
	if t.value == "" {
		return ""
	}
	return "[redacted]"
}

type Requester struct {
	Email        Email
	Name         string
	Organization string
}

func NewRequester(email, name, organization string) (Requester, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Requester{}, ErrMissingField
	}
	e, err := NewEmail(email)
	if err != nil {
		return Requester{}, err
	}
	return Requester{
		Email:        e,
		Name:         name,
		Organization: strings.TrimSpace(organization),
	}, nil
}
