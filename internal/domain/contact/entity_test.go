//go:build unit

package contact_test

import (
	"strings"
	"testing"
	"time"

	"casegate/internal/domain/contact"
	"casegate/internal/domain/unlock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requester(t *testing.T) unlock.Requester {
	t.Helper()
	r, err := unlock.NewRequester("a@b.de", "Ada", "Acme")
	require.NoError(t, err)
	return r
}

func TestNewUnlockAudit(t *testing.T) {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	req := contact.NewUnlockAudit(requester(t), "  Retail Migration ", now)

	assert.Equal(t, contact.SourceCaseStudyUnlock, req.Source())
	assert.Equal(t, "Requested access to case study: Retail Migration", req.Message())
	assert.Equal(t, "Ada", req.Name())
	assert.Equal(t, "a@b.de", req.Email().Value())
	assert.Equal(t, "Acme", req.Organization())
	assert.Equal(t, now, req.CreatedAt())
}

func TestNewFormRequest(t *testing.T) {
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		req, err := contact.NewFormRequest(requester(t), " +49 30 1234 ", " Let's talk ", now)
		require.NoError(t, err)
		assert.Equal(t, contact.SourceContactForm, req.Source())
		assert.Equal(t, "Let's talk", req.Message())
		assert.Equal(t, "+49 30 1234", req.Phone())
	})

	t.Run("empty message NG", func(t *testing.T) {
		_, err := contact.NewFormRequest(requester(t), "", "   ", now)
		assert.ErrorIs(t, err, unlock.ErrMissingField)
	})

	t.Run("message length boundary", func(t *testing.T) {
		_, err := contact.NewFormRequest(requester(t), "", strings.Repeat("ä", contact.MaxMessageLength), now)
		assert.NoError(t, err)

		_, err = contact.NewFormRequest(requester(t), "", strings.Repeat("ä", contact.MaxMessageLength+1), now)
		assert.ErrorIs(t, err, contact.ErrMessageTooLong)
	})
}
