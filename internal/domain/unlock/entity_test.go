//go:build unit

package unlock_test

import (
	"strings"
	"testing"
	"time"

	"casegate/internal/domain/unlock"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecordParts(t *testing.T, email, contentID, token string) (unlock.Email, unlock.ContentID, unlock.Token) {
	t.Helper()
	e, err := unlock.NewEmail(email)
	require.NoError(t, err)
	c, err := unlock.NewContentID(contentID)
	require.NoError(t, err)
	tok, err := unlock.ParseToken(token)
	require.NoError(t, err)
	return e, c, tok
}

func TestRecord(t *testing.T) {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	token := strings.Repeat("c0ffee", 10) + "abcd"

	t.Run("new record is pending", func(t *testing.T) {
		e, c, tok := mustRecordParts(t, "a@b.de", "cs1", token)
		rec := unlock.NewRecord(e, c, tok, now)

		assert.NotEqual(t, uuid.Nil, rec.ID())
		assert.False(t, rec.IsUnlocked())
		assert.Nil(t, rec.UnlockedAt())
		assert.Equal(t, now, rec.CreatedAt())
		assert.True(t, rec.Token().Equal(tok))
	})

	t.Run("reconstructed record keeps redemption time", func(t *testing.T) {
		e, c, tok := mustRecordParts(t, "a@b.de", "cs1", token)
		unlockedAt := now.Add(time.Hour)
		id := uuid.New()
		rec := unlock.ReconstructRecord(id, e, c, tok, &unlockedAt, now)

		assert.True(t, rec.IsUnlocked())
		assert.Equal(t, id, rec.ID())
		if diff := cmp.Diff(&unlockedAt, rec.UnlockedAt()); diff != "" {
			t.Errorf("UnlockedAt mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRecord_RedemptionURL(t *testing.T) {
	token := strings.Repeat("0123456789abcdef", 4)
	e, c, tok := mustRecordParts(t, "a@b.de", "cs1", token)
	rec := unlock.NewRecord(e, c, tok, time.Now())

	testCases := []struct {
		name    string
		baseURL string
		want    string
	}{
		{name: "plain base", baseURL: "https://example.com", want: "https://example.com/case-studies/cs1?unlock=" + token},
		{name: "trailing slash trimmed", baseURL: "https://example.com/", want: "https://example.com/case-studies/cs1?unlock=" + token},
		{name: "base with path", baseURL: "https://example.com/de", want: "https://example.com/de/case-studies/cs1?unlock=" + token},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rec.RedemptionURL(tc.baseURL))
		})
	}
}
