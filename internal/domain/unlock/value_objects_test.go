//go:build unit

package unlock_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"strings"
	"testing"

	"casegate/internal/domain/unlock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name  string
	input string
	want  string
	errIs error
}

func TestNewEmail(t *testing.T) {
	runCases(t, func(s string) (string, error) {
		e, err := unlock.NewEmail(s)
		return e.Value(), err
	}, []testCase{
		{name: "simple address OK", input: "a@b.de", want: "a@b.de"},
		{name: "trimmed and lower-cased", input: "  Jane.Doe@Example.COM ", want: "jane.doe@example.com"},
		{name: "plus addressing OK", input: "jane+cases@example.com", want: "jane+cases@example.com"},
		{name: "empty NG", input: "", errIs: unlock.ErrMissingField},
		{name: "whitespace only NG", input: "   ", errIs: unlock.ErrMissingField},
		{name: "no at sign NG", input: "not-an-email", errIs: unlock.ErrInvalidEmail},
		{name: "no tld NG", input: "jane@localhost", errIs: unlock.ErrInvalidEmail},
		{name: "inner whitespace NG", input: "jane doe@example.com", errIs: unlock.ErrInvalidEmail},
		{name: "two at signs NG", input: "a@b@c.de", errIs: unlock.ErrInvalidEmail},
	})
}

func TestNewContentID(t *testing.T) {
	runCases(t, func(s string) (string, error) {
		c, err := unlock.NewContentID(s)
		return c.Value(), err
	}, []testCase{
		{name: "slug OK", input: "cs1", want: "cs1"},
		{name: "uuid OK", input: "3f0b7c1e-8d0a-4c39-9d55-0f0d7a1b2c3d", want: "3f0b7c1e-8d0a-4c39-9d55-0f0d7a1b2c3d"},
		{name: "trimmed", input: " retail-migration ", want: "retail-migration"},
		{name: "empty NG", input: "", errIs: unlock.ErrMissingField},
		{name: "path traversal NG", input: "../admin", errIs: unlock.ErrInvalidContentID},
		{name: "query chars NG", input: "cs1?unlock=x", errIs: unlock.ErrInvalidContentID},
		{name: "too long NG", input: strings.Repeat("a", 129), errIs: unlock.ErrInvalidContentID},
	})
}

func TestNewToken(t *testing.T) {
	t.Run("64 lowercase hex chars from 32 random bytes", func(t *testing.T) {
		tok, err := unlock.NewToken(rand.Reader)
		require.NoError(t, err)
		assert.Len(t, tok.Value(), 64)
		assert.Equal(t, strings.ToLower(tok.Value()), tok.Value())

		parsed, err := unlock.ParseToken(tok.Value())
		require.NoError(t, err)
		assert.True(t, parsed.Equal(tok))
	})

	t.Run("deterministic for a fixed source", func(t *testing.T) {
		tok, err := unlock.NewToken(bytes.NewReader(bytes.Repeat([]byte{0xab}, 32)))
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("ab", 32), tok.Value())
	})

	t.Run("unique across calls", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 20 {
			tok, err := unlock.NewToken(rand.Reader)
			require.NoError(t, err)
			assert.False(t, seen[tok.Value()], "duplicate token generated")
			seen[tok.Value()] = true
		}
	})

	t.Run("short random source fails", func(t *testing.T) {
		_, err := unlock.NewToken(bytes.NewReader([]byte{1, 2, 3}))
		assert.Error(t, err)
	})
}

func TestParseToken(t *testing.T) {
	valid := strings.Repeat("0123456789abcdef", 4)

	runCases(t, func(s string) (string, error) {
		tok, err := unlock.ParseToken(s)
		return tok.Value(), err
	}, []testCase{
		{name: "canonical OK", input: valid, want: valid},
		{name: "uppercase NG", input: strings.ToUpper(valid), errIs: unlock.ErrInvalidToken},
		{name: "one char short NG", input: valid[:63], errIs: unlock.ErrInvalidToken},
		{name: "one char long NG", input: valid + "0", errIs: unlock.ErrInvalidToken},
		{name: "surrounding space NG", input: " " + valid, errIs: unlock.ErrInvalidToken},
		{name: "non hex NG", input: strings.Repeat("g", 64), errIs: unlock.ErrInvalidToken},
		{name: "empty NG", input: "", errIs: unlock.ErrInvalidToken},
	})
}

func TestToken_EqualIsExact(t *testing.T) {
	a, err := unlock.ParseToken(strings.Repeat("a", 64))
	require.NoError(t, err)
	b, err := unlock.ParseToken(strings.Repeat("a", 63) + "b")
	require.NoError(t, err)

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b))
	assert.NotContains(t, a.String(), "aaaa", "String must not leak the secret")
}

func TestNewRequester(t *testing.T) {
	t.Run("trims fields", func(t *testing.T) {
		r, err := unlock.NewRequester(" a@b.de ", "  Ada ", "  Acme ")
		require.NoError(t, err)
		assert.Equal(t, "a@b.de", r.Email.Value())
		assert.Equal(t, "Ada", r.Name)
		assert.Equal(t, "Acme", r.Organization)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := unlock.NewRequester("a@b.de", " ", "")
		assert.ErrorIs(t, err, unlock.ErrMissingField)
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := unlock.NewRequester("not-an-email", "Ada", "")
		assert.ErrorIs(t, err, unlock.ErrInvalidEmail)
	})
}

func runCases(t *testing.T, fn func(string) (string, error), cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fn(tc.input)
			if tc.errIs != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.errIs), "expected %v, got %v", tc.errIs, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
