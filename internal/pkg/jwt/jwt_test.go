//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"casegate/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret")

	token, err := svc.GenerateToken("operator-1", jwt.RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator-1", claims.Subject)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
}

func TestService_Rejects(t *testing.T) {
	svc := jwt.NewService("secret")

	t.Run("expired", func(t *testing.T) {
		token, err := svc.GenerateToken("operator-1", jwt.RoleAdmin, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := jwt.NewService("other").GenerateToken("operator-1", jwt.RoleAdmin, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.jwt")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
