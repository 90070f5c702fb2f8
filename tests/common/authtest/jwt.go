//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"casegate/internal/pkg/config"
	"casegate/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.AdminConfig
}

func NewJWTHelper(cfg config.AdminConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject, role string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.JWTSecret).GenerateToken(subject, role, time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) AdminToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, "admin@example.com", jwt.RoleAdmin)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject, role string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.JWTSecret).GenerateToken(subject, role, -time.Minute)
	require.NoError(t, err)
	return token
}
