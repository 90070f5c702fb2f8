//go:build unit

package middleware_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"casegate/internal/handler/middleware"
	"casegate/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-test-secret"

func newEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	engine := gin.New()
	engine.Use(middleware.RequestLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	engine.Use(middleware.ErrorHandler())

	auth := middleware.NewAuthMiddleware(jwt.NewService(secret))
	engine.GET("/admin", auth.RequireAdmin(), func(c *gin.Context) {
		subject, _ := middleware.GetAdminSubject(c)
		c.JSON(http.StatusOK, gin.H{"subject": subject, "request_id": middleware.GetRequestID(c)})
	})
	engine.GET("/open", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	return engine
}

func serve(engine *gin.Engine, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T, role string, ttl time.Duration) http.Header {
	t.Helper()
	token, err := jwt.NewService(secret).GenerateToken("ops@example.com", role, ttl)
	require.NoError(t, err)
	return http.Header{"Authorization": {"Bearer " + token}}
}

func TestRequestLogger(t *testing.T) {
	engine := newEngine(t)

	t.Run("generates an id and echoes it", func(t *testing.T) {
		w := serve(engine, "/open", nil)

		require.Equal(t, http.StatusOK, w.Code)
		id := w.Header().Get(middleware.RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("keeps a well-formed upstream id", func(t *testing.T) {
		w := serve(engine, "/open", http.Header{middleware.RequestIDHeader: {"edge-1234abcd"}})
		assert.Equal(t, "edge-1234abcd", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("replaces a malformed upstream id", func(t *testing.T) {
		w := serve(engine, "/open", http.Header{middleware.RequestIDHeader: {"<script>"}})
		assert.NotEqual(t, "<script>", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRequireAdmin(t *testing.T) {
	engine := newEngine(t)

	tests := []struct {
		name       string
		header     http.Header
		wantStatus int
		wantError  string
	}{
		{name: "no header", wantStatus: http.StatusUnauthorized, wantError: "Access token required"},
		{name: "not bearer", header: http.Header{"Authorization": {"Basic abc"}}, wantStatus: http.StatusUnauthorized, wantError: "Access token required"},
		{name: "garbage token", header: http.Header{"Authorization": {"Bearer nope"}}, wantStatus: http.StatusUnauthorized, wantError: "Invalid or expired token"},
		{name: "expired", header: bearer(t, jwt.RoleAdmin, -time.Minute), wantStatus: http.StatusUnauthorized, wantError: "Invalid or expired token"},
		{name: "wrong role", header: bearer(t, "viewer", time.Hour), wantStatus: http.StatusForbidden, wantError: "Insufficient permissions"},
		{name: "admin", header: bearer(t, jwt.RoleAdmin, time.Hour), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(engine, "/admin", tt.header)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantError+`"}`, w.Body.String())
				return
			}
			assert.Contains(t, w.Body.String(), `"subject":"ops@example.com"`)
		})
	}
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.GET("/boom", func(*gin.Context) { panic("boom") })

	w := serve(engine, "/boom", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
