//go:build unit

package middleware_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"group-deal-engine/internal/domain/user"
	"group-deal-engine/internal/handler/middleware"
	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/pkg/jwt"
	"group-deal-engine/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEngine(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("middleware-secret", "group-deal-engine", time.Hour, clock.NewRealClock())
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	r := gin.New()
	whoami := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": string(role)})
	}
	r.GET("/me", auth.RequireAuth(), whoami)
	r.GET("/admin", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleAdmin), whoami)
	return r, svc
}

func do(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestRequireAuth(t *testing.T) {
	r, svc := newAuthEngine(t)

	t.Run("missing token", func(t *testing.T) {
		w := do(r, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Access token required", errorOf(t, w))
	})

	t.Run("invalid token", func(t *testing.T) {
		w := do(r, "/me", "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid or expired token", errorOf(t, w))
	})

	t.Run("valid token sets the principal", func(t *testing.T) {
		id := uuid.New()
		token, err := svc.Sign(id, user.RoleMember)
		require.NoError(t, err)

		w := do(r, "/me", token)
		require.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, id.String(), body["user_id"])
		assert.Equal(t, "member", body["role"])
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	r, svc := newAuthEngine(t)

	tests := []struct {
		name string
		role user.Role
		code int
	}{
		{name: "member is forbidden", role: user.RoleMember, code: http.StatusForbidden},
		{name: "admin passes", role: user.RoleAdmin, code: http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			token, err := svc.Sign(uuid.New(), tc.role)
			require.NoError(t, err)
			assert.Equal(t, tc.code, do(r, "/admin", token).Code)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(slog.New(slog.DiscardHandler)))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("propagates the caller's request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "req-123", w.Body.String())
	})

	t.Run("generates one when absent", func(t *testing.T) {
		w := do(r, "/ping", "")
		id := w.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})
}
