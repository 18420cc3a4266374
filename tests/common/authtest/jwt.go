//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"group-deal-engine/internal/domain/user"
	"group-deal-engine/internal/pkg/clock"
	"group-deal-engine/internal/pkg/config"
	"group-deal-engine/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, h.cfg.Duration, clock.NewRealClock())
	token, err := service.Sign(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs with a clock set far enough in the past that the token is already expired.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-2 * h.cfg.Duration))
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, h.cfg.Duration, past)
	token, err := service.Sign(userID, role)
	require.NoError(t, err)
	return token
}
