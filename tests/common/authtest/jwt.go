//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"lease-engine/internal/pkg/config"
	"lease-engine/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper mints project tokens the way the identity provider would.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, projectID string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, duration).GenerateToken(projectID)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, projectID string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Issuer, -time.Minute).GenerateToken(projectID)
	require.NoError(t, err)
	return token
}
