//go:build e2e

package helper

import (
	"testing"
	"time"

	"tastybite-booking/internal/pkg/config"
	"tastybite-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTTestHelper struct {
	service *jwt.Service
}

func NewJWTTestHelper(t *testing.T, cfg config.JWTConfig) *JWTTestHelper {
	t.Helper()

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err, "JWT有効期間の解析に失敗")

	return &JWTTestHelper{service: jwt.NewService(cfg.Secret, duration)}
}

// IssueToken mints a guest token the way the identity provider would.
func (h *JWTTestHelper) IssueToken(t *testing.T, name, email, phone string) (uuid.UUID, string) {
	t.Helper()

	userID := uuid.New()
	token, err := h.service.GenerateToken(userID, name, email, phone)
	require.NoError(t, err, "テスト用トークンの発行に失敗")
	return userID, token
}
