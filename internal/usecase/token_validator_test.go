//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"tastybite-booking/internal/pkg/jwt"
	"tastybite-booking/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIdentity(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour)
	validator := usecase.NewTokenValidator(service)

	userID := uuid.New()
	token, err := service.GenerateToken(userID, "Taro Yamada", "taro@example.com", "090-1234-5678")
	require.NoError(t, err)

	t.Run("valid token yields the full identity", func(t *testing.T) {
		identity, err := validator.ValidateToken(token)
		require.NoError(t, err)

		assert.Equal(t, userID, identity.UserID)
		assert.Equal(t, "Taro Yamada", identity.Name)
		assert.Equal(t, "taro@example.com", identity.Email)
		assert.Equal(t, "090-1234-5678", identity.Phone)
		assert.Equal(t, token, identity.Token, "the raw token travels with the identity for upstream calls")
	})

	t.Run("Identify mirrors ValidateToken", func(t *testing.T) {
		identity, err := validator.Identify(token)
		require.NoError(t, err)
		assert.Equal(t, userID, identity.UserID)
	})

	t.Run("identity defaults seed the detail form", func(t *testing.T) {
		identity, err := validator.ValidateToken(token)
		require.NoError(t, err)

		defaults := identity.GuestDefaults()
		assert.Equal(t, "Taro Yamada", defaults.FullName)
		assert.Equal(t, "090-1234-5678", defaults.Phone)
		assert.Equal(t, "taro@example.com", defaults.Email)
		assert.Empty(t, defaults.SpecialRequests)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := validator.ValidateToken("not-a-jwt")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour)
		otherToken, err := other.GenerateToken(userID, "Taro Yamada", "taro@example.com", "")
		require.NoError(t, err)

		_, err = validator.ValidateToken(otherToken)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute)
		expiredToken, err := expired.GenerateToken(userID, "Taro Yamada", "taro@example.com", "")
		require.NoError(t, err)

		_, err = validator.ValidateToken(expiredToken)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
