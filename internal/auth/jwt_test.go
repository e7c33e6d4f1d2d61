package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTManager(t *testing.T) {
	manager := NewJWTManager("test-secret", 15*time.Minute)

	t.Run("roundtrip", func(t *testing.T) {
		token, err := manager.GenerateAccessToken("user-123", "user@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := manager.ParseAndValidate(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
		assert.Equal(t, "user@example.com", claims.Email)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", 15*time.Minute)
		token, err := other.GenerateAccessToken("user-123", "user@example.com")
		require.NoError(t, err)

		_, err = manager.ParseAndValidate(token)
		assert.Error(t, err)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -1*time.Minute)
		token, err := expired.GenerateAccessToken("user-123", "user@example.com")
		require.NoError(t, err)

		_, err = manager.ParseAndValidate(token)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := manager.ParseAndValidate("not-a-jwt")
		assert.Error(t, err)
	})
}
