package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

func TestJWTManager_GenerateAndValidate(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-tokens", time.Hour)
	user := &entities.User{ID: "user-1", Email: "test@example.com"}

	token, err := manager.Generate(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
}

func TestJWTManager_Validate_Errors(t *testing.T) {
	manager := NewJWTManager("test-secret-key-for-tokens", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := manager.Validate("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("a-different-secret-entirely", time.Hour)
		token, err := other.Generate(&entities.User{ID: "user-1"})
		require.NoError(t, err)

		_, err = manager.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret-key-for-tokens", -time.Minute)
		token, err := expired.Generate(&entities.User{ID: "user-1"})
		require.NoError(t, err)

		_, err = manager.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword("short"), ErrWeakPassword)
	assert.NoError(t, ValidatePassword("password123"))
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, ComparePassword(hash, "password123"))
	assert.ErrorIs(t, ComparePassword(hash, "wrong-password"), ErrInvalidCredentials)
}
