package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/VijeyRoshan/VoyaGo/internal/application/services"
	"github.com/VijeyRoshan/VoyaGo/internal/auth"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

func newAuthService(repo *MockUserRepository) *services.AuthService {
	return services.NewAuthService(repo, auth.NewJWTManager("test-secret-key-for-tokens", time.Hour))
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates account and returns token", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newAuthService(repo)

		repo.On("Create", mock.Anything, mock.AnythingOfType("*entities.User")).Return(nil)

		user, token, err := service.Signup(ctx, services.SignupInput{
			Name:     "Test User",
			Email:    "Test@Example.COM",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, "test@example.com", user.Email)
		assert.NotEqual(t, "password123", user.PasswordHash)
		assert.Equal(t, entities.RoleUser, user.Role)
	})

	t.Run("rejects short password", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newAuthService(repo)

		_, _, err := service.Signup(ctx, services.SignupInput{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "short",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("duplicate email surfaces as validation error", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newAuthService(repo)

		repo.On("Create", mock.Anything, mock.Anything).
			Return(apperrors.NewValidationError("an account with that email already exists"))

		_, _, err := service.Signup(ctx, services.SignupInput{
			Name:     "Test User",
			Email:    "test@example.com",
			Password: "password123",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := auth.HashPassword("password123")
	require.NoError(t, err)
	stored := &entities.User{
		ID:           "user-1",
		Email:        "test@example.com",
		PasswordHash: hash,
		Role:         entities.RoleUser,
	}

	t.Run("valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newAuthService(repo)

		repo.On("GetByEmail", mock.Anything, "test@example.com").Return(stored, nil)

		user, token, err := service.Login(ctx, services.LoginInput{
			Email:    "test@example.com",
			Password: "password123",
		})
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newAuthService(repo)

		repo.On("GetByEmail", mock.Anything, "test@example.com").Return(stored, nil)

		_, _, err := service.Login(ctx, services.LoginInput{
			Email:    "test@example.com",
			Password: "wrong-password",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
	})

	t.Run("unknown account looks identical to wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newAuthService(repo)

		repo.On("GetByEmail", mock.Anything, "nobody@example.com").
			Return(nil, apperrors.NewNotFoundError("no user found"))

		_, _, err := service.Login(ctx, services.LoginInput{
			Email:    "nobody@example.com",
			Password: "password123",
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeUnauthorized))
	})

	t.Run("missing fields", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newAuthService(repo)

		_, _, err := service.Login(ctx, services.LoginInput{})
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})
}
