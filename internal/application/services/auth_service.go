package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VijeyRoshan/VoyaGo/internal/auth"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/repositories"
	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

// AuthService handles account signup and login.
type AuthService struct {
	repo       repositories.UserRepository
	jwtManager *auth.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(repo repositories.UserRepository, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

// SignupInput is the payload for creating an account.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput is the payload for logging in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup creates a user account and returns the user with a session
// token. The password never leaves this layer unhashed.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*entities.User, string, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, "", apperrors.NewValidationError("please tell us your name")
	}
	if err := auth.ValidatePassword(input.Password); err != nil {
		return nil, "", apperrors.NewValidationError(err.Error())
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, "", apperrors.NewInternalError("failed to hash password", err)
	}

	user := &entities.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(input.Name),
		Email:        entities.NormalizeEmail(input.Email),
		PasswordHash: hash,
		Role:         entities.RoleUser,
		CreatedAt:    time.Now(),
	}
	if err := user.Validate(); err != nil {
		return nil, "", err
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		return nil, "", apperrors.NewInternalError("failed to generate token", err)
	}

	return user, token, nil
}

// Login verifies credentials and returns the user with a session token.
// A missing account and a wrong password are indistinguishable to the
// caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*entities.User, string, error) {
	if input.Email == "" || input.Password == "" {
		return nil, "", apperrors.NewValidationError("please provide email and password")
	}

	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		if apperrors.IsType(err, apperrors.ErrorTypeNotFound) {
			return nil, "", apperrors.NewUnauthorizedError("incorrect email or password")
		}
		return nil, "", err
	}

	if err := auth.ComparePassword(user.PasswordHash, input.Password); err != nil {
		return nil, "", apperrors.NewUnauthorizedError("incorrect email or password")
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		return nil, "", apperrors.NewInternalError("failed to generate token", err)
	}

	return user, token, nil
}

// GetUser loads a user by id.
func (s *AuthService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	return s.repo.GetByID(ctx, id)
}
