package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/VijeyRoshan/VoyaGo/internal/auth"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/repositories"
	"github.com/VijeyRoshan/VoyaGo/internal/infrastructure/observability"
)

type contextKey string

const userIDKey contextKey = "userID"

// ContextWithUserID returns a context carrying an authenticated user id.
func ContextWithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user's id, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// AuthMiddleware authenticates requests with a JWT from the
// Authorization header or the jwt cookie.
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	userRepo   repositories.UserRepository
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager, userRepo repositories.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		userRepo:   userRepo,
	}
}

// RequireAuth wraps a handler so it only runs with a valid session. The
// token's user must still exist; a token for a deleted account is
// rejected.
func (m *AuthMiddleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := extractToken(r)
		if token == "" {
			unauthorized(w, auth.ErrMissingToken.Error())
			return
		}

		claims, err := m.jwtManager.Validate(token)
		if err != nil {
			unauthorized(w, "invalid token or session expired")
			return
		}

		if _, err := m.userRepo.GetByID(r.Context(), claims.UserID); err != nil {
			observability.LoggerFromContext(r.Context()).Warn().
				Str("user_id", claims.UserID).
				Msg("token for unknown user rejected")
			unauthorized(w, "the user belonging to this token no longer exists")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
		next(w, r.WithContext(ctx))
	}
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := r.Cookie("jwt"); err == nil {
		return cookie.Value
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "fail",
		"message": message,
	})
}
