package entities

import (
	"strings"
	"time"

	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

// User roles. Role is informational; all in-scope authorization is
// ownership-based.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account. PasswordHash never leaves the
// server: it is excluded from JSON and only compared through bcrypt.
type User struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// NormalizeEmail lowercases and trims an email address for unique storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Validate checks required user fields.
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return apperrors.NewValidationError("a user must have a name")
	}
	if NormalizeEmail(u.Email) == "" {
		return apperrors.NewValidationError("a user must have an email")
	}
	if u.Role != RoleUser && u.Role != RoleAdmin {
		return apperrors.NewValidationError("role must be one of: user, admin")
	}
	return nil
}
