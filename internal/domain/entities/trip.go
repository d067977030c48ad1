package entities

import (
	"strings"
	"time"

	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

// Money is an amount in a currency. The zero value means "not priced".
type Money struct {
	Amount   float64 `json:"amount" db:"amount"`
	Currency string  `json:"currency" db:"currency"`
}

// DefaultCurrency is applied when a payload carries an amount without a
// currency code.
const DefaultCurrency = "USD"

// Trip is the top-level planning unit. It is owned by exactly one user;
// children (accommodations, transportation, activities) reference it and
// derive all authorization from its owner.
type Trip struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description,omitempty" db:"description"`
	Destination string    `json:"destination" db:"destination"`
	StartDate   time.Time `json:"start_date" db:"start_date"`
	EndDate     time.Time `json:"end_date" db:"end_date"`
	CoverImage  string    `json:"cover_image,omitempty" db:"cover_image"`
	Budget      Money     `json:"budget" db:"-"`
	IsPublic    bool      `json:"is_public" db:"is_public"`
	UserID      string    `json:"user_id" db:"user_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Duration returns the trip length in days, inclusive of both endpoints.
func (t *Trip) Duration() int {
	return int(t.EndDate.Sub(t.StartDate).Hours()/24) + 1
}

// Validate checks required fields and the date ordering invariant.
func (t *Trip) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return apperrors.NewValidationError("a trip must have a title")
	}
	if strings.TrimSpace(t.Destination) == "" {
		return apperrors.NewValidationError("a trip must have a destination")
	}
	if t.StartDate.IsZero() {
		return apperrors.NewValidationError("a trip must have a start date")
	}
	if t.EndDate.IsZero() {
		return apperrors.NewValidationError("a trip must have an end date")
	}
	if t.EndDate.Before(t.StartDate) {
		return apperrors.NewValidationError("end date must be after start date")
	}
	if t.UserID == "" {
		return apperrors.NewValidationError("a trip must belong to a user")
	}
	return nil
}
