package entities

import (
	"strings"
	"time"

	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

// Activity categories.
const (
	ActivitySightseeing   = "sightseeing"
	ActivityFood          = "food"
	ActivityAdventure     = "adventure"
	ActivityCultural      = "cultural"
	ActivityRelaxation    = "relaxation"
	ActivityShopping      = "shopping"
	ActivityEntertainment = "entertainment"
	ActivityOther         = "other"
)

var activityCategories = map[string]bool{
	ActivitySightseeing:   true,
	ActivityFood:          true,
	ActivityAdventure:     true,
	ActivityCultural:      true,
	ActivityRelaxation:    true,
	ActivityShopping:      true,
	ActivityEntertainment: true,
	ActivityOther:         true,
}

// Activity is a planned activity attached to a trip. EndDateTime is
// optional; an activity may be an instant in time.
type Activity struct {
	ID               string     `json:"id" db:"id"`
	Title            string     `json:"title" db:"title"`
	Description      string     `json:"description,omitempty" db:"description"`
	Category         string     `json:"category" db:"category"`
	Location         Place      `json:"location" db:"-"`
	StartDateTime    time.Time  `json:"start_datetime" db:"start_datetime"`
	EndDateTime      *time.Time `json:"end_datetime,omitempty" db:"end_datetime"`
	Price            Money      `json:"price" db:"-"`
	BookingReference string     `json:"booking_reference,omitempty" db:"booking_reference"`
	Notes            string     `json:"notes,omitempty" db:"notes"`
	Images           []string   `json:"images,omitempty" db:"images"`
	TripID           string     `json:"trip_id" db:"trip_id"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}

// Duration returns the activity duration in minutes, or zero when no end
// time is set.
func (a *Activity) Duration() int {
	if a.EndDateTime == nil {
		return 0
	}
	return int(a.EndDateTime.Sub(a.StartDateTime).Minutes())
}

// Validate checks required fields, the category enum, and date ordering.
func (a *Activity) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return apperrors.NewValidationError("activity must have a title")
	}
	if !activityCategories[a.Category] {
		return apperrors.NewValidationError("activity category must be one of: sightseeing, food, adventure, cultural, relaxation, shopping, entertainment, other")
	}
	if a.StartDateTime.IsZero() {
		return apperrors.NewValidationError("activity must have a start date and time")
	}
	if a.EndDateTime != nil && a.EndDateTime.Before(a.StartDateTime) {
		return apperrors.NewValidationError("end date and time must be after start date and time")
	}
	if a.TripID == "" {
		return apperrors.NewValidationError("activity must belong to a trip")
	}
	return nil
}
