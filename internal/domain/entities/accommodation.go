package entities

import (
	"strings"
	"time"

	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

// Accommodation types.
const (
	AccommodationHotel      = "hotel"
	AccommodationHostel     = "hostel"
	AccommodationApartment  = "apartment"
	AccommodationResort     = "resort"
	AccommodationGuesthouse = "guesthouse"
	AccommodationOther      = "other"
)

var accommodationTypes = map[string]bool{
	AccommodationHotel:      true,
	AccommodationHostel:     true,
	AccommodationApartment:  true,
	AccommodationResort:     true,
	AccommodationGuesthouse: true,
	AccommodationOther:      true,
}

// Address is a postal address attached to an accommodation.
type Address struct {
	Street  string `json:"street,omitempty" db:"street"`
	City    string `json:"city,omitempty" db:"city"`
	State   string `json:"state,omitempty" db:"state"`
	Country string `json:"country,omitempty" db:"country"`
	ZipCode string `json:"zip_code,omitempty" db:"zip_code"`
}

// Accommodation is a lodging booking attached to a trip.
type Accommodation struct {
	ID                  string    `json:"id" db:"id"`
	Name                string    `json:"name" db:"name"`
	Type                string    `json:"type" db:"type"`
	Address             Address   `json:"address" db:"-"`
	CheckInDate         time.Time `json:"check_in_date" db:"check_in_date"`
	CheckOutDate        time.Time `json:"check_out_date" db:"check_out_date"`
	Price               Money     `json:"price" db:"-"`
	BookingConfirmation string    `json:"booking_confirmation,omitempty" db:"booking_confirmation"`
	Notes               string    `json:"notes,omitempty" db:"notes"`
	Images              []string  `json:"images,omitempty" db:"images"`
	TripID              string    `json:"trip_id" db:"trip_id"`
	CreatedAt           time.Time `json:"created_at" db:"created_at"`
}

// Duration returns the number of nights between check-in and check-out.
func (a *Accommodation) Duration() int {
	return int(a.CheckOutDate.Sub(a.CheckInDate).Hours() / 24)
}

// Validate checks required fields, the type enum, and date ordering.
func (a *Accommodation) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return apperrors.NewValidationError("accommodation must have a name")
	}
	if !accommodationTypes[a.Type] {
		return apperrors.NewValidationError("accommodation type must be one of: hotel, hostel, apartment, resort, guesthouse, other")
	}
	if a.CheckInDate.IsZero() {
		return apperrors.NewValidationError("accommodation must have a check-in date")
	}
	if a.CheckOutDate.IsZero() {
		return apperrors.NewValidationError("accommodation must have a check-out date")
	}
	if a.CheckOutDate.Before(a.CheckInDate) {
		return apperrors.NewValidationError("check-out date must be after check-in date")
	}
	if a.TripID == "" {
		return apperrors.NewValidationError("accommodation must belong to a trip")
	}
	return nil
}
