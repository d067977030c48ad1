package entities

import (
	"time"

	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

// Transportation types.
const (
	TransportFlight = "flight"
	TransportTrain  = "train"
	TransportBus    = "bus"
	TransportCar    = "car"
	TransportFerry  = "ferry"
	TransportOther  = "other"
)

var transportationTypes = map[string]bool{
	TransportFlight: true,
	TransportTrain:  true,
	TransportBus:    true,
	TransportCar:    true,
	TransportFerry:  true,
	TransportOther:  true,
}

// Place is a named point used for departure and arrival locations.
type Place struct {
	Name    string `json:"name,omitempty" db:"name"`
	Address string `json:"address,omitempty" db:"address"`
}

// Carrier identifies the operating company of a transportation leg.
type Carrier struct {
	Name        string `json:"name,omitempty" db:"name"`
	ContactInfo string `json:"contact_info,omitempty" db:"contact_info"`
}

// Transportation is a travel leg attached to a trip.
type Transportation struct {
	ID                string    `json:"id" db:"id"`
	Type              string    `json:"type" db:"type"`
	DepartureLocation Place     `json:"departure_location" db:"-"`
	ArrivalLocation   Place     `json:"arrival_location" db:"-"`
	DepartureDateTime time.Time `json:"departure_datetime" db:"departure_datetime"`
	ArrivalDateTime   time.Time `json:"arrival_datetime" db:"arrival_datetime"`
	Provider          Carrier   `json:"provider" db:"-"`
	BookingReference  string    `json:"booking_reference,omitempty" db:"booking_reference"`
	Price             Money     `json:"price" db:"-"`
	SeatInfo          string    `json:"seat_info,omitempty" db:"seat_info"`
	Notes             string    `json:"notes,omitempty" db:"notes"`
	TripID            string    `json:"trip_id" db:"trip_id"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
}

// Duration returns the leg duration in minutes.
func (t *Transportation) Duration() int {
	return int(t.ArrivalDateTime.Sub(t.DepartureDateTime).Minutes())
}

// Validate checks the type enum, required timestamps, and their ordering.
func (t *Transportation) Validate() error {
	if t.Type == "" {
		return apperrors.NewValidationError("transportation must have a type")
	}
	if !transportationTypes[t.Type] {
		return apperrors.NewValidationError("transportation type must be one of: flight, train, bus, car, ferry, other")
	}
	if t.DepartureDateTime.IsZero() {
		return apperrors.NewValidationError("transportation must have a departure date and time")
	}
	if t.ArrivalDateTime.IsZero() {
		return apperrors.NewValidationError("transportation must have an arrival date and time")
	}
	if t.ArrivalDateTime.Before(t.DepartureDateTime) {
		return apperrors.NewValidationError("arrival date and time must be after departure date and time")
	}
	if t.TripID == "" {
		return apperrors.NewValidationError("transportation must belong to a trip")
	}
	return nil
}
