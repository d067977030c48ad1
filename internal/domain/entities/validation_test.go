package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

var (
	day1 = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	day5 = time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
)

func validTrip() *entities.Trip {
	return &entities.Trip{
		Title:       "Paris",
		Destination: "Paris",
		StartDate:   day1,
		EndDate:     day5,
		UserID:      "user-1",
	}
}

func TestTripValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*entities.Trip)
		wantErr string
	}{
		{"valid", func(tr *entities.Trip) {}, ""},
		{"same-day trip is valid", func(tr *entities.Trip) { tr.EndDate = tr.StartDate }, ""},
		{"missing title", func(tr *entities.Trip) { tr.Title = "  " }, "title"},
		{"missing destination", func(tr *entities.Trip) { tr.Destination = "" }, "destination"},
		{"missing start date", func(tr *entities.Trip) { tr.StartDate = time.Time{} }, "start date"},
		{"missing end date", func(tr *entities.Trip) { tr.EndDate = time.Time{} }, "end date"},
		{"end before start", func(tr *entities.Trip) { tr.EndDate = day1.AddDate(0, 0, -1) }, "end date must be after start date"},
		{"missing user", func(tr *entities.Trip) { tr.UserID = "" }, "belong to a user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := validTrip()
			tt.mutate(trip)
			err := trip.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTripDuration(t *testing.T) {
	trip := validTrip()
	assert.Equal(t, 5, trip.Duration())

	trip.EndDate = trip.StartDate
	assert.Equal(t, 1, trip.Duration())
}

func TestAccommodationValidate(t *testing.T) {
	valid := func() *entities.Accommodation {
		return &entities.Accommodation{
			Name:         "Central Hotel",
			Type:         entities.AccommodationHotel,
			CheckInDate:  day1,
			CheckOutDate: day5,
			TripID:       "trip-1",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*entities.Accommodation)
		wantErr string
	}{
		{"valid", func(a *entities.Accommodation) {}, ""},
		{"missing name", func(a *entities.Accommodation) { a.Name = "" }, "name"},
		{"bad type", func(a *entities.Accommodation) { a.Type = "treehouse" }, "type must be one of"},
		{"missing check-in", func(a *entities.Accommodation) { a.CheckInDate = time.Time{} }, "check-in"},
		{"check-out before check-in", func(a *entities.Accommodation) { a.CheckOutDate = day1.AddDate(0, 0, -2) }, "check-out date must be after"},
		{"missing trip", func(a *entities.Accommodation) { a.TripID = "" }, "belong to a trip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid()
			tt.mutate(a)
			err := a.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTransportationValidate(t *testing.T) {
	dep := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	valid := func() *entities.Transportation {
		return &entities.Transportation{
			Type:              entities.TransportFlight,
			DepartureDateTime: dep,
			ArrivalDateTime:   dep.Add(2 * time.Hour),
			TripID:            "trip-1",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*entities.Transportation)
		wantErr string
	}{
		{"valid", func(tr *entities.Transportation) {}, ""},
		{"missing type", func(tr *entities.Transportation) { tr.Type = "" }, "must have a type"},
		{"bad type", func(tr *entities.Transportation) { tr.Type = "rocket" }, "type must be one of"},
		{"arrival before departure", func(tr *entities.Transportation) { tr.ArrivalDateTime = dep.Add(-time.Hour) }, "arrival date and time must be after"},
		{"missing trip", func(tr *entities.Transportation) { tr.TripID = "" }, "belong to a trip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := valid()
			tt.mutate(tr)
			err := tr.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestActivityValidate(t *testing.T) {
	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	valid := func() *entities.Activity {
		return &entities.Activity{
			Title:         "Louvre visit",
			Category:      entities.ActivityCultural,
			StartDateTime: start,
			TripID:        "trip-1",
		}
	}

	t.Run("valid without end time", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("valid with end time", func(t *testing.T) {
		a := valid()
		end := start.Add(2 * time.Hour)
		a.EndDateTime = &end
		assert.NoError(t, a.Validate())
		assert.Equal(t, 120, a.Duration())
	})

	t.Run("end before start", func(t *testing.T) {
		a := valid()
		end := start.Add(-time.Hour)
		a.EndDateTime = &end
		err := a.Validate()
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})

	t.Run("bad category", func(t *testing.T) {
		a := valid()
		a.Category = "skydiving"
		err := a.Validate()
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})

	t.Run("no end time means zero duration", func(t *testing.T) {
		assert.Equal(t, 0, valid().Duration())
	})
}

func TestUserValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		u := &entities.User{Name: "Test User", Email: "test@example.com", Role: entities.RoleUser}
		assert.NoError(t, u.Validate())
	})

	t.Run("missing email", func(t *testing.T) {
		u := &entities.User{Name: "Test User", Role: entities.RoleUser}
		err := u.Validate()
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})

	t.Run("bad role", func(t *testing.T) {
		u := &entities.User{Name: "Test User", Email: "t@e.com", Role: "root"}
		err := u.Validate()
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "test@example.com", entities.NormalizeEmail("  Test@Example.COM "))
}
