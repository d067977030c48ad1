package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/VijeyRoshan/VoyaGo/internal/application/services"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

func draftTransportation() *entities.Transportation {
	return &entities.Transportation{
		Type:              entities.TransportFlight,
		DepartureDateTime: time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC),
		ArrivalDateTime:   time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestTransportationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("missing trip is a not found", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		repo := new(MockTransportationRepository)
		service := services.NewTransportationService(repo, tripRepo)

		tripRepo.On("GetByID", mock.Anything, "trip-gone").
			Return(nil, apperrors.NewNotFoundError("trip not found"))

		_, err := service.Create(ctx, draftTransportation(), "trip-gone", "owner")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("creates a leg on an owned trip", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		repo := new(MockTransportationRepository)
		service := services.NewTransportationService(repo, tripRepo)

		tripRepo.On("GetByID", mock.Anything, "trip-1").Return(ownedTrip(), nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(tr *entities.Transportation) bool {
			return tr.TripID == "trip-1" && tr.Price.Currency == entities.DefaultCurrency
		})).Return(nil)

		created, err := service.Create(ctx, draftTransportation(), "trip-1", "owner")
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		repo.AssertExpectations(t)
	})
}

func TestTransportationService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("readable by a stranger through a public trip", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		repo := new(MockTransportationRepository)
		service := services.NewTransportationService(repo, tripRepo)

		trip := ownedTrip()
		trip.IsPublic = true
		leg := draftTransportation()
		leg.ID = "transport-1"
		leg.TripID = trip.ID

		repo.On("GetByID", mock.Anything, "transport-1").Return(leg, nil)
		tripRepo.On("GetByID", mock.Anything, trip.ID).Return(trip, nil)

		got, err := service.Get(ctx, "transport-1", "stranger")
		require.NoError(t, err)
		assert.Equal(t, entities.TransportFlight, got.Type)
	})
}
