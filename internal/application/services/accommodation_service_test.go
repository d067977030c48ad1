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

func draftAccommodation() *entities.Accommodation {
	return &entities.Accommodation{
		Name:         "Alfama Boutique",
		CheckInDate:  time.Date(2026, 7, 1, 15, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 7, 10, 11, 0, 0, 0, time.UTC),
	}
}

func TestAccommodationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults type and currency on an owned trip", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		repo := new(MockAccommodationRepository)
		service := services.NewAccommodationService(repo, tripRepo)

		tripRepo.On("GetByID", mock.Anything, "trip-1").Return(ownedTrip(), nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(a *entities.Accommodation) bool {
			return a.Type == entities.AccommodationHotel &&
				a.Price.Currency == entities.DefaultCurrency &&
				a.TripID == "trip-1" &&
				a.ID != ""
		})).Return(nil)

		created, err := service.Create(ctx, draftAccommodation(), "trip-1", "owner")
		require.NoError(t, err)
		assert.Equal(t, entities.AccommodationHotel, created.Type)
		repo.AssertExpectations(t)
	})

	t.Run("missing trip is a not found, not a forbidden", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		repo := new(MockAccommodationRepository)
		service := services.NewAccommodationService(repo, tripRepo)

		tripRepo.On("GetByID", mock.Anything, "trip-gone").
			Return(nil, apperrors.NewNotFoundError("trip not found"))

		_, err := service.Create(ctx, draftAccommodation(), "trip-gone", "owner")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("someone else's trip is forbidden", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		repo := new(MockAccommodationRepository)
		service := services.NewAccommodationService(repo, tripRepo)

		tripRepo.On("GetByID", mock.Anything, "trip-1").Return(ownedTrip(), nil)

		_, err := service.Create(ctx, draftAccommodation(), "trip-1", "stranger")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAccommodationService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("readable by a stranger through a public trip", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		repo := new(MockAccommodationRepository)
		service := services.NewAccommodationService(repo, tripRepo)

		trip := ownedTrip()
		trip.IsPublic = true
		accommodation := draftAccommodation()
		accommodation.ID = "acc-1"
		accommodation.TripID = trip.ID
		accommodation.Type = entities.AccommodationHotel

		repo.On("GetByID", mock.Anything, "acc-1").Return(accommodation, nil)
		tripRepo.On("GetByID", mock.Anything, trip.ID).Return(trip, nil)

		got, err := service.Get(ctx, "acc-1", "stranger")
		require.NoError(t, err)
		assert.Equal(t, "Alfama Boutique", got.Name)
	})
}

func TestAccommodationService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("second delete reports not found", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		repo := new(MockAccommodationRepository)
		service := services.NewAccommodationService(repo, tripRepo)

		accommodation := draftAccommodation()
		accommodation.ID = "acc-1"
		accommodation.TripID = "trip-1"

		repo.On("GetByID", mock.Anything, "acc-1").Return(accommodation, nil).Once()
		tripRepo.On("GetByID", mock.Anything, "trip-1").Return(ownedTrip(), nil)
		repo.On("Delete", mock.Anything, "acc-1").Return(nil).Once()

		require.NoError(t, service.Delete(ctx, "acc-1", "owner"))

		repo.On("GetByID", mock.Anything, "acc-1").
			Return(nil, apperrors.NewNotFoundError("accommodation not found"))

		err := service.Delete(ctx, "acc-1", "owner")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	})
}
