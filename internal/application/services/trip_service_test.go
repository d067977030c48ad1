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
	"github.com/VijeyRoshan/VoyaGo/internal/domain/providers"
	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

func ownedTrip() *entities.Trip {
	return &entities.Trip{
		ID:          "trip-1",
		Title:       "Summer in Lisbon",
		Destination: "Lisbon, Portugal",
		StartDate:   time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		Budget:      entities.Money{Amount: 1500, Currency: "EUR"},
		UserID:      "owner",
	}
}

func newTripService(tripRepo *MockTripRepository) *services.TripService {
	return services.NewTripService(tripRepo, nil, nil, nil, nil, nil)
}

func TestTripService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("forces owner and defaults from session", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		cache := new(MockCacheProvider)
		service := services.NewTripService(tripRepo, nil, nil, nil, cache, nil)

		tripRepo.On("Create", mock.Anything, mock.AnythingOfType("*entities.Trip")).Return(nil)
		cache.On("Delete", mock.Anything, "trips:public").Return(nil)

		trip := ownedTrip()
		trip.ID = ""
		trip.UserID = "someone-else"
		trip.Budget.Currency = ""

		created, err := service.Create(ctx, trip, "owner")
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "owner", created.UserID)
		assert.Equal(t, entities.DefaultCurrency, created.Budget.Currency)
		tripRepo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("rejects invalid date range", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		service := newTripService(tripRepo)

		trip := ownedTrip()
		trip.EndDate = trip.StartDate.AddDate(0, 0, -1)

		_, err := service.Create(ctx, trip, "owner")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		tripRepo.AssertNotCalled(t, "Create")
	})
}

func TestTripService_Get_AccessMatrix(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		isPublic bool
		userID   string
		wantType apperrors.ErrorType
	}{
		{name: "owner reads private trip", isPublic: false, userID: "owner"},
		{name: "stranger reads public trip", isPublic: true, userID: "stranger"},
		{name: "stranger blocked from private trip", isPublic: false, userID: "stranger", wantType: apperrors.ErrorTypeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tripRepo := new(MockTripRepository)
			service := newTripService(tripRepo)

			trip := ownedTrip()
			trip.IsPublic = tt.isPublic
			tripRepo.On("GetByID", mock.Anything, "trip-1").Return(trip, nil)

			got, err := service.Get(ctx, "trip-1", tt.userID)
			if tt.wantType != "" {
				require.Error(t, err)
				assert.True(t, apperrors.IsType(err, tt.wantType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, trip.ID, got.ID)
		})
	}

	t.Run("missing trip is not found, not forbidden", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		service := newTripService(tripRepo)

		tripRepo.On("GetByID", mock.Anything, "missing").
			Return(nil, apperrors.NewNotFoundError("no trip found with that ID"))

		_, err := service.Get(ctx, "missing", "stranger")
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	})
}

func TestTripService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("merges partial change", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		cache := new(MockCacheProvider)
		service := services.NewTripService(tripRepo, nil, nil, nil, cache, nil)

		tripRepo.On("GetByID", mock.Anything, "trip-1").Return(ownedTrip(), nil)
		tripRepo.On("Update", mock.Anything, mock.AnythingOfType("*entities.Trip")).Return(nil)
		cache.On("Delete", mock.Anything, "trips:public").Return(nil)

		title := "Autumn in Lisbon"
		isPublic := true
		updated, err := service.Update(ctx, "trip-1", "owner", services.TripUpdate{
			Title:    &title,
			IsPublic: &isPublic,
		})
		require.NoError(t, err)
		assert.Equal(t, "Autumn in Lisbon", updated.Title)
		assert.True(t, updated.IsPublic)
		assert.Equal(t, "Lisbon, Portugal", updated.Destination)
	})

	t.Run("merged result is revalidated", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		service := newTripService(tripRepo)

		tripRepo.On("GetByID", mock.Anything, "trip-1").Return(ownedTrip(), nil)

		badEnd := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		_, err := service.Update(ctx, "trip-1", "owner", services.TripUpdate{EndDate: &badEnd})
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeValidation))
		tripRepo.AssertNotCalled(t, "Update")
	})

	t.Run("public read access does not allow writes", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		service := newTripService(tripRepo)

		trip := ownedTrip()
		trip.IsPublic = true
		tripRepo.On("GetByID", mock.Anything, "trip-1").Return(trip, nil)

		title := "Hijacked"
		_, err := service.Update(ctx, "trip-1", "stranger", services.TripUpdate{Title: &title})
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeForbidden))
	})
}

func TestTripService_Delete_CascadesChildren(t *testing.T) {
	ctx := context.Background()

	tripRepo := new(MockTripRepository)
	accommodationRepo := new(MockAccommodationRepository)
	transportRepo := new(MockTransportationRepository)
	activityRepo := new(MockActivityRepository)
	cache := new(MockCacheProvider)
	service := services.NewTripService(tripRepo, accommodationRepo, transportRepo, activityRepo, cache, nil)

	tripRepo.On("GetByID", mock.Anything, "trip-1").Return(ownedTrip(), nil)
	accommodationRepo.On("DeleteByTrip", mock.Anything, "trip-1").Return(nil)
	transportRepo.On("DeleteByTrip", mock.Anything, "trip-1").Return(nil)
	activityRepo.On("DeleteByTrip", mock.Anything, "trip-1").Return(nil)
	tripRepo.On("Delete", mock.Anything, "trip-1").Return(nil)
	cache.On("Delete", mock.Anything, "trips:public").Return(nil)

	require.NoError(t, service.Delete(ctx, "trip-1", "owner"))
	accommodationRepo.AssertExpectations(t)
	transportRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
	tripRepo.AssertExpectations(t)
}

func TestTripService_ListPublic_UsesCache(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss falls through and populates", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		cache := new(MockCacheProvider)
		service := services.NewTripService(tripRepo, nil, nil, nil, cache, nil)

		trip := ownedTrip()
		trip.IsPublic = true
		cache.On("Get", mock.Anything, "trips:public").Return(nil, providers.ErrCacheMiss)
		tripRepo.On("ListPublic", mock.Anything).Return([]*entities.Trip{trip}, nil)
		cache.On("Set", mock.Anything, "trips:public", mock.Anything, 60).Return(nil)

		trips, err := service.ListPublic(ctx)
		require.NoError(t, err)
		require.Len(t, trips, 1)
		cache.AssertExpectations(t)
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		tripRepo := new(MockTripRepository)
		cache := new(MockCacheProvider)
		service := services.NewTripService(tripRepo, nil, nil, nil, cache, nil)

		cache.On("Get", mock.Anything, "trips:public").
			Return([]byte(`[{"id":"trip-1","title":"Summer in Lisbon"}]`), nil)

		trips, err := service.ListPublic(ctx)
		require.NoError(t, err)
		require.Len(t, trips, 1)
		assert.Equal(t, "trip-1", trips[0].ID)
		tripRepo.AssertNotCalled(t, "ListPublic")
	})
}
