package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/providers"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/repositories"
	"github.com/VijeyRoshan/VoyaGo/internal/infrastructure/observability"
)

const (
	publicTripsCacheKey = "trips:public"
	publicTripsCacheTTL = 60 // seconds
)

// TripService handles trip CRUD and ownership rules.
type TripService struct {
	repo              repositories.TripRepository
	accommodationRepo repositories.AccommodationRepository
	transportRepo     repositories.TransportationRepository
	activityRepo      repositories.ActivityRepository
	cache             providers.CacheProvider
	metrics           *observability.Metrics
}

// NewTripService creates a new trip service
func NewTripService(
	repo repositories.TripRepository,
	accommodationRepo repositories.AccommodationRepository,
	transportRepo repositories.TransportationRepository,
	activityRepo repositories.ActivityRepository,
	cache providers.CacheProvider,
	metrics *observability.Metrics,
) *TripService {
	return &TripService{
		repo:              repo,
		accommodationRepo: accommodationRepo,
		transportRepo:     transportRepo,
		activityRepo:      activityRepo,
		cache:             cache,
		metrics:           metrics,
	}
}

// TripUpdate is a partial trip change. Nil fields are left untouched.
type TripUpdate struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Destination *string         `json:"destination"`
	StartDate   *time.Time      `json:"start_date"`
	EndDate     *time.Time      `json:"end_date"`
	CoverImage  *string         `json:"cover_image"`
	Budget      *entities.Money `json:"budget"`
	IsPublic    *bool           `json:"is_public"`
}

// Create stores a new trip for the user. The owner always comes from
// the session, never from the request body.
func (s *TripService) Create(ctx context.Context, trip *entities.Trip, userID string) (*entities.Trip, error) {
	trip.ID = uuid.New().String()
	trip.UserID = userID
	trip.CreatedAt = time.Now()
	if trip.Budget.Currency == "" {
		trip.Budget.Currency = entities.DefaultCurrency
	}

	if err := trip.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, trip); err != nil {
		return nil, err
	}

	s.invalidatePublicTrips(ctx)
	return trip, nil
}

// Get returns a trip the user may read: their own, or any public trip.
func (s *TripService) Get(ctx context.Context, tripID, userID string) (*entities.Trip, error) {
	trip, _, err := resolveTripAccess(ctx, s.repo, tripID, userID, false)
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// ListMine returns all trips owned by the user.
func (s *TripService) ListMine(ctx context.Context, userID string) ([]*entities.Trip, error) {
	return s.repo.ListByUser(ctx, userID)
}

// ListPublic returns all public trips, served from cache when fresh.
func (s *TripService) ListPublic(ctx context.Context) ([]*entities.Trip, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, publicTripsCacheKey); err == nil {
			var trips []*entities.Trip
			if err := json.Unmarshal(data, &trips); err == nil {
				observability.RecordCacheHit(ctx, s.metrics, publicTripsCacheKey)
				return trips, nil
			}
		} else if errors.Is(err, providers.ErrCacheMiss) {
			observability.RecordCacheMiss(ctx, s.metrics, publicTripsCacheKey)
		}
	}

	trips, err := s.repo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(trips); err == nil {
			if err := s.cache.Set(ctx, publicTripsCacheKey, data, publicTripsCacheTTL); err != nil {
				observability.LoggerFromContext(ctx).Warn().Err(err).Msg("failed to cache public trips")
			}
		}
	}

	return trips, nil
}

// Update applies a partial change to a trip the user owns. The merged
// result is validated as a whole, so a patch cannot leave the trip with
// an end date before its start date.
func (s *TripService) Update(ctx context.Context, tripID, userID string, update TripUpdate) (*entities.Trip, error) {
	trip, _, err := resolveTripAccess(ctx, s.repo, tripID, userID, true)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		trip.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		trip.Description = *update.Description
	}
	if update.Destination != nil {
		trip.Destination = strings.TrimSpace(*update.Destination)
	}
	if update.StartDate != nil {
		trip.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		trip.EndDate = *update.EndDate
	}
	if update.CoverImage != nil {
		trip.CoverImage = *update.CoverImage
	}
	if update.Budget != nil {
		trip.Budget = *update.Budget
		if trip.Budget.Currency == "" {
			trip.Budget.Currency = entities.DefaultCurrency
		}
	}
	if update.IsPublic != nil {
		trip.IsPublic = *update.IsPublic
	}

	if err := trip.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, trip); err != nil {
		return nil, err
	}

	s.invalidatePublicTrips(ctx)
	return trip, nil
}

// Delete removes a trip the user owns along with every accommodation,
// transportation leg, and activity attached to it.
func (s *TripService) Delete(ctx context.Context, tripID, userID string) error {
	if _, _, err := resolveTripAccess(ctx, s.repo, tripID, userID, true); err != nil {
		return err
	}

	if err := s.accommodationRepo.DeleteByTrip(ctx, tripID); err != nil {
		return err
	}
	if err := s.transportRepo.DeleteByTrip(ctx, tripID); err != nil {
		return err
	}
	if err := s.activityRepo.DeleteByTrip(ctx, tripID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, tripID); err != nil {
		return err
	}

	s.invalidatePublicTrips(ctx)
	return nil
}

func (s *TripService) invalidatePublicTrips(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, publicTripsCacheKey); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).Msg("failed to invalidate public trips cache")
	}
}
