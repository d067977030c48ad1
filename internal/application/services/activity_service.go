package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/repositories"
)

// ActivityService handles activities attached to trips.
type ActivityService struct {
	repo     repositories.ActivityRepository
	tripRepo repositories.TripRepository
}

// NewActivityService creates a new activity service
func NewActivityService(repo repositories.ActivityRepository, tripRepo repositories.TripRepository) *ActivityService {
	return &ActivityService{
		repo:     repo,
		tripRepo: tripRepo,
	}
}

// ActivityUpdate is a partial activity change. Nil fields are left
// untouched.
type ActivityUpdate struct {
	Title            *string         `json:"title"`
	Description      *string         `json:"description"`
	Category         *string         `json:"category"`
	Location         *entities.Place `json:"location"`
	StartDateTime    *time.Time      `json:"start_datetime"`
	EndDateTime      *time.Time      `json:"end_datetime"`
	Price            *entities.Money `json:"price"`
	BookingReference *string         `json:"booking_reference"`
	Notes            *string         `json:"notes"`
	Images           *[]string       `json:"images"`
}

// Create stores a new activity under a trip the user owns.
func (s *ActivityService) Create(ctx context.Context, activity *entities.Activity, tripID, userID string) (*entities.Activity, error) {
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, tripID, userID, true); err != nil {
		return nil, err
	}

	activity.ID = uuid.New().String()
	activity.TripID = tripID
	activity.CreatedAt = time.Now()
	if activity.Category == "" {
		activity.Category = entities.ActivityOther
	}
	if activity.Price.Currency == "" {
		activity.Price.Currency = entities.DefaultCurrency
	}

	if err := activity.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

// Get returns an activity the user may read through its trip.
func (s *ActivityService) Get(ctx context.Context, id, userID string) (*entities.Activity, error) {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, activity.TripID, userID, false); err != nil {
		return nil, err
	}
	return activity, nil
}

// ListByTrip returns all activities of a readable trip.
func (s *ActivityService) ListByTrip(ctx context.Context, tripID, userID string) ([]*entities.Activity, error) {
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, tripID, userID, false); err != nil {
		return nil, err
	}
	return s.repo.ListByTrip(ctx, tripID)
}

// ListMine returns all activities across the user's trips.
func (s *ActivityService) ListMine(ctx context.Context, userID string) ([]*entities.Activity, error) {
	tripIDs, err := s.tripRepo.ListIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByTrips(ctx, tripIDs)
}

// Update applies a partial change to an activity on a trip the user
// owns.
func (s *ActivityService) Update(ctx context.Context, id, userID string, update ActivityUpdate) (*entities.Activity, error) {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, activity.TripID, userID, true); err != nil {
		return nil, err
	}

	if update.Title != nil {
		activity.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		activity.Description = *update.Description
	}
	if update.Category != nil {
		activity.Category = *update.Category
	}
	if update.Location != nil {
		activity.Location = *update.Location
	}
	if update.StartDateTime != nil {
		activity.StartDateTime = *update.StartDateTime
	}
	if update.EndDateTime != nil {
		end := *update.EndDateTime
		activity.EndDateTime = &end
	}
	if update.Price != nil {
		activity.Price = *update.Price
		if activity.Price.Currency == "" {
			activity.Price.Currency = entities.DefaultCurrency
		}
	}
	if update.BookingReference != nil {
		activity.BookingReference = *update.BookingReference
	}
	if update.Notes != nil {
		activity.Notes = *update.Notes
	}
	if update.Images != nil {
		activity.Images = *update.Images
	}

	if err := activity.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, err
	}

	return activity, nil
}

// Delete removes an activity from a trip the user owns.
func (s *ActivityService) Delete(ctx context.Context, id, userID string) error {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, activity.TripID, userID, true); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
