package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/repositories"
)

// AccommodationService handles accommodations attached to trips. All
// authorization goes through the parent trip.
type AccommodationService struct {
	repo     repositories.AccommodationRepository
	tripRepo repositories.TripRepository
}

// NewAccommodationService creates a new accommodation service
func NewAccommodationService(repo repositories.AccommodationRepository, tripRepo repositories.TripRepository) *AccommodationService {
	return &AccommodationService{
		repo:     repo,
		tripRepo: tripRepo,
	}
}

// AccommodationUpdate is a partial accommodation change. Nil fields are
// left untouched.
type AccommodationUpdate struct {
	Name                *string           `json:"name"`
	Type                *string           `json:"type"`
	Address             *entities.Address `json:"address"`
	CheckInDate         *time.Time        `json:"check_in_date"`
	CheckOutDate        *time.Time        `json:"check_out_date"`
	Price               *entities.Money   `json:"price"`
	BookingConfirmation *string           `json:"booking_confirmation"`
	Notes               *string           `json:"notes"`
	Images              *[]string         `json:"images"`
}

// Create stores a new accommodation under a trip the user owns.
func (s *AccommodationService) Create(ctx context.Context, accommodation *entities.Accommodation, tripID, userID string) (*entities.Accommodation, error) {
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, tripID, userID, true); err != nil {
		return nil, err
	}

	accommodation.ID = uuid.New().String()
	accommodation.TripID = tripID
	accommodation.CreatedAt = time.Now()
	if accommodation.Type == "" {
		accommodation.Type = entities.AccommodationHotel
	}
	if accommodation.Price.Currency == "" {
		accommodation.Price.Currency = entities.DefaultCurrency
	}

	if err := accommodation.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, accommodation); err != nil {
		return nil, err
	}

	return accommodation, nil
}

// Get returns an accommodation the user may read through its trip.
func (s *AccommodationService) Get(ctx context.Context, id, userID string) (*entities.Accommodation, error) {
	accommodation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, accommodation.TripID, userID, false); err != nil {
		return nil, err
	}
	return accommodation, nil
}

// ListByTrip returns all accommodations of a trip the user may read.
func (s *AccommodationService) ListByTrip(ctx context.Context, tripID, userID string) ([]*entities.Accommodation, error) {
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, tripID, userID, false); err != nil {
		return nil, err
	}
	return s.repo.ListByTrip(ctx, tripID)
}

// ListMine returns all accommodations across every trip the user owns.
func (s *AccommodationService) ListMine(ctx context.Context, userID string) ([]*entities.Accommodation, error) {
	tripIDs, err := s.tripRepo.ListIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByTrips(ctx, tripIDs)
}

// Update applies a partial change to an accommodation on a trip the
// user owns. The merged record is validated as a whole.
func (s *AccommodationService) Update(ctx context.Context, id, userID string, update AccommodationUpdate) (*entities.Accommodation, error) {
	accommodation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, accommodation.TripID, userID, true); err != nil {
		return nil, err
	}

	if update.Name != nil {
		accommodation.Name = strings.TrimSpace(*update.Name)
	}
	if update.Type != nil {
		accommodation.Type = *update.Type
	}
	if update.Address != nil {
		accommodation.Address = *update.Address
	}
	if update.CheckInDate != nil {
		accommodation.CheckInDate = *update.CheckInDate
	}
	if update.CheckOutDate != nil {
		accommodation.CheckOutDate = *update.CheckOutDate
	}
	if update.Price != nil {
		accommodation.Price = *update.Price
		if accommodation.Price.Currency == "" {
			accommodation.Price.Currency = entities.DefaultCurrency
		}
	}
	if update.BookingConfirmation != nil {
		accommodation.BookingConfirmation = *update.BookingConfirmation
	}
	if update.Notes != nil {
		accommodation.Notes = *update.Notes
	}
	if update.Images != nil {
		accommodation.Images = *update.Images
	}

	if err := accommodation.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, accommodation); err != nil {
		return nil, err
	}

	return accommodation, nil
}

// Delete removes an accommodation from a trip the user owns.
func (s *AccommodationService) Delete(ctx context.Context, id, userID string) error {
	accommodation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, accommodation.TripID, userID, true); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
