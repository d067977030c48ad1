package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/repositories"
)

// TransportationService handles transportation legs attached to trips.
type TransportationService struct {
	repo     repositories.TransportationRepository
	tripRepo repositories.TripRepository
}

// NewTransportationService creates a new transportation service
func NewTransportationService(repo repositories.TransportationRepository, tripRepo repositories.TripRepository) *TransportationService {
	return &TransportationService{
		repo:     repo,
		tripRepo: tripRepo,
	}
}

// TransportationUpdate is a partial transportation change. Nil fields
// are left untouched.
type TransportationUpdate struct {
	Type              *string           `json:"type"`
	DepartureLocation *entities.Place   `json:"departure_location"`
	ArrivalLocation   *entities.Place   `json:"arrival_location"`
	DepartureDateTime *time.Time        `json:"departure_datetime"`
	ArrivalDateTime   *time.Time        `json:"arrival_datetime"`
	Provider          *entities.Carrier `json:"provider"`
	BookingReference  *string           `json:"booking_reference"`
	Price             *entities.Money   `json:"price"`
	SeatInfo          *string           `json:"seat_info"`
	Notes             *string           `json:"notes"`
}

// Create stores a new transportation leg under a trip the user owns.
func (s *TransportationService) Create(ctx context.Context, transportation *entities.Transportation, tripID, userID string) (*entities.Transportation, error) {
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, tripID, userID, true); err != nil {
		return nil, err
	}

	transportation.ID = uuid.New().String()
	transportation.TripID = tripID
	transportation.CreatedAt = time.Now()
	if transportation.Price.Currency == "" {
		transportation.Price.Currency = entities.DefaultCurrency
	}

	if err := transportation.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, transportation); err != nil {
		return nil, err
	}

	return transportation, nil
}

// Get returns a transportation leg the user may read through its trip.
func (s *TransportationService) Get(ctx context.Context, id, userID string) (*entities.Transportation, error) {
	transportation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, transportation.TripID, userID, false); err != nil {
		return nil, err
	}
	return transportation, nil
}

// ListByTrip returns all transportation legs of a readable trip.
func (s *TransportationService) ListByTrip(ctx context.Context, tripID, userID string) ([]*entities.Transportation, error) {
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, tripID, userID, false); err != nil {
		return nil, err
	}
	return s.repo.ListByTrip(ctx, tripID)
}

// ListMine returns all transportation legs across the user's trips.
func (s *TransportationService) ListMine(ctx context.Context, userID string) ([]*entities.Transportation, error) {
	tripIDs, err := s.tripRepo.ListIDsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByTrips(ctx, tripIDs)
}

// Update applies a partial change to a transportation leg on a trip the
// user owns.
func (s *TransportationService) Update(ctx context.Context, id, userID string, update TransportationUpdate) (*entities.Transportation, error) {
	transportation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, transportation.TripID, userID, true); err != nil {
		return nil, err
	}

	if update.Type != nil {
		transportation.Type = *update.Type
	}
	if update.DepartureLocation != nil {
		transportation.DepartureLocation = *update.DepartureLocation
	}
	if update.ArrivalLocation != nil {
		transportation.ArrivalLocation = *update.ArrivalLocation
	}
	if update.DepartureDateTime != nil {
		transportation.DepartureDateTime = *update.DepartureDateTime
	}
	if update.ArrivalDateTime != nil {
		transportation.ArrivalDateTime = *update.ArrivalDateTime
	}
	if update.Provider != nil {
		transportation.Provider = *update.Provider
	}
	if update.BookingReference != nil {
		transportation.BookingReference = *update.BookingReference
	}
	if update.Price != nil {
		transportation.Price = *update.Price
		if transportation.Price.Currency == "" {
			transportation.Price.Currency = entities.DefaultCurrency
		}
	}
	if update.SeatInfo != nil {
		transportation.SeatInfo = *update.SeatInfo
	}
	if update.Notes != nil {
		transportation.Notes = *update.Notes
	}

	if err := transportation.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, transportation); err != nil {
		return nil, err
	}

	return transportation, nil
}

// Delete removes a transportation leg from a trip the user owns.
func (s *TransportationService) Delete(ctx context.Context, id, userID string) error {
	transportation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if _, _, err := resolveTripAccess(ctx, s.tripRepo, transportation.TripID, userID, true); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
