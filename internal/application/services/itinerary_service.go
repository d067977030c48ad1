package services

import (
	"context"
	"sort"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/repositories"
)

// ItineraryService assembles a trip's day-by-day itinerary from its
// accommodations, transportation legs, and activities.
type ItineraryService struct {
	tripRepo          repositories.TripRepository
	accommodationRepo repositories.AccommodationRepository
	transportRepo     repositories.TransportationRepository
	activityRepo      repositories.ActivityRepository
}

// NewItineraryService creates a new itinerary service
func NewItineraryService(
	tripRepo repositories.TripRepository,
	accommodationRepo repositories.AccommodationRepository,
	transportRepo repositories.TransportationRepository,
	activityRepo repositories.ActivityRepository,
) *ItineraryService {
	return &ItineraryService{
		tripRepo:          tripRepo,
		accommodationRepo: accommodationRepo,
		transportRepo:     transportRepo,
		activityRepo:      activityRepo,
	}
}

// Itinerary is the aggregated view of a trip.
type Itinerary struct {
	Trip  *entities.Trip           `json:"trip"`
	Items []entities.ItineraryItem `json:"items"`
}

// Build returns the full itinerary for a trip the user may read. Items
// are ordered chronologically; items sharing a timestamp keep a stable
// order of accommodations, then transportation, then activities.
func (s *ItineraryService) Build(ctx context.Context, tripID, userID string) (*Itinerary, error) {
	trip, _, err := resolveTripAccess(ctx, s.tripRepo, tripID, userID, false)
	if err != nil {
		return nil, err
	}

	accommodations, err := s.accommodationRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	transportations, err := s.transportRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	activities, err := s.activityRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	items := make([]entities.ItineraryItem, 0, len(accommodations)+len(transportations)+len(activities))
	for _, accommodation := range accommodations {
		items = append(items, entities.ItineraryItem{
			Type: entities.ItineraryAccommodation,
			Date: accommodation.CheckInDate,
			Data: accommodation,
		})
	}
	for _, transportation := range transportations {
		items = append(items, entities.ItineraryItem{
			Type: entities.ItineraryTransportation,
			Date: transportation.DepartureDateTime,
			Data: transportation,
		})
	}
	for _, activity := range activities {
		items = append(items, entities.ItineraryItem{
			Type: entities.ItineraryActivity,
			Date: activity.StartDateTime,
			Data: activity,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})

	return &Itinerary{Trip: trip, Items: items}, nil
}
