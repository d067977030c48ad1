package repositories

import (
	"context"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

// AccommodationRepository defines the interface for accommodation data operations
type AccommodationRepository interface {
	// Create creates a new accommodation
	Create(ctx context.Context, accommodation *entities.Accommodation) error

	// GetByID retrieves an accommodation by ID
	GetByID(ctx context.Context, id string) (*entities.Accommodation, error)

	// ListByTrip retrieves all accommodations attached to a trip
	ListByTrip(ctx context.Context, tripID string) ([]*entities.Accommodation, error)

	// ListByTrips retrieves all accommodations attached to any of the trips
	ListByTrips(ctx context.Context, tripIDs []string) ([]*entities.Accommodation, error)

	// Update persists a full accommodation record
	Update(ctx context.Context, accommodation *entities.Accommodation) error

	// Delete removes an accommodation
	Delete(ctx context.Context, id string) error

	// DeleteByTrip removes all accommodations attached to a trip
	DeleteByTrip(ctx context.Context, tripID string) error
}
