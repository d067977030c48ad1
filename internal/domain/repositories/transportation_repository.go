package repositories

import (
	"context"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

// TransportationRepository defines the interface for transportation data operations
type TransportationRepository interface {
	// Create creates a new transportation leg
	Create(ctx context.Context, transportation *entities.Transportation) error

	// GetByID retrieves a transportation leg by ID
	GetByID(ctx context.Context, id string) (*entities.Transportation, error)

	// ListByTrip retrieves all transportation legs attached to a trip
	ListByTrip(ctx context.Context, tripID string) ([]*entities.Transportation, error)

	// ListByTrips retrieves all transportation legs attached to any of the trips
	ListByTrips(ctx context.Context, tripIDs []string) ([]*entities.Transportation, error)

	// Update persists a full transportation record
	Update(ctx context.Context, transportation *entities.Transportation) error

	// Delete removes a transportation leg
	Delete(ctx context.Context, id string) error

	// DeleteByTrip removes all transportation legs attached to a trip
	DeleteByTrip(ctx context.Context, tripID string) error
}
