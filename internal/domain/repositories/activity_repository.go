package repositories

import (
	"context"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

// ActivityRepository defines the interface for activity data operations
type ActivityRepository interface {
	// Create creates a new activity
	Create(ctx context.Context, activity *entities.Activity) error

	// GetByID retrieves an activity by ID
	GetByID(ctx context.Context, id string) (*entities.Activity, error)

	// ListByTrip retrieves all activities attached to a trip
	ListByTrip(ctx context.Context, tripID string) ([]*entities.Activity, error)

	// ListByTrips retrieves all activities attached to any of the trips
	ListByTrips(ctx context.Context, tripIDs []string) ([]*entities.Activity, error)

	// Update persists a full activity record
	Update(ctx context.Context, activity *entities.Activity) error

	// Delete removes an activity
	Delete(ctx context.Context, id string) error

	// DeleteByTrip removes all activities attached to a trip
	DeleteByTrip(ctx context.Context, tripID string) error
}
