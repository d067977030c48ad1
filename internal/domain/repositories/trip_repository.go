package repositories

import (
	"context"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

// TripRepository defines the interface for trip data operations
type TripRepository interface {
	// Create creates a new trip
	Create(ctx context.Context, trip *entities.Trip) error

	// GetByID retrieves a trip by ID
	GetByID(ctx context.Context, id string) (*entities.Trip, error)

	// ListByUser retrieves all trips owned by a user
	ListByUser(ctx context.Context, userID string) ([]*entities.Trip, error)

	// ListPublic retrieves all trips flagged public
	ListPublic(ctx context.Context) ([]*entities.Trip, error)

	// ListIDsByUser retrieves the ids of all trips owned by a user.
	// Child resources use this for their two-step "list mine" queries.
	ListIDsByUser(ctx context.Context, userID string) ([]string, error)

	// Update persists a full trip record
	Update(ctx context.Context, trip *entities.Trip) error

	// Delete removes a trip
	Delete(ctx context.Context, id string) error
}
