package services

import (
	"context"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/repositories"
	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

// TripAccess describes what a user may do with a trip.
type TripAccess int

const (
	// TripAccessOwner grants full read/write access.
	TripAccessOwner TripAccess = iota

	// TripAccessPublicRead grants read-only access to a public trip.
	TripAccessPublicRead
)

// resolveTripAccess loads a trip and checks what the user may do with
// it. A missing trip is reported as not found before any authorization
// decision; an existing private trip owned by someone else is reported
// as forbidden.
func resolveTripAccess(ctx context.Context, repo repositories.TripRepository, tripID, userID string, write bool) (*entities.Trip, TripAccess, error) {
	trip, err := repo.GetByID(ctx, tripID)
	if err != nil {
		return nil, 0, err
	}

	if trip.UserID == userID {
		return trip, TripAccessOwner, nil
	}

	if !write && trip.IsPublic {
		return trip, TripAccessPublicRead, nil
	}

	return nil, 0, apperrors.NewForbiddenError("you do not have permission to perform this action")
}
