package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/VijeyRoshan/VoyaGo/internal/api/middleware"
	"github.com/VijeyRoshan/VoyaGo/internal/application/services"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

// TripService defines the interface for trip operations
type TripService interface {
	Create(ctx context.Context, trip *entities.Trip, userID string) (*entities.Trip, error)
	Get(ctx context.Context, tripID, userID string) (*entities.Trip, error)
	ListMine(ctx context.Context, userID string) ([]*entities.Trip, error)
	ListPublic(ctx context.Context) ([]*entities.Trip, error)
	Update(ctx context.Context, tripID, userID string, update services.TripUpdate) (*entities.Trip, error)
	Delete(ctx context.Context, tripID, userID string) error
}

// ItineraryService defines the interface for itinerary assembly
type ItineraryService interface {
	Build(ctx context.Context, tripID, userID string) (*services.Itinerary, error)
}

// TripHandler handles trip requests
type TripHandler struct {
	service   TripService
	itinerary ItineraryService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service TripService, itinerary ItineraryService) *TripHandler {
	return &TripHandler{
		service:   service,
		itinerary: itinerary,
	}
}

func sessionUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "you are not logged in, please log in to get access")
	}
	return userID, ok
}

// CreateTrip handles POST /api/trips
func (h *TripHandler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	var trip entities.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	created, err := h.service.Create(r.Context(), &trip, userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusCreated, map[string]interface{}{"trip": created})
}

// GetTrip handles GET /api/trips/{id}
func (h *TripHandler) GetTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	trip, err := h.service.Get(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{"trip": trip})
}

// ListTrips handles GET /api/trips
func (h *TripHandler) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	trips, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithList(w, http.StatusOK, map[string]interface{}{"trips": trips}, len(trips))
}

// ListPublicTrips handles GET /api/trips/public. No session required.
func (h *TripHandler) ListPublicTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := h.service.ListPublic(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithList(w, http.StatusOK, map[string]interface{}{"trips": trips}, len(trips))
}

// UpdateTrip handles PATCH /api/trips/{id}
func (h *TripHandler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	var update services.TripUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	trip, err := h.service.Update(r.Context(), r.PathValue("id"), userID, update)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{"trip": trip})
}

// DeleteTrip handles DELETE /api/trips/{id}
func (h *TripHandler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), r.PathValue("id"), userID); err != nil {
		respondWithAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetItinerary handles GET /api/trips/{id}/itinerary
func (h *TripHandler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	itinerary, err := h.itinerary.Build(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithList(w, http.StatusOK, map[string]interface{}{"itinerary": itinerary}, len(itinerary.Items))
}
