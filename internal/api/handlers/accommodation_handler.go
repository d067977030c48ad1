package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/VijeyRoshan/VoyaGo/internal/application/services"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

// AccommodationService defines the interface for accommodation operations
type AccommodationService interface {
	Create(ctx context.Context, accommodation *entities.Accommodation, tripID, userID string) (*entities.Accommodation, error)
	Get(ctx context.Context, id, userID string) (*entities.Accommodation, error)
	ListByTrip(ctx context.Context, tripID, userID string) ([]*entities.Accommodation, error)
	ListMine(ctx context.Context, userID string) ([]*entities.Accommodation, error)
	Update(ctx context.Context, id, userID string, update services.AccommodationUpdate) (*entities.Accommodation, error)
	Delete(ctx context.Context, id, userID string) error
}

// AccommodationHandler handles accommodation requests
type AccommodationHandler struct {
	service AccommodationService
}

// NewAccommodationHandler creates a new accommodation handler
func NewAccommodationHandler(service AccommodationService) *AccommodationHandler {
	return &AccommodationHandler{service: service}
}

// CreateAccommodation handles POST /api/accommodations
func (h *AccommodationHandler) CreateAccommodation(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	var accommodation entities.Accommodation
	if err := json.NewDecoder(r.Body).Decode(&accommodation); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if accommodation.TripID == "" {
		respondWithError(w, http.StatusBadRequest, "accommodation must belong to a trip")
		return
	}

	created, err := h.service.Create(r.Context(), &accommodation, accommodation.TripID, userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusCreated, map[string]interface{}{"accommodation": created})
}

// GetAccommodation handles GET /api/accommodations/{id}
func (h *AccommodationHandler) GetAccommodation(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	accommodation, err := h.service.Get(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{"accommodation": accommodation})
}

// ListAccommodations handles GET /api/accommodations
func (h *AccommodationHandler) ListAccommodations(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	accommodations, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithList(w, http.StatusOK, map[string]interface{}{"accommodations": accommodations}, len(accommodations))
}

// ListTripAccommodations handles GET /api/trips/{id}/accommodations
func (h *AccommodationHandler) ListTripAccommodations(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	accommodations, err := h.service.ListByTrip(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithList(w, http.StatusOK, map[string]interface{}{"accommodations": accommodations}, len(accommodations))
}

// UpdateAccommodation handles PATCH /api/accommodations/{id}
func (h *AccommodationHandler) UpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	var update services.AccommodationUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	accommodation, err := h.service.Update(r.Context(), r.PathValue("id"), userID, update)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{"accommodation": accommodation})
}

// DeleteAccommodation handles DELETE /api/accommodations/{id}
func (h *AccommodationHandler) DeleteAccommodation(w http.ResponseWriter, r *http.Request) {
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
