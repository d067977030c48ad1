package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/VijeyRoshan/VoyaGo/internal/application/services"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

// TransportationService defines the interface for transportation operations
type TransportationService interface {
	Create(ctx context.Context, transportation *entities.Transportation, tripID, userID string) (*entities.Transportation, error)
	Get(ctx context.Context, id, userID string) (*entities.Transportation, error)
	ListByTrip(ctx context.Context, tripID, userID string) ([]*entities.Transportation, error)
	ListMine(ctx context.Context, userID string) ([]*entities.Transportation, error)
	Update(ctx context.Context, id, userID string, update services.TransportationUpdate) (*entities.Transportation, error)
	Delete(ctx context.Context, id, userID string) error
}

// TransportationHandler handles transportation requests
type TransportationHandler struct {
	service TransportationService
}

// NewTransportationHandler creates a new transportation handler
func NewTransportationHandler(service TransportationService) *TransportationHandler {
	return &TransportationHandler{service: service}
}

// CreateTransportation handles POST /api/transportation
func (h *TransportationHandler) CreateTransportation(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	var transportation entities.Transportation
	if err := json.NewDecoder(r.Body).Decode(&transportation); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if transportation.TripID == "" {
		respondWithError(w, http.StatusBadRequest, "transportation must belong to a trip")
		return
	}

	created, err := h.service.Create(r.Context(), &transportation, transportation.TripID, userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusCreated, map[string]interface{}{"transportation": created})
}

// GetTransportation handles GET /api/transportation/{id}
func (h *TransportationHandler) GetTransportation(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	transportation, err := h.service.Get(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{"transportation": transportation})
}

// ListTransportation handles GET /api/transportation
func (h *TransportationHandler) ListTransportation(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	transportations, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithList(w, http.StatusOK, map[string]interface{}{"transportation": transportations}, len(transportations))
}

// ListTripTransportation handles GET /api/trips/{id}/transportation
func (h *TransportationHandler) ListTripTransportation(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	transportations, err := h.service.ListByTrip(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithList(w, http.StatusOK, map[string]interface{}{"transportation": transportations}, len(transportations))
}

// UpdateTransportation handles PATCH /api/transportation/{id}
func (h *TransportationHandler) UpdateTransportation(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	var update services.TransportationUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	transportation, err := h.service.Update(r.Context(), r.PathValue("id"), userID, update)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{"transportation": transportation})
}

// DeleteTransportation handles DELETE /api/transportation/{id}
func (h *TransportationHandler) DeleteTransportation(w http.ResponseWriter, r *http.Request) {
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
