package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/VijeyRoshan/VoyaGo/internal/application/services"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

// ActivityService defines the interface for activity operations
type ActivityService interface {
	Create(ctx context.Context, activity *entities.Activity, tripID, userID string) (*entities.Activity, error)
	Get(ctx context.Context, id, userID string) (*entities.Activity, error)
	ListByTrip(ctx context.Context, tripID, userID string) ([]*entities.Activity, error)
	ListMine(ctx context.Context, userID string) ([]*entities.Activity, error)
	Update(ctx context.Context, id, userID string, update services.ActivityUpdate) (*entities.Activity, error)
	Delete(ctx context.Context, id, userID string) error
}

// ActivityHandler handles activity requests
type ActivityHandler struct {
	service ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(service ActivityService) *ActivityHandler {
	return &ActivityHandler{service: service}
}

// CreateActivity handles POST /api/activities
func (h *ActivityHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	var activity entities.Activity
	if err := json.NewDecoder(r.Body).Decode(&activity); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if activity.TripID == "" {
		respondWithError(w, http.StatusBadRequest, "activity must belong to a trip")
		return
	}

	created, err := h.service.Create(r.Context(), &activity, activity.TripID, userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusCreated, map[string]interface{}{"activity": created})
}

// GetActivity handles GET /api/activities/{id}
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	activity, err := h.service.Get(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{"activity": activity})
}

// ListActivities handles GET /api/activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	activities, err := h.service.ListMine(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithList(w, http.StatusOK, map[string]interface{}{"activities": activities}, len(activities))
}

// ListTripActivities handles GET /api/trips/{id}/activities
func (h *ActivityHandler) ListTripActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	activities, err := h.service.ListByTrip(r.Context(), r.PathValue("id"), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithList(w, http.StatusOK, map[string]interface{}{"activities": activities}, len(activities))
}

// UpdateActivity handles PATCH /api/activities/{id}
func (h *ActivityHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	userID, ok := sessionUserID(w, r)
	if !ok {
		return
	}

	var update services.ActivityUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	activity, err := h.service.Update(r.Context(), r.PathValue("id"), userID, update)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{"activity": activity})
}

// DeleteActivity handles DELETE /api/activities/{id}
func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
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
