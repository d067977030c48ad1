package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/VijeyRoshan/VoyaGo/internal/application/services"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

// SuggestionService defines the interface for travel suggestion operations
type SuggestionService interface {
	GetTravelSuggestions(ctx context.Context, query entities.SuggestionQuery) (*entities.SuggestionResult, error)
	GetSpecificSuggestions(ctx context.Context, destination, suggestionType, startDate, endDate string) (*services.SpecificSuggestionResult, error)
	Status() services.APIStatus
}

// SuggestionHandler handles travel suggestion requests
type SuggestionHandler struct {
	service SuggestionService
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(service SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{service: service}
}

type travelSuggestionRequest struct {
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	TripType    string `json:"trip_type"`
}

// GetTravelSuggestions handles POST /api/suggestions/travel
func (h *SuggestionHandler) GetTravelSuggestions(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessionUserID(w, r); !ok {
		return
	}

	var req travelSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.service.GetTravelSuggestions(r.Context(), entities.SuggestionQuery{
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TripType:    req.TripType,
	})
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, result)
}

// GetSpecificSuggestions handles GET /api/suggestions/{destination}/{type}
func (h *SuggestionHandler) GetSpecificSuggestions(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessionUserID(w, r); !ok {
		return
	}

	result, err := h.service.GetSpecificSuggestions(
		r.Context(),
		r.PathValue("destination"),
		r.PathValue("type"),
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, result)
}

// GetStatus handles GET /api/suggestions/status
func (h *SuggestionHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := sessionUserID(w, r); !ok {
		return
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{
		"apiStatus": h.service.Status(),
		"message":   "Application configured to use Gemini AI for all travel suggestions",
	})
}
