package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/VijeyRoshan/VoyaGo/internal/api/handlers"
	"github.com/VijeyRoshan/VoyaGo/internal/api/middleware"
	"github.com/VijeyRoshan/VoyaGo/internal/application/services"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

// MockTripService defines the mock service
type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) Create(ctx context.Context, trip *entities.Trip, userID string) (*entities.Trip, error) {
	args := m.Called(ctx, trip, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Trip), args.Error(1)
}

func (m *MockTripService) Get(ctx context.Context, tripID, userID string) (*entities.Trip, error) {
	args := m.Called(ctx, tripID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Trip), args.Error(1)
}

func (m *MockTripService) ListMine(ctx context.Context, userID string) ([]*entities.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Trip), args.Error(1)
}

func (m *MockTripService) ListPublic(ctx context.Context) ([]*entities.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Trip), args.Error(1)
}

func (m *MockTripService) Update(ctx context.Context, tripID, userID string, update services.TripUpdate) (*entities.Trip, error) {
	args := m.Called(ctx, tripID, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Trip), args.Error(1)
}

func (m *MockTripService) Delete(ctx context.Context, tripID, userID string) error {
	args := m.Called(ctx, tripID, userID)
	return args.Error(0)
}

func authedRequest(method, target string, body []byte, userID string) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewBuffer(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if userID != "" {
		req = req.WithContext(middleware.ContextWithUserID(req.Context(), userID))
	}
	return req
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func TestTripHandler_CreateTrip(t *testing.T) {
	t.Run("creates trip for session user", func(t *testing.T) {
		mockService := new(MockTripService)
		handler := handlers.NewTripHandler(mockService, nil)

		created := &entities.Trip{ID: "trip-1", Title: "Summer in Lisbon", UserID: "user-1"}
		mockService.On("Create", mock.Anything, mock.MatchedBy(func(trip *entities.Trip) bool {
			return trip.Title == "Summer in Lisbon"
		}), "user-1").Return(created, nil)

		body, _ := json.Marshal(map[string]interface{}{
			"title":       "Summer in Lisbon",
			"destination": "Lisbon, Portugal",
			"start_date":  time.Now().Format(time.RFC3339),
			"end_date":    time.Now().AddDate(0, 0, 9).Format(time.RFC3339),
		})
		w := httptest.NewRecorder()

		handler.CreateTrip(w, authedRequest("POST", "/api/trips", body, "user-1"))

		assert.Equal(t, http.StatusCreated, w.Code)
		payload := decodeEnvelope(t, w)
		assert.Equal(t, "success", payload["status"])
		mockService.AssertExpectations(t)
	})

	t.Run("rejects invalid payload", func(t *testing.T) {
		handler := handlers.NewTripHandler(new(MockTripService), nil)

		w := httptest.NewRecorder()
		handler.CreateTrip(w, authedRequest("POST", "/api/trips", []byte("not-json"), "user-1"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "fail", decodeEnvelope(t, w)["status"])
	})

	t.Run("requires a session", func(t *testing.T) {
		handler := handlers.NewTripHandler(new(MockTripService), nil)

		w := httptest.NewRecorder()
		handler.CreateTrip(w, authedRequest("POST", "/api/trips", []byte("{}"), ""))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestTripHandler_GetTrip_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"missing trip", apperrors.NewNotFoundError("no trip found with that ID"), http.StatusNotFound, "fail"},
		{"foreign private trip", apperrors.NewForbiddenError("you do not have permission to perform this action"), http.StatusForbidden, "fail"},
		{"storage failure", apperrors.NewInternalError("failed to get trip", nil), http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTripService)
			handler := handlers.NewTripHandler(mockService, nil)

			mockService.On("Get", mock.Anything, "trip-1", "user-1").Return(nil, tt.err)

			req := authedRequest("GET", "/api/trips/trip-1", nil, "user-1")
			req.SetPathValue("id", "trip-1")
			w := httptest.NewRecorder()

			handler.GetTrip(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantKind, decodeEnvelope(t, w)["status"])
		})
	}
}

func TestTripHandler_DeleteTrip(t *testing.T) {
	t.Run("returns no content", func(t *testing.T) {
		mockService := new(MockTripService)
		handler := handlers.NewTripHandler(mockService, nil)

		mockService.On("Delete", mock.Anything, "trip-1", "user-1").Return(nil)

		req := authedRequest("DELETE", "/api/trips/trip-1", nil, "user-1")
		req.SetPathValue("id", "trip-1")
		w := httptest.NewRecorder()

		handler.DeleteTrip(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("second delete is not found", func(t *testing.T) {
		mockService := new(MockTripService)
		handler := handlers.NewTripHandler(mockService, nil)

		mockService.On("Delete", mock.Anything, "trip-1", "user-1").
			Return(apperrors.NewNotFoundError("no trip found with that ID"))

		req := authedRequest("DELETE", "/api/trips/trip-1", nil, "user-1")
		req.SetPathValue("id", "trip-1")
		w := httptest.NewRecorder()

		handler.DeleteTrip(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTripHandler_ListTrips(t *testing.T) {
	mockService := new(MockTripService)
	handler := handlers.NewTripHandler(mockService, nil)

	mockService.On("ListMine", mock.Anything, "user-1").Return([]*entities.Trip{
		{ID: "trip-1"}, {ID: "trip-2"},
	}, nil)

	w := httptest.NewRecorder()
	handler.ListTrips(w, authedRequest("GET", "/api/trips", nil, "user-1"))

	assert.Equal(t, http.StatusOK, w.Code)
	payload := decodeEnvelope(t, w)
	assert.Equal(t, float64(2), payload["results"])
}

func TestTripHandler_ListPublicTrips_NoSession(t *testing.T) {
	mockService := new(MockTripService)
	handler := handlers.NewTripHandler(mockService, nil)

	mockService.On("ListPublic", mock.Anything).Return([]*entities.Trip{{ID: "trip-1", IsPublic: true}}, nil)

	w := httptest.NewRecorder()
	handler.ListPublicTrips(w, authedRequest("GET", "/api/trips/public", nil, ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", decodeEnvelope(t, w)["status"])
}
