package routes

import (
	"net/http"

	"github.com/VijeyRoshan/VoyaGo/internal/api/handlers"
	"github.com/VijeyRoshan/VoyaGo/internal/api/middleware"
	"github.com/VijeyRoshan/VoyaGo/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	authHandler           *handlers.AuthHandler
	tripHandler           *handlers.TripHandler
	accommodationHandler  *handlers.AccommodationHandler
	transportationHandler *handlers.TransportationHandler
	activityHandler       *handlers.ActivityHandler
	suggestionHandler     *handlers.SuggestionHandler

	authMiddleware  *middleware.AuthMiddleware
	cacheMiddleware *middleware.CacheMiddleware
	allowedOrigins  []string
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	authHandler *handlers.AuthHandler,
	tripHandler *handlers.TripHandler,
	accommodationHandler *handlers.AccommodationHandler,
	transportationHandler *handlers.TransportationHandler,
	activityHandler *handlers.ActivityHandler,
	suggestionHandler *handlers.SuggestionHandler,
	authMiddleware *middleware.AuthMiddleware,
	cacheMiddleware *middleware.CacheMiddleware,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		authHandler:           authHandler,
		tripHandler:           tripHandler,
		accommodationHandler:  accommodationHandler,
		transportationHandler: transportationHandler,
		activityHandler:       activityHandler,
		suggestionHandler:     suggestionHandler,

		authMiddleware:  authMiddleware,
		cacheMiddleware: cacheMiddleware,
		allowedOrigins:  allowedOrigins,
		metrics:         metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	protect := r.authMiddleware.RequireAuth

	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Account endpoints
	r.mux.HandleFunc("POST /api/users/signup", r.authHandler.Signup)
	r.mux.HandleFunc("POST /api/users/login", r.authHandler.Login)
	r.mux.HandleFunc("GET /api/users/logout", r.authHandler.Logout)
	r.mux.HandleFunc("GET /api/users/me", protect(r.authHandler.Me))
	r.mux.HandleFunc("POST /api/users/forgotPassword", r.authHandler.NotImplemented)
	r.mux.HandleFunc("PATCH /api/users/resetPassword/{token}", r.authHandler.NotImplemented)
	r.mux.HandleFunc("PATCH /api/users/updateMyPassword", protect(r.authHandler.NotImplemented))

	// Trip endpoints; the public listing needs no session
	r.mux.HandleFunc("GET /api/trips/public", r.tripHandler.ListPublicTrips)
	r.mux.HandleFunc("GET /api/trips", protect(r.tripHandler.ListTrips))
	r.mux.HandleFunc("POST /api/trips", protect(r.tripHandler.CreateTrip))
	r.mux.HandleFunc("GET /api/trips/{id}", protect(r.tripHandler.GetTrip))
	r.mux.HandleFunc("PATCH /api/trips/{id}", protect(r.tripHandler.UpdateTrip))
	r.mux.HandleFunc("DELETE /api/trips/{id}", protect(r.tripHandler.DeleteTrip))

	// Trip sub-resource endpoints
	r.mux.HandleFunc("GET /api/trips/{id}/accommodations", protect(r.accommodationHandler.ListTripAccommodations))
	r.mux.HandleFunc("GET /api/trips/{id}/transportation", protect(r.transportationHandler.ListTripTransportation))
	r.mux.HandleFunc("GET /api/trips/{id}/activities", protect(r.activityHandler.ListTripActivities))
	r.mux.HandleFunc("GET /api/trips/{id}/itinerary", protect(r.tripHandler.GetItinerary))

	// Accommodation endpoints
	r.mux.HandleFunc("GET /api/accommodations", protect(r.accommodationHandler.ListAccommodations))
	r.mux.HandleFunc("POST /api/accommodations", protect(r.accommodationHandler.CreateAccommodation))
	r.mux.HandleFunc("GET /api/accommodations/{id}", protect(r.accommodationHandler.GetAccommodation))
	r.mux.HandleFunc("PATCH /api/accommodations/{id}", protect(r.accommodationHandler.UpdateAccommodation))
	r.mux.HandleFunc("DELETE /api/accommodations/{id}", protect(r.accommodationHandler.DeleteAccommodation))

	// Transportation endpoints
	r.mux.HandleFunc("GET /api/transportation", protect(r.transportationHandler.ListTransportation))
	r.mux.HandleFunc("POST /api/transportation", protect(r.transportationHandler.CreateTransportation))
	r.mux.HandleFunc("GET /api/transportation/{id}", protect(r.transportationHandler.GetTransportation))
	r.mux.HandleFunc("PATCH /api/transportation/{id}", protect(r.transportationHandler.UpdateTransportation))
	r.mux.HandleFunc("DELETE /api/transportation/{id}", protect(r.transportationHandler.DeleteTransportation))

	// Activity endpoints
	r.mux.HandleFunc("GET /api/activities", protect(r.activityHandler.ListActivities))
	r.mux.HandleFunc("POST /api/activities", protect(r.activityHandler.CreateActivity))
	r.mux.HandleFunc("GET /api/activities/{id}", protect(r.activityHandler.GetActivity))
	r.mux.HandleFunc("PATCH /api/activities/{id}", protect(r.activityHandler.UpdateActivity))
	r.mux.HandleFunc("DELETE /api/activities/{id}", protect(r.activityHandler.DeleteActivity))

	// Suggestion endpoints
	r.mux.HandleFunc("POST /api/suggestions/travel", protect(r.suggestionHandler.GetTravelSuggestions))
	r.mux.HandleFunc("GET /api/suggestions/status", protect(r.suggestionHandler.GetStatus))
	r.mux.HandleFunc("GET /api/suggestions/{destination}/{type}", protect(r.suggestionHandler.GetSpecificSuggestions))

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
