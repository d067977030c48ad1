package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/VijeyRoshan/VoyaGo/internal/api/middleware"
	"github.com/VijeyRoshan/VoyaGo/internal/application/services"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
)

// AuthService defines the interface for account operations
type AuthService interface {
	Signup(ctx context.Context, input services.SignupInput) (*entities.User, string, error)
	Login(ctx context.Context, input services.LoginInput) (*entities.User, string, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
}

// AuthHandler handles signup, login, and session requests
type AuthHandler struct {
	service       AuthService
	tokenDuration time.Duration
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service AuthService, tokenDuration time.Duration) *AuthHandler {
	return &AuthHandler{
		service:       service,
		tokenDuration: tokenDuration,
	}
}

// authResponse carries the token next to the user payload.
type authResponse struct {
	Status string      `json:"status"`
	Token  string      `json:"token"`
	Data   interface{} `json:"data"`
}

func (h *AuthHandler) sendToken(w http.ResponseWriter, statusCode int, user *entities.User, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenDuration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	respondWithJSON(w, statusCode, authResponse{
		Status: "success",
		Token:  token,
		Data:   map[string]interface{}{"user": user},
	})
}

// Signup handles POST /api/users/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input services.SignupInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, token, err := h.service.Signup(r.Context(), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	h.sendToken(w, http.StatusCreated, user, token)
}

// Login handles POST /api/users/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input services.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, token, err := h.service.Login(r.Context(), input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	h.sendToken(w, http.StatusOK, user, token)
}

// Logout handles GET /api/users/logout by expiring the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    "loggedout",
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Second),
		HttpOnly: true,
	})
	respondWithJSON(w, http.StatusOK, envelope{Status: "success"})
}

// Me handles GET /api/users/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "you are not logged in, please log in to get access")
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithData(w, http.StatusOK, map[string]interface{}{"user": user})
}

// NotImplemented handles the password reset placeholders.
func (h *AuthHandler) NotImplemented(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusInternalServerError, "This route is not yet implemented")
}
