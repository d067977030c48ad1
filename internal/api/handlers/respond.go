package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/VijeyRoshan/VoyaGo/pkg/errors"
)

// envelope is the JSON shape every endpoint returns. Status is
// "success" for 2xx, "fail" for 4xx, and "error" for 5xx.
type envelope struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Results *int        `json:"results,omitempty"`
}

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// respondWithData wraps a payload in a success envelope.
func respondWithData(w http.ResponseWriter, statusCode int, data interface{}) {
	respondWithJSON(w, statusCode, envelope{Status: "success", Data: data})
}

// respondWithList wraps a collection payload and its element count.
func respondWithList(w http.ResponseWriter, statusCode int, data interface{}, results int) {
	respondWithJSON(w, statusCode, envelope{Status: "success", Data: data, Results: &results})
}

// respondWithError writes a fail/error envelope for the status code.
func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	status := "error"
	if statusCode < http.StatusInternalServerError {
		status = "fail"
	}
	respondWithJSON(w, statusCode, envelope{Status: status, Message: message})
}

// respondWithAppError maps a service error onto an HTTP status.
func respondWithAppError(w http.ResponseWriter, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeUnauthorized:
			respondWithError(w, http.StatusUnauthorized, appErr.Message)
		case apperrors.ErrorTypeForbidden:
			respondWithError(w, http.StatusForbidden, appErr.Message)
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeConflict:
			respondWithError(w, http.StatusConflict, appErr.Message)
		case apperrors.ErrorTypeExternal:
			respondWithError(w, http.StatusBadGateway, appErr.Message)
		default:
			respondWithError(w, http.StatusInternalServerError, appErr.Message)
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, "something went wrong")
}
