// Package handlers is the HTTP surface of the journal service. Every
// response is a JSON envelope with at least "success" and "message".
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/AnshRaj112/mindjournal-backend/internal/logger"
	"github.com/AnshRaj112/mindjournal-backend/internal/services"
	"github.com/AnshRaj112/mindjournal-backend/pkg/utils"
)

// requestTimeout bounds the storage work of a single request.
const requestTimeout = 5 * time.Second

// Handler serves the API on top of a service bundle.
type Handler struct {
	svc *services.Services
}

func New(svc *services.Services) *Handler {
	return &Handler{svc: svc}
}

// Response is the minimal envelope.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse carries field errors for failed validation and a redirect
// hint for failed route guards.
type ErrorResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Errors   map[string]string `json:"errors,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

func withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), requestTimeout)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Message: message})
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// writeServiceError maps service errors onto status codes.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs utils.ValidationErrors
	var verr *utils.ValidationError

	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Validation failed", Errors: verrs.Fields()})
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: verr.Message, Errors: map[string]string{verr.Field: verr.Message}})
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "User with this email already exists")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrFormat):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, services.ErrBackupUnavailable):
		writeError(w, http.StatusServiceUnavailable, "Cloud backup is not configured")
	default:
		logger.FromRequest(r).Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
