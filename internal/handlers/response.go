package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/JP-maker/gamegauge-api/internal/logger"
	"github.com/JP-maker/gamegauge-api/internal/middlewares"
	"github.com/JP-maker/gamegauge-api/internal/services"
	"github.com/go-chi/chi/v5"
)

// ErrorResponse is the body of every non-validation error.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Resource not found
	Error string `json:"error"`

	// Field that caused a conflict, if any
	// default: email
	Field string `json:"field,omitempty"`
}

// MessageResponse carries a human readable outcome.
// swagger:model MessageResponse
type MessageResponse struct {
	// default: OK
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		json.NewEncoder(w).Encode(body)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps a service error onto a status code and a body.
// Unknown errors are logged and answered with a generic 500.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var conflict *services.ConflictError

	switch {
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, ErrorResponse{
			Error: conflict.Error(),
			Field: conflict.Field,
		})
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, "Resource not found")
	case errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, services.ErrHumanVerificationFailed):
		writeError(w, http.StatusForbidden, "Human verification failed")
	case errors.Is(err, services.ErrInvalidResetToken),
		errors.Is(err, services.ErrExpiredResetToken),
		errors.Is(err, services.ErrInvalidVerificationToken):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		logger.FromContext(ctx).Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON reads the request body into dst and answers 400 on malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromContext(r.Context()).Debugw("invalid request body", "err", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// subject returns the authenticated email, answering 401 when there is none.
func subject(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middlewares.GetIdentityFromContext(r.Context())
	if !ok || id.Subject == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return "", false
	}
	return id.Subject, true
}

// pathID parses a positive int64 URL parameter, answering 400 otherwise.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}
