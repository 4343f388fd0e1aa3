package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/psiarze/internal/logger"
	"github.com/sbilibin2017/psiarze/internal/middlewares"
	"github.com/sbilibin2017/psiarze/internal/models"
	"github.com/sbilibin2017/psiarze/internal/services"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// OKResponse acknowledges a request without a payload
// swagger:model OKResponse
type OKResponse struct {
	OK bool `json:"ok"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeError maps service errors to HTTP statuses. Anything unknown is logged
// and hidden behind a 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		writeErrorMessage(w, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrDuplicateRequest),
		errors.Is(err, services.ErrDuplicateMember):
		writeErrorMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeErrorMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrDogNotFound),
		errors.Is(err, services.ErrRequestNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrNotFriends),
		errors.Is(err, services.ErrNoLocation):
		writeErrorMessage(w, http.StatusNotFound, err.Error())
	default:
		logger.Log.Errorw("internal server error", "request_id", middlewares.RequestIDFromContext(r.Context()), "err", err)
		writeErrorMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// currentUser returns the caller resolved by the auth middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.UserDB, bool) {
	user, ok := middlewares.UserFromContext(r.Context())
	if !ok {
		writeErrorMessage(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return user, true
}

// pathID parses a uuid path parameter. A malformed id cannot name an existing
// resource, so it is answered with notFound.
func pathID(w http.ResponseWriter, r *http.Request, name string, notFound error) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, r, notFound)
		return uuid.Nil, false
	}
	return id, true
}

// bodyID parses a uuid from a request body field. A malformed id names no user.
func bodyID(w http.ResponseWriter, r *http.Request, raw string) (uuid.UUID, bool) {
	if raw == "" {
		writeErrorMessage(w, http.StatusBadRequest, "user id is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, r, services.ErrUserNotFound)
		return uuid.Nil, false
	}
	return id, true
}
