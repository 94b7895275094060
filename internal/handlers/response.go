package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/second-brain/internal/logger"
	"github.com/sbilibin2017/second-brain/internal/middlewares"
	"github.com/sbilibin2017/second-brain/internal/validation"
)

// Common response messages
const (
	msgInvalidBody    = "Invalid request body"
	msgValidation     = "Validation failed"
	msgUnauthorized   = "Unauthorized"
	msgInternalError  = "Internal server error"
	msgInvalidIDParam = "Invalid id format"
)

var validate = validation.New()

// ErrorResponse is the body of every failed JSON request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Validation failed
	Message string `json:"message"`

	// Offending fields and why
	Errors map[string]string `json:"errors,omitempty"`
}

// MessageResponse is a bare acknowledgement.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

func writeFieldError(w http.ResponseWriter, field, reason string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Message: msgValidation,
		Errors:  map[string]string{field: reason},
	})
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "error", err)
	writeError(w, http.StatusInternalServerError, msgInternalError)
}

// decodeAndValidate reads a JSON body into dst and runs the validation rules.
// On failure the 400 response is already written and false is returned.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.Warnw("failed to decode request", "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}

	if err := validate.Validate(dst); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: msgValidation, Errors: verr.Fields})
			return false
		}
		writeInternalError(w, err)
		return false
	}
	return true
}

// requireUser returns the caller set by the auth middleware, writing a 401 when absent.
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, msgUnauthorized)
	}
	return userID, ok
}

// uuidParam parses a UUID path parameter, writing a 400 when malformed.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidIDParam)
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalUUID parses s when not nil. ok is false when s is malformed.
func parseOptionalUUID(s *string) (id *uuid.UUID, ok bool) {
	if s == nil || *s == "" {
		return nil, true
	}
	parsed, err := uuid.Parse(*s)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}
