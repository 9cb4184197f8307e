package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/artfest/gallery-api/app/shared"
)

type errorResponse struct {
	Error string `json:"error"`
}

// Respond writes v as JSON with the given status.
func Respond(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// Error writes a JSON error body.
func Error(w http.ResponseWriter, status int, message string) {
	Respond(w, status, errorResponse{Error: message})
}

// ServiceError maps the service error taxonomy to HTTP statuses. Anything
// unrecognized becomes a 500 with a generic body.
func ServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shared.ErrConflict), errors.Is(err, shared.ErrContestEnded):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, shared.ErrForbidden):
		Error(w, http.StatusForbidden, err.Error())
	default:
		Error(w, http.StatusInternalServerError, "internal error")
	}
}
