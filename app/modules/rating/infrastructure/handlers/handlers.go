package ratinghandlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/artfest/gallery-api/app/httputil"
	"github.com/artfest/gallery-api/app/middleware"
	ratingservice "github.com/artfest/gallery-api/app/modules/rating/application"
)

// Handlers exposes rating writes and the caller's own rating.
type Handlers struct {
	service ratingservice.Service
}

func NewHandlers(service ratingservice.Service) *Handlers {
	return &Handlers{service: service}
}

type setRatingRequest struct {
	Value int `json:"value"`
}

// Set upserts the caller's rating for an artwork.
func (h *Handlers) Set(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var req setRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.SetRating(r.Context(), chi.URLParam(r, "id"), userID, req.Value); err != nil {
		httputil.ServiceError(w, err)
		return
	}

	httputil.Respond(w, http.StatusNoContent, nil)
}

// Remove deletes the caller's rating. Removing a rating that does not exist
// succeeds; both end states are "unrated".
func (h *Handlers) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	if err := h.service.RemoveRating(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		httputil.ServiceError(w, err)
		return
	}

	httputil.Respond(w, http.StatusNoContent, nil)
}

type ownRatingResponse struct {
	Rated bool `json:"rated"`
	Value int  `json:"value,omitempty"`
}

// GetOwn returns the caller's current rating for an artwork.
func (h *Handlers) GetOwn(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	value, rated, err := h.service.UserRating(r.Context(), chi.URLParam(r, "id"), userID)
	if err != nil {
		httputil.ServiceError(w, err)
		return
	}

	httputil.Respond(w, http.StatusOK, ownRatingResponse{Rated: rated, Value: value})
}
