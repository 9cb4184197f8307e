package artworkhandlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/artfest/gallery-api/app/httputil"
	"github.com/artfest/gallery-api/app/middleware"
	artworkservice "github.com/artfest/gallery-api/app/modules/artwork/application"
)

const maxUploadMemory = 8 << 20

// Handlers exposes the gallery and artwork administration.
type Handlers struct {
	service artworkservice.Service
	logger  *slog.Logger
}

func NewHandlers(service artworkservice.Service, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, logger: logger}
}

// ListGallery serves the approved artworks with their score aggregates.
func (h *Handlers) ListGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Gallery(r.Context())
	if err != nil {
		h.logger.Error("Failed to list gallery", slog.Any("error", err))
		httputil.ServiceError(w, err)
		return
	}
	if items == nil {
		items = []artworkservice.GalleryItem{}
	}
	httputil.Respond(w, http.StatusOK, items)
}

// Get serves one artwork with its aggregates.
func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.ServiceError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, item)
}

type submitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Submit accepts a new artwork from the authenticated user.
func (h *Handlers) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	artwork, err := h.service.Submit(r.Context(), userID, req.Title, req.Description)
	if err != nil {
		httputil.ServiceError(w, err)
		return
	}

	httputil.Respond(w, http.StatusCreated, artwork)
}

// UploadImage stores a multipart image for the caller's artwork.
func (h *Handlers) UploadImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httputil.Error(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	url, err := h.service.AttachImage(r.Context(), chi.URLParam(r, "id"), userID, header.Filename, header.Size, file)
	if err != nil {
		httputil.ServiceError(w, err)
		return
	}

	httputil.Respond(w, http.StatusOK, map[string]string{"image_url": url})
}

// ListAll is the unfiltered admin listing.
func (h *Handlers) ListAll(w http.ResponseWriter, r *http.Request) {
	artworks, err := h.service.ListAll(r.Context())
	if err != nil {
		h.logger.Error("Failed to list artworks", slog.Any("error", err))
		httputil.ServiceError(w, err)
		return
	}
	httputil.Respond(w, http.StatusOK, artworks)
}

// Approve publishes a pending submission.
func (h *Handlers) Approve(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Approve(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.ServiceError(w, err)
		return
	}
	httputil.Respond(w, http.StatusNoContent, nil)
}

// Delete removes an artwork and its dependents.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.ServiceError(w, err)
		return
	}
	httputil.Respond(w, http.StatusNoContent, nil)
}
