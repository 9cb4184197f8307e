package commenthandlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/artfest/gallery-api/app/httputil"
	"github.com/artfest/gallery-api/app/middleware"
	commentservice "github.com/artfest/gallery-api/app/modules/comment/application"
	userdb "github.com/artfest/gallery-api/app/modules/user/infrastructure/repositories"
)

// ProfileSource resolves author ids to display names.
type ProfileSource interface {
	Profile(ctx context.Context, userID string) (*userdb.Profile, error)
}

// Handlers exposes comment reads and writes.
type Handlers struct {
	service  commentservice.Service
	profiles ProfileSource
	logger   *slog.Logger
}

func NewHandlers(service commentservice.Service, profiles ProfileSource, logger *slog.Logger) *Handlers {
	return &Handlers{service: service, profiles: profiles, logger: logger}
}

type commentResponse struct {
	ID         string    `json:"id"`
	ArtworkID  string    `json:"artwork_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// List serves an artwork's comments, oldest first, with author names.
func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.service.ListByArtwork(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.logger.Error("Failed to list comments", slog.Any("error", err))
		httputil.ServiceError(w, err)
		return
	}

	// Authors repeat across comments; resolve each id once.
	names := make(map[string]string)
	out := make([]commentResponse, 0, len(comments))
	for _, c := range comments {
		name, ok := names[c.AuthorID]
		if !ok {
			if profile, err := h.profiles.Profile(r.Context(), c.AuthorID); err == nil {
				name = profile.Username
			}
			names[c.AuthorID] = name
		}
		out = append(out, commentResponse{
			ID:         c.ID,
			ArtworkID:  c.ArtworkID,
			AuthorID:   c.AuthorID,
			AuthorName: name,
			Content:    c.Content,
			CreatedAt:  c.CreatedAt,
		})
	}

	httputil.Respond(w, http.StatusOK, out)
}

type createCommentRequest struct {
	Content string `json:"content"`
}

// Create adds a comment from the authenticated user.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "missing bearer token")
		return
	}

	var req createCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	comment, err := h.service.AddComment(r.Context(), chi.URLParam(r, "id"), userID, req.Content)
	if err != nil {
		httputil.ServiceError(w, err)
		return
	}

	httputil.Respond(w, http.StatusCreated, comment)
}

// Delete removes one comment. Admin route.
func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteComment(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.ServiceError(w, err)
		return
	}
	httputil.Respond(w, http.StatusNoContent, nil)
}
