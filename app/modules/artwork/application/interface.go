package artworkservice

import (
	"context"
	"io"

	artworkdb "github.com/artfest/gallery-api/app/modules/artwork/infrastructure/repositories"
)

// GalleryItem is an approved artwork enriched with its rating aggregates.
type GalleryItem struct {
	Artwork    artworkdb.Artwork `json:"artwork"`
	TotalScore int               `json:"total_score"`
	VoteCount  int               `json:"vote_count"`
}

// RatingAggregates is the slice of the rating module this service consumes.
type RatingAggregates interface {
	TotalScore(ctx context.Context, artworkID string) (int, error)
	VoteCount(ctx context.Context, artworkID string) (int, error)
}

// Service handles artwork business logic.
type Service interface {
	// Submit stores a new, unapproved artwork owned by the caller.
	Submit(ctx context.Context, ownerID, title, description string) (*artworkdb.Artwork, error)

	// Gallery is the public view: approved artworks with their current
	// score totals and vote counts.
	Gallery(ctx context.Context) ([]GalleryItem, error)

	// Get returns one artwork with its aggregates.
	Get(ctx context.Context, artworkID string) (*GalleryItem, error)

	// ListAll is the unfiltered admin view, pending submissions included.
	ListAll(ctx context.Context) ([]artworkdb.Artwork, error)

	// Approve publishes a pending submission to the gallery. Admin operation.
	Approve(ctx context.Context, artworkID string) error

	// Delete removes the artwork together with its ratings and comments.
	// Admin operation.
	Delete(ctx context.Context, artworkID string) error

	// AttachImage stores the upload and records its public URL on the
	// artwork. Only the owner may attach.
	AttachImage(ctx context.Context, artworkID, requesterID, filename string, size int64, r io.Reader) (string, error)
}
