package ratingdb

import "context"

// RatingDB is the store contract for rating records.
type RatingDB interface {
	// Upsert inserts or replaces the rating keyed on (artworkID, userID).
	Upsert(ctx context.Context, artworkID, userID string, value int) error

	// Delete removes a user's rating. Idempotent: deleting a rating that
	// does not exist is a no-op.
	Delete(ctx context.Context, artworkID, userID string) error

	// Get returns the user's rating for an artwork, or nil when none exists.
	Get(ctx context.Context, artworkID, userID string) (*Rating, error)

	// ListByArtwork returns the current snapshot for one artwork.
	ListByArtwork(ctx context.Context, artworkID string) ([]Rating, error)

	// ListAll returns the current global snapshot.
	ListAll(ctx context.Context) ([]Rating, error)
}
