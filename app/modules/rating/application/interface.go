package ratingservice

import (
	"context"

	contestdomain "github.com/artfest/gallery-api/app/modules/contest/domain"
)

// Service handles rating business logic. It also satisfies the contest
// module's RatingSource, feeding winner resolution and standings.
type Service interface {
	// SetRating upserts the caller's rating. Exactly one record per
	// (artwork, user) pair survives, holding the latest value.
	SetRating(ctx context.Context, artworkID, userID string, value int) error

	// RemoveRating fully removes the record; "no rating" and "rated 0" are
	// the same state. A missing record is a no-op.
	RemoveRating(ctx context.Context, artworkID, userID string) error

	// UserRating returns the caller's current rating, ok=false when unrated.
	UserRating(ctx context.Context, artworkID, userID string) (int, bool, error)

	// TotalScore is the sum of values over the artwork's ratings; 0 when
	// none exist. Always recomputed from the store.
	TotalScore(ctx context.Context, artworkID string) (int, error)

	// VoteCount is the cardinality of the artwork's rating set.
	VoteCount(ctx context.Context, artworkID string) (int, error)

	// ListAll snapshots every rating for aggregation.
	ListAll(ctx context.Context) ([]contestdomain.RatingEntry, error)
}
