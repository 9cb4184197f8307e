package ratingservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/artfest/gallery-api/app/metrics"
	contestdomain "github.com/artfest/gallery-api/app/modules/contest/domain"
	ratingdb "github.com/artfest/gallery-api/app/modules/rating/infrastructure/repositories"
	"github.com/artfest/gallery-api/app/shared"
)

// Bounds is the accepted rating value range, inclusive.
type Bounds struct {
	Min int
	Max int
}

// RatingService implements Service.
type RatingService struct {
	ratingDB ratingdb.RatingDB
	gate     *contestdomain.Gate
	bounds   Bounds
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewRatingService(
	ratingDB ratingdb.RatingDB,
	gate *contestdomain.Gate,
	bounds Bounds,
	m *metrics.Metrics,
	logger *slog.Logger,
) *RatingService {
	return &RatingService{
		ratingDB: ratingDB,
		gate:     gate,
		bounds:   bounds,
		metrics:  m,
		logger:   logger,
	}
}

func (s *RatingService) SetRating(ctx context.Context, artworkID, userID string, value int) error {
	if value < s.bounds.Min || value > s.bounds.Max {
		return fmt.Errorf("rating %d outside range %d-%d: %w", value, s.bounds.Min, s.bounds.Max, shared.ErrValidation)
	}

	// Re-check the gate here so a request racing the end transition cannot
	// slip a write past a handler-level check.
	if s.gate.Closed() {
		s.metrics.GateRejections.Inc()
		return shared.ErrContestEnded
	}

	if err := s.ratingDB.Upsert(ctx, artworkID, userID, value); err != nil {
		if errors.Is(err, ratingdb.ErrConflict) {
			return fmt.Errorf("rating for artwork %s: %w", artworkID, shared.ErrConflict)
		}
		return fmt.Errorf("failed to set rating: %w", err)
	}

	s.metrics.RatingsWritten.Inc()
	s.logger.Info("Rating set",
		slog.String("artwork_id", artworkID),
		slog.String("user_id", userID),
		slog.Int("value", value),
	)
	return nil
}

func (s *RatingService) RemoveRating(ctx context.Context, artworkID, userID string) error {
	if s.gate.Closed() {
		s.metrics.GateRejections.Inc()
		return shared.ErrContestEnded
	}

	if err := s.ratingDB.Delete(ctx, artworkID, userID); err != nil {
		return fmt.Errorf("failed to remove rating: %w", err)
	}

	s.metrics.RatingsRemoved.Inc()
	s.logger.Info("Rating removed",
		slog.String("artwork_id", artworkID),
		slog.String("user_id", userID),
	)
	return nil
}

func (s *RatingService) UserRating(ctx context.Context, artworkID, userID string) (int, bool, error) {
	rating, err := s.ratingDB.Get(ctx, artworkID, userID)
	if err != nil {
		return 0, false, fmt.Errorf("failed to fetch rating: %w", err)
	}
	if rating == nil {
		return 0, false, nil
	}
	return rating.Value, true, nil
}

func (s *RatingService) TotalScore(ctx context.Context, artworkID string) (int, error) {
	ratings, err := s.ratingDB.ListByArtwork(ctx, artworkID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute total score: %w", err)
	}

	total := 0
	for _, r := range ratings {
		total += r.Value
	}
	return total, nil
}

func (s *RatingService) VoteCount(ctx context.Context, artworkID string) (int, error) {
	ratings, err := s.ratingDB.ListByArtwork(ctx, artworkID)
	if err != nil {
		return 0, fmt.Errorf("failed to compute vote count: %w", err)
	}
	return len(ratings), nil
}

func (s *RatingService) ListAll(ctx context.Context) ([]contestdomain.RatingEntry, error) {
	ratings, err := s.ratingDB.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}

	entries := make([]contestdomain.RatingEntry, len(ratings))
	for i, r := range ratings {
		entries[i] = contestdomain.RatingEntry{
			ArtworkID: r.ArtworkID,
			UserID:    r.UserID,
			Value:     r.Value,
		}
	}
	return entries, nil
}
