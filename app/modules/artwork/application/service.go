package artworkservice

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artfest/gallery-api/app/metrics"
	artworkdb "github.com/artfest/gallery-api/app/modules/artwork/infrastructure/repositories"
	contestdomain "github.com/artfest/gallery-api/app/modules/contest/domain"
	"github.com/artfest/gallery-api/app/shared"
	"github.com/artfest/gallery-api/app/storage"
)

const maxTitleLength = 200

// ArtworkService implements Service.
type ArtworkService struct {
	artworkDB artworkdb.ArtworkDB
	ratings   RatingAggregates
	gate      *contestdomain.Gate
	store     storage.Store
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewArtworkService(
	artworkDB artworkdb.ArtworkDB,
	ratings RatingAggregates,
	gate *contestdomain.Gate,
	store storage.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
) *ArtworkService {
	return &ArtworkService{
		artworkDB: artworkDB,
		ratings:   ratings,
		gate:      gate,
		store:     store,
		metrics:   m,
		logger:    logger,
	}
}

func (s *ArtworkService) Submit(ctx context.Context, ownerID, title, description string) (*artworkdb.Artwork, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("artwork title is empty: %w", shared.ErrValidation)
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("artwork title exceeds %d characters: %w", maxTitleLength, shared.ErrValidation)
	}

	if s.gate.Closed() {
		s.metrics.GateRejections.Inc()
		return nil, shared.ErrContestEnded
	}

	artwork := &artworkdb.Artwork{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(description),
		OwnerID:     ownerID,
		Approved:    false,
		CreatedAt:   time.Now(),
	}

	if err := s.artworkDB.Create(ctx, artwork); err != nil {
		return nil, fmt.Errorf("failed to submit artwork: %w", err)
	}

	s.logger.Info("Artwork submitted",
		slog.String("artwork_id", artwork.ID),
		slog.String("owner_id", ownerID),
	)
	return artwork, nil
}

func (s *ArtworkService) Gallery(ctx context.Context) ([]GalleryItem, error) {
	artworks, err := s.artworkDB.ListApproved(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery: %w", err)
	}
	return s.enrich(ctx, artworks)
}

func (s *ArtworkService) Get(ctx context.Context, artworkID string) (*GalleryItem, error) {
	artwork, err := s.artworkDB.GetByID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, artworkdb.ErrNotFound) {
			return nil, fmt.Errorf("artwork %s: %w", artworkID, shared.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get artwork: %w", err)
	}

	items, err := s.enrich(ctx, []artworkdb.Artwork{*artwork})
	if err != nil {
		return nil, err
	}
	return &items[0], nil
}

func (s *ArtworkService) ListAll(ctx context.Context) ([]artworkdb.Artwork, error) {
	artworks, err := s.artworkDB.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}
	return artworks, nil
}

func (s *ArtworkService) Approve(ctx context.Context, artworkID string) error {
	if err := s.artworkDB.Approve(ctx, artworkID); err != nil {
		if errors.Is(err, artworkdb.ErrNotFound) || errors.Is(err, artworkdb.ErrNoRowsAffected) {
			return fmt.Errorf("artwork %s: %w", artworkID, shared.ErrNotFound)
		}
		return fmt.Errorf("failed to approve artwork: %w", err)
	}

	s.logger.Info("Artwork approved", slog.String("artwork_id", artworkID))
	return nil
}

func (s *ArtworkService) Delete(ctx context.Context, artworkID string) error {
	if err := s.artworkDB.Delete(ctx, artworkID); err != nil {
		if errors.Is(err, artworkdb.ErrNotFound) || errors.Is(err, artworkdb.ErrNoRowsAffected) {
			return fmt.Errorf("artwork %s: %w", artworkID, shared.ErrNotFound)
		}
		return fmt.Errorf("failed to delete artwork: %w", err)
	}

	s.logger.Info("Artwork deleted", slog.String("artwork_id", artworkID))
	return nil
}

func (s *ArtworkService) AttachImage(ctx context.Context, artworkID, requesterID, filename string, size int64, r io.Reader) (string, error) {
	artwork, err := s.artworkDB.GetByID(ctx, artworkID)
	if err != nil {
		if errors.Is(err, artworkdb.ErrNotFound) {
			return "", fmt.Errorf("artwork %s: %w", artworkID, shared.ErrNotFound)
		}
		return "", fmt.Errorf("failed to get artwork: %w", err)
	}
	if artwork.OwnerID != requesterID {
		return "", fmt.Errorf("artwork %s belongs to another user: %w", artworkID, shared.ErrForbidden)
	}

	if s.gate.Closed() {
		s.metrics.GateRejections.Inc()
		return "", shared.ErrContestEnded
	}

	// Name the stored file after the artwork so re-uploads overwrite.
	stored := artworkID + strings.ToLower(filepath.Ext(filename))
	url, err := s.store.Save(stored, size, r)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", shared.ErrValidation)
	}

	if err := s.artworkDB.SetImageURL(ctx, artworkID, url); err != nil {
		return "", fmt.Errorf("failed to record image url: %w", err)
	}

	s.logger.Info("Artwork image attached",
		slog.String("artwork_id", artworkID),
		slog.String("image_url", url),
	)
	return url, nil
}

func (s *ArtworkService) enrich(ctx context.Context, artworks []artworkdb.Artwork) ([]GalleryItem, error) {
	items := make([]GalleryItem, 0, len(artworks))
	for _, artwork := range artworks {
		total, err := s.ratings.TotalScore(ctx, artwork.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to total ratings for %s: %w", artwork.ID, err)
		}
		count, err := s.ratings.VoteCount(ctx, artwork.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count ratings for %s: %w", artwork.ID, err)
		}
		items = append(items, GalleryItem{Artwork: artwork, TotalScore: total, VoteCount: count})
	}
	return items, nil
}
