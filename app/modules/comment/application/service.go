package commentservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artfest/gallery-api/app/metrics"
	contestdomain "github.com/artfest/gallery-api/app/modules/contest/domain"
	commentdb "github.com/artfest/gallery-api/app/modules/comment/infrastructure/repositories"
	"github.com/artfest/gallery-api/app/shared"
)

// CommentService implements Service.
type CommentService struct {
	commentDB commentdb.CommentDB
	gate      *contestdomain.Gate
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

func NewCommentService(
	commentDB commentdb.CommentDB,
	gate *contestdomain.Gate,
	m *metrics.Metrics,
	logger *slog.Logger,
) *CommentService {
	return &CommentService{
		commentDB: commentDB,
		gate:      gate,
		metrics:   m,
		logger:    logger,
	}
}

func (s *CommentService) AddComment(ctx context.Context, artworkID, authorID, content string) (*commentdb.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("comment content is empty: %w", shared.ErrValidation)
	}

	if s.gate.Closed() {
		s.metrics.GateRejections.Inc()
		return nil, shared.ErrContestEnded
	}

	comment := &commentdb.Comment{
		ID:        uuid.NewString(),
		ArtworkID: artworkID,
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now(),
	}

	if err := s.commentDB.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	s.logger.Info("Comment added",
		slog.String("artwork_id", artworkID),
		slog.String("comment_id", comment.ID),
	)
	return comment, nil
}

func (s *CommentService) ListByArtwork(ctx context.Context, artworkID string) ([]commentdb.Comment, error) {
	comments, err := s.commentDB.ListByArtwork(ctx, artworkID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, commentID string) error {
	if err := s.commentDB.Delete(ctx, commentID); err != nil {
		if errors.Is(err, commentdb.ErrNotFound) {
			return fmt.Errorf("comment %s: %w", commentID, shared.ErrNotFound)
		}
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.logger.Info("Comment deleted", slog.String("comment_id", commentID))
	return nil
}
