package commentservice

import (
	"context"

	commentdb "github.com/artfest/gallery-api/app/modules/comment/infrastructure/repositories"
)

// Service handles comment business logic.
type Service interface {
	// AddComment validates and stores a comment. Content must be non-empty
	// after trimming.
	AddComment(ctx context.Context, artworkID, authorID, content string) (*commentdb.Comment, error)

	// ListByArtwork returns the artwork's comments, oldest first.
	ListByArtwork(ctx context.Context, artworkID string) ([]commentdb.Comment, error)

	// DeleteComment removes one comment by id. Admin operation.
	DeleteComment(ctx context.Context, commentID string) error
}
