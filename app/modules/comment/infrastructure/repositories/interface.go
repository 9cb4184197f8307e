package commentdb

import "context"

// CommentDB is the store contract for comments.
type CommentDB interface {
	Create(ctx context.Context, comment *Comment) error
	ListByArtwork(ctx context.Context, artworkID string) ([]Comment, error)
	Delete(ctx context.Context, commentID string) error
}
