package commentdb

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

type CommentDBImpl struct {
	DB *bun.DB
}

func (db *CommentDBImpl) Create(ctx context.Context, comment *Comment) error {
	_, err := db.DB.NewInsert().
		Model(comment).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert comment for artwork %s: %w", comment.ArtworkID, err)
	}
	return nil
}

func (db *CommentDBImpl) ListByArtwork(ctx context.Context, artworkID string) ([]Comment, error) {
	var comments []Comment

	err := db.DB.NewSelect().
		Model(&comments).
		Where("artwork_id = ?", artworkID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for artwork %s: %w", artworkID, err)
	}
	return comments, nil
}

func (db *CommentDBImpl) Delete(ctx context.Context, commentID string) error {
	res, err := db.DB.NewDelete().
		Model((*Comment)(nil)).
		Where("id = ?", commentID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete comment %s: %w", commentID, err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}
	return nil
}
