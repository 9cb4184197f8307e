package artworkdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	commentdb "github.com/artfest/gallery-api/app/modules/comment/infrastructure/repositories"
	ratingdb "github.com/artfest/gallery-api/app/modules/rating/infrastructure/repositories"
)

type ArtworkDBImpl struct {
	DB *bun.DB
}

func (db *ArtworkDBImpl) Create(ctx context.Context, artwork *Artwork) error {
	_, err := db.DB.NewInsert().
		Model(artwork).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert artwork %s: %w", artwork.ID, err)
	}
	return nil
}

func (db *ArtworkDBImpl) GetByID(ctx context.Context, artworkID string) (*Artwork, error) {
	artwork := new(Artwork)

	err := db.DB.NewSelect().
		Model(artwork).
		Where("id = ?", artworkID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch artwork %s: %w", artworkID, err)
	}
	return artwork, nil
}

func (db *ArtworkDBImpl) ListApproved(ctx context.Context) ([]Artwork, error) {
	var artworks []Artwork

	err := db.DB.NewSelect().
		Model(&artworks).
		Where("approved = ?", true).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved artworks: %w", err)
	}
	return artworks, nil
}

func (db *ArtworkDBImpl) ListAll(ctx context.Context) ([]Artwork, error) {
	var artworks []Artwork

	err := db.DB.NewSelect().
		Model(&artworks).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list artworks: %w", err)
	}
	return artworks, nil
}

func (db *ArtworkDBImpl) Approve(ctx context.Context, artworkID string) error {
	res, err := db.DB.NewUpdate().
		Model((*Artwork)(nil)).
		Set("approved = ?", true).
		Where("id = ?", artworkID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to approve artwork %s: %w", artworkID, err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *ArtworkDBImpl) SetImageURL(ctx context.Context, artworkID, imageURL string) error {
	res, err := db.DB.NewUpdate().
		Model((*Artwork)(nil)).
		Set("image_url = ?", imageURL).
		Where("id = ?", artworkID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set image for artwork %s: %w", artworkID, err)
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the artwork together with its ratings and comments in one
// transaction, so no rating or comment can ever reference a missing artwork.
func (db *ArtworkDBImpl) Delete(ctx context.Context, artworkID string) error {
	tx, err := db.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NewDelete().
		Model((*ratingdb.Rating)(nil)).
		Where("artwork_id = ?", artworkID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete ratings for artwork %s: %w", artworkID, err)
	}

	if _, err := tx.NewDelete().
		Model((*commentdb.Comment)(nil)).
		Where("artwork_id = ?", artworkID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete comments for artwork %s: %w", artworkID, err)
	}

	res, err := tx.NewDelete().
		Model((*Artwork)(nil)).
		Where("id = ?", artworkID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete artwork %s: %w", artworkID, err)
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit artwork deletion: %w", err)
	}
	return nil
}
