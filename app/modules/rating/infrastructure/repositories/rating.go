package ratingdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type RatingDBImpl struct {
	DB *bun.DB
}

func (db *RatingDBImpl) Upsert(ctx context.Context, artworkID, userID string, value int) error {
	rating := Rating{
		ArtworkID: artworkID,
		UserID:    userID,
		Value:     value,
		UpdatedAt: time.Now(),
	}

	_, err := db.DB.NewInsert().
		Model(&rating).
		On("CONFLICT (artwork_id, user_id) DO UPDATE").
		Set("value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("failed to upsert rating for artwork %s: %w", artworkID, err)
	}

	return nil
}

func (db *RatingDBImpl) Delete(ctx context.Context, artworkID, userID string) error {
	_, err := db.DB.NewDelete().
		Model((*Rating)(nil)).
		Where("artwork_id = ?", artworkID).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete rating for artwork %s: %w", artworkID, err)
	}
	return nil
}

func (db *RatingDBImpl) Get(ctx context.Context, artworkID, userID string) (*Rating, error) {
	rating := new(Rating)

	err := db.DB.NewSelect().
		Model(rating).
		Where("artwork_id = ?", artworkID).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch rating for artwork %s: %w", artworkID, err)
	}
	return rating, nil
}

func (db *RatingDBImpl) ListByArtwork(ctx context.Context, artworkID string) ([]Rating, error) {
	var ratings []Rating

	err := db.DB.NewSelect().
		Model(&ratings).
		Where("artwork_id = ?", artworkID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings for artwork %s: %w", artworkID, err)
	}
	return ratings, nil
}

func (db *RatingDBImpl) ListAll(ctx context.Context) ([]Rating, error) {
	var ratings []Rating

	err := db.DB.NewSelect().
		Model(&ratings).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}
