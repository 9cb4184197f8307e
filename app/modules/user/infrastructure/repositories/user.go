package userdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

type UserDBImpl struct {
	DB *bun.DB
}

func (db *UserDBImpl) CreateWithProfile(ctx context.Context, user *User, profile *Profile) error {
	tx, err := db.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NewInsert().Model(user).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	if _, err := tx.NewInsert().Model(profile).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user creation: %w", err)
	}
	return nil
}

func (db *UserDBImpl) GetByID(ctx context.Context, userID string) (*User, error) {
	user := new(User)

	err := db.DB.NewSelect().
		Model(user).
		Where("id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	return user, nil
}

func (db *UserDBImpl) GetByEmail(ctx context.Context, email string) (*User, error) {
	user := new(User)

	err := db.DB.NewSelect().
		Model(user).
		Where("email = ?", email).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}
	return user, nil
}

func (db *UserDBImpl) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	profile := new(Profile)

	err := db.DB.NewSelect().
		Model(profile).
		Where("user_id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile for user %s: %w", userID, err)
	}
	return profile, nil
}
