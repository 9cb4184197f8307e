package ratingdb

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Sentinel errors for the repository layer.
var (
	// ErrConflict indicates the store's uniqueness guarantee rejected a
	// write. It should not occur through the upsert path; it exists for the
	// case where the constraint is hit by a concurrent bypass.
	ErrConflict = errors.New("rating already exists")
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == pgUniqueViolation
	}
	return false
}
