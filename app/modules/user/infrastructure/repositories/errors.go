package userdb

import (
	"errors"

	"github.com/uptrace/bun/driver/pgdriver"
)

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicate indicates the email or username is already taken.
	ErrDuplicate = errors.New("user already exists")
)

const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) {
		return pgErr.Field('C') == pgUniqueViolation
	}
	return false
}
