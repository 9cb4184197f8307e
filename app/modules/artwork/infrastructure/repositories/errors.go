package artworkdb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates the requested artwork does not exist.
	ErrNotFound = errors.New("artwork not found")

	// ErrNoRowsAffected indicates an UPDATE or DELETE matched no rows.
	ErrNoRowsAffected = errors.New("no rows affected")
)
