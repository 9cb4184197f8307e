package commentdb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates the requested comment does not exist.
	ErrNotFound = errors.New("comment not found")
)
