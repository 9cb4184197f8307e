package contestdb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates the settings row has not been seeded yet. The
	// clock treats this as "loading", not as a closed contest.
	ErrNotFound = errors.New("contest settings not found")
)
