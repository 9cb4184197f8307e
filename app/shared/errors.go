package shared

import "errors"

// Service-level error taxonomy. Repositories keep their own sentinel errors;
// services wrap them into one of these so the HTTP layer can map status
// codes without knowing about the store.
var (
	// ErrValidation rejects bad input before any store call.
	ErrValidation = errors.New("validation failed")

	// ErrConflict surfaces a uniqueness violation ("already acted").
	ErrConflict = errors.New("conflict")

	// ErrNotFound maps to 404.
	ErrNotFound = errors.New("not found")

	// ErrContestEnded rejects mutations after the countdown gate closed.
	ErrContestEnded = errors.New("contest has ended")

	// ErrForbidden rejects a caller without the required capability.
	ErrForbidden = errors.New("forbidden")
)
