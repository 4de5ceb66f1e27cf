package repositories

import "errors"

// Store outcomes the handlers map to HTTP statuses.
var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidID        = errors.New("invalid record identifier")
	ErrStoreUnavailable = errors.New("document store unavailable")
)
