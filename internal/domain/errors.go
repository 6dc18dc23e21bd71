package domain

import "errors"

var (
	// Entry errors
	ErrEntryNotFound = errors.New("entry not found")

	// Store errors
	ErrStoreUnavailable = errors.New("store unavailable")
)
