package domain

import "errors"

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")

	// ErrBackendUnavailable marks failures where storage could not be
	// reached at all, as opposed to queries that ran and found nothing.
	ErrBackendUnavailable = errors.New("backend unavailable")
)
