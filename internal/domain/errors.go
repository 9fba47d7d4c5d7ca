package domain

import "errors"

var (
	// ErrInvalidInput marks a malformed or incomplete listing submission.
	// The only error class surfaced to callers without a score attached.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBackendUnavailable marks a remote scoring backend that timed out,
	// errored, or returned a non-2xx status. Recovered internally by the
	// heuristic fallback and never surfaced through the API.
	ErrBackendUnavailable = errors.New("scoring backend unavailable")

	ErrNotFound           = errors.New("resource not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
