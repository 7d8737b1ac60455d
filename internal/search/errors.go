package search

import "errors"

var (
	// ErrSuppressed means the fetch was dropped on purpose: an identical
	// request is already in flight, or there is nothing more to load.
	// Callers should do nothing. It is not a failure.
	ErrSuppressed = errors.New("fetch suppressed")

	// ErrUnknownMode indicates a Mode value outside ModeInitial and ModeMore.
	ErrUnknownMode = errors.New("unknown fetch mode")
)
