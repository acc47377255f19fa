package domain

import "errors"

// Errors shared across the pipeline, mapped to HTTP statuses at the API
// boundary.
var (
	// ErrNoHandler is returned when no registered extractor claims an input.
	ErrNoHandler = errors.New("no extractor can handle input")
	// ErrNotFound is returned when a staging row does not exist.
	ErrNotFound = errors.New("crawled question not found")
	// ErrInvalidTransition is returned when approve/reject is attempted on
	// a row already in a terminal state that forbids the transition.
	ErrInvalidTransition = errors.New("invalid status transition")
)
