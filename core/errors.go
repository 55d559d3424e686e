package core

import "errors"

var (
	// ErrEmptyInput is returned by the front end for a blank string or
	// alphabet. The generators are never called with it.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidInput is returned for degenerate generator arguments such
	// as an empty alphabet or a non-positive length.
	ErrInvalidInput = errors.New("invalid input")

	// ErrIOFailure wraps every failure to write results or logs.
	ErrIOFailure = errors.New("io failure")
)
