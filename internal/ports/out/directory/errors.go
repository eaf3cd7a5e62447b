package directory

import "errors"

var (
	// ErrNotFound indicates the requested destination does not exist.
	ErrNotFound = errors.New("destination not found")

	// ErrUnavailable indicates the directory could not be reached or answered
	// with an unexpected failure.
	ErrUnavailable = errors.New("directory unavailable")
)
