package listrepo

import "errors"

var (
	// ErrNotFound indicates the requested list does not exist.
	ErrNotFound = errors.New("list not found")

	// ErrUnauthorized indicates the credential was missing, expired, or does
	// not own the list.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnavailable indicates the repository could not be reached or answered
	// with an unexpected failure.
	ErrUnavailable = errors.New("list repository unavailable")
)
