package authgw

import "errors"

var (
	// ErrInvalidCredentials indicates the email/password pair was rejected.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotVerified indicates the account exists but the email verification
	// link has not been followed yet.
	ErrNotVerified = errors.New("account not verified")

	// ErrAlreadyExists indicates an account already exists for the email.
	ErrAlreadyExists = errors.New("account already exists")

	// ErrUnavailable indicates the gateway could not be reached or answered
	// with an unexpected failure.
	ErrUnavailable = errors.New("auth gateway unavailable")
)
