package authgw

import "context"

// Client is the authentication gateway. Token issuance and verification are
// entirely server-side; this port is a thin pass-through.
type Client interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)

	// Signup registers a new account. The account stays unusable until the
	// emailed verification link is followed.
	Signup(ctx context.Context, name, email, password string) error

	ResendVerification(ctx context.Context, email string) error
}
