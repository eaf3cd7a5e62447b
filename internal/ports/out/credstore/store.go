package credstore

import (
	"context"
	"errors"
)

// ErrNoCredential indicates no token is currently stored.
var ErrNoCredential = errors.New("no credential stored")

// Store persists the single bearer token under a fixed storage key. This is
// the only client-persisted state; it is set on login, read by every mutating
// call, and cleared only by explicit logout.
type Store interface {
	Put(ctx context.Context, token string) error
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
