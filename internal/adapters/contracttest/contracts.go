package contracttest

import (
	"context"
	"errors"
	"testing"

	credstoreport "github.com/destination-europe/explorer-client/internal/ports/out/credstore"
)

type CleanupFunc = func()

type CredStoreFactory func(t *testing.T) (credstoreport.Store, CleanupFunc)

func RunCredStore(t *testing.T, newStore CredStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	// Empty store reports the sentinel, not an empty token.
	if _, err := store.Get(ctx); !errors.Is(err, credstoreport.ErrNoCredential) {
		t.Fatalf("Get on empty store: want ErrNoCredential, got %v", err)
	}

	if err := store.Put(ctx, "token-1"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "token-1" {
		t.Fatalf("unexpected token: %q", got)
	}

	// Overwrite semantics: a second login replaces the stored token.
	if err := store.Put(ctx, "token-2"); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, err = store.Get(ctx)
	if err != nil || got != "token-2" {
		t.Fatalf("expected overwritten token, got %q err=%v", got, err)
	}

	// Clear empties the store and is idempotent.
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, err := store.Get(ctx); !errors.Is(err, credstoreport.ErrNoCredential) {
		t.Fatalf("Get after Clear: want ErrNoCredential, got %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear twice: %v", err)
	}
}
