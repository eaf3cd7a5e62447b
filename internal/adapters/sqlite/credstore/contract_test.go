package credstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/destination-europe/explorer-client/internal/adapters/contracttest"
	credstoreport "github.com/destination-europe/explorer-client/internal/ports/out/credstore"
)

func TestContract_CredStore(t *testing.T) {
	contracttest.RunCredStore(t, func(t *testing.T) (credstoreport.Store, func()) {
		t.Helper()
		store, err := Open(filepath.Join(t.TempDir(), "credentials.db"))
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		return store, func() { store.Close() }
	})
}

func TestReopenKeepsToken(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "credentials.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.Put(ctx, "persisted-token"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	got, err := reopened.Get(ctx)
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got != "persisted-token" {
		t.Fatalf("unexpected token after reopen: %q", got)
	}
}
