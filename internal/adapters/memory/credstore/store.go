// Package credstore is an in-memory credential store for tests.
package credstore

import (
	"context"
	"sync"

	"github.com/destination-europe/explorer-client/internal/ports/out/credstore"
)

type Store struct {
	mu    sync.Mutex
	token string
	has   bool
}

var _ credstore.Store = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Put(ctx context.Context, token string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.has = true
	return nil
}

func (s *Store) Get(ctx context.Context) (string, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.has {
		return "", credstore.ErrNoCredential
	}
	return s.token, nil
}

func (s *Store) Clear(ctx context.Context) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.has = false
	return nil
}
