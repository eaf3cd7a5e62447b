// Package credstore persists the session token in a local SQLite database, so
// a login survives process restarts until an explicit logout.
package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/destination-europe/explorer-client/internal/ports/out/credstore"
)

// storageKey is the fixed row id; the table never holds more than one token.
const storageKey = 1

const schema = `
CREATE TABLE IF NOT EXISTS credentials (
	id    INTEGER PRIMARY KEY CHECK (id = 1),
	token TEXT NOT NULL
);`

type Store struct {
	db *sql.DB
}

var _ credstore.Store = (*Store)(nil)

// Open opens (creating if needed) the credential database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open credential db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate credential db: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Put(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO credentials (id, token) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET token = excluded.token`,
		storageKey, token)
	if err != nil {
		return fmt.Errorf("store credential: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx,
		`SELECT token FROM credentials WHERE id = ?`, storageKey).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", credstore.ErrNoCredential
	}
	if err != nil {
		return "", fmt.Errorf("read credential: %w", err)
	}
	return token, nil
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE id = ?`, storageKey)
	if err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}
