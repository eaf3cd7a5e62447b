package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the client's deployment-provided settings. A .env file in the
// working directory is honored but optional; real environment variables win.
type Config struct {
	DirectoryBaseURL string
	ListsBaseURL     string
	AuthBaseURL      string

	HTTPTimeout time.Duration

	// CredentialDBPath is where the session token is persisted between runs.
	CredentialDBPath string

	SearchPageSize int
	ListsPageSize  int
}

func LoadFromEnv() (Config, error) {
	// Ignore a missing .env; it only exists in local setups.
	_ = godotenv.Load()

	cfg := Config{
		DirectoryBaseURL: getEnv("EXPLORER_DIRECTORY_URL", "http://localhost:3000/api"),
		ListsBaseURL:     getEnv("EXPLORER_LISTS_URL", "http://localhost:3000/api"),
		AuthBaseURL:      getEnv("EXPLORER_AUTH_URL", "http://localhost:3000/api"),
		HTTPTimeout:      10 * time.Second,
		CredentialDBPath: getEnv("EXPLORER_CREDENTIAL_DB", "explorer-credentials.db"),
		SearchPageSize:   5,
		ListsPageSize:    10,
	}

	if v := os.Getenv("EXPLORER_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("EXPLORER_HTTP_TIMEOUT must be a duration (e.g. 10s): %w", err)
		}
		cfg.HTTPTimeout = d
	}
	if v := os.Getenv("EXPLORER_SEARCH_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("EXPLORER_SEARCH_PAGE_SIZE must be a positive integer, got %q", v)
		}
		cfg.SearchPageSize = n
	}
	if v := os.Getenv("EXPLORER_LISTS_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Config{}, fmt.Errorf("EXPLORER_LISTS_PAGE_SIZE must be a positive integer, got %q", v)
		}
		cfg.ListsPageSize = n
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
