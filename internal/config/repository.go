package config

import (
	"os"

	"github.com/kz2wd/time-tracker/internal/errors"
	"github.com/kz2wd/time-tracker/internal/repository/sqlite"
)

// CreateRepository opens the repository at the configured database path,
// creating the database directory if needed.
func CreateRepository(config *Config) (sqlite.Repository, error) {
	if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
		return nil, errors.NewStoreUnavailableError(config.Database.Dir, err)
	}

	return sqlite.New(config.GetDatabasePath())
}

// CreateTestRepository creates a repository backed by a throwaway database
// file for testing.
func CreateTestRepository() (sqlite.Repository, error) {
	dir, err := os.MkdirTemp("", "tt-test-")
	if err != nil {
		return nil, errors.NewStoreUnavailableError("temp dir", err)
	}

	return sqlite.New(dir + "/tt.db")
}
