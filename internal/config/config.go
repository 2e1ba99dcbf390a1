package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the time tracker application
type Config struct {
	Database    DatabaseConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TT_DB_DIR"`
	Filename       string        `env:"TT_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TT_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `env:"TT_DB_DIR_PERMISSIONS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TT_APP_TIMEOUT"`
	Verbose bool          `env:"TT_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".tt")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "tt.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TT_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TT_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TT_DB_QUERY_TIMEOUT"); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return err
		}
		c.Database.QueryTimeout = parsed
	}
	if perms := os.Getenv("TT_DB_DIR_PERMISSIONS"); perms != "" {
		parsed, err := strconv.ParseUint(perms, 8, 32)
		if err != nil {
			return err
		}
		c.Database.DirPermissions = uint32(parsed)
	}
	if timeout := os.Getenv("TT_APP_TIMEOUT"); timeout != "" {
		parsed, err := time.ParseDuration(timeout)
		if err != nil {
			return err
		}
		c.Application.Timeout = parsed
	}
	if verbose := os.Getenv("TT_APP_VERBOSE"); verbose != "" {
		parsed, err := strconv.ParseBool(verbose)
		if err != nil {
			return err
		}
		c.Application.Verbose = parsed
	}
	return nil
}

// Load creates a configuration from defaults overridden by environment
// variables
func Load() (*Config, error) {
	config := NewConfig()
	if err := config.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	return config, nil
}
