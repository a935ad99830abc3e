// Package config loads exporter settings from the environment, with optional
// .env file support for local runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the full runtime configuration of a run.
type Config struct {
	// Token is the GitHub access token (GITHUB_TOKEN, required).
	Token string

	// InputPath is the CSV file listing usernames.
	InputPath string

	// OutputPath is the CSV file the repository rows are written to.
	OutputPath string

	// IdentifierColumn is the input column holding usernames.
	IdentifierColumn string

	// MaxRepos caps the records collected per username.
	MaxRepos int

	// PageSize is the page size requested from the API.
	PageSize int

	// Pause is the fixed inter-call pause applied by the rate governor.
	Pause time.Duration

	// BaseURL overrides the GitHub API endpoint.
	BaseURL string

	// UserAgent identifies this tool to the API.
	UserAgent string

	// HTTPTimeout applies per request.
	HTTPTimeout time.Duration

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string

	// LogPretty enables human-readable console logging.
	LogPretty bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored if present. Validation is separate so callers control
// how fatal errors are reported.
func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Token:            os.Getenv("GITHUB_TOKEN"),
		InputPath:        getEnv("INPUT_FILE", "users.csv"),
		OutputPath:       getEnv("OUTPUT_FILE", "repos.csv"),
		IdentifierColumn: getEnv("USERNAME_COLUMN", "username"),
		MaxRepos:         getIntEnv("MAX_REPOS", 500),
		PageSize:         getIntEnv("PAGE_SIZE", 100),
		Pause:            getDurationEnv("FIXED_PAUSE", 2*time.Second),
		BaseURL:          getEnv("GITHUB_API_URL", "https://api.github.com"),
		UserAgent:        getEnv("USER_AGENT", "ghexport/0.1.0"),
		HTTPTimeout:      getDurationEnv("HTTP_TIMEOUT", 30*time.Second),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogPretty:        getBoolEnv("LOG_PRETTY", false),
	}
}

// Validate checks the settings that make a run impossible. Both failures here
// are fatal startup errors by contract.
func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf("GITHUB_TOKEN is required")
	}
	if c.MaxRepos < 0 {
		return fmt.Errorf("MAX_REPOS must be >= 0 (got %d)", c.MaxRepos)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		// Try parsing as duration string (e.g. "2s", "500ms")
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		// Try parsing as integer seconds
		if i, err := strconv.Atoi(value); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return fallback
}
