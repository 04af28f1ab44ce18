package wiki

import (
	"os"
	"strconv"
	"time"
)

// Config holds Wikipedia API connection settings
type Config struct {
	// BaseURL is the MediaWiki action API endpoint
	BaseURL string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the client to Wikipedia
	UserAgent string

	// RevisionLimit caps how many revisions a lookup requests
	RevisionLimit int
}

const (
	// DefaultBaseURL is the English Wikipedia action API
	DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

	// DefaultTimeout for a single API request
	DefaultTimeout = 10 * time.Second

	// DefaultRevisionLimit is how many revisions a lookup requests
	DefaultRevisionLimit = 30

	// MaxRevisionLimit is the most revisions a single query may request
	MaxRevisionLimit = 500

	defaultUserAgent = "WikipediaEditTracker/1.0 (https://github.com/olgasafonova/wikipedia-edit-tracker)"
)

// LoadConfig loads configuration from environment variables,
// falling back to English Wikipedia defaults
func LoadConfig() *Config {
	baseURL := os.Getenv("WIKIPEDIA_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := DefaultTimeout
	if t := os.Getenv("WIKIPEDIA_TIMEOUT"); t != "" {
		if d, err := time.ParseDuration(t); err == nil {
			timeout = d
		}
	}

	limit := DefaultRevisionLimit
	if l := os.Getenv("WIKIPEDIA_REVISION_LIMIT"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}

	userAgent := os.Getenv("WIKIPEDIA_USER_AGENT")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Config{
		BaseURL:       baseURL,
		Timeout:       timeout,
		UserAgent:     userAgent,
		RevisionLimit: limit,
	}
}
