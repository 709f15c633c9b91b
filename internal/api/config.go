package api

import "time"

// DefaultBaseURL is the production deployment of the remote service.
const DefaultBaseURL = "https://hybridmodeldisability.onrender.com"

// Config holds resource client configuration.
type Config struct {
	// BaseURL of the remote service, without trailing slash.
	BaseURL string
	// Timeout for each request. Calls are fire-once: no retry or backoff.
	Timeout time.Duration
}

// DefaultConfig returns a config pointing at the production service.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: 30 * time.Second,
	}
}
