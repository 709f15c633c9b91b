// Package config holds server configuration: defaults, an optional YAML
// file, and CLINIDASH_* environment overrides, applied in that order.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds configuration for the dashboard server.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`             // Listen address (default ":8080")
	LogLevel        string        `yaml:"log_level"`        // Log level: debug, info, warn, error
	LogFormat       string        `yaml:"log_format"`       // Log format: text, json
	DBPath          string        `yaml:"db_path"`          // SQLite session database path (":memory:" for testing)
	APIBaseURL      string        `yaml:"api_base_url"`     // Remote resource service base URL
	APITimeout      time.Duration `yaml:"-"`                // Per-request timeout against the remote service
	SecureCookies   bool          `yaml:"secure_cookies"`   // Mark session cookies Secure (behind TLS)
	DefaultLanguage string        `yaml:"default_language"` // UI language for new sessions: en or es
	LoginRatePerMin int           `yaml:"login_rate_per_min"` // Login attempts allowed per client IP per minute
}

// DefaultServerConfig returns sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:            ":8080",
		LogLevel:        "info",
		LogFormat:       "text",
		DBPath:          "clinidash.db",
		APIBaseURL:      "https://hybridmodeldisability.onrender.com",
		APITimeout:      30 * time.Second,
		DefaultLanguage: "en",
		LoginRatePerMin: 10,
	}
}

// UnmarshalYAML decodes the config, accepting api_timeout as a duration
// string ("30s", "2m").
func (c *ServerConfig) UnmarshalYAML(node *yaml.Node) error {
	type alias ServerConfig
	aux := struct {
		alias      `yaml:",inline"`
		APITimeout string `yaml:"api_timeout"`
	}{alias: alias(*c)}
	if err := node.Decode(&aux); err != nil {
		return err
	}
	*c = ServerConfig(aux.alias)
	if aux.APITimeout != "" {
		d, err := time.ParseDuration(aux.APITimeout)
		if err != nil {
			return fmt.Errorf("api_timeout: %w", err)
		}
		c.APITimeout = d
	}
	return nil
}

// LoadServerConfig builds the effective configuration: defaults, then the
// YAML file at path (skipped when path is empty; missing file is an
// error), then environment overrides.
func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.DefaultLanguage != "en" && cfg.DefaultLanguage != "es" {
		return cfg, fmt.Errorf("unsupported default language %q", cfg.DefaultLanguage)
	}
	return cfg, nil
}

func (c *ServerConfig) applyEnv() {
	c.Addr = getEnvString("CLINIDASH_ADDR", c.Addr)
	c.LogLevel = getEnvString("CLINIDASH_LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnvString("CLINIDASH_LOG_FORMAT", c.LogFormat)
	c.DBPath = getEnvString("CLINIDASH_DB_PATH", c.DBPath)
	c.APIBaseURL = getEnvString("CLINIDASH_API_URL", c.APIBaseURL)
	c.APITimeout = getEnvDuration("CLINIDASH_API_TIMEOUT", c.APITimeout)
	c.SecureCookies = getEnvBool("CLINIDASH_SECURE_COOKIES", c.SecureCookies)
	c.DefaultLanguage = getEnvString("CLINIDASH_DEFAULT_LANGUAGE", c.DefaultLanguage)
	c.LoginRatePerMin = getEnvInt("CLINIDASH_LOGIN_RATE_PER_MIN", c.LoginRatePerMin)
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
