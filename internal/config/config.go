// Package config provides configuration loading and validation for the server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/reddit-wordcloud/internal/linkcheck"
)

// Environment variable names.
const (
	EnvAPIURL         = "REDDITWORDCLOUD_API_URL"
	EnvEnvironment    = "ENV"
	EnvLogLevel       = "LOG_LEVEL"
	EnvPort           = "PORT"
	EnvDegradedPolicy = "DEGRADED_POLICY"
	EnvAllowedOrigins = "CORS_ALLOWED_ORIGINS"
)

// Defaults applied when nothing else is configured.
const (
	DefaultAPIURL         = "http://0.0.0.0:8080"
	DefaultEnvironment    = "LOCAL"
	DefaultPort           = 3000
	DefaultDegradedPolicy = "navigate"
)

// DefaultAllowedOrigins are the origins the web surface accepts cross-origin requests from.
var DefaultAllowedOrigins = []string{"http://localhost:3000"}

// Config represents the application configuration that can be loaded from a JSON file
// or the environment. All fields are optional; missing values use defaults.
type Config struct {
	APIURL         string   `json:"api_url,omitempty"`         // Base address of the word extraction backend
	Env            string   `json:"env,omitempty"`             // LOCAL, DEV or PRODUCTION
	LogLevel       string   `json:"log_level,omitempty"`       // debug, info, warn, error
	Port           int      `json:"port,omitempty"`            // Port for the web surface
	DegradedPolicy string   `json:"degraded_policy,omitempty"` // navigate or error
	AllowedOrigins []string `json:"allowed_origins,omitempty"` // CORS origins
}

// Defaults returns a Config populated with every default value.
// APIURL comes from the process-wide resolver, so REDDITWORDCLOUD_API_URL applies here.
func Defaults() Config {
	return Config{
		APIURL:         APIURL(),
		Env:            DefaultEnvironment,
		Port:           DefaultPort,
		DegradedPolicy: DefaultDegradedPolicy,
		AllowedOrigins: append([]string(nil), DefaultAllowedOrigins...),
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	cfg.normalize()

	return &cfg, nil
}

// FromEnv builds a Config from environment variables using lookup.
// Unset variables leave the corresponding field empty.
func FromEnv(lookup func(string) (string, bool)) Config {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	// The API URL is not read here; it is resolved once through APIURL().
	var cfg Config
	if v, ok := lookup(EnvEnvironment); ok {
		cfg.Env = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvPort); ok {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v, ok := lookup(EnvDegradedPolicy); ok {
		cfg.DegradedPolicy = v
	}
	if v, ok := lookup(EnvAllowedOrigins); ok {
		cfg.AllowedOrigins = parseList(v)
	}
	cfg.normalize()
	return cfg
}

// normalize canonicalizes case: Env upper, LogLevel and DegradedPolicy lower.
func (c *Config) normalize() {
	c.Env = strings.ToUpper(strings.TrimSpace(c.Env))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.DegradedPolicy = strings.ToLower(strings.TrimSpace(c.DegradedPolicy))
}

// Validate checks that the configuration has valid values.
// Empty fields are allowed; they are filled by MergeWithDefaults. Env and
// DegradedPolicy are compared case-insensitively.
func (c *Config) Validate() error {
	if c.APIURL != "" {
		if _, err := linkcheck.Validate(c.APIURL); err != nil {
			return fmt.Errorf("config error: 'api_url' is not an absolute URL: %s", c.APIURL)
		}
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch strings.ToUpper(strings.TrimSpace(c.Env)) {
	case "", "LOCAL", "DEV", "PRODUCTION":
	default:
		return fmt.Errorf("config error: 'env' must be LOCAL, DEV or PRODUCTION, got %q", c.Env)
	}

	switch strings.ToLower(strings.TrimSpace(c.DegradedPolicy)) {
	case "", "navigate", "error":
	default:
		return fmt.Errorf("config error: 'degraded_policy' must be navigate or error, got %q", c.DegradedPolicy)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer a config file over the environment, and both over Defaults().
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIURL == "" {
		result.APIURL = defaults.APIURL
	}
	if result.Env == "" {
		result.Env = defaults.Env
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.DegradedPolicy == "" {
		result.DegradedPolicy = defaults.DegradedPolicy
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}

	if len(result.AllowedOrigins) == 0 {
		result.AllowedOrigins = defaults.AllowedOrigins
	}

	return result
}

// Load layers the optional JSON file at path over the environment and the defaults,
// then validates the result.
func Load(path string) (Config, error) {
	env := FromEnv(nil)
	cfg := env
	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = fileCfg.MergeWithDefaults(env)
	}
	cfg = cfg.MergeWithDefaults(Defaults())

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseList splits a comma-separated list, dropping blanks.
func parseList(list string) []string {
	var out []string
	for _, item := range strings.Split(list, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
