// Package config loads client configuration from the state directory's
// config.yaml with environment overrides.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/stellarhub/stellarctl/internal/errors"
)

// Environment variables recognized as overrides.
const (
	EnvAPIBaseURL = "STELLARHUB_API_URL"
	EnvStateDir   = "STELLARHUB_STATE_DIR"
	EnvLogLevel   = "STELLARHUB_LOG_LEVEL"
)

// DefaultAPIBaseURL is the development backend. Deployed clients point at
// their tenant's dashboard domain instead.
const DefaultAPIBaseURL = "http://localhost.stellarhub.in"

// Config holds client configuration.
type Config struct {
	// APIBaseURL is the backend origin all requests are issued against.
	APIBaseURL string `yaml:"api_base_url"`

	// StateDir holds the session token and this config file.
	StateDir string `yaml:"state_dir"`

	// LogLevel is the minimum diagnostic log level (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
}

// Default returns the baseline configuration before file and env overrides.
func Default() Config {
	return Config{
		APIBaseURL: DefaultAPIBaseURL,
		LogLevel:   "warn",
		LogFormat:  "text",
	}
}

// Load reads config.yaml from stateDir, falling back to defaults when the
// file is absent, then applies environment overrides. Env wins over file,
// file wins over defaults.
func Load(stateDir string) (Config, error) {
	cfg := Default()
	cfg.StateDir = stateDir

	path := filepath.Join(stateDir, "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.NewConfigInvalidError(path, err)
		}
	case os.IsNotExist(err):
		// No file is fine; defaults apply.
	default:
		return Config{}, errors.NewConfigReadError(path, err)
	}

	cfg.applyEnv()

	if cfg.StateDir == "" {
		cfg.StateDir = stateDir
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		c.APIBaseURL = v
	}
	if v := os.Getenv(EnvStateDir); v != "" {
		c.StateDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}
