// Package config handles XDG configuration directory and file paths.
package config

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the application directory name.
	AppName = "taskdeck"

	// SessionFile is the stored session filename.
	SessionFile = "session.json"

	// DefaultAPIURL is used when neither the -api flag nor
	// TASKDECK_API is set.
	DefaultAPIURL = "http://localhost:5000"

	// APIEnvVar names the environment variable overriding the API root.
	APIEnvVar = "TASKDECK_API"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// APIURL is the remote API root.
	APIURL string

	// Debug enables debug logging.
	Debug bool

	// Quiet suppresses informational output.
	Quiet bool
}

// New creates a new Config with the default or specified config directory
// and API root. Empty arguments select the defaults.
func New(configDir, apiURL string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	url := apiURL
	if url == "" {
		url = os.Getenv(APIEnvVar)
	}
	if url == "" {
		url = DefaultAPIURL
	}
	return &Config{Dir: dir, APIURL: url}, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// SessionPath returns the path to the stored session file.
func (c *Config) SessionPath() string {
	return filepath.Join(c.Dir, SessionFile)
}

// EnsureDir creates the config directory if it doesn't exist.
// Directory is created with mode 0700.
func (c *Config) EnsureDir() error {
	return os.MkdirAll(c.Dir, 0700)
}
