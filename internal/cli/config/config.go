// Package config loads the fractal CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrConfigFailed marks any problem reading or parsing the config file.
var ErrConfigFailed = errors.New("config: failed to load")

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config is the CLI configuration. Environment variables override the file
// and command line flags override both.
type Config struct {
	BaseURL string `yaml:"base_url"`
	AppID   string `yaml:"app_id"`
	Secret  string `yaml:"secret"`

	// Credentials of the user for user-scoped commands.
	Email    string `yaml:"email"`
	Password string `yaml:"password"`

	Timeout   time.Duration `yaml:"timeout"`
	RateLimit int           `yaml:"rate_limit"` // requests per hour, 0 for none
	Output    string        `yaml:"output"`
}

// ConfigError carries the path of a config file that failed to load.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ErrConfigFailed.Error()
	}
	return fmt.Sprintf("%v: %s: %v", ErrConfigFailed, e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfigFailed }

// DefaultPath returns $XDG_CONFIG_HOME/fractal/config.yaml, or the platform
// equivalent.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fractal", "config.yaml")
}

// Load reads the config at path. A missing file is only an error when
// required is set, so the default location may be absent.
func Load(path string, required bool) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		if required {
			return nil, &ConfigError{Path: path, Err: errors.New("config path is empty")}
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return cfg, nil
	}
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return cfg, nil
}

// ApplyEnv overrides fields with the FRACTAL_* variables that are set.
func (c *Config) ApplyEnv(getenv func(string) string) {
	for key, field := range map[string]*string{
		"FRACTAL_BASE_URL": &c.BaseURL,
		"FRACTAL_APP_ID":   &c.AppID,
		"FRACTAL_SECRET":   &c.Secret,
		"FRACTAL_EMAIL":    &c.Email,
		"FRACTAL_PASSWORD": &c.Password,
	} {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*field = v
		}
	}
}

// Validate checks the fields that have a fixed vocabulary or syntax.
func (c *Config) Validate() error {
	switch c.Output {
	case "", OutputText, OutputJSON:
	default:
		return fmt.Errorf("unsupported output %q", c.Output)
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid base_url %q", c.BaseURL)
		}
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if c.RateLimit < 0 {
		return errors.New("rate_limit must not be negative")
	}
	return nil
}
