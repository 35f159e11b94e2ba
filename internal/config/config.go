// Package config handles the daemon configuration file.
package config

import (
	"errors"
	"log/slog"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Config holds the daemon configuration.
type Config struct {
	// Listen is the TCP address the API server binds to.
	Listen string `json:"listen" yaml:"listen"`

	// ProxyProtocol enables PROXY protocol support on the listener, for
	// deployments behind an edge load balancer.
	ProxyProtocol bool `json:"proxy_protocol" yaml:"proxy_protocol"`

	Log      Log      `json:"log"      yaml:"log"`
	Provider Provider `json:"provider" yaml:"provider"`
	Probe    Probe    `json:"probe"    yaml:"probe"`
}

// Log holds the logging configuration.
type Log struct {
	// Level is one of debug, info, warn or error. Production deployments
	// run at warn or above so request diagnostics stay silent.
	Level string `json:"level" yaml:"level"`
}

// Provider holds the update metadata source configuration.
type Provider struct {
	Name   string `json:"name"             yaml:"name"`
	Origin string `json:"origin,omitempty" yaml:"origin,omitempty"`
	Path   string `json:"path,omitempty"   yaml:"path,omitempty"`
}

// Probe holds the origin reachability probe configuration.
type Probe struct {
	// Crontab is the probe schedule. An empty value disables the probe.
	Crontab string `json:"crontab,omitempty" yaml:"crontab,omitempty"`
}

// Load reads the configuration file at the provided path, applying defaults
// for any unset field. An empty path returns the default configuration.
func Load(path string) (*Config, error) {
	config := Config{
		Listen: ":8080",
		Log: Log{
			Level: "info",
		},
		Provider: Provider{
			Name: "origin",
		},
	}

	if path != "" {
		content, err := os.ReadFile(path) //nolint:gosec
		if err != nil {
			return nil, err
		}

		err = yaml.Unmarshal(content, &config)
		if err != nil {
			return nil, errors.New("unable to parse configuration: " + err.Error())
		}
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate performs basic sanity checks against the configuration.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return errors.New("missing listen address")
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		return errors.New("invalid log level '" + c.Log.Level + "'")
	}

	if !slices.Contains([]string{"origin", "local"}, c.Provider.Name) {
		return errors.New("invalid provider '" + c.Provider.Name + "'")
	}

	return nil
}

// LogLevel maps the configured level onto a slog level.
func (c *Config) LogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Settings returns the provider configuration as key/value pairs.
func (p *Provider) Settings() map[string]string {
	return map[string]string{
		"origin": p.Origin,
		"path":   p.Path,
	}
}
