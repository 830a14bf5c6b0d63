// Package config defines the application configuration for domaininfo.
//
// Configuration is optional: the zero config, after Validate, runs the
// service with sane defaults. A YAML file can override any section.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// WhoisConfig contains WHOIS lookup settings.
type WhoisConfig struct {
	Timeout string `yaml:"timeout"` // Timeout per WHOIS query (e.g., "10s")
}

// ResolverConfig contains DNS resolution settings.
// The nameservers themselves are fixed and not configurable.
type ResolverConfig struct {
	UDPTimeout  string `yaml:"udp_timeout"`  // Timeout for UDP queries (e.g., "3s")
	TCPTimeout  string `yaml:"tcp_timeout"`  // Timeout for TCP fallback queries (e.g., "5s")
	MaxRetries  int    `yaml:"max_retries"`  // Max retries per nameserver on timeout
	TCPFallback bool   `yaml:"tcp_fallback"` // Retry over TCP when a response is truncated
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level       string            `yaml:"level"`
	Format      string            `yaml:"format"` // "text" or "json"
	IncludePID  bool              `yaml:"include_pid"`
	ExtraFields map[string]string `yaml:"extra_fields,omitempty"`
}

// APIConfig contains HTTP API settings.
//
// Note: APIKey is a secret and must not be echoed by API endpoints.
type APIConfig struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Whois    WhoisConfig    `yaml:"whois"`
	Resolver ResolverConfig `yaml:"resolver"`
	Logging  LoggingConfig  `yaml:"logging"`
	API      APIConfig      `yaml:"api"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{}
	_ = cfg.Validate()
	return cfg
}

// Load reads a YAML configuration file and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	// Defaults for timeouts; values are parsed where consumed
	if cfg.Whois.Timeout == "" {
		cfg.Whois.Timeout = "10s"
	}
	if cfg.Resolver.UDPTimeout == "" {
		cfg.Resolver.UDPTimeout = "3s"
	}
	if cfg.Resolver.TCPTimeout == "" {
		cfg.Resolver.TCPTimeout = "5s"
	}
	if cfg.Resolver.MaxRetries <= 0 {
		cfg.Resolver.MaxRetries = 2
	}

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	// Normalize API
	if cfg.API.Host == "" {
		cfg.API.Host = "0.0.0.0"
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = 8080
	}
	if cfg.API.Port < 0 || cfg.API.Port > 65535 {
		return errors.New("api.port must be 1..65535")
	}
	return nil
}
