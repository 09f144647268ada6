// Package config loads mining configuration from YAML files with
// environment-variable overrides.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/pfe/apriori"
)

// Config is the top-level configuration of a mining run.
type Config struct {
	Mining  MiningConfig  `yaml:"mining"`
	Logging LoggingConfig `yaml:"logging"`
}

// MiningConfig holds the parameters of the level-wise search.
type MiningConfig struct {
	// Policy is "high-recall" or "high-precision" (or "recall"/"fprate").
	Policy string `yaml:"policy"`
	// Threshold is the minimum recall or the maximum false positive rate.
	Threshold float64 `yaml:"threshold"`
	// IterationLimit is the maximum number of rounds; 0 runs to exhaustion.
	IterationLimit int `yaml:"iterationLimit"`
	Threads        int `yaml:"threads"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Mining: MiningConfig{
			Policy:         "high-recall",
			Threshold:      0.5,
			IterationLimit: apriori.DefaultIterationLimit,
			Threads:        apriori.DefaultThreads,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads a YAML config file (if provided), applies environment-variable
// overrides and validates the result. Missing values keep their defaults.
func Load(path string) (*Config, error) {
	var data []byte
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		data = b
	}
	cfg, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := errors.Join(applyEnvOverrides(cfg), cfg.Validate()); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Environment variables are not consulted.
func Parse(data []byte) (*Config, error) {
	cfg, err := parse(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if _, err := apriori.ParsePolicy(c.Mining.Policy); err != nil {
		errs = append(errs, fmt.Errorf("mining.policy: %w", err))
	}
	if c.Mining.Threshold < 0 || c.Mining.Threshold > 1 {
		errs = append(errs, fmt.Errorf("mining.threshold: %v not in [0,1]", c.Mining.Threshold))
	}
	if c.Mining.IterationLimit < 0 {
		errs = append(errs, fmt.Errorf("mining.iterationLimit: %d is negative", c.Mining.IterationLimit))
	}
	if c.Mining.Threads < 1 {
		errs = append(errs, fmt.Errorf("mining.threads: %d, need at least 1", c.Mining.Threads))
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// SlogLevel parses Level ("debug", "info", "warn", "error", optionally
// with an offset such as "info+2").
func (l LoggingConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(l.Level))
	return level, err
}

// applyEnvOverrides reads PFE_* environment variables and overrides the
// corresponding config fields. Malformed numbers leave the field unchanged
// and are reported together.
func applyEnvOverrides(cfg *Config) error {
	var errs []error
	if v := os.Getenv("PFE_MINING_POLICY"); v != "" {
		cfg.Mining.Policy = v
	}
	if v := os.Getenv("PFE_MINING_THRESHOLD"); v != "" {
		if t, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Mining.Threshold = t
		} else {
			errs = append(errs, fmt.Errorf("PFE_MINING_THRESHOLD: %w", err))
		}
	}
	if v := os.Getenv("PFE_MINING_ITERATION_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Mining.IterationLimit = n
		} else {
			errs = append(errs, fmt.Errorf("PFE_MINING_ITERATION_LIMIT: %w", err))
		}
	}
	if v := os.Getenv("PFE_MINING_THREADS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Mining.Threads = n
		} else {
			errs = append(errs, fmt.Errorf("PFE_MINING_THREADS: %w", err))
		}
	}
	if v := os.Getenv("PFE_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PFE_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	return errors.Join(errs...)
}
