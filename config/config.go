// Package config loads cubewalk settings from an optional YAML file, a .env
// file and CUBEWALK_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cubewalk/facegraph"
	"github.com/katalvlaran/cubewalk/logger"
)

// ErrInvalidConfig indicates an unreadable file or an out-of-range value.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables overriding file values.
const (
	EnvInput     = "CUBEWALK_INPUT"
	EnvLogLevel  = "CUBEWALK_LOG_LEVEL"
	EnvLogFormat = "CUBEWALK_LOG_FORMAT"
	EnvMaxPasses = "CUBEWALK_MAX_PASSES"
	EnvTrace     = "CUBEWALK_TRACE"
)

// Config holds every cubewalk setting.
type Config struct {
	// Input is the puzzle file; "-" reads standard input.
	Input string `yaml:"input"`

	Log logger.Config `yaml:"log"`

	Build struct {
		// MaxPasses bounds the corner stitching passes.
		MaxPasses int `yaml:"max_passes"`
	} `yaml:"build"`

	Walk struct {
		// Trace records every visited state; the command logs them at debug
		// level and prints their count.
		Trace bool `yaml:"trace"`
	} `yaml:"walk"`
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	var c Config
	c.Input = "-"
	c.Log = logger.Config{Level: "info", Format: "console", Output: "stderr"}
	c.Build.MaxPasses = facegraph.DefaultMaxPasses
	return c
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty), then with .env and the process environment.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: reading %s: %v", ErrInvalidConfig, path, err)
		}
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("%w: parsing %s: %v", ErrInvalidConfig, path, err)
		}
	}

	// A missing .env file is not an error.
	_ = godotenv.Load()

	if err := c.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// applyEnv overrides fields from CUBEWALK_* variables.
func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvInput); ok {
		c.Input = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok {
		c.Log.Format = v
	}
	if v, ok := os.LookupEnv(EnvMaxPasses); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, EnvMaxPasses, v)
		}
		c.Build.MaxPasses = n
	}
	if v, ok := os.LookupEnv(EnvTrace); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvTrace, v)
		}
		c.Walk.Trace = b
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: empty input", ErrInvalidConfig)
	}
	if c.Build.MaxPasses <= 0 {
		return fmt.Errorf("%w: max_passes must be positive, got %d", ErrInvalidConfig, c.Build.MaxPasses)
	}
	return nil
}
