// Package logger builds the zerolog.Logger used by the cubewalk command.
//
// Library packages never log on their own: they take a logger through a
// WithLogger option and default to zerolog.Nop().
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidLogConfig indicates an unknown level, format or output.
var ErrInvalidLogConfig = errors.New("logger: invalid configuration")

// Config selects level, format and destination of the logger.
type Config struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error, disabled
	Format string `yaml:"format"` // console or json
	Output string `yaml:"output"` // stdout or stderr
}

// New builds a logger writing to the stream named by cfg.Output.
func New(cfg Config) (zerolog.Logger, error) {
	var out io.Writer
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		out = os.Stderr
	case "stdout":
		out = os.Stdout
	default:
		return zerolog.Nop(), fmt.Errorf("%w: output %q", ErrInvalidLogConfig, cfg.Output)
	}
	return NewWriter(out, cfg)
}

// NewWriter builds a logger writing to w; cfg.Output is ignored.
func NewWriter(w io.Writer, cfg Config) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("%w: level %q: %v", ErrInvalidLogConfig, cfg.Level, err)
		}
		level = l
	}

	switch strings.ToLower(cfg.Format) {
	case "", "json":
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("%w: format %q", ErrInvalidLogConfig, cfg.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
