package compiler

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/syssam/erd"
)

// Config holds the compiler settings.
type Config struct {
	// Logger receives debug and error records. Defaults to discarding.
	Logger *slog.Logger
	// Workers bounds how many files CompileAll processes at once.
	// Defaults to GOMAXPROCS.
	Workers int
	// Stdout receives diagrams of jobs without an output file.
	Stdout io.Writer
}

// Option configures the compiler.
type Option func(*Config) error

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return erd.NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithWorkers sets the number of files compiled in parallel by CompileAll.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return erd.NewConfigError("Workers", n, "must be at least 1")
		}
		c.Workers = n
		return nil
	}
}

// WithStdout sets the writer used for jobs that have no output file.
func WithStdout(w io.Writer) Option {
	return func(c *Config) error {
		if w == nil {
			return erd.NewConfigError("Stdout", nil, "writer cannot be nil")
		}
		c.Stdout = w
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a Config with defaults and the given options applied.
func NewConfig(opts ...Option) (*Config, error) {
	c := defaultConfig()
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func defaultConfig() *Config {
	return &Config{
		Logger:  slog.New(slog.DiscardHandler),
		Workers: runtime.GOMAXPROCS(0),
		Stdout:  os.Stdout,
	}
}
