package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cristalhq/aconfig"
)

// ErrInvalidLogOutput is returned when LOG_OUTPUT names neither stdout nor
// stderr.
var ErrInvalidLogOutput = errors.New("invalid log output")

// Config is the environment-driven logging configuration.
type Config struct {
	JSON   bool   `env:"LOG_JSON" default:"false"`
	Level  string `env:"LOG_LEVEL" default:"info"`
	Output string `env:"LOG_OUTPUT" default:"stdout"`
}

// Option adjusts the Options derived from the environment before they are
// applied.
type Option func(*Options)

// WithOutput overrides the destination chosen by LOG_OUTPUT.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// LoadConfig reads the logging configuration from the environment. Files and
// command line flags are not consulted.
func LoadConfig() (*Config, error) {
	cfg := new(Config)

	loader := aconfig.LoaderFor(cfg, aconfig.Config{
		SkipFiles:        true,
		SkipFlags:        true,
		AllowUnknownEnvs: true,
	})

	if err := loader.Load(); err != nil {
		return nil, fmt.Errorf("failed to load logging configuration: %w", err)
	}

	return cfg, nil
}

// Options converts the configuration into logger Options for the given app.
func (c *Config) Options(app string) (Options, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return Options{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", c.Level, err)
	}

	var output io.Writer

	switch strings.ToLower(c.Output) {
	case "", "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		return Options{}, fmt.Errorf("%w: %q", ErrInvalidLogOutput, c.Output)
	}

	return Options{
		Subsystem: app,
		JSON:      c.JSON,
		MinLevel:  level,
		Output:    output,
	}, nil
}

// ConfigureLogging loads the configuration from LOG_JSON, LOG_LEVEL and
// LOG_OUTPUT, applies opts, and installs the result as the slog default.
func ConfigureLogging(app string, opts ...Option) (*slog.Logger, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	options, err := cfg.Options(app)
	if err != nil {
		return nil, err
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options), nil
}
