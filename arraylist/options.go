package arraylist

import (
	"log/slog"

	"github.com/amp-labs/amp-drills/logger"
)

const defaultName = "default"

type config struct {
	name   string
	logger *slog.Logger
}

// Option configures a List at construction.
type Option func(*config)

// WithName sets the name used for the list's metric label and log
// attributes. An empty name is ignored.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithLogger sets the logger that receives growth events. A nil logger is
// ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{name: defaultName}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.logger == nil {
		cfg.logger = logger.Get()
	}

	return cfg
}
