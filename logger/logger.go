// Package logger configures log/slog for the drills and hands out loggers that
// carry the subsystem name and any context-scoped attributes.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.uber.org/atomic"
)

// Default subsystem, set by ConfigureLoggingWithOptions.
var subsystem = atomic.NewString("") //nolint:gochecknoglobals

// configMutex serializes ConfigureLoggingWithOptions, which replaces the
// process-wide slog default.
var configMutex sync.Mutex //nolint:gochecknoglobals

type contextKey string

// Options is used to configure logging.
type Options struct {
	Subsystem string
	JSON      bool
	MinLevel  slog.Level
	Output    io.Writer
}

// ConfigureLoggingWithOptions installs a text or JSON handler as the slog
// default and returns the resulting logger. A nil Output means stdout.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	subsystem.Store(opts.Subsystem)

	return logger
}

// WithMuted marks the context so that Get returns a logger that discards
// everything.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(contextKey("mute")).(bool)

	return ok && muted
}

// WithSubsystem overrides the default subsystem for loggers obtained from ctx.
func WithSubsystem(ctx context.Context, name string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), name)
}

// GetSubsystem returns the subsystem override from ctx, or the configured
// default.
func GetSubsystem(ctx context.Context) string {
	if ctx != nil {
		if sub, ok := ctx.Value(contextKey("subsystem")).(string); ok {
			return sub
		}
	}

	return subsystem.Load()
}

// With returns a new context carrying extra key-value pairs that every logger
// obtained from it will include.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	vals := append(getValues(ctx), values...)

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

func getValues(ctx context.Context) []any {
	vals, _ := ctx.Value(contextKey("loggerValues")).([]any)

	// Copy so that sibling contexts never share a backing array.
	return append([]any(nil), vals...)
}

// Get returns a logger for the first non-nil context given (or
// context.Background when none is). The logger carries the subsystem and the
// values added with With.
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := context.Background()

	for _, c := range ctx {
		if c != nil {
			realCtx = c

			break
		}
	}

	if isMuted(realCtx) {
		return nullLogger
	}

	logger := slog.Default()

	if sub := GetSubsystem(realCtx); sub != "" {
		logger = logger.With("subsystem", sub)
	}

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}

// nullHandler discards every record.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool { return false }

func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error { return nil }

func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler { return n }

func (n *nullHandler) WithGroup(_ string) slog.Handler { return n }

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals
