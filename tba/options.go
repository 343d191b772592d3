package tba

import "go.uber.org/zap"

// Options configures the TBA builder.
type Options struct {
	Logger *zap.Logger
}

// Option represents a functional option for the builder.
type Option func(*Options)

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger routes trace events to l; nil keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
