package webvtt

import "go.uber.org/zap"

type options struct {
	logger          *zap.SugaredLogger
	skipUnsupported bool
}

// Option configures a parse call.
type Option func(*options)

// WithLogger sets the logger used for debug output about dropped blocks.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSkipUnsupported drops STYLE and REGION blocks instead of failing.
func WithSkipUnsupported() Option {
	return func(o *options) {
		o.skipUnsupported = true
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
