package wasmhost

import "github.com/adenflorian/corgi.fm/pkg/log"

// Option configures optional behavior of a Module.
type Option func(*options)

type options struct {
	logger log.Logger
}

func defaultOptions() options {
	return options{
		logger: log.NewNoopLogger(),
	}
}

// WithLogger sets the logger used for load and close events.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
