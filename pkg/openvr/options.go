package openvr

import "go.uber.org/zap"

type initOptions struct {
	logger          *zap.Logger
	backend         Backend
	cacheInterfaces bool
}

func defaultInitOptions() initOptions {
	return initOptions{
		logger:          zap.NewNop(),
		cacheInterfaces: true,
	}
}

// Option configures Init.
type Option func(*initOptions)

// WithLogger attaches a logger for boundary-crossing events (init,
// shutdown, interface lookups). The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *initOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithBackend substitutes the runtime implementation behind the
// binding. Intended for tests and offline tooling; production callers
// should not need it.
func WithBackend(b Backend) Option {
	return func(o *initOptions) {
		o.backend = b
	}
}

// WithoutInterfaceCache disables per-Runtime caching of
// GetGenericInterface results, forcing every lookup through the native
// call.
func WithoutInterfaceCache() Option {
	return func(o *initOptions) {
		o.cacheInterfaces = false
	}
}
