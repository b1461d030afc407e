package dhash

type options struct {
	config    Config
	configErr error
	logger    *Logger
}

// Option configures a table at construction.
type Option func(*options)

// WithConfig replaces the sizing policy. An invalid config is logged at
// Warn and DefaultConfig is used instead; call Config.Validate first to
// handle it yourself.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if err := cfg.Validate(); err != nil {
			o.config, o.configErr = DefaultConfig(), err
			return
		}
		o.config, o.configErr = cfg, nil
	}
}

// WithLogger configures the logger used for resize events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{
		config: DefaultConfig(),
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.configErr != nil {
		o.logger.Warn("using default config", "error", o.configErr)
	}
	return o
}
