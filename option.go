package ordset

// options configures tree behavior.
type options struct {
	logger Logger
	checks bool
}

// defaultOptions returns the configuration used when no Option overrides it.
func defaultOptions() options {
	return options{
		logger: DiscardLogger{},
	}
}

// Option configures a tree using the functional options pattern.
type Option func(*options)

// WithLogger routes the tree's diagnostics to l. The default logger
// discards everything.
func WithLogger(l Logger) Option {
	return func(opts *options) {
		opts.logger = l
	}
}

// WithInvariantChecks revalidates the whole tree after every mutation and
// panics on the first violation. Every insert becomes a full tree walk, so
// only use this in tests and debugging sessions.
func WithInvariantChecks() Option {
	return func(opts *options) {
		opts.checks = true
	}
}
