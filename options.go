package genidx

type options struct {
	name     string
	capacity int
	logger   *Logger
	metrics  MetricsCollector
}

func defaultOptions(name string) options {
	return options{
		name:    name,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

// Option configures allocator construction.
type Option func(*options)

// WithName sets the arena name used in logs and errors.
//
// Defaults to the Go type name of the arena marker.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithCapacity pre-sizes the slot tables for capacity ids.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = max(capacity, 0)
	}
}

// WithLogger configures structured logging.
//
// If nil is passed, NoopLogger is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetrics configures the metrics collector.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

func applyOptions(name string, optFns []Option) options {
	o := defaultOptions(name)
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
