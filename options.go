package segvec

import "github.com/hupe1980/segvec/resource"

type options struct {
	logger             *Logger
	metricsCollector   MetricsCollector
	resourceController *resource.Controller
}

func defaultOptions() options {
	return options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a Vector at construction time.
// Options are fixed for the lifetime of the vector.
type Option func(*options)

// WithLogger sets the logger used for segment growth and lifecycle events.
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

// WithMetricsCollector sets the collector that receives append and growth metrics.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithResourceController bounds segment memory and append throughput.
//
// A controller may be shared by several vectors; the memory limit then
// applies to all of them together. Every segment, including the first,
// reserves len*sizeof(T) bytes before it is allocated. A refusal surfaces as
// ErrMemoryLimitExceeded from the append that needed the segment.
//
// Example:
//
//	rc := resource.NewController(resource.Config{MemoryLimitBytes: 1 << 30})
//	v, err := segvec.New[int64](12, segvec.WithResourceController(rc))
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resourceController = rc
	}
}
