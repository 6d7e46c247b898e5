package hausdorff

import (
	"math"

	"github.com/hupe1980/hausdorff/distance"
)

type options struct {
	dist             distance.Func
	boundary         func(uint64) float64
	logger           *Logger
	metricsCollector MetricsCollector
	err              error
}

func defaultOptions() options {
	return options{
		dist:             distance.SquaredL2,
		boundary:         func(v uint64) float64 { return math.Sqrt(float64(v)) },
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures a Searcher.
type Option func(*options)

// WithMetric selects one of the built-in metrics. An unknown metric makes
// New fail.
func WithMetric(m distance.Metric) Option {
	return func(o *options) {
		fn, err := distance.Provider(m)
		if err != nil {
			o.err = err
			return
		}
		o.dist = fn
		o.boundary = func(v uint64) float64 { return distance.Boundary(m, v) }
	}
}

// WithDistanceFunc injects a custom metric. toReal converts a raw metric
// value to the reported distance; nil reports the raw value unchanged.
func WithDistanceFunc(fn distance.Func, toReal func(uint64) float64) Option {
	return func(o *options) {
		if fn == nil {
			return
		}
		if toReal == nil {
			toReal = func(v uint64) float64 { return float64(v) }
		}
		o.dist = fn
		o.boundary = toReal
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector. If nil is passed,
// NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
