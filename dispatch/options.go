package dispatch

import (
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvdispatch/hungarian"
)

// Algorithm selects the dispatch builder.
type Algorithm int

const (
	// AlgorithmHBA is the Hungarian solver (optimal).
	AlgorithmHBA Algorithm = iota
	// AlgorithmTBA is the marking heuristic.
	AlgorithmTBA
	// AlgorithmExhaustive enumerates every permutation (optimal, n ≤ MaxExhaustive).
	AlgorithmExhaustive
)

// String returns the name used in span and metric attributes.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmHBA:
		return "hba"
	case AlgorithmTBA:
		return "tba"
	case AlgorithmExhaustive:
		return "exhaustive"
	default:
		return "unknown"
	}
}

// instrumentationName scopes the default tracer and meter.
const instrumentationName = "github.com/katalvlaran/lvdispatch/dispatch"

const (
	panicAlgorithmInvalid = "dispatch: WithAlgorithm: unknown algorithm"
	panicWorkersInvalid   = "dispatch: WithWorkers: n must be >= 1"
)

// Options configures Solve and SolveBatch.
type Options struct {
	Algorithm Algorithm
	Battery   []float64
	Logger    *zap.Logger
	Hungarian []hungarian.Option
	Tracer    trace.Tracer
	Meter     metric.Meter
	Workers   int
}

// Option represents a functional option for Solve and SolveBatch.
type Option func(*Options)

// DefaultOptions returns HBA, no battery, a no-op logger, the global otel
// tracer and meter, and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Algorithm: AlgorithmHBA,
		Logger:    zap.NewNop(),
		Tracer:    otel.Tracer(instrumentationName),
		Meter:     otel.Meter(instrumentationName),
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// WithAlgorithm selects the builder. Panics on an unknown value.
func WithAlgorithm(a Algorithm) Option {
	if a < AlgorithmHBA || a > AlgorithmExhaustive {
		panic(panicAlgorithmInvalid)
	}
	return func(o *Options) { o.Algorithm = a }
}

// WithBattery enables the battery-aware transform with one level per agent.
func WithBattery(levels []float64) Option {
	cp := append([]float64(nil), levels...)
	return func(o *Options) { o.Battery = cp }
}

// WithLogger routes trace events of every stage to l; nil keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHungarianOptions forwards options to hungarian.Solve.
func WithHungarianOptions(opts ...hungarian.Option) Option {
	return func(o *Options) { o.Hungarian = append(o.Hungarian, opts...) }
}

// WithTracer overrides the otel tracer; nil keeps the default.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithMeter overrides the otel meter; nil keeps the default.
func WithMeter(m metric.Meter) Option {
	return func(o *Options) {
		if m != nil {
			o.Meter = m
		}
	}
}

// WithWorkers sets the SolveBatch pool size. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.Workers = n }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
