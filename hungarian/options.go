package hungarian

import "go.uber.org/zap"

// SelectionMode picks how the final assignment is read off the reduced matrix.
type SelectionMode int

const (
	// SelectionFrequency runs the frequency heuristic and falls back to a
	// maximum matching over the zeros when it leaves a row unassigned.
	SelectionFrequency SelectionMode = iota

	// SelectionFrequencyStrict runs only the heuristic and reports
	// ErrIncompleteSelection instead of falling back.
	SelectionFrequencyStrict

	// SelectionMatching skips the heuristic and extracts a maximum matching.
	SelectionMatching
)

// String returns the mode name used in traces.
func (m SelectionMode) String() string {
	switch m {
	case SelectionFrequency:
		return "frequency"
	case SelectionFrequencyStrict:
		return "frequency-strict"
	case SelectionMatching:
		return "matching"
	default:
		return "unknown"
	}
}

// DefaultPrecision is the number of decimal places kept after each adjustment.
const DefaultPrecision = 3

const (
	panicPrecisionInvalid = "hungarian: WithPrecision: places must be in [0, 15]"
	panicMaxIterInvalid   = "hungarian: WithMaxIterations: n must be >= 0"
	panicSelectionInvalid = "hungarian: WithSelection: unknown mode"
)

// Options configures the solver. Build it with DefaultOptions and Option setters.
//
// Logger        – receives Debug-level trace events; zap.NewNop() by default.
// Precision     – decimal places kept by the adjustment loop (default 3).
// Selection     – assignment extraction mode (default SelectionFrequency).
// MaxIterations – guard for the adjustment loop; 0 means n³+n.
type Options struct {
	Logger        *zap.Logger
	Precision     int
	Selection     SelectionMode
	MaxIterations int
}

// Option represents a functional option for the solver.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Logger:    zap.NewNop(),
		Precision: DefaultPrecision,
		Selection: SelectionFrequency,
	}
}

// WithLogger routes trace events to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithPrecision sets the rounding applied after each adjustment.
// Panics when places is outside [0, 15].
func WithPrecision(places int) Option {
	if places < 0 || places > 15 {
		panic(panicPrecisionInvalid)
	}
	return func(o *Options) { o.Precision = places }
}

// WithSelection sets the assignment extraction mode.
func WithSelection(mode SelectionMode) Option {
	if mode < SelectionFrequency || mode > SelectionMatching {
		panic(panicSelectionInvalid)
	}
	return func(o *Options) { o.Selection = mode }
}

// WithMaxIterations caps the adjustment loop; 0 restores the n³+n default.
func WithMaxIterations(n int) Option {
	if n < 0 {
		panic(panicMaxIterInvalid)
	}
	return func(o *Options) { o.MaxIterations = n }
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

func (o Options) iterationGuard(n int) int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}

	return n*n*n + n
}
