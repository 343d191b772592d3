package hungarian

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned for a nil cost matrix.
	ErrEmpty = errors.New("hungarian: empty cost matrix")

	// ErrInvariant marks an internal invariant violation; see InvariantError.
	ErrInvariant = errors.New("hungarian: internal invariant violated")

	// ErrNoConvergence is returned when the line-adjustment loop exceeds its guard.
	ErrNoConvergence = errors.New("hungarian: reduction did not converge")

	// ErrIncompleteSelection is returned by strict selection when the
	// frequency heuristic leaves at least one row without a zero.
	ErrIncompleteSelection = errors.New("hungarian: zero selection is incomplete")
)

// Cell addresses one matrix entry.
type Cell struct {
	Row, Col int
}

// InvariantError reports that the smallest uncovered value was zero while
// more lines were still needed: the cover left the listed zero cells
// uncovered. It always matches ErrInvariant.
type InvariantError struct {
	UncoveredMin float64
	Cells        []Cell
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("hungarian: uncovered min is %g, line cover missed zeros at %v", e.UncoveredMin, e.Cells)
}

// Is makes errors.Is(err, ErrInvariant) true.
func (e *InvariantError) Is(target error) bool { return target == ErrInvariant }
