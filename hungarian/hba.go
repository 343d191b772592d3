package hungarian

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvdispatch/bipartite"
	"github.com/katalvlaran/lvdispatch/matrix"
)

// Result is the outcome of one HBA solve on an n×n matrix.
//
// Assignment[i] is the column given to row i. Cost sums the solved matrix's
// cells along the assignment, so infeasible cells count at their sentinel
// value. Repaired is true when the frequency heuristic fell short and the
// assignment came from a maximum matching over the zeros instead.
type Result struct {
	Dispatch   *matrix.Dense
	Assignment []int
	Cost       float64
	Iterations int
	Repaired   bool
}

// HBA returns only the dispatch matrix of Solve.
func HBA(cost matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	res, err := Solve(cost, opts...)
	if err != nil {
		return nil, err
	}

	return res.Dispatch, nil
}

// Solve runs the Hungarian dispatch pipeline on a square cost matrix and
// returns a full assignment. The caller's matrix is never modified.
//
// +Inf cells are infeasible; they are replaced by matrix.InfeasibleCost
// before reduction, so they are chosen only when no fully feasible
// assignment exists.
//
// Errors: ErrEmpty, matrix.ErrNonSquare, matrix.ErrNaN,
// matrix.ErrNegativeCost, matrix.ErrCostOverflow, ErrInvariant, ErrNoConvergence,
// ErrIncompleteSelection (SelectionFrequencyStrict only).
//
// Complexity: O(n³) reduction steps in practice, each O(n²) plus one
// Hopcroft–Karp run.
func Solve(cost matrix.Matrix, opts ...Option) (*Result, error) {
	if cost == nil || matrix.ValidateNotNil(cost) != nil {
		return nil, ErrEmpty
	}
	if err := matrix.ValidateSquare(cost); err != nil {
		return nil, err
	}
	if err := matrix.ValidateCosts(cost); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)

	// Stage 1: finite working copy.
	original, err := matrix.AsDense(cost)
	if err != nil {
		return nil, err
	}
	sentinel, err := matrix.InfeasibleCost(original)
	if err != nil {
		return nil, err
	}
	if replaced := matrix.ReplaceInfInPlace(original, sentinel); replaced > 0 {
		o.Logger.Debug("infeasible cells replaced", zap.Int("cells", replaced))
	}
	n := original.Rows()
	if n == 1 {
		return newResult(original, []int{0}, 0, false)
	}

	// Stage 2: reduction.
	reduced, err := ReduceRows(original)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("row reduction", zap.Stringer("matrix", reduced))
	if reduced, err = ReduceColumns(reduced); err != nil {
		return nil, err
	}
	o.Logger.Debug("column reduction", zap.Stringer("matrix", reduced))
	iterations, err := reduceWithLines(reduced, o)
	if err != nil {
		return nil, err
	}

	// Stage 3: read the assignment off the zeros.
	assign, repaired, err := extract(reduced, original, o)
	if err != nil {
		return nil, err
	}

	return newResult(original, assign, iterations, repaired)
}

// extract applies the configured selection mode to a converged matrix.
func extract(reduced, original *matrix.Dense, o Options) ([]int, bool, error) {
	n := reduced.Rows()
	if o.Selection == SelectionMatching {
		assign, err := zeroMatching(reduced)
		return assign, false, err
	}

	zeros, err := FindZeros(reduced, original)
	if err != nil {
		return nil, false, err
	}
	selected := SelectZeros(zeros)
	assign := make([]int, n)
	for i := range assign {
		assign[i] = bipartite.NoMatch
	}
	for _, z := range selected {
		assign[z.Row] = z.Col
		o.Logger.Debug("zero selected", zap.Stringer("zero", z))
	}
	if len(selected) == n {
		return assign, false, nil
	}

	if o.Selection == SelectionFrequencyStrict {
		return nil, false, fmt.Errorf("selected %d of %d zeros: %w", len(selected), n, ErrIncompleteSelection)
	}
	if assign, err = zeroMatching(reduced); err != nil {
		return nil, false, err
	}
	o.Logger.Debug("selection repaired", zap.Int("heuristic", len(selected)), zap.Ints("assignment", assign))

	return assign, true, nil
}

// zeroMatching extracts a perfect matching over the zero cells. After
// convergence n lines are needed, so a perfect matching exists.
func zeroMatching(reduced *matrix.Dense) ([]int, error) {
	n := reduced.Rows()
	pairs, err := bipartite.MaxMatching(n, n, eligibleEdges(reduced, IsZero))
	if err != nil {
		return nil, err
	}
	if len(pairs) != n {
		return nil, fmt.Errorf("zero matching covers %d of %d rows: %w", len(pairs), n, ErrInvariant)
	}
	assign := make([]int, n)
	for _, p := range pairs {
		assign[p.Left] = p.Right
	}

	return assign, nil
}

func newResult(original *matrix.Dense, assign []int, iterations int, repaired bool) (*Result, error) {
	d, err := matrix.DispatchFromAssignment(original.Rows(), assign)
	if err != nil {
		return nil, err
	}
	var total float64
	for i, j := range assign {
		total += original.RowView(i)[j]
	}

	return &Result{
		Dispatch:   d,
		Assignment: assign,
		Cost:       total,
		Iterations: iterations,
		Repaired:   repaired,
	}, nil
}
