package hungarian

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvdispatch/matrix"
)

// ReduceRows returns a copy of m in which every row has had its minimum
// finite value subtracted from its finite cells. Rows with fewer than two
// finite values are copied unchanged so no zero is manufactured out of a
// lone feasible cell. ±Inf cells stay as they are.
//
// The reduction is idempotent: a reduced row already has minimum 0.
// Complexity: O(r*c).
func ReduceRows(m matrix.Matrix) (*matrix.Dense, error) {
	out, err := matrix.AsDense(m)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < out.Rows(); i++ {
		reduceLine(out.RowView(i))
	}

	return out, nil
}

// ReduceColumns is ReduceRows applied to columns.
// Complexity: O(r*c).
func ReduceColumns(m matrix.Matrix) (*matrix.Dense, error) {
	t, err := matrix.Transpose(m)
	if err != nil {
		return nil, err
	}
	var j int
	for j = 0; j < t.Rows(); j++ {
		reduceLine(t.RowView(j))
	}

	return matrix.Transpose(t)
}

// reduceLine subtracts the minimum finite value from the finite cells of line.
func reduceLine(line []float64) {
	var (
		min    = math.Inf(1)
		finite int
	)
	for _, v := range line {
		if math.IsInf(v, 0) {
			continue
		}
		finite++
		if v < min {
			min = v
		}
	}
	if finite < 2 || min == 0 {
		return
	}
	for k, v := range line {
		if !math.IsInf(v, 0) {
			line[k] = v - min
		}
	}
}

// ReduceWithLines runs the line-cover adjustment loop on m IN PLACE until n
// lines are needed to cover its zeros, and returns the number of adjustment
// iterations performed.
//
// Each iteration:
//   - lines := MinimumLines(m, IsZero)
//   - μ := min over cells covered by no line; μ == 0 is an *InvariantError
//   - cells covered by a row AND a column line: v+μ; uncovered cells: v−μ;
//     both rounded to Options.Precision places. Singly covered cells keep v.
//
// Preconditions: m square, finite, non-negative (run row/column reduction
// first for the classical algorithm; it is not required for termination).
//
// Errors: ErrEmpty, matrix.ErrNonSquare, matrix.ErrNonFinite/ErrNaN,
// matrix.ErrNegativeCost, ErrInvariant, ErrNoConvergence.
//
// Complexity: O(n²) per iteration plus one matching; at most n³+n iterations
// unless WithMaxIterations says otherwise.
func ReduceWithLines(m *matrix.Dense, opts ...Option) (int, error) {
	if m == nil {
		return 0, ErrEmpty
	}
	if err := matrix.ValidateSquare(m); err != nil {
		return 0, err
	}
	if err := matrix.ValidateFinite(m); err != nil {
		return 0, err
	}
	if err := matrix.ValidateCosts(m); err != nil {
		return 0, err
	}

	return reduceWithLines(m, gatherOptions(opts))
}

func reduceWithLines(m *matrix.Dense, o Options) (int, error) {
	var (
		n     = m.Rows()
		guard = o.iterationGuard(n)
		log   = o.Logger
		iter  int
	)
	lines, err := MinimumLines(m, IsZero)
	if err != nil {
		return 0, err
	}
	log.Debug("lines", zap.Stringers("lines", lines))

	for len(lines) < n {
		if iter >= guard {
			return iter, fmt.Errorf("after %d iterations with %d/%d lines: %w", iter, len(lines), n, ErrNoConvergence)
		}
		iter++

		rowLined, colLined := lineMasks(n, lines)
		mu := uncoveredMin(m, rowLined, colLined)
		if mu == 0 {
			return iter, &InvariantError{UncoveredMin: mu, Cells: uncoveredZeros(m, rowLined, colLined)}
		}
		log.Debug("uncovered min", zap.Int("iteration", iter), zap.Float64("min", mu))

		adjust(m, rowLined, colLined, mu, o.Precision)
		log.Debug("matrix adjusted", zap.Int("iteration", iter), zap.Stringer("matrix", m))

		if lines, err = MinimumLines(m, IsZero); err != nil {
			return iter, err
		}
		log.Debug("lines", zap.Int("iteration", iter), zap.Stringers("lines", lines))
	}

	return iter, nil
}

// uncoveredMin returns the smallest value of a cell covered by no line.
func uncoveredMin(m *matrix.Dense, rowLined, colLined []bool) float64 {
	var (
		min  = math.Inf(1)
		i, j int
	)
	for i = 0; i < m.Rows(); i++ {
		if rowLined[i] {
			continue
		}
		row := m.RowView(i)
		for j = 0; j < len(row); j++ {
			if !colLined[j] && row[j] < min {
				min = row[j]
			}
		}
	}

	return min
}

// uncoveredZeros lists the zero cells no line reaches (diagnostics only).
func uncoveredZeros(m *matrix.Dense, rowLined, colLined []bool) []Cell {
	var (
		cells []Cell
		i, j  int
	)
	for i = 0; i < m.Rows(); i++ {
		row := m.RowView(i)
		for j = 0; j < len(row); j++ {
			if !rowLined[i] && !colLined[j] && row[j] == 0 {
				cells = append(cells, Cell{Row: i, Col: j})
			}
		}
	}

	return cells
}

// adjust applies one Hungarian step with value mu.
func adjust(m *matrix.Dense, rowLined, colLined []bool, mu float64, places int) {
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		row := m.RowView(i)
		for j = 0; j < len(row); j++ {
			switch {
			case rowLined[i] && colLined[j]:
				row[j] = matrix.Round(row[j]+mu, places)
			case !rowLined[i] && !colLined[j]:
				row[j] = matrix.Round(row[j]-mu, places)
			}
		}
	}
}
