package hungarian

import (
	"fmt"

	"github.com/katalvlaran/lvdispatch/bipartite"
	"github.com/katalvlaran/lvdispatch/matrix"
)

// Line is one row or column chosen to cover zero cells.
type Line struct {
	IsRow bool
	Index int
}

// String renders "r2" or "c0".
func (l Line) String() string {
	if l.IsRow {
		return fmt.Sprintf("r%d", l.Index)
	}

	return fmt.Sprintf("c%d", l.Index)
}

// IsZero is the eligibility test used by the reducer: exactly zero.
// Rounding in the adjustment loop keeps reduced values on a fixed grid, so no
// epsilon is needed.
func IsZero(v float64) bool { return v == 0 }

// MinimumLines returns the fewest rows/columns whose union holds every cell
// for which eligible returns true. Rows come first, then columns, each
// ascending. The count equals the size of a maximum matching over the
// eligible cells (König).
//
// Complexity: O(r*c) to collect edges + O(E·√V) matching.
func MinimumLines(m *matrix.Dense, eligible func(float64) bool) ([]Line, error) {
	if m == nil {
		return nil, ErrEmpty
	}
	edges := eligibleEdges(m, eligible)
	cover, _, err := bipartite.FindCover(m.Rows(), m.Cols(), edges)
	if err != nil {
		return nil, fmt.Errorf("MinimumLines: %w", err)
	}

	lines := make([]Line, 0, cover.Size())
	for _, i := range cover.Left {
		lines = append(lines, Line{IsRow: true, Index: i})
	}
	for _, j := range cover.Right {
		lines = append(lines, Line{IsRow: false, Index: j})
	}

	return lines, nil
}

// eligibleEdges lists the eligible cells as (row, column) edges, row-major.
func eligibleEdges(m *matrix.Dense, eligible func(float64) bool) []bipartite.Edge {
	var (
		edges []bipartite.Edge
		i, j  int
	)
	for i = 0; i < m.Rows(); i++ {
		row := m.RowView(i)
		for j = 0; j < len(row); j++ {
			if eligible(row[j]) {
				edges = append(edges, bipartite.Edge{Left: i, Right: j})
			}
		}
	}

	return edges
}

// lineMasks expands lines into per-index coverage flags.
func lineMasks(n int, lines []Line) (rows, cols []bool) {
	rows = make([]bool, n)
	cols = make([]bool, n)
	for _, l := range lines {
		if l.IsRow {
			rows[l.Index] = true
		} else {
			cols[l.Index] = true
		}
	}

	return rows, cols
}
