package hungarian

import (
	"fmt"

	"github.com/katalvlaran/lvdispatch/matrix"
)

// Zero is one zero cell of a reduced matrix.
//
// Value is the cell's cost before reduction and drives tie-breaking.
// Selected and Eliminated are terminal and never both true.
type Zero struct {
	Row, Col   int
	Value      float64
	Selected   bool
	Eliminated bool
}

// Live reports whether z can still be selected.
func (z *Zero) Live() bool { return !z.Selected && !z.Eliminated }

func (z *Zero) String() string {
	return fmt.Sprintf("(%d,%d)=%g", z.Row, z.Col, z.Value)
}

// FindZeros lists the zero cells of reduced in row-major order, tagging each
// with the cost of the same cell in original.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch when the shapes differ.
// Complexity: O(r*c).
func FindZeros(reduced, original *matrix.Dense) ([]*Zero, error) {
	if err := matrix.ValidateNotNil(reduced); err != nil {
		return nil, err
	}
	if err := matrix.ValidateNotNil(original); err != nil {
		return nil, err
	}
	if reduced.Rows() != original.Rows() || reduced.Cols() != original.Cols() {
		return nil, fmt.Errorf("FindZeros: %dx%d vs %dx%d: %w",
			reduced.Rows(), reduced.Cols(), original.Rows(), original.Cols(), matrix.ErrDimensionMismatch)
	}

	var (
		zeros []*Zero
		i, j  int
	)
	for i = 0; i < reduced.Rows(); i++ {
		row, src := reduced.RowView(i), original.RowView(i)
		for j = 0; j < len(row); j++ {
			if IsZero(row[j]) {
				zeros = append(zeros, &Zero{Row: i, Col: j, Value: src[j]})
			}
		}
	}

	return zeros, nil
}

// FrequencyEntry holds the live zeros of one row or column, in row-major order.
type FrequencyEntry struct {
	Line  Line
	zeros []*Zero
}

// Count returns the number of live zeros on the line.
func (e *FrequencyEntry) Count() int { return len(e.zeros) }

// Zeros returns the live zeros (shared slice, do not modify).
func (e *FrequencyEntry) Zeros() []*Zero { return e.zeros }

// cheapest returns the lowest original value on the line.
func (e *FrequencyEntry) cheapest() float64 {
	best := e.zeros[0].Value
	for _, z := range e.zeros[1:] {
		if z.Value < best {
			best = z.Value
		}
	}

	return best
}

// remove drops z from the entry and reports whether the entry is now empty.
func (e *FrequencyEntry) remove(z *Zero) bool {
	for k, x := range e.zeros {
		if x == z {
			e.zeros = append(e.zeros[:k], e.zeros[k+1:]...)
			break
		}
	}

	return len(e.zeros) == 0
}

// FrequencyMap indexes live zeros by row and by column. A nil slot means the
// line has no live zero left.
type FrequencyMap struct {
	rows []*FrequencyEntry
	cols []*FrequencyEntry
}

// NewFrequencyMap builds row and column entries over the live zeros.
// Complexity: O(len(zeros)).
func NewFrequencyMap(zeros []*Zero) *FrequencyMap {
	var r, c int
	for _, z := range zeros {
		r = max(r, z.Row+1)
		c = max(c, z.Col+1)
	}
	fm := &FrequencyMap{rows: make([]*FrequencyEntry, r), cols: make([]*FrequencyEntry, c)}
	for _, z := range zeros {
		if !z.Live() {
			continue
		}
		if fm.rows[z.Row] == nil {
			fm.rows[z.Row] = &FrequencyEntry{Line: Line{IsRow: true, Index: z.Row}}
		}
		fm.rows[z.Row].zeros = append(fm.rows[z.Row].zeros, z)
		if fm.cols[z.Col] == nil {
			fm.cols[z.Col] = &FrequencyEntry{Line: Line{IsRow: false, Index: z.Col}}
		}
		fm.cols[z.Col].zeros = append(fm.cols[z.Col].zeros, z)
	}

	return fm
}

// Row returns the entry of row i, or nil when it has no live zero.
func (fm *FrequencyMap) Row(i int) *FrequencyEntry {
	if i < 0 || i >= len(fm.rows) {
		return nil
	}
	return fm.rows[i]
}

// Col returns the entry of column j, or nil when it has no live zero.
func (fm *FrequencyMap) Col(j int) *FrequencyEntry {
	if j < 0 || j >= len(fm.cols) {
		return nil
	}
	return fm.cols[j]
}

// Len returns the number of entries that still hold a live zero.
func (fm *FrequencyMap) Len() int {
	n := 0
	for _, e := range fm.rows {
		if e != nil {
			n++
		}
	}
	for _, e := range fm.cols {
		if e != nil {
			n++
		}
	}

	return n
}

// Next returns the most constrained entry: fewest live zeros, then the
// cheapest zero, then rows before columns, then lower index. It returns nil
// once no live zero remains.
func (fm *FrequencyMap) Next() *FrequencyEntry {
	var best *FrequencyEntry
	consider := func(e *FrequencyEntry) {
		if e == nil {
			return
		}
		if best == nil || e.Count() < best.Count() ||
			(e.Count() == best.Count() && e.cheapest() < best.cheapest()) {
			best = e
		}
	}
	for _, e := range fm.rows {
		consider(e)
	}
	for _, e := range fm.cols {
		consider(e)
	}

	return best
}

// Choose picks the zero of e to select: cheapest original value, then the
// zero whose crossing line has fewer alternatives, then row-major order.
func (fm *FrequencyMap) Choose(e *FrequencyEntry) *Zero {
	var (
		best      *Zero
		bestCross int
	)
	for _, z := range e.zeros {
		cross := fm.crossing(e, z).Count()
		if best == nil || z.Value < best.Value || (z.Value == best.Value && cross < bestCross) {
			best, bestCross = z, cross
		}
	}

	return best
}

// crossing returns the other entry z belongs to.
func (fm *FrequencyMap) crossing(e *FrequencyEntry, z *Zero) *FrequencyEntry {
	if e.Line.IsRow {
		return fm.cols[z.Col]
	}
	return fm.rows[z.Row]
}

// Select marks z selected, eliminates every other live zero in its row and
// column, and drops the entries that run out of zeros. It returns the
// eliminated zeros.
func (fm *FrequencyMap) Select(z *Zero) []*Zero {
	z.Selected = true

	var eliminated []*Zero
	if e := fm.rows[z.Row]; e != nil {
		for _, x := range e.zeros {
			if x == z {
				continue
			}
			x.Eliminated = true
			eliminated = append(eliminated, x)
			if fm.cols[x.Col].remove(x) {
				fm.cols[x.Col] = nil
			}
		}
	}
	if e := fm.cols[z.Col]; e != nil {
		for _, x := range e.zeros {
			if x == z {
				continue
			}
			x.Eliminated = true
			eliminated = append(eliminated, x)
			if fm.rows[x.Row].remove(x) {
				fm.rows[x.Row] = nil
			}
		}
	}
	fm.rows[z.Row] = nil
	fm.cols[z.Col] = nil

	return eliminated
}

// SelectZeros runs the frequency heuristic over zeros until none is live and
// returns the selected zeros in selection order. The selection is always a
// matching, but it may leave rows unassigned on degenerate tie patterns.
// Complexity: O(k·(r+c+k)) for k zeros.
func SelectZeros(zeros []*Zero) []*Zero {
	var (
		fm       = NewFrequencyMap(zeros)
		selected []*Zero
	)
	for e := fm.Next(); e != nil; e = fm.Next() {
		z := fm.Choose(e)
		fm.Select(z)
		selected = append(selected, z)
	}

	return selected
}
