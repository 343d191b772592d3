package tba

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvdispatch/bipartite"
	"github.com/katalvlaran/lvdispatch/hungarian"
	"github.com/katalvlaran/lvdispatch/matrix"
)

// Result is the outcome of one TBA run.
//
// Marks counts the marked cells when the loop stopped; Rounds counts the
// marks added after the initial minima.
type Result struct {
	Dispatch   *matrix.Dense
	Assignment []int
	Cost       float64
	Marks      int
	Rounds     int
}

// TBA returns only the dispatch matrix of Solve.
func TBA(cost matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	res, err := Solve(cost, opts...)
	if err != nil {
		return nil, err
	}

	return res.Dispatch, nil
}

// Solve runs the marking heuristic on a square cost matrix.
// Cost sums the solved matrix along the assignment, sentinels included.
//
// The assignment is the cheapest perfect matching that uses marked cells and
// infeasible cells only, so it pairs as many rows with feasible columns as
// the matrix allows.
//
// Errors: ErrEmpty, matrix.ErrNonSquare, matrix.ErrNaN, matrix.ErrNegativeCost,
// matrix.ErrCostOverflow.
// Complexity: O(n²) rounds worst case, each one Hopcroft–Karp run, plus one
// Hungarian solve over the marks.
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
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	// Stage 1: finite working copy.
	m, err := matrix.AsDense(cost)
	if err != nil {
		return nil, err
	}
	sentinel, err := matrix.InfeasibleCost(m)
	if err != nil {
		return nil, err
	}
	matrix.ReplaceInfInPlace(m, sentinel)

	// Stage 2: mark until the marks hold a maximum feasible matching.
	p := newPositions(m, sentinel)
	p.markMinima()
	target, err := p.reachable()
	if err != nil {
		return nil, err
	}

	var rounds int
	for {
		cover, matching, err := bipartite.FindCover(p.n, p.n, p.edges())
		if err != nil {
			return nil, fmt.Errorf("tba: %w", err)
		}
		if len(matching) == target {
			break
		}
		i, j := p.cheapestUncovered(cover)
		p.marked[i][j] = true
		rounds++
		o.Logger.Debug("tba mark",
			zap.Int("round", rounds),
			zap.Int("row", i),
			zap.Int("col", j),
			zap.Float64("cost", p.cost.RowView(i)[j]),
			zap.Int("matching", len(matching)),
			zap.Int("target", target))
	}

	// Stage 3: read the assignment off the marks by cost.
	return p.result(rounds, o)
}

// positions is the mark matrix laid over a finite cost matrix. Cells priced
// at sentinel are infeasible and never marked.
type positions struct {
	n        int
	cost     *matrix.Dense
	sentinel float64
	marked   [][]bool
}

func newPositions(m *matrix.Dense, sentinel float64) *positions {
	p := &positions{n: m.Rows(), cost: m, sentinel: sentinel, marked: make([][]bool, m.Rows())}
	for i := range p.marked {
		p.marked[i] = make([]bool, m.Cols())
	}

	return p
}

func (p *positions) feasible(i, j int) bool { return p.cost.RowView(i)[j] < p.sentinel }

// markMinima marks the first cheapest cell of every column and every row.
// A line whose cheapest cell is infeasible gets no mark.
func (p *positions) markMinima() {
	var i, j int
	for j = 0; j < p.n; j++ {
		best := 0
		for i = 1; i < p.n; i++ {
			if p.cost.RowView(i)[j] < p.cost.RowView(best)[j] {
				best = i
			}
		}
		if p.feasible(best, j) {
			p.marked[best][j] = true
		}
	}
	for i = 0; i < p.n; i++ {
		row := p.cost.RowView(i)
		best := 0
		for j = 1; j < p.n; j++ {
			if row[j] < row[best] {
				best = j
			}
		}
		if p.feasible(i, best) {
			p.marked[i][best] = true
		}
	}
}

// reachable returns the size of a maximum matching over all feasible cells.
func (p *positions) reachable() (int, error) {
	var (
		edges []bipartite.Edge
		i, j  int
	)
	for i = 0; i < p.n; i++ {
		for j = 0; j < p.n; j++ {
			if p.feasible(i, j) {
				edges = append(edges, bipartite.Edge{Left: i, Right: j})
			}
		}
	}
	pairs, err := bipartite.MaxMatching(p.n, p.n, edges)
	if err != nil {
		return 0, fmt.Errorf("tba: %w", err)
	}

	return len(pairs), nil
}

// edges lists the marked cells cheapest first, row-major among equals.
func (p *positions) edges() []bipartite.Edge {
	var (
		edges []bipartite.Edge
		i, j  int
	)
	for i = 0; i < p.n; i++ {
		for j = 0; j < p.n; j++ {
			if p.marked[i][j] {
				edges = append(edges, bipartite.Edge{Left: i, Right: j})
			}
		}
	}
	sort.SliceStable(edges, func(a, b int) bool {
		return p.cost.RowView(edges[a].Left)[edges[a].Right] < p.cost.RowView(edges[b].Left)[edges[b].Right]
	})

	return edges
}

// cheapestUncovered returns the cheapest unmarked cell outside the cover.
// While the marked matching is smaller than the feasible maximum, the cover
// misses some feasible cell, and every marked cell is covered, so the
// result is feasible.
func (p *positions) cheapestUncovered(c bipartite.Cover) (int, int) {
	rowLined := make([]bool, p.n)
	colLined := make([]bool, p.n)
	for _, i := range c.Left {
		rowLined[i] = true
	}
	for _, j := range c.Right {
		colLined[j] = true
	}

	var (
		bi, bj = -1, -1
		i, j   int
	)
	for i = 0; i < p.n; i++ {
		if rowLined[i] {
			continue
		}
		row := p.cost.RowView(i)
		for j = 0; j < p.n; j++ {
			if colLined[j] || p.marked[i][j] {
				continue
			}
			if bi < 0 || row[j] < p.cost.RowView(bi)[bj] {
				bi, bj = i, j
			}
		}
	}

	return bi, bj
}

// readout keeps marked and infeasible cells at their cost and closes every
// unmarked feasible cell with +Inf. A maximum marked matching plus
// infeasible cells for the rows it leaves free is a perfect matching of it.
func (p *positions) readout() *matrix.Dense {
	out, _ := matrix.AsDense(p.cost)
	var i, j int
	for i = 0; i < p.n; i++ {
		row := out.RowView(i)
		for j = 0; j < p.n; j++ {
			if !p.marked[i][j] && p.feasible(i, j) {
				row[j] = math.Inf(1)
			}
		}
	}

	return out
}

func (p *positions) result(rounds int, o Options) (*Result, error) {
	r, err := hungarian.Solve(p.readout(), hungarian.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("tba: %w", err)
	}
	var total float64
	for i, j := range r.Assignment {
		total += p.cost.RowView(i)[j]
	}
	marks := 0
	for _, row := range p.marked {
		for _, v := range row {
			if v {
				marks++
			}
		}
	}

	return &Result{Dispatch: r.Dispatch, Assignment: r.Assignment, Cost: total, Marks: marks, Rounds: rounds}, nil
}
