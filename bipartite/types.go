package bipartite

import "errors"

// NoMatch marks a vertex without a partner in the matching arrays.
const NoMatch = -1

var (
	// ErrNegativeCount is returned when a side of the graph has a negative size.
	ErrNegativeCount = errors.New("bipartite: negative vertex count")

	// ErrVertexRange is returned when an edge endpoint is outside its side.
	ErrVertexRange = errors.New("bipartite: vertex index out of range")

	// ErrNotMatching is returned when the matching passed to MinCover shares a
	// vertex between two pairs or contains a pair that is not an edge.
	ErrNotMatching = errors.New("bipartite: pairs do not form a matching of the graph")

	// ErrNotMaximum is returned when MinCover meets an augmenting path.
	ErrNotMaximum = errors.New("bipartite: matching is not maximum")
)

// Edge is an eligible (Left, Right) pair. In a cost matrix Left is the
// agent/row index and Right the target/column index.
type Edge struct {
	Left  int
	Right int
}

// Cover is a vertex cover split by side. Both index lists are ascending.
type Cover struct {
	Left  []int
	Right []int
}

// Size returns |Left| + |Right|.
func (c Cover) Size() int { return len(c.Left) + len(c.Right) }
