package bipartite

import "fmt"

// MinCover converts a maximum matching of (left, right, edges) into a
// minimum vertex cover using König's construction.
//
// Steps:
//  1. Mark every left vertex the matching leaves free.
//  2. From a marked left vertex follow each non-matching edge and mark the
//     right endpoint; from a newly marked right vertex follow its matching
//     edge back and mark that left vertex. Repeat to a fixpoint (BFS).
//  3. Cover = unmarked left ∪ marked right.
//
// Guarantee: len(Left)+len(Right) == len(matching).
//
// Errors:
//   - ErrNegativeCount / ErrVertexRange for a malformed graph.
//   - ErrNotMatching when matching reuses a vertex or contains a non-edge.
//   - ErrNotMaximum when a marked right vertex is free (an augmenting path).
//
// Complexity: O(V+E).
func MinCover(left, right int, edges []Edge, matching []Edge) (Cover, error) {
	g, err := build(left, right, edges)
	if err != nil {
		return Cover{}, err
	}

	return g.cover(matching)
}

// FindCover computes a maximum matching and the matching minimum cover.
func FindCover(left, right int, edges []Edge) (Cover, []Edge, error) {
	g, err := build(left, right, edges)
	if err != nil {
		return Cover{}, nil, err
	}
	matching := g.MaxMatching()
	c, err := g.cover(matching)
	if err != nil {
		return Cover{}, nil, err
	}

	return c, matching, nil
}

func (g *Graph) cover(matching []Edge) (Cover, error) {
	matchL := fill(make([]int, g.left), NoMatch)
	matchR := fill(make([]int, g.right), NoMatch)
	for _, e := range matching {
		if !g.HasEdge(e.Left, e.Right) {
			return Cover{}, fmt.Errorf("MinCover: pair (%d,%d) is not an edge: %w", e.Left, e.Right, ErrNotMatching)
		}
		if matchL[e.Left] != NoMatch || matchR[e.Right] != NoMatch {
			return Cover{}, fmt.Errorf("MinCover: pair (%d,%d) reuses a vertex: %w", e.Left, e.Right, ErrNotMatching)
		}
		matchL[e.Left] = e.Right
		matchR[e.Right] = e.Left
	}

	var (
		markL = make([]bool, g.left)
		markR = make([]bool, g.right)
		queue = make([]int, 0, g.left)
		u     int
	)
	for u = 0; u < g.left; u++ {
		if matchL[u] == NoMatch {
			markL[u] = true
			queue = append(queue, u)
		}
	}
	for len(queue) > 0 {
		u = queue[0]
		queue = queue[1:]
		for _, v := range g.adj[u] {
			if v == matchL[u] || markR[v] {
				continue
			}
			markR[v] = true
			w := matchR[v]
			if w == NoMatch {
				return Cover{}, fmt.Errorf("MinCover: free right vertex %d reachable: %w", v, ErrNotMaximum)
			}
			if !markL[w] {
				markL[w] = true
				queue = append(queue, w)
			}
		}
	}

	c := Cover{Left: []int{}, Right: []int{}}
	for u = 0; u < g.left; u++ {
		if !markL[u] {
			c.Left = append(c.Left, u)
		}
	}
	for v := 0; v < g.right; v++ {
		if markR[v] {
			c.Right = append(c.Right, v)
		}
	}

	return c, nil
}
