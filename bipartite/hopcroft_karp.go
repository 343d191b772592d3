package bipartite

import "fmt"

const infDistance = int(^uint(0) >> 1)

// Graph is a bipartite graph with left vertices [0, left) and right vertices
// [0, right). Build it with AddEdge, then call MaxMatching as often as needed;
// every call starts from an empty matching.
type Graph struct {
	left, right int
	adj         [][]int           // adj[u] lists right neighbours of left u in insertion order
	seen        map[Edge]struct{} // duplicate-edge filter

	// Hopcroft–Karp scratch, reallocated by MaxMatching.
	matchL []int // matchL[u] = right partner of u or NoMatch
	matchR []int // matchR[v] = left partner of v or NoMatch
	dist   []int // BFS layer of each left vertex
}

// NewGraph returns an edgeless graph with the given side sizes.
//
// Errors: ErrNegativeCount if left < 0 or right < 0.
func NewGraph(left, right int) (*Graph, error) {
	if left < 0 || right < 0 {
		return nil, fmt.Errorf("NewGraph(%d,%d): %w", left, right, ErrNegativeCount)
	}

	return &Graph{
		left:  left,
		right: right,
		adj:   make([][]int, left),
		seen:  make(map[Edge]struct{}),
	}, nil
}

// Left returns the number of left vertices.
func (g *Graph) Left() int { return g.left }

// Right returns the number of right vertices.
func (g *Graph) Right() int { return g.right }

// AddEdge adds u→v. Adding the same edge twice is a no-op.
//
// Errors: ErrVertexRange if u or v is outside its side.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.left || v < 0 || v >= g.right {
		return fmt.Errorf("AddEdge(%d,%d) on %dx%d: %w", u, v, g.left, g.right, ErrVertexRange)
	}
	e := Edge{Left: u, Right: v}
	if _, ok := g.seen[e]; ok {
		return nil
	}
	g.seen[e] = struct{}{}
	g.adj[u] = append(g.adj[u], v)

	return nil
}

// HasEdge reports whether u→v was added.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.seen[Edge{Left: u, Right: v}]
	return ok
}

// Neighbors returns the right neighbours of left vertex u (shared slice, do not modify).
func (g *Graph) Neighbors(u int) []int { return g.adj[u] }

// MaxMatching computes a maximum-cardinality matching with Hopcroft–Karp.
// Pairs are returned ordered by Left.
//
// Complexity: O(E·√V) time, O(V) extra space.
func (g *Graph) MaxMatching() []Edge {
	g.matchL = fill(make([]int, g.left), NoMatch)
	g.matchR = fill(make([]int, g.right), NoMatch)
	g.dist = make([]int, g.left)

	var u int
	for g.bfs() {
		for u = 0; u < g.left; u++ {
			if g.matchL[u] == NoMatch {
				g.dfs(u)
			}
		}
	}

	out := make([]Edge, 0, min(g.left, g.right))
	for u = 0; u < g.left; u++ {
		if g.matchL[u] != NoMatch {
			out = append(out, Edge{Left: u, Right: g.matchL[u]})
		}
	}

	return out
}

// bfs layers the left vertices by alternating-path distance from the free
// ones and reports whether some free right vertex is reachable.
func (g *Graph) bfs() bool {
	queue := make([]int, 0, g.left)
	var u int
	for u = 0; u < g.left; u++ {
		if g.matchL[u] == NoMatch {
			g.dist[u] = 0
			queue = append(queue, u)
		} else {
			g.dist[u] = infDistance
		}
	}

	found := false
	for len(queue) > 0 {
		u = queue[0]
		queue = queue[1:]
		for _, v := range g.adj[u] {
			w := g.matchR[v]
			if w == NoMatch {
				found = true
			} else if g.dist[w] == infDistance {
				g.dist[w] = g.dist[u] + 1
				queue = append(queue, w)
			}
		}
	}

	return found
}

// dfs augments from u along the BFS layers. A dead end is removed from the
// layer graph so later searches in this phase skip it.
func (g *Graph) dfs(u int) bool {
	for _, v := range g.adj[u] {
		w := g.matchR[v]
		if w == NoMatch || (g.dist[w] == g.dist[u]+1 && g.dfs(w)) {
			g.matchL[u] = v
			g.matchR[v] = u
			return true
		}
	}
	g.dist[u] = infDistance

	return false
}

// MaxMatching builds a graph from edges and returns a maximum matching.
//
// Errors: ErrNegativeCount, ErrVertexRange.
func MaxMatching(left, right int, edges []Edge) ([]Edge, error) {
	g, err := build(left, right, edges)
	if err != nil {
		return nil, err
	}

	return g.MaxMatching(), nil
}

func build(left, right int, edges []Edge) (*Graph, error) {
	g, err := NewGraph(left, right)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.AddEdge(e.Left, e.Right); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func fill(s []int, v int) []int {
	for i := range s {
		s[i] = v
	}
	return s
}
