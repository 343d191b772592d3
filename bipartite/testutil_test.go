package bipartite_test

import (
	"math/rand"

	"github.com/katalvlaran/lvdispatch/bipartite"
)

// seedDet keeps random graphs reproducible across runs.
const seedDet = 20240611

// randomEdges draws each (u,v) pair with probability p; duplicates are
// appended on purpose so the dedupe path is exercised.
func randomEdges(rng *rand.Rand, left, right int, p float64) []bipartite.Edge {
	var edges []bipartite.Edge
	var u, v int
	for u = 0; u < left; u++ {
		for v = 0; v < right; v++ {
			if rng.Float64() < p {
				edges = append(edges, bipartite.Edge{Left: u, Right: v})
				if rng.Intn(4) == 0 {
					edges = append(edges, bipartite.Edge{Left: u, Right: v})
				}
			}
		}
	}

	return edges
}

// kuhnSize is the textbook O(V·E) augmenting-path matching, used as an oracle.
func kuhnSize(left, right int, edges []bipartite.Edge) int {
	adj := make([][]int, left)
	for _, e := range edges {
		adj[e.Left] = append(adj[e.Left], e.Right)
	}
	matchR := make([]int, right)
	for i := range matchR {
		matchR[i] = -1
	}
	var try func(u int, seen []bool) bool
	try = func(u int, seen []bool) bool {
		for _, v := range adj[u] {
			if seen[v] {
				continue
			}
			seen[v] = true
			if matchR[v] == -1 || try(matchR[v], seen) {
				matchR[v] = u
				return true
			}
		}
		return false
	}
	size := 0
	for u := 0; u < left; u++ {
		if try(u, make([]bool, right)) {
			size++
		}
	}

	return size
}

// isMatching checks disjointness and edge membership.
func isMatching(edges, matching []bipartite.Edge) bool {
	set := make(map[bipartite.Edge]bool, len(edges))
	for _, e := range edges {
		set[e] = true
	}
	usedL := map[int]bool{}
	usedR := map[int]bool{}
	for _, m := range matching {
		if !set[m] || usedL[m.Left] || usedR[m.Right] {
			return false
		}
		usedL[m.Left], usedR[m.Right] = true, true
	}

	return true
}

// covers reports whether every edge has an endpoint in c.
func covers(c bipartite.Cover, edges []bipartite.Edge) bool {
	l := map[int]bool{}
	r := map[int]bool{}
	for _, u := range c.Left {
		l[u] = true
	}
	for _, v := range c.Right {
		r[v] = true
	}
	for _, e := range edges {
		if !l[e.Left] && !r[e.Right] {
			return false
		}
	}

	return true
}
