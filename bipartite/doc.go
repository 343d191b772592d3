// Package bipartite computes maximum-cardinality matchings and minimum
// vertex covers of bipartite graphs given as (left, right) eligibility edges.
//
// Overview:
//
//   - MaxMatching runs Hopcroft–Karp: BFS builds layers from every free left
//     vertex, DFS augments along vertex-disjoint shortest alternating paths.
//     Time O(E·√V), space O(V+E).
//   - MinCover turns a maximum matching into a minimum vertex cover with
//     König's construction: start from the free left vertices, follow
//     non-matching edges left→right and matching edges right→left. The cover
//     is (left not reached) ∪ (right reached), and its size always equals the
//     matching size.
//   - FindCover chains the two.
//
// In the dispatch solvers the left side is agents (matrix rows), the right
// side targets (matrix columns) and an edge marks a zero-cost cell, so a
// cover is the smallest set of lines through every zero.
//
// Edge cases:
//
//   - No edges: empty matching, empty cover.
//   - Duplicate edges are ignored.
//   - A vertex without edges is never matched and never part of the cover.
//
// Errors (sentinels, match with errors.Is):
//
//   - ErrNegativeCount   – left or right vertex count below zero.
//   - ErrVertexRange     – an edge endpoint outside [0, count).
//   - ErrNotMatching     – a "matching" reuses a vertex or uses a non-edge.
//   - ErrNotMaximum      – MinCover found an augmenting path, so the matching
//     it was given is not maximum.
package bipartite
