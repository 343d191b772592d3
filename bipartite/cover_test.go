package bipartite_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdispatch/bipartite"
)

func TestFindCover_SizeEqualsMatching(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(seedDet + 1))
	var trial int
	for trial = 0; trial < 300; trial++ {
		left, right := rng.Intn(10), rng.Intn(10)
		edges := randomEdges(rng, left, right, rng.Float64())

		c, m, err := bipartite.FindCover(left, right, edges)
		require.NoError(t, err)
		require.Equalf(t, len(m), c.Size(), "trial %d: König size mismatch", trial)
		require.Truef(t, covers(c, edges), "trial %d: cover misses an edge", trial)
	}
}

func TestMinCover_IsolatedVerticesExcluded(t *testing.T) {
	t.Parallel()

	// left 1 and right 2 have no edges.
	edges := []bipartite.Edge{{0, 0}, {2, 0}, {2, 1}}
	c, m, err := bipartite.FindCover(3, 3, edges)
	require.NoError(t, err)
	require.Len(t, m, 2)
	assert.NotContains(t, c.Left, 1)
	assert.NotContains(t, c.Right, 2)
	assert.Equal(t, 2, c.Size())
}

// The zero pattern of a 3×3 matrix whose zeros sit in column 0 only needs a
// single column line.
func TestMinCover_SingleColumn(t *testing.T) {
	t.Parallel()

	edges := []bipartite.Edge{{0, 0}, {1, 0}, {2, 0}}
	c, _, err := bipartite.FindCover(3, 3, edges)
	require.NoError(t, err)
	assert.Empty(t, c.Left)
	assert.Equal(t, []int{0}, c.Right)
}

func TestMinCover_RejectsBadMatchings(t *testing.T) {
	t.Parallel()

	edges := []bipartite.Edge{{0, 0}, {0, 1}, {1, 0}}

	_, err := bipartite.MinCover(2, 2, edges, []bipartite.Edge{{1, 1}})
	require.ErrorIs(t, err, bipartite.ErrNotMatching)

	_, err = bipartite.MinCover(2, 2, edges, []bipartite.Edge{{0, 0}, {1, 0}})
	require.ErrorIs(t, err, bipartite.ErrNotMatching)

	// {0,0} alone is maximal but not maximum: 1→0→0→1 augments it.
	_, err = bipartite.MinCover(2, 2, edges, []bipartite.Edge{{0, 0}})
	require.ErrorIs(t, err, bipartite.ErrNotMaximum)

	c, err := bipartite.MinCover(2, 2, edges, []bipartite.Edge{{0, 1}, {1, 0}})
	require.NoError(t, err)
	require.Equal(t, 2, c.Size())
}
