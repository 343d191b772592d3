package bipartite_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvdispatch/bipartite"
)

// BenchmarkFindCover_n64 measures matching + König on a dense random graph.
func BenchmarkFindCover_n64(b *testing.B) {
	rng := rand.New(rand.NewSource(seedDet))
	edges := randomEdges(rng, 64, 64, 0.2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := bipartite.FindCover(64, 64, edges); err != nil {
			b.Fatal(err)
		}
	}
}
