// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvdispatch/matrix"
)

func TestGonumRoundTrip(t *testing.T) {
	t.Parallel()

	g := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	d, err := matrix.FromMat(g)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, d.ToRows())

	back := d.ToMat()
	require.True(t, mat.Equal(g, back))

	// no shared storage
	back.Set(0, 0, 42)
	v, err := d.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	// gonum views are accepted through the interface
	d2, err := matrix.FromMat(g.T())
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, d2.ToRows())

	_, err = matrix.FromMat(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
