// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// FromMat copies any gonum mat.Matrix into a new Dense.
//
// Errors: ErrNilMatrix for a nil input, ErrInvalidDimensions for an empty one.
// Complexity: O(r*c).
func FromMat(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, validatorErrorf("FromMat", ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}

// ToMat copies m into a gonum *mat.Dense. The result does not share storage.
func (m *Dense) ToMat() *mat.Dense {
	return mat.NewDense(m.r, m.c, append([]float64(nil), m.data...))
}
