// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvdispatch/matrix"
)

// ExamplePad squares a 2-agent × 3-target cost matrix. The dummy agent row is
// infeasible everywhere until the sentinel replaces +Inf.
func ExamplePad() {
	costs, _ := matrix.NewFromRows([][]float64{
		{4, 1, 3},
		{2, 0, 5},
	})
	padded, _ := matrix.Pad(costs, 3, math.Inf(1))
	sentinel, _ := matrix.InfeasibleCost(padded)
	finite, _ := matrix.ReplaceInf(padded, sentinel)
	fmt.Print(finite)
	// Output:
	// [ 4  1  3]
	// [ 2  0  5]
	// [10 10 10]
}
