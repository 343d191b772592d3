package battery

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvdispatch/matrix"
)

// ErrLevel is returned for a NaN or infinite battery level.
var ErrLevel = errors.New("battery: level must be finite")

// Transform returns the battery-aware cost matrix; cost is not modified.
// levels must hold one value per row.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNaN, matrix.ErrNegativeCost,
// matrix.ErrDimensionMismatch, ErrLevel.
// Complexity: O(r*c).
func Transform(cost matrix.Matrix, levels []float64) (*matrix.Dense, error) {
	return TransformWithLogger(cost, levels, nil)
}

// TransformWithLogger is Transform with a Debug trace of the intermediate
// remaining-charge matrix ("battery matrix").
func TransformWithLogger(cost matrix.Matrix, levels []float64, log *zap.Logger) (*matrix.Dense, error) {
	if err := matrix.ValidateCosts(cost); err != nil {
		return nil, err
	}
	if err := matrix.ValidateVecLen(levels, cost.Rows()); err != nil {
		return nil, err
	}
	for _, b := range levels {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return nil, ErrLevel
		}
	}
	if log == nil {
		log = zap.NewNop()
	}

	out, err := matrix.AsDense(cost)
	if err != nil {
		return nil, err
	}

	// Stage 1: charge left after each move; +Inf cost stays +Inf.
	var i, j int
	for i = 0; i < out.Rows(); i++ {
		row := out.RowView(i)
		for j = 0; j < len(row); j++ {
			if !math.IsInf(row[j], 1) {
				row[j] = levels[i] - row[j]
			}
		}
	}
	log.Debug("battery matrix", zap.Stringer("matrix", out))

	top, ok := matrix.MaxFinite(out)
	if !ok {
		return out, nil
	}

	// Stage 2: invert so the most charge maps to the lowest cost.
	for i = 0; i < out.Rows(); i++ {
		row := out.RowView(i)
		for j = 0; j < len(row); j++ {
			if !math.IsInf(row[j], 1) {
				row[j] = top - row[j]
			}
		}
	}

	return out, nil
}
