package dispatch

import (
	"context"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvdispatch/battery"
	"github.com/katalvlaran/lvdispatch/hungarian"
	"github.com/katalvlaran/lvdispatch/matrix"
	"github.com/katalvlaran/lvdispatch/tba"
)

// Unassigned marks an agent that received no real, reachable target.
const Unassigned = -1

// Result is the trimmed outcome of one solve.
//
// Dispatch is the padded n×n 0/1 matrix the builder produced, with
// n = max(Agents, Targets); it is nil for an empty problem.
// Assignment[i] is agent i's target or Unassigned.
// Iterations is the adjustment count for HBA and the extra mark count for TBA.
type Result struct {
	Dispatch   *matrix.Dense
	Assignment []int
	Cost       float64
	Iterations int
	Algorithm  Algorithm
	Agents     int
	Targets    int
}

// Assigned returns the number of agents holding a real target.
func (r *Result) Assigned() int {
	n := 0
	for _, j := range r.Assignment {
		if j != Unassigned {
			n++
		}
	}

	return n
}

// Solve dispatches agents to targets for the [agent][target] cost matrix.
// An empty matrix (no agents or no targets) yields an empty result.
//
// Errors: matrix.ErrRagged, matrix.ErrNaN, matrix.ErrNegativeCost,
// matrix.ErrCostOverflow, matrix.ErrDimensionMismatch (battery length),
// battery.ErrLevel, and whatever the selected builder reports.
func Solve(ctx context.Context, cost [][]float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)

	ctx, span := o.Tracer.Start(ctx, "lvdispatch.solve",
		trace.WithAttributes(attribute.String("algorithm", o.Algorithm.String())))
	defer span.End()

	res, err := solve(cost, o)
	inst := newInstruments(o.Meter, o.Logger)
	inst.record(ctx, o.Algorithm, res, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("agents", res.Agents),
		attribute.Int("targets", res.Targets),
		attribute.Int("size", max(res.Agents, res.Targets)),
		attribute.Int("assigned", res.Assigned()),
		attribute.Int("iterations", res.Iterations),
		attribute.Float64("cost", res.Cost),
	)

	return res, nil
}

func solve(cost [][]float64, o Options) (*Result, error) {
	res := &Result{Algorithm: o.Algorithm, Agents: len(cost)}
	if len(cost) > 0 {
		res.Targets = len(cost[0])
	}
	if res.Agents == 0 || res.Targets == 0 {
		for i, row := range cost {
			if len(row) != 0 {
				return nil, fmt.Errorf("Solve: row %d has %d values, want 0: %w", i, len(row), matrix.ErrRagged)
			}
		}
		res.Assignment = make([]int, res.Agents)
		for i := range res.Assignment {
			res.Assignment[i] = Unassigned
		}
		return res, nil
	}

	// Stage 1: validate the raw matrix.
	raw, err := matrix.NewFromRows(cost)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateCosts(raw); err != nil {
		return nil, err
	}

	// Stage 2: optional battery transform on the real agents only.
	work := raw
	if o.Battery != nil {
		if work, err = battery.TransformWithLogger(raw, o.Battery, o.Logger); err != nil {
			return nil, err
		}
	}

	// Stage 3: square. Every builder prices the +Inf cells at the same
	// sentinel; it is computed here to reject overflowing costs up front.
	n := max(res.Agents, res.Targets)
	padded, err := matrix.Pad(work, n, math.Inf(1))
	if err != nil {
		return nil, err
	}
	sentinel, err := matrix.InfeasibleCost(padded)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("padded",
		zap.Int("size", n),
		zap.Float64("sentinel", sentinel),
		zap.Int("infeasible", matrix.CountInf(padded)))

	// Stage 4: build.
	var assign []int
	switch o.Algorithm {
	case AlgorithmTBA:
		r, err := tba.Solve(padded, tba.WithLogger(o.Logger))
		if err != nil {
			return nil, err
		}
		res.Dispatch, assign, res.Iterations = r.Dispatch, r.Assignment, r.Rounds
	case AlgorithmExhaustive:
		if assign, _, err = Exhaustive(padded); err != nil {
			return nil, err
		}
		if res.Dispatch, err = matrix.DispatchFromAssignment(n, assign); err != nil {
			return nil, err
		}
	default:
		hopts := append([]hungarian.Option{hungarian.WithLogger(o.Logger)}, o.Hungarian...)
		r, err := hungarian.Solve(padded, hopts...)
		if err != nil {
			return nil, err
		}
		res.Dispatch, assign, res.Iterations = r.Dispatch, r.Assignment, r.Iterations
	}

	// Stage 5: trim to real, reachable pairs.
	res.Assignment = make([]int, res.Agents)
	for i := range res.Assignment {
		j := assign[i]
		if j >= res.Targets || math.IsInf(raw.RowView(i)[j], 1) {
			res.Assignment[i] = Unassigned
			continue
		}
		res.Assignment[i] = j
		res.Cost += raw.RowView(i)[j]
	}

	return res, nil
}
