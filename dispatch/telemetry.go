package dispatch

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// instruments holds the per-solve metrics.
type instruments struct {
	solves metric.Int64Counter
	cost   metric.Float64Histogram
}

func newInstruments(m metric.Meter, log *zap.Logger) instruments {
	solves, err := m.Int64Counter("lvdispatch.solves",
		metric.WithDescription("Dispatch solves by algorithm and outcome."))
	if err != nil {
		log.Warn("solves counter unavailable", zap.Error(err))
		solves = noop.Int64Counter{}
	}
	cost, err := m.Float64Histogram("lvdispatch.cost",
		metric.WithDescription("Total raw cost of successful dispatches."))
	if err != nil {
		log.Warn("cost histogram unavailable", zap.Error(err))
		cost = noop.Float64Histogram{}
	}

	return instruments{solves: solves, cost: cost}
}

func (in instruments) record(ctx context.Context, a Algorithm, res *Result, err error) {
	algo := attribute.String("algorithm", a.String())
	in.solves.Add(ctx, 1, metric.WithAttributes(algo, attribute.Bool("error", err != nil)))
	if err == nil {
		in.cost.Record(ctx, res.Cost, metric.WithAttributes(algo))
	}
}
