package dispatch

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Problem is one independent solve inside a batch. An empty ID is replaced
// by a random UUID; a nil Battery falls back to the batch options.
type Problem struct {
	ID      string
	Cost    [][]float64
	Battery []float64
}

// BatchResult pairs a problem ID with its outcome. Exactly one of Result
// and Err is set.
type BatchResult struct {
	ID     string
	Result *Result
	Err    error
}

type batchParam struct {
	idx     int
	ctx     context.Context
	problem Problem
	opts    []Option
	results []BatchResult
	wg      *sync.WaitGroup
}

// SolveBatch solves problems concurrently on an ants pool of
// Options.Workers goroutines. Results keep the order of problems.
// Problems not started before ctx is done report ctx.Err().
//
// Errors: only pool construction fails the whole batch (ErrPoolSize);
// per-problem failures land in BatchResult.Err.
func SolveBatch(ctx context.Context, problems []Problem, opts ...Option) ([]BatchResult, error) {
	o := gatherOptions(opts)

	ctx, span := o.Tracer.Start(ctx, "lvdispatch.batch",
		trace.WithAttributes(
			attribute.Int("problems", len(problems)),
			attribute.Int("workers", o.Workers)))
	defer span.End()

	pool, err := ants.NewPoolWithFunc(o.Workers, func(args any) {
		p, ok := args.(*batchParam)
		if !ok {
			panic("dispatch: batch pool args type error")
		}
		defer p.wg.Done()
		if err := p.ctx.Err(); err != nil {
			p.results[p.idx].Err = err
			return
		}
		opts := p.opts
		if p.problem.Battery != nil {
			opts = append(append([]Option(nil), opts...), WithBattery(p.problem.Battery))
		}
		res, err := Solve(p.ctx, p.problem.Cost, opts...)
		p.results[p.idx].Result, p.results[p.idx].Err = res, err
	})
	if err != nil {
		return nil, fmt.Errorf("SolveBatch(workers=%d): %v: %w", o.Workers, err, ErrPoolSize)
	}
	defer pool.Release()

	var (
		results = make([]BatchResult, len(problems))
		wg      sync.WaitGroup
	)
	for i, pr := range problems {
		if pr.ID == "" {
			pr.ID = uuid.NewString()
		}
		results[i].ID = pr.ID
		if err = ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		wg.Add(1)
		param := &batchParam{idx: i, ctx: ctx, problem: pr, opts: opts, results: results, wg: &wg}
		if err = pool.Invoke(param); err != nil {
			wg.Done()
			results[i].Err = err
		}
	}
	wg.Wait()

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	span.SetAttributes(attribute.Int("failed", failed))

	return results, nil
}
