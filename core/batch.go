package core

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/projectparaiba/paraiba/core/algo"
	"github.com/projectparaiba/paraiba/schema"
)

var tracer = otel.Tracer("paraiba/core")

// ScoreBatch scores every candidate and returns them ranked by composite
// score, highest first. It never fails as a whole: a candidate that cannot
// be scored gets a sentinel result (score 0, error text) and is still part
// of the output. Ties keep their input order.
//
// With workers > 1 the candidates are scored on a worker pool. Results are
// stored by input index, so the ranking is the same as a sequential run.
// Once ctx is done, candidates not yet scored get a sentinel carrying the
// context error.
func ScoreBatch(ctx context.Context, candidates []schema.Candidate, w schema.WeightConfig, workers int) []schema.RankedCandidate {
	ctx, span := tracer.Start(ctx, "core.ScoreBatch",
		trace.WithAttributes(
			attribute.Int("candidates", len(candidates)),
			attribute.Int("workers", workers),
		),
	)
	defer span.End()

	results := make([]schema.RankedCandidate, len(candidates))
	if workers > 1 && len(candidates) > 1 {
		scoreParallel(ctx, candidates, w, workers, results)
	} else {
		for i, c := range candidates {
			results[i] = scoreCandidate(ctx, i, c, w)
		}
	}

	failed := 0
	for _, r := range results {
		if !r.Result.OK() {
			failed++
		}
	}
	span.SetAttributes(attribute.Int("failed", failed))

	return algo.Rank(results)
}

// scoreParallel fans candidate indices out to a fixed pool of workers.
func scoreParallel(ctx context.Context, candidates []schema.Candidate, w schema.WeightConfig, workers int, results []schema.RankedCandidate) {
	indexCh := make(chan int, len(candidates))
	var wg sync.WaitGroup

	for range min(workers, len(candidates)) {
		wg.Go(func() {
			for i := range indexCh {
				// Each worker writes to a unique index.
				results[i] = scoreCandidate(ctx, i, candidates[i], w)
			}
		})
	}

	for i := range candidates {
		indexCh <- i
	}
	close(indexCh)

	wg.Wait()
}

// scoreCandidate validates and scores a single candidate, converting any
// failure into the sentinel result.
func scoreCandidate(ctx context.Context, index int, c schema.Candidate, w schema.WeightConfig) schema.RankedCandidate {
	rc := schema.RankedCandidate{Index: index, Candidate: c}
	if err := ctx.Err(); err != nil {
		rc.Result = schema.FailedResult(err)
		return rc
	}

	in, err := c.Inputs()
	if err != nil {
		rc.Result = schema.FailedResult(err)
		return rc
	}
	res, err := algo.ScoreOne(in, w)
	if err != nil {
		rc.Result = schema.FailedResult(err)
		return rc
	}
	rc.Result = res
	return rc
}
