// Package core has core logic for batch scoring, ranking and the command executors.
package core

import (
	"context"
	"fmt"
	"time"

	"github.com/projectparaiba/paraiba/core/algo"
	"github.com/projectparaiba/paraiba/internal/contract"
	"github.com/projectparaiba/paraiba/internal/outwriter"
	"github.com/projectparaiba/paraiba/schema"
)

// ExecutorFunc defines the function signature for executing the different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// loadCandidates is the candidate source used by ExecuteRank.
var loadCandidates contract.CandidateLoader = LoadCandidates

// writer renders every command result.
var writer = outwriter.NewOutWriter()

// ExecuteRank loads candidates, ranks them and prints the results.
// It serves as the main entry point for the 'rank' command.
func ExecuteRank(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	candidates, err := loadCandidates(cfg.InputPath)
	if err != nil {
		return err
	}

	metrics := NewMetrics()
	report := RankCandidates(ctx, cfg, candidates, metrics)
	if report.Failed > 0 {
		contract.LogWarn("scoring", fmt.Errorf("%d of %d candidates could not be scored", report.Failed, len(candidates)))
	}
	if cfg.MetricsFile != "" {
		if err := metrics.WriteFile(cfg.MetricsFile); err != nil {
			contract.LogWarn("writing metrics file", err)
		}
	}

	report.Results = algo.Top(report.Results, cfg.ResultLimit)
	duration := time.Since(start)
	return writer.WriteRanked(report, cfg, duration)
}

// RankCandidates scores and ranks a batch with the configured weights and
// worker count. The recorder, if any, observes the full ranked batch.
func RankCandidates(ctx context.Context, cfg *contract.Config, candidates []schema.Candidate, rec contract.BatchRecorder) schema.RankReport {
	start := time.Now()
	results := ScoreBatch(ctx, candidates, cfg.Weights, cfg.Workers)
	if rec != nil {
		rec.ObserveBatch(results, time.Since(start))
	}
	return schema.NewRankReport(results, cfg.Weights)
}

// ExecuteScore scores the single candidate described by the score flags.
// Unlike the batch path, invalid input is returned as an error.
func ExecuteScore(_ context.Context, cfg *contract.Config) error {
	start := time.Now()
	result, err := algo.ScoreOne(cfg.Score, cfg.Weights)
	if err != nil {
		return err
	}
	rc := schema.RankedCandidate{
		Candidate: schema.CandidateFromInputs(cfg.ScoreName, cfg.Score),
		Result:    result,
	}
	duration := time.Since(start)
	return writer.WriteScore(rc, cfg, duration)
}

// ExecuteWeights prints the active weight configuration.
func ExecuteWeights(_ context.Context, cfg *contract.Config) error {
	return writer.WriteWeights(cfg)
}
