// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/projectparaiba/paraiba/internal/contract"
	"github.com/projectparaiba/paraiba/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteRanked prints a ranking run using the configured output format.
func (ow *OutWriter) WriteRanked(report schema.RankReport, cfg *contract.Config, duration time.Duration) error {
	return WriteRankReport(report, cfg, duration)
}

// WriteScore prints a single candidate's score using the configured output format.
func (ow *OutWriter) WriteScore(rc schema.RankedCandidate, cfg *contract.Config, duration time.Duration) error {
	return WriteScoreResult(rc, cfg, duration)
}

// WriteWeights prints the active weight configuration using the configured output format.
func (ow *OutWriter) WriteWeights(cfg *contract.Config) error {
	return PrintWeightsDefinition(cfg)
}
