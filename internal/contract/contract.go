// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/projectparaiba/paraiba/schema"
)

// CandidateLoader reads a candidate collection from a path.
// The path "-" refers to standard input.
type CandidateLoader func(path string) ([]schema.Candidate, error)

// BatchRecorder records the outcome of a ranked batch.
// This allows metrics collection to be swapped out or disabled in tests.
type BatchRecorder interface {
	// ObserveBatch is called once per batch with the ranked results and
	// the time spent scoring them.
	ObserveBatch(results []schema.RankedCandidate, elapsed time.Duration)
}
