package schema

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ScoreResult is the outcome of scoring one candidate. A failed result has a
// zero Score, nil sub-scores and a non-empty Error.
type ScoreResult struct {
	Score     float64  `json:"score"`     // Composite score (0-100, 2 decimals)
	Social    *float64 `json:"social"`    // Social sub-score (0-1, 4 decimals)
	Sentiment *float64 `json:"sentiment"` // Sentiment sub-score (pass-through, 4 decimals)
	Rating    *float64 `json:"rating"`    // Rating/obscurity sub-score (0-1, 4 decimals)
	Error     string   `json:"error,omitempty"`

	// Breakdown holds each group's weighted contribution in score points.
	Breakdown map[BreakdownKey]float64 `json:"breakdown,omitempty"`
}

// FailedResult returns the sentinel result for a candidate that could not be scored.
func FailedResult(err error) ScoreResult {
	return ScoreResult{Score: 0.0, Error: err.Error()}
}

// OK reports whether the candidate was scored successfully.
func (r ScoreResult) OK() bool {
	return r.Error == ""
}

// RankedCandidate is a candidate with its attached score.
type RankedCandidate struct {
	Index     int         // Position in the input collection
	Candidate Candidate   // Original candidate, attributes preserved
	Result    ScoreResult // Attached score or sentinel failure
}

// MarshalJSON merges the candidate attributes with a "scoreResult" entry.
func (r RankedCandidate) MarshalJSON() ([]byte, error) {
	attrs := r.Candidate.Attributes()
	attrs["scoreResult"] = r.Result
	return json.Marshal(attrs)
}

// RankReport is one ranking run over a batch of candidates.
type RankReport struct {
	RunID       uuid.UUID         `json:"runId"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Weights     WeightConfig      `json:"weights"`
	Scored      int               `json:"scored"`
	Failed      int               `json:"failed"`
	Results     []RankedCandidate `json:"results"`
}

// NewRankReport wraps already ranked results with run metadata.
func NewRankReport(results []RankedCandidate, weights WeightConfig) RankReport {
	report := RankReport{
		RunID:       uuid.New(),
		GeneratedAt: time.Now().UTC(),
		Weights:     weights,
		Results:     results,
	}
	for _, r := range results {
		if r.Result.OK() {
			report.Scored++
		} else {
			report.Failed++
		}
	}
	return report
}
