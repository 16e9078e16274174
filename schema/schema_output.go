package schema

import "encoding/json"

// Label values for composite scores.
const (
	GemLabel       = "Gem"
	PromisingLabel = "Promising"
	AverageLabel   = "Average"
	LowLabel       = "Low"
	ErrorLabel     = "Error"
)

// EnrichedRankedCandidate adds presentation data to a RankedCandidate.
type EnrichedRankedCandidate struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	RankedCandidate
}

// MarshalJSON flattens rank and label into the candidate object.
func (e EnrichedRankedCandidate) MarshalJSON() ([]byte, error) {
	attrs := e.Candidate.Attributes()
	attrs["scoreResult"] = e.Result
	attrs["rank"] = e.Rank
	attrs["label"] = e.Label
	return json.Marshal(attrs)
}

// GetPlainLabel returns a plain text label for a composite score.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 65:
		return GemLabel
	case score >= 55:
		return PromisingLabel
	case score >= 45:
		return AverageLabel
	default:
		return LowLabel
	}
}

// ResultLabel labels a result, marking sentinel failures explicitly.
func ResultLabel(r ScoreResult) string {
	if !r.OK() {
		return ErrorLabel
	}
	return GetPlainLabel(r.Score)
}

// EnrichRanked adds rank and label to a list of ranked candidates.
func EnrichRanked(results []RankedCandidate) []EnrichedRankedCandidate {
	output := make([]EnrichedRankedCandidate, len(results))
	for i, r := range results {
		output[i] = EnrichedRankedCandidate{
			Rank:            i + 1,
			Label:           ResultLabel(r.Result),
			RankedCandidate: r,
		}
	}
	return output
}
