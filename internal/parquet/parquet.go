// Package parquet provides data structures and functions for exporting ranked
// candidates to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/projectparaiba/paraiba/schema"
)

// RankedRow is one ranked candidate of a ranking run.
type RankedRow struct {
	// RunID identifies the ranking run the row belongs to
	RunID string `parquet:"run_id,snappy"`

	// GeneratedAt is when the run was ranked (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// Rank is the 1-based position in the ranking
	Rank int32 `parquet:"rank,snappy"`

	// InputIndex is the candidate's position in the input collection
	InputIndex int32 `parquet:"input_index,snappy"`

	// Name is the display name of the candidate (nullable)
	Name *string `parquet:"name,optional,snappy"`

	// Raw inputs, nullable because a failed candidate may be missing any of them
	GoogleRating   *float64 `parquet:"google_rating,optional,snappy"`
	GoogleReviews  *int64   `parquet:"google_reviews,optional,snappy"`
	RedditMentions *int64   `parquet:"reddit_mentions,optional,snappy"`
	AverageUpvotes *float64 `parquet:"average_upvotes,optional,snappy"`
	SentimentScore *float64 `parquet:"sentiment_score,optional,snappy"`

	// Score is the composite score (0 for failed candidates)
	Score float64 `parquet:"score,snappy"`

	// Sub-scores, null for failed candidates
	Social    *float64 `parquet:"social,optional,snappy"`
	Sentiment *float64 `parquet:"sentiment,optional,snappy"`
	Rating    *float64 `parquet:"rating,optional,snappy"`

	// Label is the score tier
	Label string `parquet:"label,snappy"`

	// Error is the failure reason (nullable)
	Error *string `parquet:"error,optional,snappy"`

	// Attributes contains the JSON-encoded remaining candidate attributes (nullable)
	Attributes *string `parquet:"attributes,optional,snappy"`
}

// RowsFromReport flattens a ranking report into Parquet rows, in rank order.
func RowsFromReport(report schema.RankReport) ([]RankedRow, error) {
	rows := make([]RankedRow, 0, len(report.Results))
	runID := report.RunID.String()

	for i, r := range report.Results {
		c := r.Candidate
		row := RankedRow{
			RunID:          runID,
			GeneratedAt:    report.GeneratedAt,
			Rank:           int32(i + 1),
			InputIndex:     int32(r.Index),
			GoogleRating:   c.GoogleRating,
			GoogleReviews:  toInt64(c.GoogleReviews),
			RedditMentions: toInt64(c.RedditMentions),
			AverageUpvotes: c.AverageUpvotes,
			SentimentScore: c.SentimentScore,
			Score:          r.Result.Score,
			Social:         r.Result.Social,
			Sentiment:      r.Result.Sentiment,
			Rating:         r.Result.Rating,
			Label:          schema.ResultLabel(r.Result),
		}
		if name := c.Name(); name != "" {
			row.Name = &name
		}
		if !r.Result.OK() {
			msg := r.Result.Error
			row.Error = &msg
		}

		extra := make(map[string]any, len(c.Extra))
		for k, v := range c.Extra {
			if k != schema.FieldName {
				extra[k] = v
			}
		}
		if len(extra) > 0 {
			data, err := json.Marshal(extra)
			if err != nil {
				return nil, fmt.Errorf("failed to encode attributes of candidate %d: %w", r.Index, err)
			}
			attrs := string(data)
			row.Attributes = &attrs
		}

		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRankedRowsParquet writes a slice of RankedRow structs to a Parquet file.
func WriteRankedRowsParquet(data []RankedRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the RankedRow struct tags
	writer := parquet.NewGenericWriter[RankedRow](file)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}

	return nil
}

// WriteReportParquet writes a whole ranking report to a Parquet file.
func WriteReportParquet(report schema.RankReport, outputPath string) error {
	rows, err := RowsFromReport(report)
	if err != nil {
		return err
	}
	return WriteRankedRowsParquet(rows, outputPath)
}

func toInt64(v *int) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}
