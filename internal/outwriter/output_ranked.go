package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/projectparaiba/paraiba/core/algo"
	"github.com/projectparaiba/paraiba/internal/contract"
	"github.com/projectparaiba/paraiba/internal/parquet"
	"github.com/projectparaiba/paraiba/schema"
)

// rankedJSONOutput is the JSON document for a ranking run.
type rankedJSONOutput struct {
	RunID       string                           `json:"runId"`
	GeneratedAt time.Time                        `json:"generatedAt"`
	Weights     schema.WeightConfig              `json:"weights"`
	Scored      int                              `json:"scored"`
	Failed      int                              `json:"failed"`
	Results     []schema.EnrichedRankedCandidate `json:"results"`
}

// WriteRankReport outputs a ranking run, dispatching based on the output format configured.
func WriteRankReport(report schema.RankReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankedJSON(w, report)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankedCSV(w, report.Results, fmtFloat, intFmt)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteReportParquet(report, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		logWrote("Wrote Parquet", cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankedTable(w, report, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// writeRankedTable generates and writes the human-readable table.
func writeRankedTable(writer io.Writer, report schema.RankReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Name", "Score", "Label", "Social", "Sentiment", "Rating"}
	if cfg.Explain {
		headers = append(headers, "Explain")
	}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	nameWidth := GetMaxTableNameWidth(cfg)
	var data [][]string
	for i, r := range report.Results {
		label := schema.ResultLabel(r.Result)
		if cfg.UseColors {
			label = contract.GetColorLabel(r.Result)
		}
		row := []string{
			strconv.Itoa(i + 1), // Rank
			contract.TruncateName(contract.DisplayName(r.Candidate, r.Index), nameWidth), // Name
			fmtFloat(r.Result.Score), // Score
			label,                    // Label
			formatOptional(r.Result.Social, algo.SubScorePlaces),    // Social
			formatOptional(r.Result.Sentiment, algo.SubScorePlaces), // Sentiment
			formatOptional(r.Result.Rating, algo.SubScorePlaces),    // Rating
		}
		if cfg.Explain {
			row = append(row, formatBreakdown(r.Result))
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	total := report.Scored + report.Failed
	if _, err := fmt.Fprintf(writer, "Showing top %d of %d candidates (scored: %d, failed: %d)\n", len(report.Results), total, report.Scored, report.Failed); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Ranking completed in %v with %d workers. Run ID: %s\n", duration, cfg.Workers, report.RunID); err != nil {
		return err
	}
	return nil
}

// writeRankedCSV writes the ranked candidates in CSV format.
func writeRankedCSV(w io.Writer, results []schema.RankedCandidate, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"name",
		"score",
		"label",
		"social",
		"sentiment",
		"rating",
		schema.FieldGoogleRating,
		schema.FieldGoogleReviews,
		schema.FieldRedditMentions,
		schema.FieldAverageUpvotes,
		schema.FieldSentimentScore,
		"input_index",
		"error",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, r := range results {
			c := r.Candidate
			rec := []string{
				strconv.Itoa(i + 1),                                     // Rank
				c.Name(),                                                // Name
				fmtFloat(r.Result.Score),                                // Score
				schema.ResultLabel(r.Result),                            // Label
				formatOptional(r.Result.Social, algo.SubScorePlaces),    // Social
				formatOptional(r.Result.Sentiment, algo.SubScorePlaces), // Sentiment
				formatOptional(r.Result.Rating, algo.SubScorePlaces),    // Rating
				formatRawFloat(c.GoogleRating),                          // Google rating
				formatRawInt(c.GoogleReviews, intFmt),                   // Google reviews
				formatRawInt(c.RedditMentions, intFmt),                  // Reddit mentions
				formatRawFloat(c.AverageUpvotes),                        // Average upvotes
				formatRawFloat(c.SentimentScore),                        // Sentiment score
				strconv.Itoa(r.Index),                                   // Input position
				r.Result.Error,                                          // Failure reason
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeRankedJSON writes the ranking run in JSON format with rank and label added.
func writeRankedJSON(w io.Writer, report schema.RankReport) error {
	output := rankedJSONOutput{
		RunID:       report.RunID.String(),
		GeneratedAt: report.GeneratedAt,
		Weights:     report.Weights,
		Scored:      report.Scored,
		Failed:      report.Failed,
		Results:     schema.EnrichRanked(report.Results),
	}
	return writeJSON(w, output)
}

func formatRawFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatRawInt(v *int, intFmt string) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf(intFmt, *v)
}
