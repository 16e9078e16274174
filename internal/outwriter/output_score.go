package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/projectparaiba/paraiba/core/algo"
	"github.com/projectparaiba/paraiba/internal/contract"
	"github.com/projectparaiba/paraiba/internal/parquet"
	"github.com/projectparaiba/paraiba/schema"
)

// WriteScoreResult outputs the score of a single candidate.
func WriteScoreResult(rc schema.RankedCandidate, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)
	results := []schema.RankedCandidate{rc}

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, schema.EnrichRanked(results)[0])
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankedCSV(w, results, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		report := schema.NewRankReport(results, cfg.Weights)
		if err := parquet.WriteReportParquet(report, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
		logWrote("Wrote Parquet", cfg.OutputFile)
		return nil
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeScoreTable(w, rc, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
}

// writeScoreTable writes a two-column breakdown of one candidate's score.
func writeScoreTable(writer io.Writer, rc schema.RankedCandidate, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Signal", "Value", "Weight", "Points"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	r := rc.Result
	subScores := map[schema.BreakdownKey]*float64{
		schema.BreakdownSocial:    r.Social,
		schema.BreakdownSentiment: r.Sentiment,
		schema.BreakdownRating:    r.Rating,
	}

	var data [][]string
	for _, key := range schema.AllBreakdownKeys {
		data = append(data, []string{
			string(key),
			formatOptional(subScores[key], algo.SubScorePlaces),
			fmt.Sprintf("%.2f", cfg.Weights.GroupWeight(key)),
			fmtFloat(r.Breakdown[key]),
		})
	}
	label := schema.ResultLabel(r)
	if cfg.UseColors {
		label = contract.GetColorLabel(r)
	}
	data = append(data, []string{"score", fmtFloat(r.Score), "", label})

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if name := rc.Candidate.Name(); name != "" {
		if _, err := fmt.Fprintf(writer, "Candidate: %s\n", name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(writer, "Scored in %v\n", duration); err != nil {
		return err
	}
	return nil
}
