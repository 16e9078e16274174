package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/projectparaiba/paraiba/internal/contract"
	"github.com/projectparaiba/paraiba/schema"
)

// PrintWeightsDefinition displays the active weights and the formulas they feed.
// This is a static display that does not require any candidates.
func PrintWeightsDefinition(cfg *contract.Config) error {
	renderModel := buildWeightsRenderModel(cfg.Weights)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, renderModel)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeightsCSV(w, renderModel)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for weights")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printWeightsText(w, renderModel)
		}, "Wrote text")
	}
}

// printWeightsText displays the weights in human-readable text format.
func printWeightsText(w io.Writer, renderModel *schema.WeightsRenderModel) error {
	c := renderModel.Config
	lines := []string{
		"💎 " + renderModel.Title,
		"==========================",
		"",
		renderModel.Description,
		"   Formula: Score = " + renderModel.Formula,
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	for _, g := range renderModel.Groups {
		if _, err := fmt.Fprintf(w, "%s (%.2f): %s\n", g.Name, g.Weight, g.Purpose); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "   Formula: %s\n\n", g.Formula); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Ceilings: mentions=%g upvotes=%g reviews=%g\n", c.Ceilings.Mentions, c.Ceilings.Upvotes, c.Ceilings.Reviews); err != nil {
		return err
	}
	return nil
}

// writeWeightsCSV writes the signal groups in CSV format.
func writeWeightsCSV(w io.Writer, renderModel *schema.WeightsRenderModel) error {
	header := []string{"Key", "Name", "Purpose", "Weight", "Formula"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, g := range renderModel.Groups {
			record := []string{
				g.Key,
				g.Name,
				g.Purpose,
				fmt.Sprintf("%.2f", g.Weight),
				g.Formula,
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}
