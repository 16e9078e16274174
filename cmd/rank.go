package cmd

import (
	"github.com/spf13/cobra"

	"github.com/projectparaiba/paraiba/core"
	"github.com/projectparaiba/paraiba/internal/contract"
)

// rankCmd scores and ranks a batch of candidates.
var rankCmd = &cobra.Command{
	Use:   "rank [candidates-file]",
	Short: "Score a batch of candidates and rank them from best hidden gem down.",
	Long: `Score every candidate in a JSON or YAML document and rank them by hidden gem score.

The document is either a list of candidate objects or an object with a
"candidates" list. Each candidate needs googleRating, googleReviews,
redditMentions, averageUpvotes and sentimentScore; any other attributes
are carried through to the output untouched.

Candidates that cannot be scored stay in the output with a score of 0
and the reason they failed. Ties keep their input order.

Reads from stdin when no file is given or the file is "-".

Examples:
  # Rank a candidate file
  paraiba rank candidates.json

  # Show the top 10 with a per-signal breakdown
  paraiba rank candidates.yaml --limit 10 --explain

  # Export the full ranking to Parquet
  paraiba rank candidates.json --limit 1000 --output parquet --output-file gems.parquet

  # Pipe candidates in and write batch metrics
  cat candidates.json | paraiba rank --metrics-file paraiba.prom`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRank(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot rank candidates", err)
		}
	},
}
