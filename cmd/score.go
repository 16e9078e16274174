package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/projectparaiba/paraiba/core"
	"github.com/projectparaiba/paraiba/internal/contract"
)

// scoreCmd scores a single candidate given on the command line.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the hidden gem score of a single candidate.",
	Long: `Score one candidate from its raw signals and show how each signal group contributes.

Unlike rank, invalid input is an error here: negative counts,
non-finite values or a missing signal flag exit with a non-zero
status instead of scoring 0.

Examples:
  # Score a well-known spot
  paraiba score --name "Pearl's Country Store" --rating 4.6 --reviews 3043 --mentions 8 --upvotes 25 --sentiment 0.72

  # Same candidate as JSON
  paraiba score --rating 4.6 --reviews 3043 --mentions 8 --upvotes 25 --sentiment 0.72 --output json`,
	Args: cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, cmd, args); err != nil {
			return err
		}
		// A zero signal must be given explicitly, never assumed.
		return contract.RequireScoreSignals(viper.IsSet)
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot score candidate", err)
		}
	},
}
