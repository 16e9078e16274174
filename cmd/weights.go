package cmd

import (
	"github.com/spf13/cobra"

	"github.com/projectparaiba/paraiba/core"
	"github.com/projectparaiba/paraiba/internal/contract"
)

// weightsCmd displays the active weight configuration.
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Display the scoring formula, weights and normalization ceilings",
	Long: `Show the formula and weights used to compute the hidden gem score.

Includes custom weights and ceilings if configured via .paraiba.yaml.
The configuration is validated first, so this also checks that both
weight groups sum to 1.0.

Examples:
  # Show default weights
  paraiba weights

  # Validate a custom config file
  paraiba weights --config .paraiba.yaml`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWeights(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot display weights", err)
		}
	},
}
