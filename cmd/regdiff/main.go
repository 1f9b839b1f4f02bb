package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/bhaashik/ReducedToCanonicalConvDiff-sub000/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "regdiff",
	Short: "Register comparison for headlines and canonical sentences",
	Long: `regdiff compares the constituency parses of canonical sentences with
their headline counterparts using tree edit distance.

Four algorithms are available per sentence pair:
  • simple       - character-level string approximation
  • zhang_shasha - ordered-tree edit distance over post-order sequences
  • klein        - memoized recursive distance with children alignment
  • rted         - adaptive strategy keyed on tree size

Each pair yields one score record per algorithm; nonzero distances also
emit a difference event for the downstream register analysis.`,
	Version: version.Short(),
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	// Add main subcommands
	rootCmd.AddCommand(NewTEDCmd())
	rootCmd.AddCommand(NewPairCmd())
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewInitCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
