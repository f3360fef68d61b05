// Package cli wires the eve-scout command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for the CLI.
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "eve-scout",
		Short:   "Utilities for greetings and EVE market analysis",
		Version: version,
		Long: `eve-scout queries EVE Online's public ESI market API, samples candidate
items by average price, and ranks them by post-fee flip profitability.

Examples:
  eve-scout greet --name Kira --lang es
  eve-scout scan --region-id 10000002 --top 10
  eve-scout scan --json --output report.json --min-net-profit 50000`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newGreetCommand())
	rootCmd.AddCommand(newScanCommand(version))

	return rootCmd
}

// Execute runs the root command.
func Execute(version string) {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
