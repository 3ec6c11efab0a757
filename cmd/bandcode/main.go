// Bandcode is a resistor color band conversion utility.
//
// It converts between resistance specifications (RKM notation or plain
// ohm values, plus tolerance and TCR) and 3 to 6 band color codes, in
// both directions.
//
// Usage:
//
//	bandcode [command] [flags]
//
// Running without arguments launches the interactive converter.
// See 'bandcode --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ohm-tools/bandcode/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bandcode",
	Short: "Resistor Color Band Converter",
	Long: `A utility for converting between resistance values and resistor color bands.

Accepts resistance in RKM notation (4k7, 2M2, 330R) or plain ohm values,
and supports 3, 4, 5, and 6 band codes with tolerance and TCR bands.

If no command is specified, the interactive converter will launch automatically.`,
	Version: version.Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run the interactive converter
		return runInteractive(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bandcode %s (commit: %s)\n", version.Version, version.Commit)
	},
}
