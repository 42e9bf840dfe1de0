package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "otsig",
	Short: "OpenTraceSignals - net classification and coloring for circuit views",
	Long: `OpenTraceSignals (otsig) groups the wires of a circuit into nets, infers
what each net carries (power rails, ground, control and data lines, GPIO)
and colors them accordingly.

Examples:
  otsig nets board.circ                      # List the nets of a circuit
  otsig colorize --types board.circ          # Classify and show signal types
  otsig legend board.circ                    # Show the color legend
  otsig export -o board.cscfg board.circ     # Save the color scheme
  otsig import board.circ board.cscfg        # Apply a saved color scheme`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "otsig.yaml",
		"settings file (YAML); defaults apply when it does not exist")
}
