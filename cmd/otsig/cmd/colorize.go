package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	showTypes  bool
	schemePath string
)

var colorizeCmd = &cobra.Command{
	Use:   "colorize <file.circ>",
	Short: "Classify and color every net",
	Long: `Classify every net from the pins it touches and print the resulting
designation, signal type and line color. Power nets are shaded by voltage.

Examples:
  otsig colorize board.circ
  otsig colorize --types board.circ
  otsig colorize --scheme board.cscfg board.circ`,
	Args: cobra.ExactArgs(1),
	RunE: runColorize,
}

var legendCmd = &cobra.Command{
	Use:   "legend <file.circ>",
	Short: "Show the color legend of a circuit",
	Args:  cobra.ExactArgs(1),
	RunE:  runLegend,
}

func init() {
	rootCmd.AddCommand(colorizeCmd)
	rootCmd.AddCommand(legendCmd)

	colorizeCmd.Flags().BoolVarP(&showTypes, "types", "t", false,
		"color by signal type instead of designation")
	colorizeCmd.Flags().StringVarP(&schemePath, "scheme", "s", "",
		"also save the color scheme to this file")
	legendCmd.Flags().BoolVarP(&showTypes, "types", "t", false,
		"list signal types instead of designations")
}

func runColorize(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	s.colorize(showTypes)

	printNetTable(s.engine)
	if s.cfg.Legend {
		fmt.Println()
		printLegend(s.engine)
	}

	if schemePath != "" {
		if err := os.WriteFile(schemePath, []byte(s.engine.Export()), 0o644); err != nil {
			return fmt.Errorf("failed to write scheme: %w", err)
		}
		fmt.Printf("\nScheme saved to %s\n", schemePath)
	}
	return nil
}

func runLegend(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	s.colorize(showTypes)
	printLegend(s.engine)
	return nil
}
