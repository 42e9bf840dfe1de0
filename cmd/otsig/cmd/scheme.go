package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var outputPath string

var exportCmd = &cobra.Command{
	Use:   "export <file.circ>",
	Short: "Classify a circuit and write its color scheme",
	Long: `Classify every net and write the color scheme as <colorSchemeConfig>
XML. Without --output the scheme is printed.

Examples:
  otsig export board.circ
  otsig export -o board.cscfg board.circ`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file.circ> <scheme>",
	Short: "Apply a saved color scheme to a circuit",
	Long: `Classify a circuit, then apply a saved color scheme. A stored net is
applied to the live net with exactly the same pins; other entries are skipped.

Examples:
  otsig import board.circ board.cscfg`,
	Args: cobra.ExactArgs(2),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)

	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write the scheme to this file")
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	s.colorize(false)

	text := s.engine.Export()
	if outputPath == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write scheme: %w", err)
	}
	fmt.Printf("Scheme with %d nets saved to %s\n", len(s.engine.Nets()), outputPath)
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	s.colorize(false)

	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read scheme: %w", err)
	}
	applied, err := s.engine.Import(string(data))
	if err != nil {
		return fmt.Errorf("failed to import scheme (%d nets applied): %w", applied, err)
	}

	fmt.Printf("Applied %d of %d nets\n\n", applied, len(s.engine.Nets()))
	printNetTable(s.engine)
	return nil
}
