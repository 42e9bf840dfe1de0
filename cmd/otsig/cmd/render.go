package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/OpenTraceLab/OpenTraceSignals/internal/render"
	"github.com/OpenTraceLab/OpenTraceSignals/pkg/signal"
)

var (
	renderSize   float64
	renderLegend bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file.circ>",
	Short: "Draw the colored wires of a circuit to an image",
	Long: `Classify a circuit and draw every wire segment with its net color and
width. The image format follows the output extension (png, svg, pdf).

Examples:
  otsig render -o board.png board.circ
  otsig render --types --legend -o board.svg board.circ`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "image file to write")
	renderCmd.Flags().BoolVarP(&showTypes, "types", "t", false,
		"color by signal type instead of designation")
	renderCmd.Flags().BoolVarP(&renderLegend, "legend", "l", false, "draw the color legend")
	renderCmd.Flags().Float64Var(&renderSize, "size", 6, "image width and height in inches")
}

func runRender(cmd *cobra.Command, args []string) error {
	if outputPath == "" {
		return fmt.Errorf("--output is required")
	}
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	s.colorize(showTypes)

	var legend []signal.LegendEntry
	if renderLegend || s.cfg.Legend {
		legend = s.engine.Legend()
	}
	size := vg.Length(renderSize) * vg.Inch
	opts := render.Options{Title: filepath.Base(args[0]), Width: size, Height: size}
	if err := render.Save(s.scene, legend, outputPath, opts); err != nil {
		return err
	}
	fmt.Printf("Rendered %d segments to %s\n", len(s.scene.Segments()), outputPath)
	return nil
}
