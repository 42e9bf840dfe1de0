// Package render draws the segments of a colored scene to an image file.
package render

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/OpenTraceLab/OpenTraceSignals/pkg/scene"
	"github.com/OpenTraceLab/OpenTraceSignals/pkg/signal"
)

// ErrEmptyScene is returned when a scene has no live segment to draw.
var ErrEmptyScene = errors.New("render: scene has no segments")

// Options controls the output image.
type Options struct {
	Title  string
	Width  vg.Length // default: 6 inches
	Height vg.Length // default: 6 inches
}

// Plot builds a plot with one line per live segment, stroked with the
// segment's pen. Scene Y grows downwards, so it is flipped. Each legend entry
// becomes a labeled swatch.
func Plot(sc *scene.Scene, legend []signal.LegendEntry, title string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	p.Legend.Top = true

	drawn := 0
	for _, seg := range sc.Segments() {
		if !seg.Alive() {
			continue
		}
		line, err := plotter.NewLine(plotter.XYs{
			{X: seg.P1.X, Y: -seg.P1.Y},
			{X: seg.P2.X, Y: -seg.P2.Y},
		})
		if err != nil {
			return nil, fmt.Errorf("render: segment %d: %w", seg.ID, err)
		}
		line.LineStyle = draw.LineStyle{
			Color: seg.Pen.Color,
			Width: vg.Points(seg.Pen.Width),
		}
		p.Add(line)
		drawn++
	}
	if drawn == 0 {
		return nil, ErrEmptyScene
	}

	for _, e := range legend {
		swatch := &plotter.Line{LineStyle: draw.LineStyle{Color: e.Color, Width: vg.Points(4)}}
		p.Legend.Add(e.Label, swatch)
	}
	return p, nil
}

// Save renders the scene to path. The format follows the file extension
// (png, svg, pdf, ...).
func Save(sc *scene.Scene, legend []signal.LegendEntry, path string, opts Options) error {
	p, err := Plot(sc, legend, opts.Title)
	if err != nil {
		return err
	}
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = 6 * vg.Inch
	}
	if h <= 0 {
		h = 6 * vg.Inch
	}
	if err := p.Save(w, h, path); err != nil {
		return fmt.Errorf("render: failed to save %s: %w", path, err)
	}
	return nil
}
