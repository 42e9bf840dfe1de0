package signal

import (
	"fmt"
	"image/color"
)

// Options controls engine defaults.
type Options struct {
	// DefaultLineWidth is applied to the segments of a net when its
	// classification is reset or removed (default: 3)
	DefaultLineWidth int

	// UnclassifiedColor is the color of nets with no designation or type
	// (default: dark green)
	UnclassifiedColor color.NRGBA

	// ShowTypes selects which color is painted on segments: the type color
	// when true, the designation color otherwise (default: false)
	ShowTypes bool

	// GradientMin and GradientMax bound the red channel of power-net colors
	// (defaults: 155 and 255)
	GradientMin int
	GradientMax int
}

// DefaultOptions returns the defaults of the host editor.
func DefaultOptions() *Options {
	return &Options{
		DefaultLineWidth:  3,
		UnclassifiedColor: DarkGreen,
		ShowTypes:         false,
		GradientMin:       155,
		GradientMax:       255,
	}
}

// Validate fills zero values with defaults and checks the gradient bounds.
func (o *Options) Validate() error {
	if o.DefaultLineWidth < 1 {
		o.DefaultLineWidth = 3
	}
	if !ValidColor(o.UnclassifiedColor) {
		o.UnclassifiedColor = DarkGreen
	}
	if o.GradientMin == 0 && o.GradientMax == 0 {
		o.GradientMin, o.GradientMax = 155, 255
	}
	if o.GradientMin < 0 || o.GradientMax > 255 || o.GradientMin > o.GradientMax {
		return fmt.Errorf("signal: invalid gradient range %d..%d", o.GradientMin, o.GradientMax)
	}
	return nil
}
