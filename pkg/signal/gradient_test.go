package signal

import (
	"sort"
	"testing"
)

func TestParseVoltage(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"+5V", 5, true},
		{"-3.3V", -3.3, true},
		{"12V", 12, true},
		{"9VBATT+", 9, true},
		{"1.5VBATT-", 1.5, true},
		{"GND", 0, false},
		{"+5", 0, false},
		{"5 V", 0, false},
		{"GPIO_B3", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseVoltage(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseVoltage(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestGradientRed(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      uint8
	}{
		{"minimum", 3.3, 3.3, 9, 155},
		{"middle", 5, 3.3, 9, 185},
		{"maximum", 9, 3.3, 9, 255},
		{"all equal", 5, 5, 5, 255},
		{"below range clamps", 1, 3.3, 9, 155},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GradientRed(tt.v, tt.lo, tt.hi, 155, 255); got != tt.want {
				t.Errorf("GradientRed(%v) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestGradientMonotonic(t *testing.T) {
	volts := []float64{-12, -5, 0, 1.8, 3.3, 5, 9, 12, 24}
	sort.Float64s(volts)
	prev := uint8(0)
	for _, v := range volts {
		red := GradientRed(v, volts[0], volts[len(volts)-1], 155, 255)
		if red < prev {
			t.Errorf("red for %v is %d, below %d", v, red, prev)
		}
		prev = red
	}
}

func TestColorizeGradient(t *testing.T) {
	b := newBench(t)
	for i, v := range []float64{3.3, 5, 9} {
		id := []string{"RailA", "RailB", "RailC"}[i]
		b.comp(id, "Rail", v, id+"-0-pin")
		b.comp("R"+id, "Resistor", 0, "R"+id+"-0-pin0")
		b.wire(id+"-0-pin", "R"+id+"-0-pin0")
	}
	// A second net on +5V shares the color of the first.
	b.comp("RailD", "Rail", 5, "RailD-0-pin")
	b.comp("RRailD", "Resistor", 0, "RRailD-0-pin0")
	b.wire("RailD-0-pin", "RRailD-0-pin0")
	b.comp("GND1", "Ground", 0, "GND1-0-gnd")
	b.comp("RG", "Resistor", 0, "RG-0-pin0")
	segs := b.wire("GND1-0-gnd", "RG-0-pin0")

	b.eng.Colorize()

	tests := []struct {
		pin         string
		designation string
		red         uint8
	}{
		{"RailA-0-pin", "+3.3V", 155},
		{"RailB-0-pin", "+5V", 185},
		{"RailC-0-pin", "+9V", 255},
		{"RailD-0-pin", "+5V", 185},
	}
	for _, tt := range tests {
		n := b.info(tt.pin)
		if n.Designation != tt.designation {
			t.Errorf("%s: designation %q, want %q", tt.pin, n.Designation, tt.designation)
		}
		if n.DesignationColor.R != tt.red || n.DesignationColor.G != 0 || n.DesignationColor.B != 0 {
			t.Errorf("%s: color %v, want red %d", tt.pin, n.DesignationColor, tt.red)
		}
		if n.TypeColor != Red {
			t.Errorf("%s: type color %v, want red", tt.pin, n.TypeColor)
		}
	}

	// GND does not parse as a voltage and keeps black.
	if n := b.info("GND1-0-gnd"); n.DesignationColor != Black {
		t.Errorf("GND color %v, want black", n.DesignationColor)
	}
	if segs[0].Pen.Color != Black {
		t.Errorf("GND segment color %v, want black", segs[0].Pen.Color)
	}
}

func TestColorizeGradientPaintsSegments(t *testing.T) {
	b := newBench(t)
	b.comp("RailA", "Rail", 3.3, "RailA-0-pin")
	b.comp("RailB", "Rail", 12, "RailB-0-pin")
	b.comp("R1", "Resistor", 0, "R1-0-pin0", "R1-1-pin1")
	low := b.wire("RailA-0-pin", "R1-0-pin0")
	high := b.wire("RailB-0-pin", "R1-1-pin1")

	b.eng.Colorize()

	if got := low[0].Pen.Color.R; got != 155 {
		t.Errorf("low segment red %d, want 155", got)
	}
	if got := high[0].Pen.Color.R; got != 255 {
		t.Errorf("high segment red %d, want 255", got)
	}

	// Type view paints the category color instead.
	b.eng.SetShowTypes(true)
	if low[0].Pen.Color != Red {
		t.Errorf("type view color %v, want red", low[0].Pen.Color)
	}
}
