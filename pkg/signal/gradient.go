package signal

import (
	"math"
	"regexp"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

var voltageRe = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)(V|VBATT[+-])$`)

// ParseVoltage extracts the voltage from a power designation such as "+5V",
// "-3.3V" or "9VBATT+". Designations like "GND" do not parse.
func ParseVoltage(designation string) (float64, bool) {
	m := voltageRe.FindStringSubmatch(designation)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// GradientRed maps v within [minV, maxV] to a red channel in [lo, hi]. When
// all voltages are equal every net gets hi.
func GradientRed(v, minV, maxV float64, lo, hi int) uint8 {
	t := 1.0
	if maxV != minV {
		t = (v - minV) / (maxV - minV)
	}
	red := math.Round(float64(lo) + t*float64(hi-lo))
	red = math.Max(float64(lo), math.Min(float64(hi), red))
	return uint8(red)
}

// applyGradient recolors the designation of every power net by voltage. Nets
// sharing a designation share a color. It returns the number of distinct
// voltages found.
func applyGradient(nets []*Net, lo, hi int) int {
	var (
		order   []string
		volts   = make(map[string]float64)
		members = make(map[string][]*Net)
	)

	for _, n := range nets {
		if n.Type != TypePower {
			continue
		}
		v, ok := ParseVoltage(n.Designation)
		if !ok {
			continue
		}
		if _, seen := volts[n.Designation]; !seen {
			volts[n.Designation] = v
			order = append(order, n.Designation)
		}
		members[n.Designation] = append(members[n.Designation], n)
	}

	if len(order) == 0 {
		return 0
	}

	values := make([]float64, 0, len(order))
	for _, d := range order {
		values = append(values, volts[d])
	}
	minV, maxV := floats.Min(values), floats.Max(values)

	for _, d := range order {
		c := Black
		c.R = GradientRed(volts[d], minV, maxV, lo, hi)
		for _, n := range members[d] {
			n.DesignationColor = c
			n.paint(c)
		}
	}
	return len(order)
}
