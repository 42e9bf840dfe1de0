package signal

import (
	"image/color"
	"sort"
)

// LegendEntry is one row of the color legend.
type LegendEntry struct {
	Color color.NRGBA
	Label string
}

// Legend returns the distinct (color, label) pairs of the current display
// mode: types when showing types, designations otherwise. Entries are sorted
// by hue (achromatic first), saturation, lightness and label.
func (e *Engine) Legend() []LegendEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return buildLegend(e.reg.Nets(), e.opts.ShowTypes)
}

func buildLegend(nets []*Net, showTypes bool) []LegendEntry {
	seen := make(map[LegendEntry]bool)
	var entries []LegendEntry
	for _, n := range nets {
		entry := LegendEntry{Label: n.Designation, Color: n.DesignationColor}
		if showTypes {
			entry = LegendEntry{Label: n.Type, Color: n.TypeColor}
		}
		if entry.Label == "" || !ValidColor(entry.Color) || seen[entry] {
			continue
		}
		seen[entry] = true
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		hi, si, li := HSL(entries[i].Color)
		hj, sj, lj := HSL(entries[j].Color)
		hi, hj = max(hi, 0), max(hj, 0)
		switch {
		case hi != hj:
			return hi < hj
		case si != sj:
			return si < sj
		case li != lj:
			return li < lj
		}
		return entries[i].Label < entries[j].Label
	})
	return entries
}
