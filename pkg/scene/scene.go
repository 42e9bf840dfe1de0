// Package scene holds the rendered line segments of a circuit view. Segments
// are owned by the scene; the signal engine keeps non-owning references and
// must check Alive before touching one.
package scene

import (
	"image/color"
	"sync/atomic"

	"github.com/OpenTraceLab/OpenTraceSignals/pkg/circuit"
)

// DefaultWidth is the pen width of freshly drawn wires.
const DefaultWidth = 3

// DarkGreen is the pen color of unclassified wires.
var DarkGreen = color.NRGBA{R: 0, G: 128, B: 0, A: 255}

// Pen describes how a segment is stroked.
type Pen struct {
	Color color.NRGBA
	Width float64
}

// DefaultPen returns the pen used for new wires.
func DefaultPen() Pen {
	return Pen{Color: DarkGreen, Width: DefaultWidth}
}

// Segment is one straight rendered line.
type Segment struct {
	ID  int
	P1  circuit.Point
	P2  circuit.Point
	Pen Pen

	destroyed atomic.Bool
}

// Alive reports whether the segment is still part of the scene.
func (s *Segment) Alive() bool {
	return s != nil && !s.destroyed.Load()
}

// SetColor changes the stroke color. Destroyed segments are left alone.
func (s *Segment) SetColor(c color.NRGBA) {
	if s.Alive() {
		s.Pen.Color = c
	}
}

// SetWidth changes the stroke width. Destroyed segments are left alone.
func (s *Segment) SetWidth(w float64) {
	if s.Alive() {
		s.Pen.Width = w
	}
}

// SameGeometry reports whether two segments join the same pair of endpoints,
// in either direction.
func (s *Segment) SameGeometry(o *Segment) bool {
	return (s.P1 == o.P1 && s.P2 == o.P2) || (s.P1 == o.P2 && s.P2 == o.P1)
}

// Scene owns every rendered segment.
type Scene struct {
	segments []*Segment
	nextID   int
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{nextID: 1}
}

// AddLine creates a segment from p1 to p2.
func (sc *Scene) AddLine(p1, p2 circuit.Point, pen Pen) *Segment {
	seg := &Segment{ID: sc.nextID, P1: p1, P2: p2, Pen: pen}
	sc.nextID++
	sc.segments = append(sc.segments, seg)
	return seg
}

// Remove destroys a segment and drops it from the scene.
func (sc *Scene) Remove(seg *Segment) {
	seg.destroyed.Store(true)
	for i, s := range sc.segments {
		if s == seg {
			sc.segments = append(sc.segments[:i], sc.segments[i+1:]...)
			return
		}
	}
}

// Segments returns the live segments in creation order.
func (sc *Scene) Segments() []*Segment {
	return sc.segments
}

// Segment returns the segment with the given id, or nil.
func (sc *Scene) Segment(id int) *Segment {
	for _, s := range sc.segments {
		if s.ID == id {
			return s
		}
	}
	return nil
}
