package scene

import (
	"github.com/OpenTraceLab/OpenTraceSignals/pkg/circuit"
)

// Registrar receives each drawn connector together with its segments.
type Registrar interface {
	RegisterConnection(start, end *circuit.Pin, segments []*Segment)
}

// BuildConnector draws the segments of one connector: a line between every
// pair of consecutive distinct points, plus stubs that join the terminal pins
// to the routed path. A connector without routing points is drawn as a single
// line between its pins.
func BuildConnector(sc *Scene, conn *circuit.Connector, pen Pen) []*Segment {
	var segs []*Segment
	add := func(p1, p2 circuit.Point) {
		if p1 == p2 {
			return
		}
		for _, s := range segs {
			if s.P1 == p1 && s.P2 == p2 {
				return
			}
		}
		segs = append(segs, sc.AddLine(p1, p2, pen))
	}

	start, end := conn.Start.Position, conn.End.Position
	if len(conn.Points) == 0 {
		add(start, end)
		return segs
	}

	for i := 0; i < len(conn.Points)-1; i++ {
		add(conn.Points[i], conn.Points[i+1])
	}
	add(start, conn.Points[0])
	add(conn.Points[len(conn.Points)-1], end)
	return segs
}

// Populate draws every connector of the circuit whose pins are alive and owned
// by a component and hands each one to r. It returns the number of connectors
// registered.
func Populate(c *circuit.Circuit, sc *Scene, r Registrar) int {
	n := 0
	for _, conn := range c.Connectors() {
		if !conn.Start.Alive() || !conn.End.Alive() {
			continue
		}
		if conn.Start.Owner == nil || conn.End.Owner == nil {
			continue
		}
		segs := BuildConnector(sc, conn, DefaultPen())
		r.RegisterConnection(conn.Start, conn.End, segs)
		n++
	}
	return n
}
