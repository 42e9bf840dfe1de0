package signal

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceSignals/pkg/circuit"
	"github.com/OpenTraceLab/OpenTraceSignals/pkg/scene"
)

// bench wires a small circuit straight into an engine.
type bench struct {
	t    *testing.T
	circ *circuit.Circuit
	sc   *scene.Scene
	eng  *Engine
	x    float64
}

func newBench(t *testing.T) *bench {
	t.Helper()
	eng, err := NewEngine(DefaultOptions())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return &bench{t: t, circ: circuit.New(), sc: scene.New(), eng: eng}
}

// comp adds a component; every pin gets its own position.
func (b *bench) comp(id, itemType string, voltage float64, pinIDs ...string) *circuit.Component {
	b.t.Helper()
	c := &circuit.Component{ID: id, ItemType: itemType, Voltage: voltage}
	for _, pid := range pinIDs {
		b.x += 10
		c.Pins = append(c.Pins, &circuit.Pin{ID: pid, Position: circuit.Point{X: b.x, Y: b.x / 2}})
	}
	if err := b.circ.AddComponent(c); err != nil {
		b.t.Fatalf("AddComponent(%s): %v", id, err)
	}
	return c
}

// wire connects two pins and registers the drawn segments.
func (b *bench) wire(from, to string) []*scene.Segment {
	b.t.Helper()
	conn, err := b.circ.Connect(from+"->"+to, from, to, nil)
	if err != nil {
		b.t.Fatalf("Connect: %v", err)
	}
	segs := scene.BuildConnector(b.sc, conn, scene.DefaultPen())
	b.eng.RegisterConnection(conn.Start, conn.End, segs)
	return segs
}

// net returns the handle of the net holding pinID.
func (b *bench) net(pinID string) Handle {
	b.t.Helper()
	h, ok := b.eng.NetByPin(pinID)
	if !ok {
		b.t.Fatalf("no net holds pin %q", pinID)
	}
	return h
}

func (b *bench) info(pinID string) NetInfo {
	b.t.Helper()
	n, err := b.eng.Net(b.net(pinID))
	if err != nil {
		b.t.Fatalf("Net: %v", err)
	}
	return n
}
