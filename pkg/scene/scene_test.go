package scene

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceSignals/pkg/circuit"
)

func pt(x, y float64) circuit.Point { return circuit.Point{X: x, Y: y} }

func TestAddAndRemove(t *testing.T) {
	sc := New()
	a := sc.AddLine(pt(0, 0), pt(10, 0), DefaultPen())
	b := sc.AddLine(pt(10, 0), pt(10, 10), DefaultPen())
	if a.ID == b.ID {
		t.Fatalf("segments share id %d", a.ID)
	}

	sc.Remove(a)
	if a.Alive() {
		t.Error("removed segment still alive")
	}
	if sc.Segment(a.ID) != nil || sc.Segment(b.ID) != b {
		t.Error("lookup after remove mismatch")
	}
	if len(sc.Segments()) != 1 {
		t.Errorf("expected 1 segment, got %d", len(sc.Segments()))
	}

	// Writes to a destroyed segment are dropped.
	a.SetColor(DarkGreen)
	a.SetWidth(9)
	if a.Pen.Width != DefaultWidth {
		t.Errorf("destroyed segment width changed to %v", a.Pen.Width)
	}
	b.SetWidth(6)
	if b.Pen.Width != 6 {
		t.Errorf("width = %v, want 6", b.Pen.Width)
	}
}

func TestSameGeometry(t *testing.T) {
	a := &Segment{P1: pt(0, 0), P2: pt(5, 5)}
	if !a.SameGeometry(&Segment{P1: pt(5, 5), P2: pt(0, 0)}) {
		t.Error("reversed segment should match")
	}
	if a.SameGeometry(&Segment{P1: pt(0, 0), P2: pt(5, 6)}) {
		t.Error("different segment should not match")
	}
}

func connector(start, end circuit.Point, points ...circuit.Point) *circuit.Connector {
	return &circuit.Connector{
		Start:  &circuit.Pin{ID: "a", Position: start},
		End:    &circuit.Pin{ID: "b", Position: end},
		Points: points,
	}
}

func TestBuildConnector(t *testing.T) {
	tests := []struct {
		name string
		conn *circuit.Connector
		want [][2]circuit.Point
	}{
		{
			name: "straight",
			conn: connector(pt(0, 0), pt(10, 0)),
			want: [][2]circuit.Point{{pt(0, 0), pt(10, 0)}},
		},
		{
			name: "routed with stubs",
			conn: connector(pt(0, 0), pt(20, 10), pt(0, 5), pt(20, 5)),
			want: [][2]circuit.Point{
				{pt(0, 5), pt(20, 5)},
				{pt(0, 0), pt(0, 5)},
				{pt(20, 5), pt(20, 10)},
			},
		},
		{
			name: "path touching pins",
			conn: connector(pt(0, 0), pt(20, 0), pt(0, 0), pt(20, 0)),
			want: [][2]circuit.Point{{pt(0, 0), pt(20, 0)}},
		},
		{
			name: "repeated points",
			conn: connector(pt(0, 0), pt(10, 10), pt(0, 10), pt(0, 10), pt(10, 10)),
			want: [][2]circuit.Point{
				{pt(0, 10), pt(10, 10)},
				{pt(0, 0), pt(0, 10)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := New()
			segs := BuildConnector(sc, tt.conn, DefaultPen())
			if len(segs) != len(tt.want) {
				t.Fatalf("got %d segments, want %d", len(segs), len(tt.want))
			}
			for i, s := range segs {
				if s.P1 != tt.want[i][0] || s.P2 != tt.want[i][1] {
					t.Errorf("segment %d = %v->%v, want %v->%v", i, s.P1, s.P2, tt.want[i][0], tt.want[i][1])
				}
				if s.Pen != DefaultPen() {
					t.Errorf("segment %d pen = %+v", i, s.Pen)
				}
			}
			if len(sc.Segments()) != len(segs) {
				t.Errorf("scene holds %d segments, want %d", len(sc.Segments()), len(segs))
			}
		})
	}
}

type recorder struct {
	calls [][2]string
}

func (r *recorder) RegisterConnection(start, end *circuit.Pin, segments []*Segment) {
	r.calls = append(r.calls, [2]string{start.ID, end.ID})
}

func TestPopulate(t *testing.T) {
	c := circuit.New()
	for _, id := range []string{"R1", "R2", "R3"} {
		err := c.AddComponent(&circuit.Component{
			ID:       id,
			ItemType: "Resistor",
			Pins:     []*circuit.Pin{{ID: id + "-0-pin0"}, {ID: id + "-1-pin1", Position: pt(10, 0)}},
		})
		if err != nil {
			t.Fatal(err)
		}
	}
	mustConnect := func(id, from, to string) {
		if _, err := c.Connect(id, from, to, nil); err != nil {
			t.Fatal(err)
		}
	}
	mustConnect("W1", "R1-1-pin1", "R2-0-pin0")
	mustConnect("W2", "R2-1-pin1", "R3-0-pin0")
	mustConnect("W3", "R3-1-pin1", "R1-0-pin0")
	c.RemoveComponent("R3")

	sc := New()
	r := &recorder{}
	if n := Populate(c, sc, r); n != 1 {
		t.Errorf("Populate registered %d connectors, want 1", n)
	}
	if len(r.calls) != 1 || r.calls[0] != [2]string{"R1-1-pin1", "R2-0-pin0"} {
		t.Errorf("unexpected registrations %v", r.calls)
	}
}
