package signal

import (
	"image/color"
	"sort"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTraceSignals/pkg/circuit"
	"github.com/OpenTraceLab/OpenTraceSignals/pkg/scene"
)

// Handle is the stable identity of a net. A handle stays valid when its net
// is merged into another one; it then resolves to the surviving net.
type Handle uuid.UUID

// NilHandle never resolves to a net.
var NilHandle Handle

func newHandle() Handle {
	return Handle(uuid.New())
}

func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// Attributes are the presentation fields of a net.
type Attributes struct {
	Designation      string
	DesignationColor color.NRGBA
	DesignationInfo  string
	Type             string
	TypeColor        color.NRGBA
	TypeInfo         string
}

// unclassified returns empty attributes drawn in c.
func unclassified(c color.NRGBA) Attributes {
	return Attributes{DesignationColor: c, TypeColor: c}
}

// Net is a group of electrically connected pins and the segments drawn
// between them. Pins and segments are non-owning references.
type Net struct {
	Handle   Handle
	Key      string
	Segments []*scene.Segment
	Pins     []*circuit.Pin
	Attributes

	seq int // registration order
}

// hasPin reports whether a live pin with the given id is in the net.
func (n *Net) hasPin(id string) bool {
	for _, p := range n.Pins {
		if p.Alive() && p.ID == id {
			return true
		}
	}
	return false
}

// hasSegment reports whether seg is in the net.
func (n *Net) hasSegment(seg *scene.Segment) bool {
	for _, s := range n.Segments {
		if s == seg {
			return true
		}
	}
	return false
}

// addPin appends p unless it is dead or already present.
func (n *Net) addPin(p *circuit.Pin) {
	if !p.Alive() {
		return
	}
	for _, q := range n.Pins {
		if q == p {
			return
		}
	}
	n.Pins = append(n.Pins, p)
}

// addSegment appends seg unless it is dead, already present, or joins the
// same endpoints as a segment already in the net.
func (n *Net) addSegment(seg *scene.Segment) {
	if !seg.Alive() {
		return
	}
	for _, s := range n.Segments {
		if s == seg || (s.Alive() && s.SameGeometry(seg)) {
			return
		}
	}
	n.Segments = append(n.Segments, seg)
}

// prune drops destroyed pins and segments.
func (n *Net) prune() {
	pins := n.Pins[:0]
	for _, p := range n.Pins {
		if p.Alive() {
			pins = append(pins, p)
		}
	}
	n.Pins = pins

	segs := n.Segments[:0]
	for _, s := range n.Segments {
		if s.Alive() {
			segs = append(segs, s)
		}
	}
	n.Segments = segs
}

// PinIDs returns the ids of the live pins, sorted.
func (n *Net) PinIDs() []string {
	ids := make([]string, 0, len(n.Pins))
	for _, p := range n.Pins {
		if p.Alive() {
			ids = append(ids, p.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

// LiveSegments returns the segments still present in the scene.
func (n *Net) LiveSegments() []*scene.Segment {
	segs := make([]*scene.Segment, 0, len(n.Segments))
	for _, s := range n.Segments {
		if s.Alive() {
			segs = append(segs, s)
		}
	}
	return segs
}

// LineWidth returns the width of the first live segment, or 0 when the net
// has none.
func (n *Net) LineWidth() float64 {
	for _, s := range n.Segments {
		if s.Alive() {
			return s.Pen.Width
		}
	}
	return 0
}

func (n *Net) paint(c color.NRGBA) {
	for _, s := range n.Segments {
		s.SetColor(c)
	}
}

func (n *Net) setWidth(w float64) {
	for _, s := range n.Segments {
		s.SetWidth(w)
	}
}

// NetInfo is a read-only snapshot of a net.
type NetInfo struct {
	Handle    Handle
	Key       string
	PinIDs    []string
	Segments  int
	LineWidth float64
	Attributes
}

func (n *Net) info() NetInfo {
	return NetInfo{
		Handle:     n.Handle,
		Key:        n.Key,
		PinIDs:     n.PinIDs(),
		Segments:   len(n.LiveSegments()),
		LineWidth:  n.LineWidth(),
		Attributes: n.Attributes,
	}
}
