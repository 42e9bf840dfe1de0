package signal

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"sort"
	"sync"

	"github.com/OpenTraceLab/OpenTraceSignals/pkg/circuit"
	"github.com/OpenTraceLab/OpenTraceSignals/pkg/scene"
)

// Engine identifies, classifies and colors the nets of one circuit view. All
// methods are safe for concurrent use; a single mutex serializes them.
type Engine struct {
	mu     sync.Mutex
	reg    *Registry
	opts   Options
	logger *log.Logger
	refdes map[string]int // next index per designator group
}

// NewEngine creates an engine. A nil opts uses DefaultOptions.
func NewEngine(opts *Options) (*Engine, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if err := o.Validate(); err != nil {
		return nil, err
	}
	reg := NewRegistry()
	reg.blank = o.UnclassifiedColor
	return &Engine{
		reg:    reg,
		opts:   o,
		logger: log.New(io.Discard, "", 0),
		refdes: make(map[string]int),
	}, nil
}

// WithLogger sets the debug logger and returns the engine.
func (e *Engine) WithLogger(l *log.Logger) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	e.logger = l
	e.reg.SetLogger(l)
	return e
}

// Options returns a copy of the engine options.
func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts
}

// RegisterConnection adds a drawn connector to the net map.
func (e *Engine) RegisterConnection(start, end *circuit.Pin, segments []*scene.Segment) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reg.RegisterConnection(start, end, segments)
}

// Deduplicate collapses nets that share a junction group.
func (e *Engine) Deduplicate() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reg.Deduplicate()
}

// Prune drops references to destroyed pins and segments.
func (e *Engine) Prune() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reg.Prune()
}

// Reset forgets every net and designator counter.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reg.Reset()
	e.refdes = make(map[string]int)
}

// Colorize classifies every net from scratch, applies the power gradient and
// repaints all segments for the current display mode.
func (e *Engine) Colorize() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reg.Prune()
	nets := e.reg.Nets()
	for _, n := range nets {
		n.Attributes = Resolve(ClassifyNet(n), e.opts.UnclassifiedColor)
		e.logger.Printf("signal: %s -> %q (%s)", n.Key, n.Designation, n.Type)
	}

	if v := applyGradient(nets, e.opts.GradientMin, e.opts.GradientMax); v > 0 {
		e.logger.Printf("signal: gradient over %d voltages", v)
	}
	e.updateNetColors()
}

// Nets returns a snapshot of every net in registration order.
func (e *Engine) Nets() []NetInfo {
	e.mu.Lock()
	defer e.mu.Unlock()
	nets := e.reg.Nets()
	infos := make([]NetInfo, 0, len(nets))
	for _, n := range nets {
		infos = append(infos, n.info())
	}
	return infos
}

// Net returns a snapshot of the net behind h.
func (e *Engine) Net(h Handle) (NetInfo, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, err := e.net(h)
	if err != nil {
		return NetInfo{}, err
	}
	return n.info(), nil
}

// NetBySegment returns the handle of the net drawn with seg.
func (e *Engine) NetBySegment(seg *scene.Segment) (Handle, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, ok := e.reg.BySegment(seg)
	if !ok {
		return NilHandle, false
	}
	return n.Handle, true
}

// NetByPin returns the handle of the net holding the pin with the given id.
func (e *Engine) NetByPin(pinID string) (Handle, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, ok := e.reg.ByPin(pinID)
	if !ok {
		return NilHandle, false
	}
	return n.Handle, true
}

func (e *Engine) net(h Handle) (*Net, error) {
	n, ok := e.reg.ByHandle(h)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNet, h)
	}
	return n, nil
}

// lookup returns the net behind h or nil.
func (e *Engine) lookup(h Handle) *Net {
	n, _ := e.reg.ByHandle(h)
	return n
}

// Designation returns the designation of the net behind h.
func (e *Engine) Designation(h Handle) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n := e.lookup(h); n != nil {
		return n.Designation
	}
	return ""
}

// Type returns the category of the net behind h.
func (e *Engine) Type(h Handle) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n := e.lookup(h); n != nil {
		return n.Type
	}
	return ""
}

// DesignationColor returns the designation color, or the invalid zero color.
func (e *Engine) DesignationColor(h Handle) color.NRGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n := e.lookup(h); n != nil {
		return n.DesignationColor
	}
	return color.NRGBA{}
}

// TypeColor returns the type color, or the invalid zero color.
func (e *Engine) TypeColor(h Handle) color.NRGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n := e.lookup(h); n != nil {
		return n.TypeColor
	}
	return color.NRGBA{}
}

// LineColor returns the color the net is drawn with in the given display
// mode. Unknown handles yield NotFound.
func (e *Engine) LineColor(h Handle, showTypes bool) color.NRGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	n := e.lookup(h)
	if n == nil {
		return NotFound
	}
	return modeColor(n, showTypes)
}

func modeColor(n *Net, showTypes bool) color.NRGBA {
	if showTypes {
		return n.TypeColor
	}
	return n.DesignationColor
}

// DesignationInfo returns the designation text of the net behind h.
func (e *Engine) DesignationInfo(h Handle) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n := e.lookup(h); n != nil {
		return n.DesignationInfo
	}
	return ""
}

// TypeInfo returns the category text of the net behind h.
func (e *Engine) TypeInfo(h Handle) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n := e.lookup(h); n != nil {
		return n.TypeInfo
	}
	return ""
}

// DesignationInfoBySegment returns the designation text of the net drawn
// with seg.
func (e *Engine) DesignationInfoBySegment(seg *scene.Segment) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n, ok := e.reg.BySegment(seg); ok {
		return n.DesignationInfo
	}
	return ""
}

// TypeInfoBySegment returns the category text of the net drawn with seg.
func (e *Engine) TypeInfoBySegment(seg *scene.Segment) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n, ok := e.reg.BySegment(seg); ok {
		return n.TypeInfo
	}
	return ""
}

// Designations returns the distinct non-empty designations in net order.
func (e *Engine) Designations() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return distinct(e.reg.Nets(), func(n *Net) string { return n.Designation })
}

// Categories returns the distinct non-empty types in net order.
func (e *Engine) Categories() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return distinct(e.reg.Nets(), func(n *Net) string { return n.Type })
}

func distinct(nets []*Net, field func(*Net) string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, n := range nets {
		v := field(n)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// ColorsByDesignation returns the distinct valid colors used by nets with the
// given designation, ordered by hex value.
func (e *Engine) ColorsByDesignation(designation string) []color.NRGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	return colorsWhere(e.reg.Nets(), func(n *Net) (bool, color.NRGBA) {
		return n.Designation == designation, n.DesignationColor
	})
}

// ColorsByType returns the distinct valid colors used by nets of type t.
func (e *Engine) ColorsByType(t string) []color.NRGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	return colorsWhere(e.reg.Nets(), func(n *Net) (bool, color.NRGBA) {
		return n.Type == t, n.TypeColor
	})
}

func colorsWhere(nets []*Net, pick func(*Net) (bool, color.NRGBA)) []color.NRGBA {
	set := make(map[color.NRGBA]bool)
	for _, n := range nets {
		if ok, c := pick(n); ok && ValidColor(c) {
			set[c] = true
		}
	}
	out := make([]color.NRGBA, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return HexColor(out[i]) < HexColor(out[j]) })
	return out
}

// ThicknessesByDesignation returns the distinct widths of nets with the given
// designation, taken from each net's first live segment.
func (e *Engine) ThicknessesByDesignation(designation string) []int {
	e.mu.Lock()
	defer e.mu.Unlock()
	set := make(map[int]bool)
	for _, n := range e.reg.Nets() {
		if n.Designation != designation || len(n.LiveSegments()) == 0 {
			continue
		}
		set[int(math.Round(n.LineWidth()))] = true
	}
	out := make([]int, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Ints(out)
	return out
}
