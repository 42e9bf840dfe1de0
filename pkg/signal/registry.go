package signal

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSignals/pkg/circuit"
	"github.com/OpenTraceLab/OpenTraceSignals/pkg/scene"
)

var (
	// junctionPinRe matches a full junction pin id and captures its group.
	junctionPinRe = regexp.MustCompile(`(?i)^Node-(\d+)-\d+$`)

	// junctionGroupRe is the looser prefix form used when collapsing nets.
	junctionGroupRe = regexp.MustCompile(`(?i)^Node-(\d+)-`)
)

// IsJunction reports whether a pin id names a junction node pin.
func IsJunction(pinID string) bool {
	return strings.Contains(strings.ToLower(pinID), "node")
}

// JunctionGroup returns the group number of a junction pin id.
func JunctionGroup(pinID string) (string, bool) {
	m := junctionPinRe.FindStringSubmatch(pinID)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Registry groups rendered segments into nets. All mutation of the net map
// goes through its methods. A Registry is not safe for concurrent use; the
// Engine serializes access to it.
type Registry struct {
	nets    map[string]*Net
	order   []string // keys in registration order
	handles map[Handle]*Net
	seq     int
	blank   color.NRGBA // color of new, unclassified nets
	logger  *log.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		nets:    make(map[string]*Net),
		handles: make(map[Handle]*Net),
		blank:   DarkGreen,
		logger:  log.New(io.Discard, "", 0),
	}
}

// SetLogger routes registry debug output to l. A nil logger discards it.
func (r *Registry) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	r.logger = l
}

// RegisterConnection adds one drawn connector. The segments join the net of
// either endpoint, or start a new net when neither endpoint is known. When the
// endpoints belong to two different nets, those nets are merged and the whole
// registry is deduplicated.
func (r *Registry) RegisterConnection(start, end *circuit.Pin, segments []*scene.Segment) {
	if !start.Alive() || !end.Alive() {
		r.logger.Printf("signal: skipping connection with destroyed pin")
		return
	}

	startKey := r.lookup(start.ID)
	endKey := r.lookup(end.ID)

	target := startKey
	if target == "" {
		target = endKey
	}

	if target == "" {
		net := r.create(newKey(start.ID, end.ID))
		net.addPin(start)
		net.addPin(end)
		for _, s := range segments {
			net.addSegment(s)
		}
		r.logger.Printf("signal: new net %q", net.Key)
		return
	}

	net := r.nets[target]
	for _, s := range segments {
		net.addSegment(s)
	}
	net.addPin(start)
	net.addPin(end)

	if startKey != "" && endKey != "" && startKey != endKey {
		r.merge(r.nets[startKey], r.nets[endKey])
		r.Deduplicate()
	}
}

// newKey prefers the id of a non-junction endpoint.
func newKey(startID, endID string) string {
	if IsJunction(startID) && !IsJunction(endID) {
		return endID
	}
	return startID
}

// lookup finds the key of the net holding pinID. Junction pins match any net
// holding a pin of the same group; every pin also matches by exact id.
func (r *Registry) lookup(pinID string) string {
	if IsJunction(pinID) {
		if group, ok := JunctionGroup(pinID); ok {
			for _, key := range r.order {
				for _, p := range r.nets[key].Pins {
					if !p.Alive() {
						continue
					}
					if g, ok := JunctionGroup(p.ID); ok && g == group {
						return key
					}
				}
			}
		}
	}

	for _, key := range r.order {
		if r.nets[key].hasPin(pinID) {
			return key
		}
	}
	return ""
}

// create registers an empty net under key, adding a #n suffix if the key is
// already taken.
func (r *Registry) create(key string) *Net {
	if _, taken := r.nets[key]; taken {
		for i := 2; ; i++ {
			candidate := key + "#" + strconv.Itoa(i)
			if _, taken := r.nets[candidate]; !taken {
				key = candidate
				break
			}
		}
	}

	r.seq++
	net := &Net{
		Handle: newHandle(),
		Key:    key,
		seq:    r.seq,
	}
	net.Attributes = unclassified(r.blank)
	r.nets[key] = net
	r.order = append(r.order, key)
	r.handles[net.Handle] = net
	return net
}

// merge moves the contents of src into dst and removes src. Handles that
// resolved to src resolve to dst afterwards.
func (r *Registry) merge(dst, src *Net) {
	if dst == nil || src == nil || dst == src {
		return
	}
	for _, s := range src.Segments {
		dst.addSegment(s)
	}
	for _, p := range src.Pins {
		dst.addPin(p)
	}
	for h, n := range r.handles {
		if n == src {
			r.handles[h] = dst
		}
	}
	r.remove(src.Key)
	r.logger.Printf("signal: merged net %q into %q", src.Key, dst.Key)
}

func (r *Registry) remove(key string) {
	delete(r.nets, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// Deduplicate collapses every set of nets that share a junction group into
// the earliest registered of them. Nets linked through several groups collapse
// transitively. It returns the number of nets removed; a second call without
// new registrations returns 0.
func (r *Registry) Deduplicate() int {
	ks := newKeySet()
	firstByGroup := make(map[string]string)

	for _, key := range r.order {
		net := r.nets[key]
		ks.add(key, net.seq)
		for _, p := range net.Pins {
			if !p.Alive() {
				continue
			}
			m := junctionGroupRe.FindStringSubmatch(p.ID)
			if m == nil {
				continue
			}
			if first, ok := firstByGroup[m[1]]; ok {
				ks.union(first, key)
			} else {
				firstByGroup[m[1]] = key
			}
		}
	}

	keys := append([]string(nil), r.order...)
	removed := 0
	for _, key := range keys {
		root := ks.find(key)
		if root == key {
			continue
		}
		r.merge(r.nets[root], r.nets[key])
		removed++
	}
	if removed > 0 {
		r.logger.Printf("signal: deduplicate removed %d nets", removed)
	}
	return removed
}

// Prune drops destroyed pins and segments from every net, then removes nets
// left with neither. It returns the number of nets removed.
func (r *Registry) Prune() int {
	removed := 0
	for _, key := range append([]string(nil), r.order...) {
		net := r.nets[key]
		net.prune()
		if len(net.Pins) > 0 || len(net.Segments) > 0 {
			continue
		}
		for h, n := range r.handles {
			if n == net {
				delete(r.handles, h)
			}
		}
		r.remove(key)
		removed++
	}
	return removed
}

// Nets returns the nets in registration order.
func (r *Registry) Nets() []*Net {
	nets := make([]*Net, 0, len(r.order))
	for _, key := range r.order {
		nets = append(nets, r.nets[key])
	}
	return nets
}

// Net returns the net stored under key.
func (r *Registry) Net(key string) (*Net, bool) {
	n, ok := r.nets[key]
	return n, ok
}

// ByHandle resolves a handle, following merges.
func (r *Registry) ByHandle(h Handle) (*Net, bool) {
	n, ok := r.handles[h]
	return n, ok
}

// BySegment returns the net holding seg.
func (r *Registry) BySegment(seg *scene.Segment) (*Net, bool) {
	if !seg.Alive() {
		return nil, false
	}
	for _, key := range r.order {
		if n := r.nets[key]; n.hasSegment(seg) {
			return n, true
		}
	}
	return nil, false
}

// ByPin returns the net holding a live pin with the given id.
func (r *Registry) ByPin(pinID string) (*Net, bool) {
	for _, key := range r.order {
		if n := r.nets[key]; n.hasPin(pinID) {
			return n, true
		}
	}
	return nil, false
}

// Len returns the number of nets.
func (r *Registry) Len() int {
	return len(r.order)
}

// Reset forgets every net.
func (r *Registry) Reset() {
	r.nets = make(map[string]*Net)
	r.handles = make(map[Handle]*Net)
	r.order = nil
	r.seq = 0
}

func (n *Net) String() string {
	return fmt.Sprintf("%s (%d pins, %d segments)", n.Key, len(n.Pins), len(n.Segments))
}
