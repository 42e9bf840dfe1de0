// Package circuit models the read-only circuit topology consumed by the signal
// engine: components, their pins, connectors between pins, and junction nodes.
package circuit

import (
	"fmt"
	"sort"
	"sync/atomic"
)

// Pin is a connection point owned by a component. Pins are identified by a
// stable string id of the form "<component>-<index>-<name>".
type Pin struct {
	ID       string
	Position Point
	Owner    *Component

	destroyed atomic.Bool
}

// Alive reports whether the pin still exists in the host circuit. Callers must
// treat a destroyed pin as absent.
func (p *Pin) Alive() bool {
	return p != nil && !p.destroyed.Load()
}

// Destroy marks the pin as deleted by the host.
func (p *Pin) Destroy() {
	if p != nil {
		p.destroyed.Store(true)
	}
}

// OwnerKind returns the kind of the owning component, or KindUnknown.
func (p *Pin) OwnerKind() Kind {
	if p == nil || p.Owner == nil {
		return KindUnknown
	}
	return p.Owner.Kind
}

// Component is a placed circuit element.
type Component struct {
	ID       string
	ItemType string
	Kind     Kind
	Voltage  float64 // Configured voltage for power-like components
	Position Point
	Size     Point
	Rotation float64 // Degrees
	Flipped  bool
	Pins     []*Pin
}

// Bounds returns the component's bounding box in scene coordinates, honoring
// rotation and flip.
func (c *Component) Bounds() BoundingBox {
	bb := NewBoundingBox()
	w, h := c.Size.X/2, c.Size.Y/2
	for _, corner := range []Point{{-w, -h}, {w, -h}, {w, h}, {-w, h}} {
		if c.Flipped {
			corner.X = -corner.X
		}
		bb.Expand(corner.Rotate(c.Rotation).Add(c.Position))
	}
	for _, p := range c.Pins {
		bb.Expand(p.Position)
	}
	return bb
}

// Pin returns the component's pin with the given id.
func (c *Component) Pin(id string) *Pin {
	for _, p := range c.Pins {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Connector is a routed wire between two pins.
type Connector struct {
	ID     string
	Points []Point
	Start  *Pin
	End    *Pin
}

// Circuit indexes the components and connectors of a schematic.
type Circuit struct {
	components []*Component
	connectors []*Connector
	byID       map[string]*Component
	pins       map[string]*Pin
}

// New creates an empty circuit.
func New() *Circuit {
	return &Circuit{
		byID: make(map[string]*Component),
		pins: make(map[string]*Pin),
	}
}

// AddComponent registers a component and its pins. Component ids and pin ids
// must be unique across the circuit.
func (c *Circuit) AddComponent(comp *Component) error {
	if comp.ID == "" {
		return fmt.Errorf("circuit: component without id")
	}
	if _, exists := c.byID[comp.ID]; exists {
		return fmt.Errorf("circuit: duplicate component %q", comp.ID)
	}
	if comp.Kind == KindUnknown {
		comp.Kind = ParseKind(comp.ItemType)
	}
	for _, p := range comp.Pins {
		if _, exists := c.pins[p.ID]; exists {
			return fmt.Errorf("circuit: duplicate pin %q", p.ID)
		}
	}
	for _, p := range comp.Pins {
		p.Owner = comp
		c.pins[p.ID] = p
	}
	c.byID[comp.ID] = comp
	c.components = append(c.components, comp)
	return nil
}

// Connect adds a connector between two existing pins.
func (c *Circuit) Connect(id, startPin, endPin string, points []Point) (*Connector, error) {
	start, ok := c.pins[startPin]
	if !ok {
		return nil, fmt.Errorf("circuit: wire %q: unknown start pin %q", id, startPin)
	}
	end, ok := c.pins[endPin]
	if !ok {
		return nil, fmt.Errorf("circuit: wire %q: unknown end pin %q", id, endPin)
	}
	conn := &Connector{
		ID:     id,
		Points: append([]Point(nil), points...),
		Start:  start,
		End:    end,
	}
	c.connectors = append(c.connectors, conn)
	return conn, nil
}

// RemoveComponent deletes a component. Its pins are destroyed so that any
// outstanding references held by the signal engine read as absent.
func (c *Circuit) RemoveComponent(id string) bool {
	comp, ok := c.byID[id]
	if !ok {
		return false
	}
	for _, p := range comp.Pins {
		p.Destroy()
		delete(c.pins, p.ID)
	}
	delete(c.byID, id)
	for i, cc := range c.components {
		if cc == comp {
			c.components = append(c.components[:i], c.components[i+1:]...)
			break
		}
	}
	return true
}

// Component returns a component by id.
func (c *Circuit) Component(id string) *Component {
	return c.byID[id]
}

// Pin returns a live pin by id.
func (c *Circuit) Pin(id string) *Pin {
	p := c.pins[id]
	if !p.Alive() {
		return nil
	}
	return p
}

// Components returns the components in insertion order.
func (c *Circuit) Components() []*Component {
	return c.components
}

// Connectors returns the connectors in insertion order.
func (c *Circuit) Connectors() []*Connector {
	return c.connectors
}

// Nodes returns the junction components.
func (c *Circuit) Nodes() []*Component {
	var nodes []*Component
	for _, comp := range c.components {
		if comp.Kind == KindNode {
			nodes = append(nodes, comp)
		}
	}
	return nodes
}

// PinIDs returns all live pin ids, sorted.
func (c *Circuit) PinIDs() []string {
	ids := make([]string, 0, len(c.pins))
	for id, p := range c.pins {
		if p.Alive() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
