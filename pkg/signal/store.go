package signal

import (
	"image/color"
)

// Edit is a full manual override of one net, as submitted by an editor form.
type Edit struct {
	Designation      string
	DesignationColor color.NRGBA
	DesignationInfo  string
	Type             string
	TypeColor        color.NRGBA
	TypeInfo         string
	Thickness        int // 0 keeps the current width
}

// SetDesignation changes the designation of the net behind h.
func (e *Engine) SetDesignation(h Handle, designation string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, err := e.net(h)
	if err != nil {
		return err
	}
	n.Designation = designation
	return nil
}

// SetType changes the category of the net behind h.
func (e *Engine) SetType(h Handle, t string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, err := e.net(h)
	if err != nil {
		return err
	}
	n.Type = t
	return nil
}

// SetDesignationColor changes the designation color of every net sharing the
// designation and type of the net behind h. Power designations keep their
// resolved color; changing one returns an *EditError.
func (e *Engine) SetDesignationColor(h Handle, c color.NRGBA) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, err := e.net(h)
	if err != nil {
		return err
	}
	if reservedDesignationColor(n.Type) && c != n.DesignationColor {
		return &EditError{Err: ErrReservedColor, Fields: []string{"designation color"}}
	}
	e.eachDesignation(n, func(m *Net) { m.DesignationColor = c })
	return nil
}

// SetDesignationInfo changes the designation text of every net sharing the
// designation and type of the net behind h.
func (e *Engine) SetDesignationInfo(h Handle, info string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, err := e.net(h)
	if err != nil {
		return err
	}
	e.eachDesignation(n, func(m *Net) { m.DesignationInfo = info })
	return nil
}

// SetTypeColor changes the type color of every net of the same type as the
// net behind h. The built-in categories reject a new color with an *EditError.
func (e *Engine) SetTypeColor(h Handle, c color.NRGBA) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, err := e.net(h)
	if err != nil {
		return err
	}
	if systemTypes[n.Type] && c != n.TypeColor {
		return &EditError{Err: ErrReservedColor, Fields: []string{"type color"}}
	}
	e.eachType(n, func(m *Net) { m.TypeColor = c })
	return nil
}

// SetTypeInfo changes the category text of every net of the same type as the
// net behind h.
func (e *Engine) SetTypeInfo(h Handle, info string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, err := e.net(h)
	if err != nil {
		return err
	}
	e.eachType(n, func(m *Net) { m.TypeInfo = info })
	return nil
}

func reservedDesignationColor(t string) bool {
	return systemTypes[t] && systemDesignationTypes[t]
}

func (e *Engine) eachDesignation(target *Net, fn func(*Net)) {
	designation, t := target.Designation, target.Type
	for _, n := range e.reg.Nets() {
		if n.Designation == designation && n.Type == t {
			fn(n)
		}
	}
}

func (e *Engine) eachType(target *Net, fn func(*Net)) {
	t := target.Type
	for _, n := range e.reg.Nets() {
		if n.Type == t {
			fn(n)
		}
	}
}

// ApplyEdit validates and applies a manual override. The four label and color
// fields are required, and the colors of the built-in categories may not be
// changed. On failure it returns an *EditError and leaves every net untouched.
func (e *Engine) ApplyEdit(h Handle, ed Edit) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	n, err := e.net(h)
	if err != nil {
		return err
	}

	var missing []string
	if ed.Designation == "" {
		missing = append(missing, "designation")
	}
	if !ValidColor(ed.DesignationColor) {
		missing = append(missing, "designation color")
	}
	if ed.Type == "" {
		missing = append(missing, "type")
	}
	if !ValidColor(ed.TypeColor) {
		missing = append(missing, "type color")
	}
	if len(missing) > 0 {
		return &EditError{Err: ErrMissingField, Fields: missing}
	}

	var reserved []string
	if systemTypes[ed.Type] && ed.TypeColor != n.TypeColor {
		reserved = append(reserved, "type color")
	}
	if reservedDesignationColor(ed.Type) && ed.DesignationColor != n.DesignationColor {
		reserved = append(reserved, "designation color")
	}
	if len(reserved) > 0 {
		return &EditError{Err: ErrReservedColor, Fields: reserved}
	}

	n.Designation = ed.Designation
	n.Type = ed.Type
	e.eachDesignation(n, func(m *Net) { m.DesignationColor = ed.DesignationColor })
	e.eachType(n, func(m *Net) { m.TypeColor = ed.TypeColor })
	e.eachDesignation(n, func(m *Net) { m.DesignationInfo = ed.DesignationInfo })
	e.eachType(n, func(m *Net) { m.TypeInfo = ed.TypeInfo })

	if ed.Thickness > 0 {
		n.setWidth(float64(ed.Thickness))
	}
	e.updateNetColors()
	return nil
}

// RemoveDesignation clears every net with the given designation back to
// unclassified. It returns the number of nets cleared.
func (e *Engine) RemoveDesignation(designation string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clearWhere(func(n *Net) bool { return n.Designation == designation })
}

// RemoveType clears every net of type t back to unclassified.
func (e *Engine) RemoveType(t string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clearWhere(func(n *Net) bool { return n.Type == t })
}

// clearWhere drops the labels and colors of matching nets. Texts are kept so
// a later relabel restores them.
func (e *Engine) clearWhere(match func(*Net) bool) int {
	cleared := 0
	for _, n := range e.reg.Nets() {
		if !match(n) {
			continue
		}
		n.Designation, n.Type = "", ""
		n.DesignationColor = e.opts.UnclassifiedColor
		n.TypeColor = e.opts.UnclassifiedColor
		n.setWidth(float64(e.opts.DefaultLineWidth))
		n.paint(e.opts.UnclassifiedColor)
		cleared++
	}
	return cleared
}

// ResetNet returns the net behind h to the unclassified state.
func (e *Engine) ResetNet(h Handle) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, err := e.net(h)
	if err != nil {
		return err
	}
	n.Attributes = unclassified(e.opts.UnclassifiedColor)
	n.setWidth(float64(e.opts.DefaultLineWidth))
	n.paint(e.opts.UnclassifiedColor)
	return nil
}

// ApplyColor paints the segments of the net behind h without changing its
// attributes.
func (e *Engine) ApplyColor(h Handle, c color.NRGBA) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, err := e.net(h)
	if err != nil {
		return err
	}
	n.paint(c)
	return nil
}

// ApplyThickness sets the width of every segment of the net behind h.
func (e *Engine) ApplyThickness(h Handle, width int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	n, err := e.net(h)
	if err != nil {
		return err
	}
	n.setWidth(float64(width))
	return nil
}

// SetShowTypes switches the display mode and repaints every net.
func (e *Engine) SetShowTypes(show bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.opts.ShowTypes = show
	e.updateNetColors()
}

// ShowTypes reports whether segments are painted with type colors.
func (e *Engine) ShowTypes() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.opts.ShowTypes
}

// UpdateNetColors repaints every net for the current display mode.
func (e *Engine) UpdateNetColors() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.updateNetColors()
}

func (e *Engine) updateNetColors() {
	for _, n := range e.reg.Nets() {
		n.paint(modeColor(n, e.opts.ShowTypes))
	}
}
