package signal

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"\n", "&#10;",
	"\r", "&#13;",
	"\t", "&#9;",
)

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}

// Export renders every net as a <colorSchemeConfig> block, one <net> element
// per net in key order with a <pin> child per live pin.
func (e *Engine) Export() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reg.Prune()
	nets := e.reg.Nets()
	sort.SliceStable(nets, func(i, j int) bool { return nets[i].Key < nets[j].Key })

	var b strings.Builder
	b.WriteString("<colorSchemeConfig>")
	for _, n := range nets {
		width := "1"
		if len(n.LiveSegments()) > 0 {
			width = strconv.FormatFloat(n.LineWidth(), 'f', -1, 64)
		}

		fmt.Fprintf(&b, "\n<net name=\"%s\" designation=\"%s\" designationInfo=\"%s\" designationLineColor=\"%s\""+
			" type=\"%s\" typeInfo=\"%s\" typeLineColor=\"%s\" lineWidth=\"%s\">\n",
			escapeAttr(n.Key),
			escapeAttr(n.Designation),
			escapeAttr(n.DesignationInfo),
			HexColor(n.DesignationColor),
			escapeAttr(n.Type),
			escapeAttr(n.TypeInfo),
			HexColor(n.TypeColor),
			width,
		)
		for _, id := range n.PinIDs() {
			fmt.Fprintf(&b, "  <pin id=\"%s\"/>\n", escapeAttr(id))
		}
		b.WriteString("</net>\n")
	}
	b.WriteString("</colorSchemeConfig>\n")
	return b.String()
}

// storedNet is one <net> element read back from a scheme.
type storedNet struct {
	name  string
	attrs Attributes
	width int // 0 when absent or unparsable

	// Unset when the stored color is missing or not #rrggbb.
	designationColorOK, typeColorOK bool
	pins  []string
}

// Import applies a scheme produced by Export. Each stored net is matched to
// the live net with exactly the same pin-id set; unmatched entries are
// ignored. It returns the number of nets updated. A malformed document yields
// a *SchemeError; nets matched before the error keep their new attributes.
func (e *Engine) Import(text string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.reg.Prune()
	dec := xml.NewDecoder(strings.NewReader(text))
	applied := 0

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return applied, nil
		}
		if err != nil {
			return applied, e.schemeError(dec, err, applied)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "net" {
			continue
		}

		sn, err := readNet(dec, start)
		if err != nil {
			return applied, e.schemeError(dec, err, applied)
		}
		if e.applyStored(sn) {
			applied++
		} else {
			e.logger.Printf("signal: scheme net %q matches no live net", sn.name)
		}
	}
}

func (e *Engine) schemeError(dec *xml.Decoder, err error, applied int) error {
	line, _ := dec.InputPos()
	var syn *xml.SyntaxError
	if errors.As(err, &syn) {
		line = syn.Line
	}
	return &SchemeError{Line: line, Applied: applied, Err: err}
}

// readNet consumes a <net> element up to its end tag.
func readNet(dec *xml.Decoder, start xml.StartElement) (storedNet, error) {
	var sn storedNet
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "name":
			sn.name = a.Value
		case "designation":
			sn.attrs.Designation = a.Value
		case "designationInfo":
			sn.attrs.DesignationInfo = a.Value
		case "designationLineColor":
			sn.attrs.DesignationColor, sn.designationColorOK = ParseHexColor(a.Value)
		case "type":
			sn.attrs.Type = a.Value
		case "typeInfo":
			sn.attrs.TypeInfo = a.Value
		case "typeLineColor":
			sn.attrs.TypeColor, sn.typeColorOK = ParseHexColor(a.Value)
		case "lineWidth":
			if w, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 64); err == nil && w > 0 {
				sn.width = int(math.Round(w))
			}
		}
	}

	seen := make(map[string]bool)
	for depth := 1; depth > 0; {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return sn, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local != "pin" {
				continue
			}
			for _, a := range t.Attr {
				if a.Name.Local == "id" && !seen[a.Value] {
					seen[a.Value] = true
					sn.pins = append(sn.pins, a.Value)
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	sort.Strings(sn.pins)
	return sn, nil
}

// applyStored overwrites the first live net whose pin set equals sn's.
func (e *Engine) applyStored(sn storedNet) bool {
	if len(sn.pins) == 0 {
		return false
	}
	for _, n := range e.reg.Nets() {
		if !slices.Equal(n.PinIDs(), sn.pins) {
			continue
		}
		attrs := sn.attrs
		if !sn.designationColorOK {
			attrs.DesignationColor = n.DesignationColor
		}
		if !sn.typeColorOK {
			attrs.TypeColor = n.TypeColor
		}
		n.Attributes = attrs
		n.paint(modeColor(n, e.opts.ShowTypes))
		if sn.width > 0 {
			n.setWidth(float64(sn.width))
		}
		return true
	}
	return false
}
