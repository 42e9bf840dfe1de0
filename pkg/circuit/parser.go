package circuit

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser reads .circ circuit descriptions.
type Parser struct {
	parser *participle.Parser[File]
}

// NewParser creates a new circuit description parser.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[File](
		participle.Lexer(CircuitLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.Unquote("String"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("circuit: failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a description from a reader and builds the circuit.
func (p *Parser) Parse(r io.Reader) (*Circuit, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("circuit: parse error: %w", err)
	}
	return Build(file)
}

// ParseString parses a description held in a string.
func (p *Parser) ParseString(input string) (*Circuit, error) {
	file, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("circuit: parse error: %w", err)
	}
	return Build(file)
}

// ParseFile parses a description from a file path.
func (p *Parser) ParseFile(filename string) (*Circuit, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("circuit: failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

// ParseFile is a convenience wrapper that builds a one-off parser.
func ParseFile(filename string) (*Circuit, error) {
	p, err := NewParser()
	if err != nil {
		return nil, err
	}
	return p.ParseFile(filename)
}

// Build turns a parsed description into a circuit. Components and nodes are
// registered first so wires may reference pins declared later in the file.
func Build(file *File) (*Circuit, error) {
	c := New()

	for _, decl := range file.Decls {
		switch {
		case decl.Component != nil:
			if err := c.AddComponent(buildComponent(decl.Component)); err != nil {
				return nil, fmt.Errorf("%s: %w", decl.Component.Pos, err)
			}
		case decl.Node != nil:
			if err := c.AddComponent(buildNode(decl.Node)); err != nil {
				return nil, fmt.Errorf("%s: %w", decl.Node.Pos, err)
			}
		}
	}

	for _, decl := range file.Decls {
		w := decl.Wire
		if w == nil {
			continue
		}
		points := make([]Point, 0, len(w.Via))
		for _, v := range w.Via {
			points = append(points, v.Point())
		}
		if _, err := c.Connect(w.ID, w.From, w.To, points); err != nil {
			return nil, fmt.Errorf("%s: %w", w.Pos, err)
		}
	}

	return c, nil
}

func buildComponent(d *ComponentDecl) *Component {
	comp := &Component{
		ID:       d.ID,
		ItemType: d.ItemType,
		Kind:     ParseKind(d.ItemType),
	}
	for _, opt := range d.Options {
		switch {
		case opt.Voltage != nil:
			comp.Voltage = *opt.Voltage
		case opt.At != nil:
			comp.Position = opt.At.Point()
		case opt.Rotate != nil:
			comp.Rotation = *opt.Rotate
		case opt.Flip:
			comp.Flipped = true
		case opt.Size != nil:
			comp.Size = opt.Size.Point()
		}
	}
	comp.Pins = buildPins(d.Pins, comp.Position)
	return comp
}

func buildNode(d *NodeDecl) *Component {
	node := &Component{
		ID:       d.ID,
		ItemType: KindNode.String(),
		Kind:     KindNode,
		Position: d.At.Point(),
	}
	node.Pins = buildPins(d.Pins, node.Position)
	return node
}

// buildPins creates pins; a pin without an explicit position sits at the
// owner's origin.
func buildPins(decls []*PinDecl, origin Point) []*Pin {
	pins := make([]*Pin, 0, len(decls))
	for _, pd := range decls {
		pos := origin
		if pd.At != nil {
			pos = pd.At.Point()
		}
		pins = append(pins, &Pin{ID: pd.ID, Position: pos})
	}
	return pins
}
