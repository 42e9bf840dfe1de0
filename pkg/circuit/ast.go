package circuit

import "github.com/alecthomas/participle/v2/lexer"

// File is a parsed .circ description.
type File struct {
	Decls []*Decl `parser:"@@*"`
}

// Decl is one top-level declaration.
type Decl struct {
	Component *ComponentDecl `parser:"  @@"`
	Node      *NodeDecl      `parser:"| @@"`
	Wire      *WireDecl      `parser:"| @@"`
}

// ComponentDecl declares a component and its pins.
// Example: component "Rail1" type "Rail" voltage 5 at (0, 0) { pin "Rail1-0-pin" }
type ComponentDecl struct {
	Pos      lexer.Position
	ID       string             `parser:"KwComponent @String"`
	ItemType string             `parser:"KwType @String"`
	Options  []*ComponentOption `parser:"@@*"`
	Pins     []*PinDecl         `parser:"( LBrace @@* RBrace )?"`
}

// ComponentOption is an optional clause of a component declaration.
type ComponentOption struct {
	Voltage *float64 `parser:"  KwVoltage @Number"`
	At      *Coord   `parser:"| KwAt @@"`
	Rotate  *float64 `parser:"| KwRotate @Number"`
	Flip    bool     `parser:"| @KwFlip"`
	Size    *Coord   `parser:"| KwSize @@"`
}

// NodeDecl declares a junction node. Its pins must be named Node-<group>-<n>.
type NodeDecl struct {
	Pos  lexer.Position
	ID   string     `parser:"KwNode @String"`
	At   *Coord     `parser:"( KwAt @@ )?"`
	Pins []*PinDecl `parser:"( LBrace @@* RBrace )?"`
}

// PinDecl declares a pin inside a component or node block.
type PinDecl struct {
	ID string `parser:"KwPin @String"`
	At *Coord `parser:"( KwAt @@ )?"`
}

// WireDecl declares a connector between two pins.
// Example: wire "W1" from "Rail1-0-pin" to "Node-7-0" via (10, 0) (50, 0)
type WireDecl struct {
	Pos  lexer.Position
	ID   string   `parser:"KwWire @String"`
	From string   `parser:"KwFrom @String"`
	To   string   `parser:"KwTo @String"`
	Via  []*Coord `parser:"( KwVia @@+ )?"`
}

// Coord is a parenthesized coordinate pair.
type Coord struct {
	X float64 `parser:"LParen @Number"`
	Y float64 `parser:"Comma @Number RParen"`
}

// Point converts the coordinate to a Point.
func (c *Coord) Point() Point {
	if c == nil {
		return Point{}
	}
	return Point{X: c.X, Y: c.Y}
}
