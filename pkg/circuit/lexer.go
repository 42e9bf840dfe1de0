package circuit

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CircuitLexer defines the lexical structure of .circ circuit descriptions.
var CircuitLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Declarations
	{Name: "KwComponent", Pattern: `\bcomponent\b`},
	{Name: "KwNode", Pattern: `\bnode\b`},
	{Name: "KwWire", Pattern: `\bwire\b`},
	{Name: "KwPin", Pattern: `\bpin\b`},

	// Clauses
	{Name: "KwType", Pattern: `\btype\b`},
	{Name: "KwVoltage", Pattern: `\bvoltage\b`},
	{Name: "KwAt", Pattern: `\bat\b`},
	{Name: "KwRotate", Pattern: `\brotate\b`},
	{Name: "KwFlip", Pattern: `\bflip\b`},
	{Name: "KwSize", Pattern: `\bsize\b`},
	{Name: "KwFrom", Pattern: `\bfrom\b`},
	{Name: "KwTo", Pattern: `\bto\b`},
	{Name: "KwVia", Pattern: `\bvia\b`},

	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},
	{Name: "Number", Pattern: `[-+]?(?:[0-9]+\.[0-9]*|\.[0-9]+|[0-9]+)(?:[eE][-+]?[0-9]+)?`},

	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "Comma", Pattern: `,`},
})
