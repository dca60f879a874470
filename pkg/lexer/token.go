package lexer

import "fmt"

// Kind is the payload-free tag of a token.
type Kind int

const (
	OpenParen Kind = iota
	CloseParen
	OpenBrace
	CloseBrace
	OpenBracket
	CloseBracket
	Equals
	Semicolon
	Colon
	Comma
	Dot
	Let
	Const
	EOF
	BinaryOperator
	Number
	Identifier
)

func (k Kind) String() string {
	switch k {
	case OpenParen:
		return "OpenParen"
	case CloseParen:
		return "CloseParen"
	case OpenBrace:
		return "OpenBrace"
	case CloseBrace:
		return "CloseBrace"
	case OpenBracket:
		return "OpenBracket"
	case CloseBracket:
		return "CloseBracket"
	case Equals:
		return "Equals"
	case Semicolon:
		return "Semicolon"
	case Colon:
		return "Colon"
	case Comma:
		return "Comma"
	case Dot:
		return "Dot"
	case Let:
		return "Let"
	case Const:
		return "Const"
	case EOF:
		return "Eof"
	case BinaryOperator:
		return "BinaryOperator"
	case Number:
		return "Number"
	case Identifier:
		return "Identifier"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Token is a single lexeme. Only the field matching Kind carries a payload:
// Op for BinaryOperator, Value for Number, Name for Identifier.
type Token struct {
	Kind  Kind   `json:"kind"`
	Op    byte   `json:"op,omitempty"`
	Value int64  `json:"value,omitempty"`
	Name  string `json:"name,omitempty"`
}

func (t Token) String() string {
	switch t.Kind {
	case BinaryOperator:
		return fmt.Sprintf("BinaryOperator(%c)", t.Op)
	case Number:
		return fmt.Sprintf("Number(%d)", t.Value)
	case Identifier:
		return fmt.Sprintf("Identifier(%s)", t.Name)
	default:
		return t.Kind.String()
	}
}

// Is reports whether the token has the given kind.
func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

var keywords = map[string]Kind{
	"let":   Let,
	"const": Const,
}

// Keyword returns the keyword kind for word, if it is one.
func Keyword(word string) (Kind, bool) {
	kind, ok := keywords[word]
	return kind, ok
}
