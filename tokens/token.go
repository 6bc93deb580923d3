package tokens

import (
	"fmt"
	"strings"
)

type Token struct {
	Kind     Kind
	Keyword  KeywordID  // set for Keyword tokens
	Operator OperatorID // set for Operator tokens
	Reason   Reason     // set for Invalid tokens
	Span     Span
	Location Location
	Lexeme   string
}

func (t Token) Is(kind Kind) bool {
	return t.Kind == kind
}

func (t Token) IsKeyword(kw KeywordID) bool {
	return t.Kind == Keyword && t.Keyword == kw
}

func (t Token) IsOperator(op OperatorID) bool {
	return t.Kind == Operator && t.Operator == op
}

// String renders the token compactly, e.g. Keyword(let)@0-3.
func (t Token) String() string {
	var b strings.Builder
	b.WriteString(t.Kind.String())
	switch t.Kind {
	case EOF:
	case Invalid:
		fmt.Fprintf(&b, "(%s %q)", t.Reason, t.Lexeme)
	case Identifier, Keyword, Integer, Float, Operator:
		b.WriteString("(")
		b.WriteString(t.Lexeme)
		b.WriteString(")")
	case String, Char, Comment, Whitespace:
		fmt.Fprintf(&b, "(%q)", t.Lexeme)
	default:
		panic(fmt.Errorf("unknown token kind %d", uint8(t.Kind)))
	}
	b.WriteString("@")
	b.WriteString(t.Span.String())
	return b.String()
}

// Describe renders the token for humans.
func (t Token) Describe() string {
	switch t.Kind {
	case EOF:
		return "end of file"
	case Invalid:
		return fmt.Sprintf("invalid token %q (%s)", t.Lexeme, t.Reason)
	case Identifier:
		return fmt.Sprintf("identifier '%s'", t.Lexeme)
	case Keyword:
		return fmt.Sprintf("keyword '%s'", t.Lexeme)
	case Integer:
		return fmt.Sprintf("int '%s'", t.Lexeme)
	case Float:
		return fmt.Sprintf("float '%s'", t.Lexeme)
	case String:
		return "string " + t.Lexeme
	case Char:
		return "char " + t.Lexeme
	case Operator:
		return fmt.Sprintf("symbol '%s'", t.Lexeme)
	case Comment:
		return fmt.Sprintf("comment %q", t.Lexeme)
	case Whitespace:
		return "whitespace"
	}
	panic(fmt.Errorf("unknown token kind %d", uint8(t.Kind)))
}

// Where renders location:line:column of the token start.
func (t Token) Where() string {
	return fmt.Sprintf("%s:%d:%d", t.Location, t.Span.Start.Line, t.Span.Start.Column)
}
