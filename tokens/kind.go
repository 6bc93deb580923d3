package tokens

import "fmt"

type Kind uint8

const (
	Invalid Kind = iota
	EOF
	Identifier
	Keyword
	Integer
	Float
	String
	Char
	Operator
	Comment
	Whitespace
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Identifier:
		return "Identifier"
	case Keyword:
		return "Keyword"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case String:
		return "String"
	case Char:
		return "Char"
	case Operator:
		return "Operator"
	case Comment:
		return "Comment"
	case Whitespace:
		return "Whitespace"
	}
	panic(fmt.Errorf("unknown token kind %d", uint8(k)))
}

// IsTrivia reports whether tokens of this kind carry no syntax.
func (k Kind) IsTrivia() bool {
	return k == Comment || k == Whitespace
}

// IsLiteral reports whether tokens of this kind carry a value.
func (k Kind) IsLiteral() bool {
	switch k {
	case Integer, Float, String, Char:
		return true
	}
	return false
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind)
	for k := Invalid; k <= Whitespace; k++ {
		m[k.String()] = k
	}
	return m
}()

func ParseKind(name string) (Kind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}
