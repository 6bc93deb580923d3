package queries

import (
	"github.com/reusee/toks/tokens"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// tokenValue exposes a token to scripts as an immutable struct.
func tokenValue(tok tokens.Token) starlark.Value {
	fields := starlark.StringDict{
		"kind":     starlark.String(tok.Kind.String()),
		"keyword":  starlark.String(""),
		"operator": starlark.String(""),
		"reason":   starlark.String(tok.Reason.Code()),
		"lexeme":   starlark.String(tok.Lexeme),
		"line":     starlark.MakeInt(tok.Span.Start.Line),
		"column":   starlark.MakeInt(tok.Span.Start.Column),
		"offset":   starlark.MakeInt(tok.Span.Start.Offset),
		"end":      starlark.MakeInt(tok.Span.End.Offset),
	}
	switch tok.Kind {
	case tokens.Keyword:
		fields["keyword"] = starlark.String(tok.Keyword.String())
	case tokens.Operator:
		fields["operator"] = starlark.String(tok.Operator.String())
	}
	return starlarkstruct.FromStringDict(starlark.String("token"), fields)
}

func tokenList(toks []tokens.Token) *starlark.List {
	elems := make([]starlark.Value, len(toks))
	for i, tok := range toks {
		elems[i] = tokenValue(tok)
	}
	return starlark.NewList(elems)
}
