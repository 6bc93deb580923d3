package queries

import (
	"github.com/reusee/starlarkutil"
	"github.com/reusee/toks/tokens"
	"go.starlark.net/starlark"
)

func predeclared() starlark.StringDict {
	var isTrivia starlark.Value = starlarkutil.MakeFunc("is_trivia", func(kind string) bool {
		k, ok := tokens.ParseKind(kind)
		return ok && k.IsTrivia()
	})
	var isLiteral starlark.Value = starlarkutil.MakeFunc("is_literal", func(kind string) bool {
		k, ok := tokens.ParseKind(kind)
		return ok && k.IsLiteral()
	})
	return starlark.StringDict{
		"is_trivia":  isTrivia,
		"is_literal": isLiteral,
	}
}
