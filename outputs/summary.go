package outputs

import (
	"github.com/reusee/toks/tokens"
	"github.com/samber/lo"
)

// Summary counts tokens per kind name.
func Summary(toks []tokens.Token) map[string]int {
	return lo.CountValuesBy(toks, func(tok tokens.Token) string {
		return tok.Kind.String()
	})
}
