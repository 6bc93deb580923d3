package queries

import (
	"context"

	"github.com/reusee/toks/logs"
	"github.com/reusee/toks/tokens"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
)

// Tap opens an interactive starlark session with the tokens of one input bound to `tokens`.
type Tap func(ctx context.Context, what string, toks []tokens.Token)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, toks []tokens.Token) {
		logger.InfoContext(ctx, "tap: "+what,
			"tokens", len(toks),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		globals := predeclared()
		globals["tokens"] = tokenList(toks)
		globals["location"] = starlark.String(what)

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, globals)
	}
}
