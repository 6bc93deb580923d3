package queries

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/toks/cmds"
	"github.com/reusee/toks/logs"
	"github.com/reusee/toks/tokens"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

var queryFlag = cmds.Var[string]("query", "keep only tokens accepted by keep(tok) in a starlark script")

// ScriptPath names the query script, empty for none.
type ScriptPath string

func (Module) ScriptPath() ScriptPath {
	return ScriptPath(*queryFlag)
}

// Query applies the configured script to toks, or returns them unchanged without one.
type Query func(ctx context.Context, toks []tokens.Token) ([]tokens.Token, error)

func (Module) Query(
	path ScriptPath,
	logger logs.Logger,
) Query {
	readScript := sync.OnceValues(func() (string, error) {
		content, err := os.ReadFile(string(path))
		if err != nil {
			return "", fmt.Errorf("read query: %w", err)
		}
		return string(content), nil
	})
	return func(ctx context.Context, toks []tokens.Token) ([]tokens.Token, error) {
		if path == "" {
			return toks, nil
		}
		script, err := readScript()
		if err != nil {
			return nil, err
		}
		ret, err := Filter(ctx, string(path), script, toks)
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "query",
			"script", path,
			"in", len(toks),
			"out", len(ret),
		)
		return ret, nil
	}
}
