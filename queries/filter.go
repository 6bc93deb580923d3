package queries

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/toks/tokens"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var ErrNoKeepFunc = errors.New("script does not define a callable keep(tok)")

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Filter runs script, which must define keep(tok), and returns the tokens it accepts in order.
func Filter(ctx context.Context, name string, script string, toks []tokens.Token) ([]tokens.Token, error) {
	thread := &starlark.Thread{
		Name: name,
	}
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	globals, err := starlark.ExecFileOptions(fileOptions, thread, name, script, predeclared())
	if err != nil {
		return nil, fmt.Errorf("exec %s: %w", name, err)
	}
	keep, ok := globals["keep"].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrNoKeepFunc)
	}

	var ret []tokens.Token
	for _, tok := range toks {
		v, err := starlark.Call(thread, keep, starlark.Tuple{tokenValue(tok)}, nil)
		if err != nil {
			return nil, fmt.Errorf("%s: keep %s: %w", name, tok.Where(), err)
		}
		if v.Truth() {
			ret = append(ret, tok)
		}
	}
	return ret, nil
}
