package scans

import (
	"context"
	"sync"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/toks/cmds"
	"github.com/reusee/toks/configs"
	"github.com/reusee/toks/logs"
	"github.com/reusee/toks/sources"
	"github.com/reusee/toks/tokens"
	"github.com/samber/lo"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}

var (
	retainTriviaFlag   = cmds.Switch("-trivia", "emit whitespace and comment tokens")
	nestedCommentsFlag = cmds.Switch("-nested-comments", "let block comments nest")
)

// GetOptions resolves scanner options. A command line switch turns an option on over the config.
type GetOptions func() (Options, error)

func (Module) GetOptions(
	loader configs.Loader,
) GetOptions {
	return sync.OnceValues(func() (options Options, err error) {
		retainTrivia, err := configs.First[bool](loader, "retain_trivia")
		if err != nil {
			return
		}
		nestedComments, err := configs.First[bool](loader, "nested_comments")
		if err != nil {
			return
		}
		options.RetainTrivia = *retainTriviaFlag || retainTrivia
		options.NestedComments = *nestedCommentsFlag || nestedComments
		return
	})
}

type TokenizeSource func(ctx context.Context, src *sources.Source) ([]tokens.Token, error)

func (Module) TokenizeSource(
	getOptions GetOptions,
	logger logs.Logger,
) TokenizeSource {
	return func(ctx context.Context, src *sources.Source) ([]tokens.Token, error) {
		options, err := getOptions()
		if err != nil {
			return nil, err
		}
		t0 := time.Now()
		toks, err := Collect(src.Text, src.Location, WithOptions(options))
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		logger.DebugContext(ctx, "tokenized",
			"location", src.Location,
			"tokens", len(toks),
			"invalid", lo.CountBy(toks, func(tok tokens.Token) bool {
				return tok.Kind == tokens.Invalid
			}),
			"duration", time.Since(t0),
		)
		return toks, nil
	}
}
