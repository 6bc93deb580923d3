package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/reusee/toks/cmds"
	"github.com/reusee/toks/configs"
	"github.com/reusee/toks/logs"
	"github.com/reusee/toks/outputs"
	"github.com/reusee/toks/queries"
	"github.com/reusee/toks/reports"
	"github.com/reusee/toks/scans"
	"github.com/reusee/toks/sources"
	"github.com/reusee/toks/syncs"
	"github.com/reusee/toks/tokens"
)

var (
	replFlag  = cmds.Switch("-repl", "open a starlark repl over the tokens of each input")
	checkFlag = cmds.Switch("-check", "exit with status 1 if any input has lexical errors")
)

type result struct {
	src  *sources.Source
	toks []tokens.Token
	err  error
}

// Run tokenizes every input and prints the results in argument order. It returns the process exit status.
type Run func(ctx context.Context, refs []string) int

func (Module) Run(
	load sources.Load,
	tokenize scans.TokenizeSource,
	query queries.Query,
	tap queries.Tap,
	loader configs.Loader,
	getFormat outputs.GetFormat,
	getParallel GetParallel,
	newSpan logs.NewSpan,
	logger logs.Logger,
	stdout Stdout,
	stderr Stderr,
) Run {
	return func(ctx context.Context, refs []string) int {
		if _, err := loader.Paths(); err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		format, err := getFormat()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		parallel, err := getParallel()
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}

		results := make([]result, len(refs))
		sem := syncs.NewSemaphore(int(parallel))
		var wg sync.WaitGroup
		for i, ref := range refs {
			wg.Go(func() {
				ctx, _ := newSpan(ctx, "")
				if err := sem.Acquire(ctx); err != nil {
					results[i].err = err
					return
				}
				defer sem.Release()
				src, err := load(ctx, ref)
				if err != nil {
					results[i].err = err
					return
				}
				toks, err := tokenize(ctx, src)
				results[i] = result{
					src:  src,
					toks: toks,
					err:  err,
				}
			})
		}
		wg.Wait()

		status := 0
		for _, res := range results {
			if res.err != nil {
				fmt.Fprintln(stderr, res.err)
				status = 1
				continue
			}

			diags := reports.Collect(res.toks)
			if err := reports.Render(stderr, res.src, diags); err != nil {
				logger.Error("render diagnostics", "error", err)
			}
			if *checkFlag && len(diags) > 0 {
				status = 1
			}

			toks, err := query(ctx, res.toks)
			if err != nil {
				fmt.Fprintln(stderr, err)
				status = 1
				continue
			}

			if *replFlag {
				tap(ctx, string(res.src.Location), toks)
				continue
			}

			if err := outputs.Write(stdout, format, res.src.Location, toks); err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			logger.InfoContext(ctx, "done",
				"location", res.src.Location,
				"summary", outputs.Summary(res.toks),
			)
		}

		return status
	}
}
