package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/toks/cmds"
	"github.com/reusee/toks/modes"
)

var fileFlags = cmds.Collect[string]("file", "input path or http(s) URL, - for stdin, repeatable")

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, cmds.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	refs := *fileFlags
	if len(refs) == 0 {
		refs = []string{"-"}
	}

	var status int
	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		run Run,
	) {
		status = run(context.Background(), refs)
	})
	os.Exit(status)
}
