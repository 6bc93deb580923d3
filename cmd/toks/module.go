package main

import (
	"cmp"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/toks/cmds"
	"github.com/reusee/toks/configs"
	"github.com/reusee/toks/outputs"
	"github.com/reusee/toks/queries"
	"github.com/reusee/toks/scans"
	"github.com/reusee/toks/sources"
)

type Module struct {
	dscope.Module
	Scans   scans.Module
	Sources sources.Module
	Outputs outputs.Module
	Queries queries.Module
}

type (
	Stdout io.Writer
	Stderr io.Writer
)

func (Module) Stdout() Stdout {
	return os.Stdout
}

func (Module) Stderr() Stderr {
	return os.Stderr
}

var parallelFlag = cmds.Var[int]("parallel", "number of inputs tokenized at once")

type Parallel int

type GetParallel func() (Parallel, error)

func (Module) GetParallel(
	loader configs.Loader,
) GetParallel {
	return sync.OnceValues(func() (Parallel, error) {
		n, err := configs.First[int](loader, "parallel")
		if err != nil {
			return 0, err
		}
		return Parallel(cmp.Or(
			max(*parallelFlag, 0),
			n,
			runtime.NumCPU(),
		)), nil
	})
}
