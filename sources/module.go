package sources

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/toks/logs"
	"github.com/reusee/toks/nets"
)

type Module struct {
	dscope.Module
	Logs logs.Module
	Nets nets.Module
}

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}
