package outputs

import (
	"cmp"
	"sync"

	"github.com/reusee/dscope"
	"github.com/reusee/toks/cmds"
	"github.com/reusee/toks/configs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
}

var formatFlag = cmds.Var[string]("format", "output format: text, json, yaml or toml")

// GetFormat resolves the output format from the command line, then config, defaulting to text.
type GetFormat func() (Format, error)

func (Module) GetFormat(
	loader configs.Loader,
) GetFormat {
	return sync.OnceValues(func() (Format, error) {
		name, err := configs.First[string](loader, "format")
		if err != nil {
			return "", err
		}
		return ParseFormat(cmp.Or(
			*formatFlag,
			name,
			string(FormatText),
		))
	})
}
