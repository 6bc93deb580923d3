package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/toks/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

//go:embed schema.cue
var Schema string

var FileNames = []string{
	"toks.cue",
	".toks.cue",
}

// SearchDirs lists directories searched for config files, most specific first.
type SearchDirs []string

func (Module) Loader(
	dirs SearchDirs,
	logger logs.Logger,
) Loader {
	paths := Discover(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}
	return NewLoader(paths, Schema)
}

func Discover(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range FileNames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
