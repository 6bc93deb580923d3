package modes

import (
	"os"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/toks/configs"
)

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	return ModeProduction
}

func (ModuleForProduction) SearchDirs() (ret configs.SearchDirs) {
	// working directory
	if dir, err := os.Getwd(); err == nil {
		ret = append(ret, dir)
	}
	// user config dir
	if dir, err := os.UserConfigDir(); err == nil {
		ret = append(ret, dir)
	}
	// system wide dir
	ret = append(ret, "/etc")
	return
}
