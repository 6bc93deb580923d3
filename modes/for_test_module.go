package modes

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/toks/configs"
)

// ModuleForTest runs in development mode with no config files discovered.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (m ModuleForTest) Mode() Mode {
	return ModeDevelopment
}

func (m ModuleForTest) SearchDirs() configs.SearchDirs {
	return nil
}
