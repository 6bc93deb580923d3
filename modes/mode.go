package modes

import "fmt"

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	// tests and local runs, no proxy and no external config files
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	panic(fmt.Errorf("bad mode: %d", m))
}
