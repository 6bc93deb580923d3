package outputs

import (
	"fmt"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var ErrUnknownFormat = fmt.Errorf("unknown format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s)
}
