package outputs

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/reusee/toks/tokens"
	"go.yaml.in/yaml/v3"
)

// Write renders the tokens of one input in format.
func Write(w io.Writer, format Format, loc tokens.Location, toks []tokens.Token) error {
	switch format {

	case FormatText:
		for _, tok := range toks {
			if _, err := fmt.Fprintf(w, "%s-%s\t%s\t%q\n",
				tok.Span.Start,
				tok.Span.End,
				kindLabel(tok),
				tok.Lexeme,
			); err != nil {
				return err
			}
		}
		return nil

	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(NewDocument(loc, toks))

	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(NewDocument(loc, toks)); err != nil {
			return err
		}
		return encoder.Close()

	case FormatTOML:
		return toml.NewEncoder(w).Encode(NewDocument(loc, toks))

	}
	return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}

func kindLabel(tok tokens.Token) string {
	switch tok.Kind {
	case tokens.Keyword:
		return "Keyword/" + tok.Keyword.String()
	case tokens.Operator:
		return "Operator/" + tok.Operator.String()
	case tokens.Invalid:
		return "Invalid/" + tok.Reason.Code()
	}
	return tok.Kind.String()
}
