package reports

import (
	"errors"
	"fmt"
	"strings"

	"github.com/reusee/toks/tokens"
	"github.com/samber/lo"
)

// Diagnostic describes one lexical error found in an input.
type Diagnostic struct {
	Location tokens.Location
	Span     tokens.Span
	Reason   tokens.Reason
	Lexeme   string
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s:%s: %s %q", d.Location, d.Span.Start, d.Reason, shortLexeme(d.Lexeme))
}

const maxLexemeRunes = 40

// only the first line, truncated
func shortLexeme(lexeme string) string {
	line, _, cut := strings.Cut(lexeme, "\n")
	line = strings.TrimSuffix(line, "\r")
	if runes := []rune(line); len(runes) > maxLexemeRunes {
		return string(runes[:maxLexemeRunes]) + "..."
	}
	if cut {
		return line + "..."
	}
	return line
}

func FromToken(tok tokens.Token) Diagnostic {
	return Diagnostic{
		Location: tok.Location,
		Span:     tok.Span,
		Reason:   tok.Reason,
		Lexeme:   tok.Lexeme,
	}
}

// Collect returns a Diagnostic for every Invalid token, in stream order.
func Collect(toks []tokens.Token) []Diagnostic {
	return lo.FilterMap(toks, func(tok tokens.Token, _ int) (Diagnostic, bool) {
		if tok.Kind != tokens.Invalid {
			return Diagnostic{}, false
		}
		return FromToken(tok), true
	})
}

// Err joins all diagnostics of toks, or returns nil if there are none.
func Err(toks []tokens.Token) error {
	diags := Collect(toks)
	if len(diags) == 0 {
		return nil
	}
	return errors.Join(lo.Map(diags, func(d Diagnostic, _ int) error {
		return d
	})...)
}
