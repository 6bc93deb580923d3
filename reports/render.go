package reports

import (
	"fmt"
	"io"
	"strings"

	"github.com/reusee/toks/sources"
	"golang.org/x/text/width"
)

// Render prints each diagnostic with its source line and a marker under the offending text.
func Render(w io.Writer, src *sources.Source, diags []Diagnostic) error {
	for _, d := range diags {
		if _, err := fmt.Fprintln(w, d.Error()); err != nil {
			return err
		}
		line := src.Line(d.Span.Start.Line)
		if _, err := fmt.Fprintf(w, "%s\n%s\n", line, marker(line, d)); err != nil {
			return err
		}
	}
	return nil
}

func marker(line string, d Diagnostic) string {
	var b strings.Builder
	runes := []rune(line)
	col := d.Span.Start.Column - 1
	for _, r := range runes[:min(col, len(runes))] {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteString(strings.Repeat(" ", cells(r)))
	}
	b.WriteByte('^')

	// underline the rest of the token on this line
	lexeme, _, _ := strings.Cut(d.Lexeme, "\n")
	n := 0
	for i, r := range strings.TrimSuffix(lexeme, "\r") {
		if i == 0 {
			n += cells(r) - 1
			continue
		}
		n += cells(r)
	}
	b.WriteString(strings.Repeat("~", max(n, 0)))
	return b.String()
}

func cells(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
