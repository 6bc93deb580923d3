package sources

import (
	"strings"
	"sync"

	"github.com/reusee/toks/tokens"
)

type Source struct {
	Location tokens.Location
	Text     string

	lineStarts func() []int
}

func NewSource(loc tokens.Location, text string) *Source {
	return &Source{
		Location: loc,
		Text:     text,
		lineStarts: sync.OnceValue(func() []int {
			starts := []int{0}
			for i := 0; i < len(text); i++ {
				if text[i] == '\n' {
					starts = append(starts, i+1)
				}
			}
			return starts
		}),
	}
}

// Line returns the text of the 1-based line n without its line break, or "" when out of range.
func (s *Source) Line(n int) string {
	starts := s.lineStarts()
	if n < 1 || n > len(starts) {
		return ""
	}
	start := starts[n-1]
	end := len(s.Text)
	if n < len(starts) {
		end = starts[n] - 1
	}
	return strings.TrimSuffix(s.Text[start:end], "\r")
}

func (s *Source) NumLines() int {
	return len(s.lineStarts())
}
