package scans

import (
	"iter"
	"slices"

	"github.com/reusee/toks/tokens"
)

// Stream yields the tokens of one input on demand, ending with a single EOF token.
// It is single-pass and must not be read from more than one goroutine.
type Stream struct {
	scanner *scanner
	done    bool
}

func (s *Stream) Next() (tokens.Token, bool) {
	if s.done {
		return tokens.Token{}, false
	}
	tok := s.scanner.next()
	if tok.Kind == tokens.EOF {
		s.done = true
	}
	return tok, true
}

func (s *Stream) All() iter.Seq[tokens.Token] {
	return func(yield func(tokens.Token) bool) {
		for {
			tok, ok := s.Next()
			if !ok {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

func (s *Stream) Collect() []tokens.Token {
	return slices.Collect(s.All())
}
