package scans

import (
	"fmt"
	"unicode/utf8"

	"github.com/reusee/toks/cursors"
	"github.com/reusee/toks/tokens"
)

// Tokenize prepares a Stream over text. Lexical errors never fail the call,
// they surface as Invalid tokens in the stream.
func Tokenize(text string, loc tokens.Location, opts ...Option) (*Stream, error) {
	if loc == "" {
		return nil, ErrEmptyLocation
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: %s: byte offset %d", ErrInvalidEncoding, loc, firstInvalidByte(text))
	}
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	return &Stream{
		scanner: &scanner{
			cursor:  cursors.New(text),
			loc:     loc,
			options: options,
		},
	}, nil
}

// Collect tokenizes text fully.
func Collect(text string, loc tokens.Location, opts ...Option) ([]tokens.Token, error) {
	stream, err := Tokenize(text, loc, opts...)
	if err != nil {
		return nil, err
	}
	return stream.Collect(), nil
}

func firstInvalidByte(text string) int {
	for i := 0; i < len(text); {
		r, w := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && w == 1 {
			return i
		}
		i += w
	}
	return -1
}
