package tokens

import "fmt"

// Location labels the source unit being tokenized, usually a path or URL.
type Location string

type Pos struct {
	Offset int // byte offset, from 0
	Line   int // from 1
	Column int // in characters, from 1
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span covers [Start, End) of the source text.
type Span struct {
	Start Pos
	End   Pos
}

func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

func (s Span) Empty() bool {
	return s.Start.Offset == s.End.Offset
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start.Offset, s.End.Offset)
}
