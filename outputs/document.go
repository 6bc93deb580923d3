package outputs

import (
	"github.com/reusee/toks/tokens"
	"github.com/samber/lo"
)

type Document struct {
	Location string   `json:"location" yaml:"location" toml:"location"`
	Tokens   []Record `json:"tokens" yaml:"tokens" toml:"tokens"`
}

type Record struct {
	Kind     string   `json:"kind" yaml:"kind" toml:"kind"`
	Keyword  string   `json:"keyword,omitempty" yaml:"keyword,omitempty" toml:"keyword,omitempty"`
	Operator string   `json:"operator,omitempty" yaml:"operator,omitempty" toml:"operator,omitempty"`
	Reason   string   `json:"reason,omitempty" yaml:"reason,omitempty" toml:"reason,omitempty"`
	Start    Position `json:"start" yaml:"start" toml:"start"`
	End      Position `json:"end" yaml:"end" toml:"end"`
	Lexeme   string   `json:"lexeme" yaml:"lexeme" toml:"lexeme"`
}

type Position struct {
	Offset int `json:"offset" yaml:"offset" toml:"offset"`
	Line   int `json:"line" yaml:"line" toml:"line"`
	Column int `json:"column" yaml:"column" toml:"column"`
}

func NewDocument(loc tokens.Location, toks []tokens.Token) Document {
	return Document{
		Location: string(loc),
		Tokens:   lo.Map(toks, func(tok tokens.Token, _ int) Record {
			return NewRecord(tok)
		}),
	}
}

func NewRecord(tok tokens.Token) Record {
	ret := Record{
		Kind:   tok.Kind.String(),
		Start:  position(tok.Span.Start),
		End:    position(tok.Span.End),
		Lexeme: tok.Lexeme,
	}
	switch tok.Kind {
	case tokens.Keyword:
		ret.Keyword = tok.Keyword.String()
	case tokens.Operator:
		ret.Operator = tok.Operator.String()
	case tokens.Invalid:
		ret.Reason = tok.Reason.Code()
	}
	return ret
}

func position(pos tokens.Pos) Position {
	return Position{
		Offset: pos.Offset,
		Line:   pos.Line,
		Column: pos.Column,
	}
}
