package scans

import (
	"errors"
	"strings"
	"unicode"

	"github.com/reusee/toks/cursors"
	"github.com/reusee/toks/tokens"
)

type scanner struct {
	cursor  *cursors.Cursor
	loc     tokens.Location
	options Options
}

func (s *scanner) next() tokens.Token {
	for {
		start := s.cursor.Pos()
		r := s.cursor.Peek(0)

		switch {

		case r == cursors.EOF:
			return s.token(tokens.EOF, start)

		case isSpace(r):
			s.cursor.AdvanceWhile(isSpace)
			if s.options.RetainTrivia {
				return s.token(tokens.Whitespace, start)
			}
			continue

		case r == '#' || r == '/' && s.cursor.Peek(1) == '/':
			s.cursor.AdvanceWhile(func(r rune) bool {
				return r != '\n'
			})
			if s.options.RetainTrivia {
				return s.token(tokens.Comment, start)
			}
			continue

		case r == '/' && s.cursor.Peek(1) == '*':
			if !s.blockComment() {
				return s.invalid(start, tokens.UnterminatedComment)
			}
			if s.options.RetainTrivia {
				return s.token(tokens.Comment, start)
			}
			continue

		case isLetter(r):
			s.cursor.AdvanceWhile(isIdentChar)
			tok := s.token(tokens.Identifier, start)
			if kw, ok := tokens.LookupKeyword(tok.Lexeme); ok {
				tok.Kind = tokens.Keyword
				tok.Keyword = kw
			}
			return tok

		case isDigit(r):
			return s.number(start)

		case r == '"':
			return s.quoted(start, '"')

		case r == '\'':
			return s.quoted(start, '\'')

		}

		return s.operator(start)
	}
}

func (s *scanner) token(kind tokens.Kind, start tokens.Pos) tokens.Token {
	return tokens.Token{
		Kind: kind,
		Span: tokens.Span{
			Start: start,
			End:   s.cursor.Pos(),
		},
		Location: s.loc,
		Lexeme:   s.cursor.Slice(start.Offset),
	}
}

func (s *scanner) invalid(start tokens.Pos, reason tokens.Reason) tokens.Token {
	tok := s.token(tokens.Invalid, start)
	tok.Reason = reason
	return tok
}

// blockComment consumes a block comment, reporting whether it was closed.
func (s *scanner) blockComment() bool {
	s.cursor.Advance() // /
	s.cursor.Advance() // *
	depth := 1
	for {
		switch r := s.cursor.Peek(0); {
		case r == cursors.EOF:
			return false
		case r == '*' && s.cursor.Peek(1) == '/':
			s.cursor.Advance()
			s.cursor.Advance()
			depth--
			if depth == 0 {
				return true
			}
		case r == '/' && s.cursor.Peek(1) == '*' && s.options.NestedComments:
			s.cursor.Advance()
			s.cursor.Advance()
			depth++
		default:
			s.cursor.Advance()
		}
	}
}

// quoted scans a string or char literal. An unterminated literal stops before the line break.
func (s *scanner) quoted(start tokens.Pos, quote rune) tokens.Token {
	kind, unterminated := tokens.String, tokens.UnterminatedString
	if quote == '\'' {
		kind, unterminated = tokens.Char, tokens.UnterminatedChar
	}

	s.cursor.Advance() // opening quote
	for {
		r := s.cursor.Peek(0)
		if isLineEnd(r, s.cursor.Peek(1)) {
			return s.invalid(start, unterminated)
		}
		s.cursor.Advance()
		switch r {
		case '\\':
			if !isLineEnd(s.cursor.Peek(0), s.cursor.Peek(1)) {
				s.cursor.Advance()
			}
		case quote:
			tok := s.token(kind, start)
			var err error
			if kind == tokens.Char {
				_, err = tokens.UnquoteChar(tok.Lexeme)
			} else {
				_, err = tokens.Unquote(tok.Lexeme)
			}
			switch {
			case errors.Is(err, tokens.ErrInvalidEscape):
				tok.Kind = tokens.Invalid
				tok.Reason = tokens.InvalidEscape
			case err != nil:
				tok.Kind = tokens.Invalid
				tok.Reason = tokens.InvalidChar
			}
			return tok
		}
	}
}

// operator matches the longest symbol at the cursor.
func (s *scanner) operator(start tokens.Pos) tokens.Token {
	for n := tokens.MaxOperatorLen; n > 0; n-- {
		sym, ok := s.peekString(n)
		if !ok {
			continue
		}
		op, ok := tokens.LookupOperator(sym)
		if !ok {
			continue
		}
		for range n {
			s.cursor.Advance()
		}
		tok := s.token(tokens.Operator, start)
		tok.Operator = op
		return tok
	}
	s.cursor.Advance()
	return s.invalid(start, tokens.UnexpectedCharacter)
}

func (s *scanner) peekString(n int) (string, bool) {
	var b strings.Builder
	for i := range n {
		r := s.cursor.Peek(i)
		if r == cursors.EOF {
			return "", false
		}
		b.WriteRune(r)
	}
	return b.String(), true
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isLineEnd(r rune, next rune) bool {
	return r == cursors.EOF || r == '\n' || r == '\r' && next == '\n'
}

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentChar(r rune) bool {
	return isLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
