package tokens

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidEscape = errors.New("invalid escape")
	ErrInvalidChar   = errors.New("invalid char literal")
	ErrNotQuoted     = errors.New("not a quoted literal")
)

// Int parses an Integer token. Prefixed forms (0x, 0o, 0b) and digit separators are accepted.
func (t Token) Int() (int64, error) {
	if t.Kind != Integer {
		return 0, t.mismatch("int")
	}
	digits := strings.ReplaceAll(t.Lexeme, "_", "")
	base := 10
	if len(digits) > 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 10 {
			digits = digits[2:]
		}
	}
	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", t.Where(), err)
	}
	return v, nil
}

func (t Token) Float() (float64, error) {
	if t.Kind != Float {
		return 0, t.mismatch("float")
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(t.Lexeme, "_", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", t.Where(), err)
	}
	return v, nil
}

// Text returns the decoded payload: string and char bodies are unescaped,
// comment markers are stripped, other kinds yield their lexeme.
func (t Token) Text() (string, error) {
	switch t.Kind {
	case Invalid, EOF:
		return "", t.mismatch("text")
	case String, Char:
		s, err := Unquote(t.Lexeme)
		if err != nil {
			return "", fmt.Errorf("%s: %w", t.Where(), err)
		}
		return s, nil
	case Comment:
		return CommentBody(t.Lexeme), nil
	case Identifier, Keyword, Integer, Float, Operator, Whitespace:
		return t.Lexeme, nil
	}
	panic(fmt.Errorf("unknown token kind %d", uint8(t.Kind)))
}

func (t Token) mismatch(want string) error {
	return &UnexpectedError{
		Token:    t,
		Expected: want,
	}
}

// CommentBody strips comment markers and surrounding blanks.
func CommentBody(lexeme string) string {
	switch {
	case strings.HasPrefix(lexeme, "//"):
		lexeme = lexeme[2:]
	case strings.HasPrefix(lexeme, "#"):
		lexeme = lexeme[1:]
	case strings.HasPrefix(lexeme, "/*"):
		lexeme = strings.TrimSuffix(lexeme[2:], "*/")
	}
	return strings.TrimSpace(lexeme)
}

// Unquote decodes a complete string or char literal, quotes included.
func Unquote(lexeme string) (string, error) {
	if len(lexeme) < 2 {
		return "", fmt.Errorf("%w: %q", ErrNotQuoted, lexeme)
	}
	quote := lexeme[0]
	if quote != '"' && quote != '\'' || lexeme[len(lexeme)-1] != quote {
		return "", fmt.Errorf("%w: %q", ErrNotQuoted, lexeme)
	}
	body := lexeme[1 : len(lexeme)-1]
	if !strings.Contains(body, `\`) {
		return body, nil
	}
	var b strings.Builder
	for i := 0; i < len(body); {
		if body[i] != '\\' {
			_, w := utf8.DecodeRuneInString(body[i:])
			b.WriteString(body[i : i+w])
			i += w
			continue
		}
		r, n, err := decodeEscape(body[i:])
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
		i += n
	}
	return b.String(), nil
}

// UnquoteChar decodes a char literal holding exactly one character.
func UnquoteChar(lexeme string) (rune, error) {
	s, err := Unquote(lexeme)
	if err != nil {
		return 0, err
	}
	r, w := utf8.DecodeRuneInString(s)
	if w == 0 || w != len(s) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidChar, lexeme)
	}
	return r, nil
}

// decodeEscape decodes the escape sequence at the start of s, which begins with a backslash.
func decodeEscape(s string) (r rune, n int, err error) {
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidEscape, s)
	}
	switch s[1] {
	case 'n':
		return '\n', 2, nil
	case 't':
		return '\t', 2, nil
	case 'r':
		return '\r', 2, nil
	case '0':
		return 0, 2, nil
	case '\\':
		return '\\', 2, nil
	case '"':
		return '"', 2, nil
	case '\'':
		return '\'', 2, nil
	case 'x':
		// ascii only, keeps decoded text valid utf-8
		if len(s) < 4 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidEscape, s)
		}
		v, err := strconv.ParseUint(s[2:4], 16, 8)
		if err != nil || v > 0x7f {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidEscape, s[:4])
		}
		return rune(v), 4, nil
	case 'u':
		if len(s) < 3 || s[2] != '{' {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidEscape, s[:2])
		}
		end := strings.IndexByte(s, '}')
		if end < 0 || end-3 < 1 || end-3 > 6 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidEscape, s[:min(len(s), 10)])
		}
		v, err := strconv.ParseUint(s[3:end], 16, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidEscape, s[:end+1])
		}
		return rune(v), end + 1, nil
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrInvalidEscape, s[:2])
}
