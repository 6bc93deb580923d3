package scans

import (
	"github.com/reusee/toks/tokens"
)

// number consumes the maximal number-like run and classifies it as a whole.
// A run that is not a valid literal becomes a single MalformedNumber token,
// so 3.14.5 or 1e5e5 never split into several tokens.
func (s *scanner) number(start tokens.Pos) tokens.Token {
	decimal := !(s.cursor.Peek(0) == '0' && isRadixLetter(s.cursor.Peek(1)))
	var prev rune
	for {
		r := s.cursor.Peek(0)
		switch {
		case isASCIIAlnum(r) || r == '_' || r == '.':
		case (r == '+' || r == '-') && decimal && (prev == 'e' || prev == 'E'):
		default:
			kind, ok := classifyNumber(s.cursor.Slice(start.Offset))
			if !ok {
				return s.invalid(start, tokens.MalformedNumber)
			}
			return s.token(kind, start)
		}
		s.cursor.Advance()
		prev = r
	}
}

func classifyNumber(run string) (tokens.Kind, bool) {
	if len(run) >= 2 && run[0] == '0' && isRadixLetter(rune(run[1])) {
		var fn func(byte) bool
		switch run[1] {
		case 'x', 'X':
			fn = isHexByte
		case 'o', 'O':
			fn = isOctalByte
		case 'b', 'B':
			fn = isBinaryByte
		}
		digits := run[2:]
		return tokens.Integer, len(digits) > 0 && scanDigits(digits, 0, fn) == len(digits)
	}

	kind := tokens.Integer
	i := scanDigits(run, 0, isDecimalByte)
	if i == 0 {
		return kind, false
	}

	// fraction
	if i < len(run) && run[i] == '.' {
		j := scanDigits(run, i+1, isDecimalByte)
		if j == i+1 {
			return kind, false
		}
		i = j
		kind = tokens.Float
	}

	// exponent
	if i < len(run) && (run[i] == 'e' || run[i] == 'E') {
		k := i + 1
		if k < len(run) && (run[k] == '+' || run[k] == '-') {
			k++
		}
		j := scanDigits(run, k, isDecimalByte)
		if j == k {
			return kind, false
		}
		i = j
		kind = tokens.Float
	}

	return kind, i == len(run)
}

// scanDigits returns the index after the digits starting at from. Underscores are allowed between two digits.
func scanDigits(s string, from int, isDigit func(byte) bool) int {
	i := from
	for i < len(s) {
		c := s[i]
		if isDigit(c) {
			i++
			continue
		}
		if c == '_' && i > from && isDigit(s[i-1]) && i+1 < len(s) && isDigit(s[i+1]) {
			i++
			continue
		}
		break
	}
	return i
}

func isRadixLetter(r rune) bool {
	switch r {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

func isASCIIAlnum(r rune) bool {
	return r >= '0' && r <= '9' ||
		r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z'
}

func isDecimalByte(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexByte(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'f' ||
		c >= 'A' && c <= 'F'
}

func isOctalByte(c byte) bool {
	return c >= '0' && c <= '7'
}

func isBinaryByte(c byte) bool {
	return c == '0' || c == '1'
}
