package tokens

import "fmt"

// Reason explains why a token is Invalid.
type Reason uint8

const (
	NoReason Reason = iota
	UnexpectedCharacter
	UnterminatedString
	UnterminatedChar
	UnterminatedComment
	MalformedNumber
	InvalidEscape
	InvalidChar
)

func (r Reason) String() string {
	switch r {
	case NoReason:
		return ""
	case UnexpectedCharacter:
		return "unexpected character"
	case UnterminatedString:
		return "unterminated string"
	case UnterminatedChar:
		return "unterminated char"
	case UnterminatedComment:
		return "unterminated comment"
	case MalformedNumber:
		return "malformed number"
	case InvalidEscape:
		return "invalid escape"
	case InvalidChar:
		return "invalid char literal"
	}
	panic(fmt.Errorf("unknown reason %d", uint8(r)))
}

// Code is a stable identifier for tooling.
func (r Reason) Code() string {
	switch r {
	case NoReason:
		return ""
	case UnexpectedCharacter:
		return "LEX_UNEXPECTED_CHARACTER"
	case UnterminatedString:
		return "LEX_UNTERMINATED_STRING"
	case UnterminatedChar:
		return "LEX_UNTERMINATED_CHAR"
	case UnterminatedComment:
		return "LEX_UNTERMINATED_COMMENT"
	case MalformedNumber:
		return "LEX_MALFORMED_NUMBER"
	case InvalidEscape:
		return "LEX_INVALID_ESCAPE"
	case InvalidChar:
		return "LEX_INVALID_CHAR"
	}
	panic(fmt.Errorf("unknown reason %d", uint8(r)))
}
