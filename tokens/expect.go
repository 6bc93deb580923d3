package tokens

import (
	"errors"
	"fmt"
)

var ErrUnexpectedToken = errors.New("unexpected token")

type UnexpectedError struct {
	Token    Token
	Expected string
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Token.Where(), e.Expected, e.Token.Describe())
}

func (e *UnexpectedError) Is(target error) bool {
	return target == ErrUnexpectedToken
}

func (t Token) expect(kind Kind, what string) error {
	if t.Kind != kind {
		return &UnexpectedError{
			Token:    t,
			Expected: what,
		}
	}
	return nil
}

func (t Token) ExpectIdentifier(what string) (string, error) {
	if err := t.expect(Identifier, what); err != nil {
		return "", err
	}
	return t.Lexeme, nil
}

func (t Token) ExpectString(what string) (string, error) {
	if err := t.expect(String, what); err != nil {
		return "", err
	}
	return t.Text()
}

func (t Token) ExpectComment(what string) (string, error) {
	if err := t.expect(Comment, what); err != nil {
		return "", err
	}
	return CommentBody(t.Lexeme), nil
}

func (t Token) ExpectInt(what string) (int64, error) {
	if err := t.expect(Integer, what); err != nil {
		return 0, err
	}
	return t.Int()
}

func (t Token) ExpectFloat(what string) (float64, error) {
	if err := t.expect(Float, what); err != nil {
		return 0, err
	}
	return t.Float()
}

func (t Token) ExpectOperator(what string, op OperatorID) error {
	if !t.IsOperator(op) {
		return &UnexpectedError{
			Token:    t,
			Expected: what,
		}
	}
	return nil
}

func (t Token) ExpectKeyword(what string, kw KeywordID) error {
	if !t.IsKeyword(kw) {
		return &UnexpectedError{
			Token:    t,
			Expected: what,
		}
	}
	return nil
}
