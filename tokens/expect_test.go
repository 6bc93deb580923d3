package tokens

import (
	"errors"
	"testing"
)

func at(kind Kind, lexeme string) Token {
	return Token{
		Kind:     kind,
		Lexeme:   lexeme,
		Location: "test.tk",
		Span: Span{
			Start: Pos{Offset: 0, Line: 1, Column: 1},
			End:   Pos{Offset: len(lexeme), Line: 1, Column: 1 + len(lexeme)},
		},
	}
}

func TestExpectString(t *testing.T) {
	s, err := at(String, `"jaja"`).ExpectString("msg")
	if err != nil {
		t.Fatal(err)
	}
	if s != "jaja" {
		t.Fatalf("got %q", s)
	}

	_, err = at(Identifier, "jaja").ExpectString("msg")
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Fatalf("got %v", err)
	}
	if err.Error() != "test.tk:1:1: expected msg, got identifier 'jaja'" {
		t.Fatalf("got %v", err)
	}
}

func TestExpectIdentifier(t *testing.T) {
	s, err := at(Identifier, "jaja").ExpectIdentifier("msg")
	if err != nil {
		t.Fatal(err)
	}
	if s != "jaja" {
		t.Fatalf("got %q", s)
	}

	_, err = at(String, `"jaja"`).ExpectIdentifier("msg")
	if err == nil || err.Error() != `test.tk:1:1: expected msg, got string "jaja"` {
		t.Fatalf("got %v", err)
	}
}

func TestExpectComment(t *testing.T) {
	s, err := at(Comment, "# jaja").ExpectComment("msg")
	if err != nil {
		t.Fatal(err)
	}
	if s != "jaja" {
		t.Fatalf("got %q", s)
	}
	_, err = at(Identifier, "jaja").ExpectComment("msg")
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Fatalf("got %v", err)
	}
}

func TestExpectNumbers(t *testing.T) {
	i, err := at(Integer, "123").ExpectInt("msg")
	if err != nil {
		t.Fatal(err)
	}
	if i != 123 {
		t.Fatalf("got %v", i)
	}
	f, err := at(Float, "123.0").ExpectFloat("msg")
	if err != nil {
		t.Fatal(err)
	}
	if f != 123.0 {
		t.Fatalf("got %v", f)
	}

	_, err = at(String, `"jaja"`).ExpectInt("msg")
	if err == nil || err.Error() != `test.tk:1:1: expected msg, got string "jaja"` {
		t.Fatalf("got %v", err)
	}
	_, err = at(Integer, "1").ExpectFloat("msg")
	if err == nil || err.Error() != `test.tk:1:1: expected msg, got int '1'` {
		t.Fatalf("got %v", err)
	}
}

func TestExpectSymbols(t *testing.T) {
	tok := at(Operator, "==")
	tok.Operator = OpEq
	if err := tok.ExpectOperator("'=='", OpEq); err != nil {
		t.Fatal(err)
	}
	err := tok.ExpectOperator("'='", OpAssign)
	if err == nil || err.Error() != `test.tk:1:1: expected '=', got symbol '=='` {
		t.Fatalf("got %v", err)
	}

	kw := at(Keyword, "let")
	kw.Keyword = KwLet
	if err := kw.ExpectKeyword("let", KwLet); err != nil {
		t.Fatal(err)
	}
	if err := kw.ExpectKeyword("fn", KwFn); !errors.Is(err, ErrUnexpectedToken) {
		t.Fatalf("got %v", err)
	}
}
