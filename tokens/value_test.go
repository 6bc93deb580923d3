package tokens

import (
	"errors"
	"testing"
)

func TestInt(t *testing.T) {
	tests := []struct {
		lexeme string
		want   int64
	}{
		{"0", 0},
		{"12345", 12345},
		{"1_000_000", 1000000},
		{"0x_ff", 255},
		{"0xff", 255},
		{"0XFF", 255},
		{"0o17", 15},
		{"0b1010", 10},
		{"017", 17},
	}
	for _, test := range tests {
		t.Run(test.lexeme, func(t *testing.T) {
			tok := Token{Kind: Integer, Lexeme: test.lexeme, Location: "test"}
			got, err := tok.Int()
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Fatalf("got %v", got)
			}
		})
	}
}

func TestIntOutOfRange(t *testing.T) {
	tok := Token{Kind: Integer, Lexeme: "99999999999999999999", Location: "test"}
	_, err := tok.Int()
	if err == nil {
		t.Fatal("should error")
	}
}

func TestFloat(t *testing.T) {
	tok := Token{Kind: Float, Lexeme: "12345.6789", Location: "test"}
	f, err := tok.Float()
	if err != nil {
		t.Fatal(err)
	}
	if f != 12345.6789 {
		t.Fatalf("got %v", f)
	}

	tok = Token{Kind: Float, Lexeme: "1_0.5e-1", Location: "test"}
	f, err = tok.Float()
	if err != nil {
		t.Fatal(err)
	}
	if f != 1.05 {
		t.Fatalf("got %v", f)
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		lexeme string
		want   string
		err    error
	}{
		{`"This is a string"`, "This is a string", nil},
		{`"with \"escaping\" characters"`, `with "escaping" characters`, nil},
		{`"with # hash"`, "with # hash", nil},
		{`"a\nb\tc\rd\\e\0"`, "a\nb\tc\rd\\e\x00", nil},
		{`"\x41\u{1F600}"`, "A\U0001F600", nil},
		{`'\''`, "'", nil},
		{`"\q"`, "", ErrInvalidEscape},
		{`"\xff"`, "", ErrInvalidEscape},
		{`"\x4"`, "", ErrInvalidEscape},
		{`"\u{}"`, "", ErrInvalidEscape},
		{`"\u{D800}"`, "", ErrInvalidEscape},
		{`"\u{1234567}"`, "", ErrInvalidEscape},
		{`"\u41"`, "", ErrInvalidEscape},
		{`"abc`, "", ErrNotQuoted},
		{`"`, "", ErrNotQuoted},
	}
	for _, test := range tests {
		t.Run(test.lexeme, func(t *testing.T) {
			got, err := Unquote(test.lexeme)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Fatalf("got %q", got)
			}
		})
	}
}

func TestUnquoteChar(t *testing.T) {
	r, err := UnquoteChar(`'é'`)
	if err != nil {
		t.Fatal(err)
	}
	if r != 'é' {
		t.Fatalf("got %q", r)
	}

	for _, lexeme := range []string{`''`, `'ab'`} {
		_, err := UnquoteChar(lexeme)
		if !errors.Is(err, ErrInvalidChar) {
			t.Fatalf("%s: got %v", lexeme, err)
		}
	}
}

func TestText(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: String, Lexeme: `"a\tb"`}, "a\tb"},
		{Token{Kind: Char, Lexeme: `'\n'`}, "\n"},
		{Token{Kind: Comment, Lexeme: "# This is a comment"}, "This is a comment"},
		{Token{Kind: Comment, Lexeme: "//x"}, "x"},
		{Token{Kind: Comment, Lexeme: "/* block */"}, "block"},
		{Token{Kind: Identifier, Lexeme: "my_variable"}, "my_variable"},
	}
	for _, test := range tests {
		got, err := test.tok.Text()
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want {
			t.Fatalf("got %q", got)
		}
	}

	_, err := Token{Kind: EOF, Location: "test"}.Text()
	if !errors.Is(err, ErrUnexpectedToken) {
		t.Fatalf("got %v", err)
	}
}
