package tokens

import (
	"testing"
)

func TestKeywordTable(t *testing.T) {
	for _, name := range Keywords() {
		id, ok := LookupKeyword(name)
		if !ok {
			t.Fatalf("%s not found", name)
		}
		if id.String() != name {
			t.Fatalf("got %s", id)
		}
	}
	for _, name := range []string{"Let", "le", "lets", "", "LET"} {
		if _, ok := LookupKeyword(name); ok {
			t.Fatalf("%q should not be a keyword", name)
		}
	}
}

func TestOperatorTable(t *testing.T) {
	for _, sym := range Operators() {
		id, ok := LookupOperator(sym)
		if !ok {
			t.Fatalf("%s not found", sym)
		}
		if id.String() != sym {
			t.Fatalf("got %s", id)
		}
		if len(sym) > MaxOperatorLen {
			t.Fatalf("%s too long", sym)
		}
	}
	if _, ok := LookupOperator("@"); ok {
		t.Fatal()
	}
}

func TestOperatorGroups(t *testing.T) {
	for id := NoOperator + 1; id < numOperators; id++ {
		multi := id < OpPlus
		if got := len(id.String()) > 1; got != multi {
			t.Fatalf("%d %q: multi-character %v", id, id, got)
		}
	}
	if id, ok := LookupOperator("::"); !ok || id != OpColonColon {
		t.Fatalf("got %v", id)
	}
}

func TestKindNames(t *testing.T) {
	for k := Invalid; k <= Whitespace; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Fatalf("got %v", got)
		}
	}

	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	_ = Kind(200).String()
}

func TestTokenString(t *testing.T) {
	tok := Token{
		Kind:   Invalid,
		Reason: MalformedNumber,
		Lexeme: "3.14.5",
		Span: Span{
			End: Pos{Offset: 6},
		},
	}
	if s := tok.String(); s != `Invalid(malformed number "3.14.5")@0-6` {
		t.Fatalf("got %s", s)
	}
	tok = Token{
		Kind:   Keyword,
		Lexeme: "let",
		Span: Span{
			End: Pos{Offset: 3},
		},
	}
	if s := tok.String(); s != "Keyword(let)@0-3" {
		t.Fatalf("got %s", s)
	}
}
