package queries

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/toks/scans"
	"github.com/reusee/toks/tokens"
)

func scan(t *testing.T, text string) []tokens.Token {
	t.Helper()
	toks, err := scans.Collect(text, "a.tk", scans.RetainTrivia(true))
	if err != nil {
		t.Fatal(err)
	}
	return toks
}

func lexemes(toks []tokens.Token) string {
	var strs []string
	for _, tok := range toks {
		strs = append(strs, tok.Lexeme)
	}
	return strings.Join(strs, " ")
}

func TestFilter(t *testing.T) {
	toks := scan(t, "let x = 1; // one\nfn f() {}")
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{
			name: "keywords",
			script: `
def keep(tok):
    return tok.kind == "Keyword"
`,
			want: "let fn",
		},
		{
			name: "no trivia",
			script: `
def keep(tok):
    return not is_trivia(tok.kind) and tok.kind != "EOF"
`,
			want: "let x = 1 ; fn f ( ) { }",
		},
		{
			name: "operators by symbol",
			script: `
wanted = {"(": True, ")": True}
def keep(tok):
    return wanted.get(tok.operator, False)
`,
			want: "( )",
		},
		{
			name: "positions",
			script: `
def keep(tok):
    return tok.line == 2 and tok.column == 1
`,
			want: "fn",
		},
		{
			name: "literals",
			script: `
def keep(tok):
    if is_literal(tok.kind):
        return tok.end - tok.offset
    return 0
`,
			want: "1",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Filter(context.Background(), test.name+".star", test.script, toks)
			if err != nil {
				t.Fatal(err)
			}
			if s := lexemes(got); s != test.want {
				t.Fatalf("got %q", s)
			}
		})
	}
}

func TestFilterInvalidTokens(t *testing.T) {
	toks := scan(t, `x @ "open`)
	got, err := Filter(context.Background(), "invalid.star", `
def keep(tok):
    return tok.reason != ""
`, toks)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Reason != tokens.UnexpectedCharacter || got[1].Reason != tokens.UnterminatedString {
		t.Fatalf("got %v", got)
	}
}

func TestFilterErrors(t *testing.T) {
	toks := scan(t, "a")

	_, err := Filter(context.Background(), "nokeep.star", "x = 1", toks)
	if !errors.Is(err, ErrNoKeepFunc) {
		t.Fatalf("got %v", err)
	}

	_, err = Filter(context.Background(), "syntax.star", "def keep(tok", toks)
	if err == nil || !strings.Contains(err.Error(), "syntax.star") {
		t.Fatalf("got %v", err)
	}

	_, err = Filter(context.Background(), "fail.star", `
def keep(tok):
    return tok.nope
`, toks)
	if err == nil || !strings.Contains(err.Error(), "a.tk:1:1") {
		t.Fatalf("got %v", err)
	}
}

func TestFilterCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Filter(ctx, "loop.star", `
def keep(tok):
    while True:
        pass
`, scan(t, "a"))
	if err == nil {
		t.Fatal("should error")
	}
}
