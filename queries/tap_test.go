package queries

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/toks/modes"
	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

func TestTap(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", scan(t, "let x = 1;"))
	})
}

func TestTokenList(t *testing.T) {
	list := tokenList(scan(t, "let x"))
	if list.Len() != 4 {
		t.Fatalf("got %v", list)
	}
	tok := list.Index(0).(*starlarkstruct.Struct)
	kw, err := tok.Attr("keyword")
	if err != nil {
		t.Fatal(err)
	}
	if kw != starlark.String("let") {
		t.Fatalf("got %v", kw)
	}
	end, err := tok.Attr("end")
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := end.(starlark.Int).Int64(); !ok || n != 3 {
		t.Fatalf("got %v", end)
	}
}
