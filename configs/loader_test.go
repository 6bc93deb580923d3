package configs

import (
	"errors"
	"fmt"
	"testing"
)

func TestLookup(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, Schema)

	format, err := Lookup[string](loader, "format")
	if err != nil {
		t.Fatal(err)
	}
	if format != "json" {
		t.Fatalf("got %q", format)
	}

	n, err := Lookup[int](loader, "parallel")
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("got %d", n)
	}

	_, err = Lookup[bool](loader, "nested_comments")
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

	_, err = Lookup[int](loader, "format")
	if err == nil {
		t.Fatal("should error")
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, Schema)

	var strs []string
	for value, err := range loader.IterCueValues("format") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[json yaml]" {
		t.Fatalf("got %q", str)
	}

	strs = strs[:0]
	for str, err := range All[string](loader, "format") {
		if err != nil {
			t.Fatal(err)
		}
		strs = append(strs, str)
	}
	if str := fmt.Sprintf("%v", strs); str != "[json yaml]" {
		t.Fatalf("got %q", str)
	}

	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, Schema)
	_, err := Lookup[string](loader, "unknown_field")
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestBadFormat(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad_format.cue",
	}, Schema)
	if _, err := Lookup[string](loader, "format"); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/not_exists.cue",
	}, Schema)
	if _, err := loader.Paths(); err == nil {
		t.Fatal("should error")
	}
}
