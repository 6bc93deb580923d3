package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, Schema)

	format, err := First[string](loader, "format")
	if err != nil {
		t.Fatal(err)
	}
	if format != "json" {
		t.Fatalf("got %v", format)
	}
	if b, err := First[bool](loader, "retain_trivia"); err != nil || !b {
		t.Fatalf("got %v, %v", b, err)
	}
	if b, err := First[bool](loader, "nested_comments"); err != nil || !b {
		t.Fatalf("got %v, %v", b, err)
	}
	if addr, err := First[string](loader, "proxy_addr"); err != nil || addr != "" {
		t.Fatalf("got %v, %v", addr, err)
	}
}

func TestFirstBadFile(t *testing.T) {
	for _, path := range []string{
		"testdata/bad.cue",
		"testdata/zero_parallel.cue",
		"testdata/syntax.cue",
	} {
		loader := NewLoader([]string{path}, Schema)
		if _, err := First[string](loader, "format"); err == nil {
			t.Fatalf("%s: should error", path)
		}
	}
}
