package sources

import (
	"testing"
)

func TestLine(t *testing.T) {
	src := NewSource("a.tk", "let x\r\n\nfoo")
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{1, "let x"},
		{2, ""},
		{3, "foo"},
		{4, ""},
	}
	for _, test := range tests {
		if got := src.Line(test.n); got != test.want {
			t.Fatalf("%d: got %q", test.n, got)
		}
	}
	if src.NumLines() != 3 {
		t.Fatalf("got %d", src.NumLines())
	}

	src = NewSource("b.tk", "a\n")
	if src.NumLines() != 2 || src.Line(2) != "" {
		t.Fatalf("got %d", src.NumLines())
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{"plain", []byte("let x"), "let x"},
		{"utf8 bom", []byte("\xef\xbb\xbflet"), "let"},
		{"utf16le bom", []byte{0xff, 0xfe, 'l', 0, 'e', 0, 't', 0}, "let"},
		{"utf16be bom", []byte{0xfe, 0xff, 0, 'l', 0, 'e', 0, 't'}, "let"},
		{"invalid kept", []byte("a\xffb"), "a\xffb"},
		{"empty", nil, ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Decode(test.raw)
			if err != nil {
				t.Fatal(err)
			}
			if got != test.want {
				t.Fatalf("got %q", got)
			}
		})
	}
}
