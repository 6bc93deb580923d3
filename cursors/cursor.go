package cursors

import (
	"fmt"
	"unicode/utf8"

	"github.com/reusee/toks/tokens"
)

// EOF is returned past the end of input.
const EOF rune = -1

// Cursor reads a string one character at a time, tracking the position.
// Input is expected to be valid utf-8.
type Cursor struct {
	text string
	pos  tokens.Pos
}

func New(text string) *Cursor {
	return &Cursor{
		text: text,
		pos: tokens.Pos{
			Line:   1,
			Column: 1,
		},
	}
}

// Peek returns the character n characters ahead without consuming anything.
func (c *Cursor) Peek(n int) rune {
	if n < 0 {
		panic(fmt.Errorf("negative peek offset %d", n))
	}
	offset := c.pos.Offset
	for {
		if offset >= len(c.text) {
			return EOF
		}
		r, w := utf8.DecodeRuneInString(c.text[offset:])
		if n == 0 {
			return r
		}
		offset += w
		n--
	}
}

// Advance consumes the current character and returns it.
func (c *Cursor) Advance() rune {
	if c.pos.Offset >= len(c.text) {
		return EOF
	}
	r, w := utf8.DecodeRuneInString(c.text[c.pos.Offset:])
	c.pos.Offset += w
	if r == '\n' {
		c.pos.Line++
		c.pos.Column = 1
	} else {
		c.pos.Column++
	}
	return r
}

// AdvanceWhile consumes characters while fn holds, returning how many were consumed.
func (c *Cursor) AdvanceWhile(fn func(rune) bool) int {
	n := 0
	for {
		r := c.Peek(0)
		if r == EOF || !fn(r) {
			return n
		}
		c.Advance()
		n++
	}
}

func (c *Cursor) Pos() tokens.Pos {
	return c.pos
}

func (c *Cursor) Offset() int {
	return c.pos.Offset
}

func (c *Cursor) AtEnd() bool {
	return c.pos.Offset >= len(c.text)
}

// Slice returns the text between a byte offset and the current offset.
func (c *Cursor) Slice(from int) string {
	return c.text[from:c.pos.Offset]
}
