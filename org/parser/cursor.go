package parser

import (
	"bytes"
	"regexp"
	"strings"
)

// Cursor is a positional reader over an immutable text buffer. It is the
// only mutable state a parse call owns; a single Cursor must never be
// shared between goroutines.
type Cursor struct {
	input []byte
	pos   int
}

// NewCursor returns a cursor positioned at the start of input. The cursor
// borrows input and never modifies it.
func NewCursor(input []byte) *Cursor {
	return &Cursor{input: input}
}

// Input returns the underlying buffer.
func (c *Cursor) Input() []byte {
	return c.input
}

// Pos returns the current buffer offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Seek moves the cursor to offset, clamped to the buffer bounds.
func (c *Cursor) Seek(offset int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(c.input) {
		offset = len(c.input)
	}
	c.pos = offset
}

// SkipCharsForward advances the cursor over bytes contained in set, stopping
// at limit, and returns the number of bytes skipped.
func (c *Cursor) SkipCharsForward(set string, limit int) int {
	if limit > len(c.input) {
		limit = len(c.input)
	}
	start := c.pos
	for c.pos < limit && strings.IndexByte(set, c.input[c.pos]) >= 0 {
		c.pos++
	}
	return c.pos - start
}

// SkipCharsBackward moves the cursor backward over bytes contained in set,
// stopping at limit, and returns the number of bytes skipped.
func (c *Cursor) SkipCharsBackward(set string, limit int) int {
	if limit < 0 {
		limit = 0
	}
	start := c.pos
	for c.pos > limit && strings.IndexByte(set, c.input[c.pos-1]) >= 0 {
		c.pos--
	}
	return start - c.pos
}

// LookingAt matches re anchored at the cursor without consuming input.
// It returns the submatch index pairs adjusted to buffer offsets, or nil
// when re does not match exactly at the cursor.
func (c *Cursor) LookingAt(re *regexp.Regexp) []int {
	m := re.FindSubmatchIndex(c.input[c.pos:])
	if m == nil || m[0] != 0 {
		return nil
	}
	for i := range m {
		if m[i] >= 0 {
			m[i] += c.pos
		}
	}
	return m
}

// SearchForward searches for re between the cursor and bound. On a match
// the cursor moves to the match end and the submatch index pairs are
// returned as buffer offsets. On no match the result is nil and the cursor
// moves to bound when move is set, reproducing the move-on-fail search
// used by tag extraction.
func (c *Cursor) SearchForward(re *regexp.Regexp, bound int, move bool) []int {
	if bound > len(c.input) {
		bound = len(c.input)
	}
	if bound < c.pos {
		bound = c.pos
	}
	m := re.FindSubmatchIndex(c.input[c.pos:bound])
	if m == nil {
		if move {
			c.pos = bound
		}
		return nil
	}
	for i := range m {
		if m[i] >= 0 {
			m[i] += c.pos
		}
	}
	c.pos = m[1]
	return m
}

// LineBeginPosition returns the offset of the first character of the line
// containing the cursor.
func (c *Cursor) LineBeginPosition() int {
	return lineBegin(c.input, c.pos)
}

// LineEndPosition returns the offset of the newline terminating the line
// containing the cursor, or the buffer length for the final line.
func (c *Cursor) LineEndPosition() int {
	return lineEnd(c.input, c.pos)
}

// ForwardLine moves the cursor to the beginning of the next line, or to the
// end of the buffer when the current line is the last one.
func (c *Cursor) ForwardLine() {
	end := lineEnd(c.input, c.pos)
	if end < len(c.input) {
		end++
	}
	c.pos = end
}

// CountLines counts the lines between two buffer offsets. A trailing
// fragment not terminated by a newline counts as a line.
func (c *Cursor) CountLines(beg, end int) int {
	if end <= beg {
		return 0
	}
	n := bytes.Count(c.input[beg:end], []byte{'\n'})
	if c.input[end-1] != '\n' {
		n++
	}
	return n
}

func lineBegin(input []byte, pos int) int {
	if i := bytes.LastIndexByte(input[:pos], '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

func lineEnd(input []byte, pos int) int {
	if i := bytes.IndexByte(input[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return len(input)
}
