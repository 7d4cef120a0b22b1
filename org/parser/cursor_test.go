package parser

import (
	"regexp"
	"testing"
)

func TestCursorSkipCharsForward(t *testing.T) {
	c := NewCursor([]byte("***  hello"))
	if n := c.SkipCharsForward("*", 10); n != 3 {
		t.Errorf("skipped %d stars, want 3", n)
	}
	if n := c.SkipCharsForward(" \t", 10); n != 2 {
		t.Errorf("skipped %d spaces, want 2", n)
	}
	if c.Pos() != 5 {
		t.Errorf("pos = %d, want 5", c.Pos())
	}
	if n := c.SkipCharsForward("helo", 7); n != 2 {
		t.Errorf("skipped %d with limit, want 2", n)
	}
}

func TestCursorSkipCharsBackward(t *testing.T) {
	c := NewCursor([]byte("text   \n\n"))
	c.Seek(9)
	if n := c.SkipCharsBackward(" \r\t\n", 0); n != 5 {
		t.Errorf("skipped %d backward, want 5", n)
	}
	if c.Pos() != 4 {
		t.Errorf("pos = %d, want 4", c.Pos())
	}
}

func TestCursorLookingAt(t *testing.T) {
	c := NewCursor([]byte("** TODO x"))
	re := regexp.MustCompile(`\*+`)
	m := c.LookingAt(re)
	if m == nil || m[0] != 0 || m[1] != 2 {
		t.Fatalf("LookingAt stars = %v, want [0 2]", m)
	}
	c.Seek(3)
	// Anchored: the stars are behind the cursor now.
	if m := c.LookingAt(re); m != nil {
		t.Errorf("LookingAt past stars = %v, want nil", m)
	}
	if c.Pos() != 3 {
		t.Errorf("LookingAt moved cursor to %d", c.Pos())
	}
}

func TestCursorSearchForward(t *testing.T) {
	input := []byte("title :tag: rest")
	re := regexp.MustCompile(`:tag:`)

	c := NewCursor(input)
	m := c.SearchForward(re, len(input), false)
	if m == nil || m[0] != 6 || m[1] != 11 {
		t.Fatalf("SearchForward = %v, want [6 11]", m)
	}
	if c.Pos() != 11 {
		t.Errorf("cursor after match = %d, want 11", c.Pos())
	}

	// No match without move: cursor stays.
	c = NewCursor(input)
	if m := c.SearchForward(re, 5, false); m != nil {
		t.Fatalf("bounded search matched: %v", m)
	}
	if c.Pos() != 0 {
		t.Errorf("cursor moved to %d without move flag", c.Pos())
	}

	// No match with move: cursor lands at the bound.
	c = NewCursor(input)
	c.SearchForward(re, 5, true)
	if c.Pos() != 5 {
		t.Errorf("cursor = %d, want bound 5", c.Pos())
	}
}

func TestCursorLines(t *testing.T) {
	input := []byte("one\ntwo\n\nfour")
	c := NewCursor(input)
	c.Seek(5)
	if got := c.LineBeginPosition(); got != 4 {
		t.Errorf("LineBeginPosition = %d, want 4", got)
	}
	if got := c.LineEndPosition(); got != 7 {
		t.Errorf("LineEndPosition = %d, want 7", got)
	}
	c.ForwardLine()
	if c.Pos() != 8 {
		t.Errorf("ForwardLine pos = %d, want 8", c.Pos())
	}

	if got := c.CountLines(0, len(input)); got != 4 {
		t.Errorf("CountLines full = %d, want 4", got)
	}
	if got := c.CountLines(0, 8); got != 2 {
		t.Errorf("CountLines(0,8) = %d, want 2", got)
	}
	if got := c.CountLines(4, 4); got != 0 {
		t.Errorf("CountLines empty = %d, want 0", got)
	}
}
