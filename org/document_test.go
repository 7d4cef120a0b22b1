package org

import (
	"reflect"
	"strings"
	"testing"

	"github.com/dhamidi/norg/org/parser"
)

const sampleDoc = `Preamble text before the outline.

* TODO First :work:
Some notes.
** Child one
** DONE Child two
Details.
*** Grandchild
* Second
Tail paragraph.
`

func TestParseBytesTree(t *testing.T) {
	doc, err := ParseBytes([]byte(sampleDoc), WithRawTitles())
	if err != nil {
		t.Fatal(err)
	}

	if got := string(doc.Section()); got != "Preamble text before the outline.\n\n" {
		t.Errorf("section = %q", got)
	}
	if len(doc.Headlines) != 2 {
		t.Fatalf("top level count = %d", len(doc.Headlines))
	}

	first := doc.Headlines[0]
	if first.Headline.RawValue != "First" || first.Headline.TodoKeyword != "TODO" {
		t.Errorf("first = %+v", first.Headline)
	}
	if len(first.Children) != 2 {
		t.Fatalf("first children = %d", len(first.Children))
	}
	if got := first.Children[1].Headline.RawValue; got != "Child two" {
		t.Errorf("second child = %q", got)
	}
	if len(first.Children[1].Children) != 1 {
		t.Fatalf("grandchildren = %d", len(first.Children[1].Children))
	}
	if got := first.Children[1].Children[0].Headline.RawValue; got != "Grandchild" {
		t.Errorf("grandchild = %q", got)
	}

	second := doc.Headlines[1]
	if second.Headline.RawValue != "Second" || len(second.Children) != 0 {
		t.Errorf("second = %+v", second.Headline)
	}
}

// The section plus the top-level subtree spans reassemble the source.
func TestParseBytesLossless(t *testing.T) {
	doc, err := ParseBytes([]byte(sampleDoc), WithRawTitles())
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	b.Write(doc.Section())
	for _, entry := range doc.Headlines {
		b.Write(doc.Source[entry.Node.Begin:entry.Node.End])
	}
	if b.String() != sampleDoc {
		t.Errorf("reassembled %q", b.String())
	}
}

func TestParseBytesNoHeadline(t *testing.T) {
	input := "just a paragraph\nand another line\n"
	doc, err := ParseBytes([]byte(input))
	if err != nil {
		t.Fatal(err)
	}
	if string(doc.Section()) != input {
		t.Errorf("section = %q", doc.Section())
	}
	if len(doc.Headlines) != 0 {
		t.Errorf("headlines = %d", len(doc.Headlines))
	}
}

func TestParseBytesStable(t *testing.T) {
	a, err := ParseBytes([]byte(sampleDoc), WithRawTitles())
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseBytes([]byte(sampleDoc), WithRawTitles())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("parsing the same buffer twice disagrees")
	}
}

func TestParseBytesOddLevels(t *testing.T) {
	cfg := parser.DefaultConfig()
	cfg.OddLevelsOnly = true
	input := "* Top\n*** Child\n"
	doc, err := ParseBytes([]byte(input), WithConfig(cfg), WithRawTitles())
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Headlines) != 1 || len(doc.Headlines[0].Children) != 1 {
		t.Fatalf("tree shape = %d top, children %v", len(doc.Headlines), doc.Headlines)
	}
	if got := doc.Headlines[0].Children[0].Headline.Level; got != 2 {
		t.Errorf("reduced level = %d", got)
	}
}

func TestWalkPrune(t *testing.T) {
	doc, err := ParseBytes([]byte(sampleDoc), WithRawTitles())
	if err != nil {
		t.Fatal(err)
	}
	var seen []string
	doc.Walk(func(entry *Outline) bool {
		seen = append(seen, entry.Headline.RawValue)
		return entry.Headline.RawValue != "Child two"
	})
	want := []string{"First", "Child one", "Child two", "Second"}
	if !reflect.DeepEqual(seen, want) {
		t.Errorf("visited %v, want %v", seen, want)
	}
}
