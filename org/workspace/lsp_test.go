package workspace

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/norg/org/parser"
)

func TestOutlineSymbol(t *testing.T) {
	w := New(parser.DefaultConfig())
	file := w.UpdateFile("s.org", []byte("* TODO Parent :p:\n** Leaf\n"))
	if file.Err != nil {
		t.Fatal(file.Err)
	}

	symbol := file.outlineSymbol(file.Doc.Headlines[0])
	if symbol.Name != "Parent" {
		t.Errorf("name = %q", symbol.Name)
	}
	if symbol.Kind != protocol.SymbolKindNamespace {
		t.Errorf("kind = %v", symbol.Kind)
	}
	if symbol.Detail == nil || *symbol.Detail != "TODO :p:" {
		t.Errorf("detail = %v", symbol.Detail)
	}
	if symbol.Range.Start.Line != 0 || symbol.Range.End.Line != 2 {
		t.Errorf("range = %+v", symbol.Range)
	}
	if symbol.SelectionRange.End.Character != 17 {
		t.Errorf("selection = %+v", symbol.SelectionRange)
	}

	if len(symbol.Children) != 1 {
		t.Fatalf("children = %d", len(symbol.Children))
	}
	leaf := symbol.Children[0]
	if leaf.Name != "Leaf" || leaf.Kind != protocol.SymbolKindString {
		t.Errorf("leaf = %q %v", leaf.Name, leaf.Kind)
	}
}

func TestOutlineSymbolUntitled(t *testing.T) {
	w := New(parser.DefaultConfig())
	file := w.UpdateFile("u.org", []byte("* DONE\n"))
	symbol := file.outlineSymbol(file.Doc.Headlines[0])
	if symbol.Name != "(untitled)" {
		t.Errorf("name = %q", symbol.Name)
	}
	if symbol.Detail == nil || *symbol.Detail != "DONE" {
		t.Errorf("detail = %v", symbol.Detail)
	}
}

func TestURIToPath(t *testing.T) {
	path, err := uriToPath("file:///home/user/notes.org")
	if err != nil {
		t.Fatal(err)
	}
	if path != "/home/user/notes.org" {
		t.Errorf("path = %q", path)
	}

	path, err = uriToPath("relative/notes.org")
	if err != nil {
		t.Fatal(err)
	}
	if path != "relative/notes.org" {
		t.Errorf("path = %q", path)
	}
}
