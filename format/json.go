package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/norg/org"
	"github.com/dhamidi/norg/org/parser"
)

type JSONEncoder struct {
	w   io.Writer
	doc *org.Document
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(doc *org.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildDocument(), "", "  ")
}

type jsonDocument struct {
	Section   string         `json:"section,omitempty"`
	Headlines []*jsonOutline `json:"headlines,omitempty"`
}

type jsonOutline struct {
	Node     *parser.Node   `json:"node"`
	Children []*jsonOutline `json:"children,omitempty"`
}

func (e *JSONEncoder) buildDocument() jsonDocument {
	doc := jsonDocument{
		Section: string(e.doc.Section()),
	}
	for _, entry := range e.doc.Headlines {
		doc.Headlines = append(doc.Headlines, buildOutline(entry))
	}
	return doc
}

func buildOutline(entry *org.Outline) *jsonOutline {
	out := &jsonOutline{Node: entry.Node}
	for _, child := range entry.Children {
		out.Children = append(out.Children, buildOutline(child))
	}
	return out
}
