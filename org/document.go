// Package org assembles whole Org documents from the element parser,
// recursing into each headline's contents to build the outline tree.
package org

import (
	"io"

	"github.com/dhamidi/norg/org/parser"
)

// Option configures document parsing.
type Option func(*driver)

// WithConfig replaces the default parser configuration.
func WithConfig(cfg parser.Config) Option {
	return func(d *driver) {
		d.opts = append(d.opts, parser.WithConfig(cfg))
	}
}

// WithRawTitles keeps headline titles as plain strings instead of parsing
// them into inline objects.
func WithRawTitles() Option {
	return func(d *driver) {
		d.raw = true
	}
}

// WithObjectParser sets the collaborator used for headline titles.
func WithObjectParser(objects parser.ObjectParser) Option {
	return func(d *driver) {
		d.opts = append(d.opts, parser.WithObjectParser(objects))
	}
}

// WithTimestampParser sets the collaborator used for timestamp spans.
func WithTimestampParser(timestamps parser.TimestampParser) Option {
	return func(d *driver) {
		d.opts = append(d.opts, parser.WithTimestampParser(timestamps))
	}
}

// Document is a parsed Org document. The source buffer is retained; all
// node offsets index into it.
type Document struct {
	Source []byte

	// SectionBegin/SectionEnd delimit the text before the first headline.
	// Both are zero when the document opens with a headline.
	SectionBegin int
	SectionEnd   int

	// Headlines are the top-level outline entries in document order.
	Headlines []*Outline
}

// Outline is one headline with its nested subtree.
type Outline struct {
	Node     *parser.Node
	Headline *parser.Headline
	Children []*Outline
}

type driver struct {
	opts []parser.Option
	raw  bool
}

// Parse reads all of r and parses it as an Org document.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseBytes(data, opts...)
}

// ParseBytes parses an Org document held in memory. Parsing the same
// buffer with the same options twice yields structurally identical
// documents.
func ParseBytes(data []byte, opts ...Option) (*Document, error) {
	var d driver
	for _, opt := range opts {
		opt(&d)
	}
	p, err := parser.New(data, d.opts...)
	if err != nil {
		return nil, err
	}

	doc := &Document{Source: data}
	first := p.FindHeadline(0, len(data))
	if first < 0 {
		doc.SectionEnd = len(data)
		return doc, nil
	}
	doc.SectionEnd = first

	pos := first
	for pos >= 0 && pos < len(data) {
		outline, err := d.parseSubtree(p, pos, len(data))
		if err != nil {
			return nil, err
		}
		doc.Headlines = append(doc.Headlines, outline)
		pos = p.FindHeadline(outline.Node.End, len(data))
	}
	return doc, nil
}

// parseSubtree parses the headline at pos and recurses into its contents.
func (d *driver) parseSubtree(p *parser.Parser, pos, limit int) (*Outline, error) {
	p.Cursor().Seek(pos)
	node, err := p.ParseHeadline(limit, d.raw)
	if err != nil {
		return nil, err
	}
	outline := &Outline{Node: node, Headline: node.Headline}
	if node.ContentsBegin < 0 {
		return outline, nil
	}
	child := p.FindHeadline(node.ContentsBegin, node.End)
	for child >= 0 && child < node.End {
		sub, err := d.parseSubtree(p, child, node.End)
		if err != nil {
			return nil, err
		}
		outline.Children = append(outline.Children, sub)
		child = p.FindHeadline(sub.Node.End, node.End)
	}
	return outline, nil
}

// Walk calls fn for every outline entry in document order, depth first.
// Returning false from fn prunes the entry's subtree.
func (doc *Document) Walk(fn func(*Outline) bool) {
	var visit func([]*Outline)
	visit = func(entries []*Outline) {
		for _, entry := range entries {
			if fn(entry) {
				visit(entry.Children)
			}
		}
	}
	visit(doc.Headlines)
}

// Section returns the text before the first headline.
func (doc *Document) Section() []byte {
	return doc.Source[doc.SectionBegin:doc.SectionEnd]
}
