// Package parser implements the element-level parser for Org outline
// markup: headlines and their planning lines, property drawers and inline
// tasks, with exact buffer offsets for every produced node.
package parser

// Restriction names the set of inline elements valid in a given context.
// It is passed through to the object parser unchanged.
type Restriction string

// RestrictionHeadline is the restriction set for headline titles.
const RestrictionHeadline Restriction = "headline"

// ObjectParser parses the inline markup of a text span, bounded by a
// context restriction, into object nodes. The element parser treats the
// result as opaque.
type ObjectParser func(input []byte, beg, end int, restriction Restriction) []*Node

// RawObjects is the default ObjectParser. It produces a single text node
// covering the span, leaving inline markup unparsed.
func RawObjects(input []byte, beg, end int, _ Restriction) []*Node {
	if beg >= end {
		return nil
	}
	return []*Node{{
		Kind:           KindText,
		Begin:          beg,
		End:            end,
		ContentsBegin:  -1,
		ContentsEnd:    -1,
		PostAffiliated: beg,
	}}
}

// Option configures a Parser.
type Option func(*Parser)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(p *Parser) {
		p.config = cfg
	}
}

// WithObjectParser sets the collaborator used to parse headline titles
// into inline objects.
func WithObjectParser(objects ObjectParser) Option {
	return func(p *Parser) {
		p.objects = objects
	}
}

// WithTimestampParser sets the collaborator used to parse timestamp spans.
func WithTimestampParser(timestamps TimestampParser) Option {
	return func(p *Parser) {
		p.timestamps = timestamps
	}
}

// Parser parses Org elements out of a single immutable buffer. It owns
// one cursor and must not be used from more than one goroutine; parse
// separate documents with separate Parser values.
type Parser struct {
	input      []byte
	cursor     *Cursor
	config     Config
	patterns   *patterns
	objects    ObjectParser
	timestamps TimestampParser
}

// New returns a parser over input. Configuration problems surface here as
// a *ConfigError; parse calls never fail on configuration.
func New(input []byte, opts ...Option) (*Parser, error) {
	p := &Parser{
		input:      input,
		cursor:     NewCursor(input),
		config:     DefaultConfig(),
		objects:    RawObjects,
		timestamps: ParseTimestamp,
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.config.Validate(); err != nil {
		return nil, &ConfigError{Err: err}
	}
	pats, err := compilePatterns(p.config)
	if err != nil {
		return nil, &ConfigError{Field: "keywords", Err: err}
	}
	p.patterns = pats
	return p, nil
}

// Config returns the parser's configuration.
func (p *Parser) Config() Config {
	return p.config
}

// Cursor returns the parser's cursor. Callers position it before invoking
// a parse entry point.
func (p *Parser) Cursor() *Cursor {
	return p.cursor
}

// Input returns the source buffer.
func (p *Parser) Input() []byte {
	return p.input
}

// FindHeadline searches for the first headline opening at or after from,
// bounded by limit. It returns the offset of the headline's first star,
// or -1 when the range contains no headline. The cursor does not move.
func (p *Parser) FindHeadline(from, limit int) int {
	if limit > len(p.input) {
		limit = len(p.input)
	}
	if from < 0 {
		from = 0
	}
	for from < limit {
		m := reHeadlineLine.FindIndex(p.input[from:limit])
		if m == nil {
			return -1
		}
		at := from + m[0]
		// (?m)^ also matches the start of the slice; accept it only on a
		// true line beginning.
		if at == lineBegin(p.input, at) {
			return at
		}
		from = lineEnd(p.input, at)
	}
	return -1
}
