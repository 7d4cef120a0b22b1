package parser

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// headlineFields holds everything extracted from the first line of a
// headline or inline task.
type headlineFields struct {
	stars      int
	todo       string
	todoType   TodoType
	priority   rune
	commented  bool
	titleStart int
	titleEnd   int
	lineEnd    int
	tags       []string
	rawValue   string
}

// ParseHeadline parses the headline starting at the cursor, bounded by
// limit. The cursor must sit on the first star of a headline line;
// otherwise a *ParseError of kind ErrMalformedHeadline is returned and the
// cursor keeps its position. On success the cursor is left at the returned
// node's End offset, which is the start of the next sibling-or-shallower
// headline when one exists.
//
// When raw is set the title is not parsed into objects; Headline.RawValue
// carries it as a plain string and Headline.Title stays nil.
func (p *Parser) ParseHeadline(limit int, raw bool) (*Node, error) {
	c := p.cursor
	begin := c.Pos()
	if limit > len(p.input) {
		limit = len(p.input)
	}
	if begin != lineBegin(p.input, begin) || c.LookingAt(reHeadline) == nil {
		return nil, &ParseError{Kind: ErrMalformedHeadline, Begin: begin, End: lineEnd(p.input, begin)}
	}

	f := p.parseHeadlineFields(limit)
	level := p.config.ReducedLevel(f.stars)

	h := &Headline{
		Level:       level,
		Priority:    f.priority,
		TodoKeyword: f.todo,
		TodoType:    f.todoType,
		Commented:   f.commented,
		RawValue:    f.rawValue,
		Tags:        f.tags,
	}

	// Archive tag and footnote section classification. The archive tag is
	// dropped from the stored tags once it sets the flag.
	if p.config.ArchiveTag != "" && contains(h.Tags, p.config.ArchiveTag) {
		h.Archived = true
		kept := make([]string, 0, len(h.Tags))
		for _, tag := range h.Tags {
			if tag != p.config.ArchiveTag {
				kept = append(kept, tag)
			}
		}
		h.Tags = kept
	}
	h.FootnoteSection = p.config.FootnoteSection != "" && h.RawValue == p.config.FootnoteSection

	// Planning information sits on the very next line; a blank line in
	// between disqualifies it.
	c.Seek(begin)
	c.ForwardLine()
	if c.Pos() < limit {
		if planning := p.ParsePlanning(limit); planning != nil {
			h.Closed = planning.Planning.Closed
			h.Deadline = planning.Planning.Deadline
			h.Scheduled = planning.Planning.Scheduled
			c.Seek(planning.End)
		}
	}
	// A property drawer may only open the section, directly after the
	// planning line when there is one.
	if c.Pos() < limit {
		if drawer := p.ParsePropertyDrawer(limit); drawer != nil {
			props := make([]NodeProperty, 0, len(drawer.Children))
			for _, child := range drawer.Children {
				props = append(props, *child.Property)
			}
			h.Properties = props
		}
	}

	end := p.subtreeEnd(begin, level, limit)

	// Contents bounds: first non-blank line after the headline line, and
	// the line following the last non-blank line before end.
	contentsBegin, contentsEnd := -1, -1
	c.Seek(begin)
	c.ForwardLine()
	c.SkipCharsForward(" \r\t\n", end)
	if c.Pos() < end {
		contentsBegin = c.LineBeginPosition()
		c.Seek(end)
		c.SkipCharsBackward(" \r\t\n", contentsBegin)
		contentsEnd = c.LineEndPosition()
		if contentsEnd < len(p.input) {
			contentsEnd++
		}
		if contentsEnd > end {
			contentsEnd = end
		}
	}

	preBlank := 0
	if contentsBegin >= 0 {
		preBlank = c.CountLines(begin, contentsBegin) - 1
	}
	postBlank := 0
	if contentsEnd >= 0 {
		postBlank = c.CountLines(contentsEnd, end)
	} else {
		postBlank = c.CountLines(begin, end) - 1
	}
	h.PreBlank = preBlank

	if !raw {
		ts, te := f.titleStart, f.titleEnd
		for ts < te && (p.input[ts] == ' ' || p.input[ts] == '\t') {
			ts++
		}
		for te > ts && (p.input[te-1] == ' ' || p.input[te-1] == '\t') {
			te--
		}
		h.Title = p.objects(p.input, ts, te, RestrictionHeadline)
	}

	c.Seek(end)
	return &Node{
		Kind:           KindHeadline,
		Begin:          begin,
		End:            end,
		ContentsBegin:  contentsBegin,
		ContentsEnd:    contentsEnd,
		PreBlank:       preBlank,
		PostBlank:      postBlank,
		PostAffiliated: begin,
		Headline:       h,
	}, nil
}

// parseHeadlineFields extracts the first-line fields shared by headlines
// and inline tasks. The cursor must sit on the first star; it ends up at
// the title-end boundary.
func (p *Parser) parseHeadlineFields(limit int) headlineFields {
	c := p.cursor
	var f headlineFields

	f.stars = c.SkipCharsForward("*", limit)
	c.SkipCharsForward(" \t", limit)

	if m := c.LookingAt(p.patterns.todo); m != nil {
		f.todo = string(p.input[m[2]:m[3]])
		if p.config.IsDone(f.todo) {
			f.todoType = TodoDone
		} else {
			f.todoType = TodoTodo
		}
		c.Seek(m[1])
		c.SkipCharsForward(" \t", limit)
	}

	if m := c.LookingAt(rePriority); m != nil {
		f.priority, _ = utf8.DecodeRune(p.input[m[2]:m[3]])
		c.Seek(m[1])
	}

	if p.config.CommentKeyword != "" {
		if m := c.LookingAt(p.patterns.comment); m != nil {
			f.commented = true
			c.Seek(m[1])
			c.SkipCharsForward(" \t", limit)
		}
	}

	f.titleStart = c.Pos()
	f.lineEnd = c.LineEndPosition()
	f.titleEnd = f.lineEnd
	if m := c.SearchForward(reTags, f.lineEnd, true); m != nil {
		f.titleEnd = m[0]
		f.tags = splitTags(string(p.input[m[2]:m[3]]))
		c.Seek(m[0])
	}
	f.rawValue = string(bytes.Trim(p.input[f.titleStart:f.titleEnd], " \t"))
	return f
}

// subtreeEnd returns the offset of the next headline whose reduced level
// is at most level, or limit when the subtree runs to the bound.
func (p *Parser) subtreeEnd(begin, level, limit int) int {
	pos := lineEnd(p.input, begin)
	for {
		at := p.FindHeadline(pos, limit)
		if at < 0 {
			return limit
		}
		stars := 0
		for at+stars < limit && p.input[at+stars] == '*' {
			stars++
		}
		if p.config.ReducedLevel(stars) <= level {
			return at
		}
		pos = lineEnd(p.input, at)
	}
}

// splitTags splits a ":a:b:" group into its tags, discarding empty
// segments. A bare "::" therefore produces no tags.
func splitTags(group string) []string {
	var tags []string
	for _, tag := range strings.Split(group, ":") {
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
