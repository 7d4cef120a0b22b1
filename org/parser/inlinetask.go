package parser

// ParseInlinetask parses the inline task starting at the cursor, bounded
// by limit. The task line must open with at least InlinetaskMinLevel
// stars; otherwise a *ParseError of kind ErrMalformedInlinetask is
// returned and the cursor keeps its position.
//
// A task is closed by a later line carrying at least InlinetaskMinLevel
// stars and the single word END; everything in between is its contents,
// including an optional planning line and property drawer. Without an END
// line the task is degenerate and spans only its own line. On success the
// cursor is left at the node's End.
func (p *Parser) ParseInlinetask(limit int, raw bool) (*Node, error) {
	c := p.cursor
	begin := c.Pos()
	if limit > len(p.input) {
		limit = len(p.input)
	}
	if begin != lineBegin(p.input, begin) || c.LookingAt(reHeadline) == nil {
		return nil, &ParseError{Kind: ErrMalformedInlinetask, Begin: begin, End: lineEnd(p.input, begin)}
	}
	stars := 0
	for begin+stars < limit && p.input[begin+stars] == '*' {
		stars++
	}
	if stars < p.config.InlinetaskMinLevel {
		return nil, &ParseError{Kind: ErrMalformedInlinetask, Begin: begin, End: lineEnd(p.input, begin)}
	}

	f := p.parseHeadlineFields(limit)
	h := &Headline{
		Level:       p.config.ReducedLevel(f.stars),
		Priority:    f.priority,
		TodoKeyword: f.todo,
		TodoType:    f.todoType,
		Commented:   f.commented,
		RawValue:    f.rawValue,
		Tags:        f.tags,
	}

	endMarker := p.findInlinetaskEnd(begin, limit)

	contentsBegin, contentsEnd := -1, -1
	if endMarker >= 0 {
		c.Seek(begin)
		c.ForwardLine()
		if c.Pos() < endMarker {
			if planning := p.ParsePlanning(endMarker); planning != nil {
				h.Closed = planning.Planning.Closed
				h.Deadline = planning.Planning.Deadline
				h.Scheduled = planning.Planning.Scheduled
				c.Seek(planning.End)
			}
		}
		if c.Pos() < endMarker {
			if drawer := p.ParsePropertyDrawer(endMarker); drawer != nil {
				props := make([]NodeProperty, 0, len(drawer.Children))
				for _, child := range drawer.Children {
					props = append(props, *child.Property)
				}
				h.Properties = props
			}
		}

		c.Seek(begin)
		c.ForwardLine()
		c.SkipCharsForward(" \r\t\n", endMarker)
		if c.Pos() < endMarker {
			contentsBegin = c.LineBeginPosition()
			c.Seek(endMarker)
			c.SkipCharsBackward(" \r\t\n", contentsBegin)
			contentsEnd = c.LineEndPosition()
			if contentsEnd < len(p.input) {
				contentsEnd++
			}
			if contentsEnd > endMarker {
				contentsEnd = endMarker
			}
		}
	}

	var lastLine int
	if endMarker >= 0 {
		lastLine = endMarker
	} else {
		lastLine = begin
	}
	c.Seek(lastLine)
	c.ForwardLine()
	blankStart := c.Pos()
	c.SkipCharsForward(" \r\t\n", limit)
	end := c.Pos()
	if end < limit {
		end = c.LineBeginPosition()
	}
	postBlank := c.CountLines(blankStart, end)

	preBlank := 0
	if contentsBegin >= 0 {
		preBlank = c.CountLines(begin, contentsBegin) - 1
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
		Kind:           KindInlinetask,
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

// findInlinetaskEnd returns the offset of the task's END line, or -1 for
// a degenerate task. The search stops at the first regular headline, so a
// task never swallows the outline that follows it.
func (p *Parser) findInlinetaskEnd(begin, limit int) int {
	pos := lineEnd(p.input, begin)
	for {
		at := p.FindHeadline(pos, limit)
		if at < 0 {
			return -1
		}
		stars := 0
		for at+stars < limit && p.input[at+stars] == '*' {
			stars++
		}
		if stars < p.config.InlinetaskMinLevel {
			return -1
		}
		c := NewCursor(p.input)
		c.Seek(at)
		if c.LookingAt(reInlinetaskEnd) != nil {
			return at
		}
		pos = lineEnd(p.input, at)
	}
}
