package parser

// ParsePlanning parses the planning line starting at the cursor, bounded
// by limit. A line that does not open with CLOSED:, DEADLINE: or
// SCHEDULED: after optional indentation is not a planning line; nil is
// returned and the cursor keeps its position. Keyword matching is exact
// and case-sensitive. On success the cursor is left at the node's End,
// the start of the following line.
//
// Keywords may appear in any order. When a keyword repeats, the last
// occurrence wins. A keyword whose timestamp cannot be parsed is skipped;
// the rest of the line is still scanned.
func (p *Parser) ParsePlanning(limit int) *Node {
	c := p.cursor
	begin := c.Pos()
	if limit > len(p.input) {
		limit = len(p.input)
	}
	if begin >= limit {
		return nil
	}
	// Clock lines take precedence; "CLOCK:" is never planning info.
	if c.LookingAt(reClockLine) != nil {
		return nil
	}
	if c.LookingAt(rePlanningLine) == nil {
		return nil
	}

	le := lineEnd(p.input, begin)
	if le > limit {
		le = limit
	}
	pl := &Planning{}
	c.SkipCharsForward(" \t", le)
	for c.Pos() < le {
		m := c.LookingAt(rePlanningKeyword)
		if m == nil {
			break
		}
		keyword := string(p.input[m[2]:m[3]])
		c.Seek(m[1])
		c.SkipCharsForward(" \t", le)
		ts, next, ok := p.timestamps(p.input, c.Pos(), le)
		if ok {
			switch keyword {
			case "CLOSED":
				pl.Closed = ts
			case "DEADLINE":
				pl.Deadline = ts
			case "SCHEDULED":
				pl.Scheduled = ts
			}
			c.Seek(next)
		} else {
			p.skipToken(le)
		}
		c.SkipCharsForward(" \t", le)
	}

	end := le
	if end < limit && p.input[end] == '\n' {
		end++
	}
	c.Seek(end)
	return &Node{
		Kind:           KindPlanning,
		Begin:          begin,
		End:            end,
		ContentsBegin:  -1,
		ContentsEnd:    -1,
		PostAffiliated: begin,
		Planning:       pl,
	}
}

// skipToken advances the cursor past the current run of non-whitespace
// bytes, bounded by limit.
func (p *Parser) skipToken(limit int) {
	c := p.cursor
	for c.Pos() < limit {
		b := p.input[c.Pos()]
		if b == ' ' || b == '\t' {
			return
		}
		c.Seek(c.Pos() + 1)
	}
}
