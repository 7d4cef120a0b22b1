package parser

import "strings"

// ParsePropertyDrawer parses the property drawer whose ":PROPERTIES:"
// line starts at the cursor, bounded by limit. When the cursor line is
// not a drawer opener, or no ":END:" line closes the drawer before the
// next headline, nil is returned and the cursor keeps its position; an
// absent drawer is a normal outcome. On success the cursor is left at the
// node's End, past any blank lines following the ":END:" line.
//
// Interior lines that do not have the ":KEY: VALUE" shape are skipped;
// the drawer still parses. Repeated keys are all kept, in written order.
func (p *Parser) ParsePropertyDrawer(limit int) *Node {
	c := p.cursor
	begin := c.Pos()
	if limit > len(p.input) {
		limit = len(p.input)
	}
	if begin >= limit {
		return nil
	}
	if c.LookingAt(reDrawerBegin) == nil {
		return nil
	}

	// Locate the closing line. A headline line ends the search: a drawer
	// never crosses into the next headline's territory.
	var interior []int
	endLine := -1
	pos := nextLine(p.input, begin)
	for pos < limit {
		c.Seek(pos)
		if c.LookingAt(reDrawerEnd) != nil {
			endLine = pos
			break
		}
		if c.LookingAt(reHeadlineLine) != nil {
			break
		}
		interior = append(interior, pos)
		pos = nextLine(p.input, pos)
	}
	if endLine < 0 {
		c.Seek(begin)
		return nil
	}

	children := make([]*Node, 0, len(interior))
	for _, at := range interior {
		c.Seek(at)
		if prop := p.ParseNodeProperty(limit); prop != nil {
			children = append(children, prop)
		}
	}

	contentsBegin, contentsEnd := -1, -1
	if len(interior) > 0 {
		contentsBegin = interior[0]
		contentsEnd = endLine
	}

	c.Seek(endLine)
	c.ForwardLine()
	blankStart := c.Pos()
	c.SkipCharsForward(" \r\t\n", limit)
	end := c.Pos()
	if end < limit {
		end = c.LineBeginPosition()
	}
	postBlank := c.CountLines(blankStart, end)

	c.Seek(end)
	return &Node{
		Kind:           KindPropertyDrawer,
		Begin:          begin,
		End:            end,
		ContentsBegin:  contentsBegin,
		ContentsEnd:    contentsEnd,
		PostBlank:      postBlank,
		PostAffiliated: begin,
		Children:       children,
	}
}

// ParseNodeProperty parses the ":KEY: VALUE" line starting at the cursor.
// It returns nil for a malformed line. Keys are upper-cased and keep
// their leading colon, so ":custom_id: foo" yields key ":CUSTOM_ID". On
// success the cursor is left at the node's End, the start of the
// following line.
func (p *Parser) ParseNodeProperty(limit int) *Node {
	c := p.cursor
	begin := c.Pos()
	if limit > len(p.input) {
		limit = len(p.input)
	}
	m := c.LookingAt(reNodeProperty)
	if m == nil {
		return nil
	}
	prop := &NodeProperty{
		Key: ":" + strings.ToUpper(string(p.input[m[2]:m[3]])),
	}
	if m[4] >= 0 {
		prop.Value = string(p.input[m[4]:m[5]])
	}
	end := nextLine(p.input, begin)
	if end > limit {
		end = limit
	}
	c.Seek(end)
	return &Node{
		Kind:           KindNodeProperty,
		Begin:          begin,
		End:            end,
		ContentsBegin:  -1,
		ContentsEnd:    -1,
		PostAffiliated: begin,
		Property:       prop,
	}
}

// nextLine returns the offset of the first character of the line after
// the one containing pos, or the buffer length for the final line.
func nextLine(input []byte, pos int) int {
	end := lineEnd(input, pos)
	if end < len(input) {
		end++
	}
	return end
}
