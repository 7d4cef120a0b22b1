package parser

import (
	"encoding/json"
	"fmt"
)

type jsonNode struct {
	Kind           string         `json:"kind"`
	Begin          int            `json:"begin"`
	End            int            `json:"end"`
	ContentsBegin  *int           `json:"contentsBegin,omitempty"`
	ContentsEnd    *int           `json:"contentsEnd,omitempty"`
	PreBlank       int            `json:"preBlank,omitempty"`
	PostBlank      int            `json:"postBlank,omitempty"`
	PostAffiliated int            `json:"postAffiliated"`
	Headline       *jsonHeadline  `json:"headline,omitempty"`
	Planning       *jsonPlanning  `json:"planning,omitempty"`
	Property       *NodeProperty  `json:"property,omitempty"`
	Timestamp      *jsonTimestamp `json:"timestamp,omitempty"`
	Children       []*jsonNode    `json:"children,omitempty"`
}

type jsonHeadline struct {
	Level           int            `json:"level"`
	Priority        string         `json:"priority,omitempty"`
	TodoKeyword     string         `json:"todoKeyword,omitempty"`
	TodoType        string         `json:"todoType,omitempty"`
	RawValue        string         `json:"rawValue"`
	Title           []*jsonNode    `json:"title,omitempty"`
	Tags            []string       `json:"tags,omitempty"`
	Archived        bool           `json:"archived,omitempty"`
	Commented       bool           `json:"commented,omitempty"`
	Quoted          bool           `json:"quoted,omitempty"`
	FootnoteSection bool           `json:"footnoteSection,omitempty"`
	Closed          *jsonTimestamp `json:"closed,omitempty"`
	Deadline        *jsonTimestamp `json:"deadline,omitempty"`
	Scheduled       *jsonTimestamp `json:"scheduled,omitempty"`
	Properties      []NodeProperty `json:"properties,omitempty"`
}

type jsonPlanning struct {
	Closed    *jsonTimestamp `json:"closed,omitempty"`
	Deadline  *jsonTimestamp `json:"deadline,omitempty"`
	Scheduled *jsonTimestamp `json:"scheduled,omitempty"`
}

type jsonTimestamp struct {
	Kind     string         `json:"kind"`
	Raw      string         `json:"raw"`
	Begin    int            `json:"begin"`
	End      int            `json:"end"`
	Date     string         `json:"date"`
	DayName  string         `json:"dayName,omitempty"`
	Time     string         `json:"time,omitempty"`
	EndTime  string         `json:"endTime,omitempty"`
	Repeater string         `json:"repeater,omitempty"`
	Delay    string         `json:"delay,omitempty"`
	RangeEnd *jsonTimestamp `json:"rangeEnd,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}

func (n *Node) toJSON() *jsonNode {
	jn := &jsonNode{
		Kind:           n.Kind.String(),
		Begin:          n.Begin,
		End:            n.End,
		PreBlank:       n.PreBlank,
		PostBlank:      n.PostBlank,
		PostAffiliated: n.PostAffiliated,
	}
	if n.ContentsBegin >= 0 {
		cb := n.ContentsBegin
		jn.ContentsBegin = &cb
	}
	if n.ContentsEnd >= 0 {
		ce := n.ContentsEnd
		jn.ContentsEnd = &ce
	}
	if n.Headline != nil {
		jn.Headline = n.Headline.toJSON()
	}
	if n.Planning != nil {
		jn.Planning = &jsonPlanning{
			Closed:    n.Planning.Closed.toJSON(),
			Deadline:  n.Planning.Deadline.toJSON(),
			Scheduled: n.Planning.Scheduled.toJSON(),
		}
	}
	if n.Property != nil {
		jn.Property = n.Property
	}
	if n.Timestamp != nil {
		jn.Timestamp = n.Timestamp.toJSON()
	}
	for _, child := range n.Children {
		jn.Children = append(jn.Children, child.toJSON())
	}
	return jn
}

func (h *Headline) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.toJSON())
}

func (h *Headline) toJSON() *jsonHeadline {
	jh := &jsonHeadline{
		Level:           h.Level,
		TodoKeyword:     h.TodoKeyword,
		TodoType:        h.TodoType.String(),
		RawValue:        h.RawValue,
		Tags:            h.Tags,
		Archived:        h.Archived,
		Commented:       h.Commented,
		Quoted:          h.Quoted,
		FootnoteSection: h.FootnoteSection,
		Closed:          h.Closed.toJSON(),
		Deadline:        h.Deadline.toJSON(),
		Scheduled:       h.Scheduled.toJSON(),
		Properties:      h.Properties,
	}
	if h.Priority != 0 {
		jh.Priority = string(h.Priority)
	}
	for _, obj := range h.Title {
		jh.Title = append(jh.Title, obj.toJSON())
	}
	return jh
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.toJSON())
}

func (t *Timestamp) toJSON() *jsonTimestamp {
	if t == nil {
		return nil
	}
	jt := &jsonTimestamp{
		Kind:     t.Kind.String(),
		Raw:      t.Raw,
		Begin:    t.Begin,
		End:      t.End,
		Date:     formatDate(t.Year, t.Month, t.Day),
		DayName:  t.DayName,
		Repeater: t.Repeater,
		Delay:    t.Delay,
		RangeEnd: t.RangeEnd.toJSON(),
	}
	if t.Hour >= 0 {
		jt.Time = formatClock(t.Hour, t.Minute)
	}
	if t.EndHour >= 0 {
		jt.EndTime = formatClock(t.EndHour, t.EndMinute)
	}
	return jt
}

func formatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
