package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/norg/org"
)

// OutlineEncoder writes one line per headline: stars, TODO state,
// priority cookie, title and tags, the way the source would show them
// with all body text folded away.
type OutlineEncoder struct {
	w   io.Writer
	doc *org.Document
}

func NewOutlineEncoder(w io.Writer) *OutlineEncoder {
	return &OutlineEncoder{w: w}
}

func (e *OutlineEncoder) Encode(doc *org.Document) error {
	e.doc = doc
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *OutlineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	e.doc.Walk(func(entry *org.Outline) bool {
		h := entry.Headline
		sb.WriteString(strings.Repeat("*", h.Level))
		if h.TodoKeyword != "" {
			sb.WriteByte(' ')
			sb.WriteString(h.TodoKeyword)
		}
		if h.Priority != 0 {
			fmt.Fprintf(&sb, " [#%c]", h.Priority)
		}
		if h.RawValue != "" {
			sb.WriteByte(' ')
			sb.WriteString(h.RawValue)
		}
		if len(h.Tags) > 0 {
			sb.WriteString(" :" + strings.Join(h.Tags, ":") + ":")
		}
		sb.WriteByte('\n')
		return true
	})
	return []byte(sb.String()), nil
}
