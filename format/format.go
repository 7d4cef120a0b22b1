// Package format renders parsed Org documents for output: JSON for
// tooling, a plain outline view for humans.
package format

import (
	"encoding"

	"github.com/dhamidi/norg/org"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(doc *org.Document) error
}
