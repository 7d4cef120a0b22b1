package parser

// NodeKind identifies the element a Node was produced by.
type NodeKind int

const (
	KindHeadline NodeKind = iota
	KindInlinetask
	KindPlanning
	KindPropertyDrawer
	KindNodeProperty
	KindTimestamp
	KindText
)

func (k NodeKind) String() string {
	switch k {
	case KindHeadline:
		return "headline"
	case KindInlinetask:
		return "inlinetask"
	case KindPlanning:
		return "planning"
	case KindPropertyDrawer:
		return "property-drawer"
	case KindNodeProperty:
		return "node-property"
	case KindTimestamp:
		return "timestamp"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Node is the generic parser output. All offsets index the shared source
// buffer; ContentsBegin and ContentsEnd are -1 when the element has no
// contents. Concatenating the spans of a node and its siblings
// reconstructs the source text exactly.
type Node struct {
	Kind NodeKind

	Begin          int
	End            int
	ContentsBegin  int
	ContentsEnd    int
	PreBlank       int
	PostBlank      int
	PostAffiliated int

	// Exactly one payload field is set, matching Kind. A property drawer
	// additionally carries its node-property children.
	Headline  *Headline
	Planning  *Planning
	Property  *NodeProperty
	Timestamp *Timestamp
	Children  []*Node
}

// TodoType classifies a TODO keyword.
type TodoType int

const (
	TodoNone TodoType = iota
	TodoTodo
	TodoDone
)

func (t TodoType) String() string {
	switch t {
	case TodoTodo:
		return "todo"
	case TodoDone:
		return "done"
	default:
		return ""
	}
}

// Headline holds the structural metadata of a single headline.
type Headline struct {
	// Level is the reduced headline depth, starting at 1.
	Level int

	// PreBlank counts the blank lines between the headline and the first
	// non-blank line of its contents.
	PreBlank int

	// Priority is the cookie character, or 0 when absent.
	Priority rune

	// TodoKeyword is empty when the headline carries no TODO state.
	TodoKeyword string
	TodoType    TodoType

	// RawValue is the headline text without stars, keyword, cookie,
	// comment marker and tags, trimmed of surrounding whitespace.
	RawValue string

	// Title is the parsed representation of RawValue's span. It is nil
	// when raw titles were requested; use RawValue then.
	Title []*Node

	// Tags preserves written order and duplicates. The archive tag is
	// removed after setting Archived.
	Tags []string

	Archived        bool
	Commented       bool
	Quoted          bool
	FootnoteSection bool

	// Planning references, populated only from a planning line directly
	// below the headline.
	Closed    *Timestamp
	Deadline  *Timestamp
	Scheduled *Timestamp

	// Properties lists the node properties of the headline's property
	// drawer, in written order.
	Properties []NodeProperty
}

// Done reports whether the headline carries a done-classified keyword.
func (h *Headline) Done() bool {
	return h.TodoType == TodoDone
}

// Property returns the value of the first property with the given drawer
// key, such as ":CUSTOM_ID".
func (h *Headline) Property(key string) (string, bool) {
	for _, p := range h.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Planning holds the timestamp references of a planning line.
type Planning struct {
	Closed    *Timestamp
	Deadline  *Timestamp
	Scheduled *Timestamp
}

// NodeProperty is one ":KEY: VALUE" entry of a property drawer. Key is
// upper-cased and keeps its leading colon, e.g. ":CUSTOM_ID".
type NodeProperty struct {
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
}
