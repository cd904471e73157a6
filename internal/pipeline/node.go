package pipeline

// NodeKind identifies the variant of a Node.
type NodeKind int

// Node kinds.
const (
	NodeHeading NodeKind = iota + 1
	NodeParagraph
	NodeList
	NodeTable
	NodeCode
	NodePageBreak
)

func (k NodeKind) String() string {
	switch k {
	case NodeHeading:
		return "heading"
	case NodeParagraph:
		return "paragraph"
	case NodeList:
		return "list"
	case NodeTable:
		return "table"
	case NodeCode:
		return "code"
	case NodePageBreak:
		return "pagebreak"
	}
	return "unknown"
}

// Span is inline text with its character properties.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
	Code   bool
	Mark   bool
	Color  string // RRGGBB without '#', set by the highlighter
}

// Node is one block-level element of the parsed document.
type Node struct {
	Kind NodeKind

	// NodeHeading: 1..6 as written in the source.
	Level int

	// NodeHeading, NodeParagraph.
	Spans []Span
	Quote bool // paragraph inside a block quote

	// NodeList.
	Items   []string
	Ordered bool

	// NodeTable.
	Header []string
	Rows   [][]string

	// NodeCode.
	Language string
	Code     string
}

// Text returns the concatenated span text.
func (n *Node) Text() string {
	var out string
	for _, s := range n.Spans {
		out += s.Text
	}
	return out
}
