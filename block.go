package docxgen

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies the variant of a Block.
type Kind int

// Block kinds.
const (
	KindHeading Kind = iota + 1
	KindParagraph
	KindList
	KindTable
	KindPageBreak
)

func (k Kind) String() string {
	switch k {
	case KindHeading:
		return "heading"
	case KindParagraph:
		return "paragraph"
	case KindList:
		return "list"
	case KindTable:
		return "table"
	case KindPageBreak:
		return "pagebreak"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Block is one content unit of a document. The set of implementations is
// closed: *Heading, *Paragraph, *List, *Table and *PageBreak.
type Block interface {
	Kind() Kind
	block()
}

// Heading levels supported by the style sheet.
const (
	MinHeadingLevel = 1
	MaxHeadingLevel = 3
)

// Heading is a section title rendered with the Heading1..Heading3 styles.
type Heading struct {
	Text  string
	Level int
	Align Alignment
}

func (*Heading) Kind() Kind { return KindHeading }
func (*Heading) block()     {}

// Span is a run of text sharing one set of character properties.
type Span struct {
	Text      string
	Bold      bool
	Italic    bool
	Monospace bool
	Highlight bool
	Color     string // RRGGBB, optional leading '#'
}

// Text returns a plain span.
func Text(s string) Span { return Span{Text: s} }

// Bold returns a bold span.
func Bold(s string) Span { return Span{Text: s, Bold: true} }

var hexColor = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// Validate checks the span color.
func (s Span) Validate() error {
	if s.Color != "" && !hexColor.MatchString(s.Color) {
		return fmt.Errorf("%w: %q (must be RRGGBB)", ErrInvalidColor, s.Color)
	}
	return nil
}

// ParagraphStyle selects a paragraph style other than Normal.
type ParagraphStyle int

// Paragraph styles.
const (
	StyleNormal ParagraphStyle = iota
	StyleTitle
	StyleCode
)

// Indent is a paragraph indentation. A negative FirstLine produces a hanging
// indent, used for bibliography entries.
type Indent struct {
	Left      Length
	FirstLine Length
}

// Validate rejects a hanging indent that reaches past the left margin.
func (i *Indent) Validate() error {
	if i == nil {
		return nil
	}
	if i.Left < 0 {
		return fmt.Errorf("%w: left %s is negative", ErrInvalidIndent, i.Left)
	}
	if i.FirstLine < 0 && -i.FirstLine > i.Left {
		return fmt.Errorf("%w: hanging %s exceeds left %s", ErrInvalidIndent, -i.FirstLine, i.Left)
	}
	return nil
}

// Paragraph is a block of one or more spans.
type Paragraph struct {
	Spans  []Span
	Align  Alignment
	Indent *Indent
	Style  ParagraphStyle
}

func (*Paragraph) Kind() Kind { return KindParagraph }
func (*Paragraph) block()     {}

// Text returns the concatenated text of all spans.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, s := range p.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// List is a bulleted or numbered list. Items are always justified.
type List struct {
	Items   []string
	Ordered bool
}

func (*List) Kind() Kind { return KindList }
func (*List) block()     {}

// Align returns the fixed alignment of list items.
func (*List) Align() Alignment { return AlignJustify }

// Table is a grid of plain-text cells with an optional bold header row.
type Table struct {
	Headers []string
	Rows    [][]string
	Style   string
}

func (*Table) Kind() Kind { return KindTable }
func (*Table) block()     {}

// Columns returns the column count shared by every row.
func (t *Table) Columns() int {
	if len(t.Headers) > 0 {
		return len(t.Headers)
	}
	if len(t.Rows) > 0 {
		return len(t.Rows[0])
	}
	return 0
}

// PageBreak forces the following block onto a new page.
type PageBreak struct{}

func (*PageBreak) Kind() Kind { return KindPageBreak }
func (*PageBreak) block()     {}

// IndexEntry is one line of a table of contents: a label and its page.
type IndexEntry struct {
	Label string
	Page  string
}
