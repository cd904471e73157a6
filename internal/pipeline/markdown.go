package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// ErrParse indicates the Markdown could not be walked into nodes.
var ErrParse = errors.New("markdown parsing failed")

// Parser converts Markdown to nodes.
type Parser interface {
	Parse(ctx context.Context, source []byte) ([]Node, error)
}

// GoldmarkParser parses Markdown with goldmark (pure Go) and GFM extensions.
type GoldmarkParser struct {
	md goldmark.Markdown
}

// NewGoldmarkParser creates a GoldmarkParser with tables, strikethrough,
// autolinks and task lists enabled.
func NewGoldmarkParser() *GoldmarkParser {
	return &GoldmarkParser{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

// Parse walks the Markdown AST into nodes. Goldmark does not support
// context natively, so parsing runs in a goroutine and Parse returns as soon
// as ctx is done.
func (p *GoldmarkParser) Parse(ctx context.Context, source []byte) ([]Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		nodes []Node
		err   error
	}

	done := make(chan result, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("%w: %v", ErrParse, r)}
			}
		}()
		root := p.md.Parser().Parse(text.NewReader(source))
		w := &walker{source: source}
		w.blocks(root)
		done <- result{nodes: w.nodes}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.nodes, r.err
	}
}

// walker collects nodes from a goldmark AST.
type walker struct {
	source []byte
	nodes  []Node
	quote  int
}

func (w *walker) blocks(parent ast.Node) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		w.block(n)
	}
}

func (w *walker) block(n ast.Node) {
	switch n := n.(type) {
	case *ast.Heading:
		w.nodes = append(w.nodes, Node{Kind: NodeHeading, Level: n.Level, Spans: w.inlines(n)})
	case *ast.Paragraph, *ast.TextBlock:
		spans := w.inlines(n)
		if len(spans) == 0 {
			return
		}
		w.nodes = append(w.nodes, Node{Kind: NodeParagraph, Spans: spans, Quote: w.quote > 0})
	case *ast.List:
		lb := listBuilder{w: w, ordered: n.IsOrdered()}
		lb.items(n)
		lb.flush()
	case *ast.FencedCodeBlock:
		w.nodes = append(w.nodes, Node{
			Kind:     NodeCode,
			Language: string(n.Language(w.source)),
			Code:     w.lines(n),
		})
	case *ast.CodeBlock:
		w.nodes = append(w.nodes, Node{Kind: NodeCode, Code: w.lines(n)})
	case *ast.ThematicBreak:
		w.nodes = append(w.nodes, Node{Kind: NodePageBreak})
	case *ast.Blockquote:
		w.quote++
		w.blocks(n)
		w.quote--
	case *east.Table:
		w.nodes = append(w.nodes, w.table(n))
	case *ast.HTMLBlock:
		// raw HTML has no word-processor equivalent
	default:
		w.blocks(n)
	}
}

// listBuilder flattens a list and its nested lists into items. A code
// block or table inside an item closes the list, is emitted on its own, and
// the remaining items open a new list.
type listBuilder struct {
	w       *walker
	ordered bool
	pending []string
}

func (b *listBuilder) items(list *ast.List) {
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var parts []string
		closeItem := func() {
			if len(parts) > 0 {
				b.pending = append(b.pending, strings.Join(parts, " "))
				parts = nil
			}
		}
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			switch c := c.(type) {
			case *ast.List:
				closeItem()
				b.items(c)
			case *ast.FencedCodeBlock, *ast.CodeBlock, *east.Table:
				closeItem()
				b.flush()
				b.w.block(c)
			default:
				if s := plain(b.w.inlines(c)); s != "" {
					parts = append(parts, s)
				}
			}
		}
		closeItem()
	}
}

func (b *listBuilder) flush() {
	if len(b.pending) == 0 {
		return
	}
	b.w.nodes = append(b.w.nodes, Node{Kind: NodeList, Ordered: b.ordered, Items: b.pending})
	b.pending = nil
}

func (w *walker) table(t *east.Table) Node {
	node := Node{Kind: NodeTable}
	for row := t.FirstChild(); row != nil; row = row.NextSibling() {
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, plain(w.inlines(cell)))
		}
		if _, ok := row.(*east.TableHeader); ok {
			node.Header = cells
			continue
		}
		node.Rows = append(node.Rows, cells)
	}
	return node
}

func (w *walker) lines(n ast.Node) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(w.source))
	}
	return b.String()
}

// inlineState carries the emphasis in effect while descending inlines.
type inlineState struct {
	bold, italic, code bool
}

func (w *walker) inlines(n ast.Node) []Span {
	var spans []Span
	mark := false
	emit := func(s string, st inlineState) {
		for s != "" {
			start := strings.Index(s, MarkStartPlaceholder)
			end := strings.Index(s, MarkEndPlaceholder)
			next, sep := -1, ""
			switch {
			case !mark && start >= 0:
				next, sep = start, MarkStartPlaceholder
			case mark && end >= 0:
				next, sep = end, MarkEndPlaceholder
			}
			chunk := s
			if next >= 0 {
				chunk = s[:next]
			}
			if chunk != "" {
				spans = appendSpan(spans, Span{Text: chunk, Bold: st.bold, Italic: st.italic, Code: st.code, Mark: mark})
			}
			if next < 0 {
				return
			}
			mark = !mark
			s = s[next+len(sep):]
		}
	}

	var walk func(parent ast.Node, st inlineState)
	walk = func(parent ast.Node, st inlineState) {
		for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
			switch c := c.(type) {
			case *ast.Text:
				emit(string(c.Segment.Value(w.source)), st)
				if c.SoftLineBreak() || c.HardLineBreak() {
					emit(" ", st)
				}
			case *ast.String:
				emit(string(c.Value), st)
			case *ast.Emphasis:
				next := st
				if c.Level >= 2 {
					next.bold = true
				} else {
					next.italic = true
				}
				walk(c, next)
			case *ast.CodeSpan:
				next := st
				next.code = true
				walk(c, next)
			case *ast.AutoLink:
				emit(string(c.URL(w.source)), st)
			case *ast.Image:
				walk(c, st)
			case *east.TaskCheckBox:
				if c.IsChecked {
					emit("☑ ", st)
				} else {
					emit("☐ ", st)
				}
			case *ast.RawHTML:
				// dropped
			default:
				walk(c, st)
			}
		}
	}

	walk(n, inlineState{})
	return trimSpans(spans)
}

// appendSpan merges s into the last span when their properties match.
func appendSpan(spans []Span, s Span) []Span {
	if last := len(spans) - 1; last >= 0 {
		prev := spans[last]
		if prev.Bold == s.Bold && prev.Italic == s.Italic && prev.Code == s.Code && prev.Mark == s.Mark && prev.Color == s.Color {
			spans[last].Text += s.Text
			return spans
		}
	}
	return append(spans, s)
}

// trimSpans removes leading and trailing whitespace of the span sequence.
func trimSpans(spans []Span) []Span {
	for len(spans) > 0 {
		spans[0].Text = strings.TrimLeft(spans[0].Text, " \t\n")
		if spans[0].Text != "" {
			break
		}
		spans = spans[1:]
	}
	for len(spans) > 0 {
		last := len(spans) - 1
		spans[last].Text = strings.TrimRight(spans[last].Text, " \t\n")
		if spans[last].Text != "" {
			break
		}
		spans = spans[:last]
	}
	return spans
}

func plain(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}
