package docxgen

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-docxgen/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.Preprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.Parser       = (*pipeline.GoldmarkParser)(nil)
)

const defaultCodeStyle = pipeline.DefaultCodeStyle

// Converter turns Markdown into Documents. It holds no per-document state and
// may be shared by concurrent goroutines.
type Converter struct {
	preprocessor pipeline.Preprocessor
	parser       pipeline.Parser
}

// NewConverter creates a Converter with the GFM Markdown pipeline.
func NewConverter() *Converter {
	return &Converter{
		preprocessor: &pipeline.CommonMarkPreprocessor{},
		parser:       pipeline.NewGoldmarkParser(),
	}
}

// FromMarkdown converts Markdown with a default Converter.
func FromMarkdown(ctx context.Context, source []byte, opts ...Option) (*Document, error) {
	return NewConverter().Convert(ctx, source, opts...)
}

// Convert builds a Document from Markdown source. Options configure the
// document exactly as for New.
//
// YAML front matter (title, subtitle, author, date, organization, subject,
// keywords, language, cover) fills the metadata and, when cover is enabled,
// a centered cover page. Headings deeper than level 3 are clamped to 3,
// thematic breaks become page breaks, and fenced code is highlighted with
// the configured chroma style.
//
// The context is checked between stages and between blocks. Internal panics
// are recovered and returned as ErrMarkdownConversion.
func (c *Converter) Convert(ctx context.Context, source []byte, opts ...Option) (doc *Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			err = fmt.Errorf("%w: internal error: %v", ErrMarkdownConversion, r)
		}
	}()

	if len(bytes.TrimSpace(source)) == 0 {
		return nil, ErrEmptyMarkdown
	}

	fm, body, err := pipeline.ParseFrontMatter(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMarkdownConversion, err)
	}
	if len(bytes.TrimSpace(body)) == 0 && fm.IsZero() {
		return nil, ErrEmptyMarkdown
	}

	doc, err = New(opts...)
	if err != nil {
		return nil, err
	}
	applyFrontMatter(doc, fm)

	content := c.preprocessor.Preprocess(ctx, string(body))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	nodes, err := c.parser.Parse(ctx, []byte(content))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %w", ErrMarkdownConversion, err)
	}

	cover := doc.cover
	if fm.Cover != nil {
		cover = *fm.Cover
	}
	if cover {
		if err := addCover(doc, fm); err != nil {
			return nil, err
		}
	}

	hl := pipeline.NewHighlighter(doc.codeStyle)
	for i := range nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := appendNode(doc, hl, &nodes[i]); err != nil {
			return nil, fmt.Errorf("%w: block %d (%s): %w", ErrMarkdownConversion, i, nodes[i].Kind, err)
		}
	}

	return doc, nil
}

// applyFrontMatter fills metadata fields not already set through options.
func applyFrontMatter(doc *Document, fm pipeline.FrontMatter) {
	m := &doc.meta
	if m.Title == "" {
		m.Title = fm.Title
	}
	if m.Subject == "" {
		m.Subject = fm.Subject
	}
	if m.Author == "" {
		m.Author = fm.Author
	}
	if m.Description == "" {
		m.Description = fm.Subtitle
	}
	if len(m.Keywords) == 0 && len(fm.Keywords) > 0 {
		m.Keywords = append([]string(nil), fm.Keywords...)
	}
	if m.Language == "" {
		m.Language = fm.Language
	}
}

// addCover writes the organization, title, subtitle, author and date
// centered, followed by a page break.
func addCover(doc *Document, fm pipeline.FrontMatter) error {
	if fm.Title == "" && fm.Organization == "" {
		return nil
	}
	lang := fm.Language
	if lang == "" {
		lang = doc.meta.Language
	}
	date, err := ResolveDate(fm.Date, doc.now(), languageBase(lang))
	if err != nil {
		return fmt.Errorf("%w: cover date: %w", ErrMarkdownConversion, err)
	}

	if fm.Organization != "" {
		if err := doc.AddHeading(fm.Organization, 1, AlignCenter); err != nil {
			return err
		}
	}
	if fm.Title != "" {
		if err := doc.AddTitle(fm.Title, AlignCenter); err != nil {
			return err
		}
	}
	lines := []Span{
		{Text: fm.Subtitle, Italic: true},
		{Text: fm.Author, Bold: true},
		{Text: date},
	}
	for _, s := range lines {
		if s.Text == "" {
			continue
		}
		if err := doc.AddStyledParagraph(AlignCenter, nil, s); err != nil {
			return err
		}
	}
	doc.AddPageBreak()
	return nil
}

// languageBase returns the primary subtag of a BCP 47 tag ("pt-PT" -> "pt").
func languageBase(tag string) string {
	base, _, _ := strings.Cut(tag, "-")
	return strings.ToLower(base)
}

func appendNode(doc *Document, hl *pipeline.Highlighter, n *pipeline.Node) error {
	switch n.Kind {
	case pipeline.NodeHeading:
		return doc.AddHeading(n.Text(), min(max(n.Level, MinHeadingLevel), MaxHeadingLevel), AlignLeft)

	case pipeline.NodeParagraph:
		var indent *Indent
		if n.Quote {
			indent = &Indent{Left: Inches(0.5)}
		}
		return doc.AddStyledParagraph(AlignJustify, indent, convertSpans(n.Spans)...)

	case pipeline.NodeList:
		if len(n.Items) == 0 {
			return nil
		}
		return doc.AddList(n.Items, n.Ordered)

	case pipeline.NodeTable:
		return appendTable(doc, n)

	case pipeline.NodeCode:
		if strings.TrimSpace(n.Code) == "" {
			return nil
		}
		lines, err := hl.Highlight(n.Code, n.Language)
		if err != nil {
			return err
		}
		code := make([][]Span, len(lines))
		for i, line := range lines {
			code[i] = convertSpans(line)
		}
		return doc.AddCodeBlock(code)

	case pipeline.NodePageBreak:
		doc.AddPageBreak()
	}
	return nil
}

// appendTable pads or truncates body rows to the header width, since GFM
// allows rows with a different cell count than the delimiter row.
func appendTable(doc *Document, n *pipeline.Node) error {
	cols := len(n.Header)
	if cols == 0 && len(n.Rows) > 0 {
		cols = len(n.Rows[0])
	}
	if cols == 0 {
		return nil
	}
	rows := make([][]string, len(n.Rows))
	for i, row := range n.Rows {
		fixed := make([]string, cols)
		copy(fixed, row)
		rows[i] = fixed
	}
	return doc.AddTable(rows, n.Header)
}

func convertSpans(in []pipeline.Span) []Span {
	out := make([]Span, len(in))
	for i, s := range in {
		out[i] = Span{
			Text:      s.Text,
			Bold:      s.Bold,
			Italic:    s.Italic,
			Monospace: s.Code,
			Highlight: s.Mark,
			Color:     s.Color,
		}
	}
	return out
}
