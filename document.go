package docxgen

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alnah/go-docxgen/internal/ooxml"
	"github.com/alnah/go-docxgen/internal/pipeline"
)

// DefaultTableStyle is the table style applied when none is configured.
const DefaultTableStyle = ooxml.StyleLightGridAccent1

// Index leader: the label, a run of dots, then the bold page number.
const indexLeaderDots = 50

// Document is an ordered sequence of blocks plus page geometry and metadata.
// Create with New, append with the Add methods, then Save or WriteTo.
//
// A Document is owned by one caller and is not safe for concurrent use.
// Every Add method validates its input first: a failed call leaves the
// document unchanged.
type Document struct {
	blocks     []Block
	page       PageSettings
	meta       Metadata
	tableStyle string
	styles     ooxml.StyleSheet
	codeStyle  string
	cover      bool
	id         string
	created    time.Time
	now        func() time.Time
}

// Option configures a Document.
type Option func(*Document)

// WithPageSettings sets the page size, orientation and margins.
func WithPageSettings(p PageSettings) Option {
	return func(d *Document) {
		d.page = p
	}
}

// WithMargins sets the four page margins, keeping size and orientation.
func WithMargins(m Margins) Option {
	return func(d *Document) {
		d.page.Margins = m
	}
}

// WithMetadata sets the core properties written with the document.
func WithMetadata(m Metadata) Option {
	return func(d *Document) {
		d.meta = m
		d.meta.Keywords = slices.Clone(m.Keywords)
	}
}

// WithTableStyle sets the style applied to every table
// ("LightGridAccent1" or "TableGrid").
func WithTableStyle(name string) Option {
	return func(d *Document) {
		d.tableStyle = name
	}
}

// WithFonts overrides the body, heading and code fonts. Empty names keep
// the defaults.
func WithFonts(body, heading, code string) Option {
	return func(d *Document) {
		d.styles.BodyFont = body
		d.styles.HeadingFont = heading
		d.styles.CodeFont = code
	}
}

// WithCodeStyle sets the chroma style used to color fenced code in
// FromMarkdown (default "github"). See CodeStyles for valid names.
func WithCodeStyle(name string) Option {
	return func(d *Document) {
		d.codeStyle = name
	}
}

// WithCover makes FromMarkdown emit a cover page from the front matter.
func WithCover(enabled bool) Option {
	return func(d *Document) {
		d.cover = enabled
	}
}

// WithIdentifier sets the document identifier. By default a random UUID is
// generated by New.
func WithIdentifier(id string) Option {
	return func(d *Document) {
		d.id = id
	}
}

// WithCreated fixes the creation time written to the core properties and
// used as the archive timestamp. Defaults to the time New was called.
func WithCreated(t time.Time) Option {
	return func(d *Document) {
		d.created = t
	}
}

// WithClock injects the time source used when no creation time is set.
func WithClock(now func() time.Time) Option {
	return func(d *Document) {
		d.now = now
	}
}

// New creates an empty document. Defaults are A4 portrait with 2.5 cm
// margins and the LightGridAccent1 table style.
// Returns an error wrapping ErrConfiguration if an option is invalid.
func New(opts ...Option) (*Document, error) {
	d := &Document{
		page:       DefaultPageSettings(),
		tableStyle: DefaultTableStyle,
		styles:     ooxml.DefaultStyleSheet(),
		codeStyle:  defaultCodeStyle,
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(d)
	}

	if err := d.page.Validate(); err != nil {
		return nil, err
	}
	if !ooxml.KnownTableStyle(d.tableStyle) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTableStyle, d.tableStyle)
	}
	if !pipeline.IsCodeStyle(d.codeStyle) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCodeStyle, d.codeStyle)
	}

	if d.id == "" {
		d.id = uuid.NewString()
	}
	if d.created.IsZero() {
		d.created = d.now()
	}
	// Core properties carry second precision; keep saves reproducible.
	d.created = d.created.UTC().Truncate(time.Second)

	return d, nil
}

// Blocks returns the blocks in call order. The slice is a copy; the blocks
// themselves must not be modified.
func (d *Document) Blocks() []Block {
	return slices.Clone(d.blocks)
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	return len(d.blocks)
}

// PageSettings returns the current page geometry.
func (d *Document) PageSettings() PageSettings {
	return d.page
}

// Metadata returns the document metadata.
func (d *Document) Metadata() Metadata {
	m := d.meta
	m.Keywords = slices.Clone(d.meta.Keywords)
	return m
}

// Identifier returns the identifier written to the core properties.
func (d *Document) Identifier() string {
	return d.id
}

// Created returns the creation time written to the core properties.
func (d *Document) Created() time.Time {
	return d.created
}

// AddPageBreak appends a page break.
func (d *Document) AddPageBreak() {
	d.blocks = append(d.blocks, &PageBreak{})
}

// AddHeading appends a heading. Level must be between 1 and 3.
func (d *Document) AddHeading(text string, level int, align Alignment) error {
	if level < MinHeadingLevel || level > MaxHeadingLevel {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidHeadingLevel, level, MinHeadingLevel, MaxHeadingLevel)
	}
	if err := align.Validate(); err != nil {
		return err
	}
	d.blocks = append(d.blocks, &Heading{Text: text, Level: level, Align: align})
	return nil
}

// AddTitle appends a paragraph in the Title style.
func (d *Document) AddTitle(text string, align Alignment) error {
	if err := align.Validate(); err != nil {
		return err
	}
	d.blocks = append(d.blocks, &Paragraph{Spans: []Span{Text(text)}, Align: align, Style: StyleTitle})
	return nil
}

// AddParagraph appends a paragraph made of a single span. When bold is
// true the whole text is bold.
func (d *Document) AddParagraph(text string, align Alignment, bold bool) error {
	return d.AddStyledParagraph(align, nil, Span{Text: text, Bold: bold})
}

// AddStyledParagraph appends a paragraph made of several spans, each with
// its own character properties.
func (d *Document) AddStyledParagraph(align Alignment, indent *Indent, spans ...Span) error {
	p, err := newParagraph(align, indent, StyleNormal, spans)
	if err != nil {
		return err
	}
	d.blocks = append(d.blocks, p)
	return nil
}

// AddCodeBlock appends one Code-style paragraph per line. Each line is a
// sequence of spans, usually produced by a syntax highlighter.
func (d *Document) AddCodeBlock(lines [][]Span) error {
	if len(lines) == 0 {
		return fmt.Errorf("%w: code block has no lines", ErrEmptyParagraph)
	}
	paras := make([]Block, 0, len(lines))
	for _, line := range lines {
		if len(line) == 0 {
			line = []Span{{}}
		}
		mono := make([]Span, len(line))
		for i, s := range line {
			s.Monospace = true
			mono[i] = s
		}
		p, err := newParagraph(AlignLeft, nil, StyleCode, mono)
		if err != nil {
			return err
		}
		paras = append(paras, p)
	}
	d.blocks = append(d.blocks, paras...)
	return nil
}

func newParagraph(align Alignment, indent *Indent, style ParagraphStyle, spans []Span) (*Paragraph, error) {
	if len(spans) == 0 {
		return nil, ErrEmptyParagraph
	}
	if err := align.Validate(); err != nil {
		return nil, err
	}
	if err := indent.Validate(); err != nil {
		return nil, err
	}
	for _, s := range spans {
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	p := &Paragraph{Spans: slices.Clone(spans), Align: align, Style: style}
	if indent != nil {
		ind := *indent
		p.Indent = &ind
	}
	return p, nil
}

// AddList appends a bulleted list, or a numbered list restarting at 1 when
// ordered is true.
func (d *Document) AddList(items []string, ordered bool) error {
	if len(items) == 0 {
		return ErrEmptyList
	}
	d.blocks = append(d.blocks, &List{Items: slices.Clone(items), Ordered: ordered})
	return nil
}

// AddTable appends a table. Every row must have the header's column count,
// or the first row's when headers is empty. Header cells are bold.
func (d *Document) AddTable(rows [][]string, headers []string) error {
	if len(rows) == 0 && len(headers) == 0 {
		return ErrEmptyTable
	}

	cols := len(headers)
	if cols == 0 {
		cols = len(rows[0])
	}
	if cols == 0 {
		return fmt.Errorf("%w: rows have no cells", ErrEmptyTable)
	}
	for i, row := range rows {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrDimensionMismatch, i, len(row), cols)
		}
	}

	copied := make([][]string, len(rows))
	for i, row := range rows {
		copied[i] = slices.Clone(row)
	}
	d.blocks = append(d.blocks, &Table{
		Headers: slices.Clone(headers),
		Rows:    copied,
		Style:   d.tableStyle,
	})
	return nil
}

// AddIndex appends one paragraph per entry: the label, a dotted leader,
// then the page number in bold.
func (d *Document) AddIndex(entries []IndexEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: index has no entries", ErrEmptyList)
	}
	leader := " " + strings.Repeat(".", indexLeaderDots) + " "
	for _, e := range entries {
		d.blocks = append(d.blocks, &Paragraph{
			Spans: []Span{Text(e.Label), Text(leader), Bold(e.Page)},
		})
	}
	return nil
}

// AddReferences appends bibliography entries with a half-inch hanging indent.
func (d *Document) AddReferences(refs []string) error {
	if len(refs) == 0 {
		return fmt.Errorf("%w: no references", ErrEmptyList)
	}
	for _, ref := range refs {
		d.blocks = append(d.blocks, &Paragraph{
			Spans:  []Span{Text(ref)},
			Indent: &Indent{Left: Inches(0.5), FirstLine: Inches(-0.5)},
		})
	}
	return nil
}

// SetMargins replaces the four page margins of the single section. Each
// margin must be non-negative and smaller than half the page extent.
func (d *Document) SetMargins(top, bottom, left, right Length) error {
	m := Margins{Top: top, Bottom: bottom, Left: left, Right: right}
	if err := d.page.validateMargins(m); err != nil {
		return err
	}
	d.page.Margins = m
	return nil
}
