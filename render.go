package docxgen

import (
	"strings"

	"github.com/alnah/go-docxgen/internal/ooxml"
)

// Section header and footer distances (1.25 cm), as Word writes by default.
const headerFooterDistance = 708

var jcValues = [...]string{
	AlignLeft:    ooxml.JustifyLeft,
	AlignCenter:  ooxml.JustifyCenter,
	AlignRight:   ooxml.JustifyRight,
	AlignJustify: ooxml.JustifyBoth,
}

// renderer turns blocks into WordprocessingML. One renderer serves one
// serialization so list numbering always starts from the same state.
type renderer struct {
	doc       *Document
	numbering ooxml.Numbering
}

func (d *Document) pack() *ooxml.Package {
	r := &renderer{doc: d}
	body := &ooxml.Body{Elements: make([]ooxml.BodyElement, 0, len(d.blocks))}
	for _, b := range d.blocks {
		body.Elements = append(body.Elements, r.block(b)...)
	}
	body.Section = r.section()

	return &ooxml.Package{
		Document:  &ooxml.Document{Body: body},
		Styles:    d.styles,
		Numbering: &r.numbering,
		Core: ooxml.CoreProperties{
			Title:       d.meta.Title,
			Subject:     d.meta.Subject,
			Creator:     d.meta.Author,
			Keywords:    strings.Join(d.meta.Keywords, keywordSeparator+" "),
			Description: d.meta.Description,
			Identifier:  d.id,
			Language:    d.meta.Language,
			Created:     d.created,
		},
	}
}

func (r *renderer) block(b Block) []ooxml.BodyElement {
	switch b := b.(type) {
	case *Heading:
		return []ooxml.BodyElement{r.heading(b)}
	case *Paragraph:
		return []ooxml.BodyElement{r.paragraph(b)}
	case *List:
		return r.list(b)
	case *Table:
		return []ooxml.BodyElement{r.table(b)}
	case *PageBreak:
		return []ooxml.BodyElement{&ooxml.Paragraph{Runs: []ooxml.Run{ooxml.NewPageBreakRun()}}}
	}
	return nil
}

func (r *renderer) heading(h *Heading) *ooxml.Paragraph {
	return &ooxml.Paragraph{
		Properties: &ooxml.ParagraphProperties{
			Style:     &ooxml.Style{Val: ooxml.HeadingStyle(h.Level)},
			Alignment: alignment(h.Align),
		},
		Runs: []ooxml.Run{ooxml.NewTextRun(h.Text, nil)},
	}
}

func (r *renderer) paragraph(p *Paragraph) *ooxml.Paragraph {
	props := &ooxml.ParagraphProperties{Alignment: alignment(p.Align)}
	switch p.Style {
	case StyleTitle:
		props.Style = &ooxml.Style{Val: ooxml.StyleTitle}
	case StyleCode:
		props.Style = &ooxml.Style{Val: ooxml.StyleCode}
	}
	if p.Indent != nil {
		props.Indentation = &ooxml.Indentation{
			Left:      p.Indent.Left.Twips(),
			FirstLine: p.Indent.FirstLine.Twips(),
		}
	}

	runs := make([]ooxml.Run, 0, len(p.Spans))
	for _, s := range p.Spans {
		runs = append(runs, ooxml.NewTextRun(s.Text, r.runProperties(s)))
	}
	return &ooxml.Paragraph{Properties: props, Runs: runs}
}

func (r *renderer) runProperties(s Span) *ooxml.RunProperties {
	if !s.Bold && !s.Italic && !s.Monospace && !s.Highlight && s.Color == "" {
		return nil
	}
	props := &ooxml.RunProperties{}
	if s.Monospace {
		props.Fonts = ooxml.NewFonts(r.codeFont())
	}
	if s.Bold {
		props.Bold = &ooxml.Empty{}
	}
	if s.Italic {
		props.Italic = &ooxml.Empty{}
	}
	if s.Color != "" {
		props.Color = &ooxml.Color{Val: strings.ToUpper(strings.TrimPrefix(s.Color, "#"))}
	}
	if s.Highlight {
		props.Highlight = &ooxml.Style{Val: "yellow"}
	}
	return props
}

func (r *renderer) codeFont() string {
	if r.doc.styles.CodeFont != "" {
		return r.doc.styles.CodeFont
	}
	return ooxml.DefaultStyleSheet().CodeFont
}

func (r *renderer) list(l *List) []ooxml.BodyElement {
	style := ooxml.StyleListBullet
	if l.Ordered {
		style = ooxml.StyleListNumber
	}
	numID := r.numbering.Next(l.Ordered)

	out := make([]ooxml.BodyElement, 0, len(l.Items))
	for _, item := range l.Items {
		out = append(out, &ooxml.Paragraph{
			Properties: &ooxml.ParagraphProperties{
				Style: &ooxml.Style{Val: style},
				Numbering: &ooxml.NumberingProps{
					Level: &ooxml.DecimalNumber{Val: 0},
					NumID: &ooxml.DecimalNumber{Val: numID},
				},
				Alignment: alignment(l.Align()),
			},
			Runs: []ooxml.Run{ooxml.NewTextRun(item, nil)},
		})
	}
	return out
}

func (r *renderer) table(t *Table) *ooxml.Table {
	cols := t.Columns()
	colWidth := r.doc.page.TextWidth().Twips() / cols

	grid := &ooxml.TableGrid{Columns: make([]ooxml.GridColumn, cols)}
	for i := range grid.Columns {
		grid.Columns[i] = ooxml.GridColumn{W: colWidth}
	}

	tbl := &ooxml.Table{
		Properties: &ooxml.TableProperties{
			Style: &ooxml.Style{Val: t.Style},
			Width: &ooxml.Width{W: 5000, Type: "pct"},
			Look:  &ooxml.TableLook{FirstRow: len(t.Headers) > 0, NoVBand: true},
		},
		Grid: grid,
		Rows: make([]ooxml.TableRow, 0, len(t.Rows)+1),
	}

	if len(t.Headers) > 0 {
		row := tableRow(t.Headers, colWidth, &ooxml.RunProperties{Bold: &ooxml.Empty{}})
		row.Properties = &ooxml.TableRowProperties{Header: &ooxml.Empty{}}
		tbl.Rows = append(tbl.Rows, row)
	}
	for _, cells := range t.Rows {
		tbl.Rows = append(tbl.Rows, tableRow(cells, colWidth, nil))
	}
	return tbl
}

func tableRow(cells []string, width int, props *ooxml.RunProperties) ooxml.TableRow {
	row := ooxml.TableRow{Cells: make([]ooxml.TableCell, len(cells))}
	for i, text := range cells {
		row.Cells[i] = ooxml.TableCell{
			Properties: &ooxml.TableCellProperties{Width: &ooxml.Width{W: width, Type: "dxa"}},
			Paragraphs: []ooxml.Paragraph{{Runs: []ooxml.Run{ooxml.NewTextRun(text, props)}}},
		}
	}
	return row
}

func (r *renderer) section() *ooxml.SectionProperties {
	p := r.doc.page
	w, h := p.Dimensions()
	size := &ooxml.PageSize{W: w.Twips(), H: h.Twips()}
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		size.Orient = OrientationLandscape
	}
	return &ooxml.SectionProperties{
		PageSize: size,
		PageMargins: &ooxml.PageMargins{
			Top:    p.Margins.Top.Twips(),
			Right:  p.Margins.Right.Twips(),
			Bottom: p.Margins.Bottom.Twips(),
			Left:   p.Margins.Left.Twips(),
			Header: headerFooterDistance,
			Footer: headerFooterDistance,
		},
	}
}

func alignment(a Alignment) *ooxml.Alignment {
	if !a.valid() {
		return nil
	}
	return &ooxml.Alignment{Val: jcValues[a]}
}
