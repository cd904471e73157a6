package docxgen

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-docxgen/internal/ooxml"
)

// BlockSummary describes one block read back from a saved document.
type BlockSummary struct {
	Kind    Kind
	Text    string     // heading or paragraph text
	Level   int        // heading level
	Style   string     // paragraph or table style ID
	Align   Alignment  // heading or paragraph alignment
	Bold    bool       // every run of the paragraph is bold
	Indent  *Indent    // paragraph indentation, nil when unset
	Items   []string   // list items
	Ordered bool       // numbered list
	Header  bool       // table has a header row
	Cells   [][]string // table cells, header row first
}

// Inspection is the content of a saved document.
type Inspection struct {
	Blocks     []BlockSummary
	PageWidth  Length
	PageHeight Length
	Landscape  bool
	Margins    Margins
	Metadata   Metadata
	Identifier string
	Created    time.Time
}

// Inspect reads a .docx archive and lists its blocks in document order.
// Consecutive list paragraphs sharing a numbering instance are folded back
// into one list block.
func Inspect(r io.ReaderAt, size int64) (*Inspection, error) {
	contents, err := ooxml.ReadPackage(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}

	out := &Inspection{
		Identifier: contents.Core.Identifier,
		Created:    contents.Core.Created,
		Metadata: Metadata{
			Title:       contents.Core.Title,
			Subject:     contents.Core.Subject,
			Author:      contents.Core.Creator,
			Keywords:    splitKeywords(contents.Core.Keywords),
			Description: contents.Core.Description,
			Language:    contents.Core.Language,
		},
	}

	body := contents.Document.Body
	if sect := body.Section; sect != nil {
		if sect.PageSize != nil {
			out.PageWidth = Twips(sect.PageSize.W)
			out.PageHeight = Twips(sect.PageSize.H)
			out.Landscape = sect.PageSize.Orient == OrientationLandscape
		}
		if m := sect.PageMargins; m != nil {
			out.Margins = Margins{
				Top:    Twips(m.Top),
				Bottom: Twips(m.Bottom),
				Left:   Twips(m.Left),
				Right:  Twips(m.Right),
			}
		}
	}

	listID := 0
	for _, el := range body.Elements {
		switch el := el.(type) {
		case *ooxml.Paragraph:
			if id := numberingID(el); id > 0 {
				last := len(out.Blocks) - 1
				if id == listID && last >= 0 && out.Blocks[last].Kind == KindList {
					out.Blocks[last].Items = append(out.Blocks[last].Items, el.Text())
					continue
				}
				listID = id
				out.Blocks = append(out.Blocks, BlockSummary{
					Kind:    KindList,
					Style:   el.StyleID(),
					Align:   parseJc(el),
					Items:   []string{el.Text()},
					Ordered: el.StyleID() == ooxml.StyleListNumber,
				})
				continue
			}
			listID = 0
			out.Blocks = append(out.Blocks, summarizeParagraph(el))
		case *ooxml.Table:
			listID = 0
			out.Blocks = append(out.Blocks, summarizeTable(el))
		}
	}

	return out, nil
}

// InspectFile opens path and calls Inspect.
func InspectFile(path string) (*Inspection, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided input file
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadDocument, err)
	}
	return Inspect(f, info.Size())
}

func summarizeParagraph(p *ooxml.Paragraph) BlockSummary {
	if p.IsPageBreak() {
		return BlockSummary{Kind: KindPageBreak}
	}

	style := p.StyleID()
	if level, ok := headingLevel(style); ok {
		return BlockSummary{
			Kind:  KindHeading,
			Text:  p.Text(),
			Level: level,
			Style: style,
			Align: parseJc(p),
		}
	}

	bold := len(p.Runs) > 0
	for i := range p.Runs {
		if !p.Runs[i].IsBold() {
			bold = false
			break
		}
	}
	return BlockSummary{
		Kind:   KindParagraph,
		Text:   p.Text(),
		Style:  style,
		Align:  parseJc(p),
		Bold:   bold,
		Indent: readIndent(p),
	}
}

// readIndent accepts both firstLine and hanging, as Word writes either.
func readIndent(p *ooxml.Paragraph) *Indent {
	if p.Properties == nil || p.Properties.Indentation == nil {
		return nil
	}
	ind := p.Properties.Indentation
	return &Indent{Left: Twips(ind.Left), FirstLine: Twips(ind.EffectiveFirstLine())}
}

func summarizeTable(t *ooxml.Table) BlockSummary {
	s := BlockSummary{Kind: KindTable, Style: t.StyleID()}
	for i := range t.Rows {
		row := &t.Rows[i]
		if i == 0 && row.IsHeader() {
			s.Header = true
		}
		cells := make([]string, len(row.Cells))
		for j := range row.Cells {
			cells[j] = row.Cells[j].Text()
		}
		s.Cells = append(s.Cells, cells)
	}
	return s
}

func headingLevel(style string) (int, bool) {
	n, ok := strings.CutPrefix(style, "Heading")
	if !ok {
		return 0, false
	}
	level, err := strconv.Atoi(n)
	if err != nil {
		return 0, false
	}
	return level, true
}

func numberingID(p *ooxml.Paragraph) int {
	if p.Properties == nil || p.Properties.Numbering == nil || p.Properties.Numbering.NumID == nil {
		return 0
	}
	return p.Properties.Numbering.NumID.Val
}

func parseJc(p *ooxml.Paragraph) Alignment {
	if p.Properties == nil || p.Properties.Alignment == nil {
		return AlignLeft
	}
	switch p.Properties.Alignment.Val {
	case ooxml.JustifyCenter:
		return AlignCenter
	case ooxml.JustifyRight, "end":
		return AlignRight
	case ooxml.JustifyBoth, "distribute":
		return AlignJustify
	}
	return AlignLeft
}

// keywordSeparator joins keywords in the core properties. Documents from
// other tools often use commas instead, which are accepted on read when no
// semicolon is present.
const keywordSeparator = ";"

func splitKeywords(s string) []string {
	if s == "" {
		return nil
	}
	sep := keywordSeparator
	if !strings.Contains(s, sep) {
		sep = ","
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
