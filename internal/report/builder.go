package report

import docxgen "github.com/alnah/go-docxgen"

// builder appends blocks to a document and keeps the first error, so the
// report content reads as a plain sequence of calls.
type builder struct {
	doc *docxgen.Document
	err error
}

func (b *builder) do(fn func() error) {
	if b.err == nil {
		b.err = fn()
	}
}

// heading appends a left-aligned heading.
func (b *builder) heading(text string, level int) {
	b.do(func() error { return b.doc.AddHeading(text, level, docxgen.AlignLeft) })
}

func (b *builder) centeredHeading(text string, level int) {
	b.do(func() error { return b.doc.AddHeading(text, level, docxgen.AlignCenter) })
}

// para appends a justified body paragraph.
func (b *builder) para(text string) {
	b.do(func() error { return b.doc.AddParagraph(text, docxgen.AlignJustify, false) })
}

func (b *builder) boldPara(text string) {
	b.do(func() error { return b.doc.AddParagraph(text, docxgen.AlignJustify, true) })
}

func (b *builder) centered(text string, bold bool) {
	b.do(func() error { return b.doc.AddParagraph(text, docxgen.AlignCenter, bold) })
}

func (b *builder) bullets(items ...string) {
	b.do(func() error { return b.doc.AddList(items, false) })
}

func (b *builder) numbered(items ...string) {
	b.do(func() error { return b.doc.AddList(items, true) })
}

func (b *builder) table(rows [][]string, headers ...string) {
	b.do(func() error { return b.doc.AddTable(rows, headers) })
}

func (b *builder) index(entries []docxgen.IndexEntry) {
	b.do(func() error { return b.doc.AddIndex(entries) })
}

func (b *builder) references(refs ...string) {
	b.do(func() error { return b.doc.AddReferences(refs) })
}

func (b *builder) pageBreak() {
	if b.err == nil {
		b.doc.AddPageBreak()
	}
}
