// Package docxgen builds WordprocessingML (.docx) documents from an ordered
// sequence of blocks: headings, paragraphs, lists, tables and page breaks.
//
// # Quick Start
//
// Create a document, append blocks in reading order, then save:
//
//	doc, err := docxgen.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = doc.AddHeading("Introdução", 1, docxgen.AlignLeft)
//	_ = doc.AddParagraph("Texto do capítulo.", docxgen.AlignJustify, false)
//	doc.AddPageBreak()
//	if err := doc.Save("relatorio.docx"); err != nil {
//	    log.Fatal(err)
//	}
//
// Blocks appear in the file in exactly the order they were appended. Every
// Add method validates its input before touching the document, so a failed
// call leaves it unchanged.
//
// # Rich Paragraphs
//
// A paragraph is a sequence of spans. Character properties belong to the
// span, fixed when it is built:
//
//	_ = doc.AddStyledParagraph(docxgen.AlignLeft, nil,
//	    docxgen.Text("Introdução ..... "),
//	    docxgen.Bold("1"),
//	)
//
// AddIndex and AddReferences build on this for tables of contents with a
// dotted leader and bibliography entries with a hanging indent.
//
// # Page Geometry
//
// A document has a single section. Size and orientation are set with
// WithPageSettings; margins with WithMargins or SetMargins at any time
// before saving. The default is A4 portrait with 2.5 cm margins.
//
//	doc, err := docxgen.New(
//	    docxgen.WithPageSettings(docxgen.PageSettings{
//	        Size:        docxgen.PageSizeLetter,
//	        Orientation: docxgen.OrientationLandscape,
//	        Margins:     docxgen.UniformMargins(docxgen.Inches(1)),
//	    }),
//	)
//
// # Markdown
//
// FromMarkdown converts CommonMark with GFM tables into the same block
// model, with optional YAML front matter and a generated cover page:
//
//	doc, err := docxgen.FromMarkdown(ctx, source, docxgen.WithCover(true))
//
// # Errors
//
// Invalid input returns an error wrapping ErrConfiguration (heading level,
// alignment, table dimensions, margins). I/O failures wrap ErrWriteDocument
// or ErrReadDocument and keep the OS error reachable through errors.Is.
//
// # Determinism
//
// The creation time and identifier are fixed when New is called, so saving
// an unmodified document twice produces byte-identical files.
package docxgen
