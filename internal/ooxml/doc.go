// Package ooxml models the subset of WordprocessingML that go-docxgen emits
// and serializes it as a DOCX package.
//
// A DOCX file is a ZIP archive of XML parts. This package writes the parts
// below, always in this order:
//
//	[Content_Types].xml
//	_rels/.rels
//	docProps/core.xml
//	docProps/app.xml
//	word/document.xml
//	word/styles.xml
//	word/numbering.xml
//	word/settings.xml
//	word/_rels/document.xml.rels
//
// # Structure Organization
//
//   - types.go: body element interface, shared value elements (Style, Empty)
//   - document.go: Document, Body and section properties
//   - paragraph.go: Paragraph and paragraph properties (alignment, indent, numbering)
//   - run.go: Run, Text, Break and run properties
//   - table.go: Table, rows, cells and table properties
//   - styles.go, numbering.go: style sheet and list definitions
//   - pkg.go: ZIP packaging and core properties
//   - reader.go: decoding word/document.xml back into the same types
//
// Element names are written with their conventional "w:" prefix and the root
// element declares the namespaces, so the output matches what Word produces.
// Decoding matches on local names only, so documents written by other tools
// can be read as long as they use the same elements.
package ooxml
