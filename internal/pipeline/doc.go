// Package pipeline turns Markdown source into a flat sequence of document
// nodes that the root docxgen package appends to a Document.
//
// Stages:
//   - Front matter extraction (YAML between --- fences)
//   - Markdown preprocessing (line normalization, ==highlight== syntax)
//   - Parsing via Goldmark with GFM extensions, walked into Nodes
//   - Syntax highlighting of fenced code via Chroma, as colored spans
//
// The package knows nothing about WordprocessingML. Nodes carry only what a
// word-processor block needs: text spans, heading levels, list items and
// table cells.
package pipeline
