package pipeline

import (
	"fmt"
	"slices"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// DefaultCodeStyle is the chroma style used when none is configured.
const DefaultCodeStyle = "github"

// CodeStyles returns the names of the available chroma styles, sorted.
func CodeStyles() []string {
	names := styles.Names()
	slices.Sort(names)
	return names
}

// IsCodeStyle reports whether name is a registered chroma style.
func IsCodeStyle(name string) bool {
	return slices.Contains(styles.Names(), name)
}

// Highlighter colors source code into lines of spans.
type Highlighter struct {
	style *chroma.Style
}

// NewHighlighter returns a highlighter for the named chroma style. Unknown
// names fall back to DefaultCodeStyle.
func NewHighlighter(style string) *Highlighter {
	if !IsCodeStyle(style) {
		style = DefaultCodeStyle
	}
	return &Highlighter{style: styles.Get(style)}
}

// Highlight tokenizes code for language and returns one span slice per line.
// An unknown language is guessed from the content, then falls back to plain
// text. Trailing newlines do not produce empty lines.
func (h *Highlighter) Highlight(code, language string) ([][]Span, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	code = strings.TrimRight(code, "\n")
	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, fmt.Errorf("tokenising %s code: %w", lexer.Config().Name, err)
	}

	var out [][]Span
	for _, line := range chroma.SplitTokensIntoLines(it.Tokens()) {
		spans := make([]Span, 0, len(line))
		for _, tok := range line {
			text := strings.TrimSuffix(tok.Value, "\n")
			if text == "" {
				continue
			}
			entry := h.style.Get(tok.Type)
			span := Span{
				Text:   text,
				Code:   true,
				Bold:   entry.Bold == chroma.Yes,
				Italic: entry.Italic == chroma.Yes,
			}
			if entry.Colour.IsSet() {
				span.Color = strings.TrimPrefix(entry.Colour.String(), "#")
			}
			spans = append(spans, span)
		}
		out = append(out, spans)
	}
	return out, nil
}
