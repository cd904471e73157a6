package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters. They pass
// through Goldmark as plain text and are turned into highlighted spans when
// the AST is walked.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

var (
	crlfOrCR         = regexp.MustCompile(`\r\n?`)
	highlightPattern = regexp.MustCompile(`==([^=\n]+?)==`)
	fencePattern     = regexp.MustCompile("^\\s*(```|~~~)")
)

// Preprocessor prepares Markdown source before parsing.
type Preprocessor interface {
	Preprocess(ctx context.Context, content string) string
}

// CommonMarkPreprocessor normalizes line endings, compresses blank lines and
// rewrites ==text== into highlight placeholders outside fenced code.
type CommonMarkPreprocessor struct{}

// Preprocess applies all transformations. It returns content unchanged if
// ctx is already done.
func (p *CommonMarkPreprocessor) Preprocess(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	content = convertHighlights(content)
	content = compressBlankLines(content)
	return content
}

func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines collapses runs of empty lines into one, leaving fenced
// code alone.
func compressBlankLines(content string) string {
	lines := strings.Split(content, "\n")
	out := lines[:0]
	inFence := false
	blank := false
	for _, line := range lines {
		if fencePattern.MatchString(line) {
			inFence = !inFence
		}
		if line == "" && !inFence {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// convertHighlights rewrites ==text== line by line, leaving fenced code alone.
func convertHighlights(content string) string {
	lines := strings.Split(content, "\n")
	inFence := false
	for i, line := range lines {
		if fencePattern.MatchString(line) {
			inFence = !inFence
			continue
		}
		if !inFence {
			lines[i] = highlightPattern.ReplaceAllString(line, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
		}
	}
	return strings.Join(lines, "\n")
}
