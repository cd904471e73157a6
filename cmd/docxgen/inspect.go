package main

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	docxgen "github.com/alnah/go-docxgen"
)

// runInspect prints one line per block of a saved document.
func runInspect(args []string, env *Environment) error {
	flags, positional, err := parseInspectFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		return &usageError{err: fmt.Errorf("%w: inspect needs exactly one .docx file", ErrNoInput)}
	}

	return withLogger(*flags, env, func(logger *zap.Logger) error {
		path := positional[0]
		info, err := docxgen.InspectFile(path)
		if err != nil {
			return err
		}
		logger.Debug("inspected", zap.String("path", path), zap.Int("blocks", len(info.Blocks)))
		printInspection(env.Stdout, info, flags.quiet)
		return nil
	})
}

// printInspection writes the page geometry header (unless quiet) and then
// the block lines.
func printInspection(w io.Writer, info *docxgen.Inspection, quiet bool) {
	if !quiet {
		fmt.Fprintf(w, "page %s x %s, margins %s %s %s %s\n",
			info.PageWidth, info.PageHeight,
			info.Margins.Top, info.Margins.Bottom, info.Margins.Left, info.Margins.Right)
		if info.Metadata.Title != "" {
			fmt.Fprintf(w, "title %q\n", info.Metadata.Title)
		}
	}
	for i, b := range info.Blocks {
		fmt.Fprintf(w, "%3d %s\n", i+1, describeBlock(b))
	}
}

// describeBlock renders a block summary on one line.
func describeBlock(b docxgen.BlockSummary) string {
	switch b.Kind {
	case docxgen.KindHeading:
		return fmt.Sprintf("heading h%d %s %q", b.Level, b.Align, b.Text)
	case docxgen.KindParagraph:
		bold := ""
		if b.Bold {
			bold = " bold"
		}
		indent := ""
		if b.Indent != nil {
			indent = fmt.Sprintf(" indent %s/%s", b.Indent.Left, b.Indent.FirstLine)
		}
		return fmt.Sprintf("paragraph %s%s%s %q", b.Align, bold, indent, b.Text)
	case docxgen.KindList:
		kind := "bullet"
		if b.Ordered {
			kind = "numbered"
		}
		return fmt.Sprintf("list %s %d items [%s]", kind, len(b.Items), strings.Join(b.Items, " | "))
	case docxgen.KindTable:
		cols := 0
		if len(b.Cells) > 0 {
			cols = len(b.Cells[0])
		}
		header := ""
		if b.Header {
			header = " header"
		}
		return fmt.Sprintf("table %dx%d%s %s", len(b.Cells), cols, header, b.Style)
	case docxgen.KindPageBreak:
		return "page break"
	default:
		return b.Kind.String()
	}
}
