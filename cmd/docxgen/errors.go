package main

import (
	"errors"
	"io/fs"

	docxgen "github.com/alnah/go-docxgen"
	"github.com/alnah/go-docxgen/internal/config"
	"github.com/alnah/go-docxgen/internal/dateutil"
	"github.com/alnah/go-docxgen/internal/hints"
	"github.com/alnah/go-docxgen/internal/ooxml"
)

// fileError attaches the input file to a single-file conversion failure.
type fileError struct {
	path string
	err  error
}

func (e *fileError) Error() string { return e.path + ": " + e.err.Error() }
func (e *fileError) Unwrap() error { return e.err }

// formatError renders err for stderr with an actionable hint when one
// applies.
func formatError(err error) string {
	return "Error: " + err.Error() + hintFor(err)
}

func hintFor(err error) string {
	var notFound *config.NotFoundError
	if errors.As(err, &notFound) {
		return hints.ForConfigNotFound(notFound.Tried)
	}

	var pathErr *fs.PathError
	switch {
	case errors.Is(err, ErrOutputDirectory):
		return hints.ForOutputDirectory()
	case errors.Is(err, fs.ErrPermission) && errors.As(err, &pathErr):
		return hints.ForPermission(pathErr.Path)
	case errors.Is(err, docxgen.ErrInvalidPageSize), config.HasFieldError(err, "page", "size"):
		return hints.ForChoice("page size", docxgen.PageSizes())
	case errors.Is(err, docxgen.ErrInvalidOrientation), config.HasFieldError(err, "page", "orientation"):
		return hints.ForChoice("orientation", []string{docxgen.OrientationPortrait, docxgen.OrientationLandscape})
	case errors.Is(err, docxgen.ErrInvalidTableStyle), config.HasFieldError(err, "table", "style"):
		return hints.ForChoice("table style", []string{ooxml.StyleLightGridAccent1, ooxml.StyleTableGrid})
	case errors.Is(err, docxgen.ErrInvalidCodeStyle), config.HasFieldError(err, "code", "style"):
		return hints.ForChoice("code style", docxgen.CodeStyles())
	case errors.Is(err, dateutil.ErrInvalidDateFormat), config.HasFieldError(err, "document", "date"):
		return hints.ForDate()
	}

	var fe *fileError
	if errors.Is(err, docxgen.ErrEmptyMarkdown) && errors.As(err, &fe) {
		return hints.ForEmptyMarkdown(fe.path)
	}
	return ""
}
