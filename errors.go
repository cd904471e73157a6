package docxgen

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the parent of every error caused by invalid input to a
// builder call. Use errors.Is(err, ErrConfiguration) to detect the class.
var ErrConfiguration = errors.New("invalid document configuration")

// Configuration errors.
var (
	ErrInvalidHeadingLevel = fmt.Errorf("%w: invalid heading level", ErrConfiguration)
	ErrInvalidAlignment    = fmt.Errorf("%w: invalid alignment", ErrConfiguration)
	ErrEmptyList           = fmt.Errorf("%w: list has no items", ErrConfiguration)
	ErrEmptyParagraph      = fmt.Errorf("%w: paragraph has no spans", ErrConfiguration)
	ErrDimensionMismatch   = fmt.Errorf("%w: table row length mismatch", ErrConfiguration)
	ErrEmptyTable          = fmt.Errorf("%w: table has no rows", ErrConfiguration)
	ErrInvalidMargin       = fmt.Errorf("%w: invalid margin", ErrConfiguration)
	ErrInvalidIndent       = fmt.Errorf("%w: invalid indent", ErrConfiguration)
	ErrInvalidColor        = fmt.Errorf("%w: invalid color", ErrConfiguration)

	// Page settings validation errors.
	ErrInvalidPageSize    = fmt.Errorf("%w: invalid page size", ErrConfiguration)
	ErrInvalidOrientation = fmt.Errorf("%w: invalid orientation", ErrConfiguration)
	ErrInvalidTableStyle  = fmt.Errorf("%w: unknown table style", ErrConfiguration)
	ErrInvalidCodeStyle   = fmt.Errorf("%w: unknown code style", ErrConfiguration)
)

// I/O errors.
var (
	ErrWriteDocument = errors.New("failed to write document")
	ErrReadDocument  = errors.New("failed to read document")
)

// Markdown import errors.
var (
	ErrEmptyMarkdown      = errors.New("markdown content cannot be empty")
	ErrMarkdownConversion = errors.New("markdown conversion failed")
)
