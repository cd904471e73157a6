package docxgen

import (
	"fmt"
	"math"
	"strings"

	"github.com/alnah/go-docxgen/internal/pipeline"
)

// Alignment is the horizontal alignment of a heading or paragraph.
type Alignment int

// Alignment values. The zero value is AlignLeft.
const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
)

var alignmentNames = [...]string{"left", "center", "right", "justify"}

func (a Alignment) String() string {
	if !a.valid() {
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
	return alignmentNames[a]
}

func (a Alignment) valid() bool {
	return a >= AlignLeft && a <= AlignJustify
}

// Validate returns ErrInvalidAlignment for values outside the defined set.
func (a Alignment) Validate() error {
	if !a.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidAlignment, int(a))
	}
	return nil
}

// ParseAlignment converts "left", "center", "right" or "justify"
// (case-insensitive) to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	for i, name := range alignmentNames {
		if strings.EqualFold(s, name) {
			return Alignment(i), nil
		}
	}
	return AlignLeft, fmt.Errorf("%w: %q", ErrInvalidAlignment, s)
}

// Length is a distance in twentieths of a point (twips), the unit
// WordprocessingML uses for page geometry and indentation.
type Length int

// Conversion factors to twips.
const (
	twipsPerInch  = 1440
	twipsPerPoint = 20
	cmPerInch     = 2.54
)

// Cm returns the length of n centimeters, rounded to the nearest twip.
func Cm(n float64) Length {
	return Length(math.Round(n * twipsPerInch / cmPerInch))
}

// Inches returns the length of n inches.
func Inches(n float64) Length {
	return Length(math.Round(n * twipsPerInch))
}

// Pt returns the length of n points.
func Pt(n float64) Length {
	return Length(math.Round(n * twipsPerPoint))
}

// Twips returns a length of n twips.
func Twips(n int) Length {
	return Length(n)
}

// Twips returns l as an integer number of twips.
func (l Length) Twips() int { return int(l) }

// Cm returns l in centimeters.
func (l Length) Cm() float64 { return float64(l) * cmPerInch / twipsPerInch }

// Inches returns l in inches.
func (l Length) Inches() float64 { return float64(l) / twipsPerInch }

func (l Length) String() string {
	return fmt.Sprintf("%.2fcm", l.Cm())
}

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// DefaultMargin matches the 2.5 cm margins of the built-in report.
var DefaultMargin = Cm(2.5)

// pageDimensions holds portrait width and height in twips.
var pageDimensions = map[string][2]Length{
	PageSizeA4:     {11906, 16838},
	PageSizeLetter: {12240, 15840},
	PageSizeLegal:  {12240, 20160},
}

// PageSizes returns the supported page size names.
func PageSizes() []string {
	return []string{PageSizeA4, PageSizeLetter, PageSizeLegal}
}

// CodeStyles lists the chroma style names accepted by WithCodeStyle.
func CodeStyles() []string {
	return pipeline.CodeStyles()
}

// Margins are the four page margins of the document's single section.
type Margins struct {
	Top    Length
	Bottom Length
	Left   Length
	Right  Length
}

// UniformMargins returns margins with the same length on every side.
func UniformMargins(l Length) Margins {
	return Margins{Top: l, Bottom: l, Left: l, Right: l}
}

// PageSettings configures the page geometry.
type PageSettings struct {
	Size        string // "a4", "letter", "legal"
	Orientation string // "portrait", "landscape"
	Margins     Margins
}

// DefaultPageSettings returns A4 portrait with 2.5 cm margins.
func DefaultPageSettings() PageSettings {
	return PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margins:     UniformMargins(DefaultMargin),
	}
}

// Dimensions returns the page width and height, swapped for landscape.
func (p PageSettings) Dimensions() (width, height Length) {
	dims, ok := pageDimensions[strings.ToLower(p.Size)]
	if !ok {
		dims = pageDimensions[PageSizeA4]
	}
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		return dims[1], dims[0]
	}
	return dims[0], dims[1]
}

// TextWidth returns the width between the left and right margins.
func (p PageSettings) TextWidth() Length {
	w, _ := p.Dimensions()
	return w - p.Margins.Left - p.Margins.Right
}

// Validate checks size, orientation and margins.
// Does not mutate - uses case-insensitive comparison.
func (p PageSettings) Validate() error {
	if _, ok := pageDimensions[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q (must be a4, letter, or legal)", ErrInvalidPageSize, p.Size)
	}
	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q (must be portrait or landscape)", ErrInvalidOrientation, p.Orientation)
	}
	return p.validateMargins(p.Margins)
}

// validateMargins rejects negative margins and margins that leave no room
// for text: each margin must be below half the page extent on its axis.
func (p PageSettings) validateMargins(m Margins) error {
	w, h := p.Dimensions()
	sides := []struct {
		name  string
		value Length
		limit Length
	}{
		{"top", m.Top, h / 2},
		{"bottom", m.Bottom, h / 2},
		{"left", m.Left, w / 2},
		{"right", m.Right, w / 2},
	}
	for _, s := range sides {
		if s.value < 0 || s.value >= s.limit {
			return fmt.Errorf("%w: %s %s (must be between 0 and %s)", ErrInvalidMargin, s.name, s.value, s.limit)
		}
	}
	return nil
}

// Metadata is written to the document's core properties.
type Metadata struct {
	Title       string
	Subject     string
	Author      string
	Keywords    []string // stored "; "-separated, so a keyword must not contain ';'
	Description string
	Language    string // BCP 47 tag, e.g. "pt-PT"
}
