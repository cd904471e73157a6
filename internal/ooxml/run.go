package ooxml

import (
	"encoding/xml"
	"strings"
)

// BreakPage is the w:type of a page break.
const BreakPage = "page"

// Run represents a run of text sharing one set of properties.
type Run struct {
	Properties *RunProperties `xml:"rPr"`
	Text       *Text          `xml:"t"`
	Break      *Break         `xml:"br"`
}

// MarshalXML writes rPr, then the break, then the text.
func (r Run) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("r")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, r.Properties != nil, r.Properties, "rPr"); err != nil {
		return err
	}
	if err := encodeOptional(e, r.Break != nil, r.Break, "br"); err != nil {
		return err
	}
	if err := encodeOptional(e, r.Text != nil, r.Text, "t"); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// IsBold reports whether the run carries <w:b/>.
func (r *Run) IsBold() bool {
	return r.Properties != nil && r.Properties.Bold != nil
}

// NewTextRun returns a run holding sanitized text.
func NewTextRun(text string, props *RunProperties) Run {
	return Run{Properties: props, Text: NewText(text)}
}

// NewPageBreakRun returns a run holding a page break.
func NewPageBreakRun() Run {
	return Run{Break: &Break{Type: BreakPage}}
}

// RunProperties represents run formatting.
type RunProperties struct {
	Fonts     *Fonts `xml:"rFonts"`
	Bold      *Empty `xml:"b"`
	Italic    *Empty `xml:"i"`
	Color     *Color `xml:"color"`
	Highlight *Style `xml:"highlight"`
}

// MarshalXML writes properties in schema order.
func (p RunProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("rPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Fonts != nil, p.Fonts, "rFonts"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Bold != nil, p.Bold, "b"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Italic != nil, p.Italic, "i"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Color != nil, p.Color, "color"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Highlight != nil, p.Highlight, "highlight"); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Text represents a w:t element.
type Text struct {
	Space   string `xml:"space,attr,omitempty"`
	Content string `xml:",chardata"`
}

// NewText sanitizes s and preserves its surrounding whitespace.
func NewText(s string) *Text {
	s = Sanitize(s)
	t := &Text{Content: s}
	if s != strings.TrimSpace(s) {
		t.Space = "preserve"
	}
	return t
}

// MarshalXML writes <w:t> with xml:space when needed.
func (t Text) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("t")
	start.Attr = nil
	if t.Space != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: "xml:space"}, Value: t.Space})
	}
	return e.EncodeElement(t.Content, start)
}

// Break represents a w:br element.
type Break struct {
	Type string `xml:"type,attr,omitempty"`
}

// MarshalXML writes <w:br/> with its type.
func (b Break) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("br")
	start.Attr = nil
	if b.Type != "" {
		start.Attr = append(start.Attr, wAttr("type", b.Type))
	}
	return e.EncodeElement(struct{}{}, start)
}

// Color is a run color as RRGGBB hex, without the leading '#'.
type Color struct {
	Val string `xml:"val,attr"`
}

// MarshalXML writes <w:color w:val="..."/>.
func (c Color) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("color")
	start.Attr = []xml.Attr{valAttr(strings.TrimPrefix(c.Val, "#"))}
	return e.EncodeElement(struct{}{}, start)
}

// Fonts names the run font for every script.
type Fonts struct {
	ASCII string `xml:"ascii,attr"`
	HAnsi string `xml:"hAnsi,attr"`
	CS    string `xml:"cs,attr"`
}

// NewFonts uses name for ASCII, high ANSI and complex scripts.
func NewFonts(name string) *Fonts {
	return &Fonts{ASCII: name, HAnsi: name, CS: name}
}

// MarshalXML writes <w:rFonts/>.
func (f Fonts) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("rFonts")
	start.Attr = []xml.Attr{
		wAttr("ascii", f.ASCII),
		wAttr("hAnsi", f.HAnsi),
		wAttr("cs", f.CS),
	}
	return e.EncodeElement(struct{}{}, start)
}
