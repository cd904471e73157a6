package ooxml

import (
	"encoding/xml"
	"strconv"
	"strings"
)

// Paragraph alignment values (ST_Jc).
const (
	JustifyLeft   = "left"
	JustifyCenter = "center"
	JustifyRight  = "right"
	JustifyBoth   = "both"
)

// Paragraph represents a paragraph in the document.
type Paragraph struct {
	Properties *ParagraphProperties `xml:"pPr"`
	Runs       []Run                `xml:"r"`
}

func (Paragraph) isBodyElement() {}

// MarshalXML writes the paragraph properties followed by its runs.
func (p Paragraph) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("p")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Properties != nil, p.Properties, "pPr"); err != nil {
		return err
	}
	for i := range p.Runs {
		if err := e.EncodeElement(&p.Runs[i], xml.StartElement{Name: wName("r")}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for i := range p.Runs {
		if p.Runs[i].Text != nil {
			b.WriteString(p.Runs[i].Text.Content)
		}
	}
	return b.String()
}

// StyleID returns the paragraph style, or "" when none is set.
func (p *Paragraph) StyleID() string {
	if p.Properties == nil || p.Properties.Style == nil {
		return ""
	}
	return p.Properties.Style.Val
}

// IsPageBreak reports whether the paragraph only carries a page break.
func (p *Paragraph) IsPageBreak() bool {
	found := false
	for i := range p.Runs {
		r := &p.Runs[i]
		if r.Text != nil && r.Text.Content != "" {
			return false
		}
		if r.Break != nil && r.Break.Type == BreakPage {
			found = true
		}
	}
	return found
}

// ParagraphProperties represents paragraph formatting properties.
type ParagraphProperties struct {
	Style       *Style          `xml:"pStyle"`
	Numbering   *NumberingProps `xml:"numPr"`
	Indentation *Indentation    `xml:"ind"`
	Alignment   *Alignment      `xml:"jc"`
}

// MarshalXML writes properties in schema order: pStyle, numPr, ind, jc.
func (p ParagraphProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("pPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Style != nil, p.Style, "pStyle"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Numbering != nil, p.Numbering, "numPr"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Indentation != nil, p.Indentation, "ind"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Alignment != nil, p.Alignment, "jc"); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// NumberingProps attaches a paragraph to a list instance.
type NumberingProps struct {
	Level *DecimalNumber `xml:"ilvl"`
	NumID *DecimalNumber `xml:"numId"`
}

// MarshalXML writes ilvl before numId.
func (n NumberingProps) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("numPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, n.Level != nil, n.Level, "ilvl"); err != nil {
		return err
	}
	if err := encodeOptional(e, n.NumID != nil, n.NumID, "numId"); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Alignment represents paragraph justification.
type Alignment struct {
	Val string `xml:"val,attr"`
}

// MarshalXML writes <w:jc w:val="..."/>.
func (a Alignment) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("jc")
	start.Attr = []xml.Attr{valAttr(a.Val)}
	return e.EncodeElement(struct{}{}, start)
}

// Indentation is the paragraph indentation in twips. A negative FirstLine
// is written as a hanging indent.
type Indentation struct {
	Left      int `xml:"left,attr"`
	FirstLine int `xml:"firstLine,attr"`
	Hanging   int `xml:"hanging,attr"`
}

// MarshalXML writes <w:ind/>, folding FirstLine into firstLine or hanging.
func (i Indentation) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("ind")
	start.Attr = []xml.Attr{wAttr("left", strconv.Itoa(i.Left))}
	hanging := i.Hanging
	if i.FirstLine < 0 {
		hanging = -i.FirstLine
	}
	switch {
	case hanging > 0:
		start.Attr = append(start.Attr, wAttr("hanging", strconv.Itoa(hanging)))
	case i.FirstLine > 0:
		start.Attr = append(start.Attr, wAttr("firstLine", strconv.Itoa(i.FirstLine)))
	}
	return e.EncodeElement(struct{}{}, start)
}

// EffectiveFirstLine returns the first-line offset, negative for a hanging indent.
func (i Indentation) EffectiveFirstLine() int {
	if i.Hanging > 0 {
		return -i.Hanging
	}
	return i.FirstLine
}
