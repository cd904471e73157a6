package ooxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
)

// Document represents word/document.xml.
type Document struct {
	XMLName xml.Name `xml:"document"`
	Body    *Body    `xml:"body"`
}

// MarshalXML writes the root element with the namespace declarations the
// prefixed child names rely on.
func (d Document) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("document")
	start.Attr = []xml.Attr{
		{Name: xml.Name{Local: "xmlns:w"}, Value: NamespaceW},
		{Name: xml.Name{Local: "xmlns:r"}, Value: NamespaceR},
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if d.Body != nil {
		if err := e.EncodeElement(d.Body, xml.StartElement{Name: wName("body")}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Body represents the document body.
type Body struct {
	// Elements keeps paragraphs and tables in document order.
	Elements []BodyElement
	// Section must be the last child of the body.
	Section *SectionProperties
}

// MarshalXML writes body elements in order followed by the section properties.
func (b Body) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("body")
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for _, elem := range b.Elements {
		switch el := elem.(type) {
		case *Paragraph:
			if err := e.EncodeElement(el, xml.StartElement{Name: wName("p")}); err != nil {
				return err
			}
		case *Table:
			if err := e.EncodeElement(el, xml.StartElement{Name: wName("tbl")}); err != nil {
				return err
			}
		default:
			return fmt.Errorf("ooxml: unsupported body element %T", elem)
		}
	}

	if b.Section != nil {
		if err := e.EncodeElement(b.Section, xml.StartElement{Name: wName("sectPr")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// UnmarshalXML decodes body children in order. Unknown elements are skipped.
func (b *Body) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := d.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				var para Paragraph
				if err := d.DecodeElement(&para, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, &para)
			case "tbl":
				var table Table
				if err := d.DecodeElement(&table, &t); err != nil {
					return err
				}
				b.Elements = append(b.Elements, &table)
			case "sectPr":
				var sect SectionProperties
				if err := d.DecodeElement(&sect, &t); err != nil {
					return err
				}
				b.Section = &sect
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name.Local == start.Name.Local {
				return nil
			}
		}
	}
}

// SectionProperties holds the page geometry of the single document section.
type SectionProperties struct {
	PageSize    *PageSize    `xml:"pgSz"`
	PageMargins *PageMargins `xml:"pgMar"`
}

// MarshalXML writes pgSz before pgMar as the schema requires.
func (s SectionProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("sectPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, s.PageSize != nil, s.PageSize, "pgSz"); err != nil {
		return err
	}
	if err := encodeOptional(e, s.PageMargins != nil, s.PageMargins, "pgMar"); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// PageSize is the page width and height in twips.
type PageSize struct {
	W      int    `xml:"w,attr"`
	H      int    `xml:"h,attr"`
	Orient string `xml:"orient,attr,omitempty"`
}

// MarshalXML writes <w:pgSz/>.
func (p PageSize) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("pgSz")
	start.Attr = []xml.Attr{
		wAttr("w", strconv.Itoa(p.W)),
		wAttr("h", strconv.Itoa(p.H)),
	}
	if p.Orient != "" {
		start.Attr = append(start.Attr, wAttr("orient", p.Orient))
	}
	return e.EncodeElement(struct{}{}, start)
}

// PageMargins are the section margins in twips.
type PageMargins struct {
	Top    int `xml:"top,attr"`
	Right  int `xml:"right,attr"`
	Bottom int `xml:"bottom,attr"`
	Left   int `xml:"left,attr"`
	Header int `xml:"header,attr"`
	Footer int `xml:"footer,attr"`
	Gutter int `xml:"gutter,attr"`
}

// MarshalXML writes <w:pgMar/> with every attribute, as Word requires.
func (m PageMargins) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("pgMar")
	start.Attr = []xml.Attr{
		wAttr("top", strconv.Itoa(m.Top)),
		wAttr("right", strconv.Itoa(m.Right)),
		wAttr("bottom", strconv.Itoa(m.Bottom)),
		wAttr("left", strconv.Itoa(m.Left)),
		wAttr("header", strconv.Itoa(m.Header)),
		wAttr("footer", strconv.Itoa(m.Footer)),
		wAttr("gutter", strconv.Itoa(m.Gutter)),
	}
	return e.EncodeElement(struct{}{}, start)
}

// ParseDocument decodes word/document.xml.
func ParseDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("ooxml: parsing document: %w", err)
	}
	if doc.Body == nil {
		doc.Body = &Body{}
	}
	return &doc, nil
}
