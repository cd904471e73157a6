package ooxml

import (
	"encoding/xml"
	"strconv"
)

// Namespaces declared on the document root.
const (
	NamespaceW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	NamespaceR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// BodyElement represents any element that can appear in a document body.
type BodyElement interface {
	isBodyElement()
}

// Empty represents an empty element used as a boolean property (<w:b/>).
type Empty struct{}

// MarshalXML writes the element self-closed.
func (Empty) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = nil
	return e.EncodeElement(struct{}{}, start)
}

// Style represents a style reference (pStyle, rStyle, tblStyle).
type Style struct {
	Val string `xml:"val,attr"`
}

// MarshalXML keeps the caller's element name since the same type serves
// pStyle, rStyle and tblStyle.
func (s Style) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{valAttr(s.Val)}
	return e.EncodeElement(struct{}{}, start)
}

// DecimalNumber is an element carrying a single integer w:val.
type DecimalNumber struct {
	Val int `xml:"val,attr"`
}

// MarshalXML writes <name w:val="n"/>.
func (d DecimalNumber) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{valAttr(strconv.Itoa(d.Val))}
	return e.EncodeElement(struct{}{}, start)
}

// Width is a measurement with a unit type (dxa, pct, auto).
type Width struct {
	W    int    `xml:"w,attr"`
	Type string `xml:"type,attr"`
}

// MarshalXML writes <name w:w="n" w:type="t"/>.
func (w Width) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = []xml.Attr{
		wAttr("w", strconv.Itoa(w.W)),
		wAttr("type", w.Type),
	}
	return e.EncodeElement(struct{}{}, start)
}

func wName(local string) xml.Name {
	return xml.Name{Local: "w:" + local}
}

func wAttr(local, value string) xml.Attr {
	return xml.Attr{Name: wName(local), Value: value}
}

func valAttr(value string) xml.Attr {
	return wAttr("val", value)
}

// encodeOptional encodes v under name when present is true.
func encodeOptional(e *xml.Encoder, present bool, v any, local string) error {
	if !present {
		return nil
	}
	return e.EncodeElement(v, xml.StartElement{Name: wName(local)})
}
