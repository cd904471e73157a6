package ooxml

import (
	"encoding/xml"
	"strconv"
)

// Table represents a table in the document.
type Table struct {
	Properties *TableProperties `xml:"tblPr"`
	Grid       *TableGrid       `xml:"tblGrid"`
	Rows       []TableRow       `xml:"tr"`
}

func (Table) isBodyElement() {}

// MarshalXML writes tblPr, tblGrid and the rows.
func (t Table) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("tbl")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, t.Properties != nil, t.Properties, "tblPr"); err != nil {
		return err
	}
	if err := encodeOptional(e, t.Grid != nil, t.Grid, "tblGrid"); err != nil {
		return err
	}
	for i := range t.Rows {
		if err := e.EncodeElement(&t.Rows[i], xml.StartElement{Name: wName("tr")}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// StyleID returns the table style, or "" when none is set.
func (t *Table) StyleID() string {
	if t.Properties == nil || t.Properties.Style == nil {
		return ""
	}
	return t.Properties.Style.Val
}

// TableProperties represents table formatting properties.
type TableProperties struct {
	Style *Style     `xml:"tblStyle"`
	Width *Width     `xml:"tblW"`
	Look  *TableLook `xml:"tblLook"`
}

// MarshalXML writes tblStyle, tblW and tblLook.
func (p TableProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("tblPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Style != nil, p.Style, "tblStyle"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Width != nil, p.Width, "tblW"); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Look != nil, p.Look, "tblLook"); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableLook selects which conditional formats of the table style apply.
type TableLook struct {
	FirstRow bool `xml:"-"`
	NoVBand  bool `xml:"-"`
}

// MarshalXML writes <w:tblLook/> with 0/1 flags.
func (l TableLook) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("tblLook")
	start.Attr = []xml.Attr{
		wAttr("firstRow", onOff(l.FirstRow)),
		wAttr("lastRow", "0"),
		wAttr("firstColumn", "0"),
		wAttr("lastColumn", "0"),
		wAttr("noHBand", "0"),
		wAttr("noVBand", onOff(l.NoVBand)),
	}
	return e.EncodeElement(struct{}{}, start)
}

func onOff(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// TableGrid declares the column widths.
type TableGrid struct {
	Columns []GridColumn `xml:"gridCol"`
}

// MarshalXML writes one gridCol per column.
func (g TableGrid) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("tblGrid")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, col := range g.Columns {
		if err := e.EncodeElement(col, xml.StartElement{Name: wName("gridCol")}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// GridColumn is a column width in twips.
type GridColumn struct {
	W int `xml:"w,attr"`
}

// MarshalXML writes <w:gridCol w:w="n"/>.
func (c GridColumn) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("gridCol")
	start.Attr = []xml.Attr{wAttr("w", strconv.Itoa(c.W))}
	return e.EncodeElement(struct{}{}, start)
}

// TableRow represents a table row.
type TableRow struct {
	Properties *TableRowProperties `xml:"trPr"`
	Cells      []TableCell         `xml:"tc"`
}

// MarshalXML writes trPr and the cells.
func (r TableRow) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("tr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, r.Properties != nil, r.Properties, "trPr"); err != nil {
		return err
	}
	for i := range r.Cells {
		if err := e.EncodeElement(&r.Cells[i], xml.StartElement{Name: wName("tc")}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// IsHeader reports whether the row repeats as a header row.
func (r *TableRow) IsHeader() bool {
	return r.Properties != nil && r.Properties.Header != nil
}

// TableRowProperties represents row formatting.
type TableRowProperties struct {
	Header *Empty `xml:"tblHeader"`
}

// MarshalXML writes trPr.
func (p TableRowProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("trPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Header != nil, p.Header, "tblHeader"); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// TableCell represents a table cell. A cell must hold at least one paragraph.
type TableCell struct {
	Properties *TableCellProperties `xml:"tcPr"`
	Paragraphs []Paragraph          `xml:"p"`
}

// MarshalXML writes tcPr and the cell paragraphs.
func (c TableCell) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("tc")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, c.Properties != nil, c.Properties, "tcPr"); err != nil {
		return err
	}
	paragraphs := c.Paragraphs
	if len(paragraphs) == 0 {
		paragraphs = []Paragraph{{}}
	}
	for i := range paragraphs {
		if err := e.EncodeElement(&paragraphs[i], xml.StartElement{Name: wName("p")}); err != nil {
			return err
		}
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}

// Text returns the text of all cell paragraphs joined by newlines.
func (c *TableCell) Text() string {
	var out string
	for i := range c.Paragraphs {
		if i > 0 {
			out += "\n"
		}
		out += c.Paragraphs[i].Text()
	}
	return out
}

// TableCellProperties represents cell formatting.
type TableCellProperties struct {
	Width *Width `xml:"tcW"`
}

// MarshalXML writes tcPr.
func (p TableCellProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = wName("tcPr")
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if err := encodeOptional(e, p.Width != nil, p.Width, "tcW"); err != nil {
		return err
	}
	return e.EncodeToken(xml.EndElement{Name: start.Name})
}
