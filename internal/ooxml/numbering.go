package ooxml

import (
	"bytes"
	"fmt"
	"strconv"
)

// Abstract numbering definitions written to word/numbering.xml.
const (
	AbstractBullet  = 0
	AbstractDecimal = 1
)

// Numbering allocates w:num instances. Every list gets its own instance so
// adjacent lists stay distinct, and ordered instances carry a start override
// so each ordered list restarts at 1.
type Numbering struct {
	abstract []int
}

// Next allocates a numbering instance for a new list and returns its numId.
func (n *Numbering) Next(ordered bool) int {
	abs := AbstractBullet
	if ordered {
		abs = AbstractDecimal
	}
	n.abstract = append(n.abstract, abs)
	return len(n.abstract)
}

// Render produces word/numbering.xml.
func (n *Numbering) Render() []byte {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	buf.WriteString(`<w:numbering xmlns:w="` + NamespaceW + `">`)
	buf.WriteString(`<w:abstractNum w:abstractNumId="` + strconv.Itoa(AbstractBullet) + `">` +
		`<w:multiLevelType w:val="hybridMultilevel"/>` +
		`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="bullet"/><w:lvlText w:val="` + "\u2022" + `"/><w:lvlJc w:val="left"/>` +
		`<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl>` +
		`</w:abstractNum>`)
	buf.WriteString(`<w:abstractNum w:abstractNumId="` + strconv.Itoa(AbstractDecimal) + `">` +
		`<w:multiLevelType w:val="hybridMultilevel"/>` +
		`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="decimal"/><w:lvlText w:val="%1."/><w:lvlJc w:val="left"/>` +
		`<w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl>` +
		`</w:abstractNum>`)
	for i, abs := range n.abstract {
		fmt.Fprintf(&buf, `<w:num w:numId="%d"><w:abstractNumId w:val="%d"/>`, i+1, abs)
		if abs == AbstractDecimal {
			buf.WriteString(`<w:lvlOverride w:ilvl="0"><w:startOverride w:val="1"/></w:lvlOverride>`)
		}
		buf.WriteString(`</w:num>`)
	}
	buf.WriteString(`</w:numbering>`)
	return buf.Bytes()
}
