package ooxml

import (
	"bytes"
	"fmt"
	"text/template"
)

// Style IDs defined in word/styles.xml.
const (
	StyleNormal           = "Normal"
	StyleTitle            = "Title"
	StyleHeading1         = "Heading1"
	StyleHeading2         = "Heading2"
	StyleHeading3         = "Heading3"
	StyleListBullet       = "ListBullet"
	StyleListNumber       = "ListNumber"
	StyleTableGrid        = "TableGrid"
	StyleLightGridAccent1 = "LightGridAccent1"
	StyleCode             = "Code"
)

// HeadingStyle returns the style ID for a heading level (1..3).
func HeadingStyle(level int) string {
	return fmt.Sprintf("Heading%d", level)
}

// KnownTableStyle reports whether id names a table style in the style sheet.
func KnownTableStyle(id string) bool {
	return id == StyleTableGrid || id == StyleLightGridAccent1
}

// StyleSheet holds the font choices injected into word/styles.xml.
type StyleSheet struct {
	BodyFont    string
	HeadingFont string
	CodeFont    string
	Language    string
}

// DefaultStyleSheet returns the fonts used when none are configured.
func DefaultStyleSheet() StyleSheet {
	return StyleSheet{
		BodyFont:    "Calibri",
		HeadingFont: "Calibri Light",
		CodeFont:    "Consolas",
		Language:    "pt-PT",
	}
}

func (s StyleSheet) withDefaults() StyleSheet {
	d := DefaultStyleSheet()
	if s.BodyFont == "" {
		s.BodyFont = d.BodyFont
	}
	if s.HeadingFont == "" {
		s.HeadingFont = d.HeadingFont
	}
	if s.CodeFont == "" {
		s.CodeFont = d.CodeFont
	}
	if s.Language == "" {
		s.Language = d.Language
	}
	return s
}

var stylesTemplate = template.Must(template.New("styles").Funcs(template.FuncMap{
	"attr": escapeAttr,
}).Parse(stylesXML))

// Render produces word/styles.xml.
func (s StyleSheet) Render() ([]byte, error) {
	var buf bytes.Buffer
	if err := stylesTemplate.Execute(&buf, s.withDefaults()); err != nil {
		return nil, fmt.Errorf("render styles: %w", err)
	}
	return buf.Bytes(), nil
}

const stylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:docDefaults>
<w:rPrDefault><w:rPr><w:rFonts w:ascii="{{attr .BodyFont}}" w:hAnsi="{{attr .BodyFont}}" w:cs="{{attr .BodyFont}}"/><w:sz w:val="22"/><w:lang w:val="{{attr .Language}}"/></w:rPr></w:rPrDefault>
<w:pPrDefault><w:pPr><w:spacing w:after="160" w:line="259" w:lineRule="auto"/></w:pPr></w:pPrDefault>
</w:docDefaults>
<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>
<w:style w:type="paragraph" w:styleId="Title"><w:name w:val="Title"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/><w:pPr><w:spacing w:after="240"/></w:pPr><w:rPr><w:rFonts w:ascii="{{attr .HeadingFont}}" w:hAnsi="{{attr .HeadingFont}}" w:cs="{{attr .HeadingFont}}"/><w:b/><w:sz w:val="48"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading1"><w:name w:val="heading 1"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/><w:pPr><w:keepNext/><w:spacing w:before="360" w:after="120"/><w:outlineLvl w:val="0"/></w:pPr><w:rPr><w:rFonts w:ascii="{{attr .HeadingFont}}" w:hAnsi="{{attr .HeadingFont}}" w:cs="{{attr .HeadingFont}}"/><w:b/><w:color w:val="2F5496"/><w:sz w:val="32"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading2"><w:name w:val="heading 2"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/><w:pPr><w:keepNext/><w:spacing w:before="240" w:after="80"/><w:outlineLvl w:val="1"/></w:pPr><w:rPr><w:rFonts w:ascii="{{attr .HeadingFont}}" w:hAnsi="{{attr .HeadingFont}}" w:cs="{{attr .HeadingFont}}"/><w:b/><w:color w:val="2F5496"/><w:sz w:val="26"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="Heading3"><w:name w:val="heading 3"/><w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:qFormat/><w:pPr><w:keepNext/><w:spacing w:before="200" w:after="60"/><w:outlineLvl w:val="2"/></w:pPr><w:rPr><w:rFonts w:ascii="{{attr .HeadingFont}}" w:hAnsi="{{attr .HeadingFont}}" w:cs="{{attr .HeadingFont}}"/><w:b/><w:color w:val="1F3763"/><w:sz w:val="24"/></w:rPr></w:style>
<w:style w:type="paragraph" w:styleId="ListBullet"><w:name w:val="List Bullet"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:after="60"/><w:ind w:left="720" w:hanging="360"/></w:pPr></w:style>
<w:style w:type="paragraph" w:styleId="ListNumber"><w:name w:val="List Number"/><w:basedOn w:val="Normal"/><w:pPr><w:spacing w:after="60"/><w:ind w:left="720" w:hanging="360"/></w:pPr></w:style>
<w:style w:type="paragraph" w:styleId="Code"><w:name w:val="Code"/><w:basedOn w:val="Normal"/><w:qFormat/><w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/><w:shd w:val="clear" w:color="auto" w:fill="F6F8FA"/></w:pPr><w:rPr><w:rFonts w:ascii="{{attr .CodeFont}}" w:hAnsi="{{attr .CodeFont}}" w:cs="{{attr .CodeFont}}"/><w:sz w:val="20"/></w:rPr></w:style>
<w:style w:type="character" w:default="1" w:styleId="DefaultParagraphFont"><w:name w:val="Default Paragraph Font"/><w:uiPriority w:val="1"/><w:semiHidden/></w:style>
<w:style w:type="table" w:default="1" w:styleId="TableNormal"><w:name w:val="Normal Table"/><w:semiHidden/><w:tblPr><w:tblInd w:w="0" w:type="dxa"/><w:tblCellMar><w:top w:w="0" w:type="dxa"/><w:left w:w="108" w:type="dxa"/><w:bottom w:w="0" w:type="dxa"/><w:right w:w="108" w:type="dxa"/></w:tblCellMar></w:tblPr></w:style>
<w:style w:type="table" w:styleId="TableGrid"><w:name w:val="Table Grid"/><w:basedOn w:val="TableNormal"/><w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr><w:tblPr><w:tblBorders><w:top w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:left w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:bottom w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:right w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:insideH w:val="single" w:sz="4" w:space="0" w:color="auto"/><w:insideV w:val="single" w:sz="4" w:space="0" w:color="auto"/></w:tblBorders></w:tblPr></w:style>
<w:style w:type="table" w:styleId="LightGridAccent1"><w:name w:val="Light Grid Accent 1"/><w:basedOn w:val="TableNormal"/><w:uiPriority w:val="62"/><w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr><w:tblPr><w:tblStyleRowBandSize w:val="1"/><w:tblStyleColBandSize w:val="1"/><w:tblBorders><w:top w:val="single" w:sz="8" w:space="0" w:color="4F81BD"/><w:left w:val="single" w:sz="8" w:space="0" w:color="4F81BD"/><w:bottom w:val="single" w:sz="8" w:space="0" w:color="4F81BD"/><w:right w:val="single" w:sz="8" w:space="0" w:color="4F81BD"/><w:insideH w:val="single" w:sz="8" w:space="0" w:color="4F81BD"/><w:insideV w:val="single" w:sz="8" w:space="0" w:color="4F81BD"/></w:tblBorders></w:tblPr><w:tblStylePr w:type="firstRow"><w:pPr><w:spacing w:before="0" w:after="0" w:line="240" w:lineRule="auto"/></w:pPr><w:rPr><w:b/><w:bCs/></w:rPr><w:tblPr/><w:tcPr><w:tcBorders><w:bottom w:val="single" w:sz="18" w:space="0" w:color="4F81BD"/></w:tcBorders></w:tcPr></w:tblStylePr><w:tblStylePr w:type="band1Horz"><w:tblPr/><w:tcPr><w:shd w:val="clear" w:color="auto" w:fill="D3DFEE"/></w:tcPr></w:tblStylePr></w:style>
</w:styles>
`
