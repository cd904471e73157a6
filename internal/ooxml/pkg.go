package ooxml

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Part names inside the package.
const (
	PartContentTypes   = "[Content_Types].xml"
	PartRootRels       = "_rels/.rels"
	PartCore           = "docProps/core.xml"
	PartApp            = "docProps/app.xml"
	PartDocument       = "word/document.xml"
	PartStyles         = "word/styles.xml"
	PartNumbering      = "word/numbering.xml"
	PartSettings       = "word/settings.xml"
	PartDocumentRels   = "word/_rels/document.xml.rels"
	applicationName    = "go-docxgen"
	w3cdtfTimeLayout   = "2006-01-02T15:04:05Z"
	zipEpochLowerBound = 1980
)

// ErrMissingPart is returned when a package lacks word/document.xml.
var ErrMissingPart = errors.New("ooxml: missing package part")

// CoreProperties is the metadata written to docProps/core.xml.
type CoreProperties struct {
	Title       string
	Subject     string
	Creator     string
	Keywords    string
	Description string
	Identifier  string
	Language    string
	Created     time.Time
}

// Package is a complete DOCX package ready to be written.
type Package struct {
	Document  *Document
	Styles    StyleSheet
	Numbering *Numbering
	Core      CoreProperties
}

type part struct {
	name string
	data func() ([]byte, error)
}

// WriteTo writes the package as a ZIP archive. Entries are written in a fixed
// order and stamped with Core.Created, so the output only depends on the
// package contents.
func (p *Package) WriteTo(w io.Writer) (int64, error) {
	if p.Document == nil {
		return 0, fmt.Errorf("ooxml: package has no document")
	}
	numbering := p.Numbering
	if numbering == nil {
		numbering = &Numbering{}
	}

	parts := []part{
		{PartContentTypes, staticPart(contentTypesXML)},
		{PartRootRels, staticPart(rootRelsXML)},
		{PartCore, p.renderCore},
		{PartApp, staticPart(appXML)},
		{PartDocument, p.renderDocument},
		{PartStyles, p.Styles.Render},
		{PartNumbering, func() ([]byte, error) { return numbering.Render(), nil }},
		{PartSettings, staticPart(settingsXML)},
		{PartDocumentRels, staticPart(documentRelsXML)},
	}

	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	modified := zipTime(p.Core.Created)

	for _, pt := range parts {
		data, err := pt.data()
		if err != nil {
			return cw.n, err
		}
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     pt.name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return cw.n, fmt.Errorf("ooxml: creating %s: %w", pt.name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return cw.n, fmt.Errorf("ooxml: writing %s: %w", pt.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("ooxml: finishing package: %w", err)
	}
	return cw.n, nil
}

func (p *Package) renderDocument() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xmlHeader)
	if err := xml.NewEncoder(&buf).Encode(p.Document); err != nil {
		return nil, fmt.Errorf("ooxml: encoding document: %w", err)
	}
	return buf.Bytes(), nil
}

var coreTemplate = template.Must(template.New("core").Funcs(template.FuncMap{
	"text": escapeAttr,
}).Parse(coreXML))

func (p *Package) renderCore() ([]byte, error) {
	data := struct {
		CoreProperties
		Stamp string
	}{
		CoreProperties: p.Core,
		Stamp:          p.Core.Created.UTC().Format(w3cdtfTimeLayout),
	}
	var buf bytes.Buffer
	if err := coreTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("ooxml: rendering core properties: %w", err)
	}
	return buf.Bytes(), nil
}

// zipTime clamps t to the range the ZIP format can represent.
func zipTime(t time.Time) time.Time {
	t = t.UTC()
	if t.Year() < zipEpochLowerBound {
		return time.Date(zipEpochLowerBound, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return t
}

func staticPart(s string) func() ([]byte, error) {
	return func() ([]byte, error) { return []byte(s), nil }
}

func escapeAttr(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(Sanitize(s)))
	return b.String()
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

const contentTypesXML = xmlHeader + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/word/settings.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.settings+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` +
	`</Types>`

const rootRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
	`</Relationships>`

const documentRelsXML = xmlHeader + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/settings" Target="settings.xml"/>` +
	`</Relationships>`

const settingsXML = xmlHeader + `<w:settings xmlns:w="` + NamespaceW + `">` +
	`<w:defaultTabStop w:val="720"/>` +
	`<w:characterSpacingControl w:val="doNotCompress"/>` +
	`<w:compat><w:compatSetting w:name="compatibilityMode" w:uri="http://schemas.microsoft.com/office/word" w:val="15"/></w:compat>` +
	`</w:settings>`

const appXML = xmlHeader + `<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" ` +
	`xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">` +
	`<Application>` + applicationName + `</Application><DocSecurity>0</DocSecurity>` +
	`</Properties>`

const coreXML = xmlHeader + `<cp:coreProperties ` +
	`xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
	`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
	`xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
	`<dc:title>{{text .Title}}</dc:title>` +
	`<dc:subject>{{text .Subject}}</dc:subject>` +
	`<dc:creator>{{text .Creator}}</dc:creator>` +
	`<cp:keywords>{{text .Keywords}}</cp:keywords>` +
	`<dc:description>{{text .Description}}</dc:description>` +
	`<dc:identifier>{{text .Identifier}}</dc:identifier>` +
	`{{if .Language}}<dc:language>{{text .Language}}</dc:language>{{end}}` +
	`<cp:lastModifiedBy>{{text .Creator}}</cp:lastModifiedBy>` +
	`<cp:revision>1</cp:revision>` +
	`<dcterms:created xsi:type="dcterms:W3CDTF">{{.Stamp}}</dcterms:created>` +
	`<dcterms:modified xsi:type="dcterms:W3CDTF">{{.Stamp}}</dcterms:modified>` +
	`</cp:coreProperties>`
