package ooxml

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"time"
)

// Contents is what ReadPackage extracts from a DOCX file.
type Contents struct {
	Document *Document
	Core     CoreProperties
}

// ReadPackage opens a DOCX archive and decodes its main document and core
// properties. A missing core part is tolerated; a missing document is not.
func ReadPackage(r io.ReaderAt, size int64) (*Contents, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("ooxml: opening package: %w", err)
	}

	var out Contents
	for _, f := range zr.File {
		switch f.Name {
		case PartDocument:
			doc, err := readPart(f, ParseDocument)
			if err != nil {
				return nil, err
			}
			out.Document = doc
		case PartCore:
			core, err := readPart(f, parseCore)
			if err != nil {
				return nil, err
			}
			out.Core = *core
		}
	}

	if out.Document == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, PartDocument)
	}
	return &out, nil
}

func readPart[T any](f *zip.File, parse func(io.Reader) (*T, error)) (*T, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("ooxml: opening %s: %w", f.Name, err)
	}
	defer func() { _ = rc.Close() }()
	return parse(rc)
}

type coreXMLProps struct {
	Title       string `xml:"title"`
	Subject     string `xml:"subject"`
	Creator     string `xml:"creator"`
	Keywords    string `xml:"keywords"`
	Description string `xml:"description"`
	Identifier  string `xml:"identifier"`
	Language    string `xml:"language"`
	Created     string `xml:"created"`
}

func parseCore(r io.Reader) (*CoreProperties, error) {
	var raw coreXMLProps
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("ooxml: parsing core properties: %w", err)
	}
	core := &CoreProperties{
		Title:       raw.Title,
		Subject:     raw.Subject,
		Creator:     raw.Creator,
		Keywords:    raw.Keywords,
		Description: raw.Description,
		Identifier:  raw.Identifier,
		Language:    raw.Language,
	}
	if raw.Created != "" {
		if t, err := time.Parse(time.RFC3339, raw.Created); err == nil {
			core.Created = t
		}
	}
	return core, nil
}
