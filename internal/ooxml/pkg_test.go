package ooxml

// Notes:
// - The deflate stream is not inspected directly; determinism is asserted on
//   the whole archive bytes, which covers compression output as well.

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func samplePackage() *Package {
	numbering := &Numbering{}
	numbering.Next(true)
	return &Package{
		Document: &Document{Body: &Body{
			Elements: []BodyElement{
				&Paragraph{Runs: []Run{NewTextRun("Olá <mundo> & \"amigos\"", nil)}},
			},
			Section: &SectionProperties{PageMargins: &PageMargins{Top: 1417}},
		}},
		Styles:    DefaultStyleSheet(),
		Numbering: numbering,
		Core: CoreProperties{
			Title:      "Folha & Cia",
			Creator:    "Autor",
			Identifier: "urn:uuid:00000000-0000-0000-0000-000000000001",
			Language:   "pt-PT",
			Created:    time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		},
	}
}

// ---------------------------------------------------------------------------
// TestPackageWriteTo - Part order, determinism and byte count
// ---------------------------------------------------------------------------

func TestPackageWriteTo_PartOrder(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n, err := samplePackage().WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() = %d, wrote %d bytes", n, buf.Len())
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	want := []string{
		PartContentTypes, PartRootRels, PartCore, PartApp, PartDocument,
		PartStyles, PartNumbering, PartSettings, PartDocumentRels,
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("part order mismatch (-want +got):\n%s", diff)
	}
}

func TestPackageWriteTo_Deterministic(t *testing.T) {
	t.Parallel()

	pkg := samplePackage()
	var first, second bytes.Buffer
	if _, err := pkg.WriteTo(&first); err != nil {
		t.Fatalf("first WriteTo() error = %v", err)
	}
	if _, err := pkg.WriteTo(&second); err != nil {
		t.Fatalf("second WriteTo() error = %v", err)
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("two writes of the same package differ")
	}
}

func TestPackageWriteTo_NoDocument(t *testing.T) {
	t.Parallel()

	if _, err := (&Package{}).WriteTo(io.Discard); err == nil {
		t.Fatal("expected error for package without document")
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestPackageWriteTo_WriterError(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("disk full")
	_, err := samplePackage().WriteTo(failingWriter{err: sentinel})
	if !errors.Is(err, sentinel) {
		t.Errorf("WriteTo() error = %v, want wrapping %v", err, sentinel)
	}
}

// ---------------------------------------------------------------------------
// TestReadPackage - Reading back what WriteTo produced
// ---------------------------------------------------------------------------

func TestReadPackage(t *testing.T) {
	t.Parallel()

	pkg := samplePackage()
	var buf bytes.Buffer
	if _, err := pkg.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	contents, err := ReadPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("ReadPackage() error = %v", err)
	}

	para := contents.Document.Body.Elements[0].(*Paragraph)
	if got := para.Text(); got != "Olá <mundo> & \"amigos\"" {
		t.Errorf("paragraph text = %q", got)
	}
	if diff := cmp.Diff(pkg.Core, contents.Core); diff != "" {
		t.Errorf("core properties mismatch (-want +got):\n%s", diff)
	}
}

func TestReadPackage_MissingDocument(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/other.xml")
	_, _ = w.Write([]byte("<x/>"))
	_ = zw.Close()

	_, err := ReadPackage(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if !errors.Is(err, ErrMissingPart) {
		t.Errorf("ReadPackage() error = %v, want ErrMissingPart", err)
	}
}

func TestReadPackage_NotZip(t *testing.T) {
	t.Parallel()

	data := []byte("plain text")
	if _, err := ReadPackage(bytes.NewReader(data), int64(len(data))); err == nil {
		t.Fatal("expected error for non-zip input")
	}
}

// ---------------------------------------------------------------------------
// TestNumbering - Every ordered list restarts at 1
// ---------------------------------------------------------------------------

func TestNumbering(t *testing.T) {
	t.Parallel()

	var n Numbering
	bullet := n.Next(false)
	first := n.Next(true)
	second := n.Next(true)
	if bullet == first || first == second {
		t.Fatalf("Next() ids = %d, %d, %d; want distinct", bullet, first, second)
	}
	if second != 3 {
		t.Errorf("third numId = %d, want 3", second)
	}

	out := string(n.Render())
	if got := strings.Count(out, `<w:startOverride w:val="1"/>`); got != 2 {
		t.Errorf("startOverride count = %d, want 2", got)
	}
	if got := strings.Count(out, "<w:abstractNum "); got != 2 {
		t.Errorf("abstractNum count = %d, want 2", got)
	}
	if got := strings.Count(out, "<w:num "); got != 3 {
		t.Errorf("num count = %d, want 3", got)
	}
}

// ---------------------------------------------------------------------------
// TestStyleSheet - All referenced styles exist, fonts are escaped
// ---------------------------------------------------------------------------

func TestStyleSheetRender(t *testing.T) {
	t.Parallel()

	out, err := StyleSheet{CodeFont: `Mono "X" & Co`}.Render()
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := string(out)

	for _, id := range []string{
		StyleNormal, StyleTitle, StyleHeading1, StyleHeading2, StyleHeading3,
		StyleListBullet, StyleListNumber, StyleTableGrid, StyleLightGridAccent1, StyleCode,
	} {
		if !strings.Contains(got, `w:styleId="`+id+`"`) {
			t.Errorf("style %q not defined", id)
		}
	}
	if !strings.Contains(got, "Mono &#34;X&#34; &amp; Co") {
		t.Error("code font not escaped")
	}
	if !strings.Contains(got, `w:ascii="Calibri"`) {
		t.Error("default body font not applied")
	}
}

// ---------------------------------------------------------------------------
// TestSanitize - NFC normalization and XML-invalid characters
// ---------------------------------------------------------------------------

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc", "abc"},
		{"decomposed accent", "Ola\u0301", "Ol\u00e1"},
		{"control chars dropped", "a\x00b\x0bc", "abc"},
		{"whitespace kept", "a\tb\nc", "a\tb\nc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewText_PreservesSpace(t *testing.T) {
	t.Parallel()

	if got := NewText(" lead").Space; got != "preserve" {
		t.Errorf("Space = %q, want preserve", got)
	}
	if got := NewText("tight").Space; got != "" {
		t.Errorf("Space = %q, want empty", got)
	}
}
