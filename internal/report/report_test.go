package report

// Notes:
// - Build is checked structurally: block kinds, cover text, index spans.
// - The full save/inspect round trip runs once to confirm the margins and
//   metadata reach the package.

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	docxgen "github.com/alnah/go-docxgen"
)

func newReport(t *testing.T, opts Options) *docxgen.Document {
	t.Helper()
	doc, err := docxgen.New(
		docxgen.WithMetadata(Metadata()),
		docxgen.WithIdentifier("urn:report"),
		docxgen.WithCreated(time.Date(2025, 10, 20, 9, 0, 0, 0, time.UTC)),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := Build(doc, opts); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return doc
}

// ---------------------------------------------------------------------------
// TestBuild - Report structure
// ---------------------------------------------------------------------------

func TestBuild_Cover(t *testing.T) {
	t.Parallel()

	doc := newReport(t, Options{})
	blocks := doc.Blocks()

	want := []string{
		"Escola Secundária de Inhamissa",
		"Criação do Site Folha de Inhamissa",
		"Aluno: Jean da Nilza Abílio Killian",
		"https://folhadeinhamissa.netlify.app",
		DefaultDateLine,
	}
	var got []string
	for _, b := range blocks[:len(want)] {
		switch v := b.(type) {
		case *docxgen.Heading:
			if v.Align != docxgen.AlignCenter {
				t.Errorf("cover heading %q align = %v, want center", v.Text, v.Align)
			}
			got = append(got, v.Text)
		case *docxgen.Paragraph:
			if v.Align != docxgen.AlignCenter {
				t.Errorf("cover paragraph %q align = %v, want center", v.Text(), v.Align)
			}
			got = append(got, v.Text())
		default:
			t.Fatalf("unexpected cover block %v", b.Kind())
		}
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cover mismatch (-want +got):\n%s", diff)
	}
	if blocks[len(want)].Kind() != docxgen.KindPageBreak {
		t.Errorf("block %d = %v, want page break after cover", len(want), blocks[len(want)].Kind())
	}
}

func TestBuild_CustomDateLine(t *testing.T) {
	t.Parallel()

	doc := newReport(t, Options{DateLine: "Xai-Xai, Novembro de 2025"})

	count := 0
	for _, b := range doc.Blocks() {
		if p, ok := b.(*docxgen.Paragraph); ok {
			switch p.Text() {
			case "Xai-Xai, Novembro de 2025":
				count++
			case DefaultDateLine:
				t.Error("default date line still present")
			}
		}
	}
	// cover and presentation page
	if count != 2 {
		t.Errorf("date line count = %d, want 2", count)
	}
}

func TestBuild_Index(t *testing.T) {
	t.Parallel()

	doc := newReport(t, Options{})

	var entries []*docxgen.Paragraph
	blocks := doc.Blocks()
	for i, b := range blocks {
		if h, ok := b.(*docxgen.Heading); ok && h.Text == "Índice" {
			for _, next := range blocks[i+1 : i+1+len(IndexEntries)] {
				p, ok := next.(*docxgen.Paragraph)
				if !ok {
					t.Fatalf("index entry kind = %v, want paragraph", next.Kind())
				}
				entries = append(entries, p)
			}
			break
		}
	}
	if len(entries) != len(IndexEntries) {
		t.Fatalf("index entries = %d, want %d", len(entries), len(IndexEntries))
	}

	for i, p := range entries {
		e := IndexEntries[i]
		if len(p.Spans) != 3 {
			t.Fatalf("entry %q spans = %d, want 3", e.Label, len(p.Spans))
		}
		if p.Spans[0].Text != e.Label || p.Spans[0].Bold {
			t.Errorf("entry %d label span = %+v, want plain %q", i, p.Spans[0], e.Label)
		}
		if p.Spans[2].Text != e.Page || !p.Spans[2].Bold {
			t.Errorf("entry %d page span = %+v, want bold %q", i, p.Spans[2], e.Page)
		}
	}
}

func TestBuild_Sections(t *testing.T) {
	t.Parallel()

	doc := newReport(t, Options{})

	var level1 []string
	var lists, ordered, tables int
	for _, b := range doc.Blocks() {
		switch v := b.(type) {
		case *docxgen.Heading:
			if v.Level == 1 && v.Align == docxgen.AlignLeft {
				level1 = append(level1, v.Text)
			}
		case *docxgen.List:
			lists++
			if v.Ordered {
				ordered++
			}
		case *docxgen.Table:
			tables++
			if diff := cmp.Diff([]string{"Indicador", "Valor"}, v.Headers); diff != "" {
				t.Errorf("appendix headers mismatch (-want +got):\n%s", diff)
			}
			if len(v.Rows) != len(usageMetrics) {
				t.Errorf("appendix rows = %d, want %d", len(v.Rows), len(usageMetrics))
			}
		}
	}

	wantLevel1 := []string{
		"Índice",
		"Introdução",
		"Delimitação do Tema",
		"Problema",
		"Objetivos",
		"Hipóteses",
		"Justificativa",
		"Capítulo I - Metodologias de Pesquisa",
		"Capítulo II - Revisão da Literatura",
		"Capítulo III - Apresentação, Análise e Interpretação dos Resultados",
		"Conclusão",
		"Referências Bibliográficas",
		"Apêndices",
	}
	if diff := cmp.Diff(wantLevel1, level1); diff != "" {
		t.Errorf("chapter headings mismatch (-want +got):\n%s", diff)
	}
	if lists != 7 || ordered != 2 {
		t.Errorf("lists = %d (ordered %d), want 7 (ordered 2)", lists, ordered)
	}
	if tables != 1 {
		t.Errorf("tables = %d, want 1", tables)
	}
}

func TestBuild_References(t *testing.T) {
	t.Parallel()

	doc := newReport(t, Options{})

	var refs []string
	for _, b := range doc.Blocks() {
		if p, ok := b.(*docxgen.Paragraph); ok && p.Indent != nil && p.Indent.FirstLine < 0 {
			refs = append(refs, p.Text())
		}
	}
	if len(refs) != 5 {
		t.Fatalf("references = %d, want 5", len(refs))
	}
	for i := 1; i < len(refs); i++ {
		if refs[i-1] > refs[i] {
			t.Errorf("references out of order: %q before %q", refs[i-1], refs[i])
		}
	}
}

// ---------------------------------------------------------------------------
// TestBuild_Errors - Failure stops the build
// ---------------------------------------------------------------------------

func TestBuilder_KeepsFirstError(t *testing.T) {
	t.Parallel()

	doc, err := docxgen.New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	b := &builder{doc: doc}
	b.heading("ok", 1)
	b.heading("too deep", 7)
	b.para("never appended")
	b.pageBreak()

	if !errors.Is(b.err, docxgen.ErrInvalidHeadingLevel) {
		t.Errorf("err = %v, want ErrInvalidHeadingLevel", b.err)
	}
	if doc.Len() != 1 {
		t.Errorf("Len() = %d, want 1", doc.Len())
	}
}

// ---------------------------------------------------------------------------
// TestBuild_Saved - Round trip through the package
// ---------------------------------------------------------------------------

func TestBuild_Saved(t *testing.T) {
	t.Parallel()

	doc := newReport(t, Options{})
	path := filepath.Join(t.TempDir(), DefaultFilename)
	if err := doc.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := docxgen.InspectFile(path)
	if err != nil {
		t.Fatalf("InspectFile() error = %v", err)
	}
	if diff := cmp.Diff(docxgen.UniformMargins(docxgen.Cm(2.5)), got.Margins); diff != "" {
		t.Errorf("margins mismatch (-want +got):\n%s", diff)
	}
	if got.Metadata.Title != Metadata().Title {
		t.Errorf("title = %q, want %q", got.Metadata.Title, Metadata().Title)
	}
	if got.Blocks[0].Text != "Escola Secundária de Inhamissa" {
		t.Errorf("first block = %q", got.Blocks[0].Text)
	}

	var again bytes.Buffer
	if _, err := doc.WriteTo(&again); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if again.Len() == 0 {
		t.Error("WriteTo() wrote nothing")
	}
}
