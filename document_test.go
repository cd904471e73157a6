package docxgen

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newTestDocument(t *testing.T, opts ...Option) *Document {
	t.Helper()
	opts = append([]Option{
		WithIdentifier("urn:test"),
		WithCreated(time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)),
	}, opts...)
	doc, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return doc
}

// ---------------------------------------------------------------------------
// TestNew - Defaults and option validation
// ---------------------------------------------------------------------------

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	doc, err := New(WithClock(func() time.Time {
		return time.Date(2025, 10, 1, 12, 0, 0, 999, time.Local)
	}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if diff := cmp.Diff(DefaultPageSettings(), doc.PageSettings()); diff != "" {
		t.Errorf("page settings mismatch (-want +got):\n%s", diff)
	}
	if doc.Len() != 0 {
		t.Errorf("Len() = %d, want 0", doc.Len())
	}
	if doc.Identifier() == "" {
		t.Error("Identifier() is empty, want generated UUID")
	}
	if doc.Created().Nanosecond() != 0 || doc.Created().Location() != time.UTC {
		t.Errorf("Created() = %v, want UTC truncated to seconds", doc.Created())
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		opt     Option
		wantErr error
	}{
		{"unknown page size", WithPageSettings(PageSettings{Size: "a3", Orientation: OrientationPortrait}), ErrInvalidPageSize},
		{"unknown orientation", WithPageSettings(PageSettings{Size: PageSizeA4, Orientation: "diagonal"}), ErrInvalidOrientation},
		{"negative margin", WithMargins(Margins{Top: -1}), ErrInvalidMargin},
		{"unknown table style", WithTableStyle("Fancy"), ErrInvalidTableStyle},
		{"unknown code style", WithCodeStyle("neon"), ErrInvalidCodeStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New(tt.opt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrConfiguration) {
				t.Errorf("New() error = %v, want ErrConfiguration class", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAddHeading - Level and alignment validation
// ---------------------------------------------------------------------------

func TestAddHeading(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   int
		align   Alignment
		wantErr error
	}{
		{"level 1", 1, AlignLeft, nil},
		{"level 3 centered", 3, AlignCenter, nil},
		{"level 0", 0, AlignLeft, ErrInvalidHeadingLevel},
		{"level 4", 4, AlignLeft, ErrInvalidHeadingLevel},
		{"bad alignment", 1, Alignment(42), ErrInvalidAlignment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := newTestDocument(t)
			err := doc.AddHeading("Introdução", tt.level, tt.align)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, ErrConfiguration) {
					t.Errorf("AddHeading() error = %v, want %v", err, tt.wantErr)
				}
				if doc.Len() != 0 {
					t.Errorf("Len() = %d after failed append, want 0", doc.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("AddHeading() error = %v", err)
			}
			want := []Block{&Heading{Text: "Introdução", Level: tt.level, Align: tt.align}}
			if diff := cmp.Diff(want, doc.Blocks()); diff != "" {
				t.Errorf("blocks mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAddParagraph - Bold applies to the single span
// ---------------------------------------------------------------------------

func TestAddParagraph(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t)
	if err := doc.AddParagraph("Turma: B08", AlignCenter, true); err != nil {
		t.Fatalf("AddParagraph() error = %v", err)
	}
	if err := doc.AddParagraph("", AlignJustify, false); err != nil {
		t.Fatalf("AddParagraph(empty) error = %v", err)
	}
	if err := doc.AddParagraph("x", Alignment(-1), false); !errors.Is(err, ErrInvalidAlignment) {
		t.Errorf("AddParagraph(bad alignment) error = %v, want ErrInvalidAlignment", err)
	}

	want := []Block{
		&Paragraph{Spans: []Span{{Text: "Turma: B08", Bold: true}}, Align: AlignCenter},
		&Paragraph{Spans: []Span{{}}, Align: AlignJustify},
	}
	if diff := cmp.Diff(want, doc.Blocks()); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestAddStyledParagraph(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		indent  *Indent
		spans   []Span
		wantErr error
	}{
		{"mixed spans", nil, []Span{Text("a "), Bold("b")}, nil},
		{"hanging indent", &Indent{Left: Inches(0.5), FirstLine: Inches(-0.5)}, []Span{Text("ref")}, nil},
		{"no spans", nil, nil, ErrEmptyParagraph},
		{"hanging past margin", &Indent{Left: Inches(0.25), FirstLine: Inches(-0.5)}, []Span{Text("x")}, ErrInvalidIndent},
		{"bad color", nil, []Span{{Text: "x", Color: "blue"}}, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := newTestDocument(t)
			err := doc.AddStyledParagraph(AlignLeft, tt.indent, tt.spans...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddStyledParagraph() error = %v, want %v", err, tt.wantErr)
			}
			wantLen := 1
			if tt.wantErr != nil {
				wantLen = 0
			}
			if doc.Len() != wantLen {
				t.Errorf("Len() = %d, want %d", doc.Len(), wantLen)
			}
		})
	}
}

func TestAddStyledParagraph_CopiesInput(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t)
	spans := []Span{Text("original")}
	indent := &Indent{Left: Inches(1)}
	if err := doc.AddStyledParagraph(AlignLeft, indent, spans...); err != nil {
		t.Fatal(err)
	}
	spans[0].Text = "changed"
	indent.Left = 0

	p := doc.Blocks()[0].(*Paragraph)
	if p.Text() != "original" || p.Indent.Left != Inches(1) {
		t.Errorf("paragraph aliased caller data: %q, %v", p.Text(), p.Indent.Left)
	}
}

// ---------------------------------------------------------------------------
// TestAddList - Items, ordering and empty input
// ---------------------------------------------------------------------------

func TestAddList(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t)
	if err := doc.AddList([]string{"one", "two"}, true); err != nil {
		t.Fatalf("AddList() error = %v", err)
	}
	if err := doc.AddList(nil, false); !errors.Is(err, ErrEmptyList) {
		t.Errorf("AddList(nil) error = %v, want ErrEmptyList", err)
	}

	want := []Block{&List{Items: []string{"one", "two"}, Ordered: true}}
	if diff := cmp.Diff(want, doc.Blocks()); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
	if got := want[0].(*List).Align(); got != AlignJustify {
		t.Errorf("List.Align() = %v, want justify", got)
	}
}

// ---------------------------------------------------------------------------
// TestAddTable - Column count invariant
// ---------------------------------------------------------------------------

func TestAddTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]string
		headers []string
		wantErr error
	}{
		{"with header", [][]string{{"a", "b"}, {"c", "d"}}, []string{"X", "Y"}, nil},
		{"without header", [][]string{{"a", "b"}, {"c", "d"}}, nil, nil},
		{"header only", nil, []string{"X"}, nil},
		{"row shorter than header", [][]string{{"a"}}, []string{"X", "Y"}, ErrDimensionMismatch},
		{"ragged without header", [][]string{{"a", "b"}, {"c"}}, nil, ErrDimensionMismatch},
		{"empty", nil, nil, ErrEmptyTable},
		{"zero-width rows", [][]string{{}}, nil, ErrEmptyTable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := newTestDocument(t)
			err := doc.AddTable(tt.rows, tt.headers)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddTable() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if !errors.Is(err, ErrConfiguration) {
					t.Errorf("error %v is not a configuration error", err)
				}
				if doc.Len() != 0 {
					t.Errorf("Len() = %d after failed append, want 0", doc.Len())
				}
				return
			}
			tbl := doc.Blocks()[0].(*Table)
			if tbl.Style != DefaultTableStyle {
				t.Errorf("Style = %q, want %q", tbl.Style, DefaultTableStyle)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAddIndex / TestAddReferences - Supplementary paragraph builders
// ---------------------------------------------------------------------------

func TestAddIndex(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t)
	err := doc.AddIndex([]IndexEntry{{Label: "Introdução", Page: "1"}, {Label: "Conclusão", Page: "18"}})
	if err != nil {
		t.Fatalf("AddIndex() error = %v", err)
	}
	if doc.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", doc.Len())
	}

	p := doc.Blocks()[1].(*Paragraph)
	if len(p.Spans) != 3 {
		t.Fatalf("got %d spans, want 3", len(p.Spans))
	}
	if p.Spans[0].Bold || p.Spans[1].Bold || !p.Spans[2].Bold {
		t.Errorf("only the page number should be bold: %+v", p.Spans)
	}
	if p.Spans[2].Text != "18" {
		t.Errorf("page = %q, want 18", p.Spans[2].Text)
	}

	if err := doc.AddIndex(nil); !errors.Is(err, ErrEmptyList) {
		t.Errorf("AddIndex(nil) error = %v, want ErrEmptyList", err)
	}
}

func TestAddReferences(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t)
	if err := doc.AddReferences([]string{"LÉVY, P. (1999). Cibercultura."}); err != nil {
		t.Fatalf("AddReferences() error = %v", err)
	}
	p := doc.Blocks()[0].(*Paragraph)
	want := &Indent{Left: Inches(0.5), FirstLine: Inches(-0.5)}
	if diff := cmp.Diff(want, p.Indent); diff != "" {
		t.Errorf("indent mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestSetMargins - Bounds and atomicity
// ---------------------------------------------------------------------------

func TestSetMargins(t *testing.T) {
	t.Parallel()

	doc := newTestDocument(t)
	if err := doc.SetMargins(Cm(2), Cm(2), Cm(3), Cm(3)); err != nil {
		t.Fatalf("SetMargins() error = %v", err)
	}

	before := doc.PageSettings().Margins
	tests := []struct {
		name                     string
		top, bottom, left, right Length
	}{
		{"negative", Cm(-1), Cm(2), Cm(2), Cm(2)},
		{"half the page width", Cm(2), Cm(2), Cm(11), Cm(2)},
		{"taller than page", Cm(20), Cm(2), Cm(2), Cm(2)},
	}
	for _, tt := range tests {
		err := doc.SetMargins(tt.top, tt.bottom, tt.left, tt.right)
		if !errors.Is(err, ErrInvalidMargin) {
			t.Errorf("%s: SetMargins() error = %v, want ErrInvalidMargin", tt.name, err)
		}
	}
	if diff := cmp.Diff(before, doc.PageSettings().Margins); diff != "" {
		t.Errorf("failed SetMargins changed margins (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestLength - Unit conversions
// ---------------------------------------------------------------------------

func TestLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  Length
		want int
	}{
		{"2.5 cm", Cm(2.5), 1417},
		{"1 inch", Inches(1), 1440},
		{"half inch", Inches(0.5), 720},
		{"12 pt", Pt(12), 240},
		{"raw twips", Twips(708), 708},
	}
	for _, tt := range tests {
		if tt.got.Twips() != tt.want {
			t.Errorf("%s = %d twips, want %d", tt.name, tt.got.Twips(), tt.want)
		}
	}
}

func TestParseAlignment(t *testing.T) {
	t.Parallel()

	for _, a := range []Alignment{AlignLeft, AlignCenter, AlignRight, AlignJustify} {
		got, err := ParseAlignment(a.String())
		if err != nil || got != a {
			t.Errorf("ParseAlignment(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := ParseAlignment("middle"); !errors.Is(err, ErrInvalidAlignment) {
		t.Errorf("ParseAlignment(middle) error = %v, want ErrInvalidAlignment", err)
	}
}
