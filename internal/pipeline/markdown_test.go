package pipeline

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func parse(t *testing.T, md string) []Node {
	t.Helper()
	nodes, err := NewGoldmarkParser().Parse(context.Background(), []byte(md))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return nodes
}

// ---------------------------------------------------------------------------
// TestGoldmarkParser_Parse - Block structure
// ---------------------------------------------------------------------------

func TestGoldmarkParser_Parse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		md   string
		want []Node
	}{
		{
			name: "headings keep source level",
			md:   "# One\n\n#### Four",
			want: []Node{
				{Kind: NodeHeading, Level: 1, Spans: []Span{{Text: "One"}}},
				{Kind: NodeHeading, Level: 4, Spans: []Span{{Text: "Four"}}},
			},
		},
		{
			name: "soft line break becomes space",
			md:   "linha um\nlinha dois",
			want: []Node{
				{Kind: NodeParagraph, Spans: []Span{{Text: "linha um linha dois"}}},
			},
		},
		{
			name: "inline emphasis and code",
			md:   "a **b** *c* `d` ***e***",
			want: []Node{
				{Kind: NodeParagraph, Spans: []Span{
					{Text: "a "},
					{Text: "b", Bold: true},
					{Text: " "},
					{Text: "c", Italic: true},
					{Text: " "},
					{Text: "d", Code: true},
					{Text: " "},
					{Text: "e", Bold: true, Italic: true},
				}},
			},
		},
		{
			name: "links keep their text",
			md:   "ver [o site](https://example.org) e <https://a.example>",
			want: []Node{
				{Kind: NodeParagraph, Spans: []Span{{Text: "ver o site e https://a.example"}}},
			},
		},
		{
			name: "nested list flattened",
			md:   "- a\n  - b\n- c",
			want: []Node{
				{Kind: NodeList, Items: []string{"a", "b", "c"}},
			},
		},
		{
			name: "code inside list item splits the list",
			md:   "- um\n\n  ```go\n  x := 1\n  ```\n- dois",
			want: []Node{
				{Kind: NodeList, Items: []string{"um"}},
				{Kind: NodeCode, Language: "go", Code: "x := 1\n"},
				{Kind: NodeList, Items: []string{"dois"}},
			},
		},
		{
			name: "table inside list item",
			md:   "1. um\n\n   | X |\n   |---|\n   | a |\n2. dois",
			want: []Node{
				{Kind: NodeList, Ordered: true, Items: []string{"um"}},
				{Kind: NodeTable, Header: []string{"X"}, Rows: [][]string{{"a"}}},
				{Kind: NodeList, Ordered: true, Items: []string{"dois"}},
			},
		},
		{
			name: "ordered list",
			md:   "1. um\n2. dois",
			want: []Node{
				{Kind: NodeList, Ordered: true, Items: []string{"um", "dois"}},
			},
		},
		{
			name: "task list",
			md:   "- [x] feito\n- [ ] por fazer",
			want: []Node{
				{Kind: NodeList, Items: []string{"☑ feito", "☐ por fazer"}},
			},
		},
		{
			name: "table",
			md:   "| X | Y |\n|---|---|\n| a | **b** |",
			want: []Node{
				{Kind: NodeTable, Header: []string{"X", "Y"}, Rows: [][]string{{"a", "b"}}},
			},
		},
		{
			name: "fenced code",
			md:   "```go\nx := 1\n```",
			want: []Node{
				{Kind: NodeCode, Language: "go", Code: "x := 1\n"},
			},
		},
		{
			name: "thematic break",
			md:   "a\n\n---\n\nb",
			want: []Node{
				{Kind: NodeParagraph, Spans: []Span{{Text: "a"}}},
				{Kind: NodePageBreak},
				{Kind: NodeParagraph, Spans: []Span{{Text: "b"}}},
			},
		},
		{
			name: "blockquote",
			md:   "> citado",
			want: []Node{
				{Kind: NodeParagraph, Quote: true, Spans: []Span{{Text: "citado"}}},
			},
		},
		{
			name: "html block dropped",
			md:   "<div>\nx\n</div>\n\ntexto",
			want: []Node{
				{Kind: NodeParagraph, Spans: []Span{{Text: "texto"}}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parse(t, tt.md)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGoldmarkParser_MarkPlaceholders(t *testing.T) {
	t.Parallel()

	md := "a " + MarkStartPlaceholder + "b **c**" + MarkEndPlaceholder + " d"
	got := parse(t, md)
	want := []Node{{Kind: NodeParagraph, Spans: []Span{
		{Text: "a "},
		{Text: "b ", Mark: true},
		{Text: "c", Mark: true, Bold: true},
		{Text: " d"},
	}}}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestGoldmarkParser_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewGoldmarkParser().Parse(ctx, []byte("# x")); err != context.Canceled {
		t.Errorf("Parse() error = %v, want context.Canceled", err)
	}
}

func TestNode_Text(t *testing.T) {
	t.Parallel()

	n := Node{Kind: NodeHeading, Spans: []Span{{Text: "a "}, {Text: "b", Bold: true}}}
	if got := n.Text(); got != "a b" {
		t.Errorf("Text() = %q, want %q", got, "a b")
	}
}
