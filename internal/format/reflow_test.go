package format

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/docforge-io/rstfmt/internal/ast"
)

func words(ws ...string) []ast.Span {
	spans := make([]ast.Span, len(ws))
	for i, w := range ws {
		spans[i] = ast.Word(w)
	}
	return spans
}

func TestWrapSpans(t *testing.T) {
	tests := []struct {
		name     string
		spans    []ast.Span
		avail    int
		expected []string
	}{
		{
			name:     "fits on one line",
			spans:    words("a", "b", "c"),
			avail:    10,
			expected: []string{"a b c"},
		},
		{
			name:     "breaks at width",
			spans:    words("aaa", "bbb", "ccc"),
			avail:    7,
			expected: []string{"aaa bbb", "ccc"},
		},
		{
			name:     "oversized token stands alone",
			spans:    words("short", "averylongtokenthatcannotfit", "tail"),
			avail:    10,
			expected: []string{"short", "averylongtokenthatcannotfit", "tail"},
		},
		{
			name:     "punctuation glues without a space",
			spans:    []ast.Span{ast.Word("see"), {Type: ast.SpanLiteral, Text: "``x``"}, ast.Word(".")},
			avail:    79,
			expected: []string{"see ``x``."},
		},
		{
			name:     "glued punctuation counts no separator",
			spans:    words("abcde", ","),
			avail:    6,
			expected: []string{"abcde,"},
		},
		{
			name:     "empty spans produce no lines",
			spans:    nil,
			avail:    79,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapSpans(tt.spans, tt.avail)
			if len(got) != len(tt.expected) {
				t.Fatalf("wrapSpans() = %q, want %q", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestWrapSpans_WidthBound(t *testing.T) {
	spans := words(strings.Fields("the quick brown fox jumps over the lazy dog again and again until done")...)

	for _, avail := range []int{10, 20, 40, 79} {
		for _, line := range wrapSpans(spans, avail) {
			if w := runewidth.StringWidth(line); w > avail {
				t.Errorf("avail %d: line %q has width %d", avail, line, w)
			}
		}
	}
}

func TestWrapSpans_WideRunes(t *testing.T) {
	// CJK runes are two columns wide; the packer must measure columns,
	// not runes
	spans := words("한글", "단어", "테스트")
	got := wrapSpans(spans, 9)

	want := []string{"한글 단어", "테스트"}
	if len(got) != len(want) {
		t.Fatalf("wrapSpans() = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReflowDocument_NestedIndentNarrowsWidth(t *testing.T) {
	item := ast.NewDocument()
	item.AddParagraph(ast.NewParagraph(words("aaaa", "bbbb", "cccc")))
	list := ast.NewList('-')
	list.AddItem(item)

	doc := ast.NewDocument()
	doc.AddList(list)

	// 10 columns at top level leaves 8 inside the item
	ReflowDocument(doc, 10)

	got := item.Blocks[0].Paragraph.Lines
	want := []string{"aaaa", "bbbb", "cccc"}
	if len(got) != len(want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
}

func TestReflowDocument_Idempotent(t *testing.T) {
	doc := ast.NewDocument()
	doc.AddParagraph(ast.NewParagraph(words(strings.Fields(
		"a fairly long paragraph of prose that wraps across several lines at small widths")...)))

	ReflowDocument(doc, 30)
	first := append([]string(nil), doc.Blocks[0].Paragraph.Lines...)
	ReflowDocument(doc, 30)
	second := doc.Blocks[0].Paragraph.Lines

	if len(first) != len(second) {
		t.Fatalf("line counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d changed: %q vs %q", i, first[i], second[i])
		}
	}
}
