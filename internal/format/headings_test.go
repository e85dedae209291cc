package format

import (
	"testing"

	"github.com/docforge-io/rstfmt/internal/ast"
)

func headingDoc(styles ...ast.Decoration) *ast.Document {
	doc := ast.NewDocument()
	for _, s := range styles {
		doc.AddHeading(ast.NewHeading([]ast.Span{ast.Word("h")}, s))
	}
	return doc
}

func TestResolveHeadingStyles_FirstOccurrenceBindsDepth(t *testing.T) {
	// the first style seen becomes depth 0 regardless of its character
	doc := headingDoc(
		ast.Decoration{Char: '-'},
		ast.Decoration{Char: '-'},
	)

	var warnings []Warning
	resolved := ResolveHeadingStyles(doc, CanonicalStyles, &warnings)

	hs := doc.Headings()
	for i, h := range hs {
		if h.Depth != 0 {
			t.Errorf("heading %d depth = %d, want 0", i, h.Depth)
		}
		if h.Style != (ast.Decoration{Char: '=', Overline: true}) {
			t.Errorf("heading %d style = %+v, want overlined '='", i, h.Style)
		}
	}
	if len(resolved) != 1 {
		t.Errorf("resolved %d depths, want 1", len(resolved))
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestResolveHeadingStyles_DistinctStylesGetIncreasingDepths(t *testing.T) {
	doc := headingDoc(
		ast.Decoration{Char: '*', Overline: true},
		ast.Decoration{Char: '#'},
		ast.Decoration{Char: '*', Overline: true}, // repeat of the first
		ast.Decoration{Char: '%'},
	)

	var warnings []Warning
	ResolveHeadingStyles(doc, CanonicalStyles, &warnings)

	wantDepths := []int{0, 1, 0, 2}
	wantStyles := []ast.Decoration{
		{Char: '=', Overline: true},
		{Char: '='},
		{Char: '=', Overline: true},
		{Char: '-'},
	}
	for i, h := range doc.Headings() {
		if h.Depth != wantDepths[i] {
			t.Errorf("heading %d depth = %d, want %d", i, h.Depth, wantDepths[i])
		}
		if h.Style != wantStyles[i] {
			t.Errorf("heading %d style = %+v, want %+v", i, h.Style, wantStyles[i])
		}
	}
}

func TestResolveHeadingStyles_SameCharDifferentOverline(t *testing.T) {
	// overlined and underline-only '=' are distinct raw styles
	doc := headingDoc(
		ast.Decoration{Char: '=', Overline: true},
		ast.Decoration{Char: '='},
	)

	var warnings []Warning
	ResolveHeadingStyles(doc, CanonicalStyles, &warnings)

	hs := doc.Headings()
	if hs[0].Depth != 0 || hs[1].Depth != 1 {
		t.Errorf("depths = %d, %d, want 0, 1", hs[0].Depth, hs[1].Depth)
	}
}

func TestResolveHeadingStyles_OverflowUsesFallback(t *testing.T) {
	// eight distinct styles exceed the six-entry priority table
	chars := []rune{'=', '-', '~', '^', '"', '\'', '`', '#'}
	doc := ast.NewDocument()
	for _, c := range chars {
		doc.AddHeading(ast.NewHeading([]ast.Span{ast.Word("h")}, ast.Decoration{Char: c}))
	}

	var warnings []Warning
	ResolveHeadingStyles(doc, CanonicalStyles, &warnings)

	hs := doc.Headings()
	if hs[6].Style != (ast.Decoration{Char: '\''}) {
		t.Errorf("depth 6 style = %+v, want '''", hs[6].Style)
	}
	if hs[7].Style != (ast.Decoration{Char: '`'}) {
		t.Errorf("depth 7 style = %+v, want '`'", hs[7].Style)
	}
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want 2: %v", len(warnings), warnings)
	}
	for _, w := range warnings {
		if w.Code != WarnHeadingDepth {
			t.Errorf("warning code = %s, want %s", w.Code, WarnHeadingDepth)
		}
	}
}

func TestResolveHeadingStyles_IdempotentOnCanonicalInput(t *testing.T) {
	doc := headingDoc(
		ast.Decoration{Char: '=', Overline: true},
		ast.Decoration{Char: '='},
		ast.Decoration{Char: '-'},
	)

	var warnings []Warning
	ResolveHeadingStyles(doc, CanonicalStyles, &warnings)
	ResolveHeadingStyles(doc, CanonicalStyles, &warnings)

	wantDepths := []int{0, 1, 2}
	for i, h := range doc.Headings() {
		if h.Depth != wantDepths[i] {
			t.Errorf("heading %d depth = %d, want %d", i, h.Depth, wantDepths[i])
		}
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}
