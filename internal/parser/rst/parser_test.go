package rst

import (
	"errors"
	"strings"
	"testing"

	"github.com/docforge-io/rstfmt/internal/ast"
	"github.com/docforge-io/rstfmt/internal/parser"
)

func parse(t *testing.T, source string) *ast.Document {
	t.Helper()
	p := New(source, parser.DefaultOptions())
	doc, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func TestParse_UnderlinedHeading(t *testing.T) {
	doc := parse(t, "Title\n=====\n")

	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
	}
	h := doc.Blocks[0].Heading
	if h == nil {
		t.Fatal("expected a heading block")
	}
	if h.PlainText() != "Title" {
		t.Errorf("heading text = %q, want %q", h.PlainText(), "Title")
	}
	if h.Style.Char != '=' || h.Style.Overline {
		t.Errorf("heading style = %+v, want underline-only '='", h.Style)
	}
}

func TestParse_OverlinedHeading(t *testing.T) {
	doc := parse(t, "=====\nTitle\n=====\n")

	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
	}
	h := doc.Blocks[0].Heading
	if h == nil {
		t.Fatal("expected a heading block")
	}
	if h.Style.Char != '=' || !h.Style.Overline {
		t.Errorf("heading style = %+v, want overlined '='", h.Style)
	}
}

func TestParse_ConsecutiveHeadings(t *testing.T) {
	source := "One\n===\nTwo\n---\nThree\n~~~~~\n"
	doc := parse(t, source)

	if len(doc.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(doc.Blocks))
	}
	wantChars := []rune{'=', '-', '~'}
	for i, want := range wantChars {
		h := doc.Blocks[i].Heading
		if h == nil {
			t.Fatalf("block %d is not a heading", i)
		}
		if h.Style.Char != want {
			t.Errorf("heading %d style char = %q, want %q", i, h.Style.Char, want)
		}
	}
}

func TestParse_ParagraphJoinsLines(t *testing.T) {
	doc := parse(t, "first line\nsecond line\n")

	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
	}
	p := doc.Blocks[0].Paragraph
	if p == nil {
		t.Fatal("expected a paragraph block")
	}
	if got := ast.JoinSpans(p.Spans); got != "first line second line" {
		t.Errorf("joined spans = %q", got)
	}
}

func TestParse_ParagraphBeforeHeading(t *testing.T) {
	// the line directly above an adornment belongs to the next section
	// title, not to the paragraph being gathered
	doc := parse(t, "some prose\nNext Section\n------------\n")

	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(doc.Blocks))
	}
	if doc.Blocks[0].Type != ast.BlockTypeParagraph {
		t.Errorf("block 0 type = %s, want paragraph", doc.Blocks[0].Type)
	}
	h := doc.Blocks[1].Heading
	if h == nil || h.PlainText() != "Next Section" {
		t.Fatalf("block 1 is not the expected heading: %+v", doc.Blocks[1])
	}
}

func TestParse_Transition(t *testing.T) {
	doc := parse(t, "before\n\n----\n\nafter\n")

	if len(doc.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(doc.Blocks))
	}
	if doc.Blocks[1].Type != ast.BlockTypeTransition {
		t.Errorf("block 1 type = %s, want transition", doc.Blocks[1].Type)
	}
}

func TestParse_StrayAdornment(t *testing.T) {
	p := New("text\n\n==\n", parser.DefaultOptions())
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected a parse error for a stray adornment")
	}
	var perr *parser.Error
	if !errors.As(err, &perr) {
		t.Fatalf("error type = %T, want *parser.Error", err)
	}
	if perr.Line != 3 {
		t.Errorf("error line = %d, want 3", perr.Line)
	}
}

func TestParse_BulletList(t *testing.T) {
	source := "- one\n- two\n- three\n"
	doc := parse(t, source)

	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
	}
	l := doc.Blocks[0].List
	if l == nil {
		t.Fatal("expected a list block")
	}
	if l.Bullet != '-' {
		t.Errorf("bullet = %q, want '-'", l.Bullet)
	}
	if len(l.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(l.Items))
	}
}

func TestParse_NestedList(t *testing.T) {
	source := "- outer\n\n  - inner one\n  - inner two\n"
	doc := parse(t, source)

	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
	}
	l := doc.Blocks[0].List
	if l == nil || len(l.Items) != 1 {
		t.Fatalf("expected a single-item list, got %+v", doc.Blocks[0])
	}
	body := l.Items[0].Body
	if len(body.Blocks) != 2 {
		t.Fatalf("expected paragraph + nested list in item body, got %d blocks", len(body.Blocks))
	}
	inner := body.Blocks[1].List
	if inner == nil || len(inner.Items) != 2 {
		t.Fatalf("expected a 2-item nested list, got %+v", body.Blocks[1])
	}
}

func TestParse_MultiParagraphListItem(t *testing.T) {
	source := "- first paragraph\n\n  second paragraph\n- next item\n"
	doc := parse(t, source)

	l := doc.Blocks[0].List
	if l == nil || len(l.Items) != 2 {
		t.Fatalf("expected a 2-item list, got %+v", doc.Blocks[0])
	}
	if got := len(l.Items[0].Body.Blocks); got != 2 {
		t.Errorf("first item body has %d blocks, want 2", got)
	}
}

func TestParse_ListEndsAtDedent(t *testing.T) {
	source := "- item\n\nplain paragraph\n"
	doc := parse(t, source)

	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(doc.Blocks))
	}
	if doc.Blocks[0].Type != ast.BlockTypeList || doc.Blocks[1].Type != ast.BlockTypeParagraph {
		t.Errorf("block types = %s, %s", doc.Blocks[0].Type, doc.Blocks[1].Type)
	}
}

func TestParse_DirectiveWithOptionsAndBody(t *testing.T) {
	source := strings.Join([]string{
		".. note::",
		"   :class: warning",
		"",
		"   Body prose here.",
		"",
	}, "\n")
	doc := parse(t, source)

	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
	}
	d := doc.Blocks[0].Directive
	if d == nil {
		t.Fatal("expected a directive block")
	}
	if d.Name != "note" {
		t.Errorf("name = %q, want %q", d.Name, "note")
	}
	if got := d.Options["class"]; got != "warning" {
		t.Errorf("class option = %q, want %q", got, "warning")
	}
	if d.Body == nil || len(d.Body.Blocks) != 1 {
		t.Fatalf("expected a one-block parsed body, got %+v", d.Body)
	}
	if d.RawBody != nil {
		t.Error("prose directive body should not be raw")
	}
}

func TestParse_CodeDirectiveKeepsRawBody(t *testing.T) {
	source := strings.Join([]string{
		".. code-block:: python",
		"",
		"   def f(x):",
		"       return x",
		"",
	}, "\n")
	doc := parse(t, source)

	d := doc.Blocks[0].Directive
	if d == nil {
		t.Fatal("expected a directive block")
	}
	if !d.IsCode() {
		t.Error("code-block should be a code directive")
	}
	if d.Language() != "python" {
		t.Errorf("language = %q, want %q", d.Language(), "python")
	}
	want := []string{"def f(x):", "    return x"}
	if len(d.RawBody) != len(want) {
		t.Fatalf("raw body = %q, want %q", d.RawBody, want)
	}
	for i := range want {
		if d.RawBody[i] != want[i] {
			t.Errorf("raw body line %d = %q, want %q", i, d.RawBody[i], want[i])
		}
	}
}

func TestParse_DirectiveArgs(t *testing.T) {
	doc := parse(t, ".. image:: pic.png\n")

	d := doc.Blocks[0].Directive
	if d == nil {
		t.Fatal("expected a directive block")
	}
	if len(d.Args) != 1 || d.Args[0] != "pic.png" {
		t.Errorf("args = %q, want [pic.png]", d.Args)
	}
}

func TestParse_CommentPreserved(t *testing.T) {
	source := ".. this is a comment\n   spanning lines\n"
	doc := parse(t, source)

	c := doc.Blocks[0].Comment
	if c == nil {
		t.Fatal("expected a comment block")
	}
	if len(c.Lines) != 2 {
		t.Errorf("comment lines = %q", c.Lines)
	}
}

func TestParse_HyperlinkTargetPreserved(t *testing.T) {
	doc := parse(t, ".. _target: https://example.com\n")

	if doc.Blocks[0].Type != ast.BlockTypeComment {
		t.Errorf("block type = %s, want comment", doc.Blocks[0].Type)
	}
}

func TestParse_LiteralBlockAfterParagraph(t *testing.T) {
	source := "Example::\n\n   literal code\n      deeper\n\nafter\n"
	doc := parse(t, source)

	if len(doc.Blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(doc.Blocks))
	}
	lit := doc.Blocks[1].Literal
	if lit == nil {
		t.Fatal("expected a literal block")
	}
	want := []string{"literal code", "   deeper"}
	for i := range want {
		if lit.Lines[i] != want[i] {
			t.Errorf("literal line %d = %q, want %q", i, lit.Lines[i], want[i])
		}
	}
}

func TestParse_BareLiteralIntro(t *testing.T) {
	source := "::\n\n   verbatim\n"
	doc := parse(t, source)

	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(doc.Blocks))
	}
	if doc.Blocks[0].Type != ast.BlockTypeParagraph {
		t.Errorf("block 0 type = %s, want paragraph", doc.Blocks[0].Type)
	}
	if doc.Blocks[1].Type != ast.BlockTypeLiteral {
		t.Errorf("block 1 type = %s, want literal", doc.Blocks[1].Type)
	}
}

func TestParse_GridTableVerbatim(t *testing.T) {
	source := strings.Join([]string{
		"+-----+-----+",
		"| a   | b   |",
		"+-----+-----+",
		"",
	}, "\n")
	doc := parse(t, source)

	tb := doc.Blocks[0].Table
	if tb == nil {
		t.Fatal("expected a table block")
	}
	if len(tb.Lines) != 3 {
		t.Errorf("table lines = %d, want 3", len(tb.Lines))
	}
}

func TestParse_SimpleTableVerbatim(t *testing.T) {
	source := strings.Join([]string{
		"===  ===",
		"a    b",
		"===  ===",
		"",
	}, "\n")
	doc := parse(t, source)

	if doc.Blocks[0].Type != ast.BlockTypeTable {
		t.Fatalf("block type = %s, want table", doc.Blocks[0].Type)
	}
}

func TestParse_CRLFNormalized(t *testing.T) {
	doc := parse(t, "Title\r\n=====\r\n")
	if len(doc.Blocks) != 1 || doc.Blocks[0].Type != ast.BlockTypeHeading {
		t.Fatalf("CRLF source not parsed as heading: %+v", doc.Blocks)
	}
}
