package format

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/docforge-io/rstfmt/internal/ast"
)

// indentWidth is the indentation added by one nesting level (list item
// bodies, directive bodies).
const indentWidth = 2

// ReflowDocument rewraps every paragraph in the document to the given
// maximum width. Nested paragraphs wrap against the width remaining after
// their indentation. Heading text is never wrapped.
func ReflowDocument(doc *ast.Document, maxWidth int) {
	reflowBlocks(doc, maxWidth, 0)
}

func reflowBlocks(doc *ast.Document, maxWidth, indent int) {
	for i := range doc.Blocks {
		b := &doc.Blocks[i]
		switch b.Type {
		case ast.BlockTypeParagraph:
			b.Paragraph.Lines = wrapSpans(b.Paragraph.Spans, maxWidth-indent)
		case ast.BlockTypeList:
			for j := range b.List.Items {
				reflowBlocks(b.List.Items[j].Body, maxWidth, indent+indentWidth)
			}
		case ast.BlockTypeDirective:
			if b.Directive.Body != nil {
				reflowBlocks(b.Directive.Body, maxWidth, indent+indentWidth)
			}
		}
	}
}

// wrapSpans greedily packs atomic tokens into lines of at most avail
// columns. A token wider than avail stands alone on its line, never
// split. Tokens beginning with "," or "." glue to the previous token
// without a separating space.
func wrapSpans(spans []ast.Span, avail int) []string {
	if avail < 1 {
		avail = 1
	}

	var lines []string
	var cur strings.Builder
	curWidth := 0

	flush := func() {
		if curWidth > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			curWidth = 0
		}
	}

	for _, span := range spans {
		token := span.Text
		if token == "" {
			continue
		}
		width := runewidth.StringWidth(token)
		if curWidth == 0 {
			cur.WriteString(token)
			curWidth = width
			continue
		}

		sep := 1
		if glues(token) {
			sep = 0
		}
		if curWidth+sep+width > avail {
			flush()
			cur.WriteString(token)
			curWidth = width
			continue
		}
		if sep > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(token)
		curWidth += sep + width
	}
	flush()
	return lines
}

func glues(token string) bool {
	return strings.HasPrefix(token, ",") || strings.HasPrefix(token, ".")
}
