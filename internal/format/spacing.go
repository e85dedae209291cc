package format

import "github.com/docforge-io/rstfmt/internal/ast"

// NormalizeSpacing rewrites inter-block spacing over the whole tree:
// exactly one blank line between adjacent sibling blocks (around
// headings, between paragraphs, before lists, around directives, literal
// blocks, tables, comments and transitions), none before the first block
// of the document or of a nested body, and none between consecutive items
// of one list. The result never contains two consecutive blank lines and
// never ends in one. Running it on already-normalized spacing is a no-op.
func NormalizeSpacing(doc *ast.Document) {
	for i := range doc.Blocks {
		b := &doc.Blocks[i]
		if i == 0 {
			b.BlankBefore = 0
		} else {
			b.BlankBefore = 1
		}
		switch b.Type {
		case ast.BlockTypeList:
			for j := range b.List.Items {
				NormalizeSpacing(b.List.Items[j].Body)
			}
		case ast.BlockTypeDirective:
			if b.Directive.Body != nil {
				NormalizeSpacing(b.Directive.Body)
			}
		}
	}
}
