package format

import (
	"fmt"

	"github.com/docforge-io/rstfmt/internal/ast"
)

// CanonicalStyles is the decoration priority table: the canonical
// adornment for each resolved depth, title first.
var CanonicalStyles = []ast.Decoration{
	{Char: '=', Overline: true},
	{Char: '='},
	{Char: '-'},
	{Char: '~'},
	{Char: '^'},
	{Char: '"'},
}

// fallbackChars supplies deterministic underline-only decorations for
// depths beyond the priority table.
var fallbackChars = []rune{'\'', '`', '#', '*', '+', '.'}

// ResolveHeadingStyles assigns every heading its canonical depth and
// decoration. Depths are bound to raw decoration styles strictly by order
// of first appearance in reading order: the first style seen becomes
// depth 0, the next distinct style depth 1, and so on, regardless of the
// characters involved or of structural nesting. Each heading's decoration
// is then rewritten to the priority table's entry for its depth.
//
// The returned map is the established depth-to-style bijection. Depths
// past the table fall back to a deterministic secondary sequence and
// record a warning.
func ResolveHeadingStyles(doc *ast.Document, table []ast.Decoration, warnings *[]Warning) map[int]ast.Decoration {
	depths := make(map[ast.Decoration]int)
	for _, h := range doc.Headings() {
		depth, ok := depths[h.Style]
		if !ok {
			depth = len(depths)
			depths[h.Style] = depth
		}
		h.Depth = depth
	}

	resolved := make(map[int]ast.Decoration, len(depths))
	warned := make(map[int]bool)
	for _, h := range doc.Headings() {
		style, overflow := canonicalStyle(h.Depth, table)
		if overflow && !warned[h.Depth] {
			warned[h.Depth] = true
			*warnings = append(*warnings, Warning{
				Code: WarnHeadingDepth,
				Message: fmt.Sprintf("heading depth %d exceeds the %d supported levels, using %q",
					h.Depth, len(table), style.String()),
			})
		}
		h.Style = style
		resolved[h.Depth] = style
	}
	return resolved
}

// canonicalStyle returns the decoration for a depth and whether the depth
// overflowed the priority table.
func canonicalStyle(depth int, table []ast.Decoration) (ast.Decoration, bool) {
	if depth < len(table) {
		return table[depth], false
	}
	idx := (depth - len(table)) % len(fallbackChars)
	return ast.Decoration{Char: fallbackChars[idx]}, true
}
