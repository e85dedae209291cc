// Package writer serializes ast documents back to reStructuredText. For
// a well-formed document rendering is total: it cannot fail.
package writer

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/docforge-io/rstfmt/internal/ast"
)

// Writer renders a document to text. Any renderer producing a textual
// form of the tree can replace the built-in RST writer.
type Writer interface {
	Write(doc *ast.Document) string
}

// indentUnit is one nesting level of indentation.
const indentUnit = "  "

// RST renders canonical reStructuredText. It emits exactly the spacing
// recorded on the blocks by the normalizer, the decorations resolved by
// the heading resolver, and the lines produced by the reflow stage.
type RST struct{}

// New creates an RST writer.
func New() *RST {
	return &RST{}
}

// Write implements the Writer interface. The output ends with exactly one
// newline and contains no trailing blank lines.
func (w *RST) Write(doc *ast.Document) string {
	var sb strings.Builder
	w.writeBlocks(&sb, doc, 0)
	out := strings.TrimRight(sb.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

func (w *RST) writeBlocks(sb *strings.Builder, doc *ast.Document, level int) {
	for i := range doc.Blocks {
		b := &doc.Blocks[i]
		for n := 0; n < b.BlankBefore; n++ {
			sb.WriteByte('\n')
		}
		switch b.Type {
		case ast.BlockTypeHeading:
			w.writeHeading(sb, b.Heading, level)
		case ast.BlockTypeParagraph:
			w.writeParagraph(sb, b.Paragraph, level)
		case ast.BlockTypeList:
			w.writeList(sb, b.List, level)
		case ast.BlockTypeDirective:
			w.writeDirective(sb, b.Directive, level)
		case ast.BlockTypeLiteral:
			w.writeLines(sb, b.Literal.Lines, level+1)
		case ast.BlockTypeTable:
			w.writeLines(sb, b.Table.Lines, level)
		case ast.BlockTypeComment:
			w.writeLines(sb, b.Comment.Lines, level)
		case ast.BlockTypeTransition:
			w.writeLine(sb, "----", level)
		}
	}
}

// writeHeading emits the title with its decoration sized to the rendered
// width of the title text. Decorations are at least two columns wide so
// single-character titles still parse as sections.
func (w *RST) writeHeading(sb *strings.Builder, h *ast.Heading, level int) {
	text := h.PlainText()
	width := runewidth.StringWidth(text)
	if width < 2 {
		width = 2
	}
	adornment := strings.Repeat(string(h.Style.Char), width)
	if h.Style.Overline {
		w.writeLine(sb, adornment, level)
	}
	w.writeLine(sb, text, level)
	w.writeLine(sb, adornment, level)
}

func (w *RST) writeParagraph(sb *strings.Builder, p *ast.Paragraph, level int) {
	lines := p.Lines
	if lines == nil {
		lines = []string{ast.JoinSpans(p.Spans)}
	}
	w.writeLines(sb, lines, level)
}

// writeList emits items back to back. The first line of each item body
// carries the bullet; its remaining lines indent past it.
func (w *RST) writeList(sb *strings.Builder, l *ast.ListBlock, level int) {
	for i := range l.Items {
		var item strings.Builder
		w.writeBlocks(&item, l.Items[i].Body, level+1)

		prefix := strings.Repeat(indentUnit, level) + string(l.Bullet) + " "
		body := strings.TrimSuffix(item.String(), "\n")
		for j, line := range strings.Split(body, "\n") {
			if j == 0 {
				line = prefix + strings.TrimPrefix(line, strings.Repeat(indentUnit, level+1))
			}
			sb.WriteString(strings.TrimRight(line, " "))
			sb.WriteByte('\n')
		}
	}
}

// writeDirective emits the marker line, the sorted option fields, and the
// body. Options and body are separated by a blank line when both are
// present.
func (w *RST) writeDirective(sb *strings.Builder, d *ast.Directive, level int) {
	marker := ".. " + d.Name + "::"
	if len(d.Args) > 0 {
		marker += " " + strings.Join(d.Args, " ")
	}
	w.writeLine(sb, marker, level)

	for _, key := range d.OptionKeys() {
		field := ":" + key + ":"
		if value := d.Options[key]; value != "" {
			field += " " + value
		}
		w.writeLine(sb, field, level+1)
	}
	if len(d.Options) > 0 && d.HasBody() {
		sb.WriteByte('\n')
	}

	if d.RawBody != nil {
		w.writeLines(sb, d.RawBody, level+1)
	} else if d.Body != nil {
		w.writeBlocks(sb, d.Body, level+1)
	}
}

func (w *RST) writeLines(sb *strings.Builder, lines []string, level int) {
	for _, line := range lines {
		w.writeLine(sb, line, level)
	}
}

func (w *RST) writeLine(sb *strings.Builder, line string, level int) {
	if line == "" {
		sb.WriteByte('\n')
		return
	}
	sb.WriteString(strings.Repeat(indentUnit, level))
	sb.WriteString(line)
	sb.WriteByte('\n')
}
