// Package ast defines the document tree for reStructuredText sources.
// It is the output of the parser and the working representation for every
// formatting stage before the writer serializes it back to text.
package ast

// Document represents a parsed RST document as an ordered block sequence.
// Block order is the document's reading order and is preserved by every
// transform.
type Document struct {
	Blocks []Block
}

// BlockType represents the type of content block.
type BlockType string

const (
	BlockTypeHeading    BlockType = "heading"
	BlockTypeParagraph  BlockType = "paragraph"
	BlockTypeList       BlockType = "list"
	BlockTypeDirective  BlockType = "directive"
	BlockTypeLiteral    BlockType = "literal"
	BlockTypeTable      BlockType = "table"
	BlockTypeComment    BlockType = "comment"
	BlockTypeTransition BlockType = "transition"
)

// Block is a tagged union over the document's block variants. Exactly one
// variant pointer is non-nil, matching Type.
type Block struct {
	Type      BlockType
	Heading   *Heading
	Paragraph *Paragraph
	List      *ListBlock
	Directive *Directive
	Literal   *LiteralBlock
	Table     *TableBlock
	Comment   *Comment

	// BlankBefore is the number of blank lines the writer emits before
	// this block. Owned by the spacing normalizer.
	BlankBefore int
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		Blocks: make([]Block, 0),
	}
}

// AddHeading appends a heading block to the document.
func (d *Document) AddHeading(h *Heading) {
	d.Blocks = append(d.Blocks, Block{
		Type:    BlockTypeHeading,
		Heading: h,
	})
}

// AddParagraph appends a paragraph block to the document.
func (d *Document) AddParagraph(p *Paragraph) {
	d.Blocks = append(d.Blocks, Block{
		Type:      BlockTypeParagraph,
		Paragraph: p,
	})
}

// AddList appends a list block to the document.
func (d *Document) AddList(l *ListBlock) {
	d.Blocks = append(d.Blocks, Block{
		Type: BlockTypeList,
		List: l,
	})
}

// AddDirective appends a directive block to the document.
func (d *Document) AddDirective(dir *Directive) {
	d.Blocks = append(d.Blocks, Block{
		Type:      BlockTypeDirective,
		Directive: dir,
	})
}

// AddLiteral appends a literal block to the document.
func (d *Document) AddLiteral(l *LiteralBlock) {
	d.Blocks = append(d.Blocks, Block{
		Type:    BlockTypeLiteral,
		Literal: l,
	})
}

// AddTable appends a table block to the document.
func (d *Document) AddTable(t *TableBlock) {
	d.Blocks = append(d.Blocks, Block{
		Type:  BlockTypeTable,
		Table: t,
	})
}

// AddComment appends a comment block to the document.
func (d *Document) AddComment(c *Comment) {
	d.Blocks = append(d.Blocks, Block{
		Type:    BlockTypeComment,
		Comment: c,
	})
}

// AddTransition appends a transition block to the document.
func (d *Document) AddTransition() {
	d.Blocks = append(d.Blocks, Block{
		Type: BlockTypeTransition,
	})
}

// IsEmpty returns true if the document has no blocks.
func (d *Document) IsEmpty() bool {
	return len(d.Blocks) == 0
}

// Headings returns pointers to every heading block in reading order,
// including headings nested inside list items and directive bodies.
func (d *Document) Headings() []*Heading {
	var out []*Heading
	d.walkHeadings(&out)
	return out
}

func (d *Document) walkHeadings(out *[]*Heading) {
	for i := range d.Blocks {
		b := &d.Blocks[i]
		switch b.Type {
		case BlockTypeHeading:
			*out = append(*out, b.Heading)
		case BlockTypeList:
			for j := range b.List.Items {
				b.List.Items[j].Body.walkHeadings(out)
			}
		case BlockTypeDirective:
			if b.Directive.Body != nil {
				b.Directive.Body.walkHeadings(out)
			}
		}
	}
}

// LiteralBlock is a verbatim indented block introduced by "::". Its lines
// are stored dedented and re-emitted without reformatting.
type LiteralBlock struct {
	Lines []string
}

// TableBlock is a grid or simple table kept verbatim.
type TableBlock struct {
	Lines []string
}

// Comment is any explicit-markup block that is not a directive: plain
// comments, hyperlink targets, citations and footnotes. The raw lines are
// preserved byte for byte.
type Comment struct {
	Lines []string
}
