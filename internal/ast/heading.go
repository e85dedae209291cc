package ast

// Decoration identifies a heading adornment: the character used for the
// underline and whether a matching overline is present.
type Decoration struct {
	Char     rune
	Overline bool
}

// String returns a compact form such as "=" or "==" (doubled when the
// decoration has an overline), mirroring how adornments are written in
// configuration.
func (d Decoration) String() string {
	if d.Overline {
		return string(d.Char) + string(d.Char)
	}
	return string(d.Char)
}

// Heading represents a section title. Depth is the resolved nesting level
// (0 = document title); it is set by the heading style resolver, not the
// parser. Style starts as the raw decoration found in the source and is
// overwritten with the canonical decoration for the resolved depth.
type Heading struct {
	Text  []Span
	Depth int
	Style Decoration
}

// NewHeading creates a heading with the given inline text and raw
// decoration.
func NewHeading(text []Span, style Decoration) *Heading {
	return &Heading{
		Text:  text,
		Depth: -1,
		Style: style,
	}
}

// PlainText returns the heading text with spans joined by single spaces.
func (h *Heading) PlainText() string {
	return JoinSpans(h.Text)
}
