package ast

import "strings"

// SpanType represents the kind of an inline span.
type SpanType string

const (
	SpanPlainText SpanType = "text"
	SpanEmphasis  SpanType = "emphasis"
	SpanStrong    SpanType = "strong"
	SpanLiteral   SpanType = "literal"
	SpanReference SpanType = "reference"
	SpanOther     SpanType = "other"
)

// Span is one inline unit of a paragraph. Text holds the span's full
// literal rendering, markup included. Spans are atomic: the reflow engine
// never breaks a line inside one.
type Span struct {
	Type SpanType
	Text string
}

// Paragraph represents a prose paragraph as an ordered span sequence.
// Lines holds the reflowed physical lines once the reflow stage has run;
// the writer emits Lines when present.
type Paragraph struct {
	Spans []Span
	Lines []string
}

// NewParagraph creates a paragraph from inline spans.
func NewParagraph(spans []Span) *Paragraph {
	return &Paragraph{Spans: spans}
}

// Word creates a plain-text span.
func Word(text string) Span {
	return Span{Type: SpanPlainText, Text: text}
}

// IsEmpty returns true if the paragraph has no spans.
func (p *Paragraph) IsEmpty() bool {
	return len(p.Spans) == 0
}

// EndsWith reports whether the paragraph's last span ends with the given
// suffix. Used to detect literal-block introductions ("::").
func (p *Paragraph) EndsWith(suffix string) bool {
	if len(p.Spans) == 0 {
		return false
	}
	return strings.HasSuffix(p.Spans[len(p.Spans)-1].Text, suffix)
}

// JoinSpans renders spans on a single line. Spans are separated by one
// space except those beginning with "," or ".", which attach directly to
// the previous span so trailing punctuation after markup stays glued.
func JoinSpans(spans []Span) string {
	var sb strings.Builder
	for i, s := range spans {
		if i > 0 && !startsWithJoiningPunct(s.Text) {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}

func startsWithJoiningPunct(text string) bool {
	return strings.HasPrefix(text, ",") || strings.HasPrefix(text, ".")
}
