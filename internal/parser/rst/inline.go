package rst

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/docforge-io/rstfmt/internal/ast"
)

// inlinePattern pairs a compiled regex with the span type its matches
// produce. Patterns are tried in priority order at each position.
type inlinePattern struct {
	re   *regexp.Regexp
	kind ast.SpanType
	// guarded patterns only match at markup-valid boundaries: not glued
	// to a preceding or following word character.
	guarded bool
}

var builtinPatterns = []inlinePattern{
	{re: regexp.MustCompile("``.+?``"), kind: ast.SpanLiteral, guarded: true},
	{re: regexp.MustCompile("_`[^`]+`"), kind: ast.SpanOther, guarded: true},
	{re: regexp.MustCompile(`:[-\w.+]+(?::[-\w.+]+)*:` + "`[^`]+`"), kind: ast.SpanOther, guarded: true},
	{re: regexp.MustCompile("`[^`]+`__?"), kind: ast.SpanReference, guarded: true},
	{re: regexp.MustCompile(`\*\*.+?\*\*`), kind: ast.SpanStrong, guarded: true},
	{re: regexp.MustCompile(`\*[^\s*](?:[^*]*[^\s*])?\*`), kind: ast.SpanEmphasis, guarded: true},
	{re: regexp.MustCompile(`\[[^\]\s]+\]_`), kind: ast.SpanReference, guarded: true},
}

// tokenizer splits paragraph text into atomic inline spans: markup
// constructs stay whole, everything between them becomes plain words.
type tokenizer struct {
	patterns []inlinePattern
}

func newTokenizer(noBreak []*regexp.Regexp) *tokenizer {
	patterns := make([]inlinePattern, 0, len(noBreak)+len(builtinPatterns))
	for _, re := range noBreak {
		patterns = append(patterns, inlinePattern{re: re, kind: ast.SpanOther})
	}
	patterns = append(patterns, builtinPatterns...)
	return &tokenizer{patterns: patterns}
}

// tokenize converts one logical line of text into spans. Whitespace runs
// collapse; markup matches become single atomic spans.
func (t *tokenizer) tokenize(text string) []ast.Span {
	var spans []ast.Span
	t.scan(text, &spans)
	return spans
}

// tokenizeLines tokenizes several physical lines into one span sequence,
// the way consecutive source lines form a single paragraph.
func (t *tokenizer) tokenizeLines(lines []string) []ast.Span {
	var spans []ast.Span
	for _, line := range lines {
		t.scan(line, &spans)
	}
	return spans
}

func (t *tokenizer) scan(text string, spans *[]ast.Span) {
	for len(text) > 0 {
		kind, start, end := t.earliestMatch(text)
		if start < 0 {
			appendWords(spans, text)
			return
		}
		appendWords(spans, text[:start])
		*spans = append(*spans, ast.Span{Type: kind, Text: text[start:end]})
		text = text[end:]
	}
}

// earliestMatch finds the leftmost valid markup match. Ties at the same
// position go to the higher-priority pattern.
func (t *tokenizer) earliestMatch(text string) (ast.SpanType, int, int) {
	bestStart, bestEnd := -1, -1
	var bestKind ast.SpanType
	for _, p := range t.patterns {
		offset := 0
		for offset < len(text) {
			loc := p.re.FindStringIndex(text[offset:])
			if loc == nil {
				break
			}
			start, end := offset+loc[0], offset+loc[1]
			if p.guarded && !validBoundary(text, start, end) {
				offset = start + 1
				continue
			}
			if bestStart < 0 || start < bestStart {
				bestStart, bestEnd, bestKind = start, end, p.kind
			}
			break
		}
	}
	return bestKind, bestStart, bestEnd
}

// validBoundary reports whether a markup match is properly delimited:
// inline markup must not be glued to surrounding word characters.
func validBoundary(text string, start, end int) bool {
	if start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if unicode.IsLetter(prev) || unicode.IsDigit(prev) || prev == '\\' {
			return false
		}
	}
	if end < len(text) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		if unicode.IsLetter(next) || unicode.IsDigit(next) {
			return false
		}
	}
	return true
}

func appendWords(spans *[]ast.Span, text string) {
	for _, word := range strings.Fields(text) {
		*spans = append(*spans, ast.Word(word))
	}
}
