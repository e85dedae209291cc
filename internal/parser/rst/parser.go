// Package rst provides a line-based parser for reStructuredText sources.
// It recognizes the constructs the formatter reformats (sections,
// paragraphs, bullet lists, directives, literal blocks) and keeps
// everything else (tables, comments, targets) verbatim. Malformed nesting
// is not rejected; parsing is best-effort except for stray section
// adornments, which are a hard parse error.
package rst

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/docforge-io/rstfmt/internal/ast"
	"github.com/docforge-io/rstfmt/internal/parser"
)

var (
	directiveRe = regexp.MustCompile(`^\.\. +([A-Za-z0-9][\w.+-]*)::(?:[ \t]+(.*))?$`)
	optionRe    = regexp.MustCompile(`^:([\w-][\w. -]*):(?:[ \t]+(.*))?$`)
)

// adornmentChars are the characters docutils accepts for section
// decoration lines.
const adornmentChars = "=-`:'\"~^_*+#<>.!?$%&(){}[]|;,/\\@"

// Parser parses RST source text.
type Parser struct {
	lines   []string
	options parser.Options
	inline  *tokenizer
}

// New creates a parser for the given source text.
func New(source string, opts parser.Options) *Parser {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	return &Parser{
		lines:   strings.Split(source, "\n"),
		options: opts,
		inline:  newTokenizer(opts.NoBreakPatterns),
	}
}

// Parse implements the parser.Parser interface.
func (p *Parser) Parse() (*ast.Document, error) {
	return p.parseBlocks(p.lines, 1)
}

// Close implements the parser.Parser interface. The parser holds no
// external resources.
func (p *Parser) Close() error {
	return nil
}

// parseBlocks parses a run of lines into a document. base is the 1-based
// source line number of lines[0], used for error positions.
func (p *Parser) parseBlocks(lines []string, base int) (*ast.Document, error) {
	doc := ast.NewDocument()
	i := 0
	for i < len(lines) {
		line := lines[i]
		if blank(line) {
			i++
			continue
		}

		switch {
		case isGridTableStart(line) || isSimpleTableBorder(line):
			i = p.parseTable(doc, lines, i)

		case strings.TrimRight(line, " \t") == "::":
			// bare literal-block introduction, not a ":" adornment
			doc.AddParagraph(ast.NewParagraph([]ast.Span{ast.Word("::")}))
			if lit, next := p.parseLiteral(lines, i+1); lit != nil {
				doc.AddLiteral(lit)
				i = next
			} else {
				i++
			}

		case isAdornment(line):
			next, err := p.parseAdornment(doc, lines, i, base)
			if err != nil {
				return nil, err
			}
			i = next

		case isExplicitMarkup(line):
			i = p.parseExplicitMarkup(doc, lines, i, base)

		case isBulletStart(line):
			next, err := p.parseList(doc, lines, i, base)
			if err != nil {
				return nil, err
			}
			i = next

		default:
			next, err := p.parseText(doc, lines, i, base)
			if err != nil {
				return nil, err
			}
			i = next
		}
	}
	return doc, nil
}

// parseAdornment handles a decoration line seen at block start: either an
// overline+underline section title or a transition.
func (p *Parser) parseAdornment(doc *ast.Document, lines []string, i, base int) (int, error) {
	ch, _ := adornmentOf(lines[i])

	if i+2 < len(lines) && !blank(lines[i+1]) && !isAdornment(lines[i+1]) {
		if below, ok := adornmentOf(lines[i+2]); ok && below == ch {
			text := strings.TrimSpace(lines[i+1])
			h := ast.NewHeading(p.inline.tokenize(text), ast.Decoration{Char: ch, Overline: true})
			doc.AddHeading(h)
			return i + 3, nil
		}
	}

	if utf8.RuneCountInString(strings.TrimRight(lines[i], " \t")) >= 4 &&
		(i+1 >= len(lines) || blank(lines[i+1])) {
		doc.AddTransition()
		return i + 1, nil
	}

	return 0, parser.Errorf(base+i, "stray section adornment %q", strings.TrimRight(lines[i], " \t"))
}

// parseText handles paragraphs, underlined section titles and literal
// blocks introduced by "::".
func (p *Parser) parseText(doc *ast.Document, lines []string, i, base int) (int, error) {
	// one text line with a decoration line below is a section title
	if i+1 < len(lines) && isAdornment(lines[i+1]) {
		ch, _ := adornmentOf(lines[i+1])
		text := strings.TrimSpace(lines[i])
		doc.AddHeading(ast.NewHeading(p.inline.tokenize(text), ast.Decoration{Char: ch}))
		return i + 2, nil
	}

	start := i
	for i < len(lines) {
		line := lines[i]
		if blank(line) || isBoundary(line) {
			break
		}
		// the next line being an adornment means this line starts a new
		// section title, not a paragraph continuation
		if i > start && i+1 < len(lines) && isAdornment(lines[i+1]) {
			break
		}
		i++
	}

	para := ast.NewParagraph(p.inline.tokenizeLines(lines[start:i]))
	doc.AddParagraph(para)

	// a paragraph ending in "::" introduces an indented literal block
	if para.EndsWith("::") {
		if lit, next := p.parseLiteral(lines, i); lit != nil {
			doc.AddLiteral(lit)
			return next, nil
		}
	}
	return i, nil
}

// parseLiteral collects the indented block following a "::" paragraph.
// Returns nil when no indented content follows.
func (p *Parser) parseLiteral(lines []string, i int) (*ast.LiteralBlock, int) {
	j := i
	for j < len(lines) && blank(lines[j]) {
		j++
	}
	if j >= len(lines) || indentOf(lines[j]) == 0 {
		return nil, i
	}

	var raw []string
	for j < len(lines) {
		if blank(lines[j]) {
			raw = append(raw, "")
			j++
			continue
		}
		if indentOf(lines[j]) == 0 {
			break
		}
		raw = append(raw, lines[j])
		j++
	}
	raw = trimBlankTail(raw)
	return &ast.LiteralBlock{Lines: dedent(raw)}, j
}

// parseTable collects a grid or simple table verbatim.
func (p *Parser) parseTable(doc *ast.Document, lines []string, i int) int {
	var raw []string
	for i < len(lines) && !blank(lines[i]) {
		raw = append(raw, strings.TrimRight(lines[i], " \t"))
		i++
	}
	doc.AddTable(&ast.TableBlock{Lines: raw})
	return i
}

// parseList collects consecutive items sharing one bullet character.
func (p *Parser) parseList(doc *ast.Document, lines []string, i, base int) (int, error) {
	bullet, _ := utf8.DecodeRuneInString(lines[i])
	list := ast.NewList(bullet)

	for i < len(lines) && isBulletOf(lines[i], bullet) {
		marker := markerLen(lines[i])
		body := []string{lines[i][min(marker, len(lines[i])):]}
		itemBase := base + i
		i++

		for i < len(lines) {
			line := lines[i]
			if blank(line) {
				// a blank line stays inside the item only when indented
				// content follows
				j := i
				for j < len(lines) && blank(lines[j]) {
					j++
				}
				if j < len(lines) && indentOf(lines[j]) >= marker {
					for ; i < j; i++ {
						body = append(body, "")
					}
					continue
				}
				break
			}
			if indentOf(line) >= marker {
				body = append(body, line[marker:])
				i++
				continue
			}
			break
		}

		sub, err := p.parseBlocks(trimBlankTail(body), itemBase)
		if err != nil {
			return 0, err
		}
		list.AddItem(sub)

		for i < len(lines) && blank(lines[i]) {
			// blanks between items of the same list
			if j := nextNonBlank(lines, i); j < len(lines) && isBulletOf(lines[j], bullet) {
				i = j
				continue
			}
			break
		}
	}

	doc.AddList(list)
	return i, nil
}

// parseExplicitMarkup handles ".." blocks: directives parse into typed
// nodes, everything else (comments, targets, citations, footnotes) is
// preserved verbatim.
func (p *Parser) parseExplicitMarkup(doc *ast.Document, lines []string, i, base int) int {
	if name, rest, ok := matchDirective(lines[i]); ok {
		return p.parseDirective(doc, lines, i, base, name, rest)
	}

	raw := []string{strings.TrimRight(lines[i], " \t")}
	i++
	for i < len(lines) && !blank(lines[i]) && indentOf(lines[i]) > 0 {
		raw = append(raw, strings.TrimRight(lines[i], " \t"))
		i++
	}
	doc.AddComment(&ast.Comment{Lines: raw})
	return i
}

// parseDirective reads a directive's option fields and body. The body of
// a verbatim directive (code, tables) keeps its dedented source lines;
// prose bodies parse into a nested document.
func (p *Parser) parseDirective(doc *ast.Document, lines []string, i, base int, name, rest string) int {
	dir := ast.NewDirective(name, strings.Fields(rest))
	bodyBase := base + i + 1
	i++

	var raw []string
	for i < len(lines) {
		if blank(lines[i]) {
			raw = append(raw, "")
			i++
			continue
		}
		if indentOf(lines[i]) == 0 {
			break
		}
		raw = append(raw, lines[i])
		i++
	}
	raw = dedent(trimBlankTail(raw))

	// leading option fields
	for len(raw) > 0 {
		key, value, ok := matchOption(raw[0])
		if !ok {
			break
		}
		dir.SetOption(key, value)
		raw = raw[1:]
		bodyBase++
	}
	// blank line separating options from content
	for len(raw) > 0 && raw[0] == "" {
		raw = raw[1:]
		bodyBase++
	}

	if len(raw) > 0 {
		if dir.IsVerbatim() {
			dir.RawBody = raw
		} else if body, err := p.parseBlocks(raw, bodyBase); err == nil {
			dir.Body = body
		} else {
			// an unparseable body is kept verbatim rather than failing
			// the whole document
			dir.RawBody = raw
		}
	}

	doc.AddDirective(dir)
	return i
}

func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func indentOf(line string) int {
	n := 0
	for _, r := range line {
		if r != ' ' {
			break
		}
		n++
	}
	return n
}

// adornmentOf reports whether the line is a section decoration: two or
// more copies of one adornment character starting at column zero.
func adornmentOf(line string) (rune, bool) {
	trimmed := strings.TrimRight(line, " \t")
	runes := []rune(trimmed)
	if len(runes) < 2 {
		return 0, false
	}
	first := runes[0]
	if !strings.ContainsRune(adornmentChars, first) {
		return 0, false
	}
	for _, r := range runes[1:] {
		if r != first {
			return 0, false
		}
	}
	return first, true
}

func isAdornment(line string) bool {
	_, ok := adornmentOf(line)
	return ok
}

func isExplicitMarkup(line string) bool {
	return line == ".." || strings.HasPrefix(line, ".. ")
}

func isBulletStart(line string) bool {
	if len(line) == 0 || !strings.ContainsRune("-*+", rune(line[0])) {
		return false
	}
	return len(line) == 1 || line[1] == ' '
}

func isBulletOf(line string, bullet rune) bool {
	return isBulletStart(line) && rune(line[0]) == bullet
}

// markerLen is the width of the bullet marker including the space run
// that follows it; continuation lines of the item are indented this far.
func markerLen(line string) int {
	n := 1
	for n < len(line) && line[n] == ' ' {
		n++
	}
	if n < 2 {
		n = 2
	}
	return n
}

func isGridTableStart(line string) bool {
	return strings.HasPrefix(line, "+-") || strings.HasPrefix(line, "+=")
}

// isSimpleTableBorder matches simple-table borders such as "===  ===".
func isSimpleTableBorder(line string) bool {
	trimmed := strings.TrimRight(line, " \t")
	if !strings.HasPrefix(trimmed, "=") || !strings.Contains(trimmed, " ") {
		return false
	}
	for _, r := range trimmed {
		if r != '=' && r != ' ' {
			return false
		}
	}
	return true
}

// isBoundary reports whether a line terminates paragraph gathering.
func isBoundary(line string) bool {
	return isExplicitMarkup(line) || isBulletStart(line) ||
		isGridTableStart(line) || isSimpleTableBorder(line)
}

func matchDirective(line string) (name, rest string, ok bool) {
	m := directiveRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

func matchOption(line string) (key, value string, ok bool) {
	m := optionRe.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}

func nextNonBlank(lines []string, i int) int {
	for i < len(lines) && blank(lines[i]) {
		i++
	}
	return i
}

func trimBlankTail(lines []string) []string {
	for len(lines) > 0 && blank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// dedent strips the common leading space run from non-blank lines.
func dedent(lines []string) []string {
	common := -1
	for _, line := range lines {
		if blank(line) {
			continue
		}
		if n := indentOf(line); common < 0 || n < common {
			common = n
		}
	}
	if common <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if blank(line) {
			out[i] = ""
			continue
		}
		out[i] = line[common:]
	}
	return out
}
