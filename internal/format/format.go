// Package format implements the canonicalization engine: heading style
// resolution, paragraph reflow, blank-line normalization, and the
// pipeline tying them to the parser and writer collaborators. Its output
// is idempotent: formatting already-formatted text reproduces it byte for
// byte.
package format

import (
	"context"
	"regexp"
	"strings"

	"github.com/docforge-io/rstfmt/internal/ast"
	"github.com/docforge-io/rstfmt/internal/codefmt"
	"github.com/docforge-io/rstfmt/internal/parser"
	"github.com/docforge-io/rstfmt/internal/parser/rst"
	"github.com/docforge-io/rstfmt/internal/writer"
)

// DefaultMaxLineWidth is the wrapping width used when none is configured.
const DefaultMaxLineWidth = 79

// Options controls a single Format invocation.
type Options struct {
	// MaxLineWidth is the maximum rendered line width.
	MaxLineWidth int
	// CheckMode reports whether the caller only wants to know if the
	// source would change; the pipeline itself never writes anywhere.
	CheckMode bool
	// CodeFormatter, when set, reformats the bodies of embedded
	// code-block directives. Its failures are non-fatal.
	CodeFormatter codefmt.Provider
	// NoBreakPatterns lists extra regexes whose matches become atomic
	// inline spans.
	NoBreakPatterns []*regexp.Regexp
}

// DefaultOptions returns the default formatting options.
func DefaultOptions() Options {
	return Options{
		MaxLineWidth:    DefaultMaxLineWidth,
		NoBreakPatterns: []*regexp.Regexp{parser.DefaultNoBreakPattern},
	}
}

// Result is the outcome of one Format invocation.
type Result struct {
	// Output is the complete canonical text, also when warnings were
	// recorded.
	Output string
	// Changed reports whether Output differs from the source.
	Changed bool
	// Warnings lists every recovered non-fatal condition.
	Warnings []Warning
}

// Format parses the source, canonicalizes the tree and renders it back.
// A parse failure aborts with no partial output; everything else
// completes and surfaces its problems as warnings on the result.
func Format(ctx context.Context, source string, opts Options) (*Result, error) {
	if opts.MaxLineWidth <= 0 {
		opts.MaxLineWidth = DefaultMaxLineWidth
	}
	if opts.NoBreakPatterns == nil {
		opts.NoBreakPatterns = DefaultOptions().NoBreakPatterns
	}

	p := rst.New(source, parser.Options{NoBreakPatterns: opts.NoBreakPatterns})
	defer p.Close()

	doc, err := p.Parse()
	if err != nil {
		return nil, err
	}

	res := &Result{}
	ResolveHeadingStyles(doc, CanonicalStyles, &res.Warnings)
	if opts.CodeFormatter != nil {
		formatCodeBlocks(ctx, doc, opts.CodeFormatter, &res.Warnings)
	}
	ReflowDocument(doc, opts.MaxLineWidth)
	NormalizeSpacing(doc)

	res.Output = writer.New().Write(doc)
	res.Changed = res.Output != source
	return res, nil
}

// formatCodeBlocks runs the code formatter over every code directive
// body. On failure the original body is kept and a warning recorded.
func formatCodeBlocks(ctx context.Context, doc *ast.Document, provider codefmt.Provider, warnings *[]Warning) {
	for i := range doc.Blocks {
		b := &doc.Blocks[i]
		switch b.Type {
		case ast.BlockTypeList:
			for j := range b.List.Items {
				formatCodeBlocks(ctx, b.List.Items[j].Body, provider, warnings)
			}
		case ast.BlockTypeDirective:
			d := b.Directive
			if d.Body != nil {
				formatCodeBlocks(ctx, d.Body, provider, warnings)
			}
			if !d.IsCode() || len(d.RawBody) == 0 {
				continue
			}
			formatted, err := provider.Format(ctx, strings.Join(d.RawBody, "\n"), d.Language())
			if err != nil {
				*warnings = append(*warnings, Warning{
					Code:    WarnCodeFormat,
					Message: err.Error(),
				})
				continue
			}
			d.RawBody = strings.Split(strings.TrimRight(formatted, "\n"), "\n")
		}
	}
}
