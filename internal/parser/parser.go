// Package parser provides the interface and shared types for parsing RST
// text into the ast document tree.
package parser

import (
	"fmt"
	"regexp"

	"github.com/docforge-io/rstfmt/internal/ast"
)

// Parser is the interface for document parsers. Any engine producing an
// ast.Document can stand in for the built-in RST parser.
type Parser interface {
	// Parse reads the source and returns its block tree.
	Parse() (*ast.Document, error)

	// Close releases any resources held by the parser.
	Close() error
}

// Error describes a fatal parse failure with position information.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Errorf creates an Error at the given 1-based line.
func Errorf(line int, format string, args ...any) *Error {
	return &Error{
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

// Options contains parser configuration.
type Options struct {
	// NoBreakPatterns lists regexes whose matches become atomic inline
	// spans that reflow never splits.
	NoBreakPatterns []*regexp.Regexp
}

// DefaultNoBreakPattern is the built-in atomic-span pattern, matching
// tilde-delimited identifiers such as ~model.Name~.
var DefaultNoBreakPattern = regexp.MustCompile(`~[^~]*~`)

// DefaultOptions returns default parser options.
func DefaultOptions() Options {
	return Options{
		NoBreakPatterns: []*regexp.Regexp{DefaultNoBreakPattern},
	}
}
