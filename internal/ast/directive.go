package ast

import "sort"

// Directive represents an explicit-markup directive such as
// ".. image:: file.png" or ".. code-block:: go". Options are emitted in
// sorted key order. Exactly one of Body and RawBody is set for a
// non-empty directive: prose bodies are parsed into a nested document and
// reformatted like any other content, while verbatim directives (code,
// tables) keep their dedented source lines untouched.
type Directive struct {
	Name    string
	Args    []string
	Options map[string]string
	Body    *Document
	RawBody []string
}

// NewDirective creates a directive with the given name and arguments.
func NewDirective(name string, args []string) *Directive {
	return &Directive{
		Name:    name,
		Args:    args,
		Options: make(map[string]string),
	}
}

// SetOption records an option field.
func (d *Directive) SetOption(key, value string) {
	if d.Options == nil {
		d.Options = make(map[string]string)
	}
	d.Options[key] = value
}

// OptionKeys returns the option names in sorted order.
func (d *Directive) OptionKeys() []string {
	keys := make([]string, 0, len(d.Options))
	for k := range d.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// HasBody returns true if the directive carries any body content.
func (d *Directive) HasBody() bool {
	return (d.Body != nil && !d.Body.IsEmpty()) || len(d.RawBody) > 0
}

// verbatimDirectives lists directive names whose bodies must never be
// reflowed. Code bodies go through the external code formatter instead;
// table and raw bodies are column-sensitive.
var verbatimDirectives = map[string]bool{
	"code":           true,
	"code-block":     true,
	"sourcecode":     true,
	"literalinclude": true,
	"highlight":      true,
	"math":           true,
	"csv-table":      true,
	"list-table":     true,
	"table":          true,
	"raw":            true,
	"parsed-literal": true,
}

// IsVerbatim reports whether the directive's body is kept verbatim.
func (d *Directive) IsVerbatim() bool {
	return verbatimDirectives[d.Name]
}

// codeDirectives lists directive names whose body is source code. The
// first argument, when present, is the language hint.
var codeDirectives = map[string]bool{
	"code":       true,
	"code-block": true,
	"sourcecode": true,
}

// IsCode reports whether the directive embeds a code block eligible for
// external code formatting.
func (d *Directive) IsCode() bool {
	return codeDirectives[d.Name]
}

// Language returns the code language hint, or "" when none is given.
func (d *Directive) Language() string {
	if len(d.Args) > 0 {
		return d.Args[0]
	}
	return ""
}
