// Package codefmt provides the external code formatter collaborators used
// on embedded code-block directive bodies. Providers are interchangeable:
// the default runs a local command, the others delegate to AI services.
// A provider failure never fails document formatting; the pipeline keeps
// the original code and records a warning.
package codefmt

import (
	"context"
	"fmt"
	"strings"
)

// Provider is the interface all code formatters implement.
type Provider interface {
	// Name returns the provider identifier (e.g., "exec", "anthropic").
	Name() string

	// Format reformats a code block. language is the directive's language
	// hint and may be empty.
	Format(ctx context.Context, code, language string) (string, error)

	// Validate checks if the provider is properly configured.
	Validate() error
}

// Error wraps a provider failure with the provider's name.
type Error struct {
	Provider string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("code formatter %s: %v", e.Provider, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// systemPrompt is the instruction given to AI providers.
func systemPrompt(language string) string {
	lang := language
	if lang == "" {
		lang = "source"
	}
	return fmt.Sprintf("You are a code formatter. Reformat the following %s code "+
		"for consistent indentation and style without changing its behavior. "+
		"Respond with the formatted code only, no explanations and no code fences.", lang)
}

// stripFences removes a wrapping markdown code fence from an AI reply.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return text
	}
	return strings.Join(lines[1:len(lines)-1], "\n")
}
