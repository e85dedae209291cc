package format

import "fmt"

// WarningCode classifies a recovered, non-fatal formatting condition.
type WarningCode string

const (
	// WarnCodeFormat reports a failed external code-formatter run; the
	// original code block text was kept.
	WarnCodeFormat WarningCode = "code-format"
	// WarnHeadingDepth reports more distinct heading styles than the
	// canonical priority table supports; a fallback decoration was used.
	WarnHeadingDepth WarningCode = "heading-depth"
)

// Warning describes a condition that did not stop formatting but that the
// caller should surface. Warnings are collected, never silently dropped.
type Warning struct {
	Code    WarningCode
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}
