package format

import "strings"

// Marks used in check messages and report output.
const (
	PassMark = "✓"
	FailMark = "✗"
	WarnMark = "⚠"
	ErrMark  = "⛔"
)

// Rule returns the horizontal separator used between per-file sections
// inside a check message.
func Rule() string {
	return strings.Repeat("-", 60)
}

// Truncate shortens s to maxLen characters, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
