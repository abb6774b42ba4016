// Package format holds the pure display helpers: status badges, timestamp
// formatting, namespace simplification, and content preview extraction.
package format

import (
	"strings"
	"unicode/utf8"

	"github.com/liakhandrii/agentcore-memory-browser/internal/model"
)

const placeholderStrategyID = "{memoryStrategyId}"

// StatusBadge maps a resource status to a badge color class.
// Matching is case-insensitive; unknown statuses are neutral.
func StatusBadge(status string) string {
	switch strings.ToUpper(status) {
	case "AVAILABLE", "ACTIVE":
		return "success"
	case "CREATING", "UPDATING":
		return "warning"
	case "DELETING", "FAILED":
		return "danger"
	default:
		return "secondary"
	}
}

// SimplifiedNamespace derives the default working namespace for a strategy
// by substituting the strategy ID into its first namespace pattern.
func SimplifiedNamespace(s model.Strategy) string {
	if len(s.Namespaces) == 0 {
		return "/default/"
	}
	return strings.ReplaceAll(s.Namespaces[0], placeholderStrategyID, s.StrategyID)
}

// FormatTime renders a FlexTime for tables and detail panels.
func FormatTime(t model.FlexTime) string {
	if t.IsZero() {
		return "—"
	}
	return t.UTC().Format("2006-01-02 15:04:05")
}

// Truncate shortens s to at most n characters, appending an ellipsis when
// anything was cut. Counting is by rune so a multibyte character is never
// split at the boundary.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}
