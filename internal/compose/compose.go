// Package compose derives human-readable composite strings from resolved
// components. Pure functions; the composite is a cache, never a source of
// truth.
package compose

import (
	"fmt"
	"strings"
)

// PositioningStatement assembles the four components into the sentence
// "I help {who} {result} when {when} {how}.".
//
// Empty components are inserted as empty strings, not elided, so four
// empty components yield exactly "I help    ." and callers must detect
// incompleteness by inspecting the constituent fields. The "when"
// connective renders with its component; downstream code inspects the
// literal composite, so this shape must not drift.
func PositioningStatement(who, result, when, how string) string {
	whenPart := when
	if when != "" {
		whenPart = "when " + when
	}
	return fmt.Sprintf("I help %s %s %s %s.", FormatAudienceList(who), result, whenPart, how)
}

// FormatAudienceList renders a comma-separated audience list with natural
// grammar: "A", "A and B", "A, B, and C" (Oxford comma, final item joined
// with "and"). Single values without a delimiter pass through unchanged.
func FormatAudienceList(raw string) string {
	if !strings.Contains(raw, ",") {
		return raw
	}
	var items []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
