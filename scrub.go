package main

import (
	"regexp"
	"strings"
)

// redactionToken replaces every matched sensitive substring.
const redactionToken = "[REDACTED]"

// Patterns are purely syntactic: dotted quads are not range-checked, and the
// hostname pattern only cares about the ".internal" suffix.
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:\d{1,3}\.){3}\d{1,3}\b`),
	regexp.MustCompile(`\b[a-zA-Z0-9.-]+\.internal\b`),
}

// Scrub replaces sensitive substrings with the redaction token and drops
// cosmetic separator lines consisting solely of a bare "**" marker. All
// other lines pass through verbatim in their original order. Scrubbing is
// idempotent: the redaction token matches none of the patterns.
func Scrub(text string) string {
	for _, p := range sensitivePatterns {
		text = p.ReplaceAllString(text, redactionToken)
	}
	return stripSeparatorLines(text)
}

func stripSeparatorLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) == "**" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// ScrubDraft scrubs both sections of a parsed draft.
func ScrubDraft(d ParsedDraft) ParsedDraft {
	d.Internal = Scrub(d.Internal)
	d.Customer = Scrub(d.Customer)
	return d
}
