package main

import (
	"regexp"
	"strings"
)

// parseFailureSentinel fills the internal field when neither split strategy
// finds two sections; the customer field then carries the full raw text so
// nothing is lost.
const parseFailureSentinel = "[Could not parse internal summary]"

// leadPlaceholder is what the generation prompt asks the model to emit for
// the communication lead.
const leadPlaceholder = "[Name/Role]"

var (
	customerHeaderRe  = regexp.MustCompile(`(?i)CUSTOMER UPDATE`)
	internalHeaderRe  = regexp.MustCompile(`(?i)INTERNAL SUMMARY[:\-\n]*`)
	leadingEmphasisRe = regexp.MustCompile(`(?m)^\*+`)
)

// ParseDraft splits one unstructured completion into an internal summary and
// a customer update. Primary strategy: split at the first case-insensitive
// "CUSTOMER UPDATE" header. Fallback: split a "1) ... 2) ..." layout at the
// first "2)". If neither yields two sections, ParseOK is false and the whole
// raw text survives as the customer section.
func ParseDraft(raw string) ParsedDraft {
	if loc := customerHeaderRe.FindStringIndex(raw); loc != nil {
		internal := internalHeaderRe.ReplaceAllString(raw[:loc[0]], "")
		return ParsedDraft{
			Internal: strings.TrimSpace(leadingEmphasisRe.ReplaceAllString(internal, "")),
			Customer: strings.TrimSpace(raw[loc[1]:]),
			ParseOK:  true,
		}
	}

	if head, tail, found := strings.Cut(raw, "2)"); found {
		internal := strings.Replace(head, "1)", "", 1)
		return ParsedDraft{
			Internal: strings.TrimSpace(leadingEmphasisRe.ReplaceAllString(internal, "")),
			Customer: strings.TrimSpace(tail),
			ParseOK:  true,
		}
	}

	return ParsedDraft{
		Internal: parseFailureSentinel,
		Customer: raw,
		ParseOK:  false,
	}
}

// WithLead substitutes the communication-lead placeholder with the selected
// lead in both sections.
func (d ParsedDraft) WithLead(lead string) ParsedDraft {
	if strings.TrimSpace(lead) == "" {
		return d
	}
	d.Internal = strings.ReplaceAll(d.Internal, leadPlaceholder, lead)
	d.Customer = strings.ReplaceAll(d.Customer, leadPlaceholder, lead)
	return d
}
