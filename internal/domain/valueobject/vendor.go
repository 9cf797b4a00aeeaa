// Package valueobject contains domain value objects for the receipt matching system.
package valueobject

import (
	"regexp"
	"strings"
)

// processorPrefixes are payment-processor and terminal noise tokens that carry no
// vendor information. Stripping runs in a loop so stacked prefixes cannot survive
// a single pass, which keeps NormalizeVendor idempotent.
var processorPrefixes = []string{
	"PAYPAL *",
	"PAYPAL*",
	"PAYPAL ",
	"SQ *",
	"SQ*",
	"TST *",
	"TST*",
	"DNH*",
	"DMI*",
	"PY *",
	"POS ",
	"CKO*",
	"GOOGLE *",
	"APPLE.COM/BILL ",
}

var (
	punctuationPattern   = regexp.MustCompile(`[^A-Z0-9 ]+`)
	trailingRefPattern   = regexp.MustCompile(`(?:\s+#?\d{3,})+$`)
	groupChargesPattern  = regexp.MustCompile(`(?i)\s*\(\s*\d+\s*charges?\s*\)\s*$`)
	whitespaceCollapsing = regexp.MustCompile(`\s+`)
)

// NormalizeVendor reduces a free-text vendor or description line to a canonical
// uppercase key: processor prefixes, punctuation, and trailing reference numbers
// are stripped and whitespace is collapsed. Blank input yields the empty string.
// The function is pure and idempotent.
func NormalizeVendor(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	for stripped := true; stripped; {
		stripped = false
		for _, prefix := range processorPrefixes {
			if strings.HasPrefix(s, prefix) {
				s = strings.TrimSpace(s[len(prefix):])
				stripped = true
			}
		}
	}

	s = punctuationPattern.ReplaceAllString(s, " ")
	s = whitespaceCollapsing.ReplaceAllString(strings.TrimSpace(s), " ")
	s = trailingRefPattern.ReplaceAllString(s, "")

	return strings.TrimSpace(s)
}

// ExtractVendorFromGroupName strips a trailing "(N charges)" annotation from a
// transaction-group display label and returns the remaining text trimmed. Labels
// without the annotation are returned unchanged apart from edge trimming; blank
// input yields the empty string. Whitespace inside the annotation is tolerated.
func ExtractVendorFromGroupName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(groupChargesPattern.ReplaceAllString(trimmed, ""))
}
