package state

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeName produces the canonical identity for a ritual name:
// NFC normalization, then trim, then lowercase. Two names that normalize
// equal refer to the same ritual.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(name)))
}

// NormalizeText prepares free-form idea text: NFC normalization and trim.
// Case is preserved.
func NormalizeText(text string) string {
	return strings.TrimSpace(norm.NFC.String(text))
}
