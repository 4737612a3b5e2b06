package helper

import (
	"strings"
)

// GenerateSlug normalizes a title into a URL slug:
// - lower-case
// - every run of non [a-z0-9] becomes a single "-"
// - trim "-" at both ends
//
// Slugs are derived, never stored: the same title always yields the same
// slug, so lookups re-derive instead of reading a column. The mapping is
// ASCII-only on purpose: published event URLs were generated with exactly
// this function and must keep resolving.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
