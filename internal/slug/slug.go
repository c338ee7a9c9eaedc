// Package slug derives URL-safe identifiers from human-entered titles.
package slug

import "strings"

// Derive lowercases s, collapses every run of characters outside [a-z0-9]
// into a single hyphen, and trims leading and trailing hyphens. Applying
// Derive to its own output yields the same string.
func Derive(s string) string {
	var b strings.Builder
	pending := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// Valid reports whether s already has the canonical slug shape
// [a-z0-9]+(-[a-z0-9]+)*.
func Valid(s string) bool {
	return s != "" && Derive(s) == s
}
