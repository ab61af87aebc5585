// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "strings"

// Key-part fallbacks when the source row yields nothing usable.
const (
	unknownAuthorKey = "unknown"
	unknownYearKey   = "nd"
)

// keySet tracks the citation keys issued during one conversion run. It is
// created per Run call and discarded with it, so collision state never
// leaks across runs.
type keySet map[string]bool

// issue returns base if it is still free, otherwise the first free
// suffixed variant (basea, baseb, ... basez, baseaa, ...), and marks the
// returned key as taken. Given identical input order the same keys come
// out every run.
func (s keySet) issue(base string) string {
	if !s[base] {
		s[base] = true
		return base
	}
	for n := 1; ; n++ {
		key := base + alphaSuffix(n)
		if !s[key] {
			s[key] = true
			return key
		}
	}
}

// alphaSuffix converts a 1-based collision ordinal to a letter suffix:
// 1 -> "a", 26 -> "z", 27 -> "aa".
func alphaSuffix(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('a' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

// baseKey derives the citation key stem from the raw author list and year:
// the normalized first-author surname followed by the normalized year,
// e.g. "smith2020".
func baseKey(authors, year, delimiter string) string {
	name := normalizeKeyPart(surname(FirstAuthor(authors, delimiter)))
	if name == "" {
		name = unknownAuthorKey
	}
	y := normalizeKeyPart(year)
	if y == "" {
		y = unknownYearKey
	}
	return name + y
}

// normalizeKeyPart lowercases s and drops everything but ASCII letters and
// digits, keeping keys safe for any BibTeX consumer.
func normalizeKeyPart(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
