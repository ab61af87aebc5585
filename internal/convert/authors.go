// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "strings"

// DefaultAuthorDelimiter separates authors in the source column. Scopus
// and Web of Science exports use a semicolon.
const DefaultAuthorDelimiter = ";"

// NormalizeAuthors rewrites a delimiter-separated author list into BibTeX's
// "and"-joined form. Each author is trimmed and bare single-letter initials
// gain a trailing period, so "Smith, J; Doe, A" becomes
// "Smith, J. and Doe, A.".
func NormalizeAuthors(list, delimiter string) string {
	if delimiter == "" {
		delimiter = DefaultAuthorDelimiter
	}
	var authors []string
	for _, a := range strings.Split(list, delimiter) {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		authors = append(authors, normalizeAuthor(a))
	}
	return strings.Join(authors, " and ")
}

// FirstAuthor returns the first non-empty author from a delimiter-separated
// list, trimmed but otherwise unmodified.
func FirstAuthor(list, delimiter string) string {
	if delimiter == "" {
		delimiter = DefaultAuthorDelimiter
	}
	for _, a := range strings.Split(list, delimiter) {
		if a = strings.TrimSpace(a); a != "" {
			return a
		}
	}
	return ""
}

// normalizeAuthor tidies one name. Tokens that are a bare uppercase letter
// are abbreviated given names and gain a period; everything else passes
// through untouched.
func normalizeAuthor(name string) string {
	tokens := strings.Fields(name)
	for i, tok := range tokens {
		trailing := ""
		if strings.HasSuffix(tok, ",") {
			trailing = ","
			tok = strings.TrimSuffix(tok, ",")
		}
		if isBareInitial(tok) {
			tok += "."
		}
		tokens[i] = tok + trailing
	}
	return strings.Join(tokens, " ")
}

// isBareInitial reports whether s is a single uppercase letter.
func isBareInitial(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}

// surname extracts the family name from one author. Names in
// "Family, Given" form yield the part before the comma's last word;
// otherwise the last whitespace-separated token is taken.
func surname(author string) string {
	author = strings.TrimSpace(author)
	if author == "" {
		return ""
	}
	if i := strings.Index(author, ","); i >= 0 {
		author = author[:i]
	}
	fields := strings.Fields(author)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
