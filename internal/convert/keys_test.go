// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "testing"

func TestBaseKey(t *testing.T) {
	tests := []struct {
		name    string
		authors string
		year    string
		want    string
	}{
		{"family comma given", "Smith, J; Doe, A", "2020", "smith2020"},
		{"given family order", "John Smith; Ada Lovelace", "1850", "smith1850"},
		{"multi-part name takes last token", "John von Neumann", "1945", "neumann1945"},
		{"single token name", "Plato", "370", "plato370"},
		{"empty author falls back", "", "2020", "unknown2020"},
		{"empty year falls back", "Smith, J", "", "smithnd"},
		{"both empty", "", "", "unknownnd"},
		{"punctuation stripped from year", "Smith, J", "n.d.", "smithnd"},
		{"non-ascii letters dropped", "Müller, K", "2019", "mller2019"},
		{"uppercase lowered", "O'BRIEN, P", "2001", "obrien2001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := baseKey(tt.authors, tt.year, ";"); got != tt.want {
				t.Errorf("baseKey(%q, %q) = %q, want %q", tt.authors, tt.year, got, tt.want)
			}
		})
	}
}

func TestKeySetIssue(t *testing.T) {
	keys := make(keySet)

	want := []string{"smith2020", "smith2020a", "smith2020b", "smith2020c"}
	for i, w := range want {
		if got := keys.issue("smith2020"); got != w {
			t.Errorf("issue #%d = %q, want %q", i+1, got, w)
		}
	}

	// An unrelated base is unaffected by earlier collisions.
	if got := keys.issue("doe2021"); got != "doe2021" {
		t.Errorf("issue(doe2021) = %q, want doe2021", got)
	}
}

// A key that happens to equal a suffixed form of an earlier base must not
// be issued twice.
func TestKeySetIssuePreexistingSuffix(t *testing.T) {
	keys := make(keySet)

	if got := keys.issue("smith2020a"); got != "smith2020a" {
		t.Fatalf("issue = %q, want smith2020a", got)
	}
	if got := keys.issue("smith2020"); got != "smith2020" {
		t.Fatalf("issue = %q, want smith2020", got)
	}
	// "smith2020a" is taken, so the first collision jumps to "b".
	if got := keys.issue("smith2020"); got != "smith2020b" {
		t.Errorf("issue = %q, want smith2020b", got)
	}
}

func TestAlphaSuffix(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "a"},
		{2, "b"},
		{26, "z"},
		{27, "aa"},
		{28, "ab"},
		{52, "az"},
		{53, "ba"},
		{702, "zz"},
		{703, "aaa"},
	}

	for _, tt := range tests {
		if got := alphaSuffix(tt.n); got != tt.want {
			t.Errorf("alphaSuffix(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
