// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import "testing"

func TestNormalizeAuthors(t *testing.T) {
	tests := []struct {
		name      string
		list      string
		delimiter string
		want      string
	}{
		{
			name: "semicolon list with bare initials",
			list: "Smith, J; Doe, A",
			want: "Smith, J. and Doe, A.",
		},
		{
			name: "already punctuated initials pass through",
			list: "Smith, J.; Doe, A.",
			want: "Smith, J. and Doe, A.",
		},
		{
			name: "full given names untouched",
			list: "Ada Lovelace; Charles Babbage",
			want: "Ada Lovelace and Charles Babbage",
		},
		{
			name: "single author",
			list: "Smith, J",
			want: "Smith, J.",
		},
		{
			name: "multiple bare initials",
			list: "Smith, J B",
			want: "Smith, J. B.",
		},
		{
			name:      "pipe delimiter",
			list:      "Curie, M | Joliot, F",
			delimiter: "|",
			want:      "Curie, M. and Joliot, F.",
		},
		{
			name: "empty segments dropped",
			list: "Smith, J;; Doe, A;",
			want: "Smith, J. and Doe, A.",
		},
		{
			name: "lowercase single letters are not initials",
			list: "Madonna e",
			want: "Madonna e",
		},
		{
			name: "empty list",
			list: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeAuthors(tt.list, tt.delimiter); got != tt.want {
				t.Errorf("NormalizeAuthors(%q) = %q, want %q", tt.list, got, tt.want)
			}
		})
	}
}

func TestFirstAuthor(t *testing.T) {
	tests := []struct {
		list string
		want string
	}{
		{"Smith, J; Doe, A", "Smith, J"},
		{"  Smith, J  ", "Smith, J"},
		{"; Doe, A", "Doe, A"},
		{"", ""},
		{" ; ", ""},
	}

	for _, tt := range tests {
		if got := FirstAuthor(tt.list, ";"); got != tt.want {
			t.Errorf("FirstAuthor(%q) = %q, want %q", tt.list, got, tt.want)
		}
	}
}

func TestSurname(t *testing.T) {
	tests := []struct {
		author string
		want   string
	}{
		{"Smith, J", "Smith"},
		{"John Smith", "Smith"},
		{"John von Neumann", "Neumann"},
		{"Plato", "Plato"},
		{"de la Cruz, M", "Cruz"},
		{"", ""},
		{",", ""},
	}

	for _, tt := range tests {
		if got := surname(tt.author); got != tt.want {
			t.Errorf("surname(%q) = %q, want %q", tt.author, got, tt.want)
		}
	}
}
