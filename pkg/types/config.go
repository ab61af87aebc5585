// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// FieldMapping declares which input columns feed which BibTeX fields.
// Columns not present in the mapping are ignored. Several columns may map
// to the same field; the first non-empty value in header order wins.
type FieldMapping map[string]string

// DefaultMapping returns the column-to-field table for the bibliographic
// CSV/XLSX exports the converter targets (Scopus-style headers plus the
// plain names used by hand-maintained sheets).
func DefaultMapping() FieldMapping {
	return FieldMapping{
		"Authors":      "author",
		"Title":        "title",
		"Journal":      "journal",
		"Source title": "journal",
		"Year":         "year",
		"Volume":       "volume",
		"Issue":        "number",
		"Pages":        "pages",
		"DOI":          "doi",
		"Link":         "url",
	}
}

// OutputFormat selects the serialization of converted entries.
type OutputFormat string

const (
	FormatBibTeX OutputFormat = "bib"
	FormatCSL    OutputFormat = "csl"
)

// ConvertConfig holds settings for one conversion run.
type ConvertConfig struct {
	// Mapping is the column-to-field table. Nil means DefaultMapping.
	Mapping FieldMapping `json:"mapping,omitempty" yaml:"mapping,omitempty"`

	// Strict aborts the run on the first malformed row instead of
	// skipping it.
	Strict bool `json:"strict" yaml:"strict"`

	// AuthorDelimiter separates authors in the source author column
	// (default ";"). Output always uses BibTeX's " and ".
	AuthorDelimiter string `json:"author_delimiter" yaml:"author_delimiter"`

	// PageStartColumn and PageEndColumn name the columns combined into
	// the pages field when no mapped column supplies one directly
	// (defaults "Page start" and "Page end").
	PageStartColumn string `json:"page_start_column" yaml:"page_start_column"`
	PageEndColumn   string `json:"page_end_column" yaml:"page_end_column"`
}
