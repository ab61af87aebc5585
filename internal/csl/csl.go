// Package csl renders converted entries as CSL (Citation Style Language)
// YAML for Pandoc and reference managers that prefer it over BibTeX.
package csl

import (
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/csv2bib/pkg/types"
)

// Item represents a bibliographic entry in CSL format. Field names follow
// the CSL-JSON/CSL-YAML schema so the output is consumable as a Pandoc
// bibliography.
type Item struct {
	ID             string `yaml:"id"`
	Type           string `yaml:"type"`
	Title          string `yaml:"title,omitempty"`
	Author         []Name `yaml:"author,omitempty"`
	ContainerTitle string `yaml:"container-title,omitempty"`
	Issued         *Date  `yaml:"issued,omitempty"`
	Volume         string `yaml:"volume,omitempty"`
	Issue          string `yaml:"issue,omitempty"`
	Page           string `yaml:"page,omitempty"`
	DOI            string `yaml:"DOI,omitempty"`
	URL            string `yaml:"URL,omitempty"`
}

// Name represents a person's name in CSL format.
type Name struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// Date represents a date in CSL format using date-parts.
type Date struct {
	DateParts [][]int `yaml:"date-parts"`
}

// Format writes entries as a CSL-YAML item list to w.
func Format(entries []types.Entry, w io.Writer) error {
	items := make([]Item, len(entries))
	for i, e := range entries {
		items[i] = toItem(e)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toItem converts one article entry to a CSL item.
func toItem(e types.Entry) Item {
	item := Item{
		ID:             e.Key,
		Type:           "article-journal",
		Title:          e.Fields["title"],
		ContainerTitle: e.Fields["journal"],
		Volume:         e.Fields["volume"],
		Issue:          e.Fields["number"],
		Page:           e.Fields["pages"],
		DOI:            e.Fields["doi"],
		URL:            e.Fields["url"],
	}

	for _, a := range splitAuthors(e.Fields["author"]) {
		item.Author = append(item.Author, parseName(a))
	}

	if year, err := strconv.Atoi(strings.TrimSpace(e.Fields["year"])); err == nil {
		item.Issued = &Date{DateParts: [][]int{{year}}}
	}

	return item
}

// splitAuthors splits a BibTeX "and"-joined author value.
func splitAuthors(value string) []string {
	if value == "" {
		return nil
	}
	var authors []string
	for _, a := range strings.Split(value, " and ") {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}
	return authors
}

// parseName splits one author into CSL family/given parts. Names already
// in "Family, Given" form split on the comma; otherwise the last token is
// family and the rest given. Single-token names use the literal field.
func parseName(name string) Name {
	if i := strings.Index(name, ","); i >= 0 {
		return Name{
			Family: strings.TrimSpace(name[:i]),
			Given:  strings.TrimSpace(name[i+1:]),
		}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return Name{Literal: name}
	}
	return Name{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
