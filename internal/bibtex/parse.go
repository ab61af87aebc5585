// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"fmt"
	"strings"

	"github.com/pdiddy/csv2bib/pkg/types"
)

// Parse reads the @article blocks the serializer emits, returning entries
// in source order. It understands brace-delimited values with escaped
// characters and tolerates whitespace variations, which is enough to
// verify round-trips and re-read converter output. Entry types other than
// article are rejected.
func Parse(src string) ([]types.Entry, error) {
	p := &parser{src: src}
	var entries []types.Entry
	for {
		e, ok, err := p.nextEntry()
		if err != nil {
			return nil, err
		}
		if !ok {
			return entries, nil
		}
		entries = append(entries, e)
	}
}

// parser walks the source text by byte offset.
type parser struct {
	src string
	pos int
}

// nextEntry parses one @type{key, ...} block. ok is false at end of input.
func (p *parser) nextEntry() (e types.Entry, ok bool, err error) {
	at := strings.IndexByte(p.src[p.pos:], '@')
	if at < 0 {
		if strings.TrimSpace(p.src[p.pos:]) != "" {
			return e, false, fmt.Errorf("offset %d: text outside any entry", p.pos)
		}
		return e, false, nil
	}
	p.pos += at + 1

	brace := strings.IndexByte(p.src[p.pos:], '{')
	if brace < 0 {
		return e, false, fmt.Errorf("offset %d: entry has no opening brace", p.pos)
	}
	entryType := strings.ToLower(strings.TrimSpace(p.src[p.pos : p.pos+brace]))
	if entryType != "article" {
		return e, false, fmt.Errorf("offset %d: unsupported entry type %q", p.pos, entryType)
	}
	p.pos += brace + 1

	comma := strings.IndexByte(p.src[p.pos:], ',')
	if comma < 0 {
		return e, false, fmt.Errorf("offset %d: entry key is not terminated", p.pos)
	}
	e.Key = strings.TrimSpace(p.src[p.pos : p.pos+comma])
	if e.Key == "" {
		return e, false, fmt.Errorf("offset %d: entry has empty key", p.pos)
	}
	p.pos += comma + 1

	e.Fields = make(map[string]string)
	for {
		p.skipSeparators()
		if p.pos >= len(p.src) {
			return e, false, fmt.Errorf("unexpected end of input in entry %q", e.Key)
		}
		if p.src[p.pos] == '}' {
			p.pos++
			return e, true, nil
		}
		name, value, err := p.field(e.Key)
		if err != nil {
			return e, false, err
		}
		e.Fields[name] = value
	}
}

// field parses one "name = {value}" pair.
func (p *parser) field(key string) (name, value string, err error) {
	eq := strings.IndexByte(p.src[p.pos:], '=')
	if eq < 0 {
		return "", "", fmt.Errorf("entry %q: field has no '='", key)
	}
	name = strings.ToLower(strings.TrimSpace(p.src[p.pos : p.pos+eq]))
	if name == "" {
		return "", "", fmt.Errorf("entry %q: field has empty name", key)
	}
	p.pos += eq + 1

	p.skipSeparators()
	if p.pos >= len(p.src) || p.src[p.pos] != '{' {
		return "", "", fmt.Errorf("entry %q: field %q value is not brace-delimited", key, name)
	}
	p.pos++

	raw, err := p.bracedValue(key, name)
	if err != nil {
		return "", "", err
	}
	return name, unescaper.Replace(raw), nil
}

// bracedValue consumes up to the brace closing the value opened just
// before the call. Backslash-escaped characters do not count toward brace
// depth.
func (p *parser) bracedValue(key, name string) (string, error) {
	start := p.pos
	depth := 1
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '\\':
			p.pos++ // the escaped character is value text
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				raw := p.src[start:p.pos]
				p.pos++
				return raw, nil
			}
		}
		p.pos++
	}
	return "", fmt.Errorf("entry %q: field %q value is not terminated", key, name)
}

// skipSeparators advances past whitespace and field-separating commas.
func (p *parser) skipSeparators() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\r', '\n', ',':
			p.pos++
		default:
			return
		}
	}
}
