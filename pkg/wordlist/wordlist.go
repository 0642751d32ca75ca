// Package wordlist loads custom adjective and noun pools from YAML.
//
// A document looks like:
//
//	adjectives: [flying, bubbly]
//	nouns:
//	  - bat
//	  - soda
//
// Either key may be left out. A key that is present replaces the matching
// pool when the lists are applied, even when its sequence is empty, which
// drops that segment from generated names.
package wordlist

import (
	"errors"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/haikunator/pkg/haikunator"
)

// Lists holds the word pools found in a document. A nil pointer means the
// key was absent.
type Lists struct {
	Adjectives *[]string `yaml:"adjectives"`
	Nouns      *[]string `yaml:"nouns"`
}

// Parse decodes a YAML word list document.
// Entries are trimmed and blank entries are dropped.
func Parse(r io.Reader) (Lists, error) {
	var l Lists
	if err := yaml.NewDecoder(r).Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return Lists{}, ErrEmptyDocument
		}
		return Lists{}, errors.Join(ErrFailedToParseYAML, err)
	}
	if l.Adjectives == nil && l.Nouns == nil {
		return Lists{}, ErrEmptyDocument
	}

	l.Adjectives = clean(l.Adjectives)
	l.Nouns = clean(l.Nouns)
	return l, nil
}

// Load reads and parses the word list file at path.
func Load(path string) (Lists, error) {
	f, err := os.Open(path)
	if err != nil {
		return Lists{}, errors.Join(ErrFailedToReadFile, err)
	}
	defer f.Close()

	return Parse(f)
}

// Apply replaces the pools of p that are present in l.
func (l Lists) Apply(p *haikunator.Params) {
	if l.Adjectives != nil {
		p.Adjectives = *l.Adjectives
	}
	if l.Nouns != nil {
		p.Nouns = *l.Nouns
	}
}

func clean(words *[]string) *[]string {
	if words == nil {
		return nil
	}
	out := make([]string, 0, len(*words))
	for _, w := range *words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return &out
}
