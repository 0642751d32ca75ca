package haikunator

import "golang.org/x/text/unicode/norm"

// Config is the environment representation of Params, meant to be parsed
// with pkg/config.
//
// Empty word lists fall back to the built-in ones, since an unset variable
// and an empty one can't be told apart. Use Params directly to omit a segment.
type Config struct {
	Delimiter   string   `env:"HAIKUNATOR_DELIMITER" envDefault:"-"`
	TokenLength int      `env:"HAIKUNATOR_TOKEN_LENGTH" envDefault:"4"`
	TokenHex    bool     `env:"HAIKUNATOR_TOKEN_HEX" envDefault:"false"`
	TokenChars  string   `env:"HAIKUNATOR_TOKEN_CHARS" envDefault:"0123456789"`
	Adjectives  []string `env:"HAIKUNATOR_ADJECTIVES" envSeparator:","`
	Nouns       []string `env:"HAIKUNATOR_NOUNS" envSeparator:","`

	// Seed makes the generator deterministic when non-zero.
	Seed uint64 `env:"HAIKUNATOR_SEED"`
}

// Params converts the config into generator parameters.
// TokenChars is normalized to NFC so that decomposed sequences, like "e"
// followed by a combining accent, count as a single codepoint.
func (c Config) Params() Params {
	p := DefaultParams()
	p.Delimiter = c.Delimiter
	p.TokenLength = c.TokenLength
	p.TokenHex = c.TokenHex
	p.TokenChars = norm.NFC.String(c.TokenChars)

	if len(c.Adjectives) > 0 {
		p.Adjectives = c.Adjectives
	}
	if len(c.Nouns) > 0 {
		p.Nouns = c.Nouns
	}
	if c.Seed != 0 {
		p.Source = NewSeededSource(c.Seed)
	}
	return p
}
