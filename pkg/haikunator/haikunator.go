package haikunator

import (
	"slices"
	"strings"
	"sync"
)

const hexChars = "0123456789abcdef"

// Params configures a Haikunator.
type Params struct {
	// Adjectives is the pool for the first segment. Empty omits the segment.
	Adjectives []string

	// Nouns is the pool for the second segment. Empty omits the segment.
	Nouns []string

	// Delimiter joins the non-empty segments.
	Delimiter string

	// TokenLength is the number of characters drawn for the token segment.
	// Zero omits the segment, negative values are rejected by New.
	TokenLength int

	// TokenHex forces the token alphabet to lowercase hex digits, ignoring TokenChars.
	TokenHex bool

	// TokenChars is the token alphabet, indexed by codepoint.
	TokenChars string

	// Source supplies random draws. Nil installs NewSource().
	Source Source
}

// DefaultParams returns the built-in word lists, "-" as delimiter and a
// four digit numeric token.
func DefaultParams() Params {
	return Params{
		Adjectives:  defaultAdjectives,
		Nouns:       defaultNouns,
		Delimiter:   "-",
		TokenLength: 4,
		TokenHex:    false,
		TokenChars:  "0123456789",
	}
}

// Haikunator generates heroku-like names such as "misty-river-4821".
//
// It is safe for concurrent use. A single mutex serializes every draw from
// the underlying Source and every read or write of the configuration.
type Haikunator struct {
	mu sync.Mutex

	rng         Source
	adjectives  []string
	nouns       []string
	delimiter   string
	tokenLength int
	tokenHex    bool
	tokenChars  string
}

// New creates a Haikunator from p. The word lists are copied.
func New(p Params) (*Haikunator, error) {
	if p.TokenLength < 0 {
		return nil, ErrInvalidTokenLength
	}

	rng := p.Source
	if rng == nil {
		rng = NewSource()
	}

	return &Haikunator{
		rng:         rng,
		adjectives:  slices.Clone(p.Adjectives),
		nouns:       slices.Clone(p.Nouns),
		delimiter:   p.Delimiter,
		tokenLength: p.TokenLength,
		tokenHex:    p.TokenHex,
		tokenChars:  p.TokenChars,
	}, nil
}

// Default creates a Haikunator with DefaultParams.
func Default() *Haikunator {
	h, _ := New(DefaultParams())
	return h
}

// Haikunate returns a new name built from a random adjective, a random noun
// and a random token, in that order. Empty segments are dropped before
// joining, so a generator with no words and no token returns "".
func (h *Haikunator) Haikunate() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	alphabet := h.tokenChars
	if h.tokenHex {
		alphabet = hexChars
	}

	parts := make([]string, 0, 3)
	if adj := h.pick(h.adjectives); adj != "" {
		parts = append(parts, adj)
	}
	if noun := h.pick(h.nouns); noun != "" {
		parts = append(parts, noun)
	}
	if token := h.token(alphabet); token != "" {
		parts = append(parts, token)
	}

	return strings.Join(parts, h.delimiter)
}

// pick draws one element from words, or returns "" without drawing when
// words is empty.
func (h *Haikunator) pick(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[h.rng.IntN(len(words))]
}

// token builds tokenLength runes drawn from alphabet by codepoint position.
func (h *Haikunator) token(alphabet string) string {
	if h.tokenLength == 0 {
		return ""
	}
	runes := []rune(alphabet)
	if len(runes) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(h.tokenLength * 4)
	for range h.tokenLength {
		b.WriteRune(runes[h.rng.IntN(len(runes))])
	}
	return b.String()
}

// Params returns a snapshot of the current configuration.
func (h *Haikunator) Params() Params {
	h.mu.Lock()
	defer h.mu.Unlock()

	return Params{
		Adjectives:  slices.Clone(h.adjectives),
		Nouns:       slices.Clone(h.nouns),
		Delimiter:   h.delimiter,
		TokenLength: h.tokenLength,
		TokenHex:    h.tokenHex,
		TokenChars:  h.tokenChars,
		Source:      h.rng,
	}
}

// SetAdjectives replaces the adjective pool. Nil or empty omits the segment.
func (h *Haikunator) SetAdjectives(words []string) {
	h.mu.Lock()
	h.adjectives = slices.Clone(words)
	h.mu.Unlock()
}

// SetNouns replaces the noun pool. Nil or empty omits the segment.
func (h *Haikunator) SetNouns(words []string) {
	h.mu.Lock()
	h.nouns = slices.Clone(words)
	h.mu.Unlock()
}

func (h *Haikunator) SetDelimiter(delimiter string) {
	h.mu.Lock()
	h.delimiter = delimiter
	h.mu.Unlock()
}

// SetTokenLength changes the token length. Negative values are rejected and
// the previous length is kept.
func (h *Haikunator) SetTokenLength(n int) error {
	if n < 0 {
		return ErrInvalidTokenLength
	}
	h.mu.Lock()
	h.tokenLength = n
	h.mu.Unlock()
	return nil
}

func (h *Haikunator) SetTokenHex(hex bool) {
	h.mu.Lock()
	h.tokenHex = hex
	h.mu.Unlock()
}

func (h *Haikunator) SetTokenChars(chars string) {
	h.mu.Lock()
	h.tokenChars = chars
	h.mu.Unlock()
}

var (
	defaultOnce      sync.Once
	defaultGenerator *Haikunator
)

// Haikunate returns a name from a package-level generator built with
// DefaultParams on first use.
func Haikunate() string {
	defaultOnce.Do(func() {
		defaultGenerator = Default()
	})
	return defaultGenerator.Haikunate()
}
