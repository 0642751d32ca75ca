// Package haikunator generates short, memorable, pseudo-random names in the
// style of Heroku app names, e.g. "misty-river-4821".
//
// A name is made of up to three segments: an adjective, a noun and a random
// token. Segments that come out empty are dropped, so a generator without
// adjectives, nouns or token characters degrades gracefully instead of failing.
//
// This is not a security token generator. Names are not guaranteed to be
// unique and the default source is math/rand/v2.
//
// # Usage
//
// With the defaults (built-in word lists, "-" delimiter, 4 digit token):
//
//	name := haikunator.Haikunate()
//	// "snowy-meadow-0382"
//
// With a dedicated generator:
//
//	h := haikunator.Default()
//	h.SetDelimiter("_")
//	name := h.Haikunate()
//	// "quiet_pond_7719"
//
// Custom parameters:
//
//	h, err := haikunator.New(haikunator.Params{
//		Adjectives:  []string{"flying", "bubbly"},
//		Nouns:       []string{"bat", "soda"},
//		Delimiter:   "-",
//		TokenLength: 8,
//		TokenChars:  "0123456789忠犬ハチ公",
//	})
//	if err != nil {
//		// only a negative TokenLength fails
//	}
//	name := h.Haikunate()
//	// "flying-soda-3ハ91公0犬8"
//
// When TokenHex is true, TokenChars is ignored and the token is drawn from
// lowercase hex digits.
//
// # Token alphabet
//
// TokenChars is indexed by codepoint, never by byte, so multi-byte alphabets
// produce exactly TokenLength characters. Duplicate characters are kept and
// make that character proportionally more likely.
//
// # Reproducible output
//
// Any Source can be plugged in. NewSeededSource gives a deterministic
// sequence:
//
//	h, _ := haikunator.New(haikunator.Params{
//		Adjectives:  []string{"swift", "silent"},
//		Nouns:       []string{"fox", "dog"},
//		Delimiter:   "_",
//		TokenLength: 4,
//		TokenChars:  "0123456789",
//		Source:      haikunator.NewSeededSource(42),
//	})
//
// # Environment
//
// Config carries env tags for use with pkg/config:
//
//	var cfg haikunator.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	h, err := haikunator.New(cfg.Params())
//
// # Concurrency
//
// A Haikunator may be shared between goroutines. Draws and configuration
// changes are serialized by an internal mutex.
package haikunator
