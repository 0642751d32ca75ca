package wordlist

import "errors"

var (
	ErrFailedToReadFile  = errors.New("failed to read word list file")
	ErrFailedToParseYAML = errors.New("failed to parse word list YAML")
	ErrEmptyDocument     = errors.New("word list defines neither adjectives nor nouns")
)
