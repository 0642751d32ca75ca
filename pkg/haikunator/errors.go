package haikunator

import "errors"

var (
	// ErrInvalidTokenLength is returned when a negative token length is configured.
	ErrInvalidTokenLength = errors.New("token length must not be negative")
)
