package scans

import "errors"

var (
	ErrInvalidEncoding = errors.New("invalid utf-8 encoding")
	ErrEmptyLocation   = errors.New("empty location")
)
