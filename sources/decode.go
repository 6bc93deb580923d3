package sources

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts input bytes to text. A byte order mark selects UTF-8 or UTF-16 and is dropped.
// Without one the bytes are kept as is, so malformed input is left for the tokenizer to report.
func Decode(raw []byte) (string, error) {
	decoded, _, err := transform.Bytes(
		unicode.BOMOverride(transform.Nop),
		raw,
	)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return string(decoded), nil
}
