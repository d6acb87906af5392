package setup

import (
	"errors"
	"fmt"
)

// base36Alphabet lists the digit symbols in value order: '0'-'9' for 0-9,
// 'A'-'Z' for 10-35. Most-significant digit first (big-endian positional).
const base36Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrInvalidDigit reports a byte outside the base-36 alphabet.
var ErrInvalidDigit = errors.New("invalid base-36 digit")

// digitValue maps a single alphabet byte to its numeric value.
// Lowercase letters and any other byte are rejected rather than mapped
// arithmetically, so a corrupted segment fails instead of decoding garbage.
func digitValue(c byte) (uint64, error) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), nil
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDigit, c)
}

// decodeBase36 decodes a big-endian base-36 string into an unsigned integer.
// Callers bound the input length; 9 digits is well within uint64 range.
func decodeBase36(s string) (uint64, error) {
	var result uint64
	for i := 0; i < len(s); i++ {
		v, err := digitValue(s[i])
		if err != nil {
			return 0, fmt.Errorf("position %d: %w", i, err)
		}
		result = result*36 + v
	}
	return result, nil
}

// encodeBase36 encodes v as a base-36 string zero-padded to width characters.
func encodeBase36(v uint64, width int) string {
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = base36Alphabet[v%36]
		v /= 36
	}
	return string(buf)
}
