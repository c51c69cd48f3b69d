package cipher

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidKey reports a key that failed validation for the chosen
// cipher.
var ErrInvalidKey = errors.New("invalid key")

// ParseShiftKey parses s as a signed decimal integer and reduces it
// modulo the size of rng. Whitespace, trailing characters and values
// outside the signed 64-bit range are all rejected.
func ParseShiftKey(rng Range, s string) (int, error) {
	key, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q is out of integer range", ErrInvalidKey, s)
		}
		return 0, fmt.Errorf("%w: %q is not a valid integer", ErrInvalidKey, s)
	}
	return rng.normalize(key), nil
}

// ValidateKeyword checks that keyword is non-empty and made up entirely
// of symbols inside rng. No case folding is applied.
func ValidateKeyword(rng Range, keyword string) error {
	if len(keyword) == 0 {
		return fmt.Errorf("%w: keyword cannot be empty", ErrInvalidKey)
	}
	for i := 0; i < len(keyword); i++ {
		if !rng.Contains(keyword[i]) {
			return fmt.Errorf("%w: keyword characters must be in the range %q->%q", ErrInvalidKey, rng.Low, rng.High)
		}
	}
	return nil
}
