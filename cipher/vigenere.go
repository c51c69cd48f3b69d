package cipher

// Vigenere shifts each in-range symbol by the offset of the current
// keyword symbol, cycling through the keyword. Out-of-range symbols are
// copied unchanged and do not advance the keyword.
type Vigenere struct {
	rng     Range
	keyword []byte
}

// NewVigenere returns a Vigenère cipher over rng. The keyword must be
// non-empty and lie entirely inside rng; callers enforce this with
// ValidateKeyword before construction.
func NewVigenere(rng Range, keyword string) *Vigenere {
	return &Vigenere{
		rng:     rng,
		keyword: []byte(keyword),
	}
}

// Encrypt shifts every in-range symbol of plaintext forward by the
// current keyword offset.
func (v *Vigenere) Encrypt(plaintext string) string {
	return v.transform(plaintext, 1)
}

// Decrypt reverses Encrypt by applying the negated keyword offsets.
func (v *Vigenere) Decrypt(ciphertext string) string {
	return v.transform(ciphertext, -1)
}

func (v *Vigenere) transform(text string, sign int) string {
	if len(v.keyword) == 0 {
		return text
	}

	out := make([]byte, len(text))
	idx := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		if v.rng.Contains(c) {
			offset := sign * int(v.keyword[idx]-v.rng.Low)
			c = v.rng.shiftByte(c, v.rng.normalize(int64(offset)))
			idx = (idx + 1) % len(v.keyword)
		}
		out[i] = c
	}

	return string(out)
}
