package cipher

// Caesar shifts every in-range symbol by a fixed offset, wrapping inside
// the range.
type Caesar struct {
	rng Range
	key int
}

// NewCaesar returns a Caesar cipher over rng. Any integer key is accepted
// and reduced modulo the range size, so key and key+n*size describe the
// same cipher.
func NewCaesar(rng Range, key int) *Caesar {
	return &Caesar{
		rng: rng,
		key: rng.normalize(int64(key)),
	}
}

// Encrypt shifts every in-range symbol of plaintext forward by the key.
// Out-of-range symbols are copied unchanged.
func (c *Caesar) Encrypt(plaintext string) string {
	return c.rng.shift(plaintext, c.key)
}

// Decrypt reverses Encrypt by shifting with the negated key.
func (c *Caesar) Decrypt(ciphertext string) string {
	return c.rng.shift(ciphertext, -c.key)
}
