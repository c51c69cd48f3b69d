// Package cipher contains Caesar and Vigenère encryption and decryption
// over a contiguous byte range.
package cipher

// Range is an inclusive, contiguous set of byte values subject to
// substitution. High must be greater than Low. Bytes outside the range
// pass through every transform unchanged.
type Range struct {
	Low  byte
	High byte
}

// Upper is the uppercase Latin alphabet, the range used by the CLI and
// HTTP front ends.
var Upper = Range{Low: 'A', High: 'Z'}

// Size returns the number of symbols in the range.
func (r Range) Size() int {
	return int(r.High) - int(r.Low) + 1
}

// Contains reports whether b falls inside the range.
func (r Range) Contains(b byte) bool {
	return b >= r.Low && b <= r.High
}

// normalize reduces key modulo the range size to an offset in [0, Size).
// The arithmetic stays in 64 bits so any accepted key is safe to reduce
// before narrowing.
func (r Range) normalize(key int64) int {
	size := int64(r.Size())
	return int(((key % size) + size) % size)
}

// shiftByte moves an in-range byte forward by offset positions, wrapping
// inside the range. offset must already be normalized to [0, Size).
func (r Range) shiftByte(b byte, offset int) byte {
	return r.Low + byte((int(b-r.Low)+offset)%r.Size())
}

// shift applies shiftByte with the normalized key to every in-range byte
// of text. Out-of-range bytes are copied unchanged.
func (r Range) shift(text string, key int) string {
	offset := r.normalize(int64(key))

	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if r.Contains(c) {
			c = r.shiftByte(c, offset)
		}
		out[i] = c
	}

	return string(out)
}
