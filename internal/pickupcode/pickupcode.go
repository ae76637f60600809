package pickupcode

import "math/rand/v2"

// Alphabet leaves out I, L, O, 0 and 1 so codes read unambiguously at the counter.
const Alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const Length = 6

// Generate draws Length characters uniformly from Alphabet. Codes are for
// humans, not secrets, so math/rand is enough.
func Generate() string {
	b := make([]byte, Length)
	for i := range b {
		b[i] = Alphabet[rand.IntN(len(Alphabet))]
	}
	return string(b)
}
