package genome

import (
	"math/bits"
	"unicode/utf16"
)

// Hash returns the cyrb53 digest of s. The input is consumed as UTF-16 code
// units so digests match the ones produced by browser clients.
func Hash(s string) uint64 {
	return HashSeed(s, 0)
}

// HashSeed is Hash with an explicit 32-bit seed.
func HashSeed(s string, seed uint32) uint64 {
	h1 := uint32(0xdeadbeef) ^ seed
	h2 := uint32(0x41c6ce57) ^ seed

	for _, ch := range utf16.Encode([]rune(s)) {
		h1 = imul(h1^uint32(ch), 2654435761)
		h2 = imul(h2^uint32(ch), 1597334677)
	}

	h1 = imul(h1^(h1>>16), 2246822507)
	h1 ^= imul(h2^(h2>>13), 3266489909)
	h2 = imul(h2^(h2>>16), 2246822507)
	h2 ^= imul(h1^(h1>>13), 3266489909)

	return uint64(h2&0x1fffff)<<32 | uint64(h1)
}

func imul(a, b uint32) uint32 {
	_, lo := bits.Mul32(a, b)
	return lo
}
