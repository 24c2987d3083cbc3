package mphf

// Parameters of the 31-bit Fowler-Noll-Vo (FNV-1) variant used for both
// hashing levels.
// See https://en.wikipedia.org/wiki/Fowler%E2%80%93Noll%E2%80%93Vo_hash_function
const (
	Prime  = 0x01000193 // FNV-1 32 bit prime
	Offset = 0x811c9dc5 // FNV-1 32 bit offset, the default seed
	Mask31 = 0x7fffffff // keeps hashes and seeds within int32 range
)

// Hash computes the masked FNV-1 hash of data, starting from seed.
// A seed of 0 selects Offset. The result is in [0, Mask31], also for
// empty data.
func Hash(data []byte, seed uint32) uint32 {
	if seed == 0 {
		seed = Offset
	}
	for _, b := range data {
		seed = ((seed * Prime) & Mask31) ^ uint32(b)
	}
	return seed & Mask31
}

// HashKey is Hash for a 3-byte key, unrolled.
func HashKey(key Key, seed uint32) uint32 {
	if seed == 0 {
		seed = Offset
	}
	seed = ((seed * Prime) & Mask31) ^ uint32(key[0])
	seed = ((seed * Prime) & Mask31) ^ uint32(key[1])
	seed = ((seed * Prime) & Mask31) ^ uint32(key[2])
	return seed
}

// Key is a Unicode code point as a 3-byte big-endian integer.
type Key [3]byte

// MaxCode is the largest code point a Key may hold.
const MaxCode = 0x10ffff

// KeyFor encodes code as a Key. It reports false if code is outside
// [0, MaxCode].
func KeyFor(code rune) (Key, bool) {
	if code < 0 || code > MaxCode {
		return Key{}, false
	}
	return Key{byte(code >> 16), byte(code >> 8), byte(code)}, true
}

// Code returns the code point held by k.
func (k Key) Code() rune {
	return rune(k[0])<<16 | rune(k[1])<<8 | rune(k[2])
}
