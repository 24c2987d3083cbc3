package mphf

import "fmt"

// Indirection is one entry of the intermediate table G. It either carries
// a seed for the second-level hash or names a value slot directly.
//
// The zero value is Seed(0), which hashes with the default offset.
type Indirection struct {
	direct bool
	value  uint32
}

// Seed returns an indirection resolving keys through Hash(key, seed).
func Seed(seed uint32) Indirection {
	assert(seed <= Mask31, "seed exceeds 31 bits")
	return Indirection{value: seed}
}

// Direct returns an indirection pointing at value slot slot.
func Direct(slot int) Indirection {
	assert(slot >= 0 && slot <= Mask31, "direct slot out of range")
	return Indirection{direct: true, value: uint32(slot)}
}

// FromWire converts the signed 32-bit file representation to an
// Indirection. Negative values denote the direct slot -w-1.
func FromWire(w int32) Indirection {
	if w < 0 {
		return Indirection{direct: true, value: uint32(-(int64(w)) - 1)}
	}
	return Indirection{value: uint32(w)}
}

// Wire returns the signed 32-bit file representation of ind.
func (ind Indirection) Wire() int32 {
	if ind.direct {
		return int32(-int64(ind.value) - 1)
	}
	return int32(ind.value)
}

// IsDirect reports whether ind names a slot instead of a seed.
func (ind Indirection) IsDirect() bool {
	return ind.direct
}

// SeedValue returns the second-level seed. Only meaningful if !IsDirect().
func (ind Indirection) SeedValue() uint32 {
	return ind.value
}

// Slot returns the direct slot. Only meaningful if IsDirect().
func (ind Indirection) Slot() int {
	return int(ind.value)
}

func (ind Indirection) String() string {
	if ind.direct {
		return fmt.Sprintf("slot(%d)", ind.value)
	}
	return fmt.Sprintf("seed(%d)", ind.value)
}
