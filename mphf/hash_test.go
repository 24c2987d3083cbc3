package mphf

import "testing"

func TestHashKnownValues(t *testing.T) {
	tests := []struct {
		data []byte
		seed uint32
		want uint32
	}{
		{data: []byte{0x00, 0x00, 0x41}, seed: 0, want: 0x4ab0f7f6},
		{data: []byte{0x00, 0x00, 0x41}, seed: Offset, want: 0x4ab0f7f6},
		{data: []byte{0x00, 0xff, 0xfd}, seed: 0, want: 0x2fb0034b},
		{data: []byte{0x00, 0x00, 0x41}, seed: 1, want: 0x3ee6b30a},
		{data: []byte("a"), seed: 0, want: 84696446},
		{data: []byte("a"), seed: 7, want: 117443428},
		{data: []byte("abc"), seed: 0, want: 1134309195},
	}
	for _, tt := range tests {
		if got := Hash(tt.data, tt.seed); got != tt.want {
			t.Errorf("Hash(%x, %d) = %#x, want %#x", tt.data, tt.seed, got, tt.want)
		}
	}
}

func TestHashEmptyDataStaysIn31Bits(t *testing.T) {
	if h := Hash(nil, 0); h != Offset&Mask31 {
		t.Fatalf("Hash(nil, 0) = %#x, want %#x", h, Offset&Mask31)
	}
	if h := Hash([]byte{}, 0xffffffff); h > Mask31 {
		t.Fatalf("hash %#x exceeds 31 bits", h)
	}
}

func TestHashZeroSeedIsOffset(t *testing.T) {
	for code := rune(0); code < 0x400; code++ {
		key, _ := KeyFor(code)
		if Hash(key[:], 0) != Hash(key[:], Offset) {
			t.Fatalf("seed 0 and default offset differ for U+%04X", code)
		}
		if Hash(key[:], 13) != Hash(key[:], 13) {
			t.Fatalf("hash not deterministic for U+%04X", code)
		}
	}
}

func TestHashKeyMatchesHash(t *testing.T) {
	for _, code := range []rune{0, 'A', 0xe4, 0xfffd, 0x1f600, MaxCode} {
		key, ok := KeyFor(code)
		if !ok {
			t.Fatalf("KeyFor(U+%04X) rejected a valid code point", code)
		}
		for _, seed := range []uint32{0, 1, 2, 0x1234, Mask31} {
			if got, want := HashKey(key, seed), Hash(key[:], seed); got != want {
				t.Errorf("HashKey(U+%04X, %d) = %#x, want %#x", code, seed, got, want)
			}
			if h := HashKey(key, seed); h > Mask31 {
				t.Errorf("hash %#x exceeds 31 bits", h)
			}
		}
	}
}

func TestKeyFor(t *testing.T) {
	key, ok := KeyFor(0xfffd)
	if !ok || key != (Key{0x00, 0xff, 0xfd}) {
		t.Fatalf("KeyFor(U+FFFD) = %x, %v", key, ok)
	}
	if key.Code() != 0xfffd {
		t.Fatalf("Code() = %#x, want 0xfffd", key.Code())
	}
	if _, ok := KeyFor(MaxCode + 1); ok {
		t.Fatalf("expected code point beyond U+10FFFF to be rejected")
	}
	if _, ok := KeyFor(-1); ok {
		t.Fatalf("expected negative code point to be rejected")
	}
}
