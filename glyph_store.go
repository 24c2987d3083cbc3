package faff

import (
	"fmt"

	"github.com/npillmayer/faff/mphf"
)

const keySize = 3 // bytes of a code point key

// glyphStore is the value table V: a flat array of fixed-size entries, each
// a 3-byte key followed by a bitmap, directly indexed by slot. Its memory
// layout is identical to the file layout of V.
type glyphStore struct {
	entrySize int
	data      []byte
	filled    []bool // construction only
	count     int
}

func newGlyphStore(slots int, bitmapSize int) *glyphStore {
	entrySize := keySize + bitmapSize
	return &glyphStore{
		entrySize: entrySize,
		data:      make([]byte, slots*entrySize),
		filled:    make([]bool, slots),
	}
}

// glyphStoreFrom wraps a complete value table as read from a file.
func glyphStoreFrom(data []byte, bitmapSize int) *glyphStore {
	entrySize := keySize + bitmapSize
	assert(len(data)%entrySize == 0, "value table not a multiple of entry size")
	return &glyphStore{
		entrySize: entrySize,
		data:      data,
		count:     len(data) / entrySize,
	}
}

// Len returns the number of slots.
func (s *glyphStore) Len() int { return len(s.data) / s.entrySize }

// Put stores key and bitmap at slot. Each slot may be written once.
func (s *glyphStore) Put(slot int, key mphf.Key, bitmap []byte) error {
	if slot < 0 || slot >= s.Len() {
		return fmt.Errorf("slot %d out of range 0..%d", slot, s.Len()-1)
	}
	if len(bitmap) != s.entrySize-keySize {
		return fmt.Errorf("bitmap has %d bytes, slot holds %d", len(bitmap), s.entrySize-keySize)
	}
	if s.filled == nil || s.filled[slot] {
		return fmt.Errorf("slot %d already occupied", slot)
	}
	base := slot * s.entrySize
	copy(s.data[base:base+keySize], key[:])
	copy(s.data[base+keySize:base+s.entrySize], bitmap)
	s.filled[slot] = true
	s.count++
	return nil
}

// Freeze drops construction state. It reports whether every slot is filled.
func (s *glyphStore) Freeze() bool {
	s.filled = nil
	return s.count == s.Len()
}

// Key returns the key stored at slot.
func (s *glyphStore) Key(slot int) mphf.Key {
	base := slot * s.entrySize
	return mphf.Key(s.data[base : base+keySize])
}

// Bitmap returns the bitmap bytes stored at slot, without copying.
func (s *glyphStore) Bitmap(slot int) []byte {
	base := slot * s.entrySize
	return s.data[base+keySize : base+s.entrySize : base+s.entrySize]
}

// Bytes returns the raw value table.
func (s *glyphStore) Bytes() []byte { return s.data }
