package faff

import (
	"reflect"
	"testing"

	"github.com/npillmayer/faff/mphf"
)

func TestGlyphStorePut(t *testing.T) {
	s := newGlyphStore(3, 2)
	key, _ := mphf.KeyFor(0x20ac)
	if err := s.Put(1, key, []byte{0x5a, 0xa5}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if s.Key(1) != key {
		t.Fatalf("key mismatch: got %x, want %x", s.Key(1), key)
	}
	if !reflect.DeepEqual(s.Bitmap(1), []byte{0x5a, 0xa5}) {
		t.Fatalf("bitmap mismatch: got %x", s.Bitmap(1))
	}
	want := []byte{0, 0, 0, 0, 0, 0x00, 0x20, 0xac, 0x5a, 0xa5, 0, 0, 0, 0, 0}
	if !reflect.DeepEqual(s.Bytes(), want) {
		t.Fatalf("layout mismatch: got %x, want %x", s.Bytes(), want)
	}
}

func TestGlyphStoreRejectsOverwrite(t *testing.T) {
	s := newGlyphStore(2, 1)
	key, _ := mphf.KeyFor('a')
	if err := s.Put(0, key, []byte{1}); err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	if err := s.Put(0, key, []byte{2}); err == nil {
		t.Fatalf("expected second Put on slot 0 to fail")
	}
	if err := s.Put(2, key, []byte{2}); err == nil {
		t.Fatalf("expected Put beyond the last slot to fail")
	}
	if err := s.Put(1, key, []byte{2, 3}); err == nil {
		t.Fatalf("expected oversized bitmap to be rejected")
	}
	if s.Freeze() {
		t.Fatalf("store with an empty slot must not freeze as complete")
	}
}

func TestGlyphStoreFreezeComplete(t *testing.T) {
	s := newGlyphStore(2, 1)
	a, _ := mphf.KeyFor('a')
	b, _ := mphf.KeyFor('b')
	_ = s.Put(1, a, []byte{1})
	_ = s.Put(0, b, []byte{2})
	if !s.Freeze() {
		t.Fatalf("expected complete store")
	}
	if err := s.Put(0, a, []byte{3}); err == nil {
		t.Fatalf("expected frozen store to reject writes")
	}
}
