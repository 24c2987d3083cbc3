package faff

import (
	"errors"
	"testing"
)

func TestBitmapColumnLayout(t *testing.T) {
	// 2 columns of 10 rows: column words are 2 bytes, low byte first
	bm, err := NewBitmap(2, 10, []byte{0x01, 0x02, 0x80, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	set := map[[2]int]bool{{0, 0}: true, {0, 9}: true, {1, 7}: true}
	for x := 0; x < 2; x++ {
		for y := 0; y < 10; y++ {
			if bm.Pixel(x, y) != set[[2]int{x, y}] {
				t.Errorf("pixel (%d,%d) = %v", x, y, bm.Pixel(x, y))
			}
		}
	}
	if bm.Pixel(-1, 0) || bm.Pixel(0, 10) || bm.Pixel(2, 0) {
		t.Errorf("pixels outside the glyph must be unset")
	}
}

func TestBitmapIsCopied(t *testing.T) {
	data := []byte{0x01}
	bm, err := NewBitmap(1, 1, data)
	if err != nil {
		t.Fatal(err)
	}
	data[0] = 0
	if !bm.Pixel(0, 0) {
		t.Fatalf("bitmap shares memory with its source")
	}
	bm.Bytes()[0] = 0
	if !bm.Pixel(0, 0) {
		t.Fatalf("Bytes exposes internal memory")
	}
}

func TestBitmapString(t *testing.T) {
	bm, err := NewBitmap(3, 2, []byte{0x01, 0x02, 0x03})
	if err != nil {
		t.Fatal(err)
	}
	if s := bm.String(); s != "#.#\n.##\n" {
		t.Fatalf("unexpected drawing:\n%s", s)
	}
}

func TestBitmapSizes(t *testing.T) {
	tests := []struct{ w, h, col, size int }{
		{1, 1, 1, 1}, {8, 8, 1, 8}, {2, 9, 2, 4}, {5, 16, 2, 10}, {255, 255, 32, 8160},
	}
	for _, tt := range tests {
		if ColumnSize(tt.h) != tt.col || BitmapSize(tt.w, tt.h) != tt.size {
			t.Errorf("%dx%d: column=%d size=%d", tt.w, tt.h, ColumnSize(tt.h), BitmapSize(tt.w, tt.h))
		}
	}
	if _, err := NewBitmap(1, 3, []byte{0x08}); !errors.Is(err, ErrRange) {
		t.Errorf("expected padding bits to be rejected, got %v", err)
	}
	if _, err := NewBitmap(0, 3, nil); !errors.Is(err, ErrRange) {
		t.Errorf("expected zero width to be rejected, got %v", err)
	}
}
