package faff

import (
	"bytes"
	"fmt"
	"strings"
)

// Glyph dimensions are limited to one byte each.
const (
	MinDimension = 1
	MaxDimension = 255
)

// ColumnSize returns the number of bytes of one column word for glyphs of
// the given height.
func ColumnSize(height int) int {
	return (height-1)/8 + 1
}

// BitmapSize returns the number of bytes of a glyph bitmap.
func BitmapSize(width, height int) int {
	return width * ColumnSize(height)
}

// Bitmap is a read-only view of a glyph's pixels.
//
// Pixels are stored column by column. Each column is a little-endian word
// of ColumnSize(height) bytes, bit y of which is the pixel in row y.
type Bitmap struct {
	width, height int
	data          []byte
}

// NewBitmap creates a bitmap from column words. data must have
// BitmapSize(width, height) bytes and all bits beyond height must be zero.
// data is copied.
func NewBitmap(width, height int, data []byte) (Bitmap, error) {
	if err := CheckDimensions(width, height); err != nil {
		return Bitmap{}, err
	}
	if err := checkBitmap(width, height, data); err != nil {
		return Bitmap{}, err
	}
	b := Bitmap{width: width, height: height, data: make([]byte, len(data))}
	copy(b.data, data)
	return b, nil
}

// viewBitmap wraps data without copying. Only for data owned by a Font.
func viewBitmap(width, height int, data []byte) Bitmap {
	return Bitmap{width: width, height: height, data: data}
}

// Width returns the glyph width in pixels.
func (b Bitmap) Width() int { return b.width }

// Height returns the glyph height in pixels.
func (b Bitmap) Height() int { return b.height }

// Pixel reports whether the pixel at column x, row y is set. Coordinates
// outside the glyph are unset.
func (b Bitmap) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return false
	}
	word := ColumnSize(b.height)
	return b.data[x*word+y>>3]&(1<<(y&7)) != 0
}

// Bytes returns a copy of the column words.
func (b Bitmap) Bytes() []byte {
	return bytes.Clone(b.data)
}

// Equal reports whether b and other have the same size and pixels.
func (b Bitmap) Equal(other Bitmap) bool {
	return b.width == other.width && b.height == other.height && bytes.Equal(b.data, other.data)
}

// String draws the glyph with '#' for set and '.' for unset pixels, one
// line per row.
func (b Bitmap) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CheckDimensions returns a *RangeError unless width and height are within
// [MinDimension, MaxDimension].
func CheckDimensions(width, height int) error {
	if width < MinDimension || width > MaxDimension {
		return &RangeError{Field: "glyph width", Value: width, Min: MinDimension, Max: MaxDimension}
	}
	if height < MinDimension || height > MaxDimension {
		return &RangeError{Field: "glyph height", Value: height, Min: MinDimension, Max: MaxDimension}
	}
	return nil
}

func checkBitmap(width, height int, data []byte) error {
	size := BitmapSize(width, height)
	if len(data) != size {
		return &RangeError{Field: "bitmap size", Value: len(data), Min: size, Max: size}
	}
	if height%8 == 0 {
		return nil
	}
	word := ColumnSize(height)
	unused := byte(0xff << (height % 8))
	for x := 0; x < width; x++ {
		if data[x*word+word-1]&unused != 0 {
			return fmt.Errorf("%w: column %d has pixels below row %d", ErrRange, x, height-1)
		}
	}
	return nil
}
