package faff

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/npillmayer/faff/mphf"
)

// Magic is the signature every font file starts with.
var Magic = [2]byte{0xfa, 0xff}

const headerSize = 8 // magic, width, height, glyph count

// Size returns the number of bytes Encode produces for f.
func (f *Font) Size() int {
	return headerSize + 4*f.Len() + len(f.values.Bytes())
}

// Encode serializes f into the faFF file layout.
func Encode(f *Font) []byte {
	buf := make([]byte, 0, f.Size())
	buf = append(buf, Magic[:]...)
	buf = append(buf, byte(f.width), byte(f.height))
	buf = binary.BigEndian.AppendUint32(buf, uint32(f.Len()))
	for i := 0; i < f.Len(); i++ {
		buf = binary.BigEndian.AppendUint32(buf, uint32(f.index.Entry(i).Wire()))
	}
	buf = append(buf, f.values.Bytes()...)
	assert(len(buf) == f.Size(), "encoded size mismatch")
	return buf
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (f *Font) MarshalBinary() ([]byte, error) {
	return Encode(f), nil
}

// WriteTo writes the encoded font to w.
func (f *Font) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(Encode(f))
	return int64(n), err
}

// Decode parses a font file. It checks the signature, the header ranges and
// that data holds complete G and V tables; it does not check for the
// replacement character, see Load.
//
// On error no font is returned.
func Decode(data []byte) (*Font, error) {
	if len(data) < headerSize {
		return nil, &FormatError{Offset: len(data), Reason: "truncated header"}
	}
	if data[0] != Magic[0] || data[1] != Magic[1] {
		return nil, &FormatError{Offset: 0, Reason: "file signature not found"}
	}
	width, height := int(data[2]), int(data[3])
	if err := CheckDimensions(width, height); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(data[4:headerSize])
	if n == 0 || n > MaxGlyphs {
		return nil, &RangeError{Field: "glyph count", Value: int(int64(n)), Min: 1, Max: MaxGlyphs}
	}
	bitmapSize := BitmapSize(width, height)
	gSize := int64(n) * 4
	vSize := int64(n) * int64(keySize+bitmapSize)
	if have := int64(len(data) - headerSize); have < gSize+vSize {
		return nil, &FormatError{
			Offset: len(data),
			Reason: fmt.Sprintf("truncated tables: %d glyphs need %d bytes, have %d", n, gSize+vSize, have),
		}
	}
	g := make([]mphf.Indirection, n)
	for i := range g {
		at := headerSize + 4*i
		g[i] = mphf.FromWire(int32(binary.BigEndian.Uint32(data[at : at+4])))
	}
	index, err := mphf.NewIndex(g)
	if err != nil {
		return nil, &FormatError{Offset: headerSize, Reason: err.Error()}
	}
	vStart := headerSize + int(gSize)
	vEnd := vStart + int(vSize)
	if vEnd < len(data) {
		tracer().Infof("ignoring %d trailing bytes after value table", len(data)-vEnd)
	}
	values := make([]byte, vSize)
	copy(values, data[vStart:vEnd])
	tracer().Debugf("decoded font %dx%d with %d glyphs", width, height, n)
	return &Font{
		width:  width,
		height: height,
		index:  index,
		values: glyphStoreFrom(values, bitmapSize),
	}, nil
}

// ReadFont reads a complete font file from r and decodes it.
func ReadFont(r io.Reader) (*Font, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Load decodes a font file and validates that it is usable, i.e. that it
// defines ReplacementChar.
func Load(data []byte) (*Font, error) {
	f, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err = f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}
