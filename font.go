package faff

import (
	"fmt"
	"io"
	"iter"

	"github.com/npillmayer/faff/mphf"
)

// ReplacementChar stands in for code points a font does not cover. Every
// usable font defines it.
const ReplacementChar rune = 0xfffd

// MaxGlyphs is the largest number of glyphs a font may hold.
const MaxGlyphs = mphf.Mask31

// Key is a code point as stored in a font file.
type Key = mphf.Key

// BuildStats reports how the perfect hash tables of a font were found.
type BuildStats = mphf.Stats

// Glyph is a format-agnostic glyph definition as consumed by Build.
//
// Bitmap holds BitmapSize(width, height) bytes of column words, see Bitmap.
type Glyph struct {
	Code   rune
	Bitmap []byte
}

// GlyphReader yields glyph definitions one-by-one.
// It should return io.EOF when the stream is exhausted.
type GlyphReader interface {
	Next() (code rune, bitmap []byte, err error)
}

// Font is a loaded faFF bitmap font.
//
// A font is immutable once created by Build, LoadGlyphs or Decode; any
// number of goroutines may look up glyphs concurrently.
type Font struct {
	width  int
	height int
	index  *mphf.Index // intermediate table G
	values *glyphStore // value table V
}

// LoadGlyphs compiles a font from a streaming, format-agnostic source.
//
// File format parsing is intentionally outside the base package. Use
// adapters like package manifest to parse concrete formats and feed this API.
// A code point delivered more than once keeps its first position and the
// last bitmap.
func LoadGlyphs(width, height int, reader GlyphReader, opts ...mphf.Option) (*Font, BuildStats, error) {
	glyphs := make([]Glyph, 0, 256)
	position := make(map[rune]int)
	for {
		code, bitmap, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, BuildStats{}, err
		}
		bm := make([]byte, len(bitmap))
		copy(bm, bitmap) // readers may reuse their buffers
		if i, seen := position[code]; seen {
			tracer().Debugf("U+%04X defined more than once, last definition wins", code)
			glyphs[i].Bitmap = bm
			continue
		}
		position[code] = len(glyphs)
		glyphs = append(glyphs, Glyph{Code: code, Bitmap: bm})
	}
	return Build(width, height, glyphs, opts...)
}

// Build creates a font from glyph definitions with unique code points.
// Equal inputs in equal order always produce identical fonts.
//
// Build does not insist on the presence of ReplacementChar; call Validate
// before handing the font out for general use.
func Build(width, height int, glyphs []Glyph, opts ...mphf.Option) (*Font, BuildStats, error) {
	if err := CheckDimensions(width, height); err != nil {
		return nil, BuildStats{}, err
	}
	if len(glyphs) == 0 || len(glyphs) > MaxGlyphs {
		return nil, BuildStats{}, &RangeError{Field: "glyph count", Value: len(glyphs), Min: 1, Max: MaxGlyphs}
	}
	keys := make([]Key, len(glyphs))
	for i, g := range glyphs {
		key, ok := mphf.KeyFor(g.Code)
		if !ok {
			return nil, BuildStats{}, &RangeError{Field: "code point", Value: int(g.Code), Min: 0, Max: mphf.MaxCode}
		}
		if err := checkBitmap(width, height, g.Bitmap); err != nil {
			return nil, BuildStats{}, fmt.Errorf("glyph U+%04X: %w", g.Code, err)
		}
		keys[i] = key
	}
	index, slots, stats, err := mphf.Build(keys, opts...)
	if err != nil {
		return nil, stats, err
	}
	values := newGlyphStore(len(glyphs), BitmapSize(width, height))
	for i, g := range glyphs {
		if err = values.Put(slots[i], keys[i], g.Bitmap); err != nil {
			return nil, stats, &ConstructionError{Reason: err.Error()}
		}
	}
	if !values.Freeze() {
		return nil, stats, &ConstructionError{Reason: "count mismatch"}
	}
	tracer().Infof("font %dx%d with %d glyphs: buckets=%d seeded=%d direct=%d collisions=%d",
		width, height, stats.Keys, stats.Buckets, stats.MultiKeyBuckets, stats.DirectPlacements, stats.Collisions)
	return &Font{width: width, height: height, index: index, values: values}, stats, nil
}

// Width returns the glyph width in pixels.
func (f *Font) Width() int { return f.width }

// Height returns the glyph height in pixels.
func (f *Font) Height() int { return f.height }

// Len returns the number of glyphs n.
func (f *Font) Len() int { return f.index.Len() }

// Lookup returns the bitmap stored for key, or ErrNotFound.
//
// Lookup evaluates at most two hashes. A key outside the font's key set
// may resolve to a slot of another key; the stored key is compared so that
// such a miss is never mistaken for a hit.
func Lookup(f *Font, key Key) (Bitmap, error) {
	if f == nil || f.index == nil {
		return Bitmap{}, ErrNotFound
	}
	slot := f.index.Resolve(key)
	if f.values.Key(slot) != key {
		return Bitmap{}, ErrNotFound
	}
	return viewBitmap(f.width, f.height, f.values.Bitmap(slot)), nil
}

// Lookup returns the bitmap for code, or ErrNotFound.
func (f *Font) Lookup(code rune) (Bitmap, error) {
	key, ok := mphf.KeyFor(code)
	if !ok {
		return Bitmap{}, ErrNotFound
	}
	return Lookup(f, key)
}

// Contains reports whether the font defines code.
func (f *Font) Contains(code rune) bool {
	_, err := f.Lookup(code)
	return err == nil
}

// Glyph returns the bitmap for code, falling back to the replacement
// character. If neither is defined, an empty bitmap is returned.
func (f *Font) Glyph(code rune) Bitmap {
	if bm, err := f.Lookup(code); err == nil {
		return bm
	}
	if bm, err := f.Lookup(ReplacementChar); err == nil {
		return bm
	}
	return viewBitmap(f.width, f.height, make([]byte, BitmapSize(f.width, f.height)))
}

// Validate checks that the font defines ReplacementChar.
func (f *Font) Validate() error {
	if !f.Contains(ReplacementChar) {
		return &IncompleteFontError{Missing: ReplacementChar}
	}
	return nil
}

// Indirection returns entry i of the intermediate table G.
func (f *Font) Indirection(i int) mphf.Indirection {
	return f.index.Entry(i)
}

// Slots iterates over the value table in slot order, yielding each slot
// with the code point stored there.
func (f *Font) Slots() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for slot := 0; slot < f.values.Len(); slot++ {
			if !yield(slot, f.values.Key(slot).Code()) {
				return
			}
		}
	}
}
