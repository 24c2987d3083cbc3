package manifest

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/faff"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func encodeBMP(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, img))
	return buf.Bytes()
}

// testSheets returns a 12x6 PNG sheet (3x2 tiles of 4x3 pixels) and a 4x3
// BMP sheet with a single filled tile.
func testSheets(t *testing.T) fstest.MapFS {
	sheet := image.NewGray(image.Rect(0, 0, 12, 6))
	sheet.SetGray(0, 0, color.Gray{Y: 0xff}) // tile 0, pixel (0,0)
	sheet.SetGray(5, 2, color.Gray{Y: 0x80}) // tile 1, pixel (1,2)
	sheet.SetGray(7, 4, color.Gray{Y: 0x01}) // tile 4, pixel (3,1)
	filled := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for x := 0; x < 4; x++ {
		for y := 0; y < 3; y++ {
			filled.Set(x, y, color.White)
		}
	}
	return fstest.MapFS{
		"sheets/latin.png": {Data: encodePNG(t, sheet)},
		"repl.bmp":         {Data: encodeBMP(t, filled)},
		"broken.png":       {Data: []byte("not an image")},
	}
}

const testManifest = `faFF 4x3
sheets/latin.png
65,66,
x43,67

repl.bmp
65533
`

func TestReaderDimensions(t *testing.T) {
	r := NewReader(strings.NewReader(testManifest), testSheets(t))
	w, h, err := r.Dimensions()
	require.NoError(t, err)
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
}

func TestReaderGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "faff")
	defer teardown()
	//
	r := NewReader(strings.NewReader(testManifest), testSheets(t))
	type glyph struct {
		code   rune
		bitmap []byte
	}
	var glyphs []glyph
	for {
		code, bitmap, err := r.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		glyphs = append(glyphs, glyph{code, bytes.Clone(bitmap)})
	}
	assert.Equal(t, []glyph{
		{'A', []byte{0x01, 0x00, 0x00, 0x00}},
		{'B', []byte{0x00, 0x04, 0x00, 0x00}},
		{'C', []byte{0x00, 0x00, 0x00, 0x02}},
		{0xfffd, []byte{0x07, 0x07, 0x07, 0x07}},
	}, glyphs)
}

func TestLoadFont(t *testing.T) {
	f, stats, err := LoadFont(strings.NewReader(testManifest), testSheets(t))
	require.NoError(t, err)
	assert.Equal(t, 4, f.Len())
	assert.Equal(t, 4, stats.Keys)
	assert.NoError(t, f.Validate())
	bm, err := f.Lookup('C')
	require.NoError(t, err)
	assert.True(t, bm.Pixel(3, 1))
	assert.False(t, bm.Pixel(0, 0))
	_, err = f.Lookup('D')
	assert.ErrorIs(t, err, faff.ErrNotFound)
}

func TestReaderErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{"empty", ""},
		{"bad signature", "faFX 4x3\n"},
		{"bad size", "faFF 4by3\n"},
		{"non-numeric size", "faFF ax3\n"},
		{"zero width", "faFF 0x3\n"},
		{"height too large", "faFF 4x256\n"},
		{"missing image", "faFF 4x3\nnothere.png\n65\n"},
		{"undecodable image", "faFF 4x3\nbroken.png\n65\n"},
		{"sheet size mismatch", "faFF 5x3\nsheets/latin.png\n65\n"},
		{"more codes than tiles", "faFF 4x3\nrepl.bmp\n65,66\n"},
		{"code point too large", "faFF 4x3\nrepl.bmp\n1114112\n"},
		{"absolute path", "faFF 4x3\n/etc/passwd\n65\n"},
	}
	for _, tt := range tests {
		r := NewReader(strings.NewReader(tt.manifest), testSheets(t))
		var err error
		for err == nil {
			_, _, err = r.Next()
		}
		assert.False(t, errors.Is(err, io.EOF), "%s: expected an error, reached end of manifest", tt.name)
		assert.ErrorIs(t, err, ErrManifest, tt.name)
	}
}

func TestLoadFontRejectsBadHeader(t *testing.T) {
	f, _, err := LoadFont(strings.NewReader("faFF 0x0\n"), fstest.MapFS{})
	assert.Nil(t, f)
	assert.ErrorIs(t, err, faff.ErrRange)
}
