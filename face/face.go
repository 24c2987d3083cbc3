/*
Package face renders faFF bitmap fonts through golang.org/x/image/font.

Face implements font.Face with fixed advances and no kerning, so faFF fonts
may be used wherever a font.Drawer is. Render is a convenience for drawing
a multi-line string onto a fresh grey image.
*/
package face

import (
	"image"
	"image/color"

	"github.com/npillmayer/faff"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Option configures a Face or a rendering.
type Option func(*config)

type config struct {
	charDistance int // pixels between adjacent glyphs
	lineDistance int // pixels between adjacent lines
	tabWidth     int // spaces per tab
	margin       int // pixels around rendered text
	fg, bg       color.Gray
}

func defaults() config {
	return config{
		tabWidth: 4,
		fg:       color.Gray{Y: 0xff},
		bg:       color.Gray{Y: 0x00},
	}
}

func configure(opts []Option) config {
	conf := defaults()
	for _, opt := range opts {
		opt(&conf)
	}
	return conf
}

// WithCharDistance sets the horizontal gap between glyphs.
func WithCharDistance(pixels int) Option {
	return func(c *config) { c.charDistance = max(0, pixels) }
}

// WithLineDistance sets the vertical gap between lines.
func WithLineDistance(pixels int) Option {
	return func(c *config) { c.lineDistance = max(0, pixels) }
}

// WithTabWidth sets the number of spaces a tab expands to.
func WithTabWidth(spaces int) Option {
	return func(c *config) { c.tabWidth = max(0, spaces) }
}

// WithMargin sets the blank border around rendered text.
func WithMargin(pixels int) Option {
	return func(c *config) { c.margin = max(0, pixels) }
}

// WithColors sets foreground and background grey levels.
func WithColors(fg, bg color.Gray) Option {
	return func(c *config) { c.fg, c.bg = fg, bg }
}

// WithBlackOnWhite renders black glyphs on white background. The default is
// white on black.
func WithBlackOnWhite() Option {
	return WithColors(color.Gray{Y: 0x00}, color.Gray{Y: 0xff})
}

// Face is a font.Face for a faFF font.
//
// Glyphs the font lacks are drawn with the replacement character U+FFFD.
// Returned masks are freshly allocated, so a Face may be shared between
// goroutines.
type Face struct {
	font *faff.Font
	conf config
}

var _ font.Face = (*Face)(nil)

// New creates a face for f.
func New(f *faff.Font, opts ...Option) *Face {
	return &Face{font: f, conf: configure(opts)}
}

// Close implements font.Face. It is a no-op.
func (fc *Face) Close() error { return nil }

// Glyph implements font.Face. The glyph's bottom row sits on dot's
// baseline. A glyph missing from a font without U+FFFD still reports the
// fixed advance, so font.Drawer leaves its cell blank.
func (fc *Face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	//
	bm, ok := fc.bitmap(r)
	if !ok {
		return image.Rectangle{}, nil, image.Point{}, fc.advance(), false
	}
	w, h := fc.font.Width(), fc.font.Height()
	x0, y0 := dot.X.Round(), dot.Y.Round()-h
	dr = image.Rect(x0, y0, x0+w, y0+h)
	return dr, Mask(bm), image.Point{}, fc.advance(), true
}

// GlyphBounds implements font.Face.
func (fc *Face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	if _, ok = fc.bitmap(r); !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	bounds = fixed.R(0, -fc.font.Height(), fc.font.Width(), 0)
	return bounds, fc.advance(), true
}

// GlyphAdvance implements font.Face.
func (fc *Face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	_, ok = fc.bitmap(r)
	return fc.advance(), ok
}

// Kern implements font.Face. Bitmap fonts have no kerning.
func (fc *Face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

// Metrics implements font.Face.
func (fc *Face) Metrics() font.Metrics {
	h := fc.font.Height()
	return font.Metrics{
		Height:     fixed.I(h + fc.conf.lineDistance),
		Ascent:     fixed.I(h),
		Descent:    0,
		XHeight:    fixed.I(h),
		CapHeight:  fixed.I(h),
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

func (fc *Face) advance() fixed.Int26_6 {
	return fixed.I(fc.font.Width() + fc.conf.charDistance)
}

// bitmap looks up r, falling back to the replacement character.
func (fc *Face) bitmap(r rune) (faff.Bitmap, bool) {
	if bm, err := fc.font.Lookup(r); err == nil {
		return bm, true
	}
	if bm, err := fc.font.Lookup(faff.ReplacementChar); err == nil {
		return bm, true
	}
	return faff.Bitmap{}, false
}

// Mask converts a glyph bitmap to an alpha mask, opaque where pixels are set.
func Mask(bm faff.Bitmap) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, bm.Width(), bm.Height()))
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			if bm.Pixel(x, y) {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return mask
}
