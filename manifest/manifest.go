/*
Package manifest reads glyph definitions from a faFF text manifest and
the image sheets it references.

A manifest starts with a signature line stating the glyph size, followed by
one or more file blocks:

	faFF 8x12
	sheets/latin.png
	65,66,67,68
	69,70,71,72

	sheets/symbols.bmp
	65533

Each file block names an image sheet, relative to the manifest's file
system, and lists decimal code points, comma separated, over one or more
lines. An empty line closes a block. The sheet is cut into tiles of the
glyph size, numbered row by row; every list entry consumes one tile in
order. Entries which are not positive numbers skip their tile. A pixel is
set if its grey level is nonzero.

PNG, BMP and TIFF sheets are understood.
*/
package manifest

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register PNG sheets
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/npillmayer/faff"
	"github.com/npillmayer/faff/mphf"
	"github.com/npillmayer/schuko/tracing"
	_ "golang.org/x/image/bmp"  // register BMP sheets
	_ "golang.org/x/image/tiff" // register TIFF sheets
)

// tracer writes to trace with key 'faff'
func tracer() tracing.Trace {
	return tracing.Select("faff")
}

// Signature is the first word of every manifest.
const Signature = "faFF"

// ErrManifest is wrapped by all errors concerning manifest content.
var ErrManifest = errors.New("invalid manifest")

// Reader streams glyph definitions from a manifest. It implements
// faff.GlyphReader.
type Reader struct {
	scanner *bufio.Scanner
	fsys    fs.FS
	width   int
	height  int
	header  error // result of reading the signature line
	started bool
	line    int
	sheet   *sheet   // current file block, if any
	pending []string // entries of the current line not yet consumed
	bitmap  []byte
}

type sheet struct {
	name   string
	img    image.Image
	across int // tiles per row
	tiles  int
	next   int // index of the next tile to consume
}

// NewReader creates a reader for the manifest in r. Image sheets are opened
// from fsys.
func NewReader(r io.Reader, fsys fs.FS) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(r),
		fsys:    fsys,
	}
}

// LoadFont parses a manifest and compiles a font from it.
func LoadFont(r io.Reader, fsys fs.FS, opts ...mphf.Option) (*faff.Font, faff.BuildStats, error) {
	reader := NewReader(r, fsys)
	width, height, err := reader.Dimensions()
	if err != nil {
		return nil, faff.BuildStats{}, err
	}
	return faff.LoadGlyphs(width, height, reader, opts...)
}

// Dimensions returns the glyph size declared by the manifest's signature
// line.
func (r *Reader) Dimensions() (width, height int, err error) {
	r.readHeader()
	return r.width, r.height, r.header
}

func (r *Reader) readHeader() {
	if r.started {
		return
	}
	r.started = true
	if !r.scanner.Scan() {
		r.header = r.scanner.Err()
		if r.header == nil {
			r.header = fmt.Errorf("%w: empty manifest", ErrManifest)
		}
		return
	}
	r.line++
	fields := strings.Fields(r.scanner.Text())
	if len(fields) != 2 || fields[0] != Signature {
		r.header = fmt.Errorf("%w: line 1: expected %q followed by glyph size", ErrManifest, Signature)
		return
	}
	w, h, found := strings.Cut(fields[1], "x")
	if !found {
		r.header = fmt.Errorf("%w: line 1: glyph size %q is not of the form WxH", ErrManifest, fields[1])
		return
	}
	var err error
	if r.width, err = strconv.Atoi(w); err != nil {
		r.header = fmt.Errorf("%w: line 1: glyph width: %v", ErrManifest, err)
		return
	}
	if r.height, err = strconv.Atoi(h); err != nil {
		r.header = fmt.Errorf("%w: line 1: glyph height: %v", ErrManifest, err)
		return
	}
	if err = faff.CheckDimensions(r.width, r.height); err != nil {
		r.header = fmt.Errorf("%w: line 1: %w", ErrManifest, err)
		return
	}
	r.bitmap = make([]byte, faff.BitmapSize(r.width, r.height))
	tracer().Debugf("manifest declares glyphs of %dx%d pixels", r.width, r.height)
}

// Next returns the next glyph as (code point, bitmap).
// It returns io.EOF when exhausted.
// The returned bitmap is reused by subsequent calls.
func (r *Reader) Next() (rune, []byte, error) {
	if r.readHeader(); r.header != nil {
		return 0, nil, r.header
	}
	for {
		if len(r.pending) > 0 {
			entry := strings.TrimSpace(r.pending[0])
			r.pending = r.pending[1:]
			tile := r.sheet.next
			r.sheet.next++
			code, err := strconv.Atoi(entry)
			if err != nil || code <= 0 {
				continue // tile intentionally left unmapped
			}
			if code > mphf.MaxCode {
				return 0, nil, fmt.Errorf("%w: line %d: code point %d beyond U+10FFFF", ErrManifest, r.line, code)
			}
			if tile >= r.sheet.tiles {
				return 0, nil, fmt.Errorf("%w: line %d: %s has %d tiles, read beyond image (more codes than tiles)",
					ErrManifest, r.line, r.sheet.name, r.sheet.tiles)
			}
			r.cutTile(tile)
			return rune(code), r.bitmap, nil
		}
		if !r.scanner.Scan() {
			r.closeBlock()
			if err := r.scanner.Err(); err != nil {
				return 0, nil, err
			}
			return 0, nil, io.EOF
		}
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		switch {
		case line == "":
			r.closeBlock()
		case r.sheet == nil:
			if err := r.openSheet(line); err != nil {
				return 0, nil, err
			}
		default:
			r.pending = strings.Split(line, ",")
		}
	}
}

func (r *Reader) openSheet(name string) error {
	name = path.Clean(name)
	if !fs.ValidPath(name) {
		return fmt.Errorf("%w: line %d: image path %q must be relative to the manifest", ErrManifest, r.line, name)
	}
	file, err := r.fsys.Open(name)
	if err != nil {
		return fmt.Errorf("%w: line %d: %w", ErrManifest, r.line, err)
	}
	defer file.Close()
	img, format, err := image.Decode(file)
	if err != nil {
		return fmt.Errorf("%w: line %d: cannot decode %s: %w", ErrManifest, r.line, name, err)
	}
	b := img.Bounds()
	if b.Dx()%r.width != 0 || b.Dy()%r.height != 0 {
		return fmt.Errorf("%w: line %d: %s is %dx%d pixels, not a multiple of the glyph size %dx%d",
			ErrManifest, r.line, name, b.Dx(), b.Dy(), r.width, r.height)
	}
	across := b.Dx() / r.width
	r.sheet = &sheet{
		name:   name,
		img:    img,
		across: across,
		tiles:  across * (b.Dy() / r.height),
	}
	tracer().Debugf("reading %s sheet %s with %d tiles", format, name, r.sheet.tiles)
	return nil
}

func (r *Reader) closeBlock() {
	if r.sheet == nil {
		return
	}
	if r.sheet.next < r.sheet.tiles {
		tracer().Infof("%s: %d tiles left that were not mapped to a code",
			r.sheet.name, r.sheet.tiles-r.sheet.next)
	}
	r.sheet = nil
	r.pending = nil
}

// cutTile converts a tile of the current sheet to column words.
func (r *Reader) cutTile(tile int) {
	b := r.sheet.img.Bounds()
	x0 := b.Min.X + (tile%r.sheet.across)*r.width
	y0 := b.Min.Y + (tile/r.sheet.across)*r.height
	word := faff.ColumnSize(r.height)
	clear(r.bitmap)
	for x := 0; x < r.width; x++ {
		for y := 0; y < r.height; y++ {
			gray := color.GrayModel.Convert(r.sheet.img.At(x0+x, y0+y)).(color.Gray)
			if gray.Y != 0 {
				r.bitmap[x*word+y>>3] |= 1 << (y & 7)
			}
		}
	}
}
