package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/npillmayer/faff"
	"github.com/npillmayer/faff/face"
	"github.com/pterm/pterm"
	"golang.org/x/term"
)

func render(args []string) int {
	fs, tlevel := newFlagSet("render")
	out := fs.String("o", "", "write the rendering to a PNG file")
	margin, distance := pixelsFlag(defaultMargin), pixelsFlag(defaultDistance)
	fs.Var(&margin, "m", "margin in pixels around the text")
	fs.Var(&distance, "d", "distance in pixels between characters and lines")
	inverse := fs.Bool("b", false, "black text on white background")
	verbose := fs.Bool("v", false, "dump the hash and value tables")
	positional, ok := prepare(fs, tlevel, args, 2, "render FILE STRING [-o PNGFILE] [-m MARGIN] [-d DISTANCE] [-b] [-v]")
	if !ok {
		return 2
	}
	font, err := openFont(positional[0])
	if err != nil {
		return fail(err)
	}
	if *verbose {
		if err = dumpTables(font); err != nil {
			return fail(err)
		}
	}
	opts := []face.Option{
		face.WithMargin(int(margin)),
		face.WithCharDistance(int(distance)),
		face.WithLineDistance(int(distance)),
	}
	if *inverse {
		opts = append(opts, face.WithBlackOnWhite())
	}
	img := face.Render(font, positional[1], opts...)
	if *out != "" {
		err = writePNG(*out, img)
	} else {
		err = preview(os.Stdout, img)
	}
	if err != nil {
		return fail(err)
	}
	return 0
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// preview prints img as block characters if stdout is a terminal wide
// enough, and as PNG data otherwise.
func preview(stdout *os.File, img image.Image) error {
	fd := int(stdout.Fd())
	if !term.IsTerminal(fd) {
		return png.Encode(stdout, img)
	}
	if width, _, err := term.GetSize(fd); err == nil && img.Bounds().Dx() > width {
		return fmt.Errorf("rendering is %d pixels wide, terminal has %d columns; use -o", img.Bounds().Dx(), width)
	}
	_, err := io.WriteString(stdout, face.Text(img))
	return err
}

// previewGlyph prints the bitmap of a single code point.
func previewGlyph(font *faff.Font, code rune) {
	bm, err := font.Lookup(code)
	if errors.Is(err, faff.ErrNotFound) {
		pterm.Warning.Printfln("U+%04X is not defined, falling back to U+FFFD", code)
		bm = font.Glyph(code)
	} else if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	pterm.Println(bm.String())
}
