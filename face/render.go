package face

import (
	"image"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/faff"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// layout splits text into lines, composing it to NFC first so that
// sequences like "ä" find the precomposed glyph "ä".
func layout(text string, conf config) []string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", conf.tabWidth))
	return strings.Split(text, "\n")
}

func measure(f *faff.Font, lines []string, conf config) image.Rectangle {
	cols := 0
	for _, line := range lines {
		cols = max(cols, utf8.RuneCountInString(line))
	}
	width := cols*f.Width() + max(cols-1, 0)*conf.charDistance
	height := len(lines)*f.Height() + (len(lines)-1)*conf.lineDistance
	return image.Rect(0, 0, width+2*conf.margin, height+2*conf.margin)
}

// Bounds returns the size of the image Render would produce.
func Bounds(f *faff.Font, text string, opts ...Option) image.Rectangle {
	conf := configure(opts)
	return measure(f, layout(text, conf), conf)
}

// Render draws text with font f onto a new grey image. Lines are separated
// by '\n'; code points missing from the font are drawn as U+FFFD, or
// left blank if the font lacks U+FFFD.
func Render(f *faff.Font, text string, opts ...Option) *image.Gray {
	conf := configure(opts)
	lines := layout(text, conf)
	img := image.NewGray(measure(f, lines, conf))
	draw.Draw(img, img.Bounds(), image.NewUniform(conf.bg), image.Point{}, draw.Src)
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(conf.fg),
		Face: &Face{font: f, conf: conf},
	}
	lineHeight := f.Height() + conf.lineDistance
	for i, line := range lines {
		drawer.Dot = fixed.P(conf.margin, conf.margin+f.Height()+i*lineHeight)
		drawer.DrawString(line)
	}
	return img
}

// Text draws img with Unicode block elements, two pixel rows per line.
// Pixels brighter than mid-grey count as set.
func Text(img image.Image) string {
	b := img.Bounds()
	set := func(x, y int) bool {
		if y >= b.Max.Y {
			return false
		}
		r, g, bl, _ := img.At(x, y).RGBA()
		return (r+g+bl)/3 > 0x7fff
	}
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			switch upper, lower := set(x, y), set(x, y+1); {
			case upper && lower:
				sb.WriteRune('█')
			case upper:
				sb.WriteRune('▀')
			case lower:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
