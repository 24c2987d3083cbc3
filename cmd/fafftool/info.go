package main

import "github.com/pterm/pterm"

const formatInfo = `faFontFile (faFF) format

A faFF file stores a fixed-size bitmap font. Glyphs are found through a
minimal perfect hash function, so every lookup takes constant time.

All integers are big-endian.

  offset   size      content
  0        2         magic bytes FA FF
  2        1         glyph width W in pixels (1..255)
  3        1         glyph height H in pixels (1..255)
  4        4         number of glyphs N
  8        4*N       hash table G, signed 32 bit entries
  8+4*N    N*(3+B)   value table V: 3 byte code point followed by bitmap

A bitmap holds W column words of C = (H-1)/8+1 bytes each, B = W*C.
Column words are little-endian: bit 0 of the first byte is the topmost
pixel of the column.

Lookup of code point c:
  i = hash(c, 0) mod N
  d = G[i]
  d < 0:  slot = -d-1
  d >= 0: slot = hash(c, d) mod N
  the slot holds c, or c is not part of the font.

hash is FNV-1 over the three code point bytes, starting at 0x811c9dc5
(or at the seed, if not 0), multiplying by 0x01000193 and xoring each
byte, masked to 31 bits.

A font must define U+FFFD, which replaces every undefined character.

Manifest format (input of 'create')

  faFF WxH           first line: signature and glyph size
  sheet.png          image file: starts a block, tiles are W x H pixels
  65,66,67           decimal code points of the tiles, read left to
  68,-1,70           right and top to bottom, over as many lines as needed
                     an empty line ends the block

Every non-black pixel is set. An entry which is not a positive number
skips its tile.
`

func info(args []string) int {
	fs, tlevel := newFlagSet("info")
	if _, ok := prepare(fs, tlevel, args, 0, "info"); !ok {
		return 2
	}
	pterm.Print(formatInfo)
	return 0
}
