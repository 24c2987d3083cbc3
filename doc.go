/*
Package faff reads, writes and queries faFF bitmap font files.

A faFF (Frank Abelbeck Font File) maps Unicode code points to fixed-size
monochrome glyph bitmaps. Glyphs are found in constant time through a
minimal perfect hash function whose tables are stored inside the file:
an intermediate table G resolves a code point to a slot of the value table
V, which holds the code point next to its bitmap so that misses can be
detected. Tables are computed once by Build (see package mphf) and never
change afterwards.

Every usable font defines the Unicode replacement character U+FFFD, which
stands in for code points the font does not cover.

# File Layout

All integers are big-endian.

	byte 0..1   magic 0xfa 0xff
	byte 2      glyph width, 1..255
	byte 3      glyph height, 1..255
	byte 4..7   number n of glyphs
	G           n × int32, two's complement; g ≥ 0 is a seed, g < 0 is slot -g-1
	V           n × (3-byte code point + bitmap)

A bitmap is a sequence of width column words of (height-1)/8+1 bytes each,
least significant byte first. Bit i of a column word is row i.

# Further Reading

	http://stevehanov.ca/blog/?id=119   (hash, displace and compress)

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package faff

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'faff'
func tracer() tracing.Trace {
	return tracing.Select("faff")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
