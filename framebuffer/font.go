// This file is part of Ticcore.
//
// Ticcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ticcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ticcore.  If not, see <https://www.gnu.org/licenses/>.

package framebuffer

import (
	"unicode"
	"unicode/utf8"
)

// Glyph dimensions of the built in font. Each glyph is drawn in a cell one
// pixel wider and one pixel taller than the glyph.
const (
	GlyphWidth  = 5
	GlyphHeight = 7
)

// each glyph is seven rows. the top five bits of each row are the pixels,
// most significant bit on the left
var font = map[rune][GlyphHeight]uint8{
	'!': {0x20, 0x20, 0x20, 0x20, 0x20, 0x00, 0x20},
	'%': {0xc0, 0xc8, 0x10, 0x20, 0x40, 0x98, 0x18},
	'(': {0x10, 0x20, 0x40, 0x40, 0x40, 0x20, 0x10},
	')': {0x40, 0x20, 0x10, 0x10, 0x10, 0x20, 0x40},
	',': {0x00, 0x00, 0x00, 0x00, 0x60, 0x20, 0x40},
	'-': {0x00, 0x00, 0x00, 0xf8, 0x00, 0x00, 0x00},
	'.': {0x00, 0x00, 0x00, 0x00, 0x00, 0x60, 0x60},
	'/': {0x00, 0x08, 0x10, 0x20, 0x40, 0x80, 0x00},
	'0': {0x70, 0x88, 0x98, 0xa8, 0xc8, 0x88, 0x70},
	'1': {0x20, 0x60, 0x20, 0x20, 0x20, 0x20, 0x70},
	'2': {0x70, 0x88, 0x08, 0x10, 0x20, 0x40, 0xf8},
	'3': {0xf8, 0x10, 0x20, 0x10, 0x08, 0x88, 0x70},
	'4': {0x10, 0x30, 0x50, 0x90, 0xf8, 0x10, 0x10},
	'5': {0xf8, 0x80, 0xf0, 0x08, 0x08, 0x88, 0x70},
	'6': {0x30, 0x40, 0x80, 0xf0, 0x88, 0x88, 0x70},
	'7': {0xf8, 0x08, 0x10, 0x20, 0x40, 0x40, 0x40},
	'8': {0x70, 0x88, 0x88, 0x70, 0x88, 0x88, 0x70},
	'9': {0x70, 0x88, 0x88, 0x78, 0x08, 0x10, 0x60},
	':': {0x00, 0x60, 0x60, 0x00, 0x60, 0x60, 0x00},
	'?': {0x70, 0x88, 0x08, 0x10, 0x20, 0x00, 0x20},
	'A': {0x70, 0x88, 0x88, 0xf8, 0x88, 0x88, 0x88},
	'B': {0xf0, 0x88, 0x88, 0xf0, 0x88, 0x88, 0xf0},
	'C': {0x70, 0x88, 0x80, 0x80, 0x80, 0x88, 0x70},
	'D': {0xf0, 0x88, 0x88, 0x88, 0x88, 0x88, 0xf0},
	'E': {0xf8, 0x80, 0x80, 0xf0, 0x80, 0x80, 0xf8},
	'F': {0xf8, 0x80, 0x80, 0xf0, 0x80, 0x80, 0x80},
	'G': {0x70, 0x88, 0x80, 0xb8, 0x88, 0x88, 0x78},
	'H': {0x88, 0x88, 0x88, 0xf8, 0x88, 0x88, 0x88},
	'I': {0x70, 0x20, 0x20, 0x20, 0x20, 0x20, 0x70},
	'J': {0x38, 0x10, 0x10, 0x10, 0x10, 0x90, 0x60},
	'K': {0x88, 0x90, 0xa0, 0xc0, 0xa0, 0x90, 0x88},
	'L': {0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0xf8},
	'M': {0x88, 0xd8, 0xa8, 0xa8, 0x88, 0x88, 0x88},
	'N': {0x88, 0x88, 0xc8, 0xa8, 0x98, 0x88, 0x88},
	'O': {0x70, 0x88, 0x88, 0x88, 0x88, 0x88, 0x70},
	'P': {0xf0, 0x88, 0x88, 0xf0, 0x80, 0x80, 0x80},
	'Q': {0x70, 0x88, 0x88, 0x88, 0xa8, 0x90, 0x68},
	'R': {0xf0, 0x88, 0x88, 0xf0, 0xa0, 0x90, 0x88},
	'S': {0x78, 0x80, 0x80, 0x70, 0x08, 0x08, 0xf0},
	'T': {0xf8, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20},
	'U': {0x88, 0x88, 0x88, 0x88, 0x88, 0x88, 0x70},
	'V': {0x88, 0x88, 0x88, 0x88, 0x88, 0x50, 0x20},
	'W': {0x88, 0x88, 0x88, 0xa8, 0xa8, 0xa8, 0x50},
	'X': {0x88, 0x88, 0x50, 0x20, 0x50, 0x88, 0x88},
	'Y': {0x88, 0x88, 0x50, 0x20, 0x20, 0x20, 0x20},
	'Z': {0xf8, 0x08, 0x10, 0x20, 0x40, 0x80, 0xf8},
}

// DrawText draws the string at x and y using the built in font. Lower case
// letters are drawn as upper case and unknown characters are drawn as spaces.
// Returns the x coordinate after the last character.
func (f *Frame) DrawText(x, y int, s string, col uint8) int {
	for _, r := range s {
		f.drawGlyph(x, y, r, col)
		x += GlyphWidth + 1
	}
	return x
}

// DrawBytes is the same as DrawText() but for a byte slice of ASCII
// characters.
func (f *Frame) DrawBytes(x, y int, s []byte, col uint8) int {
	for _, c := range s {
		f.drawGlyph(x, y, rune(c), col)
		x += GlyphWidth + 1
	}
	return x
}

func (f *Frame) drawGlyph(x, y int, r rune, col uint8) {
	g, ok := font[unicode.ToUpper(r)]
	if !ok {
		return
	}
	for row, bits := range g {
		for b := range GlyphWidth {
			if bits&(0x80>>b) != 0 {
				f.Set(x+b, y+row, col)
			}
		}
	}
}

// TextWidth returns the width in pixels of the string when drawn with
// DrawText().
func TextWidth(s string) int {
	return utf8.RuneCountInString(s) * (GlyphWidth + 1)
}
