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

import "image/color"

// Palette is a single 256 colour palette.
type Palette [256]color.RGBA

// NumPalettes is the number of palettes in a palette set.
const NumPalettes = 14

// Palette indexes for the tinted palettes.
const (
	PaletteNormal  = 0
	PaletteDamage  = 1
	PaletteBonus   = 9
	PaletteRadSuit = 13
)

// PaletteSet is the normal palette and its tinted variants.
type PaletteSet [NumPalettes]Palette

// Well known colour indexes in the default palette.
const (
	Black     uint8 = 0
	Grey      uint8 = 8
	White     uint8 = 15
	Brown     uint8 = 84
	Green     uint8 = 112
	DarkGreen uint8 = 122
	Red       uint8 = 176
	Yellow    uint8 = 224
)

// DefaultPalettes returns a palette set built from the default palette. The
// default palette is a set of sixteen colour ramps of sixteen shades each.
func DefaultPalettes() *PaletteSet {
	var base Palette

	// the key colours of each ramp. ramps run from bright to dark
	keys := [16]color.RGBA{
		{0, 0, 0, 0xff},
		{0xff, 0xff, 0xff, 0xff},
		{0xff, 0xd8, 0xb0, 0xff},
		{0xe0, 0x90, 0x60, 0xff},
		{0xc0, 0x80, 0x50, 0xff},
		{0xa0, 0x70, 0x40, 0xff},
		{0xd0, 0xd0, 0xd0, 0xff},
		{0x70, 0xff, 0x70, 0xff},
		{0xb0, 0x90, 0x70, 0xff},
		{0xa0, 0xa0, 0xa0, 0xff},
		{0xb0, 0xb0, 0x90, 0xff},
		{0xff, 0x60, 0x60, 0xff},
		{0x80, 0x80, 0xff, 0xff},
		{0xff, 0xa0, 0x40, 0xff},
		{0xff, 0xff, 0x60, 0xff},
		{0xc0, 0x60, 0xc0, 0xff},
	}

	for r, k := range keys {
		for s := range 16 {
			base[r*16+s] = shade(k, 16-s, 16)
		}
	}

	// the first ramp is the grey ramp running from black
	for s := range 16 {
		v := uint8(s * 17)
		base[s] = color.RGBA{v, v, v, 0xff}
	}
	base[Black] = color.RGBA{0, 0, 0, 0xff}

	var set PaletteSet
	set[PaletteNormal] = base

	// damage palettes increase in redness
	for i := range 8 {
		set[PaletteDamage+i] = tint(base, color.RGBA{0xff, 0, 0, 0xff}, (i+1)*8)
	}

	// bonus palettes are a light yellow
	for i := range 4 {
		set[PaletteBonus+i] = tint(base, color.RGBA{0xd7, 0xba, 0x45, 0xff}, (i+1)*2)
	}

	set[PaletteRadSuit] = tint(base, color.RGBA{0, 0xff, 0, 0xff}, 12)

	return &set
}

func shade(c color.RGBA, n, d int) color.RGBA {
	return color.RGBA{
		R: uint8(int(c.R) * n / d),
		G: uint8(int(c.G) * n / d),
		B: uint8(int(c.B) * n / d),
		A: 0xff,
	}
}

// tint mixes every colour in the palette with the tint. the amount is out of
// a maximum of 64
func tint(p Palette, t color.RGBA, amount int) Palette {
	var r Palette
	for i, c := range p {
		r[i] = color.RGBA{
			R: uint8((int(c.R)*(64-amount) + int(t.R)*amount) / 64),
			G: uint8((int(c.G)*(64-amount) + int(t.G)*amount) / 64),
			B: uint8((int(c.B)*(64-amount) + int(t.B)*amount) / 64),
			A: 0xff,
		}
	}
	return r
}

// Nearest returns the index of the colour in the palette that most closely
// matches the colour.
func (p *Palette) Nearest(c color.Color) uint8 {
	r, g, b, _ := c.RGBA()
	r >>= 8
	g >>= 8
	b >>= 8

	best := 0
	bestDist := -1
	for i, pc := range p {
		dr := int(r) - int(pc.R)
		dg := int(g) - int(pc.G)
		db := int(b) - int(pc.B)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(best)
}
