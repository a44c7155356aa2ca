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
	"image"
	"image/color"
)

// Screen dimensions.
const (
	Width  = 320
	Height = 200
)

// Frame is a single indexed colour screen.
type Frame struct {
	Pix []uint8

	palettes *PaletteSet
	palette  int
}

// NewFrame is the preferred method of initialisation for the Frame type. If
// palettes is nil then the default palette set is used.
func NewFrame(palettes *PaletteSet) *Frame {
	if palettes == nil {
		palettes = DefaultPalettes()
	}
	return &Frame{
		Pix:      make([]uint8, Width*Height),
		palettes: palettes,
	}
}

// SetPalette selects the current palette. Out of range values select the
// normal palette.
func (f *Frame) SetPalette(n int) {
	if n < 0 || n >= len(f.palettes) {
		n = 0
	}
	f.palette = n
}

// Palette returns the index of the current palette.
func (f *Frame) Palette() int {
	return f.palette
}

// Palettes returns the palette set used by the frame.
func (f *Frame) Palettes() *PaletteSet {
	return f.palettes
}

// Copy the pixels of another frame. The palette selection is not copied.
func (f *Frame) Copy(src *Frame) {
	copy(f.Pix, src.Pix)
}

// Fill the entire frame with a single colour.
func (f *Frame) Fill(col uint8) {
	for i := range f.Pix {
		f.Pix[i] = col
	}
}

// FillRect fills the rectangle with a single colour. The rectangle is clipped
// to the screen.
func (f *Frame) FillRect(x, y, w, h int, col uint8) {
	r := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, Width, Height))
	for row := r.Min.Y; row < r.Max.Y; row++ {
		line := f.Pix[row*Width+r.Min.X : row*Width+r.Max.X]
		for i := range line {
			line[i] = col
		}
	}
}

// Set a single pixel. Pixels outside the screen are ignored.
func (f *Frame) Set(x, y int, col uint8) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	f.Pix[y*Width+x] = col
}

// At returns the colour index of a single pixel.
func (f *Frame) At(x, y int) uint8 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	return f.Pix[y*Width+x]
}

// RGBA converts the frame into dst using the current palette. The dst image
// must be at least Width by Height in size.
func (f *Frame) RGBA(dst *image.RGBA) {
	pal := &f.palettes[f.palette]
	for y := range Height {
		src := f.Pix[y*Width : (y+1)*Width]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+Width*4]
		for x, idx := range src {
			c := pal[idx]
			row[x*4] = c.R
			row[x*4+1] = c.G
			row[x*4+2] = c.B
			row[x*4+3] = 0xff
		}
	}
}

// Color returns the RGBA value of a colour index in the current palette.
func (f *Frame) Color(idx uint8) color.RGBA {
	return f.palettes[f.palette][idx]
}
