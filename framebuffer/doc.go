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

// Package framebuffer is the indexed colour screen that the display
// compositor draws into and that the presenters in the gui packages read from.
//
// A Frame is 320x200 pixels with one byte per pixel. The byte is an index into
// the current palette. The Frame carries a set of palettes rather than a
// single palette and the current palette is selected with SetPalette(). Palette
// zero is the normal palette. The other palettes are tinted versions of the
// normal palette, suitable for damage and pickup flashes.
//
// Frames are allocated once. None of the drawing functions allocate memory.
package framebuffer
