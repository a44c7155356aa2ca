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

package console

import (
	"github.com/jetsetilly/ticcore/gamestate"
)

// Width of the console in columns.
const Width = 80

// Cursor is a character cell console with a cursor.
type Cursor interface {
	// the zero-indexed column and row of the cursor
	Position() (column int, row int)
	SetPosition(column int, row int)

	// write a single cell at the cursor position using the VGA text mode
	// attribute. the cursor does not move
	Write(cell rune, attr uint8)
}

// Attribute returns the VGA text mode attribute for the foreground and
// background colours.
func Attribute(fg, bg uint8) uint8 {
	return (bg << 4) | (fg & 0x0f)
}

// DrawTitle writes the title at the cursor position. The cursor wraps to the
// start of the same row after the last column and is left after the last
// character written.
func DrawTitle(c Cursor, title string, fg, bg uint8) {
	attr := Attribute(fg, bg)
	column, row := c.Position()
	for _, r := range title {
		c.Write(r, attr)
		column++
		if column >= Width {
			column = 0
		}
		c.SetPosition(column, row)
	}
}

// TitleColours returns the foreground and background colours used for the
// title bar of the edition.
func TitleColours(edition gamestate.Edition) (fg uint8, bg uint8) {
	if edition.CompLevel >= gamestate.CompUltimateDoom {
		return 8, 7
	}
	return 4, 7
}

// RedrawTitle draws the title on the top row of the console. The cursor
// position is unchanged.
func RedrawTitle(c Cursor, title string, edition gamestate.Edition) {
	column, row := c.Position()
	c.SetPosition(0, 0)
	fg, bg := TitleColours(edition)
	DrawTitle(c, title, fg, bg)
	c.SetPosition(column, row)
}
