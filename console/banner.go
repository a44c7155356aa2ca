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
	"io"

	"github.com/jetsetilly/ticcore/gamestate"
)

// Printer is a Cursor that can also print text in the normal way.
type Printer interface {
	Cursor
	Clear()
	Print(s string)

	// if IsTerminal() is false the cursor can not be moved and the title is
	// drawn only once
	IsTerminal() bool
}

// Banner prints startup messages under the title bar.
type Banner struct {
	out     Printer
	title   string
	edition gamestate.Edition
}

// NewBanner clears the console and draws the title bar for the edition.
func NewBanner(out Printer, edition gamestate.Edition) *Banner {
	b := &Banner{
		out:     out,
		title:   edition.Title(),
		edition: edition,
	}
	out.Clear()
	out.SetPosition(0, 0)
	fg, bg := TitleColours(edition)
	DrawTitle(out, b.title, fg, bg)
	if out.IsTerminal() {
		out.SetPosition(0, 1)
	} else {
		out.Print("\n")
	}
	return b
}

// Print a message without redrawing the title.
func (b *Banner) Print(s string) {
	b.out.Print(s)
}

// Step prints the message for an initialisation step and redraws the title.
func (b *Banner) Step(s string) {
	b.out.Print(s)
	if b.out.IsTerminal() {
		RedrawTitle(b.out, b.title, b.edition)
	}
}

// Plain is a Printer for output that is not a terminal. Cells are written
// as plain text and the cursor can not be moved.
type Plain struct {
	W io.Writer
}

// Position implements the Cursor interface.
func (p Plain) Position() (int, int) {
	return 0, 0
}

// SetPosition implements the Cursor interface.
func (p Plain) SetPosition(_ int, _ int) {
}

// Write implements the Cursor interface.
func (p Plain) Write(cell rune, _ uint8) {
	io.WriteString(p.W, string(cell))
}

// Clear implements the Printer interface.
func (p Plain) Clear() {
}

// Print implements the Printer interface.
func (p Plain) Print(s string) {
	io.WriteString(p.W, s)
}

// IsTerminal implements the Printer interface.
func (p Plain) IsTerminal() bool {
	return false
}
