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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides the console.Printer interface for ANSI terminals and wraps termios
// methods in functions with friendlier names.
package easyterm

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/jetsetilly/ticcore/console/ansi"
	"github.com/jetsetilly/ticcore/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Sentinal errors.
const (
	NotATerminal = "easyterm: not a terminal"
	Interrupted  = "easyterm: interrupted"
)

// Terminal is an ANSI terminal with a cursor that can be queried and moved.
type Terminal struct {
	crit sync.Mutex

	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	// the cursor position as last known. used when the terminal does not
	// answer a position query
	column int
	row    int
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. Both files must be terminals.
func NewTerminal(input, output *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(input.Fd())) || !term.IsTerminal(int(output.Fd())) {
		return nil, curated.Errorf(NotATerminal)
	}

	pt := &Terminal{
		input:  input,
		output: output,
	}

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return nil, curated.Errorf("easyterm: %v", err)
	}
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	return pt, nil
}

// IsTerminal implements the console.Printer interface.
func (pt *Terminal) IsTerminal() bool {
	return true
}

// Size returns the number of columns and rows of the output terminal.
func (pt *Terminal) Size() (columns int, rows int, err error) {
	return term.GetSize(int(pt.output.Fd()))
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() {
	termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.rawAttr)
}

// Getch waits for a single keypress. The terminal is in raw mode only for
// the duration of the call. Returns the Interrupted error for ctrl-c.
func (pt *Terminal) Getch() (byte, error) {
	pt.crit.Lock()
	defer pt.crit.Unlock()

	pt.RawMode()
	defer pt.CanonicalMode()

	var b [1]byte
	if _, err := pt.input.Read(b[:]); err != nil {
		return 0, curated.Errorf("easyterm: %v", err)
	}
	if b[0] == KeyInterrupt {
		return 0, curated.Errorf(Interrupted)
	}
	return b[0], nil
}

// the longest reply to a cursor report request that will be accepted
const maxReportLen = 32

// query the terminal for the cursor position. must be called with the
// critical section locked
func (pt *Terminal) query() error {
	pt.RawMode()
	defer pt.CanonicalMode()

	if _, err := pt.output.WriteString(ansi.CursorReport); err != nil {
		return err
	}

	var reply []byte
	var b [1]byte
	for len(reply) < maxReportLen {
		if _, err := pt.input.Read(b[:]); err != nil {
			return err
		}
		reply = append(reply, b[0])
		if b[0] == 'R' {
			break
		}
	}

	if !bytes.HasSuffix(reply, []byte{'R'}) {
		return fmt.Errorf("cursor report too long")
	}

	column, row, err := ansi.ParseCursorReport(reply)
	if err != nil {
		return err
	}
	pt.column = column
	pt.row = row

	return nil
}

// Position implements the console.Cursor interface.
func (pt *Terminal) Position() (int, int) {
	pt.crit.Lock()
	defer pt.crit.Unlock()

	// the last known position is the best that can be done if the terminal
	// does not answer
	_ = pt.query()

	return pt.column, pt.row
}

// SetPosition implements the console.Cursor interface.
func (pt *Terminal) SetPosition(column int, row int) {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	pt.column = column
	pt.row = row
	pt.output.WriteString(ansi.CursorPosition(column, row))
}

// Write implements the console.Cursor interface.
func (pt *Terminal) Write(cell rune, attr uint8) {
	pt.crit.Lock()
	defer pt.crit.Unlock()

	var b bytes.Buffer
	b.WriteString(ansi.Attribute(attr))
	b.WriteRune(cell)
	b.WriteString(ansi.NormalPen)
	b.WriteString(ansi.CursorPosition(pt.column, pt.row))
	pt.output.Write(b.Bytes())
}

// Clear implements the console.Printer interface.
func (pt *Terminal) Clear() {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	pt.column = 0
	pt.row = 0
	pt.output.WriteString(ansi.ClearScreen + ansi.CursorPosition(0, 0))
}

// Print implements the console.Printer interface.
func (pt *Terminal) Print(s string) {
	pt.crit.Lock()
	defer pt.crit.Unlock()
	pt.output.WriteString(s)
	pt.output.Sync()
}
