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

package events

import "fmt"

// Kind of input event.
type Kind int

// List of valid Kind values.
const (
	KeyDown Kind = iota
	KeyUp
	Mouse
	Joystick

	// the window has been closed or the process has been asked to terminate
	Quit
)

func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "key down"
	case KeyUp:
		return "key up"
	case Mouse:
		return "mouse"
	case Joystick:
		return "joystick"
	case Quit:
		return "quit"
	}
	return "unknown event"
}

// Event is a single input event. Events are stored by value in the Queue.
//
// For key events Data1 is the key code. For mouse and joystick events Data1
// is the button mask, Data2 and Data3 are the x and y movement.
type Event struct {
	Kind  Kind
	Data1 int
	Data2 int
	Data3 int
}

func (e Event) String() string {
	switch e.Kind {
	case KeyDown, KeyUp:
		return fmt.Sprintf("%s: %d", e.Kind, e.Data1)
	case Mouse, Joystick:
		return fmt.Sprintf("%s: %#02x (%d, %d)", e.Kind, e.Data1, e.Data2, e.Data3)
	}
	return e.Kind.String()
}

// Key codes for keys that do not have a printable ASCII value. Printable keys
// use their lower case ASCII value.
const (
	KeyRightArrow = 0xae
	KeyLeftArrow  = 0xac
	KeyUpArrow    = 0xad
	KeyDownArrow  = 0xaf
	KeyEscape     = 27
	KeyEnter      = 13
	KeyTab        = 9
	KeyBackspace  = 127
	KeyPause      = 0xff
	KeyEquals     = 0x3d
	KeyMinus      = 0x2d
	KeyRShift     = 0x80 + 0x36
	KeyRCtrl      = 0x80 + 0x1d
	KeyRAlt       = 0x80 + 0x38
	KeyF1         = 0x80 + 0x3b
	KeyF10        = 0x80 + 0x44
	KeyF11        = 0x80 + 0x57
)
