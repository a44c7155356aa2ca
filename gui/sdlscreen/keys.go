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

package sdlscreen

import (
	"github.com/jetsetilly/ticcore/events"
	"github.com/veandco/go-sdl2/sdl"
)

var keys = map[sdl.Keycode]int{
	sdl.K_RIGHT:     events.KeyRightArrow,
	sdl.K_LEFT:      events.KeyLeftArrow,
	sdl.K_UP:        events.KeyUpArrow,
	sdl.K_DOWN:      events.KeyDownArrow,
	sdl.K_ESCAPE:    events.KeyEscape,
	sdl.K_RETURN:    events.KeyEnter,
	sdl.K_KP_ENTER:  events.KeyEnter,
	sdl.K_TAB:       events.KeyTab,
	sdl.K_BACKSPACE: events.KeyBackspace,
	sdl.K_PAUSE:     events.KeyPause,
	sdl.K_LSHIFT:    events.KeyRShift,
	sdl.K_RSHIFT:    events.KeyRShift,
	sdl.K_LCTRL:     events.KeyRCtrl,
	sdl.K_RCTRL:     events.KeyRCtrl,
	sdl.K_LALT:      events.KeyRAlt,
	sdl.K_RALT:      events.KeyRAlt,
	sdl.K_F11:       events.KeyF11,
	sdl.K_F12:       events.KeyF11 + 1,
}

// translateKey converts an SDL key code to the key code used in events.
// Printable keys use their lower case ASCII value.
func translateKey(sym sdl.Keycode) (int, bool) {
	if k, ok := keys[sym]; ok {
		return k, true
	}

	if sym >= sdl.K_F1 && sym <= sdl.K_F10 {
		return events.KeyF1 + int(sym-sdl.K_F1), true
	}

	if sym >= ' ' && sym < 0x7f {
		if sym >= 'A' && sym <= 'Z' {
			sym += 'a' - 'A'
		}
		return int(sym), true
	}

	return 0, false
}
