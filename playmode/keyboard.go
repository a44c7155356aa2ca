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


package playmode

import (
	"github.com/jetsetilly/ticcore/events"
	"github.com/jetsetilly/ticcore/gamestate"
)

// movement speeds. the second value is used while the speed key is held
var (
	forwardMove = [2]int8{0x19, 0x32}
	sideMove    = [2]int8{0x18, 0x28}
)

// turning speeds: normal, fast and the slow speed used for the first few tics
// of a turn
var angleTurn = [3]int16{640, 1280, 320}

// number of tics a turn key must be held before turning at full speed
const slowTurnTics = 6

// key bindings
const (
	keyForward     = events.KeyUpArrow
	keyBackward    = events.KeyDownArrow
	keyLeft        = events.KeyLeftArrow
	keyRight       = events.KeyRightArrow
	keySpeed       = events.KeyRShift
	keyFire        = events.KeyRCtrl
	keyStrafe      = events.KeyRAlt
	keyUse         = ' '
	keyStrafeLeft  = ','
	keyStrafeRight = '.'
)

// controls tracks which of the bound keys are held and builds a tic command
// from them.
type controls struct {
	held     map[int]bool
	turnHeld int
}

func newControls() controls {
	return controls{held: make(map[int]bool)}
}

// handle returns true if the event was for a bound key.
func (c *controls) handle(ev events.Event) bool {
	if ev.Kind != events.KeyDown && ev.Kind != events.KeyUp {
		return false
	}

	switch ev.Data1 {
	case keyForward, keyBackward, keyLeft, keyRight, keySpeed, keyFire,
		keyStrafe, keyUse, keyStrafeLeft, keyStrafeRight:
		c.held[ev.Data1] = ev.Kind == events.KeyDown
		return true
	}

	return false
}

// release all keys. used when the controls stop being read, for example when
// the menu opens
func (c *controls) release() {
	clear(c.held)
	c.turnHeld = 0
}

func (c *controls) build() gamestate.TicCmd {
	var cmd gamestate.TicCmd

	speed := 0
	if c.held[keySpeed] {
		speed = 1
	}

	if c.held[keyLeft] || c.held[keyRight] {
		c.turnHeld++
	} else {
		c.turnHeld = 0
	}

	tspeed := speed
	if c.turnHeld < slowTurnTics {
		tspeed = 2
	}

	var forward, side int

	if c.held[keyStrafe] {
		if c.held[keyRight] {
			side += int(sideMove[speed])
		}
		if c.held[keyLeft] {
			side -= int(sideMove[speed])
		}
	} else {
		if c.held[keyRight] {
			cmd.AngleTurn -= angleTurn[tspeed]
		}
		if c.held[keyLeft] {
			cmd.AngleTurn += angleTurn[tspeed]
		}
	}

	if c.held[keyForward] {
		forward += int(forwardMove[speed])
	}
	if c.held[keyBackward] {
		forward -= int(forwardMove[speed])
	}
	if c.held[keyStrafeRight] {
		side += int(sideMove[speed])
	}
	if c.held[keyStrafeLeft] {
		side -= int(sideMove[speed])
	}

	if c.held[keyFire] {
		cmd.Buttons |= gamestate.ButtonAttack
	}
	if c.held[keyUse] {
		cmd.Buttons |= gamestate.ButtonUse
	}

	maxMove := int(forwardMove[1])
	cmd.Forward = int8(min(max(forward, -maxMove), maxMove))
	cmd.Side = int8(min(max(side, -maxMove), maxMove))

	return cmd
}
