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

package gameloop

import (
	"github.com/jetsetilly/ticcore/events"
	"github.com/jetsetilly/ticcore/gamestate"
)

// Input captures raw input from the platform and posts it to the event queue.
type Input interface {
	StartTic()
}

// Menu responds to events before the game does and is ticked once per tic.
type Menu interface {
	events.Responder
	Tick()
}

// Game is the simulation.
type Game interface {
	events.Responder

	// build the tic command for the tic number
	BuildCommand(tic int)

	// tick the parts of the game that are common to all modes. returning the
	// QuitRequest or DemoEnded errors will end the loop
	Tick() error

	// begin playback of the named demo recording
	PlayDemo(name string) error
}

// Ticker is ticked once per tic when the game is in the corresponding mode.
type Ticker interface {
	Tick()
}

// Sequencer is the attract mode sequence.
type Sequencer interface {
	AdvancePending() bool
	DoAdvance() error
	TakePlayback() (string, bool)
}

// Sound updates positional sounds after the simulation has run.
type Sound interface {
	UpdateSounds()
}

// Display draws and presents the screen.
type Display interface {
	Display() error
}

// Clock is the source of tics.
type Clock interface {
	Tics() int
	WaitTic(after int) int
}

// Collaborators of the Scheduler. Input and Sound can be nil. Entries in the
// Modes array can be nil.
type Collaborators struct {
	Ctx       *gamestate.Context
	Events    *events.Queue
	Input     Input
	Menu      Menu
	Game      Game
	Modes     [gamestate.NumModes]Ticker
	Sequencer Sequencer
	Sound     Sound
	Display   Display
	Clock     Clock
}
