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

package gamestate

// Context is the mutable state shared by the game loop, the display
// compositor and the demo sequencer. It is owned by the game loop and is
// never accessed concurrently.
type Context struct {
	// the active mode. the mode that is ticked by the game loop and drawn by
	// the display compositor
	Mode Mode

	Paused        bool
	MenuActive    bool
	AutomapActive bool

	// the player view is being drawn. false while the level is still being
	// set up
	ViewActive bool

	// a help screen is being shown by the menu
	InHelpScreens bool

	// the game was started by the user rather than by the demo sequencer
	UserGame bool

	// the view geometry has been changed and must be recomputed by the next
	// display pass
	ResizePending bool

	// a demo recording is driving the simulation
	DemoPlayback bool

	// quit when the current demo playback finishes
	SingleDemo bool

	// the number of tic commands built and the number of tics simulated. in
	// the single-step mode of the game loop these are always the same
	Maketic int
	Gametic int
}

// NewContext is the preferred method of initialisation for the Context type.
// The initial mode is the DemoScreen mode.
func NewContext() *Context {
	return &Context{
		Mode: DemoScreen,
	}
}
