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

package display

import (
	"github.com/jetsetilly/ticcore/framebuffer"
)

// Handler is implemented by the collaborator for each game mode. Tick() is
// called by the game loop and Draw() by the Compositor.
type Handler interface {
	Tick()
	Draw(screen *framebuffer.Frame)
}

// ViewGeometry describes the size and position of the 3D view.
type ViewGeometry struct {
	ViewWindowX     int
	ViewWindowY     int
	ScaledViewWidth int
	ViewHeight      int
	ScreenBlocks    int
}

// Fullscreen returns true if the view fills the height of the screen.
func (g ViewGeometry) Fullscreen() bool {
	return g.ViewHeight == framebuffer.Height
}

// Level is the Handler for the Level mode. The Draw() function of the Handler
// renders the 3D view.
type Level interface {
	Handler

	// recalculate the view geometry after a change of screen size
	ExecuteSetViewSize()
	Geometry() ViewGeometry

	DrawAutomap(screen *framebuffer.Frame)
	DrawStatusBar(screen *framebuffer.Frame, refresh bool, simple bool)
	DrawMiniStatusBar(screen *framebuffer.Frame)
	DrawHUD(screen *framebuffer.Frame)

	// draw the background pattern into the back screen
	FillBackScreen(screen *framebuffer.Frame)

	// copy the border from the back screen to the screen
	DrawViewBorder(screen *framebuffer.Frame)
}

// Overlay is drawn on top of the mode content. The menu is an Overlay.
type Overlay interface {
	Draw(screen *framebuffer.Frame)
}

// Presenter shows the screen to the user.
type Presenter interface {
	Present(screen *framebuffer.Frame) error
}

// NetFlusher sends any accumulated network commands.
type NetFlusher interface {
	FlushOutgoing()
}

// Transition is the screen transition run when the game mode changes.
type Transition interface {
	StartCapture()
	EndCapture()
	Step(tics int) bool
}

// Clock is the source of tics for the transition.
type Clock interface {
	Tics() int
	WaitTic(after int) int
}

// FrameRate is the source of the value shown by the FPS overlay.
type FrameRate interface {
	FrameRate() float32
}

// Collaborators of the Compositor. Intermission, Finale, Menu, Net and
// FrameRate can be nil.
type Collaborators struct {
	Level        Level
	Intermission Handler
	Finale       Handler
	Page         Handler
	Menu         Overlay
	Presenter    Presenter
	Net          NetFlusher
	Transition   Transition
	Clock        Clock
	FrameRate    FrameRate
}
