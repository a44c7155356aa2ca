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
	"strconv"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/framebuffer"
	"github.com/jetsetilly/ticcore/gamestate"
)

// Sentinal errors.
const (
	PresentError = "display: %v"
)

// the number of passes the border is redrawn for after something might have
// drawn over it
const borderRedraws = 3

// a mode value that never matches a real mode. used to force a background
// redraw
const noMode = gamestate.Mode(-1)

// Options are the toggles that affect the display.
type Options struct {
	NoMelt          bool
	SimpleStatusBar bool
	ShowFPS         bool
}

// Compositor draws and presents the screen.
type Compositor struct {
	ctx    *gamestate.Context
	screen *framebuffer.Frame
	col    Collaborators

	Options Options

	// the mode last presented. a transition is owed whenever this differs
	// from the active mode
	displayedMode gamestate.Mode

	// the mode drawn by the previous pass
	oldMode gamestate.Mode

	// the state of the context as seen by the previous pass
	viewActiveState    bool
	menuActiveState    bool
	inHelpScreensState bool
	fullscreen         bool

	borderDrawCount int

	// preallocated text for the FPS overlay
	fps []byte
}

// NewCompositor is the preferred method of initialisation for the Compositor
// type. The screen is the frame drawn into by the collaborators and presented
// by the Presenter. The Level, Page, Presenter and Clock collaborators must
// not be nil. The Transition must not be nil unless the NoMelt option is set.
func NewCompositor(ctx *gamestate.Context, screen *framebuffer.Frame, col Collaborators) *Compositor {
	return &Compositor{
		ctx:           ctx,
		screen:        screen,
		col:           col,
		displayedMode: gamestate.DemoScreen,
		oldMode:       noMode,
		fps:           make([]byte, 0, 16),
	}
}

// Screen returns the frame being composited.
func (cmp *Compositor) Screen() *framebuffer.Frame {
	return cmp.screen
}

// DisplayedMode returns the mode that was last presented.
func (cmp *Compositor) DisplayedMode() gamestate.Mode {
	return cmp.displayedMode
}

// ForceTransition causes a transition on the next pass even if the mode has
// not changed.
func (cmp *Compositor) ForceTransition() {
	cmp.displayedMode = noMode
}

// Display draws the screen for the active mode and presents it. If the mode
// has changed since the last presentation then the transition is run before
// returning.
func (cmp *Compositor) Display() error {
	ctx := cmp.ctx
	mode := ctx.Mode

	if ctx.ResizePending {
		cmp.col.Level.ExecuteSetViewSize()
		ctx.ResizePending = false
		cmp.oldMode = noMode
		cmp.borderDrawCount = borderRedraws
	}

	wipe := mode != cmp.displayedMode && !cmp.Options.NoMelt && cmp.col.Transition != nil
	if wipe {
		cmp.col.Transition.StartCapture()
	}

	levelActive := mode == gamestate.Level && ctx.Gametic > 0

	var geom ViewGeometry
	if mode == gamestate.Level {
		geom = cmp.col.Level.Geometry()
	}

	switch mode {
	case gamestate.Level:
		if !levelActive {
			break
		}

		if ctx.AutomapActive {
			cmp.col.Level.Draw(cmp.screen)
			cmp.col.Level.DrawAutomap(cmp.screen)
		}

		if !ctx.AutomapActive || !cmp.fullscreen {
			redraw := wipe || (!geom.Fullscreen() && cmp.fullscreen) || (cmp.inHelpScreensState && !ctx.InHelpScreens)
			cmp.col.Level.DrawStatusBar(cmp.screen, redraw, cmp.Options.SimpleStatusBar)
		}

		cmp.fullscreen = geom.Fullscreen()

	case gamestate.Intermission:
		if cmp.col.Intermission != nil {
			cmp.col.Intermission.Draw(cmp.screen)
		}

	case gamestate.Finale:
		if cmp.col.Finale != nil {
			cmp.col.Finale.Draw(cmp.screen)
		}

	case gamestate.DemoScreen:
		cmp.col.Page.Draw(cmp.screen)
	}

	// the view is drawn directly over the status bar work
	if levelActive {
		if !ctx.AutomapActive {
			cmp.col.Level.Draw(cmp.screen)
		}
		cmp.col.Level.DrawHUD(cmp.screen)
	}

	// leaving the level resets the palette
	if mode != cmp.oldMode && mode != gamestate.Level {
		cmp.screen.SetPalette(framebuffer.PaletteNormal)
	}

	// the border needs to be drawn into the back screen when entering the
	// level
	if mode == gamestate.Level && cmp.oldMode != gamestate.Level {
		cmp.viewActiveState = false
		cmp.col.Level.FillBackScreen(cmp.screen)
	}

	// redraw the border to erase anything drawn over it
	if mode == gamestate.Level && !ctx.AutomapActive && geom.ScaledViewWidth != framebuffer.Width {
		if ctx.MenuActive || cmp.menuActiveState || !cmp.viewActiveState {
			cmp.borderDrawCount = borderRedraws
		}
		if cmp.borderDrawCount > 0 {
			cmp.col.Level.DrawViewBorder(cmp.screen)
			cmp.borderDrawCount--
		}
	}

	cmp.menuActiveState = ctx.MenuActive
	cmp.viewActiveState = ctx.ViewActive
	cmp.inHelpScreensState = ctx.InHelpScreens
	cmp.oldMode = mode

	if mode == gamestate.Level && geom.ScreenBlocks == 11 {
		cmp.col.Level.DrawMiniStatusBar(cmp.screen)
	}

	if cmp.Options.ShowFPS && cmp.col.FrameRate != nil {
		cmp.drawFPS()
	}

	if ctx.Paused {
		cmp.drawPause(geom)
	}

	// the menu is drawn on top of everything
	cmp.drawMenu()

	if cmp.col.Net != nil {
		cmp.col.Net.FlushOutgoing()
	}

	if !wipe {
		cmp.displayedMode = mode
		return cmp.present()
	}

	return cmp.runTransition(mode)
}

func (cmp *Compositor) runTransition(mode gamestate.Mode) error {
	cmp.col.Transition.EndCapture()

	clk := cmp.col.Clock
	wipestart := clk.Tics() - 1

	for {
		now := clk.Tics()
		for now <= wipestart {
			now = clk.WaitTic(wipestart)
		}
		tics := now - wipestart
		wipestart = now

		done := cmp.col.Transition.Step(tics)
		cmp.drawMenu()
		if err := cmp.present(); err != nil {
			return err
		}

		if done {
			break
		}
	}

	cmp.displayedMode = mode

	return nil
}

func (cmp *Compositor) present() error {
	if err := cmp.col.Presenter.Present(cmp.screen); err != nil {
		return curated.Errorf(PresentError, err)
	}
	return nil
}

func (cmp *Compositor) drawMenu() {
	if cmp.col.Menu != nil {
		cmp.col.Menu.Draw(cmp.screen)
	}
}

const pauseText = "PAUSE"

func (cmp *Compositor) drawPause(geom ViewGeometry) {
	x := (framebuffer.Width - framebuffer.TextWidth(pauseText)) / 2
	y := 4
	if cmp.ctx.Mode == gamestate.Level {
		x = geom.ViewWindowX + (geom.ScaledViewWidth-framebuffer.TextWidth(pauseText))/2
		if !cmp.ctx.AutomapActive {
			y = geom.ViewWindowY + 4
		}
	}
	cmp.screen.DrawText(x, y, pauseText, framebuffer.White)
}

func (cmp *Compositor) drawFPS() {
	cmp.fps = strconv.AppendInt(cmp.fps[:0], int64(cmp.col.FrameRate.FrameRate()+0.5), 10)
	w := len(cmp.fps) * (framebuffer.GlyphWidth + 1)
	x := framebuffer.Width - w - 2
	cmp.screen.FillRect(x-1, 1, w+1, framebuffer.GlyphHeight+2, framebuffer.Black)
	cmp.screen.DrawBytes(x, 2, cmp.fps, framebuffer.Yellow)
}
