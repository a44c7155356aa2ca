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
	"github.com/jetsetilly/ticcore/framebuffer"
	"github.com/jetsetilly/ticcore/gamestate"
)

// the things the menu can ask the game to do
type menuActions interface {
	NewGame()
	RequestQuit()
}

type menuItem struct {
	label    string
	activate func()
}

// layout of the menu
const (
	menuWidth      = 120
	menuLineHeight = 12
	menuPadding    = 8
	menuBlinkTics  = 8
)

// menu is a minimal main menu. Escape opens and closes it and any key opens
// it while the demo sequence is running.
type menu struct {
	ctx   *gamestate.Context
	items []menuItem
	sel   int
	blink int
}

func newMenu(ctx *gamestate.Context, actions menuActions) *menu {
	return &menu{
		ctx: ctx,
		items: []menuItem{
			{label: "NEW GAME", activate: actions.NewGame},
			{label: "QUIT GAME", activate: actions.RequestQuit},
		},
	}
}

func (m *menu) open() {
	m.ctx.MenuActive = true
	m.sel = 0
}

func (m *menu) close() {
	m.ctx.MenuActive = false
}

// the demo sequence is running and nobody is playing
func (m *menu) attract() bool {
	return !m.ctx.UserGame && !m.ctx.SingleDemo && (m.ctx.Mode == gamestate.DemoScreen || m.ctx.DemoPlayback)
}

// TryConsume implements the events.Responder interface.
func (m *menu) TryConsume(ev events.Event) bool {
	if ev.Kind != events.KeyDown && ev.Kind != events.KeyUp {
		return false
	}

	if !m.ctx.MenuActive {
		if ev.Kind != events.KeyDown || ev.Data1 == events.KeyPause {
			return false
		}
		if ev.Data1 == events.KeyEscape || m.attract() {
			m.open()
			return true
		}
		return false
	}

	if ev.Kind == events.KeyUp {
		return true
	}

	switch ev.Data1 {
	case events.KeyEscape:
		m.close()
	case events.KeyUpArrow:
		m.sel = (m.sel + len(m.items) - 1) % len(m.items)
	case events.KeyDownArrow:
		m.sel = (m.sel + 1) % len(m.items)
	case events.KeyEnter:
		m.close()
		m.items[m.sel].activate()
	}

	return true
}

// Tick implements the gameloop.Menu interface.
func (m *menu) Tick() {
	m.blink++
}

// Draw implements the display.Overlay interface.
func (m *menu) Draw(screen *framebuffer.Frame) {
	if !m.ctx.MenuActive {
		return
	}

	h := len(m.items)*menuLineHeight + menuPadding*2
	x := (framebuffer.Width - menuWidth) / 2
	y := (framebuffer.Height - h) / 2

	screen.FillRect(x-1, y-1, menuWidth+2, h+2, framebuffer.Red)
	screen.FillRect(x, y, menuWidth, h, framebuffer.Black)

	for i, it := range m.items {
		ty := y + menuPadding + i*menuLineHeight
		screen.DrawText(x+menuPadding*2, ty, it.label, framebuffer.White)
		if i == m.sel && (m.blink/menuBlinkTics)&1 == 0 {
			screen.FillRect(x+menuPadding, ty, framebuffer.GlyphWidth, framebuffer.GlyphHeight, framebuffer.Red)
		}
	}
}
