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
	"math"
	"strconv"

	"github.com/jetsetilly/ticcore/display"
	"github.com/jetsetilly/ticcore/framebuffer"
	"github.com/jetsetilly/ticcore/gamestate"
	"github.com/jetsetilly/ticcore/limiter"
)

// the area of the screen above the status bar
const (
	statusBarHeight = 32
	viewAreaHeight  = framebuffer.Height - statusBarHeight
)

// size of the squares in the back screen pattern and the automap grid
const (
	flatSize = 16
	gridSize = 32
)

// number of tics the level name is shown in the HUD
const hudMessageTics = limiter.TicRate * 4

// view is a stand-in for the level renderer. it draws a simple scene that
// moves in response to the tic commands applied to it.
type view struct {
	// source of the screen size setting
	blocks func() int

	geom display.ViewGeometry
	name string

	// player position. the angle uses the full range of a uint16
	x, y  float64
	angle uint16

	levelTime int
	cmd       gamestate.TicCmd

	back *framebuffer.Frame

	// reused by the status bar and the mini status bar
	buf []byte
}

func newView(blocks func() int) *view {
	v := &view{
		blocks: blocks,
		name:   "E1M1",
	}
	v.ExecuteSetViewSize()
	return v
}

// reset the view for the start of a level
func (v *view) reset(name string) {
	v.name = name
	v.x = 0
	v.y = 0
	v.angle = 0
	v.levelTime = 0
	v.cmd = gamestate.TicCmd{}
}

// apply a tic command to the player
func (v *view) apply(cmd gamestate.TicCmd) {
	v.cmd = cmd
	v.angle += uint16(cmd.AngleTurn)

	a := float64(v.angle) * 2 * math.Pi / 65536
	sin, cos := math.Sincos(a)
	v.x += float64(cmd.Forward)*cos/8 + float64(cmd.Side)*sin/8
	v.y += float64(cmd.Forward)*sin/8 - float64(cmd.Side)*cos/8
}

// Tick implements the display.Handler interface.
func (v *view) Tick() {
	v.levelTime++
}

// ExecuteSetViewSize implements the display.Level interface.
func (v *view) ExecuteSetViewSize() {
	blocks := v.blocks()
	g := display.ViewGeometry{ScreenBlocks: blocks}

	if blocks >= 11 {
		g.ScaledViewWidth = framebuffer.Width
		g.ViewHeight = framebuffer.Height
	} else {
		g.ScaledViewWidth = blocks * 32
		g.ViewHeight = (blocks * viewAreaHeight / 10) &^ 7
	}

	g.ViewWindowX = (framebuffer.Width - g.ScaledViewWidth) / 2
	if g.ScaledViewWidth != framebuffer.Width {
		g.ViewWindowY = (viewAreaHeight - g.ViewHeight) / 2
	}

	v.geom = g
}

// Geometry implements the display.Level interface.
func (v *view) Geometry() display.ViewGeometry {
	return v.geom
}

// Draw implements the display.Handler interface. The scene is a ceiling, a
// floor and a band of wall columns that scroll as the player turns.
func (v *view) Draw(screen *framebuffer.Frame) {
	g := v.geom
	horizon := g.ViewHeight / 2
	wall := g.ViewHeight / 4

	screen.FillRect(g.ViewWindowX, g.ViewWindowY, g.ScaledViewWidth, horizon, framebuffer.Grey+4)
	screen.FillRect(g.ViewWindowX, g.ViewWindowY+horizon, g.ScaledViewWidth, g.ViewHeight-horizon, framebuffer.Brown)

	// one full turn scrolls the wall by four screen widths
	scroll := int(v.angle) * framebuffer.Width * 4 / 65536
	depth := int(v.x+v.y) & 0x0f

	for x := range g.ScaledViewWidth {
		col := framebuffer.Green + uint8(depth/2)
		if ((x+scroll)/flatSize)&1 == 1 {
			col = framebuffer.DarkGreen
		}
		screen.FillRect(g.ViewWindowX+x, g.ViewWindowY+horizon-wall, 1, wall*2, col)
	}
}

// DrawAutomap implements the display.Level interface.
func (v *view) DrawAutomap(screen *framebuffer.Frame) {
	screen.FillRect(0, 0, framebuffer.Width, viewAreaHeight, framebuffer.Black)

	ox := (int(v.x)%gridSize + gridSize) % gridSize
	oy := (int(v.y)%gridSize + gridSize) % gridSize
	for x := -ox; x < framebuffer.Width; x += gridSize {
		screen.FillRect(x, 0, 1, viewAreaHeight, framebuffer.DarkGreen)
	}
	for y := oy; y < viewAreaHeight; y += gridSize {
		screen.FillRect(0, y, framebuffer.Width, 1, framebuffer.DarkGreen)
	}

	// the player is always in the centre of the map
	cx := framebuffer.Width / 2
	cy := viewAreaHeight / 2
	screen.FillRect(cx-3, cy, 7, 1, framebuffer.White)
	screen.FillRect(cx, cy-3, 1, 7, framebuffer.White)

	screen.DrawText(1, viewAreaHeight-framebuffer.GlyphHeight-1, v.name, framebuffer.White)
}

// DrawStatusBar implements the display.Level interface. The background is
// only drawn if refresh is true.
func (v *view) DrawStatusBar(screen *framebuffer.Frame, refresh bool, simple bool) {
	if v.geom.ViewHeight == framebuffer.Height {
		return
	}

	if refresh {
		if simple {
			screen.FillRect(0, viewAreaHeight, framebuffer.Width, statusBarHeight, framebuffer.Black)
		} else {
			screen.FillRect(0, viewAreaHeight, framebuffer.Width, statusBarHeight, framebuffer.Grey+2)
			screen.FillRect(0, viewAreaHeight, framebuffer.Width, 1, framebuffer.Grey+8)
		}
	}

	bg := framebuffer.Grey + 2
	if simple {
		bg = framebuffer.Black
	}

	y := viewAreaHeight + (statusBarHeight-framebuffer.GlyphHeight)/2
	screen.FillRect(4, y-1, framebuffer.Width-8, framebuffer.GlyphHeight+2, bg)

	x := screen.DrawText(8, y, "TIME ", framebuffer.Red)
	v.buf = v.appendTime(v.buf[:0])
	screen.DrawBytes(x, y, v.buf, framebuffer.Red)

	x = screen.DrawText(framebuffer.Width/2, y, "ANGLE ", framebuffer.Red)
	v.buf = strconv.AppendInt(v.buf[:0], int64(v.angle)*360/65536, 10)
	screen.DrawBytes(x, y, v.buf, framebuffer.Red)
}

// DrawMiniStatusBar implements the display.Level interface.
func (v *view) DrawMiniStatusBar(screen *framebuffer.Frame) {
	y := framebuffer.Height - framebuffer.GlyphHeight - 2
	v.buf = v.appendTime(v.buf[:0])
	screen.DrawBytes(2, y, v.buf, framebuffer.Red)
}

func (v *view) appendTime(b []byte) []byte {
	secs := v.levelTime / limiter.TicRate
	b = strconv.AppendInt(b, int64(secs/60), 10)
	b = append(b, ':')
	if secs%60 < 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, int64(secs%60), 10)
}

// DrawHUD implements the display.Level interface.
func (v *view) DrawHUD(screen *framebuffer.Frame) {
	if v.levelTime < hudMessageTics {
		screen.DrawText(v.geom.ViewWindowX+1, v.geom.ViewWindowY+1, v.name, framebuffer.Red)
	}
}

// FillBackScreen implements the display.Level interface.
func (v *view) FillBackScreen(screen *framebuffer.Frame) {
	if v.back == nil {
		v.back = framebuffer.NewFrame(screen.Palettes())
	}

	for y := 0; y < viewAreaHeight; y += flatSize {
		for x := 0; x < framebuffer.Width; x += flatSize {
			col := framebuffer.Brown + 4
			if (x/flatSize+y/flatSize)&1 == 1 {
				col = framebuffer.Brown + 6
			}
			v.back.FillRect(x, y, flatSize, flatSize, col)
		}
	}
}

// DrawViewBorder implements the display.Level interface. The border is
// copied from the back screen.
func (v *view) DrawViewBorder(screen *framebuffer.Frame) {
	if v.back == nil {
		return
	}

	g := v.geom
	for y := range viewAreaHeight {
		row := y * framebuffer.Width
		if y < g.ViewWindowY || y >= g.ViewWindowY+g.ViewHeight {
			copy(screen.Pix[row:row+framebuffer.Width], v.back.Pix[row:row+framebuffer.Width])
			continue
		}
		copy(screen.Pix[row:row+g.ViewWindowX], v.back.Pix[row:row+g.ViewWindowX])
		r := row + g.ViewWindowX + g.ScaledViewWidth
		copy(screen.Pix[r:row+framebuffer.Width], v.back.Pix[r:row+framebuffer.Width])
	}
}
