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

package display_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/display"
	"github.com/jetsetilly/ticcore/framebuffer"
	"github.com/jetsetilly/ticcore/gamestate"
	"github.com/jetsetilly/ticcore/test"
)

// record is shared by all the fake collaborators so that the order of calls
// can be checked
type record struct {
	calls []string
}

func (r *record) add(s string) {
	r.calls = append(r.calls, s)
}

func (r *record) count(s string) int {
	var n int
	for _, c := range r.calls {
		if c == s {
			n++
		}
	}
	return n
}

func (r *record) reset() {
	r.calls = r.calls[:0]
}

type handler struct {
	rec  *record
	name string
}

func (h *handler) Tick() {}

func (h *handler) Draw(_ *framebuffer.Frame) {
	h.rec.add(h.name)
}

type level struct {
	rec  *record
	geom display.ViewGeometry

	refresh bool
	simple  bool
}

func (l *level) Tick() {}

func (l *level) Draw(_ *framebuffer.Frame) {
	l.rec.add("view")
}

func (l *level) ExecuteSetViewSize() {
	l.rec.add("setviewsize")
}

func (l *level) Geometry() display.ViewGeometry {
	return l.geom
}

func (l *level) DrawAutomap(_ *framebuffer.Frame) {
	l.rec.add("automap")
}

func (l *level) DrawStatusBar(_ *framebuffer.Frame, refresh bool, simple bool) {
	l.refresh = refresh
	l.simple = simple
	l.rec.add("statusbar")
}

func (l *level) DrawMiniStatusBar(_ *framebuffer.Frame) {
	l.rec.add("ministatusbar")
}

func (l *level) DrawHUD(_ *framebuffer.Frame) {
	l.rec.add("hud")
}

func (l *level) FillBackScreen(_ *framebuffer.Frame) {
	l.rec.add("fillback")
}

func (l *level) DrawViewBorder(_ *framebuffer.Frame) {
	l.rec.add("border")
}

type menu struct {
	rec *record
}

func (m *menu) Draw(_ *framebuffer.Frame) {
	m.rec.add("menu")
}

type net struct {
	rec *record
}

func (n *net) FlushOutgoing() {
	n.rec.add("flush")
}

// clock advances only when waited on or when the presenter advances it
type clock struct {
	tics int
}

func (c *clock) Tics() int {
	return c.tics
}

func (c *clock) WaitTic(after int) int {
	if c.tics <= after {
		c.tics = after + 1
	}
	return c.tics
}

// presenter advances the clock by a number of tics on every present. this
// simulates a slow machine
type presenter struct {
	rec *record
	clk *clock
	ms  int
	err error
}

func (p *presenter) Present(_ *framebuffer.Frame) error {
	p.rec.add("present")
	p.clk.tics += p.ms
	return p.err
}

// transition completes after a fixed number of tics
type transition struct {
	rec      *record
	length   int
	consumed int
	steps    int
}

func (t *transition) StartCapture() {
	t.rec.add("startcapture")
	t.consumed = 0
	t.steps = 0
}

func (t *transition) EndCapture() {
	t.rec.add("endcapture")
}

func (t *transition) Step(tics int) bool {
	t.rec.add("step")
	t.consumed += tics
	t.steps++
	return t.consumed >= t.length
}

type rate struct{}

func (rate) FrameRate() float32 {
	return 35.0
}

type env struct {
	rec   *record
	ctx   *gamestate.Context
	cmp   *display.Compositor
	level *level
	pres  *presenter
	trans *transition
	clk   *clock
}

func newEnv() *env {
	e := &env{
		rec: &record{},
		ctx: gamestate.NewContext(),
		clk: &clock{tics: 100},
	}
	e.level = &level{rec: e.rec, geom: display.ViewGeometry{
		ViewWindowX:     0,
		ViewWindowY:     0,
		ScaledViewWidth: framebuffer.Width,
		ViewHeight:      168,
		ScreenBlocks:    10,
	}}
	e.pres = &presenter{rec: e.rec, clk: e.clk}
	e.trans = &transition{rec: e.rec, length: 30}

	e.cmp = display.NewCompositor(e.ctx, framebuffer.NewFrame(nil), display.Collaborators{
		Level:        e.level,
		Intermission: &handler{rec: e.rec, name: "intermission"},
		Finale:       &handler{rec: e.rec, name: "finale"},
		Page:         &handler{rec: e.rec, name: "page"},
		Menu:         &menu{rec: e.rec},
		Presenter:    e.pres,
		Net:          &net{rec: e.rec},
		Transition:   e.trans,
		Clock:        e.clk,
		FrameRate:    rate{},
	})

	return e
}

func TestNoTransition(t *testing.T) {
	e := newEnv()

	test.DemandSuccess(t, e.cmp.Display())
	test.ExpectSuccess(t, slices.Equal(e.rec.calls, []string{"page", "menu", "flush", "present"}))
	test.ExpectEquality(t, e.cmp.DisplayedMode(), gamestate.DemoScreen)
}

func TestTransition(t *testing.T) {
	e := newEnv()

	e.ctx.Mode = gamestate.Intermission
	test.DemandSuccess(t, e.cmp.Display())

	// the start of the transition is captured before anything is drawn
	test.ExpectSuccess(t, slices.Equal(e.rec.calls[:5], []string{"startcapture", "intermission", "menu", "flush", "endcapture"}))
	test.ExpectEquality(t, e.cmp.DisplayedMode(), gamestate.Intermission)

	// every step is presented with the menu drawn on top
	test.ExpectEquality(t, e.rec.count("step"), e.trans.steps)
	test.ExpectEquality(t, e.rec.count("present"), e.trans.steps)
	test.ExpectEquality(t, e.rec.count("menu"), e.trans.steps+1)
	test.ExpectEquality(t, e.rec.count("flush"), 1)
	test.ExpectEquality(t, e.trans.consumed, e.trans.length)

	// no transition on the next pass
	e.rec.reset()
	test.DemandSuccess(t, e.cmp.Display())
	test.ExpectEquality(t, e.rec.count("startcapture"), 0)
	test.ExpectEquality(t, e.rec.count("present"), 1)
}

// the number of tics consumed by the transition does not depend on how long it
// takes to present the screen
func TestTransitionSpeed(t *testing.T) {
	var presents []int

	for _, ms := range []int{0, 1, 3, 7} {
		e := newEnv()
		e.pres.ms = ms
		e.ctx.Mode = gamestate.Finale
		test.DemandSuccess(t, e.cmp.Display())

		presents = append(presents, e.rec.count("present"))

		overshoot := max(ms, 1)
		test.ExpectSuccess(t, e.trans.consumed >= e.trans.length, ms)
		test.ExpectSuccess(t, e.trans.consumed < e.trans.length+overshoot, ms)
	}

	// slower machines present fewer times
	test.ExpectSuccess(t, presents[0] > presents[2])
	test.ExpectSuccess(t, presents[2] > presents[3])
}

func TestNoMelt(t *testing.T) {
	e := newEnv()
	e.cmp.Options.NoMelt = true

	e.ctx.Mode = gamestate.Finale
	test.DemandSuccess(t, e.cmp.Display())
	test.ExpectSuccess(t, slices.Equal(e.rec.calls, []string{"finale", "menu", "flush", "present"}))
	test.ExpectEquality(t, e.cmp.DisplayedMode(), gamestate.Finale)
}

func TestLevelBeforeFirstTic(t *testing.T) {
	e := newEnv()
	e.cmp.Options.NoMelt = true
	e.ctx.Mode = gamestate.Level

	test.DemandSuccess(t, e.cmp.Display())
	test.ExpectEquality(t, e.rec.count("view"), 0)
	test.ExpectEquality(t, e.rec.count("statusbar"), 0)
	test.ExpectEquality(t, e.rec.count("hud"), 0)

	// the back screen is still prepared on entering the level
	test.ExpectEquality(t, e.rec.count("fillback"), 1)
	test.ExpectEquality(t, e.rec.count("present"), 1)
}

func TestLevel(t *testing.T) {
	e := newEnv()
	e.ctx.Mode = gamestate.Level
	e.ctx.Gametic = 1
	e.ctx.ViewActive = true

	test.DemandSuccess(t, e.cmp.Display())

	// wiping into the level refreshes the status bar
	test.ExpectSuccess(t, e.level.refresh)
	test.ExpectEquality(t, e.rec.count("view"), 1)
	test.ExpectEquality(t, e.rec.count("hud"), 1)
	test.ExpectEquality(t, e.rec.count("automap"), 0)

	e.rec.reset()
	e.cmp.Options.SimpleStatusBar = true
	test.DemandSuccess(t, e.cmp.Display())
	test.ExpectFailure(t, e.level.refresh)
	test.ExpectSuccess(t, e.level.simple)
	test.ExpectEquality(t, e.rec.count("fillback"), 0)

	// automap replaces the view but the view is still rendered underneath
	e.rec.reset()
	e.ctx.AutomapActive = true
	test.DemandSuccess(t, e.cmp.Display())
	test.ExpectSuccess(t, slices.Equal(e.rec.calls[:4], []string{"view", "automap", "statusbar", "hud"}))
}

func TestHelpScreenDismissal(t *testing.T) {
	e := newEnv()
	e.cmp.Options.NoMelt = true
	e.ctx.Mode = gamestate.Level
	e.ctx.Gametic = 1

	e.ctx.InHelpScreens = true
	test.DemandSuccess(t, e.cmp.Display())
	test.ExpectFailure(t, e.level.refresh)

	e.ctx.InHelpScreens = false
	test.DemandSuccess(t, e.cmp.Display())
	test.ExpectSuccess(t, e.level.refresh)

	test.DemandSuccess(t, e.cmp.Display())
	test.ExpectFailure(t, e.level.refresh)
}

func TestBorder(t *testing.T) {
	e := newEnv()
	e.cmp.Options.NoMelt = true
	e.level.geom.ScaledViewWidth = 256
	e.ctx.Mode = gamestate.Level
	e.ctx.Gametic = 1
	e.ctx.ViewActive = true

	// the border is redrawn for three passes after entering the level
	for range 5 {
		test.DemandSuccess(t, e.cmp.Display())
	}
	test.ExpectEquality(t, e.rec.count("border"), 3)

	// the menu being active forces the border to be redrawn
	e.rec.reset()
	e.ctx.MenuActive = true
	for range 5 {
		test.DemandSuccess(t, e.cmp.Display())
	}
	test.ExpectEquality(t, e.rec.count("border"), 5)

	// and for another three passes after the menu has gone
	e.rec.reset()
	e.ctx.MenuActive = false
	for range 5 {
		test.DemandSuccess(t, e.cmp.Display())
	}
	test.ExpectEquality(t, e.rec.count("border"), 3)

	// no border redraws if the view is the full width of the screen
	e.rec.reset()
	e.level.geom.ScaledViewWidth = framebuffer.Width
	e.ctx.MenuActive = true
	test.DemandSuccess(t, e.cmp.Display())
	test.ExpectEquality(t, e.rec.count("border"), 0)
}

func TestResize(t *testing.T) {
	e := newEnv()
	e.cmp.Options.NoMelt = true
	e.ctx.Mode = gamestate.Level
	e.ctx.Gametic = 1

	test.DemandSuccess(t, e.cmp.Display())
	e.rec.reset()

	e.ctx.ResizePending = true
	test.DemandSuccess(t, e.cmp.Display())
	test.ExpectFailure(t, e.ctx.ResizePending)
	test.ExpectEquality(t, e.rec.calls[0], "setviewsize")

	// the resize forces the back screen to be redrawn
	test.ExpectEquality(t, e.rec.count("fillback"), 1)
}

func TestMiniStatusBar(t *testing.T) {
	e := newEnv()
	e.cmp.Options.NoMelt = true
	e.ctx.Mode = gamestate.Level
	e.ctx.Gametic = 1
	e.level.geom.ScreenBlocks = 11
	e.level.geom.ViewHeight = framebuffer.Height

	test.DemandSuccess(t, e.cmp.Display())
	test.ExpectEquality(t, e.rec.count("ministatusbar"), 1)

	// mini status bar is drawn before the menu
	i := slices.Index(e.rec.calls, "ministatusbar")
	j := slices.Index(e.rec.calls, "menu")
	test.ExpectSuccess(t, i < j)
}

func TestPaletteReset(t *testing.T) {
	e := newEnv()
	e.cmp.Options.NoMelt = true
	e.ctx.Mode = gamestate.Level
	e.ctx.Gametic = 1
	test.DemandSuccess(t, e.cmp.Display())

	e.cmp.Screen().SetPalette(framebuffer.PaletteDamage)
	test.DemandSuccess(t, e.cmp.Display())
	test.ExpectEquality(t, e.cmp.Screen().Palette(), framebuffer.PaletteDamage)

	e.ctx.Mode = gamestate.Intermission
	test.DemandSuccess(t, e.cmp.Display())
	test.ExpectEquality(t, e.cmp.Screen().Palette(), framebuffer.PaletteNormal)
}

func TestOverlays(t *testing.T) {
	e := newEnv()
	e.cmp.Options.ShowFPS = true
	e.ctx.Paused = true
	test.DemandSuccess(t, e.cmp.Display())

	// something has been drawn in the top right corner and in the centre of
	// the top of the screen
	var fps, pause bool
	scr := e.cmp.Screen()
	for y := range 12 {
		for x := framebuffer.Width - 20; x < framebuffer.Width; x++ {
			fps = fps || scr.At(x, y) == framebuffer.Yellow
		}
		for x := 140; x < 180; x++ {
			pause = pause || scr.At(x, y) == framebuffer.White
		}
	}
	test.ExpectSuccess(t, fps)
	test.ExpectSuccess(t, pause)
}

func TestPresentError(t *testing.T) {
	e := newEnv()
	e.pres.err = errors.New("lost device")
	err := e.cmp.Display()
	test.ExpectSuccess(t, curated.Is(err, display.PresentError))

	e.ctx.Mode = gamestate.Finale
	err = e.cmp.Display()
	test.ExpectSuccess(t, curated.Is(err, display.PresentError))
	test.ExpectInequality(t, e.cmp.DisplayedMode(), gamestate.Finale)
}
