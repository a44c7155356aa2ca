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

package gameloop_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/events"
	"github.com/jetsetilly/ticcore/gameloop"
	"github.com/jetsetilly/ticcore/gamestate"
	"github.com/jetsetilly/ticcore/test"
)

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

// clock only advances when told to or when waited on
type clock struct {
	tics  int
	waits int
}

func (c *clock) Tics() int {
	return c.tics
}

func (c *clock) WaitTic(after int) int {
	c.waits++
	if c.tics <= after {
		c.tics = after + 1
	}
	return c.tics
}

type input struct {
	rec    *record
	events *events.Queue
}

func (i *input) StartTic() {
	i.rec.add("input")
	i.events.Post(events.Event{Kind: events.KeyDown, Data1: events.KeyEnter})
}

type menu struct {
	rec     *record
	claimed int
}

func (m *menu) TryConsume(_ events.Event) bool {
	m.claimed++
	return false
}

func (m *menu) Tick() {
	m.rec.add("menu")
}

type game struct {
	rec      *record
	ctx      *gamestate.Context
	claimed  int
	commands []int
	demos    []string
	tickErr  error
	errAfter int
	ticks    int
}

func (g *game) TryConsume(_ events.Event) bool {
	g.claimed++
	return true
}

func (g *game) BuildCommand(tic int) {
	g.rec.add("build")
	g.commands = append(g.commands, tic)
}

func (g *game) Tick() error {
	g.rec.add("game")
	g.ticks++
	if g.tickErr != nil && g.ticks > g.errAfter {
		return g.tickErr
	}
	return nil
}

func (g *game) PlayDemo(name string) error {
	g.rec.add("playdemo")
	g.demos = append(g.demos, name)
	g.ctx.DemoPlayback = true
	return nil
}

type ticker struct {
	rec  *record
	name string
}

func (t *ticker) Tick() {
	t.rec.add(t.name)
}

type sequencer struct {
	rec      *record
	advance  bool
	playback string
	err      error
}

func (s *sequencer) AdvancePending() bool {
	return s.advance
}

func (s *sequencer) DoAdvance() error {
	s.rec.add("advance")
	s.advance = false
	if s.err != nil {
		return s.err
	}
	s.playback = "demo1"
	return nil
}

func (s *sequencer) TakePlayback() (string, bool) {
	if s.playback == "" {
		return "", false
	}
	p := s.playback
	s.playback = ""
	return p, true
}

type sound struct {
	rec *record
}

func (s *sound) UpdateSounds() {
	s.rec.add("sound")
}

type display struct {
	rec *record
}

func (d *display) Display() error {
	d.rec.add("display")
	return nil
}

type env struct {
	rec   *record
	ctx   *gamestate.Context
	clk   *clock
	menu  *menu
	game  *game
	seq   *sequencer
	sched *gameloop.Scheduler
	col   gameloop.Collaborators
}

func newEnv(cfg gameloop.Config) *env {
	e := &env{
		rec: &record{},
		ctx: gamestate.NewContext(),
		clk: &clock{tics: 10},
	}
	q, _ := events.NewQueue(64)
	e.menu = &menu{rec: e.rec}
	e.game = &game{rec: e.rec, ctx: e.ctx}
	e.seq = &sequencer{rec: e.rec}

	e.col = gameloop.Collaborators{
		Ctx:       e.ctx,
		Events:    q,
		Input:     &input{rec: e.rec, events: q},
		Menu:      e.menu,
		Game:      e.game,
		Sequencer: e.seq,
		Sound:     &sound{rec: e.rec},
		Display:   &display{rec: e.rec},
		Clock:     e.clk,
	}
	e.col.Modes[gamestate.DemoScreen] = &ticker{rec: e.rec, name: "page"}
	e.col.Modes[gamestate.Level] = &ticker{rec: e.rec, name: "level"}

	e.sched = gameloop.NewScheduler(cfg, e.col)
	return e
}

func equalCalls(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSingleStep(t *testing.T) {
	e := newEnv(gameloop.Config{SingleTics: true})

	for i := range 5 {
		e.rec.calls = e.rec.calls[:0]
		test.DemandSuccess(t, e.sched.Iterate())
		test.ExpectEquality(t, e.ctx.Maketic, i+1)
		test.ExpectEquality(t, e.ctx.Gametic, i+1)
		test.ExpectSuccess(t, equalCalls(e.rec.calls, "input", "build", "menu", "game", "page", "sound", "display"))
	}

	// every event posted by the input was offered to the menu then claimed by
	// the game
	test.ExpectEquality(t, e.menu.claimed, 5)
	test.ExpectEquality(t, e.game.claimed, 5)

	// the single-step mode never waits for the clock
	test.ExpectEquality(t, e.clk.waits, 0)
}

func TestAdaptive(t *testing.T) {
	e := newEnv(gameloop.Config{})

	// no time has passed so the loop waits for one tic
	test.DemandSuccess(t, e.sched.Iterate())
	test.ExpectEquality(t, e.clk.waits, 1)
	test.ExpectEquality(t, e.ctx.Maketic, 1)
	test.ExpectEquality(t, e.ctx.Gametic, 1)
	test.ExpectEquality(t, e.rec.count("display"), 1)

	// three tics pass during the iteration so three commands are built and
	// three tics are run, with only one display
	e.rec.calls = e.rec.calls[:0]
	e.clk.tics += 3
	test.DemandSuccess(t, e.sched.Iterate())
	test.ExpectEquality(t, e.clk.waits, 1)
	test.ExpectEquality(t, e.ctx.Maketic, 4)
	test.ExpectEquality(t, e.ctx.Gametic, 4)
	test.ExpectEquality(t, e.rec.count("input"), 3)
	test.ExpectEquality(t, e.rec.count("build"), 3)
	test.ExpectEquality(t, e.rec.count("game"), 3)
	test.ExpectEquality(t, e.rec.count("display"), 1)
	test.ExpectEquality(t, e.rec.count("sound"), 1)

	// commands are built for consecutive tics
	for i, c := range e.game.commands {
		test.ExpectEquality(t, c, i)
	}
}

func TestCatchUpLimit(t *testing.T) {
	e := newEnv(gameloop.Config{})
	e.clk.tics += 1000
	test.DemandSuccess(t, e.sched.Iterate())
	test.ExpectSuccess(t, e.ctx.Gametic <= 12)
	test.ExpectEquality(t, e.ctx.Gametic, e.ctx.Maketic)
}

func TestSwitchMode(t *testing.T) {
	e := newEnv(gameloop.Config{})
	e.sched.SetSingleTics(true)
	e.clk.tics += 5
	test.DemandSuccess(t, e.sched.Iterate())
	test.ExpectEquality(t, e.ctx.Gametic, 1)

	// returning to the adaptive mode does not try to catch up on the time
	// spent in single-step mode
	e.clk.tics += 5
	e.sched.SetSingleTics(false)
	test.DemandSuccess(t, e.sched.Iterate())
	test.ExpectEquality(t, e.ctx.Gametic, 2)
}

func TestModeDispatch(t *testing.T) {
	e := newEnv(gameloop.Config{SingleTics: true})
	e.ctx.Mode = gamestate.Level
	test.DemandSuccess(t, e.sched.Iterate())
	test.ExpectEquality(t, e.rec.count("level"), 1)
	test.ExpectEquality(t, e.rec.count("page"), 0)

	// modes without a ticker are fine
	e.ctx.Mode = gamestate.Finale
	test.DemandSuccess(t, e.sched.Iterate())
	test.ExpectEquality(t, e.ctx.Gametic, 2)
}

func TestDeferredPlayback(t *testing.T) {
	e := newEnv(gameloop.Config{SingleTics: true})
	e.seq.advance = true

	// the advance happens before the menu is ticked and the playback request
	// is not taken until the next iteration
	test.DemandSuccess(t, e.sched.Iterate())
	test.ExpectSuccess(t, equalCalls(e.rec.calls[:4], "input", "build", "advance", "menu"))
	test.ExpectEquality(t, len(e.game.demos), 0)

	e.rec.calls = e.rec.calls[:0]
	test.DemandSuccess(t, e.sched.Iterate())
	test.ExpectEquality(t, e.rec.calls[0], "playdemo")
	test.ExpectEquality(t, e.game.demos[0], "demo1")
	test.ExpectSuccess(t, e.ctx.DemoPlayback)
}

func TestTermination(t *testing.T) {
	e := newEnv(gameloop.Config{SingleTics: true})
	e.game.tickErr = curated.Errorf(gameloop.QuitRequest)
	e.game.errAfter = 3
	reason, err := e.sched.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, reason, gameloop.Quit)
	test.ExpectEquality(t, e.ctx.Gametic, 3)

	// the quit happened part way through the iteration so there is no display
	// for the final iteration
	test.ExpectEquality(t, e.rec.count("display"), 3)

	e = newEnv(gameloop.Config{SingleTics: true})
	e.game.tickErr = curated.Errorf(gameloop.DemoEnded)
	reason, err = e.sched.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, reason, gameloop.DemoFinished)

	e = newEnv(gameloop.Config{SingleTics: true})
	e.game.tickErr = errors.New("bad thing")
	reason, err = e.sched.Run(nil)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, reason, gameloop.Fatal)

	e = newEnv(gameloop.Config{SingleTics: true})
	e.seq.advance = true
	e.seq.err = curated.Errorf("demo: missing page CREDIT")
	reason, err = e.sched.Run(nil)
	test.ExpectEquality(t, reason, gameloop.Fatal)
	test.ExpectSuccess(t, curated.Is(err, "demo: missing page CREDIT"))
}

func TestCancellation(t *testing.T) {
	e := newEnv(gameloop.Config{SingleTics: true})

	var checks int
	reason, err := e.sched.Run(func() bool {
		checks++
		return checks > 10
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, reason, gameloop.Cancelled)

	// the check is made once per iteration
	test.ExpectEquality(t, e.ctx.Gametic, 10)
	test.ExpectEquality(t, e.rec.count("display"), 10)
}

func TestTimeDemo(t *testing.T) {
	e := newEnv(gameloop.Config{TimeDemo: true})
	e.seq.playback = "demo2"
	e.game.tickErr = curated.Errorf(gameloop.DemoEnded)
	e.game.errAfter = 20

	// the clock is never waited on when timing a demo
	reason, err := e.sched.Run(func() bool {
		e.clk.tics += 2
		return false
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, reason, gameloop.DemoFinished)
	test.ExpectEquality(t, e.clk.waits, 0)

	gametics, realtics := e.sched.TimeDemo()
	test.ExpectEquality(t, gametics, 20)
	test.ExpectEquality(t, realtics, 40)
}
