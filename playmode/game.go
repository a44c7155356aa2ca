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
	"fmt"

	"github.com/jetsetilly/ticcore/content"
	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/demo"
	"github.com/jetsetilly/ticcore/events"
	"github.com/jetsetilly/ticcore/gameloop"
	"github.com/jetsetilly/ticcore/gamestate"
	"github.com/jetsetilly/ticcore/logger"
)

// Sentinal errors.
const (
	PlayError = "playmode: %v"
)

// number of tic commands kept. must be larger than the number of tics the
// game loop can build before running them
const backupTics = 16

// source of demo recordings
type demoSource interface {
	Demo(name string) (*content.Recording, error)
}

// the demo sequence is advanced when a demo ends
type advancer interface {
	RequestAdvance()
}

// recipient of the tic commands that have been run
type recorder interface {
	Record(tic int, cmds ...gamestate.TicCmd)
}

// game is the part of the simulation common to all modes. it responds to
// events after the menu, builds tic commands and drives the view with them.
type game struct {
	ctx     *gamestate.Context
	edition gamestate.Edition

	demos    demoSource
	seq      advancer
	view     *view
	session  recorder
	music    demo.MusicChanger
	resize   func(delta int)
	controls controls

	cmds [backupTics]gamestate.TicCmd

	// the recording being played back and the index of the console player's
	// commands in each tic of the recording
	rec     *content.Recording
	demoTic int
	player  int

	quit bool

	// permission for log entries made from inside the game loop
	log logger.Permission
}

// the music and resize arguments can be nil.
func newGame(ctx *gamestate.Context, edition gamestate.Edition, demos demoSource, seq advancer,
	v *view, session recorder, music demo.MusicChanger, resize func(int)) *game {
	return &game{
		ctx:      ctx,
		edition:  edition,
		demos:    demos,
		seq:      seq,
		view:     v,
		session:  session,
		music:    music,
		resize:   resize,
		controls: newControls(),
		log:      logger.Allow,
	}
}

// levelName returns the name of the map for the edition.
func levelName(edition gamestate.Edition, episode int, mapNum int) string {
	if edition.Mode == gamestate.Commercial {
		return fmt.Sprintf("MAP%02d", mapNum)
	}
	return fmt.Sprintf("E%dM%d", episode, mapNum)
}

func (g *game) levelMusic() string {
	if g.edition.Mode == gamestate.Commercial {
		return "runnin"
	}
	return "e1m1"
}

// enter the level mode
func (g *game) startLevel(name string) {
	g.ctx.Mode = gamestate.Level
	g.ctx.ViewActive = true
	g.ctx.Paused = false
	g.ctx.AutomapActive = false
	g.controls.release()
	g.view.reset(name)
	if g.music != nil {
		g.music.ChangeMusic(g.levelMusic(), true)
	}
}

// NewGame starts a game under the control of the user.
func (g *game) NewGame() {
	g.ctx.UserGame = true
	g.ctx.DemoPlayback = false
	g.rec = nil
	g.startLevel(levelName(g.edition, 1, 1))
	logger.Logf(g.log, "playmode", "new game %s", g.view.name)
}

// RequestQuit ends the game loop on the next tic.
func (g *game) RequestQuit() {
	g.quit = true
}

// TryConsume implements the events.Responder interface.
func (g *game) TryConsume(ev events.Event) bool {
	if ev.Kind == events.Quit {
		g.quit = true
		return true
	}

	if ev.Kind == events.KeyDown && ev.Data1 == events.KeyPause {
		g.ctx.Paused = !g.ctx.Paused
		return true
	}

	if g.ctx.Mode != gamestate.Level || g.ctx.DemoPlayback {
		return false
	}

	if ev.Kind == events.KeyDown {
		switch ev.Data1 {
		case events.KeyTab:
			g.ctx.AutomapActive = !g.ctx.AutomapActive
			return true
		case events.KeyMinus:
			if g.resize != nil {
				g.resize(-1)
			}
			return true
		case events.KeyEquals:
			if g.resize != nil {
				g.resize(1)
			}
			return true
		}
	}

	return g.controls.handle(ev)
}

// BuildCommand implements the gameloop.Game interface.
func (g *game) BuildCommand(tic int) {
	var cmd gamestate.TicCmd

	if g.ctx.MenuActive {
		g.controls.release()
	} else if g.ctx.Mode == gamestate.Level && !g.ctx.DemoPlayback {
		cmd = g.controls.build()
	}

	g.cmds[tic%backupTics] = cmd
}

// Tick implements the gameloop.Game interface.
func (g *game) Tick() error {
	if g.quit {
		return curated.Errorf(gameloop.QuitRequest)
	}

	if g.ctx.Paused || g.ctx.Mode != gamestate.Level {
		return nil
	}

	// the menu pauses a game but not a demo
	if g.ctx.MenuActive && !g.ctx.DemoPlayback {
		return nil
	}

	cmd := g.cmds[g.ctx.Gametic%backupTics]

	if g.ctx.DemoPlayback {
		cmds, ok := g.rec.Tic(g.demoTic)
		if !ok {
			return g.checkDemoStatus()
		}
		g.demoTic++
		if g.player < len(cmds) {
			cmd = cmds[g.player]
		} else {
			cmd = cmds[0]
		}
	}

	g.view.apply(cmd)
	g.session.Record(g.ctx.Gametic, cmd)

	return nil
}

// the end of a demo either ends the loop or moves the demo sequence on
func (g *game) checkDemoStatus() error {
	logger.Logf(g.log, "playmode", "end of demo %s after %d tics", g.rec.Name, g.demoTic)

	g.ctx.DemoPlayback = false
	g.rec = nil

	if g.ctx.SingleDemo {
		return curated.Errorf(gameloop.DemoEnded)
	}

	g.seq.RequestAdvance()
	return nil
}

// PlayDemo implements the gameloop.Game interface.
func (g *game) PlayDemo(name string) error {
	rec, err := g.demos.Demo(name)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	g.rec = rec
	g.demoTic = 0
	g.player = consoleIndex(rec)

	g.ctx.DemoPlayback = true
	g.ctx.UserGame = false
	g.startLevel(levelName(g.edition, rec.Episode, rec.Map))

	logger.Logf(g.log, "playmode", "playing demo %s (%s)", name, g.view.name)

	return nil
}

// the commands for each tic of a recording are in player order but only for
// the players in the game
func consoleIndex(rec *content.Recording) int {
	idx := 0
	for i := 0; i < rec.ConsolePlayer && i < len(rec.Players); i++ {
		if rec.Players[i] {
			idx++
		}
	}
	return idx
}
