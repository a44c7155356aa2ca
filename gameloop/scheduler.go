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
	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/logger"
)

// Sentinal errors. Collaborators return these to end the loop.
const (
	QuitRequest = "gameloop: quit"
	DemoEnded   = "gameloop: demo ended"
)

// TerminationReason is the reason the loop stopped.
type TerminationReason int

// List of valid TerminationReason values.
const (
	Quit TerminationReason = iota
	Cancelled
	DemoFinished
	Fatal
)

func (r TerminationReason) String() string {
	switch r {
	case Quit:
		return "quit"
	case Cancelled:
		return "cancelled"
	case DemoFinished:
		return "demo finished"
	case Fatal:
		return "fatal error"
	}
	return "unknown reason"
}

// Config of the Scheduler.
type Config struct {
	// run exactly one tic per iteration
	SingleTics bool

	// time the playback of a demo. implies SingleTics
	TimeDemo bool
}

// the maximum number of tic commands built in one iteration of the adaptive
// mode. time beyond this is lost
const maxCatchUp = 12

// Scheduler runs the game loop.
type Scheduler struct {
	cfg Config
	col Collaborators

	// the tic clock value when the last tic command was built
	lastTics int

	// the tic count when a timed demo started
	timeDemoStart    int
	timeDemoGametic  int
	timeDemoRealtics int
}

// NewScheduler is the preferred method of initialisation for the Scheduler
// type.
func NewScheduler(cfg Config, col Collaborators) *Scheduler {
	if cfg.TimeDemo {
		cfg.SingleTics = true
	}
	return &Scheduler{
		cfg:      cfg,
		col:      col,
		lastTics: col.Clock.Tics(),
	}
}

// SetSingleTics changes between the single-step and adaptive modes. Has no
// effect if the demo is being timed.
func (sch *Scheduler) SetSingleTics(set bool) {
	if sch.cfg.TimeDemo {
		return
	}
	sch.cfg.SingleTics = set
	sch.lastTics = sch.col.Clock.Tics()
}

// Run the loop until it is ended. The check function is called once per
// iteration, before the iteration starts, and the loop ends with the Cancelled
// reason if it returns true. The check function can be nil.
func (sch *Scheduler) Run(check func() bool) (TerminationReason, error) {
	logger.Logf(logger.Allow, "gameloop", "starting (single tics: %v)", sch.cfg.SingleTics)

	for {
		if check != nil && check() {
			return Cancelled, nil
		}

		err := sch.Iterate()
		if err == nil {
			continue
		}

		if curated.Is(err, QuitRequest) {
			return Quit, nil
		}

		if curated.Is(err, DemoEnded) {
			if sch.cfg.TimeDemo {
				sch.reportTimeDemo()
			}
			return DemoFinished, nil
		}

		return Fatal, err
	}
}

// Iterate performs one iteration of the loop.
func (sch *Scheduler) Iterate() error {
	if err := sch.startPlayback(); err != nil {
		return err
	}

	if sch.cfg.SingleTics {
		if err := sch.singleStep(); err != nil {
			return err
		}
	} else {
		if err := sch.tryRunTics(); err != nil {
			return err
		}
	}

	if sch.col.Sound != nil {
		sch.col.Sound.UpdateSounds()
	}

	return sch.col.Display.Display()
}

// start playback of any deferred demo request
func (sch *Scheduler) startPlayback() error {
	name, ok := sch.col.Sequencer.TakePlayback()
	if !ok {
		return nil
	}

	if err := sch.col.Game.PlayDemo(name); err != nil {
		return err
	}

	if sch.cfg.TimeDemo {
		sch.timeDemoStart = sch.col.Clock.Tics()
		sch.timeDemoGametic = sch.col.Ctx.Gametic
	}

	return nil
}

// build a single tic command
func (sch *Scheduler) buildCommand() {
	if sch.col.Input != nil {
		sch.col.Input.StartTic()
	}
	sch.col.Events.Process(sch.col.Menu, sch.col.Game)
	sch.col.Game.BuildCommand(sch.col.Ctx.Maketic)
}

func (sch *Scheduler) singleStep() error {
	sch.buildCommand()
	if err := sch.runTic(); err != nil {
		return err
	}
	sch.col.Ctx.Maketic++
	return nil
}

func (sch *Scheduler) tryRunTics() error {
	ctx := sch.col.Ctx

	for {
		now := sch.col.Clock.Tics()
		if now-sch.lastTics > maxCatchUp {
			sch.lastTics = now - maxCatchUp
		}
		for sch.lastTics < now {
			sch.lastTics++
			sch.buildCommand()
			ctx.Maketic++
		}

		if ctx.Maketic > ctx.Gametic {
			break
		}

		sch.col.Clock.WaitTic(sch.lastTics)
	}

	for ctx.Gametic < ctx.Maketic {
		if err := sch.runTic(); err != nil {
			return err
		}
	}

	return nil
}

// run the simulation for one tic
func (sch *Scheduler) runTic() error {
	ctx := sch.col.Ctx

	if sch.col.Sequencer.AdvancePending() {
		if err := sch.col.Sequencer.DoAdvance(); err != nil {
			return err
		}
	}

	sch.col.Menu.Tick()

	if err := sch.col.Game.Tick(); err != nil {
		return err
	}

	if t := sch.col.Modes[ctx.Mode]; t != nil {
		t.Tick()
	}

	ctx.Gametic++

	return nil
}

func (sch *Scheduler) reportTimeDemo() {
	sch.timeDemoGametic = sch.col.Ctx.Gametic - sch.timeDemoGametic
	sch.timeDemoRealtics = sch.col.Clock.Tics() - sch.timeDemoStart
	logger.Logf(logger.Allow, "gameloop", "timed %d gametics in %d realtics", sch.timeDemoGametic, sch.timeDemoRealtics)
}

// TimeDemo returns the result of a timed demo. The values are only meaningful
// after Run() has returned with the DemoFinished reason.
func (sch *Scheduler) TimeDemo() (gametics int, realtics int) {
	return sch.timeDemoGametic, sch.timeDemoRealtics
}
