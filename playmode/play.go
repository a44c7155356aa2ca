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
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/jetsetilly/ticcore/console"
	"github.com/jetsetilly/ticcore/content"
	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/demo"
	"github.com/jetsetilly/ticcore/display"
	"github.com/jetsetilly/ticcore/events"
	"github.com/jetsetilly/ticcore/framebuffer"
	"github.com/jetsetilly/ticcore/gameloop"
	"github.com/jetsetilly/ticcore/gameprefs"
	"github.com/jetsetilly/ticcore/gamestate"
	"github.com/jetsetilly/ticcore/limiter"
	"github.com/jetsetilly/ticcore/logger"
	"github.com/jetsetilly/ticcore/melt"
	"github.com/jetsetilly/ticcore/netsession"
	"github.com/jetsetilly/ticcore/random"
	"github.com/jetsetilly/ticcore/soundload"
	"github.com/jetsetilly/ticcore/speaker"
)

// size of the music buffer in samples and the number of segments it is
// divided into
const (
	musicBufferSize = 4096
	musicDivisions  = 4
)

// Screen is where the game is presented. The refresh rate of the screen is
// used by the frame limiter.
type Screen interface {
	display.Presenter
	limiter.Display
}

// Config of a play session.
type Config struct {
	Prefs *gameprefs.Preferences
	Pack  content.Pack

	// use the title page of the BFG edition
	BFG bool

	// audio output. can be nil
	Line speaker.Line

	// address of the spectator feed. empty for no feed
	Spectate string

	// play the named demo and quit when it has finished. if TimeDemo is true
	// the playback is timed
	PlayDemo string
	TimeDemo bool

	// startup messages are printed under the title bar. can be nil
	Console console.Printer
}

// Result of a play session.
type Result struct {
	Reason gameloop.TerminationReason

	// the result of a timed demo
	GameTics int
	RealTics int
}

// FPS returns the frame rate of a timed demo.
func (r Result) FPS() float64 {
	if r.RealTics == 0 {
		return 0
	}
	return float64(r.GameTics) * limiter.TicRate / float64(r.RealTics)
}

func (r Result) String() string {
	if r.Reason == gameloop.DemoFinished && r.RealTics > 0 {
		return fmt.Sprintf("timed %d gametics in %d realtics (%.1f fps)", r.GameTics, r.RealTics, r.FPS())
	}
	return r.Reason.String()
}

// limitedPresenter applies the frame limiter to every frame presented
type limitedPresenter struct {
	scr  display.Presenter
	lmtr *limiter.Limiter
}

func (p limitedPresenter) Present(f *framebuffer.Frame) error {
	p.lmtr.CheckFrame()
	err := p.scr.Present(f)
	p.lmtr.MeasureActual()
	return err
}

// Play runs the game until it is quit, the context is cancelled or, if a
// single demo was requested, the demo ends. Input events must be posted to
// the queue by the caller.
func Play(ctx context.Context, cfg Config, scr Screen, queue *events.Queue) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	prefs := cfg.Prefs

	edition := cfg.Pack.Edition
	edition.BFG = edition.BFG || cfg.BFG

	step := func(string) {}
	if cfg.Console != nil {
		step = console.NewBanner(cfg.Console, edition).Step
	}

	step("framebuffer: allocate screens\n")
	gctx := gamestate.NewContext()
	screen := framebuffer.NewFrame(nil)

	step(fmt.Sprintf("content: init %s\n", cfg.Pack.Dir))
	cat := content.NewCatalogue(cfg.Pack.Dir, screen.Palettes())

	step("limiter: init tic clock\n")
	clock := limiter.NewTicClock()
	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()
	lmtr.SetDisplay(scr)
	lmtr.Active.Store(!prefs.UncappedFPS.Get().(bool) && !cfg.TimeDemo)

	step("netsession: checking network game status\n")
	session, err := startSession(ctx, cfg.Spectate)
	if err != nil {
		return Result{Reason: gameloop.Fatal}, err
	}

	step("speaker: setting up sound\n")
	eng := speaker.NewEngine(speaker.NewTickerTimer(), speaker.DefaultSampleRate)
	defer eng.Shutdown()
	if err := eng.Init(cfg.Line); err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}
	mus := newMusic(eng, soundload.NewStreamer(musicBufferSize, musicDivisions), cat)

	step("demo: init demo sequence\n")
	seq := demo.NewSequencer(gctx, edition, cat, mus)
	seq.DisableDemo = prefs.DisableDemo.Get().(bool)

	blocks := func() int {
		return prefs.ScreenBlocks.Get().(int)
	}
	resize := func(delta int) {
		prefs.SetScreenBlocks(blocks() + delta)
		gctx.ResizePending = true
	}

	v := newView(blocks)
	g := newGame(gctx, edition, cat, seq, v, session, mus, resize)
	g.log = logger.NewGate(!cfg.TimeDemo)
	m := newMenu(gctx, g)

	step("display: init display compositor\n")
	cmp := display.NewCompositor(gctx, screen, display.Collaborators{
		Level:      v,
		Page:       seq,
		Menu:       m,
		Presenter:  limitedPresenter{scr: scr, lmtr: lmtr},
		Net:        session,
		Transition: melt.NewMelt(screen, random.NewRandom(clock)),
		Clock:      clock,
		FrameRate:  lmtr,
	})
	cmp.Options = display.Options{
		NoMelt:          prefs.NoMelt.Get().(bool),
		SimpleStatusBar: prefs.SimpleStatusBar.Get().(bool),
		ShowFPS:         prefs.ShowFPS.Get().(bool),
	}

	var modes [gamestate.NumModes]gameloop.Ticker
	modes[gamestate.Level] = v
	modes[gamestate.DemoScreen] = seq

	sch := gameloop.NewScheduler(gameloop.Config{
		SingleTics: prefs.SingleTics.Get().(bool),
		TimeDemo:   cfg.TimeDemo,
	}, gameloop.Collaborators{
		Ctx:       gctx,
		Events:    queue,
		Menu:      m,
		Game:      g,
		Modes:     modes,
		Sequencer: seq,
		Sound:     mus,
		Display:   cmp,
		Clock:     clock,
	})

	if cfg.PlayDemo != "" {
		gctx.SingleDemo = true
		if err := seq.DeferPlayback(cfg.PlayDemo); err != nil {
			return Result{Reason: gameloop.Fatal}, curated.Errorf(PlayError, err)
		}
	} else {
		seq.StartTitle()
	}

	reason, err := sch.Run(func() bool {
		select {
		case <-ctx.Done():
			return true
		default:
		}
		return false
	})

	res := Result{Reason: reason}
	if cfg.TimeDemo {
		res.GameTics, res.RealTics = sch.TimeDemo()
	}

	if err != nil {
		return res, curated.Errorf(PlayError, err)
	}

	return res, nil
}

// startSession returns a session that sends tic commands to spectators. if
// the address is empty the session does nothing.
func startSession(ctx context.Context, address string) (*netsession.Session, error) {
	if address == "" {
		return netsession.NewSession(nil), nil
	}

	ln, err := net.Listen("tcp", address)
	if err != nil {
		return nil, curated.Errorf(PlayError, err)
	}

	hub := netsession.NewHub()
	go hub.Run(ctx)

	srv := &http.Server{Handler: hub}
	go func() {
		err := srv.Serve(ln)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logf(logger.Allow, "playmode", "spectator feed: %v", err)
		}
	}()
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	logger.Logf(logger.Allow, "playmode", "spectator feed on %s", address)

	return netsession.NewSession(hub), nil
}
