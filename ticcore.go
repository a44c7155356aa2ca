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


package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/ticcore/console"
	"github.com/jetsetilly/ticcore/console/easyterm"
	"github.com/jetsetilly/ticcore/content"
	"github.com/jetsetilly/ticcore/events"
	"github.com/jetsetilly/ticcore/gameloop"
	"github.com/jetsetilly/ticcore/gameprefs"
	"github.com/jetsetilly/ticcore/gui/otoaudio"
	"github.com/jetsetilly/ticcore/gui/sdlaudio"
	"github.com/jetsetilly/ticcore/gui/sdlscreen"
	"github.com/jetsetilly/ticcore/logger"
	"github.com/jetsetilly/ticcore/modalflag"
	"github.com/jetsetilly/ticcore/paths"
	"github.com/jetsetilly/ticcore/playmode"
	"github.com/jetsetilly/ticcore/prefs"
	"github.com/jetsetilly/ticcore/speaker"
	"github.com/jetsetilly/ticcore/statsview"
	"github.com/jetsetilly/ticcore/version"
	"github.com/jetsetilly/ticcore/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the play session handles
	// the interrupt itself
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// There is no Create() function. Instead the creator is a channel which
// accepts a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// by called as part of a larger loop from the main thread. It should
	// service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this
// is required because SDL requires window event handling (including creation)
// to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// exit codes
const (
	exitParseError = 10
	exitModeError  = 20
)

// number of events that can be waiting in the event queue
const eventQueueSize = 64

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// the creator may return a typed nil
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "PLAYDEMO", "TIMEDEMO", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: exitParseError}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync, false, false)

	case "PLAYDEMO":
		err = run(md, sync, true, false)

	case "TIMEDEMO":
		err = run(md, sync, true, true)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: exitModeError}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// the command line flags that have a preference equivalent. the values are
// pushed onto the prefs command line stack for the duration of the run
type prefFlags struct {
	nomelt          *bool
	singletics      *bool
	vsync           *bool
	uncapped        *bool
	simpleStatusBar *bool
	disableDemo     *bool
	fps             *bool
	size            *int
}

func (f prefFlags) commandLine(extra string) string {
	var s []string
	if extra != "" {
		s = append(s, extra)
	}

	add := func(key string, set *bool) {
		if *set {
			s = append(s, fmt.Sprintf("%s::true", key))
		}
	}
	add("game.nomelt", f.nomelt)
	add("game.singletics", f.singletics)
	add("game.vsync", f.vsync)
	add("game.uncapped", f.uncapped)
	add("game.simplestatusbar", f.simpleStatusBar)
	add("game.disabledemo", f.disableDemo)
	add("game.showfps", f.fps)

	if *f.size > 0 {
		s = append(s, fmt.Sprintf("game.screenblocks::%d", *f.size))
	}

	return strings.Join(s, "; ")
}

func run(md *modalflag.Modes, sync *mainSync, needDemo bool, timeDemo bool) error {
	md.NewMode()

	var pf prefFlags
	iwad := md.AddString("iwad", "", "content pack directory")
	pf.nomelt = md.AddBool("nomelt", false, "disable the screen melt")
	pf.singletics = md.AddBool("singletics", false, "run exactly one tic per frame")
	pf.vsync = md.AddBool("vsync", false, "wait for vertical sync")
	pf.uncapped = md.AddBool("uncapped", false, "do not limit the frame rate")
	pf.simpleStatusBar = md.AddBool("simplestatusbar", false, "draw the status bar without a background")
	pf.disableDemo = md.AddBool("disabledemo", false, "skip demos in the demo sequence")
	pf.fps = md.AddBool("fps", false, "show the frame rate")
	pf.size = md.AddInt("size", 0, fmt.Sprintf("screen size (%d to %d)", gameprefs.MinScreenBlocks, gameprefs.MaxScreenBlocks))
	bfg := md.AddBool("bfg", false, "use the BFG edition title page")
	scale := md.AddInt("scale", 2, "window scale")
	useGL := md.AddBool("gl", false, "present with OpenGL")
	audio := md.AddString("audio", "sdl", "audio output: sdl, oto, none")
	wav := md.AddString("wav", "", "record audio to wav file instead of playing it (AUTO for a generated name)")
	spectate := md.AddString("spectate", "", "address of the spectator feed (eg. :8080)")
	extraPrefs := md.AddString("prefs", "", "preferences for this run (key::value; key::value)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var demoName string
	switch len(md.RemainingArgs()) {
	case 0:
		if needDemo {
			return fmt.Errorf("demo name required for %s mode", md)
		}
	case 1:
		if !needDemo {
			return fmt.Errorf("too many arguments for %s mode", md)
		}
		demoName = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stdout), true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			stop := statsview.Launch(os.Stdout, statsview.DefaultAddress)
			defer stop()
		} else {
			fmt.Println("! statsview not available in this build")
		}
	}

	// flags override the preferences file for this run only. the preferences
	// are not saved if anything has been overridden
	override := pf.commandLine(*extraPrefs)
	if override != "" {
		prefs.PushCommandLineStack(override)
	}

	gprefs, err := gameprefs.NewPreferences()
	if err != nil {
		return err
	}

	if override != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			fmt.Printf("! unused preferences: %s\n", unused)
		}
	}

	// the console is used for the title bar and for selecting the content
	var out console.Printer
	var keys content.KeyReader
	if term, err := easyterm.NewTerminal(os.Stdin, os.Stdout); err == nil {
		out = term
		keys = term
	} else {
		out = console.Plain{W: os.Stdout}
	}

	var pack content.Pack
	if *iwad != "" {
		pack, err = content.Explicit(*iwad)
	} else {
		pack, err = content.Select(".", content.Identify("."), keys, os.Stdout)
	}
	if err != nil {
		return err
	}

	queue, err := events.NewQueue(eventQueueSize)
	if err != nil {
		return err
	}

	opts := sdlscreen.Options{
		Scale: *scale,
		GL:    *useGL,
		Vsync: gprefs.WaitVsync.Get().(bool),
		Audio: *audio == "sdl" && *wav == "",
	}

	sync.creator <- func() (GuiCreator, error) {
		return sdlscreen.NewScreen(opts, queue)
	}

	var scr *sdlscreen.Screen
	select {
	case g := <-sync.creation:
		scr = g.(*sdlscreen.Screen)
	case err := <-sync.creationError:
		return err
	}

	line, err := audioLine(*audio, *wav, pack.Name)
	if err != nil {
		return err
	}
	defer closeLine(line)

	// the play session handles the interrupt signal so that it can end
	// cleanly
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := playmode.Play(ctx, playmode.Config{
		Prefs:    gprefs,
		Pack:     pack,
		BFG:      *bfg,
		Line:     line,
		Spectate: *spectate,
		PlayDemo: demoName,
		TimeDemo: timeDemo,
		Console:  out,
	}, scr, queue)
	if err != nil {
		return err
	}

	if timeDemo && res.Reason == gameloop.DemoFinished {
		fmt.Println(res)
	}

	if override == "" {
		return gprefs.Save()
	}

	return nil
}

// audioLine returns the output line for the speaker engine. a wav file takes
// precedence over the audio device
func audioLine(device string, wav string, packName string) (speaker.Line, error) {
	if strings.ToUpper(wav) == "AUTO" {
		wav = fmt.Sprintf("%s.wav", paths.UniqueFilename("speaker", packName))
	}
	if wav != "" {
		fmt.Printf("! recording audio to %s\n", wav)
		return wavwriter.NewLine(wav, speaker.DefaultSampleRate), nil
	}

	switch strings.ToLower(device) {
	case "sdl":
		return sdlaudio.NewLine(speaker.DefaultSampleRate), nil
	case "oto":
		return otoaudio.NewLine(speaker.DefaultSampleRate), nil
	case "none", "":
		return nil, nil
	}

	return nil, fmt.Errorf("unknown audio output (%s)", device)
}

func closeLine(line speaker.Line) {
	switch ln := line.(type) {
	case interface{ Close() error }:
		if err := ln.Close(); err != nil {
			fmt.Printf("* error closing audio: %v\n", err)
		}
	case interface{ Close() }:
		ln.Close()
	}
}
