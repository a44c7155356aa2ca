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

package sdlscreen

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/events"
	"github.com/jetsetilly/ticcore/framebuffer"
	"github.com/jetsetilly/ticcore/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal errors.
const (
	ScreenClosed = "sdlscreen: screen has been closed"
)

const windowTitle = "Ticcore"

// Options for the Screen.
type Options struct {
	// the size of the window as a multiple of the screen size
	Scale int

	// draw with OpenGL rather than the SDL renderer
	GL bool

	// presentation waits for the vertical retrace and Present() does not
	// return until the frame has been shown
	Vsync bool

	// initialise the SDL audio subsystem for use by the sdlaudio package
	Audio bool
}

// the method of drawing the pixels to the window
type backend interface {
	present(pixels []byte, pitch int) error
	destroy()
}

// Screen is an SDL window showing the most recently presented frame.
type Screen struct {
	opts   Options
	queue  *events.Queue
	window *sdl.Window
	mode   sdl.DisplayMode
	draw   backend

	// the most recent frame converted by Present(). accessed by the main
	// thread and the game loop
	crit    sync.Mutex
	staging *image.RGBA
	pending bool
	lastErr error

	// signalled by Service() when a pending frame has been presented. used
	// only with vsync
	presented chan struct{}

	// closed by Destroy()
	closed chan struct{}
}

// NewScreen creates the window. Must be called from the main thread. Input
// events are posted to the queue.
func NewScreen(opts Options, queue *events.Queue) (*Screen, error) {
	if opts.Scale < 1 {
		opts.Scale = 1
	}

	var subsystems uint32 = sdl.INIT_VIDEO | sdl.INIT_EVENTS
	if opts.Audio {
		subsystems |= sdl.INIT_AUDIO
	}

	err := sdl.Init(subsystems)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdlscreen", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	scr := &Screen{
		opts:      opts,
		queue:     queue,
		staging:   image.NewRGBA(image.Rect(0, 0, framebuffer.Width, framebuffer.Height)),
		presented: make(chan struct{}, 1),
		closed:    make(chan struct{}),
	}

	scr.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlscreen: %v", err)
	}
	logger.Logf(logger.Allow, "sdlscreen", "refresh rate: %dHz", scr.mode.RefreshRate)

	var flags uint32 = sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI
	if opts.GL {
		flags |= sdl.WINDOW_OPENGL
	}

	scr.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(framebuffer.Width*opts.Scale), int32(framebuffer.Height*opts.Scale),
		flags)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	if opts.GL {
		scr.draw, err = newGLBackend(scr.window, opts.Vsync)
	} else {
		scr.draw, err = newRendererBackend(scr.window, opts.Vsync)
	}
	if err != nil {
		scr.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	// motion events are not used and would fill the SDL event queue
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	return scr, nil
}

// DisplayRefreshRate implements the limiter.Display interface.
func (scr *Screen) DisplayRefreshRate() (float32, bool) {
	if scr.mode.RefreshRate <= 0 {
		return 0, false
	}
	return float32(scr.mode.RefreshRate), true
}

// Present implements the display.Presenter interface. The frame is converted
// immediately and is shown the next time Service() is called. The error from
// the previous presentation, if any, is returned.
func (scr *Screen) Present(f *framebuffer.Frame) error {
	select {
	case <-scr.closed:
		return curated.Errorf(ScreenClosed)
	default:
	}

	scr.crit.Lock()
	f.RGBA(scr.staging)
	scr.pending = true
	err := scr.lastErr
	scr.lastErr = nil
	scr.crit.Unlock()

	if err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}

	if scr.opts.Vsync {
		select {
		case <-scr.presented:
		case <-scr.closed:
			return curated.Errorf(ScreenClosed)
		}
	}

	return nil
}

// Service handles window events and draws any pending frame. Must be called
// from the main thread.
func (scr *Screen) Service() {
	// waiting a short time for the first event stops the main thread from
	// spinning
	for ev := sdl.WaitEventTimeout(1); ev != nil; ev = sdl.PollEvent() {
		scr.handleEvent(ev)
	}

	scr.crit.Lock()
	defer scr.crit.Unlock()

	if !scr.pending {
		return
	}
	scr.pending = false

	if err := scr.draw.present(scr.staging.Pix, scr.staging.Stride); err != nil {
		scr.lastErr = err
	}

	if scr.opts.Vsync {
		select {
		case scr.presented <- struct{}{}:
		default:
		}
	}
}

func (scr *Screen) handleEvent(ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		scr.queue.Post(events.Event{Kind: events.Quit})

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			return
		}
		key, ok := translateKey(ev.Keysym.Sym)
		if !ok {
			return
		}
		switch ev.Type {
		case sdl.KEYDOWN:
			scr.queue.Post(events.Event{Kind: events.KeyDown, Data1: key})
		case sdl.KEYUP:
			scr.queue.Post(events.Event{Kind: events.KeyUp, Data1: key})
		}

	case *sdl.MouseButtonEvent:
		var buttons int
		if ev.State == sdl.PRESSED {
			buttons = 1 << (ev.Button - 1)
		}
		scr.queue.Post(events.Event{Kind: events.Mouse, Data1: buttons})
	}
}

// Destroy implements the GuiCreator interface. Must be called from the main
// thread.
func (scr *Screen) Destroy(output io.Writer) {
	select {
	case <-scr.closed:
		return
	default:
	}
	close(scr.closed)

	scr.crit.Lock()
	defer scr.crit.Unlock()

	scr.draw.destroy()
	if err := scr.window.Destroy(); err != nil && output != nil {
		fmt.Fprintf(output, "sdlscreen: %v\n", err)
	}
	sdl.Quit()
}
