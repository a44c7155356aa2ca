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

package demo

import (
	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/framebuffer"
	"github.com/jetsetilly/ticcore/gamestate"
	"github.com/jetsetilly/ticcore/logger"
)

// Sentinal errors.
const (
	MissingContent = "demo: missing %s %s"
	ContentError   = "demo: %v"
)

// Catalogue is the source of pages and demo recordings.
type Catalogue interface {
	Page(name string) (*framebuffer.Frame, error)
	HasDemo(name string) bool
}

// MusicChanger starts a new piece of music.
type MusicChanger interface {
	ChangeMusic(name string, looping bool)
}

// Sequencer steps through the sequence table. It is also the Tick() and Draw()
// handler for the DemoScreen mode.
type Sequencer struct {
	ctx       *gamestate.Context
	table     []Entry
	catalogue Catalogue
	music     MusicChanger

	// skip demo entries in the table
	DisableDemo bool

	index     int
	countdown int

	// the current page
	pageName string
	page     *framebuffer.Frame

	// pages of the table decoded before the sequence starts
	pages map[string]*framebuffer.Frame

	advance bool

	// deferred playback request
	playback        string
	playbackPending bool
}

// NewSequencer is the preferred method of initialisation for the Sequencer
// type. The music argument can be nil.
//
// The pages in the sequence table are decoded immediately. A page that cannot
// be loaded is not an error until the sequence advances to it.
func NewSequencer(ctx *gamestate.Context, edition gamestate.Edition, catalogue Catalogue, music MusicChanger) *Sequencer {
	seq := &Sequencer{
		ctx:       ctx,
		table:     Table(edition),
		catalogue: catalogue,
		music:     music,
		index:     -1,
		pages:     make(map[string]*framebuffer.Frame),
	}

	for _, e := range seq.table {
		if e.Kind != Page {
			continue
		}
		if _, ok := seq.pages[e.Content]; ok {
			continue
		}
		page, err := catalogue.Page(e.Content)
		if err == nil && page != nil {
			seq.pages[e.Content] = page
		}
	}

	return seq
}

// CycleLength returns the number of entries in the sequence.
func (seq *Sequencer) CycleLength() int {
	return len(seq.table)
}

// Index returns the index of the current entry. A value of -1 indicates that
// the sequence has not yet started.
func (seq *Sequencer) Index() int {
	return seq.index
}

// Countdown returns the number of tics remaining for the current page.
func (seq *Sequencer) Countdown() int {
	return seq.countdown
}

// PageName returns the name of the current page.
func (seq *Sequencer) PageName() string {
	return seq.pageName
}

// RequestAdvance asks for the sequence to advance to the next entry. The
// advance happens when DoAdvance() is next called.
func (seq *Sequencer) RequestAdvance() {
	seq.advance = true
}

// AdvancePending returns true if an advance has been requested.
func (seq *Sequencer) AdvancePending() bool {
	return seq.advance
}

// StartTitle restarts the sequence from the title page. The title page is
// shown when DoAdvance() is next called.
func (seq *Sequencer) StartTitle() {
	seq.index = -1
	seq.RequestAdvance()
}

// TakePlayback returns the name of a demo recording waiting to be played. The
// request is forgotten once it has been taken.
func (seq *Sequencer) TakePlayback() (string, bool) {
	if !seq.playbackPending {
		return "", false
	}
	seq.playbackPending = false
	return seq.playback, true
}

// DeferPlayback queues a playback request for the named demo recording
// outside of the normal sequence.
func (seq *Sequencer) DeferPlayback(name string) error {
	if !seq.catalogue.HasDemo(name) {
		return curated.Errorf(MissingContent, Demo, name)
	}
	seq.playback = name
	seq.playbackPending = true
	return nil
}

// DoAdvance moves to the next entry in the sequence. Missing content is an
// error.
func (seq *Sequencer) DoAdvance() error {
	seq.advance = false
	seq.ctx.UserGame = false
	seq.ctx.Paused = false

	for {
		seq.index = (seq.index + 1) % len(seq.table)
		e := seq.table[seq.index]

		switch e.Kind {
		case Page:
			page, ok := seq.pages[e.Content]
			if !ok {
				var err error
				page, err = seq.catalogue.Page(e.Content)
				if err != nil {
					return curated.Errorf(ContentError, err)
				}
				if page == nil {
					return curated.Errorf(MissingContent, e.Kind, e.Content)
				}
			}
			seq.page = page
			seq.pageName = e.Content
			seq.countdown = e.Duration
			seq.ctx.Mode = gamestate.DemoScreen

			if e.Music != "" && seq.music != nil {
				seq.music.ChangeMusic(e.Music, false)
			}

			return nil

		case Demo:
			if seq.DisableDemo {
				continue
			}
			if !seq.catalogue.HasDemo(e.Content) {
				return curated.Errorf(MissingContent, e.Kind, e.Content)
			}
			seq.playback = e.Content
			seq.playbackPending = true
			logger.Logf(logger.Allow, "demo", "deferred playback of %s", e.Content)

			return nil
		}
	}
}

// Tick counts down the time the current page is shown for and requests an
// advance when the time has expired.
func (seq *Sequencer) Tick() {
	seq.countdown--
	if seq.countdown < 0 {
		seq.RequestAdvance()
	}
}

// Draw the current page.
func (seq *Sequencer) Draw(screen *framebuffer.Frame) {
	if seq.page == nil {
		screen.Fill(framebuffer.Black)
		return
	}
	screen.Copy(seq.page)
}
