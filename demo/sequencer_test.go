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

package demo_test

import (
	"testing"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/demo"
	"github.com/jetsetilly/ticcore/framebuffer"
	"github.com/jetsetilly/ticcore/gamestate"
	"github.com/jetsetilly/ticcore/test"
)

// catalogue has every page and demo unless told otherwise
type catalogue struct {
	missing map[string]bool
	loaded  []string
}

func (c *catalogue) Page(name string) (*framebuffer.Frame, error) {
	if c.missing[name] {
		return nil, nil
	}
	c.loaded = append(c.loaded, name)
	f := framebuffer.NewFrame(nil)
	f.Fill(uint8(len(name)))
	return f, nil
}

func (c *catalogue) HasDemo(name string) bool {
	return !c.missing[name]
}

type music struct {
	changes []string
}

func (m *music) ChangeMusic(name string, looping bool) {
	m.changes = append(m.changes, name)
}

func newSequencer(mode gamestate.GameMode) (*demo.Sequencer, *gamestate.Context, *catalogue, *music) {
	ctx := gamestate.NewContext()
	cat := &catalogue{missing: make(map[string]bool)}
	mus := &music{}
	seq := demo.NewSequencer(ctx, gamestate.Edition{Mode: mode}, cat, mus)
	return seq, ctx, cat, mus
}

func TestCycleLength(t *testing.T) {
	for _, c := range []struct {
		mode   gamestate.GameMode
		length int
	}{
		{gamestate.Shareware, 6},
		{gamestate.Registered, 6},
		{gamestate.Retail, 7},
		{gamestate.Commercial, 6},
	} {
		seq, _, _, _ := newSequencer(c.mode)
		test.ExpectEquality(t, seq.CycleLength(), c.length, c.mode)

		seq.StartTitle()
		test.DemandSuccess(t, seq.DoAdvance())
		test.ExpectEquality(t, seq.Index(), 0)

		for range c.length {
			seq.RequestAdvance()
			test.DemandSuccess(t, seq.DoAdvance())
		}
		test.ExpectEquality(t, seq.Index(), 0, c.mode)
	}
}

func TestRetailSequence(t *testing.T) {
	seq, ctx, _, mus := newSequencer(gamestate.Retail)
	seq.StartTitle()

	test.ExpectSuccess(t, seq.AdvancePending())
	test.DemandSuccess(t, seq.DoAdvance())
	test.ExpectFailure(t, seq.AdvancePending())
	test.ExpectEquality(t, seq.PageName(), demo.TitlePic)
	test.ExpectEquality(t, seq.Countdown(), 170)
	test.ExpectEquality(t, ctx.Mode, gamestate.DemoScreen)
	test.ExpectEquality(t, mus.changes[0], demo.MusicIntro)

	_, ok := seq.TakePlayback()
	test.ExpectFailure(t, ok)

	expected := []struct {
		kind    demo.Kind
		content string
	}{
		{demo.Demo, "demo1"},
		{demo.Page, demo.Credit},
		{demo.Demo, "demo2"},
		{demo.Page, demo.Credit},
		{demo.Demo, "demo3"},
		{demo.Demo, "demo4"},
		{demo.Page, demo.TitlePic},
	}

	for _, e := range expected {
		test.DemandSuccess(t, seq.DoAdvance())
		switch e.kind {
		case demo.Demo:
			name, ok := seq.TakePlayback()
			test.ExpectSuccess(t, ok)
			test.ExpectEquality(t, name, e.content)

			// the request is only taken once
			_, ok = seq.TakePlayback()
			test.ExpectFailure(t, ok)
		case demo.Page:
			test.ExpectEquality(t, seq.PageName(), e.content)
		}
	}
}

func TestCommercialSequence(t *testing.T) {
	seq, _, _, mus := newSequencer(gamestate.Commercial)
	seq.StartTitle()
	test.DemandSuccess(t, seq.DoAdvance())
	test.ExpectEquality(t, seq.Countdown(), 35*11)
	test.ExpectEquality(t, mus.changes[0], demo.MusicDoom2)

	// the fifth entry is the title page again, with the music restarted
	for range 4 {
		test.DemandSuccess(t, seq.DoAdvance())
	}
	test.ExpectEquality(t, seq.PageName(), demo.TitlePic)
	test.ExpectEquality(t, len(mus.changes), 2)
}

func TestSharewareHelpPage(t *testing.T) {
	seq, _, _, _ := newSequencer(gamestate.Shareware)
	seq.StartTitle()
	for range 5 {
		test.DemandSuccess(t, seq.DoAdvance())
	}
	test.ExpectEquality(t, seq.Index(), 4)
	test.ExpectEquality(t, seq.PageName(), demo.Help2)
	test.ExpectEquality(t, seq.Countdown(), 200)
}

func TestBFGTitle(t *testing.T) {
	ctx := gamestate.NewContext()
	seq := demo.NewSequencer(ctx, gamestate.Edition{Mode: gamestate.Commercial, BFG: true}, &catalogue{}, nil)
	seq.StartTitle()
	test.DemandSuccess(t, seq.DoAdvance())
	test.ExpectEquality(t, seq.PageName(), demo.BFGTitlePic)
}

func TestPageTicker(t *testing.T) {
	seq, _, _, _ := newSequencer(gamestate.Registered)
	seq.StartTitle()
	test.DemandSuccess(t, seq.DoAdvance())

	// the advance is requested when the countdown goes negative
	for range 170 {
		seq.Tick()
	}
	test.ExpectFailure(t, seq.AdvancePending())
	seq.Tick()
	test.ExpectSuccess(t, seq.AdvancePending())
}

func TestAdvanceResetsContext(t *testing.T) {
	seq, ctx, _, _ := newSequencer(gamestate.Registered)
	ctx.UserGame = true
	ctx.Paused = true
	ctx.Mode = gamestate.Level

	seq.StartTitle()
	test.DemandSuccess(t, seq.DoAdvance())
	test.ExpectFailure(t, ctx.UserGame)
	test.ExpectFailure(t, ctx.Paused)
	test.ExpectEquality(t, ctx.Mode, gamestate.DemoScreen)
}

func TestDisableDemo(t *testing.T) {
	seq, _, _, _ := newSequencer(gamestate.Registered)
	seq.DisableDemo = true
	seq.StartTitle()

	pages := []string{demo.TitlePic, demo.Credit, demo.Help2, demo.TitlePic}
	for _, p := range pages {
		test.DemandSuccess(t, seq.DoAdvance())
		test.ExpectEquality(t, seq.PageName(), p)
		_, ok := seq.TakePlayback()
		test.ExpectFailure(t, ok)
	}
}

func TestPagesDecodedBeforeStart(t *testing.T) {
	seq, _, cat, _ := newSequencer(gamestate.Retail)

	// the title and credit pages are each decoded once, before the sequence
	// starts
	test.DemandEquality(t, len(cat.loaded), 2)
	test.ExpectEquality(t, cat.loaded[0], demo.TitlePic)
	test.ExpectEquality(t, cat.loaded[1], demo.Credit)

	seq.StartTitle()
	for range 2 * seq.CycleLength() {
		test.DemandSuccess(t, seq.DoAdvance())
	}
	test.ExpectEquality(t, len(cat.loaded), 2)
}

func TestMissingContent(t *testing.T) {
	ctx := gamestate.NewContext()
	cat := &catalogue{missing: map[string]bool{
		demo.Credit: true,
		"demo1":     true,
	}}
	seq := demo.NewSequencer(ctx, gamestate.Edition{Mode: gamestate.Registered}, cat, nil)

	seq.StartTitle()
	test.DemandSuccess(t, seq.DoAdvance())

	err := seq.DoAdvance()
	test.ExpectSuccess(t, curated.Is(err, demo.MissingContent))

	err = seq.DoAdvance()
	test.ExpectSuccess(t, curated.Is(err, demo.MissingContent))

	err = seq.DeferPlayback("demo1")
	test.ExpectSuccess(t, curated.Is(err, demo.MissingContent))
	test.DemandSuccess(t, seq.DeferPlayback("demo2"))
	name, ok := seq.TakePlayback()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, name, "demo2")
}

func TestDraw(t *testing.T) {
	seq, _, _, _ := newSequencer(gamestate.Registered)
	screen := framebuffer.NewFrame(nil)
	screen.Fill(framebuffer.White)

	// nothing to draw before the sequence starts
	seq.Draw(screen)
	test.ExpectEquality(t, screen.At(0, 0), framebuffer.Black)

	seq.StartTitle()
	test.DemandSuccess(t, seq.DoAdvance())
	seq.Draw(screen)
	test.ExpectEquality(t, screen.At(0, 0), uint8(len(demo.TitlePic)))
}
