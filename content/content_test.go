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

package content_test

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/ticcore/content"
	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/framebuffer"
	"github.com/jetsetilly/ticcore/gamestate"
	"github.com/jetsetilly/ticcore/test"
	"golang.org/x/image/bmp"
)

func makePack(t *testing.T, root string, name string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	for _, sub := range []string{"pages", "demos", "music"} {
		test.DemandSuccess(t, os.MkdirAll(filepath.Join(dir, sub), 0o755))
	}
	return dir
}

func writePage(t *testing.T, dir string, name string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	var b bytes.Buffer
	test.DemandSuccess(t, bmp.Encode(&b, img))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "pages", name+".bmp"), b.Bytes(), 0o644))
}

func recording(players int, tics int) []byte {
	b := []byte{109, 2, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	for i := range players {
		b[9+i] = 1
	}
	for tic := range tics {
		for p := range players {
			b = append(b, byte(tic), byte(p), 0x02, 0x01)
		}
	}
	return append(b, 0x80)
}

type keys struct {
	key byte
}

func (k keys) Getch() (byte, error) {
	return k.key, nil
}

func TestIdentify(t *testing.T) {
	root := t.TempDir()
	makePack(t, root, "doom2")
	makePack(t, root, "doom1")
	makePack(t, root, "unknown")

	found := content.Identify(root)
	test.DemandEquality(t, len(found), 2)

	// packs are found in menu order
	test.ExpectEquality(t, found[0].Name, "doom1")
	test.ExpectEquality(t, found[0].Edition.Mode, gamestate.Shareware)
	test.ExpectEquality(t, found[1].Name, "doom2")
	test.ExpectEquality(t, found[1].Edition.Mode, gamestate.Commercial)
	test.ExpectEquality(t, found[1].Dir, filepath.Join(root, "doom2"))

	test.ExpectEquality(t, len(content.Identify(t.TempDir())), 0)
}

func TestExplicit(t *testing.T) {
	root := t.TempDir()

	p, err := content.Explicit(makePack(t, root, "tnt"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Edition.Mission, gamestate.TNT)
	test.ExpectEquality(t, p.Edition.CompLevel, gamestate.CompFinalDoom)

	// unknown packs are treated as doom 2
	p, err = content.Explicit(makePack(t, root, "mypack"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Name, "mypack")
	test.ExpectEquality(t, p.Edition.Mode, gamestate.Commercial)
	test.ExpectEquality(t, p.Edition.Mission, gamestate.Doom2)

	_, err = content.Explicit(filepath.Join(root, "missing"))
	test.ExpectSuccess(t, curated.Is(err, content.PackNotFound))
}

func TestSelect(t *testing.T) {
	root := t.TempDir()
	makePack(t, root, "doomu")

	// a single pack is selected without a prompt
	w := &strings.Builder{}
	p, err := content.Select(root, content.Identify(root), nil, w)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Name, "doomu")
	test.ExpectEquality(t, w.String(), "")

	makePack(t, root, "plutonia")
	found := content.Identify(root)

	p, err = content.Select(root, found, keys{key: '5'}, w)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Name, "plutonia")
	test.ExpectSuccess(t, strings.Contains(w.String(), "3. The Ultimate DOOM"))
	test.ExpectSuccess(t, strings.Contains(w.String(), "5. DOOM II: Plutonia Experiment"))

	// a key for a pack that was not found
	_, err = content.Select(root, found, keys{key: '1'}, w)
	test.ExpectSuccess(t, curated.Is(err, content.PackNotFound))

	_, err = content.Select(root, nil, nil, w)
	test.ExpectSuccess(t, curated.Is(err, content.NoContent))
}

func TestPage(t *testing.T) {
	dir := makePack(t, t.TempDir(), "doom2")
	pal := framebuffer.DefaultPalettes()
	red := pal[framebuffer.PaletteNormal][framebuffer.Red]

	writePage(t, dir, "TITLEPIC", framebuffer.Width, framebuffer.Height, red)
	writePage(t, dir, "CREDIT", 160, 100, red)

	cat := content.NewCatalogue(dir, pal)
	test.ExpectSuccess(t, cat.HasPage("TITLEPIC"))
	test.ExpectFailure(t, cat.HasPage("HELP2"))

	for _, name := range []string{"TITLEPIC", "CREDIT"} {
		p, err := cat.Page(name)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, p.Color(p.At(0, 0)), red, name)
		test.ExpectEquality(t, p.Color(p.At(framebuffer.Width-1, framebuffer.Height-1)), red, name)
	}

	// pages are cached
	a, _ := cat.Page("TITLEPIC")
	b, _ := cat.Page("TITLEPIC")
	test.ExpectEquality(t, a, b)

	_, err := cat.Page("HELP2")
	test.ExpectSuccess(t, curated.Is(err, content.MissingContent))
}

func TestBadPage(t *testing.T) {
	dir := makePack(t, t.TempDir(), "doom2")
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "pages", "TITLEPIC.bmp"), []byte("not a bmp"), 0o644))

	cat := content.NewCatalogue(dir, nil)
	_, err := cat.Page("TITLEPIC")
	test.ExpectSuccess(t, curated.Is(err, content.BadPage))
}

func TestDemo(t *testing.T) {
	dir := makePack(t, t.TempDir(), "doom2")
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "demos", "demo1.lmp"), recording(2, 10), 0o644))

	cat := content.NewCatalogue(dir, nil)
	test.ExpectSuccess(t, cat.HasDemo("demo1"))
	test.ExpectFailure(t, cat.HasDemo("demo2"))

	rec, err := cat.Demo("demo1")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, rec.Name, "demo1")
	test.ExpectEquality(t, rec.Skill, 2)
	test.ExpectEquality(t, rec.NumPlayers(), 2)
	test.ExpectEquality(t, rec.Len(), 10)

	cmds, ok := rec.Tic(7)
	test.DemandSuccess(t, ok)
	test.DemandEquality(t, len(cmds), 2)
	test.ExpectEquality(t, cmds[1], gamestate.TicCmd{Forward: 7, Side: 1, AngleTurn: 0x0200, Buttons: 0x01})

	_, ok = rec.Tic(10)
	test.ExpectFailure(t, ok)

	_, err = cat.Demo("demo2")
	test.ExpectSuccess(t, curated.Is(err, content.MissingContent))
}

func TestParseRecording(t *testing.T) {
	_, err := content.ParseRecording(bytes.NewReader(recording(1, 0)))
	test.ExpectSuccess(t, err)

	b := recording(1, 5)
	b[0] = 110
	_, err = content.ParseRecording(bytes.NewReader(b))
	test.ExpectSuccess(t, curated.Is(err, content.DemoVersion))

	b = recording(1, 5)
	_, err = content.ParseRecording(bytes.NewReader(b[:len(b)-1]))
	test.ExpectSuccess(t, curated.Is(err, content.DemoFormat))

	b = recording(2, 5)
	_, err = content.ParseRecording(bytes.NewReader(append(b[:len(b)-1], 0x01, 0x02, 0x03)))
	test.ExpectSuccess(t, curated.Is(err, content.DemoFormat))

	_, err = content.ParseRecording(bytes.NewReader(recording(0, 0)))
	test.ExpectSuccess(t, curated.Is(err, content.DemoFormat))

	_, err = content.ParseRecording(bytes.NewReader([]byte{109, 0, 0}))
	test.ExpectSuccess(t, curated.Is(err, content.DemoFormat))
}

func TestMusic(t *testing.T) {
	dir := makePack(t, t.TempDir(), "doom2")
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "music", "dm2ttl.mp3"), []byte{}, 0o644))

	cat := content.NewCatalogue(dir, nil)
	pth, ok := cat.Music("dm2ttl")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, pth, filepath.Join(dir, "music", "dm2ttl.mp3"))

	_, ok = cat.Music("intro")
	test.ExpectFailure(t, ok)
}
