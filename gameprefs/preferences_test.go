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

package gameprefs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/ticcore/gameprefs"
	"github.com/jetsetilly/ticcore/prefs"
	"github.com/jetsetilly/ticcore/test"
)

func TestDefaults(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")
	p, err := gameprefs.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.NoMelt.Get().(bool))
	test.ExpectEquality(t, p.ScreenBlocks.Get().(int), gameprefs.DefaultScreenBlocks)

	// the preferences file is created on first load
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestScreenBlocks(t *testing.T) {
	p, err := gameprefs.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.ScreenBlocks.Set(2))
	test.ExpectFailure(t, p.ScreenBlocks.Set(13))
	test.ExpectEquality(t, p.ScreenBlocks.Get().(int), gameprefs.DefaultScreenBlocks)

	p.SetScreenBlocks(100)
	test.ExpectEquality(t, p.ScreenBlocks.Get().(int), gameprefs.MaxScreenBlocks)
	p.SetScreenBlocks(-1)
	test.ExpectEquality(t, p.ScreenBlocks.Get().(int), gameprefs.MinScreenBlocks)
}

func TestPersistence(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")
	p, err := gameprefs.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)

	test.DemandSuccess(t, p.NoMelt.Set(true))
	p.SetScreenBlocks(11)
	test.DemandSuccess(t, p.Save())

	q, err := gameprefs.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, q.NoMelt.Get().(bool))
	test.ExpectEquality(t, q.ScreenBlocks.Get().(int), 11)
	test.ExpectSuccess(t, strings.Contains(q.String(), "game.nomelt :: true"))
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	prefs.PushCommandLineStack("game.singletics::true; game.screenblocks::5")
	defer prefs.PopCommandLineStack()

	p, err := gameprefs.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.SingleTics.Get().(bool))
	test.ExpectEquality(t, p.ScreenBlocks.Get().(int), 5)
}

func TestUnknownCommandLinePref(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	// only the toggles the game acts on are registered. anything else is
	// returned unused
	prefs.PushCommandLineStack("game.nomelt::true; game.monosound::true")
	p, err := gameprefs.NewPreferencesFromFile(fn)
	unused := prefs.PopCommandLineStack()
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.NoMelt.Get().(bool))
	test.ExpectEquality(t, unused, "game.monosound::true")
	test.ExpectFailure(t, strings.Contains(p.String(), "monosound"))
}
