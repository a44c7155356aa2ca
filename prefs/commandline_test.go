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

package prefs_test

import (
	"testing"

	"github.com/jetsetilly/ticcore/prefs"
	"github.com/jetsetilly/ticcore/test"
)

func TestCommandLineParse(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// whitespace around keys and values is not significant
	prefs.PushCommandLineStack("  game.nomelt::  true ")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 1)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "game.nomelt::true")

	// unused values are returned sorted by key
	prefs.PushCommandLineStack("game.singletics::true; game.nomelt::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "game.nomelt::false; game.singletics::true")

	// entries without the separator are dropped
	prefs.PushCommandLineStack("game.nomelt;game.screenblocks::9")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "game.screenblocks::9")

	prefs.PushCommandLineStack("game.vsync=true")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}

func TestCommandLineConsume(t *testing.T) {
	prefs.PushCommandLineStack("game.screenblocks::7; game.vsync::true")

	ok, v := prefs.GetCommandLinePref("game.screenblocks")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "7")

	// a value can only be consumed once
	ok, _ = prefs.GetCommandLinePref("game.screenblocks")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("game.showfps")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "game.vsync::true")
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("game.nomelt::true")
	prefs.PushCommandLineStack("game.nomelt::false")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the most recent group is consulted
	ok, v := prefs.GetCommandLinePref("game.nomelt")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "game.nomelt::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
