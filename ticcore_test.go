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
	"testing"

	"github.com/jetsetilly/ticcore/test"
	"github.com/jetsetilly/ticcore/wavwriter"
)

func TestPrefFlags(t *testing.T) {
	var yes, no = true, false
	var size, nosize = 8, 0

	pf := prefFlags{
		nomelt:          &yes,
		singletics:      &no,
		vsync:           &no,
		uncapped:        &yes,
		simpleStatusBar: &no,
		disableDemo:     &no,
		fps:             &no,
		size:            &nosize,
	}
	test.ExpectEquality(t, pf.commandLine(""), "game.nomelt::true; game.uncapped::true")

	pf.size = &size
	test.ExpectEquality(t, pf.commandLine("game.showfps::true"),
		"game.showfps::true; game.nomelt::true; game.uncapped::true; game.screenblocks::8")

	pf.nomelt = &no
	pf.uncapped = &no
	pf.size = &nosize
	test.ExpectEquality(t, pf.commandLine(""), "")
}

func TestAudioLine(t *testing.T) {
	line, err := audioLine("none", "", "doom")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, line == nil)

	_, err = audioLine("beeper", "", "doom")
	test.ExpectFailure(t, err)

	// a wav file is used whatever the device
	line, err = audioLine("beeper", "out.wav", "doom")
	test.ExpectSuccess(t, err)
	_, ok := line.(*wavwriter.Line)
	test.ExpectSuccess(t, ok)
}
