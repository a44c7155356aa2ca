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

package gamestate

import "fmt"

// GameMode identifies the content that is available.
type GameMode int

// List of valid GameMode values.
const (
	Indetermined GameMode = iota
	Shareware
	Registered
	Retail
	Commercial
)

func (g GameMode) String() string {
	switch g {
	case Shareware:
		return "shareware"
	case Registered:
		return "registered"
	case Retail:
		return "retail"
	case Commercial:
		return "commercial"
	}
	return "indetermined"
}

// Mission distinguishes the content of commercial releases.
type Mission int

// List of valid Mission values.
const (
	Doom Mission = iota
	Doom2
	Plutonia
	TNT
)

// CompLevel is the compatibility level of the content.
type CompLevel int

// List of valid CompLevel values, in ascending order.
const (
	CompDoom CompLevel = iota
	CompUltimateDoom
	CompFinalDoom
)

// Version of the engine as reported in the startup banner.
const Version = 109

// Edition describes the content pack in use.
type Edition struct {
	Mode      GameMode
	Mission   Mission
	CompLevel CompLevel

	// the BFG edition has a different title screen
	BFG bool
}

func (e Edition) String() string {
	return fmt.Sprintf("%s (complevel %d)", e.Mode, e.CompLevel)
}

// Title returns the text of the startup banner. The text is centered in a
// field 80 characters wide, the width of the console title bar.
func (e Edition) Title() string {
	var s string
	switch e.Mode {
	case Retail:
		s = "The Ultimate DOOM Startup v%d.%d"
	case Shareware:
		s = "DOOM Shareware Startup v%d.%d"
	case Registered:
		s = "DOOM System Startup v%d.%d"
	case Commercial:
		switch e.Mission {
		case Plutonia:
			s = "DOOM 2: Plutonia Experiment v%d.%d"
		case TNT:
			s = "DOOM 2: TNT - Evilution v%d.%d"
		default:
			s = "DOOM 2: Hell on Earth v%d.%d"
		}
	default:
		s = "Public DOOM - v%d.%d"
	}

	s = fmt.Sprintf(s, Version/100, Version%100)

	const width = 80
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return fmt.Sprintf("%*s%s%*s", left, "", s, width-len(s)-left, "")
}
