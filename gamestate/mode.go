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

// Mode is the top level context of the game. It selects which ticker and
// drawer pair the game loop and display compositor use.
type Mode int

// List of valid Mode values.
const (
	Level Mode = iota
	Intermission
	Finale
	DemoScreen

	// the number of modes. not a valid Mode value
	NumModes
)

func (m Mode) String() string {
	switch m {
	case Level:
		return "level"
	case Intermission:
		return "intermission"
	case Finale:
		return "finale"
	case DemoScreen:
		return "demo screen"
	}
	return "unknown mode"
}

// Valid returns true if the Mode is one of the listed modes.
func (m Mode) Valid() bool {
	return m >= Level && m < NumModes
}
