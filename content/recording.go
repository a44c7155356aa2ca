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

package content

import (
	"io"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/gamestate"
)

// Sentinal errors.
const (
	BadDemo     = "content: demo %s: %v"
	DemoFormat  = "content: demo format: %s"
	DemoVersion = "content: demo version %d is not supported"
)

// details for the DemoFormat error
const (
	demoNoEndMark = "no end marker"
	demoTruncated = "truncated"
	demoNoPlayers = "no players"
	demoShortHead = "short header"
)

// the only supported recording version. matches gamestate.Version
const recordingVersion = gamestate.Version

// MaxPlayers is the number of player slots in a recording.
const MaxPlayers = 4

const (
	headerLen  = 9 + MaxPlayers
	commandLen = 4

	// the first byte of a command is the end marker when the recording ends
	endMarker = 0x80
)

// Recording is a demo recording. The commands for every player in the game
// are recorded for every tic.
type Recording struct {
	Name string

	Skill         int
	Episode       int
	Map           int
	Deathmatch    int
	Respawn       bool
	Fast          bool
	NoMonsters    bool
	ConsolePlayer int
	Players       [MaxPlayers]bool

	numPlayers int
	commands   []gamestate.TicCmd
}

// ParseRecording reads a demo recording.
func ParseRecording(r io.Reader) (*Recording, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf("content: %v", err)
	}

	if len(data) < headerLen {
		return nil, curated.Errorf(DemoFormat, demoShortHead)
	}
	if data[0] != recordingVersion {
		return nil, curated.Errorf(DemoVersion, data[0])
	}

	rec := &Recording{
		Skill:         int(data[1]),
		Episode:       int(data[2]),
		Map:           int(data[3]),
		Deathmatch:    int(data[4]),
		Respawn:       data[5] != 0,
		Fast:          data[6] != 0,
		NoMonsters:    data[7] != 0,
		ConsolePlayer: int(data[8]),
	}
	for i := range MaxPlayers {
		rec.Players[i] = data[9+i] != 0
		if rec.Players[i] {
			rec.numPlayers++
		}
	}
	if rec.numPlayers == 0 {
		return nil, curated.Errorf(DemoFormat, demoNoPlayers)
	}

	data = data[headerLen:]
	for {
		if len(data) == 0 {
			return nil, curated.Errorf(DemoFormat, demoNoEndMark)
		}
		if data[0] == endMarker {
			break
		}
		if len(data) < commandLen*rec.numPlayers {
			return nil, curated.Errorf(DemoFormat, demoTruncated)
		}
		for range rec.numPlayers {
			rec.commands = append(rec.commands, gamestate.TicCmd{
				Forward:   int8(data[0]),
				Side:      int8(data[1]),
				AngleTurn: int16(uint16(data[2]) << 8),
				Buttons:   data[3],
			})
			data = data[commandLen:]
		}
	}

	return rec, nil
}

// NumPlayers returns the number of players in the recording.
func (rec *Recording) NumPlayers() int {
	return rec.numPlayers
}

// Len returns the number of tics in the recording.
func (rec *Recording) Len() int {
	return len(rec.commands) / rec.numPlayers
}

// Tic returns the commands for every player in the game for the tic. The
// commands are in player order. Returns false if the tic is past the end of
// the recording.
func (rec *Recording) Tic(tic int) ([]gamestate.TicCmd, bool) {
	if tic < 0 || tic >= rec.Len() {
		return nil, false
	}
	i := tic * rec.numPlayers
	return rec.commands[i : i+rec.numPlayers], true
}
