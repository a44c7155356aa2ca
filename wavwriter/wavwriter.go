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

// Package wavwriter records the levels of a speaker line to a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when the Line is closed. It is therefore probably only suitable for testing
// purposes.
package wavwriter

import (
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/logger"
)

// the sample value of a line that is on. a line that is off is the negative
// of this value
const amplitude = 8192

// Line implements the speaker.Line interface.
type Line struct {
	crit     sync.Mutex
	filename string
	rate     int
	buffer   []int
	closed   bool
}

// NewLine is the preferred method of initialisation for the Line type. The
// rate should be the rate of the speaker engine.
func NewLine(filename string, rate int) *Line {
	return &Line{
		filename: filename,
		rate:     rate,
		buffer:   make([]int, 0, rate),
	}
}

// Open implements the speaker.Opener interface. It checks that the file can
// be created.
func (ln *Line) Open() error {
	f, err := os.Create(ln.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	return f.Close()
}

// SetLevel implements the speaker.Line interface.
func (ln *Line) SetLevel(on bool) {
	ln.crit.Lock()
	defer ln.crit.Unlock()

	if ln.closed {
		return
	}

	if on {
		ln.buffer = append(ln.buffer, amplitude)
	} else {
		ln.buffer = append(ln.buffer, -amplitude)
	}
}

// Len returns the number of levels recorded.
func (ln *Line) Len() int {
	ln.crit.Lock()
	defer ln.crit.Unlock()
	return len(ln.buffer)
}

// Close writes the recorded levels to disk. Levels set after Close() are
// ignored.
func (ln *Line) Close() (rerr error) {
	ln.crit.Lock()
	defer ln.crit.Unlock()

	if ln.closed {
		return nil
	}
	ln.closed = true

	f, err := os.Create(ln.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, ln.rate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: ln.rate},
		SourceBitDepth: 16,
		Data:           ln.buffer,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", ln.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
