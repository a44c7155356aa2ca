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

package soundload

import "sync"

// Silence is the sample value written to the buffer when there is nothing to
// play.
const Silence int8 = -128

// Streamer owns a segmented sample buffer and refills it from a Sound. The
// Refill() function should be used as the refill callback of the speaker
// engine.
type Streamer struct {
	crit sync.Mutex

	buffer        []int8
	numDivisions  int
	segmentLength int

	// the segment that will be written by the next call to Refill(). this is
	// always the segment that the engine has just completed
	next int

	sound []int8
	pos   int
	loop  bool
}

// NewStreamer is the preferred method of initialisation for the Streamer
// type. The buffer is size samples long and divided into numDivisions
// segments.
func NewStreamer(size int, numDivisions int) *Streamer {
	str := &Streamer{
		buffer:        make([]int8, size),
		numDivisions:  numDivisions,
		segmentLength: size / numDivisions,
	}
	for i := range str.buffer {
		str.buffer[i] = Silence
	}
	return str
}

// Buffer returns the buffer to be given to the speaker engine.
func (str *Streamer) Buffer() []int8 {
	return str.buffer
}

// NumDivisions returns the number of segments in the buffer.
func (str *Streamer) NumDivisions() int {
	return str.numDivisions
}

// Play sets the sound to stream. The sound starts playing once the segments
// already in the buffer have been played. A nil sound is silence.
func (str *Streamer) Play(snd []int8, loop bool) {
	str.crit.Lock()
	defer str.crit.Unlock()
	str.sound = snd
	str.pos = 0
	str.loop = loop
}

// Reset the buffer ready for the start of a new playback. Every segment is
// filled from the current sound.
func (str *Streamer) Reset() {
	str.crit.Lock()
	defer str.crit.Unlock()
	for i := range str.numDivisions {
		str.fill(i)
	}
	str.next = 0
}

// Refill writes the next part of the sound into the segment that has just
// been completed.
func (str *Streamer) Refill() {
	str.crit.Lock()
	defer str.crit.Unlock()
	str.fill(str.next)
	str.next++
	if str.next >= str.numDivisions {
		str.next = 0
	}
}

func (str *Streamer) fill(segment int) {
	seg := str.buffer[segment*str.segmentLength : (segment+1)*str.segmentLength]
	for i := range seg {
		if str.pos >= len(str.sound) {
			if str.loop && len(str.sound) > 0 {
				str.pos = 0
			} else {
				seg[i] = Silence
				continue
			}
		}
		seg[i] = str.sound[str.pos]
		str.pos++
	}
}

// Playing returns true if there is more of the sound to stream.
func (str *Streamer) Playing() bool {
	str.crit.Lock()
	defer str.crit.Unlock()
	return str.pos < len(str.sound) || (str.loop && len(str.sound) > 0)
}
