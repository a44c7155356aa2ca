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

// Package otoaudio implements a speaker line using the oto library.
package otoaudio

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/logger"
)

// the number of samples that can be waiting to be read by the oto player. if
// the ring is full then the oldest samples are dropped
const ringLength = 4096

// the float value of a line that is on. a line that is off is the negative of
// this value
const amplitude = 0.25

// Line outputs speaker levels through an oto player. It also implements the
// io.Reader interface that the player reads from.
type Line struct {
	rate int

	ctx    *oto.Context
	player *oto.Player

	crit  sync.Mutex
	ring  [ringLength]float32
	head  int
	tail  int
	count int

	// the last sample read by the player. repeated if the ring runs dry
	last float32
}

// NewLine is the preferred method of initialisation for the Line type. The
// rate should be the rate of the speaker engine.
func NewLine(rate int) *Line {
	return &Line{
		rate: rate,
		last: -amplitude,
	}
}

// Open implements the speaker.Opener interface.
func (ln *Line) Open() error {
	if ln.player != nil {
		return nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   ln.rate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return curated.Errorf("otoaudio: %v", err)
	}
	<-ready

	ln.ctx = ctx
	ln.player = ctx.NewPlayer(ln)
	ln.player.Play()

	logger.Logf(logger.Allow, "otoaudio", "frequency: %d samples/sec", ln.rate)

	return nil
}

// SetLevel implements the speaker.Line interface.
func (ln *Line) SetLevel(on bool) {
	v := float32(-amplitude)
	if on {
		v = amplitude
	}

	ln.crit.Lock()
	defer ln.crit.Unlock()

	if ln.count == ringLength {
		ln.tail = (ln.tail + 1) % ringLength
		ln.count--
	}
	ln.ring[ln.head] = v
	ln.head = (ln.head + 1) % ringLength
	ln.count++
}

// Read implements the io.Reader interface. It is called by the oto player.
func (ln *Line) Read(p []byte) (int, error) {
	ln.crit.Lock()
	defer ln.crit.Unlock()

	n := len(p) / 4
	for i := range n {
		if ln.count > 0 {
			ln.last = ln.ring[ln.tail]
			ln.tail = (ln.tail + 1) % ringLength
			ln.count--
		}
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(ln.last))
	}

	return n * 4, nil
}

// Pending returns the number of samples waiting to be read by the player.
func (ln *Line) Pending() int {
	ln.crit.Lock()
	defer ln.crit.Unlock()
	return ln.count
}

// Close stops the player. Any error encountered by the player during
// playback is returned.
func (ln *Line) Close() error {
	if ln.player == nil {
		return nil
	}
	ln.player.Pause()
	err := ln.player.Err()
	ln.player = nil
	if err != nil {
		return curated.Errorf("otoaudio: %v", err)
	}
	return nil
}
