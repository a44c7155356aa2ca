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

// Package sdlaudio implements a speaker line using the SDL audio queue.
package sdlaudio

import (
	"sync"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/logger"
)

// the buffer length is important to get right. we don't want it to be long
// because we can introduce unnecessary lag between the sound and the picture;
// by the same token we don't want it too short because we will end up calling
// flush too often
const bufferLength = 512

// the maximum amount of audio queued with the device, in samples. anything
// beyond this is lag
const maxQueued = bufferLength * 4

// the distance from the silence value of a line that is on or off
const amplitude = 48

// Line outputs speaker levels using SDL
type Line struct {
	crit sync.Mutex

	rate int
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// we keep two buffers which we swap after every flush
	buffer   *[]uint8
	other    *[]uint8
	bufferA  []uint8
	bufferB  []uint8
	bufferCt int

	open bool
}

// NewLine is the preferred method of initialisation for the Line type. The
// rate should be the rate of the speaker engine.
func NewLine(rate int) *Line {
	ln := &Line{
		rate: rate,
	}
	ln.bufferA = make([]uint8, bufferLength)
	ln.bufferB = make([]uint8, bufferLength)
	ln.buffer = &ln.bufferA
	ln.other = &ln.bufferB
	return ln
}

// Open implements the speaker.Opener interface. The SDL audio subsystem must
// have been initialised.
func (ln *Line) Open() error {
	ln.crit.Lock()
	defer ln.crit.Unlock()

	if ln.open {
		return nil
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(ln.rate),
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	ln.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}
	ln.spec = actualSpec

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", ln.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", ln.spec.Samples)

	for i := range ln.bufferA {
		ln.bufferA[i] = ln.spec.Silence
		ln.bufferB[i] = ln.spec.Silence
	}

	sdl.PauseAudioDevice(ln.id, false)
	ln.open = true

	return nil
}

// SetLevel implements the speaker.Line interface.
func (ln *Line) SetLevel(on bool) {
	ln.crit.Lock()
	defer ln.crit.Unlock()

	if !ln.open {
		return
	}

	if on {
		(*ln.buffer)[ln.bufferCt] = ln.spec.Silence + amplitude
	} else {
		(*ln.buffer)[ln.bufferCt] = ln.spec.Silence - amplitude
	}
	ln.bufferCt++

	if ln.bufferCt >= len(*ln.buffer) {
		ln.flush()
	}
}

func (ln *Line) flush() {
	if sdl.GetQueuedAudioSize(ln.id) > maxQueued {
		sdl.ClearQueuedAudio(ln.id)
	}

	err := sdl.QueueAudio(ln.id, *ln.buffer)
	if err != nil {
		logger.Log(logger.Allow, "sdlaudio", err)
	}

	ln.bufferCt = 0
	ln.buffer, ln.other = ln.other, ln.buffer
}

// Close the audio device.
func (ln *Line) Close() {
	ln.crit.Lock()
	defer ln.crit.Unlock()

	if !ln.open {
		return
	}
	ln.flush()
	sdl.CloseAudioDevice(ln.id)
	ln.open = false
}
