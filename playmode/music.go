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


package playmode

import (
	"sync/atomic"

	"github.com/jetsetilly/ticcore/logger"
	"github.com/jetsetilly/ticcore/soundload"
	"github.com/jetsetilly/ticcore/speaker"
)

// source of music files
type musicSource interface {
	Music(name string) (string, bool)
}

// the speaker engine as used by the music player
type musicEngine interface {
	Rate() int
	BeginBufferedPlayback(buffer []int8, numDivisions int, refill func()) error
	StopPlayback()
	Status() speaker.Status
}

// music streams music files through the speaker engine. decoded music is
// kept for the next time it is asked for.
type music struct {
	eng      musicEngine
	streamer *soundload.Streamer
	source   musicSource

	cache   map[string][]int8
	current string

	// number of segments refilled since playback began. refill is called by
	// the engine's sampling task
	refills atomic.Int64

	// the refill count at which the end of a non-looping piece will have
	// been played. -1 until the end of the piece has been written
	drainAt int64
}

func newMusic(eng musicEngine, streamer *soundload.Streamer, source musicSource) *music {
	return &music{
		eng:      eng,
		streamer: streamer,
		source:   source,
		cache:    make(map[string][]int8),
	}
}

func (mus *music) load(name string) ([]int8, bool) {
	if snd, ok := mus.cache[name]; ok {
		return snd, true
	}

	pth, ok := mus.source.Music(name)
	if !ok {
		logger.Logf(logger.Allow, "playmode", "no music for %s", name)
		return nil, false
	}

	snd, err := soundload.Load(pth, mus.eng.Rate())
	if err != nil {
		logger.Log(logger.Allow, "playmode", err)
		return nil, false
	}

	mus.cache[name] = snd.Samples
	return snd.Samples, true
}

// ChangeMusic implements the demo.MusicChanger interface. Asking for the music
// that is already playing does nothing.
func (mus *music) ChangeMusic(name string, looping bool) {
	if name == mus.current && mus.eng.Status().State == speaker.Playing {
		return
	}

	mus.stop()

	snd, ok := mus.load(name)
	if !ok {
		return
	}

	mus.streamer.Play(snd, looping)
	mus.streamer.Reset()
	mus.refills.Store(0)
	mus.drainAt = -1

	refill := func() {
		mus.streamer.Refill()
		mus.refills.Add(1)
	}

	if err := mus.eng.BeginBufferedPlayback(mus.streamer.Buffer(), mus.streamer.NumDivisions(), refill); err != nil {
		logger.Log(logger.Allow, "playmode", err)
		return
	}

	mus.current = name
}

func (mus *music) stop() {
	mus.eng.StopPlayback()
	mus.current = ""
}

// UpdateSounds implements the gameloop.Sound interface. Playback is stopped
// once music that does not loop has finished. The end of the music is in the
// buffer some time before it is heard so the engine is left running until
// every segment has been played once more.
func (mus *music) UpdateSounds() {
	if mus.current == "" || mus.streamer.Playing() {
		return
	}

	n := mus.refills.Load()
	if mus.drainAt < 0 {
		mus.drainAt = n + int64(mus.streamer.NumDivisions())
		return
	}

	if n >= mus.drainAt {
		mus.stop()
	}
}
