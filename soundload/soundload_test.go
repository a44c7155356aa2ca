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

package soundload_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/soundload"
	"github.com/jetsetilly/ticcore/test"
)

func TestResample(t *testing.T) {
	data := []int16{-32768, 0, 32767, 256}

	// same rate keeps every sample
	out := soundload.Resample(data, 100, 100)
	test.ExpectEquality(t, len(out), 4)
	test.ExpectEquality(t, out[0], int8(-128))
	test.ExpectEquality(t, out[1], int8(0))
	test.ExpectEquality(t, out[2], int8(127))
	test.ExpectEquality(t, out[3], int8(1))

	// half rate keeps every other sample
	out = soundload.Resample(data, 100, 50)
	test.ExpectEquality(t, len(out), 2)
	test.ExpectEquality(t, out[1], int8(127))

	// double rate repeats every sample
	out = soundload.Resample(data, 50, 100)
	test.ExpectEquality(t, len(out), 8)
	test.ExpectEquality(t, out[4], int8(127))
	test.ExpectEquality(t, out[5], int8(127))

	test.ExpectEquality(t, len(soundload.Resample(data, 0, 100)), 0)
}

// writes a square wave to a temporary wav file
func writeWAV(t *testing.T, rate int, n int) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "square.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		SourceBitDepth: 16,
		Data:           make([]int, n),
	}
	for i := range buf.Data {
		if (i/10)%2 == 0 {
			buf.Data[i] = 20000
		} else {
			buf.Data[i] = -20000
		}
	}

	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())

	return fn
}

func TestLoadWAV(t *testing.T) {
	fn := writeWAV(t, 8000, 800)

	snd, err := soundload.Load(fn, 4000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snd.Name, "square.wav")
	test.ExpectEquality(t, snd.Rate, 4000)
	test.ExpectEquality(t, len(snd.Samples), 400)
	test.ExpectSuccess(t, snd.Samples[0] > 0)
	test.ExpectSuccess(t, snd.Samples[5] < 0)
}

func TestBadFiles(t *testing.T) {
	_, err := soundload.Decode(strings.NewReader("data"), ".ogg", 14000)
	test.ExpectSuccess(t, curated.Is(err, soundload.UnsupportedFormat))

	_, err = soundload.Decode(strings.NewReader("not a wav file"), ".WAV", 14000)
	test.ExpectSuccess(t, curated.Is(err, soundload.DecodeError))

	_, err = soundload.Load(filepath.Join(t.TempDir(), "missing.wav"), 14000)
	test.ExpectSuccess(t, curated.Is(err, soundload.DecodeError))
}

func TestStreamer(t *testing.T) {
	str := soundload.NewStreamer(8, 2)
	test.ExpectEquality(t, len(str.Buffer()), 8)
	test.ExpectEquality(t, str.NumDivisions(), 2)
	test.ExpectEquality(t, str.Buffer()[0], soundload.Silence)

	snd := []int8{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	str.Play(snd, false)
	str.Reset()
	test.ExpectEquality(t, str.Buffer()[0], int8(1))
	test.ExpectEquality(t, str.Buffer()[7], int8(8))
	test.ExpectSuccess(t, str.Playing())

	// first segment completes and is refilled with the rest of the sound
	// followed by silence
	str.Refill()
	test.ExpectEquality(t, str.Buffer()[0], int8(9))
	test.ExpectEquality(t, str.Buffer()[1], int8(10))
	test.ExpectEquality(t, str.Buffer()[2], soundload.Silence)
	test.ExpectFailure(t, str.Playing())

	// second segment is silence
	str.Refill()
	test.ExpectEquality(t, str.Buffer()[4], soundload.Silence)
}

func TestStreamerLoop(t *testing.T) {
	str := soundload.NewStreamer(8, 2)
	str.Play([]int8{1, 2, 3}, true)
	str.Reset()
	test.ExpectEquality(t, str.Buffer()[3], int8(1))
	test.ExpectEquality(t, str.Buffer()[7], int8(2))
	str.Refill()
	test.ExpectEquality(t, str.Buffer()[0], int8(3))
	test.ExpectSuccess(t, str.Playing())
}
