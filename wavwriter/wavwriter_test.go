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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/jetsetilly/ticcore/speaker"
	"github.com/jetsetilly/ticcore/test"
	"github.com/jetsetilly/ticcore/wavwriter"
)

func TestRecording(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "rec.wav")
	ln := wavwriter.NewLine(fn, speaker.DefaultSampleRate)

	tmr := &speaker.ManualTimer{}
	eng := speaker.NewEngine(tmr, 0)
	test.DemandSuccess(t, eng.Init(ln))

	buffer := make([]int8, 100)
	for i := range buffer {
		if i%2 == 0 {
			buffer[i] = 10
		} else {
			buffer[i] = -10
		}
	}
	test.DemandSuccess(t, eng.BeginBufferedPlayback(buffer, 4, nil))
	tmr.Fire(100)
	eng.StopPlayback()

	// the stop sets the line to off
	test.ExpectEquality(t, ln.Len(), 101)

	test.DemandSuccess(t, ln.Close())
	ln.SetLevel(true)
	test.ExpectEquality(t, ln.Len(), 101)

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), 101)
	test.ExpectSuccess(t, buf.Data[0] > 0)
	test.ExpectSuccess(t, buf.Data[1] < 0)
	test.ExpectEquality(t, int(dec.SampleRate), speaker.DefaultSampleRate)
}

func TestUncreatableFile(t *testing.T) {
	ln := wavwriter.NewLine(filepath.Join(t.TempDir(), "missing", "rec.wav"), 1000)
	test.ExpectFailure(t, ln.Open())

	eng := speaker.NewEngine(&speaker.ManualTimer{}, 0)
	test.ExpectFailure(t, eng.Init(ln))
}
