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

package limiter

import (
	"testing"
	"time"

	"github.com/jetsetilly/ticcore/test"
)

// fakeTime advances only when the clock sleeps
type fakeTime struct {
	t     time.Time
	slept int
}

func (f *fakeTime) now() time.Time {
	return f.t
}

func (f *fakeTime) sleep(d time.Duration) {
	f.t = f.t.Add(d)
	f.slept++
}

func newFakeClock() (*TicClock, *fakeTime) {
	f := &fakeTime{t: time.Unix(1000, 0)}
	clk := &TicClock{now: f.now, sleep: f.sleep}
	clk.Start()
	return clk, f
}

func TestTics(t *testing.T) {
	clk, f := newFakeClock()
	test.ExpectEquality(t, clk.Tics(), 0)

	f.t = f.t.Add(time.Second)
	test.ExpectEquality(t, clk.Tics(), TicRate)

	// partial tics are not counted
	f.t = f.t.Add(time.Second / TicRate / 2)
	test.ExpectEquality(t, clk.Tics(), TicRate)

	clk.Start()
	test.ExpectEquality(t, clk.Tics(), 0)
}

func TestWaitTic(t *testing.T) {
	clk, f := newFakeClock()

	// already past the requested tic so there is no waiting
	f.t = f.t.Add(time.Second)
	test.ExpectEquality(t, clk.WaitTic(10), TicRate)
	test.ExpectEquality(t, f.slept, 0)

	// waiting for the next tic
	n := clk.WaitTic(TicRate)
	test.ExpectEquality(t, n, TicRate+1)
	test.ExpectSuccess(t, f.slept > 0)
}

func TestRealClock(t *testing.T) {
	clk := NewTicClock()
	n := clk.WaitTic(0)
	test.ExpectSuccess(t, n >= 1)
}
