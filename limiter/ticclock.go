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
	"time"
)

// TicRate is the number of tics in one second of game time.
const TicRate = 35

// TicClock counts tics of game time.
type TicClock struct {
	start time.Time

	// source of the current time. replaceable for testing
	now func() time.Time

	// sleep is used by WaitTic() to wait for the next tic
	sleep func(time.Duration)
}

// NewTicClock is the preferred method of initialisation for the TicClock type.
// The clock starts immediately.
func NewTicClock() *TicClock {
	clk := &TicClock{
		now:   time.Now,
		sleep: time.Sleep,
	}
	clk.Start()
	return clk
}

// Start (or restart) the clock from zero.
func (clk *TicClock) Start() {
	clk.start = clk.now()
}

// Tics returns the number of whole tics since the clock was started.
func (clk *TicClock) Tics() int {
	return int(clk.now().Sub(clk.start) * TicRate / time.Second)
}

// WaitTic blocks until the tic count is greater than the after value. Returns
// the new tic count.
func (clk *TicClock) WaitTic(after int) int {
	for {
		t := clk.Tics()
		if t > after {
			return t
		}

		// time until the start of the next tic
		next := clk.start.Add(time.Duration(after+1) * time.Second / TicRate)
		d := next.Sub(clk.now())
		if d <= 0 {
			d = time.Millisecond
		}
		clk.sleep(d)
	}
}
