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

package speaker

import (
	"sync"
	"time"
)

// Timer schedules a task to be called at a fixed rate. The returned function
// cancels the task. Cancelling must not block and must be safe to call from
// within the task.
type Timer interface {
	Schedule(rate int, task func()) (cancel func())
}

// TickerTimer is a Timer that calls the task from a goroutine. The operating
// system can not be relied upon to wake the goroutine rate times per second
// so the goroutine wakes at a coarser interval and calls the task as many
// times as is required to catch up.
type TickerTimer struct {
	// the interval at which the goroutine wakes
	Interval time.Duration
}

// DefaultInterval for the TickerTimer.
const DefaultInterval = 2 * time.Millisecond

// NewTickerTimer is the preferred method of initialisation for the TickerTimer
// type.
func NewTickerTimer() *TickerTimer {
	return &TickerTimer{
		Interval: DefaultInterval,
	}
}

// Schedule implements the Timer interface.
func (tmr *TickerTimer) Schedule(rate int, task func()) func() {
	done := make(chan struct{})

	interval := tmr.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	go func() {
		tck := time.NewTicker(interval)
		defer tck.Stop()

		start := time.Now()
		var called int64

		for {
			select {
			case <-done:
				return
			case now := <-tck.C:
				due := int64(now.Sub(start)) * int64(rate) / int64(time.Second)
				for ; called < due; called++ {
					select {
					case <-done:
						return
					default:
					}
					task()
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
		})
	}
}

// ManualTimer is a Timer that only calls the task when told to. It is intended
// for testing.
type ManualTimer struct {
	crit      sync.Mutex
	task      func()
	rate      int
	scheduled int
	cancelled int
}

// Schedule implements the Timer interface.
func (tmr *ManualTimer) Schedule(rate int, task func()) func() {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()

	tmr.task = task
	tmr.rate = rate
	tmr.scheduled++

	var once sync.Once
	return func() {
		once.Do(func() {
			tmr.crit.Lock()
			defer tmr.crit.Unlock()
			tmr.cancelled++
		})
	}
}

// Fire calls the most recently scheduled task n times. The task is called even
// if it has been cancelled, in the same way that a real timer might fire once
// more after cancellation.
func (tmr *ManualTimer) Fire(n int) {
	tmr.crit.Lock()
	task := tmr.task
	tmr.crit.Unlock()

	if task == nil {
		return
	}
	for range n {
		task()
	}
}

// Rate returns the rate of the most recently scheduled task.
func (tmr *ManualTimer) Rate() int {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()
	return tmr.rate
}

// Active returns true if there is a scheduled task that has not been
// cancelled.
func (tmr *ManualTimer) Active() bool {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()
	return tmr.scheduled > tmr.cancelled
}
