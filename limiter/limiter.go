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
	"sync/atomic"
	"time"
)

// Display is implemented by presenters that know the refresh rate of the
// physical display.
type Display interface {
	DisplayRefreshRate() (float32, bool)
}

// Limiter caps the rate at which frames are presented and measures the rate
// actually achieved.
type Limiter struct {
	// whether to wait for the limiter pulse each frame. a value of false is
	// the uncapped frame rate
	Active atomic.Bool

	// the ideal number of frames per second if everything was working nicely
	IdealFPS atomic.Value // float32

	// pulse that performs the limiting. the duration of the ticker will be set
	// when SetLimit() is called with a new fps value
	pulse *time.Ticker

	// waiting for the pulse every frame is expensive at high frame rates so
	// the pulse is only waited for every pulseCtLimit frames
	pulseCt      int
	pulseCtLimit int

	// pulse that performs the FPS measurement
	measuringPulse *time.Ticker

	// the measured FPS is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the measured number of frames per second
	Measured atomic.Value // float32

	display Display
}

// DefaultFPS is the frame limit used when the refresh rate of the display is
// not known.
const DefaultFPS = float32(TicRate)

// NewLimiter is preferred method of initialising a new instance of the Limiter
// type. The limit is set to DefaultFPS.
func NewLimiter() *Limiter {
	lmtr := &Limiter{}
	lmtr.Active.Store(true)
	lmtr.Measured.Store(float32(0.0))

	lmtr.pulse = time.NewTicker(time.Millisecond * 16)
	lmtr.measuringPulse = time.NewTicker(time.Millisecond * 1000)

	lmtr.SetLimit(DefaultFPS)

	return lmtr
}

// SetDisplay sets the display the limiter is working for. The limit is
// adjusted to the refresh rate of the display if it is known.
func (lmtr *Limiter) SetDisplay(display Display) {
	lmtr.display = display
	if hz, ok := display.DisplayRefreshRate(); ok {
		lmtr.SetLimit(hz)
	}
}

// SetLimit sets the frame limit. A value of zero or less is ignored.
func (lmtr *Limiter) SetLimit(fps float32) {
	if fps <= 0.0 {
		return
	}

	// quantise to the refresh rate of the display if it is close
	if lmtr.display != nil {
		hz, quantise := lmtr.display.DisplayRefreshRate()
		if quantise {
			if fps >= hz*0.96 && fps <= hz*1.04 {
				fps = hz
			}
		}
	}

	lmtr.IdealFPS.Store(fps)

	lmtr.pulseCt = 0
	lmtr.pulseCtLimit = 1 + int(fps/20)
	lmtr.pulse.Stop()
	lmtr.pulse.Reset(time.Duration(1000000000 / fps * float32(lmtr.pulseCtLimit)))

	lmtr.measureCt = 0
	lmtr.measureTime = time.Now()
}

// CheckFrame should be called every time a frame is presented.
func (lmtr *Limiter) CheckFrame() {
	lmtr.measureCt++

	if lmtr.Active.Load() {
		lmtr.pulseCt++
		if lmtr.pulseCt >= lmtr.pulseCtLimit {
			lmtr.pulseCt = 0
			<-lmtr.pulse.C
		}
	}
}

// MeasureActual measures frame rate on every tick of the measuringPulse
// ticker. It is cheap to call frequently.
func (lmtr *Limiter) MeasureActual() {
	select {
	case <-lmtr.measuringPulse.C:
		t := time.Now()
		m := float32(lmtr.measureCt) / float32(t.Sub(lmtr.measureTime).Seconds())
		lmtr.Measured.Store(m)

		lmtr.measureTime = t
		lmtr.measureCt = 0
	default:
	}
}

// Stop the limiter's tickers.
func (lmtr *Limiter) Stop() {
	lmtr.pulse.Stop()
	lmtr.measuringPulse.Stop()
}

// FrameRate returns the most recent measurement of the frame rate.
func (lmtr *Limiter) FrameRate() float32 {
	return lmtr.Measured.Load().(float32)
}
