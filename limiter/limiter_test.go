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

package limiter_test

import (
	"testing"

	"github.com/jetsetilly/ticcore/limiter"
	"github.com/jetsetilly/ticcore/test"
)

// tolerance of measurenment
const measurementTolerance = 0.1
const numFramesPerTest = 2

func TestLimiter(t *testing.T) {
	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()

	for _, hz := range []float32{60.0, 35.0, 60.0} {
		lmtr.SetLimit(hz)
		for range int(hz * numFramesPerTest) {
			lmtr.CheckFrame()
			lmtr.MeasureActual()
		}
		rate := lmtr.Measured.Load().(float32)
		test.ExpectApproximate(t, rate, hz, measurementTolerance)
	}
}

type display struct{}

func (display) DisplayRefreshRate() (float32, bool) {
	return 59.94, true
}

func TestQuantise(t *testing.T) {
	lmtr := limiter.NewLimiter()
	defer lmtr.Stop()

	lmtr.SetDisplay(display{})
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), float32(59.94))

	// close enough to the refresh rate to be quantised
	lmtr.SetLimit(60.0)
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), float32(59.94))

	// too far away from the refresh rate
	lmtr.SetLimit(35.0)
	test.ExpectEquality(t, lmtr.IdealFPS.Load().(float32), float32(35.0))
}
