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

package random

import (
	"math/rand/v2"
	"time"
)

// the base seed for all random numbers
var baseSeed uint64

func init() {
	baseSeed = uint64(time.Now().UnixNano())
}

// TicSource returns the current tic count. The tic count is mixed into the
// seed of the random number generator.
type TicSource interface {
	Tics() int
}

// Random is a random number generator that is sensitive to time within the
// game. Two generators with the ZeroSeed field set and the same tic count
// will produce the same sequence of numbers.
type Random struct {
	tics TicSource
	pcg  *rand.PCG
	rnd  *rand.Rand

	// use zero seed rather than the random base seed. this is only really
	// useful for tests where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(tics TicSource) *Random {
	rnd := &Random{
		tics: tics,
		pcg:  rand.NewPCG(baseSeed, 0),
	}
	rnd.rnd = rand.New(rnd.pcg)
	return rnd
}

// Seed restarts the sequence of random numbers from the current tic count.
func (rnd *Random) Seed() {
	var t uint64
	if rnd.tics != nil {
		t = uint64(rnd.tics.Tics())
	}
	if rnd.ZeroSeed {
		rnd.pcg.Seed(0, t)
	} else {
		rnd.pcg.Seed(baseSeed, t)
	}
}

// Intn returns the next number in the sequence in the range [0, n).
func (rnd *Random) Intn(n int) int {
	return rnd.rnd.IntN(n)
}
