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
	"sync/atomic"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/logger"
)

// Sentinal errors.
const (
	DeviceUnavailable = "speaker: device unavailable: %v"
	NotInitialised    = "speaker: not initialised"
	BadDivisions      = "speaker: buffer of %d samples can not be divided into %d segments"
)

// DefaultSampleRate is the rate at which the sampling task is called if no
// other rate is specified.
const DefaultSampleRate = 140 * 100

// State of the engine.
type State int

// List of valid State values.
const (
	Uninitialised State = iota
	Idle
	Playing
)

func (s State) String() string {
	switch s {
	case Uninitialised:
		return "uninitialised"
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	}
	return "unknown state"
}

// Line is the binary output device.
type Line interface {
	SetLevel(on bool)
}

// Opener is an optional interface for a Line. The Open() function is called by
// Init() and any error means the device is unavailable.
type Opener interface {
	Open() error
}

// Quantize converts a signed sample to the binary output level.
func Quantize(sample int8) bool {
	return sample >= 0
}

// the playback position. the fields in this type are shared with the sampling
// task
type descriptor struct {
	buffer         []int8
	numDivisions   int
	transferLength int
	bufferIndex    int

	// index into buffer of the next sample
	ptr int

	// number of samples remaining in the current segment
	remaining int
}

// Engine streams samples to a Line.
type Engine struct {
	crit sync.Mutex

	state     State
	available bool

	line  Line
	timer Timer
	rate  int

	cancel func()
	refill func()
	desc   descriptor

	generation atomic.Uint64
}

// NewEngine is the preferred method of initialisation for the Engine type. The
// sampling task will be scheduled on the timer at the given rate. A rate of
// zero or less selects DefaultSampleRate.
func NewEngine(timer Timer, rate int) *Engine {
	if rate <= 0 {
		rate = DefaultSampleRate
	}
	return &Engine{
		timer: timer,
		rate:  rate,
	}
}

// Rate returns the sample rate of the engine.
func (eng *Engine) Rate() int {
	return eng.rate
}

// Init prepares the engine to play samples to the Line. If the engine is
// playing then playback is stopped first.
//
// If the line is nil or fails to open the engine still moves to the Idle state
// but playback calls will do nothing until Init() is called again
// successfully.
func (eng *Engine) Init(line Line) error {
	eng.StopPlayback()

	eng.crit.Lock()
	defer eng.crit.Unlock()

	eng.state = Idle
	eng.available = false
	eng.refill = nil
	eng.desc = descriptor{}
	eng.line = nil
	eng.generation.Add(1)

	if line == nil {
		return curated.Errorf(DeviceUnavailable, "no output line")
	}

	if o, ok := line.(Opener); ok {
		if err := o.Open(); err != nil {
			logger.Log(logger.Allow, "speaker", err)
			return curated.Errorf(DeviceUnavailable, err)
		}
	}

	eng.line = line
	eng.available = true

	return nil
}

// BeginBufferedPlayback starts streaming the buffer to the output line. The
// buffer is divided into numDivisions segments and the refill function is
// called every time a segment is completed. The refill function can be nil.
//
// Any current playback is stopped first. The buffer is owned by the caller but
// must not be modified by the caller outside of the refill function.
func (eng *Engine) BeginBufferedPlayback(buffer []int8, numDivisions int, refill func()) error {
	eng.StopPlayback()

	eng.crit.Lock()
	defer eng.crit.Unlock()

	if eng.state == Uninitialised {
		return curated.Errorf(NotInitialised)
	}

	if !eng.available {
		return nil
	}

	if numDivisions <= 0 || len(buffer)/numDivisions == 0 {
		return curated.Errorf(BadDivisions, len(buffer), numDivisions)
	}

	eng.refill = refill
	eng.desc = descriptor{
		buffer:         buffer,
		numDivisions:   numDivisions,
		transferLength: len(buffer) / numDivisions,
	}
	eng.desc.remaining = eng.desc.transferLength

	gen := eng.generation.Add(1)
	eng.state = Playing
	eng.cancel = eng.timer.Schedule(eng.rate, func() {
		eng.step(gen)
	})

	return nil
}

// step is the sampling task. it is called by the timer at the sample rate
func (eng *Engine) step(gen uint64) {
	eng.crit.Lock()

	if eng.state != Playing || eng.generation.Load() != gen {
		eng.crit.Unlock()
		return
	}

	d := &eng.desc
	eng.line.SetLevel(Quantize(d.buffer[d.ptr]))
	d.ptr++
	d.remaining--

	if d.remaining > 0 {
		eng.crit.Unlock()
		return
	}

	d.bufferIndex++
	if d.bufferIndex >= d.numDivisions {
		d.bufferIndex = 0
	}
	d.ptr = d.bufferIndex * d.transferLength
	d.remaining = d.transferLength

	refill := eng.refill
	eng.crit.Unlock()

	// the refill function is called outside of the critical section so that it
	// is free to query the engine
	if refill != nil {
		refill()
	}
}

// StopPlayback stops any current playback and sets the output line to off.
// Does nothing if the engine is not playing.
func (eng *Engine) StopPlayback() {
	eng.crit.Lock()

	if eng.state != Playing {
		eng.crit.Unlock()
		return
	}

	eng.line.SetLevel(false)
	eng.state = Idle
	eng.desc.buffer = nil
	eng.generation.Add(1)

	cancel := eng.cancel
	eng.cancel = nil
	eng.crit.Unlock()

	if cancel != nil {
		cancel()
	}
}

// Shutdown stops playback and returns the engine to the uninitialised state.
func (eng *Engine) Shutdown() {
	eng.StopPlayback()

	eng.crit.Lock()
	defer eng.crit.Unlock()

	eng.state = Uninitialised
	eng.available = false
	eng.refill = nil
	eng.desc = descriptor{}
	eng.line = nil
}

// Status of the engine at a single moment in time.
type Status struct {
	State       State
	BufferIndex int
	Remaining   int
	Generation  uint64
}

// Status returns the current state and playback position of the engine.
func (eng *Engine) Status() Status {
	eng.crit.Lock()
	defer eng.crit.Unlock()
	return Status{
		State:       eng.state,
		BufferIndex: eng.desc.bufferIndex,
		Remaining:   eng.desc.remaining,
		Generation:  eng.generation.Load(),
	}
}
