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

package events

import (
	"math/bits"
	"sync/atomic"

	"github.com/jetsetilly/ticcore/curated"
)

// Sentinal errors.
const (
	BadCapacity = "events: capacity must be a power of two greater than one (%d)"
)

// Responder is implemented by collaborators that consume input events.
// TryConsume returns true if the event has been claimed, in which case no
// other responder sees the event.
type Responder interface {
	TryConsume(Event) bool
}

// each field of a slot is an atomic value. the consumer may read a slot while
// the producer overwrites it after an overflow but the consumer detects that
// and discards what it read
type slot struct {
	kind  atomic.Int64
	data1 atomic.Int64
	data2 atomic.Int64
	data3 atomic.Int64
}

// Queue is a fixed capacity ring buffer of input events. It is safe for
// one producer goroutine and one consumer goroutine to use the queue at the
// same time.
//
// The queue is lossy. If an event is posted when the queue is full, the oldest
// unread event is dropped. A queue of capacity C holds at most C-1 events.
type Queue struct {
	slots []slot
	mask  uint64

	// head and tail increase monotonically. the index into slots is found by
	// masking with the capacity. head is only written by the producer. tail is
	// written by the consumer and by the producer when dropping an event
	head atomic.Uint64
	tail atomic.Uint64

	dropped atomic.Uint64
}

// NewQueue is the preferred method of initialisation for the Queue type.
func NewQueue(capacity int) (*Queue, error) {
	if capacity < 2 || bits.OnesCount(uint(capacity)) != 1 {
		return nil, curated.Errorf(BadCapacity, capacity)
	}
	return &Queue{
		slots: make([]slot, capacity),
		mask:  uint64(capacity - 1),
	}, nil
}

// Capacity returns the capacity of the ring buffer.
func (q *Queue) Capacity() int {
	return len(q.slots)
}

// Post adds an event to the queue. If the queue is full the oldest unread
// event is dropped. Post never blocks and never fails.
//
// Only one goroutine may call Post.
func (q *Queue) Post(e Event) {
	h := q.head.Load()

	for {
		t := q.tail.Load()
		if h-t < q.mask {
			break
		}
		if q.tail.CompareAndSwap(t, t+1) {
			q.dropped.Add(1)
			break
		}
	}

	s := &q.slots[h&q.mask]
	s.kind.Store(int64(e.Kind))
	s.data1.Store(int64(e.Data1))
	s.data2.Store(int64(e.Data2))
	s.data3.Store(int64(e.Data3))

	q.head.Store(h + 1)
}

// Process offers every unread event in the queue, in the order they were
// posted, to the menu responder and then, if the menu does not claim it, to
// the game responder. Each event is dispatched at most once. Returns the
// number of events dispatched.
//
// Only one goroutine may call Process.
func (q *Queue) Process(menu Responder, game Responder) int {
	n := 0
	for {
		t := q.tail.Load()
		if t == q.head.Load() {
			return n
		}

		s := &q.slots[t&q.mask]
		e := Event{
			Kind:  Kind(s.kind.Load()),
			Data1: int(s.data1.Load()),
			Data2: int(s.data2.Load()),
			Data3: int(s.data3.Load()),
		}

		// the producer dropped the event while it was being read
		if !q.tail.CompareAndSwap(t, t+1) {
			continue
		}

		n++
		if menu != nil && menu.TryConsume(e) {
			continue
		}
		if game != nil {
			game.TryConsume(e)
		}
	}
}

// Len returns the number of unread events in the queue.
func (q *Queue) Len() int {
	t := q.tail.Load()
	return int(q.head.Load() - t)
}

// Indices returns the head and tail positions in the ring buffer.
func (q *Queue) Indices() (head int, tail int) {
	t := q.tail.Load()
	return int(q.head.Load() & q.mask), int(t & q.mask)
}

// Dropped returns the number of events that have been dropped because the
// queue was full.
func (q *Queue) Dropped() int {
	return int(q.dropped.Load())
}
