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

package netsession

import (
	"encoding/json"
	"sync"

	"github.com/jetsetilly/ticcore/gamestate"
	"github.com/jetsetilly/ticcore/logger"
)

// Broadcaster sends a message to every spectator.
type Broadcaster interface {
	Broadcast(msg []byte) bool
}

// Tic is the commands built for one tic.
type Tic struct {
	Tic  int                `json:"tic"`
	Cmds []gamestate.TicCmd `json:"cmds"`
}

// Message is the JSON message sent by FlushOutgoing().
type Message struct {
	Tics []Tic `json:"tics"`
}

// MaxPlayers is the most commands that are kept for one tic. Commands for
// further players are not sent.
const MaxPlayers = 4

// MaxPending is the number of tics that are kept between calls to
// FlushOutgoing(). When full the oldest tic is dropped.
const MaxPending = 128

// entry in the ring of pending tics
type entry struct {
	tic  int
	n    int
	cmds [MaxPlayers]gamestate.TicCmd
}

// Session accumulates tic commands and sends them to the spectators.
type Session struct {
	crit sync.Mutex
	hub  Broadcaster

	// ring of pending tics. head is the oldest entry
	ring  [MaxPending]entry
	head  int
	count int

	// the number of messages dropped because the hub was behind
	dropped int

	// the number of tics dropped because the ring was full
	droppedTics int
}

// NewSession is the preferred method of initialisation for the Session type.
// The hub can be nil, in which case commands are not accumulated.
func NewSession(hub Broadcaster) *Session {
	return &Session{
		hub: hub,
	}
}

// Record the commands run for a tic. Does not allocate.
func (s *Session) Record(tic int, cmds ...gamestate.TicCmd) {
	if s.hub == nil {
		return
	}

	s.crit.Lock()
	defer s.crit.Unlock()

	if s.count == MaxPending {
		s.head = (s.head + 1) % MaxPending
		s.count--
		s.droppedTics++
	}

	e := &s.ring[(s.head+s.count)%MaxPending]
	e.tic = tic
	e.n = copy(e.cmds[:], cmds)
	s.count++
}

// Pending returns the number of tics waiting to be sent.
func (s *Session) Pending() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.count
}

// Dropped returns the number of messages that could not be sent.
func (s *Session) Dropped() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.dropped
}

// DroppedTics returns the number of tics discarded because too many tics were
// recorded between calls to FlushOutgoing().
func (s *Session) DroppedTics() int {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.droppedTics
}

// FlushOutgoing sends the accumulated commands as a single message. Does
// nothing if there are no accumulated commands.
func (s *Session) FlushOutgoing() {
	if s.hub == nil {
		return
	}

	s.crit.Lock()
	defer s.crit.Unlock()

	if s.count == 0 {
		return
	}

	m := Message{Tics: make([]Tic, s.count)}
	for i := range m.Tics {
		e := &s.ring[(s.head+i)%MaxPending]
		m.Tics[i] = Tic{Tic: e.tic, Cmds: e.cmds[:e.n:e.n]}
	}
	s.head = 0
	s.count = 0

	msg, err := json.Marshal(m)
	if err != nil {
		logger.Logf(logger.Allow, "netsession", "marshal: %v", err)
		return
	}

	if !s.hub.Broadcast(msg) {
		s.dropped++
	}
}
