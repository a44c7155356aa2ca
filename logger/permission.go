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

package logger

import "sync/atomic"

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should be allowed. A good default to
// use if a log entry should always be made.
var Allow Permission = allow{}

// Gate is a Permission that can be opened and closed while the program is
// running. The zero value is a closed gate.
//
// A timed demo for example closes the gate for the loggers that are called
// from inside the game loop, so the log does not grow while the loop is being
// measured.
type Gate struct {
	open atomic.Bool
}

// NewGate returns a gate that is initially open or closed.
func NewGate(open bool) *Gate {
	g := &Gate{}
	g.open.Store(open)
	return g
}

// Set opens or closes the gate.
func (g *Gate) Set(open bool) {
	g.open.Store(open)
}

// AllowLogging implements the Permission interface.
func (g *Gate) AllowLogging() bool {
	return g.open.Load()
}
