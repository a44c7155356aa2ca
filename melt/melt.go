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

package melt

import (
	"github.com/jetsetilly/ticcore/framebuffer"
	"github.com/jetsetilly/ticcore/random"
)

// ColumnWidth is the width in pixels of each melting column.
const ColumnWidth = 2

const numColumns = framebuffer.Width / ColumnWidth

// the maximum delay in tics before a column starts to fall
const maxDelay = 16

// the fastest speed of a falling column in pixels per tic
const maxSpeed = 8

// Melt is the column melt transition for a single screen.
type Melt struct {
	screen *framebuffer.Frame
	rnd    *random.Random

	start *framebuffer.Frame
	end   *framebuffer.Frame

	// position of each column. negative values are a delay in tics before the
	// column starts to fall
	y [numColumns]int

	active bool
}

// NewMelt is the preferred method of initialisation for the Melt type. The
// screen is the frame that is captured and drawn into.
func NewMelt(screen *framebuffer.Frame, rnd *random.Random) *Melt {
	return &Melt{
		screen: screen,
		rnd:    rnd,
		start:  framebuffer.NewFrame(screen.Palettes()),
		end:    framebuffer.NewFrame(screen.Palettes()),
	}
}

// StartCapture takes a copy of the screen as it is now.
func (m *Melt) StartCapture() {
	m.start.Copy(m.screen)
	m.active = false
}

// EndCapture takes a copy of the screen, restores the screen to the image
// taken by StartCapture() and prepares the column positions.
func (m *Melt) EndCapture() {
	m.end.Copy(m.screen)
	m.screen.Copy(m.start)

	m.rnd.Seed()
	m.y[0] = -m.rnd.Intn(maxDelay)
	for i := 1; i < numColumns; i++ {
		y := m.y[i-1] + m.rnd.Intn(3) - 1
		if y > 0 {
			y = 0
		} else if y == -maxDelay {
			y = -maxDelay + 1
		}
		m.y[i] = y
	}

	m.active = true
}

// Step advances the melt by the number of tics. Returns true when the melt
// has completed. A value of zero does nothing and returns false.
func (m *Melt) Step(tics int) bool {
	if !m.active {
		return true
	}

	done := true
	for range tics {
		done = true
		for i := range m.y {
			y := m.y[i]
			if y < 0 {
				m.y[i]++
				done = false
			} else if y < framebuffer.Height {
				dy := maxSpeed
				if y < maxDelay {
					dy = y + 1
				}
				if y+dy >= framebuffer.Height {
					dy = framebuffer.Height - y
				}
				m.y[i] += dy
				done = false
			}
		}
	}

	if tics <= 0 {
		return false
	}

	m.compose()

	if done {
		m.active = false
	}
	return done
}

// compose the screen from the start and end images according to the current
// column positions
func (m *Melt) compose() {
	for i, y := range m.y {
		if y < 0 {
			y = 0
		}
		x := i * ColumnWidth
		for row := range y {
			o := row*framebuffer.Width + x
			copy(m.screen.Pix[o:o+ColumnWidth], m.end.Pix[o:o+ColumnWidth])
		}
		for row := y; row < framebuffer.Height; row++ {
			o := row*framebuffer.Width + x
			s := (row-y)*framebuffer.Width + x
			copy(m.screen.Pix[o:o+ColumnWidth], m.start.Pix[s:s+ColumnWidth])
		}
	}
}

// Active returns true between EndCapture() and the completion of the melt.
func (m *Melt) Active() bool {
	return m.active
}
