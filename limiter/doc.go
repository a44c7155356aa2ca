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

// Package limiter keeps time for the game loop.
//
// The TicClock counts whole tics of game time since it was started. There are
// 35 tics in a second. The game loop asks the clock how many tics have passed
// and, when no new tic has arrived, waits for the next one.
//
// The Limiter caps the rate at which frames are presented. It has nothing to do
// with the tic rate. A frame can be presented many times per tic when the
// limiter is inactive, or the frame rate can be capped to the refresh rate of
// the display. The Limiter also measures the actual rate at which frames are
// being presented.
package limiter
