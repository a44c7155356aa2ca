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

// Package demo implements the attract mode sequence: the title screen, credits
// and demo recordings that are cycled through when no game is being played.
//
// The sequence is a table of entries. Each entry is either a page, shown for
// a number of tics, or a demo recording. Demo entries are not played by the
// sequencer itself. They are queued as a playback request, which the game loop
// takes at the start of its next iteration. The game loop requests an advance
// to the next entry when the demo finishes.
//
// The table depends on the edition of the game. Retail editions have seven
// entries and all others have six.
//
// The sequencer never advances immediately. An advance is requested (by the
// page countdown expiring or by the end of a demo) and performed by the game
// loop with DoAdvance() at the next tic.
package demo
