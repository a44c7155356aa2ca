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

// Package melt implements the column melt screen transition.
//
// The transition is captured in two halves. StartCapture() is called with the
// screen as it was last presented, before any new content is drawn.
// EndCapture() is called once the new content has been drawn. At that point
// the screen is restored to the start image and each call to Step() melts a
// little more of the start image away to reveal the end image underneath.
//
// The screen is divided into columns two pixels wide. Each column starts
// after a short random delay and then falls with increasing speed. Columns
// next to each other have similar delays so the melting edge is ragged but
// not noisy.
//
// Step() is driven by elapsed tics, not by the number of times it is called.
// A fast machine calls Step() with many zero or one tic values and a slow
// machine with larger values. The end result is the same.
package melt
