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

// Package speaker streams a buffer of signed 8-bit samples to a one bit output
// line, such as a PC speaker.
//
// The Engine is driven by a Timer that calls the sampling task at a fixed
// rate. Each call reads one sample, quantises it to on or off and sets the
// output line accordingly. The buffer is divided into segments of equal
// length. When the end of a segment is reached the engine moves onto the next
// segment (wrapping around to the first segment after the last) and calls the
// refill function. The refill function should write new samples into the
// segment that has just been completed. It must never write into the segment
// currently being read.
//
// Engine states are:
//
//	Uninitialised -> Init() -> Idle
//	Idle -> BeginBufferedPlayback() -> Playing
//	Playing -> StopPlayback() -> Idle
//	any -> Shutdown() -> Uninitialised
//
// Redundant calls are harmless. Calling Init() or BeginBufferedPlayback()
// while playing stops the current playback first. StopPlayback() when idle
// does nothing.
//
// The sampling task runs in the timer's goroutine and the other functions are
// called from the main goroutine. Access to the playback position is protected
// by a mutex. Every complete reset of the playback position increases the
// generation count and a sampling task from an earlier generation will never
// touch a later playback.
package speaker
