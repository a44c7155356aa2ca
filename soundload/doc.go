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

// Package soundload decodes sound files into signed 8-bit mono samples
// suitable for the speaker engine, and streams them into the engine's
// segmented buffer.
//
// WAV files are decoded with go-audio/wav and MP3 files with go-mp3. Only the
// first channel of a multi-channel file is used. Samples are resampled to the
// requested rate using nearest neighbour resampling, which is good enough for
// a one bit output device.
package soundload
