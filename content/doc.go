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

// Package content locates content packs and loads the pages, demo recordings
// and music in them.
//
// A content pack is a directory named after the pack (doom1, doom2, etc.)
// containing:
//
//	pages/<NAME>.bmp	full screen pages (TITLEPIC, CREDIT, HELP2, ...)
//	demos/<name>.lmp	demo recordings
//	music/<name>.wav	music (or .mp3). music is optional
//
// Pages are converted to the indexed colour of the framebuffer package when
// they are loaded.
package content
