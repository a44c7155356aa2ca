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

// Package console draws the startup title bar and prints the startup
// progress messages.
//
// The title bar occupies the top line of an 80 column console. Every time a
// progress message is printed the title bar is redrawn, because a message
// that scrolls the console will scroll the title bar with it.
//
// Drawing is through the Cursor interface, which is implemented for ANSI
// terminals by the easyterm package.
package console
