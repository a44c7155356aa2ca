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

// Package sdlscreen presents frames in an SDL window and posts keyboard input
// to the event queue.
//
// SDL requires that window creation, rendering and event handling happen on
// the main thread. The Screen is therefore created on the main thread and its
// Service() function must be called repeatedly from the main thread. The
// game loop runs in a different goroutine and hands frames to the Screen
// with Present().
//
// Frames are drawn either with the SDL renderer or, if Options.GL is true,
// by blitting a texture to the window with OpenGL.
package sdlscreen
