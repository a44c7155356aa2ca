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

// Package display composites the screen once per pass of the game loop.
//
// The Compositor draws the content for the active game mode followed by the
// overlays (FPS counter, pause indicator and finally the menu), flushes the
// network and presents the screen. When the active mode differs from the mode
// that was last presented the screen transition is run: the previous screen is
// captured before any new content is drawn and the transition is stepped,
// according to the number of elapsed tics, until it is complete. Every step of
// the transition is presented with the menu drawn on top.
//
// The Level mode is more complicated than the other modes. The Level
// collaborator draws the view, status bar, automap and HUD separately and the
// Compositor decides which of those need drawing, keeping redrawing of the
// border and status bar to a minimum.
package display
