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

// Package gameloop is the top level control loop of the game.
//
// Each iteration of the loop builds tic commands from the user's input, runs
// the simulation and then displays the result. Simulation happens in fixed
// steps called tics. There are two ways of deciding how many tics to run in an
// iteration.
//
// In single-step mode exactly one tic command is built and one tic is run per
// iteration, however long the iteration takes. This is deterministic and is
// the mode used for timing demos.
//
// In the adaptive mode the loop builds one tic command for every tic of wall
// clock time that has passed since the previous iteration and then runs the
// simulation for as many tics as are needed to catch up. At least one tic is
// run every iteration. If the previous iteration was quicker than a tic then
// the loop waits for the tic clock.
//
// The loop stops at an iteration boundary when a collaborator returns one of
// the QuitRequest or DemoEnded errors, when a collaborator returns any other
// error, or when the check function passed to Run() says so.
package gameloop
