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

// Package netsession sends the tic commands of a running game to spectators
// connected with a websocket.
//
// The Session accumulates the tic commands as they are built by the game
// loop. FlushOutgoing() is called once per display pass and sends the
// accumulated commands to the Hub as a single JSON message. The Hub forwards
// the message to every connected Client.
//
// Spectators never block the game loop. A client that cannot keep up is
// disconnected.
package netsession
