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

package gamestate

import "fmt"

// TicCmd is the input of one player for one tic.
type TicCmd struct {
	Forward   int8  `json:"f"`
	Side      int8  `json:"s"`
	AngleTurn int16 `json:"a"`
	Buttons   uint8 `json:"b"`
}

// Button bits in the TicCmd.Buttons field.
const (
	ButtonAttack = 0x01
	ButtonUse    = 0x02

	// the buttons field is a special command if this bit is set
	ButtonSpecial = 0x80
)

func (cmd TicCmd) String() string {
	return fmt.Sprintf("fwd=%d side=%d turn=%d btn=%#02x", cmd.Forward, cmd.Side, cmd.AngleTurn, cmd.Buttons)
}
