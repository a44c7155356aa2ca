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

// Package ansi defines ANSI control codes for styles, colours and cursor
// positioning.
package ansi

import (
	"fmt"
	"strings"
)

// ansi target.
const (
	targetPen         = 3
	targetPaper       = 4
	targetBrightPen   = 9
	targetBrightPaper = 10
)

// colour names in ANSI order
var colours = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

var attributes = map[string]string{
	"BOLD":      "1",
	"UNDERLINE": "4",
	"INVERSE":   "7",
	"STRIKE":    "9",
	"NORMAL":    "",
}

// Pens is the table of colors to be used for text.
var Pens = map[string]string{}

// DimPens is the table of pastel colors to be used for text.
var DimPens = map[string]string{}

// NormalPen is the CSI sequence for regular text.
const NormalPen = "\033[m"

func init() {
	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "", "", true, false)
		DimPens[c], _ = ColorBuild(c, "", "", false, false)
	}
}

// ColorBuild creates the ANSI sequence to create the pen with the correct
// foreground/background color and attribute.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	var parts []string

	if pen != "" {
		c, ok := colours[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		t := targetPen
		if brightPen {
			t = targetBrightPen
		}
		parts = append(parts, fmt.Sprintf("%d%d", t, c))
	}

	if paper != "" {
		c, ok := colours[strings.ToUpper(paper)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI paper (%s)", paper)
		}
		t := targetPaper
		if brightPaper {
			t = targetBrightPaper
		}
		parts = append(parts, fmt.Sprintf("%d%d", t, c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		if a != "" {
			parts = append(parts, a)
		}
	}

	return fmt.Sprintf("\033[%sm", strings.Join(parts, ";")), nil
}

// the VGA text mode palette in ANSI colour order. the VGA palette swaps the
// red and blue bits compared to the ANSI palette
var vgaToANSI = [8]int{0, 4, 2, 6, 1, 5, 3, 7}

// Attribute returns the CSI sequence for a VGA text mode attribute byte. The
// low nibble is the foreground colour and the high nibble the background
// colour. Bit 3 of either nibble selects the bright variant.
func Attribute(attr uint8) string {
	fg := attr & 0x0f
	bg := (attr >> 4) & 0x0f

	ft := targetPen
	if fg&0x08 != 0 {
		ft = targetBrightPen
	}
	bt := targetPaper
	if bg&0x08 != 0 {
		bt = targetBrightPaper
	}

	return fmt.Sprintf("\033[%d%d;%d%dm", ft, vgaToANSI[fg&0x07], bt, vgaToANSI[bg&0x07])
}

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// ClearScreen is the CSI sequence to clear the entire screen.
const ClearScreen = "\033[2J"

// CursorStore if the CSI sequence to store the current cursor position.
const CursorStore = "\033[s"

// CursorRestore if the CSI sequence to restore the cursor position to a
// previous store.
const CursorRestore = "\033[u"

// CursorReport is the CSI sequence that requests the terminal to report the
// cursor position. The reply has the form ESC [ row ; col R
const CursorReport = "\033[6n"

// CursorPosition is the CSI sequence to move the cursor to a zero-indexed
// column and row.
func CursorPosition(column, row int) string {
	return fmt.Sprintf("\033[%d;%dH", row+1, column+1)
}

// ParseCursorReport parses the reply to a CursorReport request. The returned
// column and row are zero-indexed.
func ParseCursorReport(reply []byte) (column int, row int, err error) {
	i := strings.IndexByte(string(reply), '\033')
	if i < 0 {
		return 0, 0, fmt.Errorf("no cursor report in reply")
	}
	_, err = fmt.Sscanf(string(reply[i:]), "\033[%d;%dR", &row, &column)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed cursor report: %w", err)
	}
	return column - 1, row - 1, nil
}
