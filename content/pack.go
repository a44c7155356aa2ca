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

package content

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/gamestate"
)

// Sentinal errors.
const (
	NoContent    = "content: no content packs found in %s"
	PackNotFound = "content: selected content pack was not found"
)

// Pack describes a content pack.
type Pack struct {
	// the key used to select the pack from the menu
	Key byte

	Name        string
	Description string
	Edition     gamestate.Edition

	// the directory containing the pack. empty if the pack has not been found
	Dir string
}

// the known content packs in menu order
var packs = []Pack{
	{Key: '1', Name: "doom1", Description: "DOOM Shareware",
		Edition: gamestate.Edition{Mode: gamestate.Shareware, Mission: gamestate.Doom, CompLevel: gamestate.CompDoom}},
	{Key: '2', Name: "doom", Description: "DOOM",
		Edition: gamestate.Edition{Mode: gamestate.Registered, Mission: gamestate.Doom, CompLevel: gamestate.CompDoom}},
	{Key: '3', Name: "doomu", Description: "The Ultimate DOOM",
		Edition: gamestate.Edition{Mode: gamestate.Retail, Mission: gamestate.Doom, CompLevel: gamestate.CompUltimateDoom}},
	{Key: '4', Name: "doom2", Description: "DOOM II",
		Edition: gamestate.Edition{Mode: gamestate.Commercial, Mission: gamestate.Doom2, CompLevel: gamestate.CompDoom}},
	{Key: '5', Name: "plutonia", Description: "DOOM II: Plutonia Experiment",
		Edition: gamestate.Edition{Mode: gamestate.Commercial, Mission: gamestate.Plutonia, CompLevel: gamestate.CompFinalDoom}},
	{Key: '6', Name: "tnt", Description: "DOOM II: TNT - Evilution",
		Edition: gamestate.Edition{Mode: gamestate.Commercial, Mission: gamestate.TNT, CompLevel: gamestate.CompFinalDoom}},
	{Key: '7', Name: "freedm1", Description: "FreeDoom Phase 1",
		Edition: gamestate.Edition{Mode: gamestate.Retail, Mission: gamestate.Doom, CompLevel: gamestate.CompUltimateDoom}},
	{Key: '8', Name: "freedm2", Description: "FreeDoom Phase 2",
		Edition: gamestate.Edition{Mode: gamestate.Commercial, Mission: gamestate.Doom2, CompLevel: gamestate.CompDoom}},
}

func isDir(pth string) bool {
	fi, err := os.Stat(pth)
	return err == nil && fi.IsDir()
}

// Identify returns the known content packs found in the root directory.
func Identify(root string) []Pack {
	var found []Pack
	for _, p := range packs {
		dir := filepath.Join(root, p.Name)
		if isDir(dir) {
			p.Dir = dir
			found = append(found, p)
		}
	}
	return found
}

// Explicit returns the content pack for an explicitly named directory. The
// edition is decided by the base name of the directory. Unknown packs are
// treated as DOOM II.
func Explicit(dir string) (Pack, error) {
	if !isDir(dir) {
		return Pack{}, curated.Errorf(PackNotFound)
	}

	name := filepath.Base(dir)
	for _, p := range packs {
		if p.Name == name {
			p.Dir = dir
			return p, nil
		}
	}

	return Pack{
		Name:        name,
		Description: name,
		Edition:     gamestate.Edition{Mode: gamestate.Commercial, Mission: gamestate.Doom2, CompLevel: gamestate.CompDoom},
		Dir:         dir,
	}, nil
}

// KeyReader waits for a single keypress.
type KeyReader interface {
	Getch() (byte, error)
}

// Select one of the found content packs. If there is more than one pack the
// menu is written to the output and the key reader is used to make the
// selection. The key reader is not used if there is only one pack and can be
// nil.
func Select(root string, found []Pack, keys KeyReader, output io.Writer) (Pack, error) {
	if len(found) == 0 {
		return Pack{}, curated.Errorf(NoContent, root)
	}
	if len(found) == 1 {
		return found[0], nil
	}

	io.WriteString(output, "\nPlease select the content you want to play:\n\n")
	for _, p := range found {
		fmt.Fprintf(output, "     %c. %-32s (%s)\n", p.Key, p.Description, p.Name)
	}
	io.WriteString(output, "\nPlease enter the selection: ")

	if keys == nil {
		return Pack{}, curated.Errorf(PackNotFound)
	}

	k, err := keys.Getch()
	io.WriteString(output, "\n")
	if err != nil {
		return Pack{}, curated.Errorf("content: %v", err)
	}

	for _, p := range found {
		if p.Key == k {
			return p, nil
		}
	}

	return Pack{}, curated.Errorf(PackNotFound)
}
