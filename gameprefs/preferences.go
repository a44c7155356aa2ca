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

// Package gameprefs holds the game toggles. The toggles are persisted in the
// global preferences file and can be overridden for a single run with the
// -prefs command line argument or with the individual command line flags.
package gameprefs

import (
	"fmt"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/paths"
	"github.com/jetsetilly/ticcore/prefs"
)

// Range of the ScreenBlocks value. A value of 11 is a full height view with a
// minimal status bar and a value of 12 has no status bar at all.
const (
	MinScreenBlocks     = 3
	MaxScreenBlocks     = 12
	DefaultScreenBlocks = 10
)

// Preferences for the game.
type Preferences struct {
	dsk *prefs.Disk

	NoMelt          prefs.Bool
	SingleTics      prefs.Bool
	WaitVsync       prefs.Bool
	UncappedFPS     prefs.Bool
	SimpleStatusBar prefs.Bool
	DisableDemo     prefs.Bool
	ShowFPS         prefs.Bool
	ScreenBlocks    prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. The preferences are stored in the default preferences
// file in the resource path.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is the same as NewPreferences() but the preferences
// file is specified.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.ScreenBlocks.SetHookPre(func(v prefs.Value) error {
		n := v.(int)
		if n < MinScreenBlocks || n > MaxScreenBlocks {
			return fmt.Errorf("screen size must be between %d and %d", MinScreenBlocks, MaxScreenBlocks)
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("game.nomelt", &p.NoMelt)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("game.singletics", &p.SingleTics)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("game.vsync", &p.WaitVsync)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("game.uncapped", &p.UncappedFPS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("game.simplestatusbar", &p.SimpleStatusBar)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("game.disabledemo", &p.DisableDemo)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("game.showfps", &p.ShowFPS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("game.screenblocks", &p.ScreenBlocks)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, curated.Errorf("gameprefs: %v", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.NoMelt.Set(false)
	_ = p.SingleTics.Set(false)
	_ = p.WaitVsync.Set(false)
	_ = p.UncappedFPS.Set(false)
	_ = p.SimpleStatusBar.Set(false)
	_ = p.DisableDemo.Set(false)
	_ = p.ShowFPS.Set(false)
	_ = p.ScreenBlocks.Set(DefaultScreenBlocks)
}

// SetScreenBlocks sets the ScreenBlocks value, clamping it to the valid range.
func (p *Preferences) SetScreenBlocks(n int) {
	n = min(max(n, MinScreenBlocks), MaxScreenBlocks)
	_ = p.ScreenBlocks.Set(n)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
