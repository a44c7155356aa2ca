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

// Package prefs facilitates the storage of preference values on disk.
//
// Preference values are typed (Bool, Int, Float, String and Generic) and
// safe for concurrent use. Each value type supports hooks that are called
// before and after a new value is set.
//
// Values are associated with a Disk instance and a key:
//
//	dsk, _ := prefs.NewDisk(pth)
//
//	var noMelt prefs.Bool
//	dsk.Add("display.nomelt", &noMelt)
//
//	dsk.Load(true)
//
// The file format is a warning line followed by one "key :: value" line for
// every entry, sorted by key. More than one Disk instance can share a file
// without clobbering each other's entries.
//
// The command line stack allows values to be overridden for the current run
// only. See PushCommandLineStack() for the format of the prefs string.
package prefs
