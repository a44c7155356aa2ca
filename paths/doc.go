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

// Package paths contains functions to prepare paths to ticcore resources.
//
// The ResourcePath() function returns the path to a file in a subdirectory
// of the resource directory. For example, the following will return the path
// to the preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// Content packs are found in the "content" subdirectory:
//
//	pth, err := paths.ResourcePath("content", "")
//
// For release builds (built with the "release" tag) the resource directory
// is in the user's config directory, as reported by os.UserConfigDir(). On a
// modern Linux system, the path returned by the first example will be:
//
//	/home/user/.config/ticcore/preferences
//
// For non-release builds the resource directory is ".ticcore" in the current
// working directory.
package paths
