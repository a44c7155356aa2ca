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


package version

import (
	"fmt"
	"runtime/debug"

	"github.com/jetsetilly/ticcore/gamestate"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Ticcore"

// set by the linker when built for release. if number is empty then the
// project was built without the makefile
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is
// a numbered release. A version of "unreleased" means the project was built
// from a repository without a version number. A version of "local" means
// there was no version control information either.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// String returns the version line printed by the VERSION mode.
func String() string {
	v, r, release := Version()
	engine := fmt.Sprintf("engine v%d.%d", gamestate.Version/100, gamestate.Version%100)
	if release {
		return fmt.Sprintf("%s %s (%s)", ApplicationName, v, engine)
	}
	return fmt.Sprintf("%s %s %s (%s)", ApplicationName, v, r, engine)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	switch {
	case vcsRevision == "":
		revision = "no revision information"
	case vcsModified:
		revision = vcsRevision + "+dirty"
	default:
		revision = vcsRevision
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
