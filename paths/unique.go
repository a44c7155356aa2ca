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

package paths

import (
	"strings"
	"time"
)

// UniqueFilename returns a name for a new file that is made unique by the
// current time. The file system is not checked for an existing file.
//
// The name has the form prefix_pack_YYYYMMDD_HHMMSS. The pack part is omitted
// if packName is empty or only whitespace.
func UniqueFilename(prefix string, packName string) string {
	parts := []string{prefix}
	if p := strings.TrimSpace(packName); p != "" {
		parts = append(parts, p)
	}
	parts = append(parts, time.Now().Format("20060102_150405"))
	return strings.Join(parts, "_")
}
