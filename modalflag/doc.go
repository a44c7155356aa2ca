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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, the arguments are supplied with NewArgs() and Parse()
// takes no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PLAYDEMO", "TIMEDEMO", "VERSION")
//	_, _ = md.Parse()
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, in the same way as the go command has build,
// test and doc modes. The first sub-mode in the list is the default mode and
// is selected if the first argument is not a listed mode. Sub-mode
// comparisons are case insensitive.
//
// Once the mode is known, NewMode() starts a new layer of flags for that mode:
//
//	switch md.Mode() {
//	case "PLAYDEMO":
//		md.NewMode()
//		noMelt := md.AddBool("nomelt", false, "disable screen melt")
//		switch p, err := md.Parse(); p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		playDemo(md.GetArg(0), *noMelt)
//	}
//
// Help output is produced automatically when the -help flag is given. It
// includes the list of flags and the list of sub-modes for the current layer.
package modalflag
