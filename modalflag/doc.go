// This file is part of TIASound.
//
// TIASound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TIASound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TIASound.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag wraps the flag package in the standard library and adds
// the concept of program modes. Each mode has its own set of flags.
//
// Arguments are given to the Modes type with NewArgs() and then processed
// with one or more calls to Parse(). Between calls to Parse() the NewMode()
// function prepares the Modes type for the next set of flags.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RENDER", "PLAY", "TABLES")
//	log := md.AddBool("log", false, "echo log to stderr")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		seconds := md.AddFloat64("seconds", 1.0, "length of output")
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default mode. The default
// mode is selected if the first argument after the flags is not one of the
// named sub-modes. Sub-mode comparisons are case insensitive.
//
// Help is printed automatically by Parse() when the -help flag is seen. The
// list of sub-modes is appended to the help text produced by the flag package.
package modalflag
