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

// Package prefs stores typed preference values in a simple text file. Each
// value is registered with a Disk instance under a key and the file is written
// as one "key :: value" entry per line, sorted by key.
//
//	dsk, err := prefs.NewDisk(filename)
//	var rate prefs.Int
//	err = dsk.Add("audio.outputrate", &rate)
//	err = dsk.Load()
//
// Several Disk instances can share the same file. Saving from one instance
// keeps the entries belonging to any other instance.
//
// Values can be overridden for a session with the command line stack. See
// PushCommandLineStack().
package prefs
