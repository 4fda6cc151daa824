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

// Package resources returns the paths of files that TIASound keeps between
// sessions, such as the preferences file.
//
// For "release" builds the base path is the user's config directory, as
// returned by os.UserConfigDir(). For example, on Linux:
//
//	/home/user/.config/tiasound/
//
// For non-release builds the base path is in the current working directory:
//
//	.tiasound
package resources
