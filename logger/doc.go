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

// Package logger is the central log repository for TIASound. Log entries are
// tagged and entries that are identical to the previous entry are collapsed
// into a single entry with a repeat count.
//
// Logging is never done from the audio generation loop. Only the code around
// it (playback, file output, scripts) should log.
//
// Whether a log entry is recorded depends on the Permission argument. The
// Allow value always grants permission.
package logger
