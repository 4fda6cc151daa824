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

// Package sequencer changes the registers of an audio.Generator over time.
//
// A Timeline is a list of register changes, each at a sample offset from the
// start of the output. Timelines can be built directly or created by a Lua
// script. Scripts have access to a table named "tia":
//
//	tia.set(volume, control, freq)        -- change the registers now
//	tia.wait(ms)                          -- move the cursor forward
//	tia.note(volume, control, freq, ms)   -- set() followed by wait()
//	tia.rest(ms)                          -- silence followed by wait()
//	tia.duration()                        -- position of the cursor in ms
//
// For example, a short rising arpeggio:
//
//	for _, f in ipairs({17, 14, 11}) do
//		tia.note(12, 12, f, 150)
//	end
//	tia.rest(100)
//
// Register changes are applied at block boundaries. An event takes effect at
// the start of the first block that begins at or after the event's offset.
package sequencer
