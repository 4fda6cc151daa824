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

// Package playmode plays a TIA audio channel in real time while the registers
// are edited from the keyboard. The terminal is put into cbreak mode for the
// duration of Play() so that every key press is seen immediately.
//
// The keys are:
//
//	v / V        volume down / up
//	c / C        control down / up
//	f / F        frequency down / up
//	0 to 9       select control 0 to 9
//	cursor keys  volume (up and down) and frequency (left and right)
//	m            mute on / off
//	r            resend the registers, restarting the waveform
//	q / ESC      quit
//
// The audio itself is produced by a playback backend (SDL or oto) that pulls
// blocks from the same audio.Generator that Play() sends updates to.
package playmode
