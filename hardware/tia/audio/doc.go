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

// Package audio implements the audio generation of a single TIA channel.
//
// The output of each of the TIA's waveform generators is described by a
// run-length encoded Sequence. The Generator steps through the Sequence
// selected by the AUDC register at a rate set by the AUDF register, at the
// TIA's native rate of NativeRate ticks per second. The output of the
// Generator is converted to OutputRate (or any other rate) with an integer
// accumulator, so there is no drift over time.
//
// The Generator is intended to be driven by an audio callback. Register
// updates can arrive from any goroutine with Update() and are applied at the
// start of the next block:
//
//	gen := audio.NewGenerator()
//	gen.Update(audio.NewRegisters(15, 4, 10))
//	samples := gen.Process()
//
// Any register update resets the Generator so the waveform always starts
// from the beginning of the new Sequence.
package audio
