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

// Package mix converts the float32 samples produced by the audio package into
// the sample formats required by audio devices and files.
//
// Samples from the generator are in the range 0.0 to 0.5 but the functions
// in this package accept anything in the range -1.0 to 1.0. Values outside of
// that range saturate.
package mix

import (
	"encoding/binary"
	"math"
)

// Int16 converts a single sample to a signed 16bit value.
func Int16(f float32) int16 {
	v := int32(f * 32767)
	return int16(max(min(v, 32767), -32768))
}

// Int16LE converts samples to signed 16bit little-endian values and writes
// them to dst. Returns the number of bytes written, which will be less than
// len(src)*2 if dst is too short.
func Int16LE(dst []byte, src []float32) int {
	n := min(len(src), len(dst)/2)
	for i := range n {
		binary.LittleEndian.PutUint16(dst[i*2:], uint16(Int16(src[i])))
	}
	return n * 2
}

// Float32LE writes samples as 32bit little-endian float values to dst.
// Returns the number of bytes written, which will be less than len(src)*4 if
// dst is too short.
func Float32LE(dst []byte, src []float32) int {
	n := min(len(src), len(dst)/4)
	for i := range n {
		f := max(min(src[i], 1.0), -1.0)
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(f))
	}
	return n * 4
}
