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

package audio

import (
	"fmt"
)

// each channel has three registers that control its output. from the
// "Stella Programmer's Guide":
//
// "Each audio circuit has three registers that control a noise-tone
// generator (what kind of sound), a frequency selection (high or low pitch
// of the sound), and a volume control."
//
// not all the bits are used in each register. the comments below indicate
// the range of each register. values outside of the range are clamped
type Registers struct {
	Control uint8 // 0 to 15
	Freq    uint8 // 0 to 31
	Volume  uint8 // 0 to 15
}

// the maximum value for each register
const (
	MaxControl = 15
	MaxFreq    = 31
	MaxVolume  = 15
)

// NewRegisters creates a Registers instance from integer values, clamping
// each value to the register's range. Out of range values are never an error.
func NewRegisters(volume int, control int, freq int) Registers {
	return Registers{
		Control: uint8(clamp(control, MaxControl)),
		Freq:    uint8(clamp(freq, MaxFreq)),
		Volume:  uint8(clamp(volume, MaxVolume)),
	}
}

// Clamp returns a copy of the registers with every field clamped to its range.
func (reg Registers) Clamp() Registers {
	return Registers{
		Control: min(reg.Control, MaxControl),
		Freq:    min(reg.Freq, MaxFreq),
		Volume:  min(reg.Volume, MaxVolume),
	}
}

func clamp(v int, hi int) int {
	return max(min(v, hi), 0)
}

func (reg Registers) String() string {
	return fmt.Sprintf("%04b @ %05b ^ %04b", reg.Control, reg.Freq, reg.Volume)
}
