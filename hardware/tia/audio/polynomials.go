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

import "slices"

// Sequence is a run-length encoding of the output of one of the TIA's
// waveform generators. Each entry is the number of phase advances that the
// output stays at the same level. Entries at even indices are high and
// entries at odd indices are low.
//
// Every sequence is terminated by the sentinel value. Reaching the sentinel
// restarts the sequence from the beginning.
type Sequence []int8

// terminates every Sequence
const sentinel = -1

// Period returns the number of phase advances in one complete cycle of the
// sequence.
func (s Sequence) Period() int {
	var p int
	for _, v := range s {
		if v == sentinel {
			break
		}
		p += int(v)
	}
	return p
}

// Len returns the number of run-lengths in the sequence, not counting the
// sentinel.
func (s Sequence) Len() int {
	for i, v := range s {
		if v == sentinel {
			return i
		}
	}
	return len(s)
}

// Edges returns the number of rising edges in one cycle of the sequence. A
// sequence with a single entry never changes level and so has no edges.
//
// an odd number of run-lengths would mean that the last entry and the first
// entry are both high and would merge into one run on wrap around. none of
// the tables have that property but the count is correct either way
func (s Sequence) Edges() int {
	return s.Len() / 2
}

// the run-lengths below are empirical. they describe the output of the TIA's
// 4bit, 5bit and 9bit polynomial counters and the pure tone dividers for each
// distortion setting of the AUDC register. they must not be altered

// AUDC 0 and 11. the output is set high permanently
var seqSetHigh = Sequence{
	1, -1,
}

// pure tone. used for the divide by 2 and the divide by 6 tones
var seqDiv2 = Sequence{
	1, 1, -1,
}

// pure tone. used for the divide by 31 and the divide by 93 tones
var seqDiv31 = Sequence{
	16, 15, -1,
}

// 4 bit polynomial counter
var seqPoly4 = Sequence{
	1, 2, 2, 1, 1, 1, 4, 3, -1,
}

// 5 bit polynomial counter clocking a divide by 2
var seqPoly5Div2 = Sequence{
	1, 2, 1, 1, 2, 2, 5, 4, 2, 1, 3, 1, 1, 1, 1, 4, -1,
}

// 9 bit polynomial counter
var seqPoly9 = Sequence{
	1, 4, 1, 3, 2, 4, 1, 2, 3, 2, 1, 1, 1, 1, 1, 1, 2, 4, 2, 1, 4, 1, 1, 2, 2, 1, 3, 2, 1, 3,
	1, 1, 1, 4, 1, 1, 1, 1, 2, 1, 1, 2, 6, 1, 2, 2, 1, 2, 1, 2, 1, 1, 2, 1, 6, 2, 1, 2, 2, 1,
	1, 1, 1, 2, 2, 2, 2, 7, 2, 3, 2, 2, 1, 1, 1, 3, 2, 1, 1, 2, 1, 1, 7, 1, 1, 3, 1, 1, 2, 3,
	3, 1, 1, 1, 2, 2, 1, 1, 2, 2, 4, 3, 5, 1, 3, 1, 1, 5, 2, 1, 1, 1, 2, 1, 2, 1, 3, 1, 2, 5,
	1, 1, 2, 1, 1, 1, 5, 1, 1, 1, 1, 1, 1, 1, 1, 6, 1, 1, 1, 2, 1, 1, 1, 1, 4, 2, 1, 1, 3, 1,
	3, 6, 3, 2, 3, 1, 1, 2, 1, 2, 4, 1, 1, 1, 3, 1, 1, 1, 1, 3, 1, 2, 1, 4, 2, 2, 3, 4, 1, 1,
	4, 1, 2, 1, 2, 2, 2, 1, 1, 4, 3, 1, 4, 4, 9, 5, 4, 1, 5, 3, 1, 1, 3, 2, 2, 2, 1, 5, 1, 2,
	1, 1, 1, 2, 3, 1, 2, 1, 1, 3, 4, 2, 5, 2, 2, 1, 2, 3, 1, 1, 1, 1, 1, 2, 1, 3, 3, 3, 2, 1,
	2, 1, 1, 1, 1, 1, 3, 3, 1, 2, 2, 3, 1, 3, 1, 8, -1,
}

// 5 bit polynomial counter clocking a divide by 6
var seqPoly5Div6 = Sequence{
	5, 6, 4, 5, 10, 5, 3, 7, 4, 10, 6, 3, 6, 4, 9, 6, -1,
}

// 5 bit polynomial counter clocking the 4 bit polynomial counter
var seqPoly5Poly4 = Sequence{
	2, 3, 2, 1, 4, 1, 6, 10, 2, 4, 2, 1, 1, 4, 5, 9, 3, 3, 4, 1, 1, 1, 8, 5, 5, 5, 4, 1, 1,
	1, 8, 4, 2, 8, 3, 3, 1, 1, 7, 4, 2, 7, 5, 1, 3, 1, 7, 4, 1, 4, 8, 2, 1, 3, 4, 7, 1, 3, 7,
	3, 2, 1, 6, 6, 2, 2, 4, 5, 3, 2, 6, 6, 1, 3, 3, 2, 5, 3, 7, 3, 4, 3, 2, 2, 2, 5, 9, 3, 1,
	5, 3, 1, 2, 2, 11, 5, 1, 5, 3, 1, 1, 2, 12, 5, 1, 2, 5, 2, 1, 1, 12, 6, 1, 2, 5, 1, 2, 1,
	10, 6, 3, 2, 2, 4, 1, 2, 6, 10, -1,
}

// the sequence used for each value of the AUDC register
var sequences = [16]Sequence{
	seqSetHigh,    // 0x0 set to 1
	seqPoly4,      // 0x1 4 bit poly
	seqPoly4,      // 0x2 div 15 -> 4 bit poly
	seqPoly5Poly4, // 0x3 5 bit poly -> 4 bit poly
	seqDiv2,       // 0x4 div 2 pure tone
	seqDiv2,       // 0x5 div 2 pure tone
	seqDiv31,      // 0x6 div 31 pure tone
	seqPoly5Div2,  // 0x7 5 bit poly -> div 2
	seqPoly9,      // 0x8 9 bit poly
	seqPoly5Div2,  // 0x9 5 bit poly -> div 2
	seqDiv31,      // 0xa div 31 pure tone
	seqSetHigh,    // 0xb set to 1
	seqDiv2,       // 0xc div 6 pure tone
	seqDiv2,       // 0xd div 6 pure tone
	seqDiv31,      // 0xe div 93 pure tone
	seqPoly5Div6,  // 0xf 5 bit poly div 6
}

// additional division of the base clock for each value of the AUDC register.
// the divide by 15 for AUDC 2 is the TIA's div 15 prescaler applied to the 4
// bit poly. the divide by 3 for AUDC 12 to 14 is the 10KHz clock
var divisors = [16]int{1, 1, 15, 1, 1, 1, 1, 1, 1, 1, 1, 1, 3, 3, 3, 1}

// Lookup returns the sequence and the clock divisor for the value in the
// control register. Only the lower four bits of control are used.
//
// The returned Sequence is a copy and can be modified freely.
func Lookup(control uint8) (Sequence, int) {
	seq, div := lookup(control)
	return slices.Clone(seq), div
}

// the tables themselves. the generator uses this so that applying new
// registers never allocates. the returned sequence must not be modified
func lookup(control uint8) (Sequence, int) {
	control &= 0x0f
	return sequences[control], divisors[control]
}

// PeriodTicks returns the number of native ticks in one complete cycle of the
// waveform selected by the registers.
func PeriodTicks(reg Registers) int {
	reg = reg.Clamp()
	seq, div := lookup(reg.Control)
	return div * (int(reg.Freq) + 1) * seq.Period()
}

// Frequency returns the frequency in Hz of one complete cycle of the waveform
// selected by the registers, for the supplied native rate.
func Frequency(reg Registers, nativeRate int) float64 {
	return float64(nativeRate) / float64(PeriodTicks(reg))
}
