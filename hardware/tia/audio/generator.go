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
	"sync/atomic"
)

// OutputRate is the default sample rate of the generated audio.
const OutputRate = 48000

// NativeRate is the rate at which the TIA generates audio. The TIA emulation
// here is ticked at this rate before the output is converted to OutputRate.
//
// the figure is close to twice the horizontal scan rate of an NTSC television
// (2 * 15720)
const NativeRate = 31440

// BlockSize is the number of samples produced by a call to Process().
const BlockSize = 128

// the volume register is divided by this value to produce the amplitude of
// the output. this gives a maximum amplitude of 0.5 rather than 1.0
const volumeDivisor = 30

// Rates specifies the output sample rate and the native rate of the
// Generator.
type Rates struct {
	Output int
	Native int
}

// DefaultRates returns the OutputRate and NativeRate constants as a Rates
// instance.
func DefaultRates() Rates {
	return Rates{
		Output: OutputRate,
		Native: NativeRate,
	}
}

// Phase describes the position of the Generator within the current waveform.
type Phase struct {
	// native ticks towards the next phase advance
	Tick int

	// index into the current Sequence
	Index int

	// phase advances counted at the current index
	Step int

	// the output level. either 0 or 1
	Level uint8
}

// Generator produces audio samples for a single TIA audio channel.
//
// Samples are produced by FillBlock() or Process(). These functions should
// only ever be called from one goroutine (the audio goroutine). The Update()
// and Registers() functions can be called from any goroutine.
type Generator struct {
	rates Rates

	// the registers being used by the synthesis loop along with values
	// derived from them
	reg       Registers
	seq       Sequence
	clocks    int
	amplitude float32

	// the most recent register update that has not yet been applied. it is
	// swapped out at the start of every block
	pending atomic.Pointer[Registers]

	// the registers that were applied most recently. this is the same value
	// as the reg field but available to other goroutines
	applied atomic.Pointer[Registers]

	phase Phase

	// fractional accumulator for the sample rate conversion. the output rate
	// is added once per native tick and a sample is emitted every time the
	// accumulator reaches the native rate
	accumulator int

	// number of native ticks since the registers were last applied
	ticks uint64

	block [BlockSize]float32
}

// NewGenerator is the preferred method of initialisation for the Generator
// type. The default rates are used.
func NewGenerator() *Generator {
	return NewGeneratorWithRates(DefaultRates())
}

// NewGeneratorWithRates creates a new Generator with the specified rates. A
// rate that is zero or less is replaced with the default value.
func NewGeneratorWithRates(rates Rates) *Generator {
	if rates.Output <= 0 {
		rates.Output = OutputRate
	}
	if rates.Native <= 0 {
		rates.Native = NativeRate
	}

	g := &Generator{
		rates: rates,
	}
	g.apply(&Registers{})

	return g
}

// Rates returns the rates used by the generator.
func (g *Generator) Rates() Rates {
	return g.rates
}

// Update the registers of the generator. The registers are clamped before
// use.
//
// The update will be applied at the start of the next call to FillBlock() or
// Process(). Applying an update resets the generator completely, so the
// waveform restarts from the beginning. If more than one update happens
// before the next block then only the most recent update is applied.
func (g *Generator) Update(reg Registers) {
	reg = reg.Clamp()
	g.pending.Store(&reg)
}

// Registers returns the registers currently being used to generate audio.
// Registers that have been sent with Update() but not yet applied are not
// returned.
func (g *Generator) Registers() Registers {
	return *g.applied.Load()
}

// Phase returns the current position within the waveform. Like FillBlock(),
// it should only be called from the audio goroutine.
func (g *Generator) Phase() Phase {
	return g.phase
}

// Ticks returns the number of native ticks since the registers were last
// applied. Like FillBlock(), it should only be called from the audio
// goroutine.
func (g *Generator) Ticks() uint64 {
	return g.ticks
}

// apply registers and reset all generator state
func (g *Generator) apply(reg *Registers) {
	var div int
	g.reg = *reg
	g.seq, div = lookup(reg.Control)
	g.clocks = div * (int(reg.Freq) + 1)
	g.amplitude = float32(reg.Volume) / volumeDivisor
	g.phase = Phase{Level: 1}
	g.accumulator = 0
	g.ticks = 0
	g.applied.Store(reg)
}

// Process fills the generator's internal block of BlockSize samples and
// returns it. The returned slice is overwritten on the next call to
// Process().
func (g *Generator) Process() []float32 {
	g.FillBlock(g.block[:])
	return g.block[:]
}

// FillBlock fills every entry of buf with a sample. Samples are in the range
// 0.0 to 0.5.
//
// The state of the generator carries over from one call to the next, meaning
// that filling two short buffers produces exactly the same samples as one
// long buffer. This includes a sample that was due but for which there was
// no room in buf.
func (g *Generator) FillBlock(buf []float32) {
	if reg := g.pending.Swap(nil); reg != nil {
		g.apply(reg)
	}

	var i int
	for {
		for g.accumulator >= g.rates.Native {
			if i >= len(buf) {
				return
			}
			buf[i] = g.sample()
			g.accumulator -= g.rates.Native
			i++
		}

		if i >= len(buf) {
			return
		}

		g.tick()
		g.accumulator += g.rates.Output
	}
}

func (g *Generator) sample() float32 {
	if g.phase.Level == 0 {
		return 0
	}
	return g.amplitude
}

// tick advances the generator by one native tick
func (g *Generator) tick() {
	g.ticks++

	g.phase.Tick++
	if g.phase.Tick < g.clocks {
		return
	}
	g.phase.Tick = 0

	g.phase.Step++
	if g.phase.Step == int(g.seq[g.phase.Index]) {
		g.phase.Step = 0
		g.phase.Index++
		if g.seq[g.phase.Index] == sentinel {
			g.phase.Index = 0
		}
	}

	// even indexes in the sequence are high
	if g.phase.Index&0x01 == 0x00 {
		g.phase.Level = 1
	} else {
		g.phase.Level = 0
	}
}
