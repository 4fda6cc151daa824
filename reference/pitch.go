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

package reference

import (
	"fmt"
	"math"

	"github.com/jetsetilly/tiasound/curated"
	"github.com/jetsetilly/tiasound/hardware/tia/audio"
)

// Sentinel error patterns returned by EstimateFrequency() and Compare().
const (
	NoSignal = "reference: no signal"
	NoEdges  = "reference: waveform for %s has no edges"
)

// the hysteresis applied around the mean of the signal, as a fraction of the
// peak to peak range
const hysteresis = 0.1

// RisingEdges returns the index of every rising edge in the data. An edge is
// a crossing of the mean of the signal with a small amount of hysteresis.
func RisingEdges(data []float32) []int {
	if len(data) == 0 {
		return nil
	}

	var sum float64
	lo, hi := data[0], data[0]
	for _, v := range data {
		sum += float64(v)
		lo = min(lo, v)
		hi = max(hi, v)
	}
	mean := float32(sum / float64(len(data)))
	h := (hi - lo) * hysteresis
	if h == 0 {
		return nil
	}

	var edges []int
	high := data[0] > mean
	for i, v := range data {
		if high {
			if v < mean-h {
				high = false
			}
		} else if v > mean+h {
			high = true
			edges = append(edges, i)
		}
	}

	return edges
}

// EstimateFrequency returns the number of rising edges per second in the
// data. The measurement is taken between the first and last edge so partial
// cycles at either end do not affect it.
func EstimateFrequency(data []float32, sampleRate float64) (float64, error) {
	edges := RisingEdges(data)
	if len(edges) < 2 || sampleRate <= 0 {
		return 0, curated.Errorf(NoSignal)
	}
	span := float64(edges[len(edges)-1] - edges[0])
	return float64(len(edges)-1) * sampleRate / span, nil
}

// Result of a comparison between measured and expected frequency.
type Result struct {
	Registers audio.Registers

	// the frequency of the complete waveform expected for the registers
	Expected float64

	// the number of rising edges per second in the audio data
	EdgeRate float64

	// the frequency of the complete waveform as measured. this is the
	// EdgeRate divided by the number of edges in one cycle of the waveform
	Measured float64
}

// Cents returns the difference between the measured and expected frequency
// in cents. A positive value means the measured frequency is sharp.
func (r Result) Cents() float64 {
	return 1200 * math.Log2(r.Measured/r.Expected)
}

func (r Result) String() string {
	return fmt.Sprintf("%s: expected %.2fHz, measured %.2fHz (%+.1f cents)",
		r.Registers, r.Expected, r.Measured, r.Cents())
}

// Compare the frequency of the waveform in the PCM data with the frequency
// expected for the registers at the native rate.
func Compare(pcm PCM, reg audio.Registers, nativeRate int) (Result, error) {
	reg = reg.Clamp()

	seq, _ := audio.Lookup(reg.Control)
	if seq.Edges() == 0 {
		return Result{}, curated.Errorf(NoEdges, reg)
	}

	rate, err := EstimateFrequency(pcm.Data, pcm.SampleRate)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Registers: reg,
		Expected:  audio.Frequency(reg, nativeRate),
		EdgeRate:  rate,
		Measured:  rate / float64(seq.Edges()),
	}, nil
}
