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

package sequencer

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jetsetilly/tiasound/hardware/tia/audio"
)

// Event is a change of registers at a sample offset.
type Event struct {
	At        int
	Registers audio.Registers
}

func (e Event) String() string {
	return fmt.Sprintf("%d: %s", e.At, e.Registers)
}

// Timeline is a list of events.
type Timeline []Event

// Sort events by offset. Events with the same offset keep their relative
// order.
func (tl Timeline) Sort() {
	slices.SortStableFunc(tl, func(a, b Event) int {
		return cmp.Compare(a.At, b.At)
	})
}

// Render samples from the generator, applying events as it goes. The events
// in the timeline are sorted before rendering begins.
//
// Events that share a block are all sent to the generator but only the last
// of them takes effect, in the same way as updates arriving between blocks
// from another goroutine.
func (tl Timeline) Render(gen *audio.Generator, samples int) []float32 {
	tl.Sort()

	out := make([]float32, 0, samples)

	var idx int
	for pos := 0; pos < samples; pos += audio.BlockSize {
		for idx < len(tl) && tl[idx].At <= pos {
			gen.Update(tl[idx].Registers)
			idx++
		}
		blk := gen.Process()
		out = append(out, blk[:min(len(blk), samples-pos)]...)
	}

	return out
}
