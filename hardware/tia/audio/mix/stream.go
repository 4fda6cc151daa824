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

package mix

import (
	"github.com/jetsetilly/tiasound/hardware/tia/audio"
)

// Source of blocks of samples. The audio.Generator type satisfies this
// interface.
type Source interface {
	Process() []float32
}

// Format of the bytes produced by a Stream.
type Format int

// List of valid Format values.
const (
	FormatFloat32LE Format = iota
	FormatInt16LE
)

// SampleSize returns the number of bytes used by a single sample.
func (f Format) SampleSize() int {
	if f == FormatInt16LE {
		return 2
	}
	return 4
}

// Stream is an io.Reader that produces bytes from a Source. Blocks are
// requested from the Source only when they are needed and any bytes not
// consumed by a call to Read() are returned by the next call.
//
// Like the Source itself, a Stream should only be read from one goroutine.
type Stream struct {
	src    Source
	format Format

	buf     []byte
	pending []byte
}

// NewStream is the preferred method of initialisation for the Stream type.
func NewStream(src Source, format Format) *Stream {
	return &Stream{
		src:    src,
		format: format,
		buf:    make([]byte, audio.BlockSize*format.SampleSize()),
	}
}

// BlockBytes returns the number of bytes in one block of samples.
func (s *Stream) BlockBytes() int {
	return len(s.buf)
}

// Read implements the io.Reader interface. The buffer is always filled.
func (s *Stream) Read(p []byte) (int, error) {
	var n int
	for n < len(p) {
		if len(s.pending) == 0 {
			s.refill()
		}
		c := copy(p[n:], s.pending)
		s.pending = s.pending[c:]
		n += c
	}
	return n, nil
}

func (s *Stream) refill() {
	blk := s.src.Process()
	if need := len(blk) * s.format.SampleSize(); need > len(s.buf) {
		s.buf = make([]byte, need)
	}

	var m int
	switch s.format {
	case FormatInt16LE:
		m = Int16LE(s.buf, blk)
	default:
		m = Float32LE(s.buf, blk)
	}
	s.pending = s.buf[:m]
}
