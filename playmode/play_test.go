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

package playmode

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/tiasound/curated"
	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/test"
)

// records every update
type recordingSource struct {
	updates []audio.Registers
}

func (s *recordingSource) Update(reg audio.Registers) {
	s.updates = append(s.updates, reg)
}

func (s *recordingSource) Rates() audio.Rates {
	return audio.DefaultRates()
}

func TestEditLoop(t *testing.T) {
	src := &recordingSource{}
	out := &test.CompareWriter{}

	keys := make(chan []byte, 10)
	keys <- []byte("V")
	keys <- []byte("x")
	keys <- []byte("2")
	keys <- []byte("q")

	opts := Options{Registers: audio.NewRegisters(8, 4, 10), Output: out}
	err := edit(src, opts, keys, make(chan error), make(chan os.Signal))
	test.ExpectSuccess(t, err)

	// the initial registers plus two changes. the unknown key and the quit
	// key do not cause an update
	test.DemandEquality(t, len(src.updates), 3)
	test.ExpectEquality(t, src.updates[0], audio.NewRegisters(8, 4, 10))
	test.ExpectEquality(t, src.updates[1], audio.NewRegisters(9, 4, 10))
	test.ExpectEquality(t, src.updates[2], audio.NewRegisters(9, 2, 10))

	// the status line is redrawn for every update and finished with a newline
	test.ExpectEquality(t, out.Count("\r"), 3)
	test.ExpectSuccess(t, strings.HasSuffix(out.String(), "\n"))
}

func TestEditLoopInterrupt(t *testing.T) {
	src := &recordingSource{}
	intChan := make(chan os.Signal, 1)
	intChan <- os.Interrupt

	opts := Options{Output: &test.CompareWriter{}}
	err := edit(src, opts, make(chan []byte), make(chan error), intChan)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(src.updates), 1)
}

func TestEditLoopReadError(t *testing.T) {
	src := &recordingSource{}
	readErr := make(chan error, 1)
	readErr <- errors.New("device gone")

	opts := Options{Output: &test.CompareWriter{}}
	err := edit(src, opts, make(chan []byte), readErr, make(chan os.Signal))
	test.ExpectSuccess(t, curated.Is(err, PlayError))
}

func TestStatus(t *testing.T) {
	s := Status(audio.NewRegisters(15, 4, 10), false, audio.NativeRate)
	test.ExpectSuccess(t, strings.Contains(s, "VOL"))
	test.ExpectSuccess(t, strings.Contains(s, "1429.09Hz"))
	test.ExpectSuccess(t, strings.Contains(s, "div 2 pure tone"))
	test.ExpectFailure(t, strings.Contains(s, "MUTED"))

	// a waveform without edges has no pitch
	s = Status(audio.NewRegisters(15, 0, 10), true, audio.NativeRate)
	test.ExpectFailure(t, strings.Contains(s, "Hz"))
	test.ExpectSuccess(t, strings.Contains(s, "MUTED"))
}

// a terminal that always has another key ready
type endlessKeys struct{}

func (endlessKeys) Read(b []byte) (int, error) {
	b[0] = 'V'
	return 1, nil
}

func TestReadKeysStops(t *testing.T) {
	keys := make(chan []byte)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		readKeys(endlessKeys{}, keys, readErr, done)
		close(finished)
	}()

	test.ExpectEquality(t, string(<-keys), "V")

	// nothing is receiving keys any more. the reader must still return
	close(done)
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatalf("key reader did not stop")
	}
}

func TestReadKeysError(t *testing.T) {
	readErr := make(chan error, 1)
	readKeys(strings.NewReader(""), make(chan []byte), readErr, make(chan struct{}))
	test.ExpectSuccess(t, errors.Is(<-readErr, io.EOF))
}
