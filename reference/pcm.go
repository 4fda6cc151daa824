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

// Package reference measures the pitch of recorded or generated audio and
// compares it with the pitch expected from a set of TIA registers. It can be
// used to check the generator against recordings of real hardware.
//
// Recordings can be WAV or MP3 files. Only the first (left) channel of a
// stereo recording is used.
package reference

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/tiasound/curated"
	"github.com/jetsetilly/tiasound/logger"
)

// Sentinel error patterns returned by Load().
const (
	UnsupportedFormat = "reference: unsupported file format (%s)"
	LoadError         = "reference: %s: %v"
)

const logTag = "reference"

// PCM is mono audio data normalised to the range -1.0 to 1.0.
type PCM struct {
	SampleRate float64
	Data       []float32
}

// Duration returns the length of the audio data.
func (p PCM) Duration() time.Duration {
	if p.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(p.Data)) / p.SampleRate * float64(time.Second))
}

// Load audio data from a WAV or MP3 file. The file type is decided by the
// filename extension.
func Load(filename string) (PCM, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var load func(io.ReadSeeker) (PCM, error)
	switch ext {
	case ".wav":
		load = loadWAV
	case ".mp3":
		load = loadMP3
	default:
		return PCM{}, curated.Errorf(UnsupportedFormat, ext)
	}

	f, err := os.Open(filename)
	if err != nil {
		return PCM{}, curated.Errorf(LoadError, strings.TrimPrefix(ext, "."), err)
	}
	defer f.Close()

	p, err := load(f)
	if err != nil {
		return PCM{}, curated.Errorf(LoadError, strings.TrimPrefix(ext, "."), err)
	}

	logger.Logf(logger.Allow, logTag, "%s: sample rate: %0.2fHz", filepath.Base(filename), p.SampleRate)
	logger.Logf(logger.Allow, logTag, "%s: total time: %.02fs", filepath.Base(filename), p.Duration().Seconds())

	return p, nil
}

func loadWAV(r io.ReadSeeker) (PCM, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return PCM{}, fmt.Errorf("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return PCM{}, err
	}

	chans := max(int(dec.NumChans), 1)
	depth := int(dec.BitDepth)
	if depth == 0 || depth > 32 {
		return PCM{}, fmt.Errorf("unsupported bit depth (%d)", depth)
	}

	// integer samples are normalised by the bit depth of the file. 8 bit WAV
	// data is unsigned
	scale := float32(int64(1) << (depth - 1))
	var offset int
	if depth == 8 {
		offset = 128
	}

	p := PCM{
		SampleRate: float64(dec.SampleRate),
		Data:       make([]float32, 0, len(buf.Data)/chans),
	}

	// copy first channel only
	for i := 0; i < len(buf.Data); i += chans {
		p.Data = append(p.Data, float32(buf.Data[i]-offset)/scale)
	}

	return p, nil
}

func loadMP3(r io.ReadSeeker) (PCM, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return PCM{}, err
	}

	p := PCM{
		SampleRate: float64(dec.SampleRate()),
	}

	// the decoded stream is always 16bit little-endian with two channels,
	// meaning four bytes per sample. the left channel is the first two bytes
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			p.Data = append(p.Data, float32(v)/32768)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return PCM{}, err
		}
	}

	return p, nil
}
