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

// Package sdlaudio plays the output of an audio.Generator with SDL.
package sdlaudio

import (
	"fmt"
	"sync"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/hardware/tia/audio/mix"
	"github.com/jetsetilly/tiasound/logger"
)

const logTag = "sdlaudio"

// Audio outputs sound using SDL. Blocks are queued on the SDL device from a
// goroutine started by NewAudio().
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	stream *mix.Stream
	buffer []byte

	// the number of bytes that should be in the SDL queue at any one time
	queueLen uint32

	quit chan bool
	wg   sync.WaitGroup

	// an empty queue is noticed on every poll until it is refilled
	underrun *logger.Interval
	primed   bool
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// blocks argument is the number of blocks to keep queued with SDL. Fewer
// blocks means less latency between a register update and hearing it.
func NewAudio(src mix.Source, sampleRate int, blocks int) (*Audio, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}

	aud := &Audio{
		stream:   mix.NewStream(src, mix.FormatFloat32LE),
		quit:     make(chan bool),
		underrun: logger.NewInterval(time.Second),
	}
	aud.buffer = make([]byte, aud.stream.BlockBytes())
	aud.queueLen = uint32(max(blocks, 1) * aud.stream.BlockBytes())

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_F32LSB,
		Channels: 1,
		Samples:  audio.BlockSize,
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, fmt.Errorf("sdlaudio: %w", err)
	}

	logger.Logf(logger.Allow, logTag, "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, logTag, "buffer size: %d samples", aud.spec.Samples)
	logger.Logf(logger.Allow, logTag, "queue length: %d blocks", max(blocks, 1))

	// poll at a rate of one block so that the queue never runs dry
	period := time.Duration(float64(audio.BlockSize) / float64(sampleRate) * float64(time.Second))

	aud.wg.Add(1)
	go func() {
		defer aud.wg.Done()

		tck := time.NewTicker(period)
		defer tck.Stop()

		for {
			if err := aud.fill(); err != nil {
				logger.Log(logger.Allow, logTag, err)
				return
			}

			select {
			case <-aud.quit:
				return
			case <-tck.C:
			}
		}
	}()

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// queue blocks until the SDL queue is at the required length
func (aud *Audio) fill() error {
	if aud.primed && sdl.GetQueuedAudioSize(aud.id) == 0 {
		logger.Log(aud.underrun, logTag, "queue underrun")
	}
	aud.primed = true

	for sdl.GetQueuedAudioSize(aud.id) < aud.queueLen {
		aud.stream.Read(aud.buffer)
		if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
			return fmt.Errorf("sdlaudio: %w", err)
		}
	}
	return nil
}

// Close stops playback and closes the SDL device.
func (aud *Audio) Close() error {
	close(aud.quit)
	aud.wg.Wait()

	sdl.PauseAudioDevice(aud.id, true)
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)

	return nil
}
