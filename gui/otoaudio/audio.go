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

// Package otoaudio plays the output of an audio.Generator with the oto
// library. Unlike SDL, oto pulls samples from an io.Reader on its own
// goroutine.
package otoaudio

import (
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/hardware/tia/audio/mix"
	"github.com/jetsetilly/tiasound/logger"
)

const logTag = "otoaudio"

// Audio outputs sound using oto.
type Audio struct {
	ctx    *oto.Context
	player *oto.Player
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// blocks argument is the number of blocks buffered by the player.
//
// Note that oto allows only one context per process and so NewAudio() can
// only be called once.
func NewAudio(src mix.Source, sampleRate int, blocks int) (*Audio, error) {
	blocks = max(blocks, 1)
	buffer := time.Duration(float64(blocks*audio.BlockSize) / float64(sampleRate) * float64(time.Second))

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   buffer,
	})
	if err != nil {
		return nil, fmt.Errorf("otoaudio: %w", err)
	}
	<-ready

	stream := mix.NewStream(src, mix.FormatFloat32LE)

	aud := &Audio{
		ctx:    ctx,
		player: ctx.NewPlayer(stream),
	}
	aud.player.SetBufferSize(blocks * stream.BlockBytes())
	aud.player.Play()

	logger.Logf(logger.Allow, logTag, "frequency: %d samples/sec", sampleRate)
	logger.Logf(logger.Allow, logTag, "buffer: %d blocks (%v)", blocks, buffer)

	return aud, nil
}

// Close stops playback.
func (aud *Audio) Close() error {
	aud.player.Pause()
	aud.player.Close()
	if err := aud.ctx.Suspend(); err != nil {
		return fmt.Errorf("otoaudio: %w", err)
	}
	return nil
}
