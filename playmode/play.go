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
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/term"
	xterm "golang.org/x/term"

	"github.com/jetsetilly/tiasound/curated"
	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/logger"
)

// Sentinel error patterns returned by Play().
const (
	NotTerminal = "playmode: input is not a terminal"
	PlayError   = "playmode: %v"
)

const logTag = "playmode"

// Source receives register updates from Play(). The audio.Generator type
// satisfies this interface.
type Source interface {
	Update(audio.Registers)
	Rates() audio.Rates
}

// Options for the Play() function.
type Options struct {
	// the registers at the start of playback
	Registers audio.Registers

	// the terminal device to read keys from. defaults to /dev/tty
	TTY string

	// where the status line is drawn. defaults to os.Stdout
	Output io.Writer
}

// Play edits the registers of the Source from the keyboard until the quit key
// is pressed or the program is interrupted. Playback itself must have been
// started before Play() is called.
func Play(src Source, opts Options) error {
	if !xterm.IsTerminal(int(os.Stdin.Fd())) {
		return curated.Errorf(NotTerminal)
	}

	if opts.TTY == "" {
		opts.TTY = "/dev/tty"
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	t, err := term.Open(opts.TTY, term.CBreakMode)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer func() {
		t.Restore()
		t.Close()
	}()

	keys := make(chan []byte)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	go readKeys(t, keys, readErr, done)

	// stops the reader once edit() returns. deferred after the terminal is
	// closed so it runs first
	defer close(done)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	return edit(src, opts, keys, readErr, intChan)
}

// readKeys forwards everything read from the terminal to the keys channel
// until a read fails or done is closed
func readKeys(r io.Reader, keys chan<- []byte, readErr chan<- error, done <-chan struct{}) {
	for {
		b := make([]byte, 8)
		n, err := r.Read(b)
		if err != nil {
			select {
			case readErr <- err:
			case <-done:
			}
			return
		}
		select {
		case keys <- b[:n]:
		case <-done:
			return
		}
	}
}

// the main loop of Play() separated from the terminal
func edit(src Source, opts Options, keys <-chan []byte, readErr <-chan error, intChan <-chan os.Signal) error {
	ed := NewEditor(opts.Registers)
	native := src.Rates().Native

	draw := func() {
		fmt.Fprintf(opts.Output, "\r%s\x1b[K", Status(ed.Edited(), ed.Muted(), native))
	}

	src.Update(ed.Registers())
	logger.Logf(logger.Allow, logTag, "start: %s", ed.Registers())
	draw()

	defer fmt.Fprintln(opts.Output)

	for {
		select {
		case <-intChan:
			return nil
		case err := <-readErr:
			return curated.Errorf(PlayError, err)
		case b := <-keys:
			switch ed.Input(b) {
			case ActionQuit:
				return nil
			case ActionUpdate:
				src.Update(ed.Registers())
				logger.Logf(logger.Allow, logTag, "update: %s", ed.Registers())
				draw()
			}
		}
	}
}
