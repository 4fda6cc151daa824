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
	"github.com/jetsetilly/tiasound/hardware/tia/audio"
)

// Action is the result of giving input to the Editor.
type Action int

// List of valid Action values.
const (
	// the input had no effect
	ActionNone Action = iota

	// the registers should be sent to the generator
	ActionUpdate

	// playback should end
	ActionQuit
)

// ASCII values of keys with special meaning
const (
	keyEsc = 27

	// escape sequences for the cursor keys are ESC [ followed by one of these
	cursorIntro    = '['
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
)

// Editor keeps the registers being edited from the keyboard.
type Editor struct {
	reg   audio.Registers
	muted bool
}

// NewEditor is the preferred method of initialisation for the Editor type.
func NewEditor(reg audio.Registers) *Editor {
	return &Editor{
		reg: reg.Clamp(),
	}
}

// Registers returns the registers that should be sent to the generator. The
// volume is zero if the editor is muted.
func (ed *Editor) Registers() audio.Registers {
	reg := ed.reg
	if ed.muted {
		reg.Volume = 0
	}
	return reg
}

// Edited returns the registers being edited, ignoring the mute setting.
func (ed *Editor) Edited() audio.Registers {
	return ed.reg
}

// Muted returns true if the editor is muted.
func (ed *Editor) Muted() bool {
	return ed.muted
}

// Input processes the bytes from one read of the terminal. This will usually
// be a single key but fast typing can deliver several keys in one read and
// cursor keys arrive as a three byte escape sequence. Keys after a quit key
// are ignored.
func (ed *Editor) Input(b []byte) Action {
	act := ActionNone

	for len(b) > 0 {
		var a Action
		if len(b) >= 3 && b[0] == keyEsc && b[1] == cursorIntro {
			a = ed.cursor(b[2])
			b = b[3:]
		} else {
			a = ed.Key(b[0])
			b = b[1:]
		}

		switch a {
		case ActionQuit:
			return ActionQuit
		case ActionUpdate:
			act = ActionUpdate
		}
	}

	return act
}

func (ed *Editor) cursor(c byte) Action {
	switch c {
	case cursorUp:
		return ed.Key('V')
	case cursorDown:
		return ed.Key('v')
	case cursorForward:
		return ed.Key('F')
	case cursorBackward:
		return ed.Key('f')
	}
	return ActionNone
}

// Key processes a single key press.
func (ed *Editor) Key(k byte) Action {
	prev := ed.Registers()

	switch k {
	case 'q', 'Q', keyEsc:
		return ActionQuit
	case 'r', 'R':
		return ActionUpdate
	case 'm', 'M':
		ed.muted = !ed.muted
	case 'v':
		ed.reg.Volume = dec(ed.reg.Volume)
	case 'V':
		ed.reg.Volume = inc(ed.reg.Volume, audio.MaxVolume)
	case 'c':
		ed.reg.Control = dec(ed.reg.Control)
	case 'C':
		ed.reg.Control = inc(ed.reg.Control, audio.MaxControl)
	case 'f':
		ed.reg.Freq = dec(ed.reg.Freq)
	case 'F':
		ed.reg.Freq = inc(ed.reg.Freq, audio.MaxFreq)
	default:
		if k >= '0' && k <= '9' {
			ed.reg.Control = k - '0'
		}
	}

	if ed.Registers() == prev {
		return ActionNone
	}
	return ActionUpdate
}

func inc(v uint8, hi uint8) uint8 {
	if v >= hi {
		return hi
	}
	return v + 1
}

func dec(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return v - 1
}
