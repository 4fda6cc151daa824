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

package playmode_test

import (
	"testing"

	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/playmode"
	"github.com/jetsetilly/tiasound/test"
)

func TestEditorKeys(t *testing.T) {
	ed := playmode.NewEditor(audio.NewRegisters(8, 4, 10))

	test.ExpectEquality(t, ed.Key('V'), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers().Volume, uint8(9))
	test.ExpectEquality(t, ed.Key('v'), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers().Volume, uint8(8))

	test.ExpectEquality(t, ed.Key('C'), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers().Control, uint8(5))
	test.ExpectEquality(t, ed.Key('c'), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers().Control, uint8(4))

	test.ExpectEquality(t, ed.Key('F'), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers().Freq, uint8(11))
	test.ExpectEquality(t, ed.Key('f'), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers().Freq, uint8(10))

	test.ExpectEquality(t, ed.Key('7'), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers().Control, uint8(7))

	// selecting the control that is already selected changes nothing
	test.ExpectEquality(t, ed.Key('7'), playmode.ActionNone)

	// resending always causes an update
	test.ExpectEquality(t, ed.Key('r'), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers(), audio.NewRegisters(8, 7, 10))

	test.ExpectEquality(t, ed.Key('x'), playmode.ActionNone)
	test.ExpectEquality(t, ed.Key('q'), playmode.ActionQuit)
	test.ExpectEquality(t, ed.Key(27), playmode.ActionQuit)
}

func TestEditorLimits(t *testing.T) {
	ed := playmode.NewEditor(audio.NewRegisters(15, 15, 31))
	test.ExpectEquality(t, ed.Key('V'), playmode.ActionNone)
	test.ExpectEquality(t, ed.Key('C'), playmode.ActionNone)
	test.ExpectEquality(t, ed.Key('F'), playmode.ActionNone)
	test.ExpectEquality(t, ed.Registers(), audio.NewRegisters(15, 15, 31))

	ed = playmode.NewEditor(audio.NewRegisters(0, 0, 0))
	test.ExpectEquality(t, ed.Key('v'), playmode.ActionNone)
	test.ExpectEquality(t, ed.Key('c'), playmode.ActionNone)
	test.ExpectEquality(t, ed.Key('f'), playmode.ActionNone)
	test.ExpectEquality(t, ed.Registers(), audio.NewRegisters(0, 0, 0))

	// out of range registers are clamped by the editor
	ed = playmode.NewEditor(audio.Registers{Control: 20, Freq: 40, Volume: 20})
	test.ExpectEquality(t, ed.Registers(), audio.NewRegisters(15, 15, 31))
}

func TestEditorMute(t *testing.T) {
	ed := playmode.NewEditor(audio.NewRegisters(8, 4, 10))

	test.ExpectEquality(t, ed.Key('m'), playmode.ActionUpdate)
	test.ExpectSuccess(t, ed.Muted())
	test.ExpectEquality(t, ed.Registers().Volume, uint8(0))
	test.ExpectEquality(t, ed.Edited().Volume, uint8(8))

	// volume changes while muted are remembered but not heard
	test.ExpectEquality(t, ed.Key('V'), playmode.ActionNone)
	test.ExpectEquality(t, ed.Edited().Volume, uint8(9))

	// other changes are sent
	test.ExpectEquality(t, ed.Key('F'), playmode.ActionUpdate)

	test.ExpectEquality(t, ed.Key('m'), playmode.ActionUpdate)
	test.ExpectFailure(t, ed.Muted())
	test.ExpectEquality(t, ed.Registers(), audio.NewRegisters(9, 4, 11))
}

func TestEditorInput(t *testing.T) {
	ed := playmode.NewEditor(audio.NewRegisters(8, 4, 10))

	test.ExpectEquality(t, ed.Input(nil), playmode.ActionNone)
	test.ExpectEquality(t, ed.Input([]byte{27, '[', 'A'}), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers().Volume, uint8(9))
	test.ExpectEquality(t, ed.Input([]byte{27, '[', 'B'}), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers().Volume, uint8(8))
	test.ExpectEquality(t, ed.Input([]byte{27, '[', 'C'}), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers().Freq, uint8(11))
	test.ExpectEquality(t, ed.Input([]byte{27, '[', 'D'}), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers().Freq, uint8(10))

	// unknown escape sequences are ignored
	test.ExpectEquality(t, ed.Input([]byte{27, '[', 'Z'}), playmode.ActionNone)

	test.ExpectEquality(t, ed.Input([]byte{27}), playmode.ActionQuit)
	test.ExpectEquality(t, ed.Input([]byte("f")), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers().Freq, uint8(9))
}

func TestEditorInputSeveralKeys(t *testing.T) {
	ed := playmode.NewEditor(audio.NewRegisters(8, 4, 10))

	// keys typed quickly can arrive in a single read
	test.ExpectEquality(t, ed.Input([]byte("VV")), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers().Volume, uint8(10))

	// cursor sequences mixed with ordinary keys
	test.ExpectEquality(t, ed.Input([]byte{'F', 27, '[', 'C', 'c'}), playmode.ActionUpdate)
	test.ExpectEquality(t, ed.Registers().Freq, uint8(12))
	test.ExpectEquality(t, ed.Registers().Control, uint8(3))

	// nothing after the quit key is processed
	test.ExpectEquality(t, ed.Input([]byte("VqV")), playmode.ActionQuit)
	test.ExpectEquality(t, ed.Registers().Volume, uint8(11))

	// keys that change nothing
	test.ExpectEquality(t, ed.Input([]byte("xyz")), playmode.ActionNone)
}

