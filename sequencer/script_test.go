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

package sequencer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/tiasound/curated"
	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/sequencer"
	"github.com/jetsetilly/tiasound/test"
)

func TestScriptNotes(t *testing.T) {
	scr, err := sequencer.RunScript("tia.note(15, 4, 0, 10)\ntia.rest(5)", audio.OutputRate)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(scr.Timeline), 2)

	test.ExpectEquality(t, scr.Timeline[0].At, 0)
	test.ExpectEquality(t, scr.Timeline[0].Registers, square)

	// a rest keeps the control and frequency of the previous note
	test.ExpectEquality(t, scr.Timeline[1].At, 480)
	test.ExpectEquality(t, scr.Timeline[1].Registers, silence)

	test.ExpectEquality(t, scr.Length, 720)
}

func TestScriptSetAndWait(t *testing.T) {
	src := `
		tia.set(8, 12, 17)
		tia.wait(250)
		assert(tia.duration() == 250)
		for f = 0, 3 do
			tia.note(8, 12, f, 10)
		end
	`
	scr, err := sequencer.RunScript(src, audio.OutputRate)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(scr.Timeline), 5)
	test.ExpectEquality(t, scr.Timeline[0].Registers, audio.NewRegisters(8, 12, 17))
	test.ExpectEquality(t, scr.Timeline[1].At, 12000)
	test.ExpectEquality(t, scr.Timeline[4].At, 12000+3*480)
	test.ExpectEquality(t, scr.Timeline[4].Registers.Freq, uint8(3))
	test.ExpectEquality(t, scr.Length, 12000+4*480)
}

func TestScriptClamping(t *testing.T) {
	scr, err := sequencer.RunScript("tia.set(20, 16, 40)", audio.OutputRate)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(scr.Timeline), 1)
	test.ExpectEquality(t, scr.Timeline[0].Registers, audio.NewRegisters(15, 15, 31))
	test.ExpectEquality(t, scr.Length, 0)
}

func TestScriptErrors(t *testing.T) {
	_, err := sequencer.RunScript("tia.set(", audio.OutputRate)
	test.ExpectSuccess(t, curated.Is(err, sequencer.ScriptError))

	_, err = sequencer.RunScript("tia.wait(-1)", audio.OutputRate)
	test.ExpectSuccess(t, curated.Is(err, sequencer.ScriptError))

	_, err = sequencer.RunScript("tia.set('loud', 1, 1)", audio.OutputRate)
	test.ExpectSuccess(t, curated.Is(err, sequencer.ScriptError))

	_, err = sequencer.RunScript("tia.wait(601000)", audio.OutputRate)
	test.ExpectSuccess(t, curated.Is(err, sequencer.ScriptTooLong))

	_, err = sequencer.RunScript("", 0)
	test.ExpectSuccess(t, curated.Is(err, sequencer.ScriptBadRate))

	// host libraries are not available to scripts
	_, err = sequencer.RunScript("io.write('hello')", audio.OutputRate)
	test.ExpectSuccess(t, curated.Is(err, sequencer.ScriptError))
	_, err = sequencer.RunScript("os.exit(1)", audio.OutputRate)
	test.ExpectSuccess(t, curated.Is(err, sequencer.ScriptError))
}

func TestLoadScript(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "arpeggio.lua")
	src := `
		for _, f in ipairs({17, 14, 11}) do
			tia.note(12, 12, f, 100)
		end
	`
	test.DemandSuccess(t, os.WriteFile(fn, []byte(src), 0o600))

	scr, err := sequencer.LoadScript(fn, audio.OutputRate)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(scr.Timeline), 3)
	test.ExpectEquality(t, scr.Length, 3*4800)

	out := scr.Timeline.Render(audio.NewGenerator(), scr.Length)
	test.ExpectEquality(t, len(out), scr.Length)

	_, err = sequencer.LoadScript(filepath.Join(t.TempDir(), "missing.lua"), audio.OutputRate)
	test.ExpectSuccess(t, curated.Is(err, sequencer.ScriptError))
}
