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
	"math"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/jetsetilly/tiasound/curated"
	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/logger"
)

// the longest script that will be accepted, in seconds
const maxScriptLength = 600

// Sentinel error patterns returned by LoadScript() and RunScript().
const (
	ScriptError   = "sequencer: script: %v"
	ScriptTooLong = "sequencer: script is longer than %d seconds"
	ScriptBadRate = "sequencer: sample rate must be positive"
)

const logTag = "sequencer"

// Script is the result of running a Lua script.
type Script struct {
	Timeline Timeline

	// the position of the cursor when the script finished, in samples. this
	// is the natural length of the output
	Length int
}

// the state of the cursor while a script is running
type builder struct {
	sampleRate int
	cursor     int
	last       audio.Registers
	timeline   Timeline

	// the first error raised by a tia function. lua errors do not preserve
	// the curated error so it is kept here
	err error
}

func (b *builder) set(reg audio.Registers) {
	b.last = reg
	b.timeline = append(b.timeline, Event{At: b.cursor, Registers: reg})
}

func (b *builder) wait(ms float64) error {
	b.cursor += int(math.Round(ms * float64(b.sampleRate) / 1000))
	if b.cursor > maxScriptLength*b.sampleRate {
		return curated.Errorf(ScriptTooLong, maxScriptLength)
	}
	return nil
}

func (b *builder) duration() float64 {
	return float64(b.cursor) * 1000 / float64(b.sampleRate)
}

// LoadScript reads and runs the Lua script in the named file.
func LoadScript(filename string, sampleRate int) (Script, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return Script{}, curated.Errorf(ScriptError, err)
	}
	logger.Logf(logger.Allow, logTag, "running %s", filename)
	return RunScript(string(src), sampleRate)
}

// RunScript runs the Lua source and returns the resulting Script.
func RunScript(src string, sampleRate int) (Script, error) {
	if sampleRate <= 0 {
		return Script{}, curated.Errorf(ScriptBadRate)
	}

	b := &builder{sampleRate: sampleRate}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	// only the libraries that cannot touch the host
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.fn),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			return Script{}, curated.Errorf(ScriptError, err)
		}
	}

	// script output goes to the log
	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		var s []string
		for i := 1; i <= L.GetTop(); i++ {
			s = append(s, L.ToStringMeta(L.Get(i)).String())
		}
		logger.Log(logger.Allow, logTag, strings.Join(s, " "))
		return 0
	}))

	registers := func(L *lua.LState) audio.Registers {
		return audio.NewRegisters(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3))
	}

	milliseconds := func(L *lua.LState, n int) float64 {
		ms := float64(L.CheckNumber(n))
		if ms < 0 {
			L.ArgError(n, "duration cannot be negative")
		}
		return ms
	}

	wait := func(L *lua.LState, ms float64) {
		if err := b.wait(ms); err != nil {
			b.err = err
			L.RaiseError("%v", err)
		}
	}

	tbl := L.NewTable()
	L.SetFuncs(tbl, map[string]lua.LGFunction{
		"set": func(L *lua.LState) int {
			b.set(registers(L))
			return 0
		},
		"wait": func(L *lua.LState) int {
			wait(L, milliseconds(L, 1))
			return 0
		},
		"note": func(L *lua.LState) int {
			reg := registers(L)
			ms := milliseconds(L, 4)
			b.set(reg)
			wait(L, ms)
			return 0
		},
		"rest": func(L *lua.LState) int {
			ms := milliseconds(L, 1)
			reg := b.last
			reg.Volume = 0
			b.set(reg)
			wait(L, ms)
			return 0
		},
		"duration": func(L *lua.LState) int {
			L.Push(lua.LNumber(b.duration()))
			return 1
		},
	})
	L.SetGlobal("tia", tbl)

	if err := L.DoString(src); err != nil {
		if b.err != nil {
			return Script{}, b.err
		}
		return Script{}, curated.Errorf(ScriptError, err)
	}

	logger.Logf(logger.Allow, logTag, "%d events over %.0fms", len(b.timeline), b.duration())

	return Script{
		Timeline: b.timeline,
		Length:   b.cursor,
	}, nil
}
