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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	xterm "golang.org/x/term"

	"github.com/jetsetilly/tiasound/curated"
	"github.com/jetsetilly/tiasound/gui/otoaudio"
	"github.com/jetsetilly/tiasound/gui/sdlaudio"
	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/logger"
	"github.com/jetsetilly/tiasound/modalflag"
	"github.com/jetsetilly/tiasound/playmode"
	"github.com/jetsetilly/tiasound/preferences"
	"github.com/jetsetilly/tiasound/prefs"
	"github.com/jetsetilly/tiasound/reference"
	"github.com/jetsetilly/tiasound/sequencer"
	"github.com/jetsetilly/tiasound/statsview"
	"github.com/jetsetilly/tiasound/tables"
	"github.com/jetsetilly/tiasound/version"
	"github.com/jetsetilly/tiasound/wavwriter"
)

// SDL prefers to be initialised and used from the main thread
func init() {
	runtime.LockOSThread()
}

// exit values
const (
	exitHelp     = 0
	exitArgs     = 10
	exitModeFail = 20
)

// number of log entries shown when a mode fails
const logTail = 5

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	logger.Clear()

	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RENDER", "PLAY", "TABLES", "COMPARE", "VERSION")
	log := md.AddBool("log", false, "echo log to stdout")
	cmdPrefs := md.AddString("prefs", "", "preferences for this session (eg. \"audio.outputrate::44100\")")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitHelp
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	if *log {
		if f, ok := output.(*os.File); ok && xterm.IsTerminal(int(f.Fd())) {
			logger.SetEcho(logger.NewColorizer(output))
		} else {
			logger.SetEcho(output)
		}
	} else {
		logger.SetEcho(nil)
	}

	if *cmdPrefs != "" {
		prefs.PushCommandLineStack(*cmdPrefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "tiasound", "unused preferences: %s", unused)
			}
		}()
	}

	switch md.Mode() {
	case "RENDER":
		err = render(md, output)
	case "PLAY":
		err = play(md, output)
	case "TABLES":
		err = showTables(md, output)
	case "COMPARE":
		err = compare(md, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)

		// the log is already on screen if it is being echoed
		if !*log {
			logger.Tail(output, logTail)
		}
		return exitModeFail
	}

	return 0
}

// registers flags are shared by several modes
type registerFlags struct {
	volume  *int
	control *int
	freq    *int
}

func addRegisterFlags(md *modalflag.Modes, volume int, control int, freq int) registerFlags {
	return registerFlags{
		volume:  md.AddInt("volume", volume, "AUDV register value (0 to 15)"),
		control: md.AddInt("control", control, "AUDC register value (0 to 15)"),
		freq:    md.AddInt("freq", freq, "AUDF register value (0 to 31)"),
	}
}

func (f registerFlags) registers() audio.Registers {
	return audio.NewRegisters(*f.volume, *f.control, *f.freq)
}

// flagWasSet returns true if the named flag was given on the command line
func flagWasSet(md *modalflag.Modes, name string) bool {
	var set bool
	md.Visit(func(flag string) {
		set = set || flag == name
	})
	return set
}

func render(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	reg := addRegisterFlags(md, 15, 4, 0)
	seconds := md.AddFloat64("seconds", 1.0, "length of output in seconds")
	script := md.AddString("script", "", "lua script to sequence register changes")
	md.AdditionalHelp("The single argument is the name of the WAV file to create.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("one WAV filename required for %s mode", md)
	}

	prf, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	gen := audio.NewGeneratorWithRates(prf.Rates())
	rate := gen.Rates().Output

	var tl sequencer.Timeline
	samples := int(*seconds * float64(rate))

	if *script != "" {
		scr, err := sequencer.LoadScript(*script, rate)
		if err != nil {
			return err
		}
		tl = scr.Timeline
		if !flagWasSet(md, "seconds") {
			samples = scr.Length
		}
	} else {
		tl = sequencer.Timeline{{At: 0, Registers: reg.registers()}}
	}

	if samples <= 0 {
		return fmt.Errorf("nothing to render")
	}

	aw, err := wavwriter.New(md.GetArg(0), rate)
	if err != nil {
		return err
	}
	if err := aw.Write(tl.Render(gen, samples)); err != nil {
		return err
	}
	if err := aw.EndMixing(); err != nil {
		return err
	}

	fmt.Fprintf(output, "%d samples written to %s\n", samples, md.GetArg(0))

	return nil
}

// the interface shared by the playback backends
type player interface {
	Close() error
}

func play(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	reg := addRegisterFlags(md, 8, 4, 10)
	backend := md.AddString("backend", "", "playback backend: SDL, OTO (default from preferences)")
	blocks := md.AddInt("blocks", 0, "number of blocks to buffer (default from preferences)")
	stats := md.AddBool("statsview", false, "run stats server (only if built with statsview tag)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	if *backend == "" {
		*backend = prf.Backend.String()
	}
	if *blocks <= 0 {
		*blocks = prf.BufferBlocks.Get().(int)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		statsview.Launch(output)
	}

	gen := audio.NewGeneratorWithRates(prf.Rates())

	var plr player
	switch strings.ToUpper(*backend) {
	case preferences.BackendSDL:
		plr, err = sdlaudio.NewAudio(gen, gen.Rates().Output, *blocks)
	case preferences.BackendOto:
		plr, err = otoaudio.NewAudio(gen, gen.Rates().Output, *blocks)
	default:
		return fmt.Errorf("unknown playback backend (%s)", *backend)
	}
	if err != nil {
		return err
	}
	defer plr.Close()

	fmt.Fprintln(output, version.Title())

	return playmode.Play(gen, playmode.Options{
		Registers: reg.registers(),
		Output:    output,
	})
}

func showTables(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	freq := md.AddInt("freq", 0, "AUDF register value used for the frequency column")
	plain := md.AddBool("plain", false, "do not style the table")
	memviz := md.AddString("memviz", "", "write graphviz dump of the tables to file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := preferences.NewPreferences()
	if err != nil {
		return err
	}
	native := prf.Rates().Native

	f := audio.NewRegisters(0, 0, *freq).Freq

	if *memviz != "" {
		w, err := os.Create(*memviz)
		if err != nil {
			return err
		}
		tables.Memviz(w, f, native)
		if err := w.Close(); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "tables", "memviz written to %s", *memviz)
	}

	styled := !*plain
	if o, ok := output.(*os.File); !ok || !xterm.IsTerminal(int(o.Fd())) {
		styled = false
	}

	return tables.Write(output, styled, f, native)
}

func compare(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	reg := addRegisterFlags(md, 15, 4, 0)
	self := md.AddBool("self", false, "measure the generator instead of a recording")
	seconds := md.AddFloat64("seconds", 1.0, "length of generator output to measure with -self")
	md.AdditionalHelp("The single argument is a WAV or MP3 recording of the registers.")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	var pcm reference.PCM

	if *self {
		if len(md.RemainingArgs()) > 0 {
			return fmt.Errorf("-self does not take an argument")
		}
		gen := audio.NewGeneratorWithRates(prf.Rates())
		tl := sequencer.Timeline{{At: 0, Registers: reg.registers()}}
		pcm.SampleRate = float64(gen.Rates().Output)
		pcm.Data = tl.Render(gen, int(*seconds*pcm.SampleRate))
	} else {
		if len(md.RemainingArgs()) != 1 {
			return fmt.Errorf("one recording required for %s mode", md)
		}
		pcm, err = reference.Load(md.GetArg(0))
		if err != nil {
			return err
		}
	}

	r, err := reference.Compare(pcm, reg.registers(), prf.Rates().Native)
	if err != nil {
		if curated.Is(err, reference.NoEdges) {
			return fmt.Errorf("control %d has no pitch to compare", reg.registers().Control)
		}
		return err
	}

	fmt.Fprintln(output, r)

	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(output, version.Title())
	if *revision {
		_, rev, _ := version.Version()
		fmt.Fprintln(output, rev)
	}

	return nil
}
