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

// Package preferences groups the preference values used by TIASound. The
// values are stored on disk with the prefs package.
package preferences

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/prefs"
	"github.com/jetsetilly/tiasound/resources"
)

// the name of the preferences file in the resources directory
const prefsFile = "preferences"

// List of playback backends.
const (
	BackendSDL = "SDL"
	BackendOto = "OTO"
)

// Preferences for TIASound.
type Preferences struct {
	dsk *prefs.Disk

	// sample rate of generated audio
	OutputRate prefs.Int

	// the rate at which the TIA is ticked
	NativeRate prefs.Int

	// playback backend used by PLAY mode. one of the Backend constants
	Backend prefs.String

	// the number of blocks queued by the playback backend before the
	// generator is asked for more
	BufferBlocks prefs.Int
}

func (p *Preferences) String() string {
	return fmt.Sprintf("output=%s native=%s backend=%s blocks=%s",
		p.OutputRate.String(), p.NativeRate.String(), p.Backend.String(), p.BufferBlocks.String())
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file in the resources
// directory.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefsFile)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	return newPreferences(pth)
}

// newPreferences creates a Preferences instance using the named file.
func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Backend.SetHookPost(func(v prefs.Value) error {
		switch strings.ToUpper(v.(string)) {
		case BackendSDL, BackendOto:
			return nil
		}
		return fmt.Errorf("unknown playback backend (%v)", v)
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	err = p.dsk.Add("audio.outputrate", &p.OutputRate)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("audio.nativerate", &p.NativeRate)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("play.backend", &p.Backend)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}
	err = p.dsk.Add("play.bufferblocks", &p.BufferBlocks)
	if err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	if err := p.dsk.Load(); err != nil {
		return nil, fmt.Errorf("preferences: %w", err)
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.OutputRate.Set(audio.OutputRate)
	p.NativeRate.Set(audio.NativeRate)
	p.Backend.Set(BackendSDL)
	p.BufferBlocks.Set(8)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Rates returns the OutputRate and NativeRate preferences as an instance of
// audio.Rates.
func (p *Preferences) Rates() audio.Rates {
	return audio.Rates{
		Output: p.OutputRate.Get().(int),
		Native: p.NativeRate.Get().(int),
	}
}
