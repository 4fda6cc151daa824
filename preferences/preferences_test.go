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

package preferences

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/test"
)

func TestDefaults(t *testing.T) {
	p, err := newPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Rates(), audio.DefaultRates())
	test.ExpectEquality(t, p.Backend.String(), BackendSDL)
	test.ExpectEquality(t, p.BufferBlocks.Get().(int), 8)
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.OutputRate.Set(44100))
	test.ExpectSuccess(t, p.Backend.Set(BackendOto))
	test.DemandSuccess(t, p.Save())

	q, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Rates(), audio.Rates{Output: 44100, Native: audio.NativeRate})
	test.ExpectEquality(t, q.Backend.String(), BackendOto)

	q.SetDefaults()
	test.ExpectEquality(t, q.Rates(), audio.DefaultRates())
	test.ExpectSuccess(t, q.Load())
	test.ExpectEquality(t, q.OutputRate.Get().(int), 44100)
}

func TestBackendValidation(t *testing.T) {
	p, err := newPreferences(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Backend.Set("oto"))
	test.ExpectFailure(t, p.Backend.Set("pulseaudio"))
}
