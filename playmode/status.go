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
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jetsetilly/tiasound/hardware/tia/audio"
	"github.com/jetsetilly/tiasound/tables"
)

type styles struct {
	label lipgloss.Style
	value lipgloss.Style
	muted lipgloss.Style
	name  lipgloss.Style
}

func newStyles() styles {
	return styles{
		label: lipgloss.NewStyle().Faint(true),
		value: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(11)),
		muted: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(9)),
		name:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(14)),
	}
}

// Status returns a single line describing the registers, suitable for
// redrawing in place with a carriage return.
func Status(reg audio.Registers, muted bool, nativeRate int) string {
	st := newStyles()

	s := strings.Builder{}
	field := func(label string, value string) {
		s.WriteString(st.label.Render(label))
		s.WriteString(" ")
		s.WriteString(st.value.Render(value))
		s.WriteString("  ")
	}

	field("VOL", fmt.Sprintf("%2d", reg.Volume))
	field("CTRL", fmt.Sprintf("%2d", reg.Control))
	field("FREQ", fmt.Sprintf("%2d", reg.Freq))

	seq, _ := audio.Lookup(reg.Control)
	if seq.Edges() > 0 {
		field("PITCH", fmt.Sprintf("%8.2fHz", audio.Frequency(reg, nativeRate)))
	} else {
		field("PITCH", fmt.Sprintf("%10s", "-"))
	}

	s.WriteString(st.name.Render(tables.Name(reg.Control)))

	if muted {
		s.WriteString("  ")
		s.WriteString(st.muted.Render("MUTED"))
	}

	return s.String()
}
