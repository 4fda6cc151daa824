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

// Package tables describes the sixteen waveforms selected by the AUDC
// register. The description can be written as plain text, as a styled table
// for the terminal, or as a graphviz dump of the underlying data.
package tables

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bradleyjkemp/memviz"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jetsetilly/tiasound/hardware/tia/audio"
)

// the common names of the waveforms for each control value
var names = [16]string{
	"set high",
	"4 bit poly",
	"div 15 -> 4 bit poly",
	"5 bit poly -> 4 bit poly",
	"div 2 pure tone",
	"div 2 pure tone",
	"div 31 pure tone",
	"5 bit poly -> div 2",
	"9 bit poly (white noise)",
	"5 bit poly",
	"div 31 pure tone",
	"set high",
	"div 6 pure tone",
	"div 6 pure tone",
	"div 93 pure tone",
	"5 bit poly div 6",
}

// Name returns the common name of the waveform for the control value. Only
// the lower four bits of the value are used.
func Name(control uint8) string {
	return names[control&0x0f]
}

// Entry describes the waveform for one control value.
type Entry struct {
	Control  uint8
	Name     string
	Divisor  int
	Sequence audio.Sequence
	Period   int
	Edges    int

	// the frequency of the waveform for the Freq value given to Entries().
	// zero if the waveform has no edges
	Frequency float64
}

// Entries returns the description of all sixteen waveforms for the Freq value.
func Entries(freq uint8, nativeRate int) []Entry {
	e := make([]Entry, 0, 16)
	for c := range uint8(16) {
		seq, div := audio.Lookup(c)
		n := Entry{
			Control:  c,
			Name:     Name(c),
			Divisor:  div,
			Sequence: seq,
			Period:   seq.Period(),
			Edges:    seq.Edges(),
		}
		if n.Edges > 0 {
			n.Frequency = audio.Frequency(audio.Registers{Control: c, Freq: freq}, nativeRate)
		}
		e = append(e, n)
	}
	return e
}

var headers = []string{"CTRL", "DIV", "LEN", "PERIOD", "EDGES", "FREQ", "NAME"}

func (e Entry) cells() []string {
	f := "-"
	if e.Edges > 0 {
		f = fmt.Sprintf("%.2f", e.Frequency)
	}
	return []string{
		strconv.Itoa(int(e.Control)),
		strconv.Itoa(e.Divisor),
		strconv.Itoa(e.Sequence.Len()),
		strconv.Itoa(e.Period),
		strconv.Itoa(e.Edges),
		f,
		e.Name,
	}
}

// Write the table of waveforms for the Freq value to w. If styled is true the
// table is drawn with lipgloss, otherwise it is plain text with fixed width
// columns.
func Write(w io.Writer, styled bool, freq uint8, nativeRate int) error {
	entries := Entries(freq, nativeRate)

	if !styled {
		const format = "%4s %4s %4s %6s %5s %10s  %s\n"
		h := make([]any, len(headers))
		for i := range headers {
			h[i] = headers[i]
		}
		if _, err := fmt.Fprintf(w, format, h...); err != nil {
			return err
		}
		for _, e := range entries {
			c := e.cells()
			if _, err := fmt.Fprintf(w, format, c[0], c[1], c[2], c[3], c[4], c[5], c[6]); err != nil {
				return err
			}
		}
		return nil
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(11)).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	number := cell.Align(lipgloss.Right)
	noise := cell.Foreground(lipgloss.ANSIColor(13))
	tone := cell.Foreground(lipgloss.ANSIColor(14))

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(8))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			// row zero is the header row
			switch {
			case row == 0:
				return header
			case col == len(headers)-1:
				// pure tones have exactly one edge
				if entries[row-1].Edges == 1 {
					return tone
				}
				return noise
			}
			return number
		})

	for _, e := range entries {
		t.Row(e.cells()...)
	}

	_, err := fmt.Fprintf(w, "FREQ = %d\n%s\n", freq, t.Render())
	return err
}

// Memviz writes a graphviz representation of the table entries to w.
func Memviz(w io.Writer, freq uint8, nativeRate int) {
	entries := Entries(freq, nativeRate)
	memviz.Map(w, &entries)
}
