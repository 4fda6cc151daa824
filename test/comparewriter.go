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

package test

import (
	"strings"
	"sync"
)

// CompareWriter records everything written to it so that the output of a
// function can be checked. Writes can come from more than one goroutine, as
// happens when the logger echoes to the writer.
type CompareWriter struct {
	crit sync.Mutex
	b    strings.Builder
}

func (tw *CompareWriter) Write(p []byte) (int, error) {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return tw.b.Write(p)
}

// Clear all recorded output.
func (tw *CompareWriter) Clear() {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	tw.b.Reset()
}

// Compare returns true if the recorded output is exactly s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.String() == s
}

// Count returns the number of non-overlapping instances of substr in the
// recorded output.
func (tw *CompareWriter) Count(substr string) int {
	return strings.Count(tw.String(), substr)
}

// Lines returns the recorded output split into lines. A trailing newline
// does not produce an empty final line.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(tw.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (tw *CompareWriter) String() string {
	tw.crit.Lock()
	defer tw.crit.Unlock()
	return tw.b.String()
}
