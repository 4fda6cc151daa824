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

package logger

import (
	"sync"
	"time"
)

// Permission is consulted by Log() and Logf() before an entry is added. A
// false return from AllowLogging() means the entry is dropped.
type Permission interface {
	AllowLogging() bool
}

// Allow grants permission to log in all cases. The logger checks for it
// directly and never calls AllowLogging().
var Allow Permission = always{}

type always struct{}

func (always) AllowLogging() bool {
	return true
}

// Interval is a Permission that allows at most one entry per time period. It
// is useful for logging from loops that run at audio rate, where the same
// condition would otherwise produce an entry on every iteration.
//
// The zero value allows every entry.
type Interval struct {
	Period time.Duration

	crit sync.Mutex
	last time.Time

	// time source. replaced in tests
	now func() time.Time
}

// NewInterval creates an Interval permission for the time period.
func NewInterval(period time.Duration) *Interval {
	return &Interval{Period: period}
}

// AllowLogging implements the Permission interface.
func (p *Interval) AllowLogging() bool {
	p.crit.Lock()
	defer p.crit.Unlock()

	now := time.Now
	if p.now != nil {
		now = p.now
	}

	t := now()
	if !p.last.IsZero() && t.Sub(p.last) < p.Period {
		return false
	}
	p.last = t
	return true
}
