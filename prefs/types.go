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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Value represents the actual Go preference value.
type Value any

// pref is implemented by all types that can be registered with a Disk.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks and storage shared by all preference types
type base[T any] struct {
	crit     sync.Mutex
	value    T
	hookPost func(value Value) error
}

func (b *base[T]) get() T {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.value
}

func (b *base[T]) store(v T) error {
	b.crit.Lock()
	b.value = v
	b.crit.Unlock()

	if b.hookPost != nil {
		return b.hookPost(v)
	}
	return nil
}

// SetHookPost sets the callback function to be called just after the value is
// updated. The callback is executed even if the value has not changed.
func (b *base[T]) SetHookPost(f func(value Value) error) {
	b.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	base[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.get())
}

// Set new value to Bool type. New value must be of type bool or string. A
// string value of anything other than "true" (case insensitive) will set the
// value to false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		return p.store(strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.get()
}

// Reset sets the boolean value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// Int implements an integer type in the prefs system.
type Int struct {
	base[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.get())
}

// Set new value to Int type. New value can be an integer type or a string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int32:
		return p.store(int(v))
	case int64:
		return p.store(int(v))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("prefs: cannot convert %T to prefs.Int: %w", v, err)
		}
		return p.store(n)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.get()
}

// Reset sets the int value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}

// String implements a string type in the prefs system.
type String struct {
	base[string]
	maxLen int
}

func (p *String) String() string {
	return p.get()
}

// SetMaxLen sets the maximum length of the string. A value of zero or less
// means there is no limit. The existing value is cropped if necessary.
func (p *String) SetMaxLen(n int) {
	p.maxLen = n
	p.crit.Lock()
	defer p.crit.Unlock()
	if p.maxLen > 0 && len(p.value) > p.maxLen {
		p.value = p.value[:p.maxLen]
	}
}

// Set new value to String type. Values that are not strings are converted
// with the %v verb.
func (p *String) Set(v Value) error {
	s := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(s) > p.maxLen {
		s = s[:p.maxLen]
	}
	return p.store(s)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.get()
}

// Reset sets the string value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}
