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

// Package curated wraps the Go error type with pattern-preserving errors.
// Errors created with Errorf() remember the pattern they were created with
// and that pattern can be checked with the Is() and Has() functions.
//
//	err := curated.Errorf("wav: unsupported bit depth %d", depth)
//	if curated.Is(err, "wav: unsupported bit depth %d") {
//		...
//	}
//
// Has() checks the entire error chain, including errors that were wrapped
// with the %w verb or passed as a plain %v value:
//
//	f := curated.Errorf("reference: %v", err)
//	curated.Has(f, "wav: unsupported bit depth %d") // true
//	curated.Is(f, "wav: unsupported bit depth %d")  // false
//
// Error messages are normalised so that duplicate adjacent parts of the chain
// are removed. A part is the text between ": " separators. This means that
// wrapping an error with the same prefix at several levels does not produce
// messages like "wav: wav: file is empty".
//
// IsAny() answers whether an error was created by Errorf() at all. Curated
// errors are the expected errors. An uncurated error usually indicates a
// problem in a third-party package or the operating system.
package curated
