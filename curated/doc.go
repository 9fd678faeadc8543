// This file is part of snake6502.
//
// snake6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// snake6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with snake6502.  If not, see <https://www.gnu.org/licenses/>.

// Package curated wraps the standard error interface so that errors raised by
// the emulation can be identified by the pattern they were created with.
//
// Errors are created with Errorf(), which takes a pattern and values in the
// same way as fmt.Errorf(). The pattern, rather than the formatted message, is
// what identifies the error:
//
//	const OutOfBounds = "memory: address out of bounds (%#04x)"
//
//	err := curated.Errorf(OutOfBounds, addr)
//	if curated.Is(err, OutOfBounds) {
//		...
//	}
//
// Wrapping is done by using a curated error as a value for another curated
// error. The Has() function searches the wrapping chain for a pattern:
//
//	e := curated.Errorf("machine: %v", err)
//	curated.Has(e, OutOfBounds) // true
//	curated.Is(e, OutOfBounds)  // false
//
// The Error() function normalises the message by removing duplicate adjacent
// parts. Parts are separated by the sub-string ": ". So wrapping an error
// with the same prefix more than once does not produce a stuttering message:
//
//	cpu: cpu: stack overflow
//
// is printed as
//
//	cpu: stack overflow
//
// Patterns that serve as sentinel errors should be exported as const strings
// from the package that raises them.
package curated
