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

package registers

import (
	"strings"
	"unicode"
)

// Status is the status register of the CPU.
type Status struct {
	flags Flag
}

// Label returns the canonical name for the status register.
func (sr Status) Label() string {
	return "SR"
}

// String returns the flags of the register, upper case if the flag is set.
// For example, with the Zero and Carry flags set:
//
//	nv-bdiZC
func (sr Status) String() string {
	s := strings.Builder{}
	for i, f := range flagOrder {
		// unused bit sits between overflow and break
		if i == 2 {
			s.WriteRune('-')
		}
		if sr.Is(f) {
			s.WriteRune(unicode.ToUpper(f.symbol()))
		} else {
			s.WriteRune(f.symbol())
		}
	}
	return s.String()
}

// Reset clears all flags.
func (sr *Status) Reset() {
	sr.flags = 0
}

// Value returns the flags as a byte. Suitable for pushing to the stack.
func (sr Status) Value() uint8 {
	return uint8(sr.flags)
}

// FromValue sets the flags from a byte taken from the stack. Bits that do not
// correspond to a flag are discarded.
func (sr *Status) FromValue(v uint8) {
	sr.flags = Flag(v & validFlags)
}

// Is returns true if the flag is set.
func (sr Status) Is(f Flag) bool {
	return sr.flags&f == f
}

// Set sets or clears the flag.
func (sr *Status) Set(f Flag, v bool) {
	if v {
		sr.flags |= f
	} else {
		sr.flags &^= f
	}
}

// Carry returns the state of the carry flag.
func (sr Status) Carry() bool { return sr.Is(Carry) }

// SetCarry sets or clears the carry flag.
func (sr *Status) SetCarry(v bool) { sr.Set(Carry, v) }

// Zero returns the state of the zero flag.
func (sr Status) Zero() bool { return sr.Is(Zero) }

// SetZero sets or clears the zero flag.
func (sr *Status) SetZero(v bool) { sr.Set(Zero, v) }

// InterruptDisable returns the state of the interrupt disable flag.
func (sr Status) InterruptDisable() bool { return sr.Is(InterruptDisable) }

// SetInterruptDisable sets or clears the interrupt disable flag.
func (sr *Status) SetInterruptDisable(v bool) { sr.Set(InterruptDisable, v) }

// Decimal returns the state of the decimal flag.
func (sr Status) Decimal() bool { return sr.Is(Decimal) }

// SetDecimal sets or clears the decimal flag.
func (sr *Status) SetDecimal(v bool) { sr.Set(Decimal, v) }

// Break returns the state of the break flag.
func (sr Status) Break() bool { return sr.Is(Break) }

// SetBreak sets or clears the break flag.
func (sr *Status) SetBreak(v bool) { sr.Set(Break, v) }

// Overflow returns the state of the overflow flag.
func (sr Status) Overflow() bool { return sr.Is(Overflow) }

// SetOverflow sets or clears the overflow flag.
func (sr *Status) SetOverflow(v bool) { sr.Set(Overflow, v) }

// Negative returns the state of the negative flag.
func (sr Status) Negative() bool { return sr.Is(Negative) }

// SetNegative sets or clears the negative flag.
func (sr *Status) SetNegative(v bool) { sr.Set(Negative, v) }

// SetZeroNegative sets the zero and negative flags according to the value.
func (sr *Status) SetZeroNegative(v uint8) {
	sr.Set(Zero, v == 0)
	sr.Set(Negative, v&0x80 == 0x80)
}
