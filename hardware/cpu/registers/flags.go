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

// Flag is one of the seven flags in the status register. The value of the
// flag is its bit position in the byte pushed to the stack.
type Flag uint8

// List of valid Flag values. Bit 5 is unused.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	InterruptDisable Flag = 0x04
	Decimal          Flag = 0x08
	Break            Flag = 0x10
	Overflow         Flag = 0x40
	Negative         Flag = 0x80
)

// all flags in the order they appear when printed.
var flagOrder = []Flag{Negative, Overflow, Break, Decimal, InterruptDisable, Zero, Carry}

// mask of all valid flags.
const validFlags = uint8(Carry | Zero | InterruptDisable | Decimal | Break | Overflow | Negative)

func (f Flag) String() string {
	switch f {
	case Carry:
		return "Carry"
	case Zero:
		return "Zero"
	case InterruptDisable:
		return "InterruptDisable"
	case Decimal:
		return "Decimal"
	case Break:
		return "Break"
	case Overflow:
		return "Overflow"
	case Negative:
		return "Negative"
	}
	return "unknown flag"
}

// the character used for the flag in the Status.String() output.
func (f Flag) symbol() rune {
	switch f {
	case Carry:
		return 'c'
	case Zero:
		return 'z'
	case InterruptDisable:
		return 'i'
	case Decimal:
		return 'd'
	case Break:
		return 'b'
	case Overflow:
		return 'v'
	case Negative:
		return 'n'
	}
	return '?'
}
