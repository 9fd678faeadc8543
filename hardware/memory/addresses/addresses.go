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

package addresses

// Special addresses in the zero page.
const (
	// reads of the Random address return a new value on every read
	Random = uint16(0x00fe)

	// the input source writes one of the Key values to the LastKey address
	LastKey = uint16(0x00ff)
)

// Stack is the base of the 256 byte stack window. The stack pointer is an
// offset from this address.
const Stack = uint16(0x0100)

// The display region is a 32x32 grid of bytes, one byte per cell.
const (
	DisplayOrigin = uint16(0x0200)
	DisplayMemtop = uint16(0x05ff)

	DisplayWidth  = 32
	DisplayHeight = 32
)

// ProgramOrigin is the conventional load address for programs.
const ProgramOrigin = uint16(0x0600)

// IRQ is the address where the interrupt vector is stored. Note that it lies
// outside the memory of the machine.
const IRQ = uint16(0xfffe)

// Key values written to the LastKey address.
const (
	KeyUp    = uint8(0x77)
	KeyDown  = uint8(0x73)
	KeyLeft  = uint8(0x61)
	KeyRight = uint8(0x64)
)

// Symbols lists the canonical names for the special addresses.
var Symbols = map[uint16]string{
	Random:  "RANDOM",
	LastKey: "LASTKEY",
	IRQ:     "IRQ",
}

// InDisplay returns true if the address is in the display region.
func InDisplay(address uint16) bool {
	return address >= DisplayOrigin && address <= DisplayMemtop
}
