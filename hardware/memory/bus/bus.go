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

// Package bus defines the interfaces through which other parts of the
// emulation access memory. The CPU sees memory only through the CPUBus.
// Debugging and scripting tools use the DebugBus, which bypasses the side
// effects of a normal read or write.
package bus

// CPUBus defines the memory operations available to the CPU.
type CPUBus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
	Read16(address uint16) (uint16, error)
}

// DebugBus defines the meta-operations for memory. Peek() does not trigger
// the random source and Poke() does not affect the dirty flag of the display
// region.
type DebugBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}
