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

package instructions

// AddressingMode describes how the operand of an instruction is found.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage // zpg, zpg,X, zpg,Y
	Relative // branch instructions only
	Absolute // abs, abs,X, abs,Y
	Indirect // JMP only

	IndexedIndirect // (zpg,X)
	IndirectIndexed // (zpg),Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	}
	return "unknown addressing mode"
}

// operandBytes returns the number of bytes following the opcode.
func (m AddressingMode) operandBytes() int {
	switch m {
	case Immediate, ZeroPage, Relative, IndexedIndirect, IndirectIndexed:
		return 1
	case Absolute, Indirect:
		return 2
	}
	return 0
}

// Index is the register used to index the ZeroPage and Absolute addressing
// modes.
type Index int

// List of valid Index values.
const (
	IndexNone Index = iota
	IndexX
	IndexY
)

func (idx Index) String() string {
	switch idx {
	case IndexX:
		return "X"
	case IndexY:
		return "Y"
	}
	return ""
}
