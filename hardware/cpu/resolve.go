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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/cpu/instructions"
)

// Operand is the result of resolving the addressing mode of an instruction.
// It is either a Value to be used directly or an Address that must be read
// or written through memory.
type Operand struct {
	Value     uint8
	Address   uint16
	IsAddress bool
}

func (op Operand) String() string {
	if op.IsAddress {
		return fmt.Sprintf("address %#04x", op.Address)
	}
	return fmt.Sprintf("value %#02x", op.Value)
}

func address(a int, mode string) (Operand, error) {
	if a < 0 || a > 0xffff {
		return Operand{}, curated.Errorf(AddressCalculation, mode)
	}
	return Operand{Address: uint16(a), IsAddress: true}, nil
}

// Resolve the operand of an instruction. The Implied and Accumulator
// addressing modes have no operand and will result in an error.
//
// The ZeroPage and Absolute modes add the index register without wrapping.
// The IndexedIndirect mode however wraps the pointer address inside the zero
// page.
func (mc *CPU) Resolve(ins *instructions.Instruction) (Operand, error) {
	switch ins.Defn.Mode {
	case instructions.Immediate:
		return Operand{Value: uint8(ins.Operand())}, nil

	case instructions.ZeroPage, instructions.Absolute:
		a := int(ins.Operand())
		switch ins.Defn.Index {
		case instructions.IndexX:
			a += int(mc.X)
		case instructions.IndexY:
			a += int(mc.Y)
		}
		return address(a, fmt.Sprintf("%s,%s", ins.Defn.Mode, ins.Defn.Index))

	case instructions.Relative:
		// the program counter has already been advanced past the branch
		// instruction
		return address(int(mc.PC)+int(ins.Offset()), "Relative")

	case instructions.Indirect:
		if ins.Operand() == 0xffff {
			return Operand{}, curated.Errorf(AddressCalculation, "Indirect")
		}
		a, err := mc.mem.Read16(ins.Operand())
		if err != nil {
			return Operand{}, err
		}
		return Operand{Address: a, IsAddress: true}, nil

	case instructions.IndexedIndirect:
		ptr := uint8(ins.Operand()) + mc.X
		a, err := mc.mem.Read16(uint16(ptr))
		if err != nil {
			return Operand{}, err
		}
		return Operand{Address: a, IsAddress: true}, nil

	case instructions.IndirectIndexed:
		a, err := mc.mem.Read16(ins.Operand())
		if err != nil {
			return Operand{}, err
		}
		return address(int(a)+int(mc.Y), "IndirectIndexed")
	}

	return Operand{}, curated.Errorf(UnsupportedMode, ins.Defn.Mode, ins.Defn.Operator)
}

// read returns the value of the operand. If the operand is an address then
// the value is read from memory.
func (mc *CPU) read(ins *instructions.Instruction) (uint8, error) {
	op, err := mc.Resolve(ins)
	if err != nil {
		return 0, err
	}
	if !op.IsAddress {
		return op.Value, nil
	}
	return mc.mem.Read(op.Address)
}

// target resolves the operand of an instruction that must be an address.
func (mc *CPU) target(ins *instructions.Instruction) (uint16, error) {
	op, err := mc.Resolve(ins)
	if err != nil {
		return 0, err
	}
	if !op.IsAddress {
		return 0, curated.Errorf(UnsupportedMode, ins.Defn.Mode, ins.Defn.Operator)
	}
	return op.Address, nil
}
