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

import (
	"fmt"
	"strings"
)

// Instruction is a decoded instruction.
type Instruction struct {
	Defn *Definition

	// the address of the opcode
	Address uint16

	// the operand bytes, in the order they appeared after the opcode
	Data []uint8
}

// Operand returns the operand as a 16 bit value. For instructions with one
// operand byte the high byte is zero.
func (ins Instruction) Operand() uint16 {
	switch len(ins.Data) {
	case 1:
		return uint16(ins.Data[0])
	case 2:
		return uint16(ins.Data[1])<<8 | uint16(ins.Data[0])
	}
	return 0
}

// Offset returns the operand as a signed value. Only meaningful for the
// Relative addressing mode.
func (ins Instruction) Offset() int8 {
	if len(ins.Data) == 0 {
		return 0
	}
	return int8(ins.Data[0])
}

// Next returns the address of the instruction following this one.
func (ins Instruction) Next() uint16 {
	return ins.Address + uint16(ins.Defn.Bytes)
}

// BranchTarget returns the address a branch instruction will jump to if the
// branch is taken.
func (ins Instruction) BranchTarget() uint16 {
	return uint16(int(ins.Next()) + int(ins.Offset()))
}

// Bytes returns the complete encoding of the instruction.
func (ins Instruction) Bytes() []uint8 {
	return append([]uint8{ins.Defn.OpCode}, ins.Data...)
}

// String returns the instruction in assembly language notation.
func (ins Instruction) String() string {
	if ins.Defn == nil {
		return "???"
	}

	operand := ins.OperandString()
	if operand == "" {
		return ins.Defn.Operator.String()
	}
	return fmt.Sprintf("%s %s", ins.Defn.Operator, operand)
}

// OperandString returns the operand in assembly language notation.
func (ins Instruction) OperandString() string {
	if ins.Defn == nil {
		return ""
	}

	s := strings.Builder{}

	switch ins.Defn.Mode {
	case Implied:
	case Accumulator:
		s.WriteString("A")
	case Immediate:
		s.WriteString(fmt.Sprintf("#$%02x", ins.Operand()))
	case ZeroPage:
		s.WriteString(fmt.Sprintf("$%02x", ins.Operand()))
	case Relative:
		s.WriteString(fmt.Sprintf("$%04x", ins.BranchTarget()))
	case Absolute:
		s.WriteString(fmt.Sprintf("$%04x", ins.Operand()))
	case Indirect:
		s.WriteString(fmt.Sprintf("($%04x)", ins.Operand()))
	case IndexedIndirect:
		s.WriteString(fmt.Sprintf("($%02x,X)", ins.Operand()))
	case IndirectIndexed:
		s.WriteString(fmt.Sprintf("($%02x),Y", ins.Operand()))
	}

	if ins.Defn.Index != IndexNone {
		s.WriteString(",")
		s.WriteString(ins.Defn.Index.String())
	}

	return s.String()
}
