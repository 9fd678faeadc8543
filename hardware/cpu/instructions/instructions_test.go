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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/snake6502/hardware/cpu/instructions"
	"github.com/jetsetilly/snake6502/test"
)

func TestDefinitions(t *testing.T) {
	var n int
	for i, defn := range instructions.Definitions {
		if defn == nil {
			continue
		}
		n++
		test.ExpectEquality(t, int(defn.OpCode), i)
	}

	// the official instruction set plus the halt instruction
	test.ExpectEquality(t, n, 152)

	// halt is always the 0xff opcode
	test.DemandSuccess(t, instructions.Definitions[0xff] != nil)
	test.ExpectEquality(t, instructions.Definitions[0xff].Operator, instructions.Halt)
	test.ExpectEquality(t, instructions.Definitions[0xff].Bytes, 1)

	// brk has a padding byte
	test.ExpectEquality(t, instructions.Definitions[0x00].Bytes, 2)

	// the rotate right instructions
	for _, op := range []uint8{0x6a, 0x66, 0x76, 0x6e, 0x7e} {
		test.ExpectEquality(t, instructions.Definitions[op].Operator, instructions.Ror, op)
	}

	// STX zero page is indexed by Y
	test.ExpectEquality(t, instructions.Definitions[0x96].Index, instructions.IndexY)

	// unused opcodes
	test.ExpectSuccess(t, instructions.Definitions[0x02] == nil)
	test.ExpectSuccess(t, instructions.Definitions[0xfa] == nil)
}

func TestBytes(t *testing.T) {
	test.ExpectEquality(t, instructions.Definitions[0xa9].Bytes, 2)
	test.ExpectEquality(t, instructions.Definitions[0x0a].Bytes, 1)
	test.ExpectEquality(t, instructions.Definitions[0x4c].Bytes, 3)
	test.ExpectEquality(t, instructions.Definitions[0x6c].Bytes, 3)
	test.ExpectEquality(t, instructions.Definitions[0xd0].Bytes, 2)
	test.ExpectEquality(t, instructions.Definitions[0x81].Bytes, 2)
}

func TestBranch(t *testing.T) {
	test.ExpectSuccess(t, instructions.Definitions[0xd0].IsBranch())
	test.ExpectFailure(t, instructions.Definitions[0x4c].IsBranch())
}

func TestString(t *testing.T) {
	ins := instructions.Instruction{
		Defn:    instructions.Definitions[0xa9],
		Address: 0x0600,
		Data:    []uint8{0x05},
	}
	test.ExpectEquality(t, ins.String(), "LDA #$05")

	ins = instructions.Instruction{
		Defn:    instructions.Definitions[0x9d],
		Address: 0x0600,
		Data:    []uint8{0x00, 0x02},
	}
	test.ExpectEquality(t, ins.String(), "STA $0200,X")
	test.ExpectEquality(t, ins.Operand(), uint16(0x0200))
	test.ExpectEquality(t, ins.Next(), uint16(0x0603))

	ins = instructions.Instruction{
		Defn:    instructions.Definitions[0xd0],
		Address: 0x0606,
		Data:    []uint8{0xfb},
	}
	test.ExpectEquality(t, ins.Offset(), int8(-5))
	test.ExpectEquality(t, ins.BranchTarget(), uint16(0x0603))
	test.ExpectEquality(t, ins.String(), "BNE $0603")

	ins = instructions.Instruction{
		Defn:    instructions.Definitions[0x91],
		Address: 0x0600,
		Data:    []uint8{0x10},
	}
	test.ExpectEquality(t, ins.String(), "STA ($10),Y")

	ins = instructions.Instruction{
		Defn: instructions.Definitions[0x0a],
	}
	test.ExpectEquality(t, ins.String(), "ASL A")

	ins = instructions.Instruction{
		Defn: instructions.Definitions[0xff],
	}
	test.ExpectEquality(t, ins.String(), "HALT")
}
