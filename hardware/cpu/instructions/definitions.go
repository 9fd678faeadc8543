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

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode   uint8
	Operator Operator
	Mode     AddressingMode
	Index    Index
	Bytes    int
	Effect   EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes [mode=%s index=%s]", defn.OpCode, defn.Operator, defn.Bytes, defn.Mode, defn.Index)
}

// IsBranch returns true if the instruction is a conditional branch.
func (defn Definition) IsBranch() bool {
	return defn.Mode == Relative && defn.Effect == Flow
}

// Definitions is the decode table, indexed by opcode. Opcodes that are not
// part of the instruction set have a nil entry.
var Definitions [256]*Definition

type entry struct {
	opcode   uint8
	operator Operator
	mode     AddressingMode
	index    Index
}

var table = []entry{
	{0x69, Adc, Immediate, IndexNone},
	{0x65, Adc, ZeroPage, IndexNone},
	{0x75, Adc, ZeroPage, IndexX},
	{0x6d, Adc, Absolute, IndexNone},
	{0x7d, Adc, Absolute, IndexX},
	{0x79, Adc, Absolute, IndexY},
	{0x61, Adc, IndexedIndirect, IndexNone},
	{0x71, Adc, IndirectIndexed, IndexNone},

	{0x29, And, Immediate, IndexNone},
	{0x25, And, ZeroPage, IndexNone},
	{0x35, And, ZeroPage, IndexX},
	{0x2d, And, Absolute, IndexNone},
	{0x3d, And, Absolute, IndexX},
	{0x39, And, Absolute, IndexY},
	{0x21, And, IndexedIndirect, IndexNone},
	{0x31, And, IndirectIndexed, IndexNone},

	{0x0a, Asl, Accumulator, IndexNone},
	{0x06, Asl, ZeroPage, IndexNone},
	{0x16, Asl, ZeroPage, IndexX},
	{0x0e, Asl, Absolute, IndexNone},
	{0x1e, Asl, Absolute, IndexX},

	{0x24, Bit, ZeroPage, IndexNone},
	{0x2c, Bit, Absolute, IndexNone},

	{0x10, Bpl, Relative, IndexNone},
	{0x30, Bmi, Relative, IndexNone},
	{0x50, Bvc, Relative, IndexNone},
	{0x70, Bvs, Relative, IndexNone},
	{0x90, Bcc, Relative, IndexNone},
	{0xb0, Bcs, Relative, IndexNone},
	{0xd0, Bne, Relative, IndexNone},
	{0xf0, Beq, Relative, IndexNone},

	{0x00, Brk, Implied, IndexNone},

	{0xc9, Cmp, Immediate, IndexNone},
	{0xc5, Cmp, ZeroPage, IndexNone},
	{0xd5, Cmp, ZeroPage, IndexX},
	{0xcd, Cmp, Absolute, IndexNone},
	{0xdd, Cmp, Absolute, IndexX},
	{0xd9, Cmp, Absolute, IndexY},
	{0xc1, Cmp, IndexedIndirect, IndexNone},
	{0xd1, Cmp, IndirectIndexed, IndexNone},

	{0xe0, Cpx, Immediate, IndexNone},
	{0xe4, Cpx, ZeroPage, IndexNone},
	{0xec, Cpx, Absolute, IndexNone},

	{0xc0, Cpy, Immediate, IndexNone},
	{0xc4, Cpy, ZeroPage, IndexNone},
	{0xcc, Cpy, Absolute, IndexNone},

	{0xc6, Dec, ZeroPage, IndexNone},
	{0xd6, Dec, ZeroPage, IndexX},
	{0xce, Dec, Absolute, IndexNone},
	{0xde, Dec, Absolute, IndexX},

	{0x49, Eor, Immediate, IndexNone},
	{0x45, Eor, ZeroPage, IndexNone},
	{0x55, Eor, ZeroPage, IndexX},
	{0x4d, Eor, Absolute, IndexNone},
	{0x5d, Eor, Absolute, IndexX},
	{0x59, Eor, Absolute, IndexY},
	{0x41, Eor, IndexedIndirect, IndexNone},
	{0x51, Eor, IndirectIndexed, IndexNone},

	{0x18, Clc, Implied, IndexNone},
	{0x38, Sec, Implied, IndexNone},
	{0x58, Cli, Implied, IndexNone},
	{0x78, Sei, Implied, IndexNone},
	{0xb8, Clv, Implied, IndexNone},
	{0xd8, Cld, Implied, IndexNone},
	{0xf8, Sed, Implied, IndexNone},

	{0xe6, Inc, ZeroPage, IndexNone},
	{0xf6, Inc, ZeroPage, IndexX},
	{0xee, Inc, Absolute, IndexNone},
	{0xfe, Inc, Absolute, IndexX},

	{0x4c, Jmp, Absolute, IndexNone},
	{0x6c, Jmp, Indirect, IndexNone},

	{0x20, Jsr, Absolute, IndexNone},

	{0xa9, Lda, Immediate, IndexNone},
	{0xa5, Lda, ZeroPage, IndexNone},
	{0xb5, Lda, ZeroPage, IndexX},
	{0xad, Lda, Absolute, IndexNone},
	{0xbd, Lda, Absolute, IndexX},
	{0xb9, Lda, Absolute, IndexY},
	{0xa1, Lda, IndexedIndirect, IndexNone},
	{0xb1, Lda, IndirectIndexed, IndexNone},

	{0xa2, Ldx, Immediate, IndexNone},
	{0xa6, Ldx, ZeroPage, IndexNone},
	{0xb6, Ldx, ZeroPage, IndexY},
	{0xae, Ldx, Absolute, IndexNone},
	{0xbe, Ldx, Absolute, IndexY},

	{0xa0, Ldy, Immediate, IndexNone},
	{0xa4, Ldy, ZeroPage, IndexNone},
	{0xb4, Ldy, ZeroPage, IndexX},
	{0xac, Ldy, Absolute, IndexNone},
	{0xbc, Ldy, Absolute, IndexX},

	{0x4a, Lsr, Accumulator, IndexNone},
	{0x46, Lsr, ZeroPage, IndexNone},
	{0x56, Lsr, ZeroPage, IndexX},
	{0x4e, Lsr, Absolute, IndexNone},
	{0x5e, Lsr, Absolute, IndexX},

	{0xea, Nop, Implied, IndexNone},

	{0x09, Ora, Immediate, IndexNone},
	{0x05, Ora, ZeroPage, IndexNone},
	{0x15, Ora, ZeroPage, IndexX},
	{0x0d, Ora, Absolute, IndexNone},
	{0x1d, Ora, Absolute, IndexX},
	{0x19, Ora, Absolute, IndexY},
	{0x01, Ora, IndexedIndirect, IndexNone},
	{0x11, Ora, IndirectIndexed, IndexNone},

	{0xaa, Tax, Implied, IndexNone},
	{0x8a, Txa, Implied, IndexNone},
	{0xca, Dex, Implied, IndexNone},
	{0xe8, Inx, Implied, IndexNone},
	{0xa8, Tay, Implied, IndexNone},
	{0x98, Tya, Implied, IndexNone},
	{0x88, Dey, Implied, IndexNone},
	{0xc8, Iny, Implied, IndexNone},

	{0x2a, Rol, Accumulator, IndexNone},
	{0x26, Rol, ZeroPage, IndexNone},
	{0x36, Rol, ZeroPage, IndexX},
	{0x2e, Rol, Absolute, IndexNone},
	{0x3e, Rol, Absolute, IndexX},

	{0x6a, Ror, Accumulator, IndexNone},
	{0x66, Ror, ZeroPage, IndexNone},
	{0x76, Ror, ZeroPage, IndexX},
	{0x6e, Ror, Absolute, IndexNone},
	{0x7e, Ror, Absolute, IndexX},

	{0x40, Rti, Implied, IndexNone},
	{0x60, Rts, Implied, IndexNone},

	{0xe9, Sbc, Immediate, IndexNone},
	{0xe5, Sbc, ZeroPage, IndexNone},
	{0xf5, Sbc, ZeroPage, IndexX},
	{0xed, Sbc, Absolute, IndexNone},
	{0xfd, Sbc, Absolute, IndexX},
	{0xf9, Sbc, Absolute, IndexY},
	{0xe1, Sbc, IndexedIndirect, IndexNone},
	{0xf1, Sbc, IndirectIndexed, IndexNone},

	{0x85, Sta, ZeroPage, IndexNone},
	{0x95, Sta, ZeroPage, IndexX},
	{0x8d, Sta, Absolute, IndexNone},
	{0x9d, Sta, Absolute, IndexX},
	{0x99, Sta, Absolute, IndexY},
	{0x81, Sta, IndexedIndirect, IndexNone},
	{0x91, Sta, IndirectIndexed, IndexNone},

	{0x9a, Txs, Implied, IndexNone},
	{0xba, Tsx, Implied, IndexNone},
	{0x48, Pha, Implied, IndexNone},
	{0x68, Pla, Implied, IndexNone},
	{0x08, Php, Implied, IndexNone},
	{0x28, Plp, Implied, IndexNone},

	{0x86, Stx, ZeroPage, IndexNone},
	{0x96, Stx, ZeroPage, IndexY},
	{0x8e, Stx, Absolute, IndexNone},

	{0x84, Sty, ZeroPage, IndexNone},
	{0x94, Sty, ZeroPage, IndexX},
	{0x8c, Sty, Absolute, IndexNone},

	{0xff, Halt, Implied, IndexNone},
}

func init() {
	for _, e := range table {
		defn := &Definition{
			OpCode:   e.opcode,
			Operator: e.operator,
			Mode:     e.mode,
			Index:    e.index,
			Bytes:    1 + e.mode.operandBytes(),
			Effect:   e.operator.effect(),
		}

		// BRK is followed by a padding byte
		if e.operator == Brk {
			defn.Bytes = 2
		}

		if Definitions[e.opcode] != nil {
			panic(fmt.Sprintf("instructions: duplicate definition for opcode %02x", e.opcode))
		}
		Definitions[e.opcode] = defn
	}
}
