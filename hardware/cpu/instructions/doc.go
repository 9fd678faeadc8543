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

// Package instructions defines the instruction set of the CPU. Every opcode is
// described by a Definition, which names the operator, the addressing mode and
// the number of bytes the instruction occupies. The Definitions table is
// indexed by opcode. Unused opcodes have a nil entry.
//
// The opcode 0xff is not part of the real instruction set. It is decoded as
// the Halt operator and is used to end a program.
//
// The Instruction type is a decoded instruction: a Definition together with
// the operand bytes and the address the instruction was read from.
package instructions
