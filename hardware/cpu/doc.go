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

// Package cpu emulates the MOS 6502 microprocessor. The CPU type is the
// complete register state of the processor together with a connection to
// memory by way of the bus.CPUBus interface.
//
// Execution of an instruction is in two parts. Decode() reads the opcode and
// operand bytes from the memory pointed to by the program counter and returns
// an instruction. Execute() applies the effect of a decoded instruction. The
// ExecuteInstruction() function does both and records what happened in the
// LastResult field.
//
// The program counter is advanced past an instruction as it is decoded. The
// InstructionPC field is the address of the instruction currently being
// executed and is brought level with the program counter once execution has
// completed. Instructions that change the flow of the program set both fields
// to the new address.
//
// Branch offsets are relative to the address of the instruction following the
// branch, as they are on real hardware.
//
// The synthetic halt instruction (opcode 0xff) causes ExecuteInstruction() to
// report a Halted status. Reaching the end of memory causes an Ended status.
// Neither of these are errors.
//
// Decimal mode arithmetic is not supported. The decimal flag can be set and
// cleared but ADC and SBC will always perform binary arithmetic.
package cpu
