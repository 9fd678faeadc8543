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
	"github.com/jetsetilly/snake6502/curated"
	"github.com/jetsetilly/snake6502/hardware/cpu/instructions"
	"github.com/jetsetilly/snake6502/hardware/memory"
)

// Decode reads the instruction at the program counter. The program counter is
// advanced past the opcode and any operand bytes.
//
// A nil instruction and a nil error are returned if the program counter has
// reached the end of memory.
func (mc *CPU) Decode() (*instructions.Instruction, error) {
	if int(mc.PC) >= memory.Size {
		return nil, nil
	}

	address := mc.PC

	opcode, err := mc.mem.Read(address)
	if err != nil {
		return nil, err
	}

	defn := instructions.Definitions[opcode]
	if defn == nil {
		return nil, curated.Errorf(UnknownOpcode, opcode, address)
	}
	mc.PC++

	ins := &instructions.Instruction{
		Defn:    defn,
		Address: address,
	}

	// the padding byte of the BRK instruction is read like any other operand
	// byte
	if defn.Bytes > 1 {
		ins.Data = make([]uint8, 0, defn.Bytes-1)
	}
	for i := 0; i < defn.Bytes-1; i++ {
		if int(mc.PC) >= memory.Size {
			return nil, curated.Errorf(TruncatedOperand, opcode, address)
		}
		v, err := mc.mem.Read(mc.PC)
		if err != nil {
			return nil, err
		}
		ins.Data = append(ins.Data, v)
		mc.PC++
	}

	return ins, nil
}
